package model

// Project is a user-defined named workspace grouping shortcuts and notes.
// Notes hold Markdown text. The optional network fields override the global
// network settings when the project is active.
type Project struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	IsPinned      bool   `json:"isPinned"`
	Notes         string `json:"notes"`
	IP            string `json:"ip,omitempty"`
	Gateway       string `json:"gateway,omitempty"`
	InterfaceName string `json:"interfaceName,omitempty"`
}

// HasNetworkOverride reports whether the project carries its own network
// configuration. Project-level values take precedence over the global ones.
func (p *Project) HasNetworkOverride() bool {
	return p.IP != "" || p.Gateway != ""
}

// ResolveNetwork returns the settings to apply for this project: the
// project's own values where present, the global values otherwise.
func (p *Project) ResolveNetwork(global NetworkSettings) NetworkSettings {
	resolved := global
	if p.IP != "" {
		resolved.IP = p.IP
	}
	if p.Gateway != "" {
		resolved.Gateway = p.Gateway
	}
	if p.InterfaceName != "" {
		resolved.InterfaceName = p.InterfaceName
	}
	if resolved.InterfaceName == "" {
		resolved.InterfaceName = DefaultInterfaceName
	}
	return resolved
}

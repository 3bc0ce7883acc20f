// Package config holds durable application configuration: a JSON key-value
// adapter over Fyne preferences that the domain store persists into, and the
// optional .env developer configuration.
package config

import (
	"encoding/json"
	"fmt"

	"fyne.io/fyne/v2"
)

// Storage keys for Fyne preferences. One JSON document per logical key; keys
// are written independently with no cross-key atomicity.
const (
	KeyProjects        = "projects"
	KeyShortcuts       = "shortcuts"
	KeyGlobalShortcuts = "globalShortcuts"
	KeyCalendarMemos   = "calendarMemos"
	KeyTheme           = "theme"
	KeyLanguage        = "language"
	KeyNetworkSettings = "globalNetworkSettings"
)

// Prefs is the persistence adapter: scoped key-value read/write of
// JSON-serializable blobs, backed by the app's preference store and
// surviving restarts.
type Prefs struct {
	prefs fyne.Preferences
}

// NewPrefs creates a preferences adapter for the given app.
func NewPrefs(app fyne.App) *Prefs {
	return &Prefs{prefs: app.Preferences()}
}

// SetJSON serializes v and stores it under key.
func (p *Prefs) SetJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	p.prefs.SetString(key, string(data))
	return nil
}

// GetJSON loads the blob stored under key into out. It returns false when the
// key is absent, leaving out untouched.
func (p *Prefs) GetJSON(key string, out any) (bool, error) {
	raw := p.prefs.String(key)
	if raw == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return true, nil
}

// SetString stores a bare string value under key.
func (p *Prefs) SetString(key, value string) {
	p.prefs.SetString(key, value)
}

// GetString returns the bare string stored under key, or "" when absent.
func (p *Prefs) GetString(key string) string {
	return p.prefs.String(key)
}

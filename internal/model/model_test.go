package model

import (
	"testing"
	"time"
)

func TestShortcutTypeValid(t *testing.T) {
	tests := []struct {
		name  string
		st    ShortcutType
		valid bool
		local bool
	}{
		{name: "file is valid and local", st: ShortcutFile, valid: true, local: true},
		{name: "folder is valid and local", st: ShortcutFolder, valid: true, local: true},
		{name: "url is valid and not local", st: ShortcutURL, valid: true, local: false},
		{name: "empty is invalid", st: ShortcutType(""), valid: false, local: false},
		{name: "unknown is invalid", st: ShortcutType("link"), valid: false, local: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.st.Valid(); got != tt.valid {
				t.Errorf("Valid() = %v, want %v", got, tt.valid)
			}
			if got := tt.st.IsLocal(); got != tt.local {
				t.Errorf("IsLocal() = %v, want %v", got, tt.local)
			}
		})
	}
}

func TestThemeToggle(t *testing.T) {
	if ThemeLight.Toggle() != ThemeDark {
		t.Error("light should toggle to dark")
	}
	if ThemeDark.Toggle() != ThemeLight {
		t.Error("dark should toggle to light")
	}
	// Toggling twice returns the original value
	if ThemeDark.Toggle().Toggle() != ThemeDark {
		t.Error("double toggle should restore the original theme")
	}
}

func TestLanguageToggle(t *testing.T) {
	if LanguageEnglish.Toggle() != LanguageJapanese {
		t.Error("en should toggle to ja")
	}
	if LanguageJapanese.Toggle() != LanguageEnglish {
		t.Error("ja should toggle to en")
	}
	if LanguageEnglish.Toggle().Toggle() != LanguageEnglish {
		t.Error("double toggle should restore the original language")
	}
}

func TestDateKey(t *testing.T) {
	d := time.Date(2024, time.January, 1, 23, 59, 0, 0, time.UTC)
	if got := DateKey(d); got != "2024-01-01" {
		t.Errorf("DateKey() = %q, want %q", got, "2024-01-01")
	}
}

func TestResolveNetwork(t *testing.T) {
	global := NetworkSettings{IP: "10.0.0.5", Gateway: "10.0.0.1", InterfaceName: "Ethernet"}

	tests := []struct {
		name    string
		project Project
		want    NetworkSettings
	}{
		{
			name:    "no override uses global values",
			project: Project{ID: "p1", Name: "Work"},
			want:    global,
		},
		{
			name:    "ip override keeps global gateway",
			project: Project{ID: "p1", Name: "Work", IP: "192.168.1.20"},
			want:    NetworkSettings{IP: "192.168.1.20", Gateway: "10.0.0.1", InterfaceName: "Ethernet"},
		},
		{
			name:    "full override wins",
			project: Project{ID: "p1", Name: "Lab", IP: "192.168.1.20", Gateway: "192.168.1.1", InterfaceName: "Wi-Fi"},
			want:    NetworkSettings{IP: "192.168.1.20", Gateway: "192.168.1.1", InterfaceName: "Wi-Fi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.project.ResolveNetwork(global); got != tt.want {
				t.Errorf("ResolveNetwork() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolveNetworkDefaultsInterface(t *testing.T) {
	p := Project{ID: "p1", Name: "Work", IP: "192.168.1.20"}
	got := p.ResolveNetwork(NetworkSettings{})
	if got.InterfaceName != DefaultInterfaceName {
		t.Errorf("InterfaceName = %q, want %q", got.InterfaceName, DefaultInterfaceName)
	}
}

func TestBundleFileName(t *testing.T) {
	now := time.Date(2024, time.March, 7, 10, 0, 0, 0, time.UTC)
	b := NewBundle(now)
	if b.Version != BundleVersion {
		t.Errorf("Version = %q, want %q", b.Version, BundleVersion)
	}
	if got := b.FileName(now); got != "home_app_data_2024-03-07.json" {
		t.Errorf("FileName() = %q", got)
	}
}

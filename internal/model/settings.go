package model

import "time"

// DefaultInterfaceName is used when no interface has been configured.
const DefaultInterfaceName = "Ethernet"

// NetworkSettings is the global network configuration applied through the
// platform bridge. All fields are optional strings; project-level overrides,
// when present, take precedence at the point of use.
type NetworkSettings struct {
	IP            string `json:"ip"`
	Gateway       string `json:"gateway"`
	InterfaceName string `json:"interfaceName,omitempty"`
}

// DefaultNetworkSettings returns the settings used before any have been saved.
func DefaultNetworkSettings() NetworkSettings {
	return NetworkSettings{InterfaceName: DefaultInterfaceName}
}

// Theme is the process-wide appearance, light or dark.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Valid reports whether the value is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Language is the process-wide UI language, independent of Theme.
type Language string

const (
	LanguageEnglish  Language = "en"
	LanguageJapanese Language = "ja"
)

// Toggle returns the other language.
func (l Language) Toggle() Language {
	if l == LanguageEnglish {
		return LanguageJapanese
	}
	return LanguageEnglish
}

// Valid reports whether the value is a supported language.
func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageJapanese
}

// DateKeyLayout is the calendar memo key format.
const DateKeyLayout = "2006-01-02"

// DateKey returns the calendar-memo key (YYYY-MM-DD) for a point in time.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

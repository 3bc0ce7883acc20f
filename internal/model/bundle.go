package model

import "time"

// BundleVersion is the export format version. The importer does not reject
// other versions; the field exists so future formats can be told apart.
const BundleVersion = "1.1"

// Bundle is the user-facing JSON document produced by export and consumed by
// import. GlobalNetworkSettings is accepted on import but not written on
// export, for compatibility with version 1.1 files.
type Bundle struct {
	Projects              []Project         `json:"projects"`
	Shortcuts             []Shortcut        `json:"shortcuts"`
	GlobalShortcuts       []Shortcut        `json:"globalShortcuts"`
	CalendarMemos         map[string]string `json:"calendarMemos"`
	GlobalNetworkSettings *NetworkSettings  `json:"globalNetworkSettings,omitempty"`
	ExportDate            string            `json:"exportDate"`
	Version               string            `json:"version"`
}

// NewBundle stamps a bundle with the current time and format version.
func NewBundle(now time.Time) Bundle {
	return Bundle{
		CalendarMemos: map[string]string{},
		ExportDate:    now.UTC().Format(time.RFC3339),
		Version:       BundleVersion,
	}
}

// FileName returns the suggested export file name, home_app_data_YYYY-MM-DD.json.
func (b Bundle) FileName(now time.Time) string {
	return "home_app_data_" + now.Format(DateKeyLayout) + ".json"
}

package model

// ShortcutType determines how a shortcut is launched and which fallback
// icon is shown when no snapshot is available.
type ShortcutType string

const (
	// ShortcutFile points at a regular file opened with its default app.
	ShortcutFile ShortcutType = "file"

	// ShortcutFolder points at a directory opened in the file manager.
	ShortcutFolder ShortcutType = "folder"

	// ShortcutURL points at a web address opened in the browser.
	ShortcutURL ShortcutType = "url"
)

// String returns the string representation of ShortcutType.
func (st ShortcutType) String() string {
	return string(st)
}

// Valid reports whether the value is one of the closed enumeration.
func (st ShortcutType) Valid() bool {
	return st == ShortcutFile || st == ShortcutFolder || st == ShortcutURL
}

// IsLocal reports whether the shortcut targets the local filesystem.
func (st ShortcutType) IsLocal() bool {
	return st == ShortcutFile || st == ShortcutFolder
}

// GlobalProjectID is the sentinel ProjectID carried by global shortcuts.
// Global shortcuts live in their own collection and the field is ignored.
const GlobalProjectID = "global"

// GlobalShortcutSlots is how many global shortcuts the sidebar displays.
// The store itself places no cap on the collection.
const GlobalShortcutSlots = 3

// Shortcut is a launchable reference to a file, folder, or URL, scoped to a
// project or held in the global collection. Icon is an optional data-URL
// encoded bitmap snapshot, best effort.
type Shortcut struct {
	ID        string       `json:"id"`
	ProjectID string       `json:"projectId"`
	Name      string       `json:"name"`
	Path      string       `json:"path"`
	Type      ShortcutType `json:"type"`
	Icon      string       `json:"icon,omitempty"`
}

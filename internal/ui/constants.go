package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window sizing
const (
	WindowWidth  float32 = 1500
	WindowHeight float32 = 750
)

// Layout sizing
const (
	SidebarWidth       float32 = 260
	CalendarPanelWidth float32 = 320
	ShortcutCardSize   float32 = 110
	ShortcutIconSize   float32 = 40
	GlobalSlotSize     float32 = 64
	DialogWidth        float32 = 460
	DialogHeight       float32 = 360
	SettingsWidth      float32 = 560
	SettingsHeight     float32 = 420
)

// Split offsets (fraction of the available space)
const (
	SidebarSplitOffset  = 0.18
	CalendarSplitOffset = 0.78
	NotesSplitOffset    = 0.62
)

// Package ui contains the Fyne-based desktop user interface: the sidebar
// with global shortcuts and the project list, the shortcut grid and notes
// area of the active project, the calendar panel, and the settings dialog.
// All UI strings are localized via Localization; views re-render through
// the store's change notification.
package ui

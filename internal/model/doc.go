// Package model defines the domain data structures shared across the app:
// projects, shortcuts, calendar memos, network settings, and the export
// bundle. Structures carry the JSON tags of the persisted key-value layout
// and are designed for direct binding in the UI.
package model

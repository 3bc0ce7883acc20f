package ui

import (
	"encoding/base64"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"

	"github.com/homeboard/homeboard/internal/config"
	"github.com/homeboard/homeboard/internal/model"
	"github.com/homeboard/homeboard/internal/platform"
	"github.com/homeboard/homeboard/internal/store"
)

// RootUI wires the store and platform bridges into the main window layout:
// sidebar, shortcut grid, notes area, and calendar panel.
type RootUI struct {
	window fyne.Window
	app    fyne.App
	store  *store.Store
	netcfg *platform.NetConfigurator
	env    config.Env
	loc    *Localization

	sidebar  *sidebar
	grid     *shortcutGrid
	notes    *notesPanel
	calendar *calendarPanel

	lastTheme model.Theme
}

// NewRootUI creates and initializes the main UI. The store must already be
// loaded; the root view registers itself as its change observer.
func NewRootUI(window fyne.Window, app fyne.App, st *store.Store, netcfg *platform.NetConfigurator, env config.Env) *RootUI {
	loc := NewLocalization()
	loc.SetLanguage(st.Language())

	r := &RootUI{
		window: window,
		app:    app,
		store:  st,
		netcfg: netcfg,
		env:    env,
		loc:    loc,
	}

	r.sidebar = newSidebar(r)
	r.grid = newShortcutGrid(r)
	r.notes = newNotesPanel(r)
	r.calendar = newCalendarPanel(r)

	main := container.NewVSplit(r.grid.object(), r.notes.object())
	main.SetOffset(NotesSplitOffset)

	right := container.NewHSplit(main, r.calendar.object())
	right.SetOffset(CalendarSplitOffset)

	content := container.NewHSplit(r.sidebar.object(), right)
	content.SetOffset(SidebarSplitOffset)

	window.SetContent(content)

	st.OnChange(r.refresh)
	r.applyTheme()
	r.refresh()
	return r
}

// tr returns the localized text for a key.
func (r *RootUI) tr(key string) string {
	return r.loc.GetText(key)
}

// refresh re-renders every dependent view after a store mutation. Mutations
// happen on the Fyne goroutine; bridge completions hop onto it via fyne.Do
// before touching the store.
func (r *RootUI) refresh() {
	r.loc.SetLanguage(r.store.Language())
	r.window.SetTitle(r.tr(KeyAppTitle))
	r.applyTheme()

	r.sidebar.refresh()
	r.grid.refresh()
	r.notes.refresh()
	r.calendar.refresh()
}

func (r *RootUI) applyTheme() {
	mode := r.store.Theme()
	if mode == r.lastTheme {
		return
	}
	r.lastTheme = mode
	r.app.Settings().SetTheme(NewBoardTheme(mode))
}

// shortcutIcon resolves a shortcut's display icon: the stored data-URL
// snapshot when present and decodable, the type's builtin icon otherwise.
func shortcutIcon(sc model.Shortcut) fyne.Resource {
	if idx := strings.Index(sc.Icon, "base64,"); idx >= 0 && strings.HasPrefix(sc.Icon, "data:") {
		if data, err := base64.StdEncoding.DecodeString(sc.Icon[idx+len("base64,"):]); err == nil {
			return fyne.NewStaticResource(sc.ID+".icon", data)
		}
	}

	switch sc.Type {
	case model.ShortcutFolder:
		return theme.FolderIcon()
	case model.ShortcutURL:
		return theme.ComputerIcon()
	default:
		return theme.FileIcon()
	}
}

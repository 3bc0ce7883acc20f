package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/homeboard/homeboard/internal/model"
	"github.com/homeboard/homeboard/internal/platform"
	"github.com/homeboard/homeboard/internal/store"
)

// sidebar holds the global shortcut slots, project search and sort controls,
// the project list, and the new-project / settings actions.
type sidebar struct {
	root *RootUI

	slots     *fyne.Container
	search    *widget.Entry
	sortBtn   *widget.Button
	list      *fyne.Container
	newBtn    *widget.Button
	settings  *widget.Button
	sortOrder store.SortOrder
}

func newSidebar(r *RootUI) *sidebar {
	sb := &sidebar{
		root:      r,
		sortOrder: store.SortAscending,
	}

	sb.slots = container.NewGridWithColumns(model.GlobalShortcutSlots)

	sb.search = widget.NewEntry()
	sb.search.SetPlaceHolder(r.tr(KeySearch))
	sb.search.OnChanged = func(string) { sb.refreshList() }

	sb.sortBtn = widget.NewButtonWithIcon("", theme.MenuDropDownIcon(), sb.toggleSort)

	sb.list = container.NewVBox()

	sb.newBtn = widget.NewButtonWithIcon(r.tr(KeyNewProject), theme.ContentAddIcon(), func() {
		showProjectDialog(r, nil)
	})
	sb.newBtn.Importance = widget.HighImportance

	sb.settings = widget.NewButtonWithIcon(r.tr(KeySettings), theme.SettingsIcon(), func() {
		showSettingsDialog(r)
	})

	return sb
}

func (sb *sidebar) object() fyne.CanvasObject {
	top := container.NewVBox(
		sb.slots,
		widget.NewSeparator(),
		container.NewBorder(nil, nil, nil, sb.sortBtn, sb.search),
	)
	bottom := container.NewVBox(widget.NewSeparator(), sb.newBtn, sb.settings)
	return container.NewBorder(top, bottom, nil, nil, container.NewVScroll(sb.list))
}

func (sb *sidebar) toggleSort() {
	if sb.sortOrder == store.SortAscending {
		sb.sortOrder = store.SortDescending
	} else {
		sb.sortOrder = store.SortAscending
	}
	sb.refreshList()
}

func (sb *sidebar) refresh() {
	sb.search.SetPlaceHolder(sb.root.tr(KeySearch))
	sb.newBtn.SetText(sb.root.tr(KeyNewProject))
	sb.settings.SetText(sb.root.tr(KeySettings))
	sb.refreshSlots()
	sb.refreshList()
}

func (sb *sidebar) refreshSlots() {
	r := sb.root
	shortcuts := r.store.GlobalShortcuts()

	sb.slots.RemoveAll()
	for i := 0; i < model.GlobalShortcutSlots; i++ {
		if i < len(shortcuts) {
			sb.slots.Add(sb.slotObject(shortcuts[i]))
			continue
		}
		add := widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
			showShortcutDialog(r, nil, true)
		})
		sb.slots.Add(add)
	}
	sb.slots.Refresh()
}

func (sb *sidebar) slotObject(sc model.Shortcut) fyne.CanvasObject {
	r := sb.root

	launch := widget.NewButtonWithIcon("", shortcutIcon(sc), func() {
		if err := platform.Launch(sc); err != nil {
			dialog.ShowError(err, r.window)
		}
	})

	edit := widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
		edited := sc
		showShortcutDialog(r, &edited, true)
	})
	edit.Importance = widget.LowImportance

	remove := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		dialog.ShowConfirm(r.tr(KeyRemoveShortcut), r.tr(KeyRemoveShortcutAsk), func(ok bool) {
			if ok {
				r.store.RemoveGlobalShortcut(sc.ID)
			}
		}, r.window)
	})
	remove.Importance = widget.LowImportance

	name := widget.NewLabel(sc.Name)
	name.Alignment = fyne.TextAlignCenter
	name.Truncation = fyne.TextTruncateEllipsis

	return container.NewVBox(launch, name, container.NewGridWithColumns(2, edit, remove))
}

func (sb *sidebar) refreshList() {
	r := sb.root
	projects := r.store.VisibleProjects(sb.search.Text, sb.sortOrder)
	activeID := r.store.ActiveProjectID()

	sb.list.RemoveAll()
	if len(projects) == 0 {
		empty := widget.NewLabel(r.tr(KeyNoProjects))
		empty.Alignment = fyne.TextAlignCenter
		sb.list.Add(empty)
		sb.list.Refresh()
		return
	}

	for _, p := range projects {
		sb.list.Add(sb.projectRow(p, p.ID == activeID))
	}
	sb.list.Refresh()
}

func (sb *sidebar) projectRow(p model.Project, active bool) fyne.CanvasObject {
	r := sb.root
	id := p.ID

	open := widget.NewButton(p.Name, func() {
		r.store.SetActiveProject(id)
	})
	open.Alignment = widget.ButtonAlignLeading
	if active {
		open.Importance = widget.HighImportance
	}

	pinIcon := theme.RadioButtonIcon()
	if p.IsPinned {
		pinIcon = theme.RadioButtonCheckedIcon()
	}
	pin := widget.NewButtonWithIcon("", pinIcon, func() {
		r.store.TogglePin(id)
	})
	pin.Importance = widget.LowImportance

	edit := widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
		edited := p
		showProjectDialog(r, &edited)
	})
	edit.Importance = widget.LowImportance

	remove := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		dialog.ShowConfirm(r.tr(KeyDeleteProject), r.tr(KeyDeleteProjectAsk), func(ok bool) {
			if ok {
				r.store.DeleteProject(id)
			}
		}, r.window)
	})
	remove.Importance = widget.LowImportance

	return container.NewBorder(nil, nil, nil, container.NewHBox(pin, edit, remove), open)
}

package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/homeboard/homeboard/internal/model"
	"github.com/homeboard/homeboard/internal/platform"
)

// shortcutGrid shows the active project's shortcuts as launchable cards with
// edit, remove, and reorder controls.
type shortcutGrid struct {
	root *RootUI

	title    *widget.Label
	applyNet *widget.Button
	addBtn   *widget.Button
	cards    *fyne.Container
	content  *fyne.Container
}

func newShortcutGrid(r *RootUI) *shortcutGrid {
	g := &shortcutGrid{root: r}

	g.title = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	g.title.Truncation = fyne.TextTruncateEllipsis

	g.applyNet = widget.NewButtonWithIcon(r.tr(KeyApplyNetwork), theme.ComputerIcon(), g.applyNetwork)
	g.applyNet.Importance = widget.LowImportance

	g.addBtn = widget.NewButtonWithIcon(r.tr(KeyAddShortcut), theme.ContentAddIcon(), func() {
		showShortcutDialog(r, nil, false)
	})

	g.cards = container.NewGridWrap(fyne.NewSize(ShortcutCardSize, ShortcutCardSize))
	g.content = container.NewBorder(
		container.NewBorder(nil, nil, nil, container.NewHBox(g.applyNet, g.addBtn), g.title),
		nil, nil, nil,
		container.NewVScroll(g.cards),
	)
	return g
}

func (g *shortcutGrid) object() fyne.CanvasObject {
	return g.content
}

func (g *shortcutGrid) refresh() {
	r := g.root
	g.addBtn.SetText(r.tr(KeyAddShortcut))
	g.applyNet.SetText(r.tr(KeyApplyNetwork))

	g.cards.RemoveAll()

	active, ok := r.store.ActiveProject()
	if !ok {
		g.title.SetText(r.tr(KeySelectProject))
		g.applyNet.Hide()
		g.addBtn.Hide()
		g.cards.Refresh()
		return
	}

	g.title.SetText(active.Name)
	g.addBtn.Show()
	if active.HasNetworkOverride() {
		g.applyNet.Show()
	} else {
		g.applyNet.Hide()
	}

	shortcuts := r.store.ProjectShortcuts(active.ID)
	for i, sc := range shortcuts {
		g.cards.Add(g.card(sc, i, len(shortcuts)))
	}
	g.cards.Refresh()
}

func (g *shortcutGrid) card(sc model.Shortcut, index, total int) fyne.CanvasObject {
	r := g.root

	launch := widget.NewButtonWithIcon("", shortcutIcon(sc), func() {
		if err := platform.Launch(sc); err != nil {
			dialog.ShowError(err, r.window)
		}
	})

	name := widget.NewLabel(sc.Name)
	name.Alignment = fyne.TextAlignCenter
	name.Truncation = fyne.TextTruncateEllipsis

	left := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() {
		g.move(sc, -1)
	})
	left.Importance = widget.LowImportance
	if index == 0 {
		left.Disable()
	}

	right := widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() {
		g.move(sc, 1)
	})
	right.Importance = widget.LowImportance
	if index == total-1 {
		right.Disable()
	}

	edit := widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
		edited := sc
		showShortcutDialog(r, &edited, false)
	})
	edit.Importance = widget.LowImportance

	remove := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		dialog.ShowConfirm(r.tr(KeyRemoveShortcut), r.tr(KeyRemoveShortcutAsk), func(ok bool) {
			if ok {
				r.store.RemoveShortcut(sc.ID)
			}
		}, r.window)
	})
	remove.Importance = widget.LowImportance

	return container.NewVBox(launch, name, container.NewGridWithColumns(4, left, right, edit, remove))
}

// move swaps the shortcut with its neighbour in the project's display order.
func (g *shortcutGrid) move(sc model.Shortcut, delta int) {
	r := g.root
	shortcuts := r.store.ProjectShortcuts(sc.ProjectID)

	ids := make([]string, len(shortcuts))
	pos := -1
	for i, s := range shortcuts {
		ids[i] = s.ID
		if s.ID == sc.ID {
			pos = i
		}
	}
	target := pos + delta
	if pos < 0 || target < 0 || target >= len(ids) {
		return
	}
	ids[pos], ids[target] = ids[target], ids[pos]

	if err := r.store.ReorderShortcuts(sc.ProjectID, ids); err != nil {
		dialog.ShowError(err, r.window)
	}
}

// applyNetwork pushes the active project's resolved network settings to the
// OS off the UI goroutine, then reports the result back on it.
func (g *shortcutGrid) applyNetwork() {
	r := g.root
	active, ok := r.store.ActiveProject()
	if !ok {
		return
	}
	resolved := active.ResolveNetwork(r.store.NetworkSettings())

	g.applyNet.Disable()
	go func() {
		err := r.netcfg.Apply(context.Background(), resolved)
		fyne.Do(func() {
			g.applyNet.Enable()
			if err != nil {
				dialog.ShowError(err, r.window)
				return
			}
			dialog.ShowInformation(r.tr(KeyNetwork), r.tr(KeyNetworkApplied), r.window)
		})
	}()
}

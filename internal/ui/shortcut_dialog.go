package ui

import (
	"errors"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/homeboard/homeboard/internal/model"
	"github.com/homeboard/homeboard/internal/platform"
	"github.com/homeboard/homeboard/internal/store"
)

// showShortcutDialog opens the shortcut form. A nil existing creates a new
// shortcut; global selects the global slots instead of the active project.
func showShortcutDialog(r *RootUI, existing *model.Shortcut, global bool) {
	activeID := r.store.ActiveProjectID()
	if !global && existing == nil && activeID == "" {
		return
	}

	types := []model.ShortcutType{model.ShortcutFile, model.ShortcutFolder, model.ShortcutURL}
	labels := []string{r.tr(KeyFile), r.tr(KeyFolder), r.tr(KeyURL)}

	name := widget.NewEntry()
	path := widget.NewEntry()
	path.Validator = func(s string) error {
		if s == "" {
			return errors.New(r.tr(KeyPath))
		}
		return nil
	}

	selected := model.ShortcutFile
	typeRadio := widget.NewRadioGroup(labels, func(label string) {
		for i, l := range labels {
			if l == label {
				selected = types[i]
			}
		}
	})
	typeRadio.Horizontal = true
	typeRadio.SetSelected(labels[0])

	browse := widget.NewButton(r.tr(KeyBrowse), func() {
		browseTarget(r, selected, func(picked string) {
			path.SetText(picked)
			if name.Text == "" {
				name.SetText(filepath.Base(picked))
			}
		})
	})

	if existing != nil {
		name.SetText(existing.Name)
		path.SetText(existing.Path)
		for i, t := range types {
			if t == existing.Type {
				selected = t
				typeRadio.SetSelected(labels[i])
			}
		}
	}

	items := []*widget.FormItem{
		widget.NewFormItem("", typeRadio),
		widget.NewFormItem(r.tr(KeyShortcutName), name),
		widget.NewFormItem(r.tr(KeyPath), container.NewBorder(nil, nil, nil, browse, path)),
	}

	title := shortcutDialogTitle(r, existing, global)
	confirm := r.tr(KeyCreate)
	if existing != nil {
		confirm = r.tr(KeySave)
	}

	d := dialog.NewForm(title, confirm, r.tr(KeyCancel), items, func(ok bool) {
		if !ok {
			return
		}

		displayName := name.Text
		if displayName == "" {
			displayName = filepath.Base(path.Text)
		}
		icon := ""
		if selected == model.ShortcutFile {
			icon = platform.FileIcon(path.Text)
		}

		if existing != nil {
			newPath, newType := path.Text, selected
			patch := store.ShortcutPatch{
				Name: &displayName,
				Path: &newPath,
				Type: &newType,
				Icon: &icon,
			}
			if global {
				r.store.UpdateGlobalShortcut(existing.ID, patch)
			} else {
				r.store.UpdateShortcut(existing.ID, patch)
			}
			return
		}

		sc := model.Shortcut{
			Name: displayName,
			Path: path.Text,
			Type: selected,
			Icon: icon,
		}
		if global {
			sc.ProjectID = model.GlobalProjectID
			r.store.AddGlobalShortcut(sc)
		} else {
			sc.ProjectID = activeID
			r.store.AddShortcut(sc)
		}
	}, r.window)
	d.Resize(fyne.NewSize(DialogWidth, DialogHeight))
	d.Show()
}

func shortcutDialogTitle(r *RootUI, existing *model.Shortcut, global bool) string {
	switch {
	case global && existing == nil:
		return r.tr(KeyAddGlobalShortcut)
	case global:
		return r.tr(KeyEditGlobalShortcut)
	case existing == nil:
		return r.tr(KeyAddShortcut)
	default:
		return r.tr(KeyEditShortcut)
	}
}

// browseTarget opens the picker matching the shortcut type. URL shortcuts
// have no picker; the address is typed directly.
func browseTarget(r *RootUI, t model.ShortcutType, pick func(string)) {
	switch t {
	case model.ShortcutFolder:
		dialog.ShowFolderOpen(func(list fyne.ListableURI, err error) {
			if err != nil || list == nil {
				return
			}
			pick(list.Path())
		}, r.window)
	case model.ShortcutFile:
		dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil || reader == nil {
				return
			}
			defer reader.Close()
			pick(reader.URI().Path())
		}, r.window)
	}
}

package ui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/homeboard/homeboard/internal/model"
	"github.com/homeboard/homeboard/internal/store"
)

// showProjectDialog opens the create form when existing is nil, the edit form
// otherwise.
func showProjectDialog(r *RootUI, existing *model.Project) {
	name := widget.NewEntry()
	name.Validator = func(s string) error {
		if s == "" {
			return errors.New(r.tr(KeyProjectName))
		}
		return nil
	}

	description := widget.NewEntry()
	ip := widget.NewEntry()
	ip.Validator = optionalIPv4(r)
	gateway := widget.NewEntry()
	gateway.Validator = optionalIPv4(r)

	if existing != nil {
		name.SetText(existing.Name)
		description.SetText(existing.Description)
		ip.SetText(existing.IP)
		gateway.SetText(existing.Gateway)
	}

	items := []*widget.FormItem{
		widget.NewFormItem(r.tr(KeyProjectName), name),
		widget.NewFormItem(r.tr(KeyDescription), description),
		widget.NewFormItem(r.tr(KeyIPAddress), ip),
		widget.NewFormItem(r.tr(KeyGateway), gateway),
	}

	title := r.tr(KeyCreateProject)
	confirm := r.tr(KeyCreate)
	if existing != nil {
		title = r.tr(KeyEditProject)
		confirm = r.tr(KeySave)
	}

	d := dialog.NewForm(title, confirm, r.tr(KeyCancel), items, func(ok bool) {
		if !ok {
			return
		}
		if existing == nil {
			r.store.CreateProject(name.Text, description.Text, ip.Text, gateway.Text)
			return
		}
		newName, newDesc := name.Text, description.Text
		newIP, newGateway := ip.Text, gateway.Text
		r.store.UpdateProject(existing.ID, store.ProjectPatch{
			Name:        &newName,
			Description: &newDesc,
			IP:          &newIP,
			Gateway:     &newGateway,
		})
	}, r.window)
	d.Resize(fyne.NewSize(DialogWidth, DialogHeight))
	d.Show()
}

// optionalIPv4 accepts an empty value, otherwise requires a valid IPv4
// address.
func optionalIPv4(r *RootUI) func(string) error {
	return func(s string) error {
		if s == "" {
			return nil
		}
		if err := is.IPv4.Validate(s); err != nil {
			return errors.New(r.tr(KeyInvalidIP))
		}
		return nil
	}
}

package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/homeboard/homeboard/internal/notes"
)

// notesPanel is the markdown notes editor for the active project, with a
// rendered preview mode and markdown/HTML export.
type notesPanel struct {
	root *RootUI

	title      *widget.Label
	entry      *widget.Entry
	preview    *widget.RichText
	toggleBtn  *widget.Button
	saveBtn    *widget.Button
	exportMD   *widget.Button
	exportHTML *widget.Button
	body       *fyne.Container

	projectID  string
	previewing bool
}

func newNotesPanel(r *RootUI) *notesPanel {
	p := &notesPanel{root: r}

	p.title = widget.NewLabelWithStyle(r.tr(KeyNotes), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	p.entry = widget.NewMultiLineEntry()
	p.entry.Wrapping = fyne.TextWrapWord

	p.preview = widget.NewRichText()
	p.preview.Wrapping = fyne.TextWrapWord

	p.toggleBtn = widget.NewButtonWithIcon(r.tr(KeyNotesPreview), theme.VisibilityIcon(), p.togglePreview)
	p.saveBtn = widget.NewButtonWithIcon(r.tr(KeySave), theme.DocumentSaveIcon(), p.save)
	p.exportMD = widget.NewButton(r.tr(KeyNotesExportMD), func() { p.export(false) })
	p.exportMD.Importance = widget.LowImportance
	p.exportHTML = widget.NewButton(r.tr(KeyNotesExportHTML), func() { p.export(true) })
	p.exportHTML.Importance = widget.LowImportance

	p.body = container.NewStack(container.NewVScroll(p.entry))
	return p
}

func (p *notesPanel) object() fyne.CanvasObject {
	toolbar := container.NewHBox(p.toggleBtn, p.saveBtn, p.exportMD, p.exportHTML)
	header := container.NewBorder(nil, nil, p.title, toolbar)
	return container.NewBorder(header, nil, nil, nil, p.body)
}

func (p *notesPanel) togglePreview() {
	p.previewing = !p.previewing
	p.body.RemoveAll()
	if p.previewing {
		p.preview.ParseMarkdown(p.entry.Text)
		p.toggleBtn.SetText(p.root.tr(KeyNotesEdit))
		p.body.Add(container.NewVScroll(p.preview))
	} else {
		p.toggleBtn.SetText(p.root.tr(KeyNotesPreview))
		p.body.Add(container.NewVScroll(p.entry))
	}
	p.body.Refresh()
}

func (p *notesPanel) save() {
	if p.projectID == "" {
		return
	}
	p.root.store.UpdateProjectNotes(p.projectID, p.entry.Text)
}

func (p *notesPanel) refresh() {
	r := p.root
	p.title.SetText(r.tr(KeyNotes))
	p.saveBtn.SetText(r.tr(KeySave))
	p.exportMD.SetText(r.tr(KeyNotesExportMD))
	p.exportHTML.SetText(r.tr(KeyNotesExportHTML))
	if p.previewing {
		p.toggleBtn.SetText(r.tr(KeyNotesEdit))
	} else {
		p.toggleBtn.SetText(r.tr(KeyNotesPreview))
	}

	active, ok := r.store.ActiveProject()
	if !ok {
		p.projectID = ""
		p.entry.SetText("")
		p.entry.Disable()
		p.saveBtn.Disable()
		return
	}
	p.entry.Enable()
	p.saveBtn.Enable()

	// Only reload the editor buffer when the selection changes, so a refresh
	// caused by another mutation does not clobber unsaved edits.
	if active.ID != p.projectID {
		p.projectID = active.ID
		p.entry.SetText(active.Notes)
		if p.previewing {
			p.preview.ParseMarkdown(active.Notes)
		}
	}
}

func (p *notesPanel) export(asHTML bool) {
	r := p.root
	active, ok := r.store.ActiveProject()
	if !ok {
		return
	}

	data := []byte(p.entry.Text)
	name := active.Name + ".md"
	if asHTML {
		rendered, err := notes.ExportHTML(active.Name, p.entry.Text)
		if err != nil {
			dialog.ShowError(err, r.window)
			return
		}
		data = rendered
		name = active.Name + ".html"
	}

	save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, r.window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()
		if _, err := writer.Write(data); err != nil {
			dialog.ShowError(err, r.window)
		}
	}, r.window)
	save.SetFileName(name)
	save.Show()
}

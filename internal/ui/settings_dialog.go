package ui

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/homeboard/homeboard/internal/model"
	"github.com/homeboard/homeboard/internal/store"
)

// showSettingsDialog opens the tabbed settings window: appearance and
// language, data export/import, and global network configuration.
func showSettingsDialog(r *RootUI) {
	tabs := container.NewAppTabs(
		container.NewTabItem(r.tr(KeyGeneral), generalTab(r)),
		container.NewTabItem(r.tr(KeyData), dataTab(r)),
		container.NewTabItem(r.tr(KeyNetwork), networkTab(r)),
	)

	d := dialog.NewCustom(r.tr(KeySettings), r.tr(KeyClose), tabs, r.window)
	d.Resize(fyne.NewSize(SettingsWidth, SettingsHeight))
	d.Show()
}

func generalTab(r *RootUI) fyne.CanvasObject {
	themeLabels := map[model.Theme]string{
		model.ThemeLight: r.tr(KeyThemeLight),
		model.ThemeDark:  r.tr(KeyThemeDark),
	}
	themeSelect := widget.NewSelect(
		[]string{themeLabels[model.ThemeLight], themeLabels[model.ThemeDark]},
		func(label string) {
			if label != themeLabels[r.store.Theme()] {
				r.store.ToggleTheme()
			}
		},
	)
	themeSelect.SetSelected(themeLabels[r.store.Theme()])

	langLabels := map[model.Language]string{
		model.LanguageEnglish:  "English",
		model.LanguageJapanese: "日本語",
	}
	langSelect := widget.NewSelect(
		[]string{langLabels[model.LanguageEnglish], langLabels[model.LanguageJapanese]},
		func(label string) {
			if label != langLabels[r.store.Language()] {
				r.store.ToggleLanguage()
			}
		},
	)
	langSelect.SetSelected(langLabels[r.store.Language()])

	google := widget.NewLabel(r.tr(KeyGoogleMissing))
	if r.env.HasGoogleCredentials() {
		google.SetText(r.tr(KeyGoogleConfigured))
	}

	form := widget.NewForm(
		widget.NewFormItem(r.tr(KeyTheme), themeSelect),
		widget.NewFormItem(r.tr(KeyLanguage), langSelect),
		widget.NewFormItem(r.tr(KeyGoogleCalendar), google),
	)
	return container.NewVBox(form)
}

func dataTab(r *RootUI) fyne.CanvasObject {
	export := widget.NewButton(r.tr(KeyExport), func() { exportBundle(r) })
	imp := widget.NewButton(r.tr(KeyImport), func() {
		dialog.ShowConfirm(r.tr(KeyImport), r.tr(KeyImportWarning), func(ok bool) {
			if ok {
				importBundle(r)
			}
		}, r.window)
	})
	return container.NewVBox(export, widget.NewSeparator(), imp)
}

func exportBundle(r *RootUI) {
	bundle := r.store.ExportData()
	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		dialog.ShowError(err, r.window)
		return
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
	save.SetFileName(bundle.FileName(time.Now()))
	save.Show()
}

func importBundle(r *RootUI) {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, r.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		data, err := io.ReadAll(reader)
		if err != nil {
			dialog.ShowError(err, r.window)
			return
		}

		bundle, err := store.ParseBundle(data)
		if err != nil {
			dialog.ShowInformation(r.tr(KeyImport), r.tr(KeyImportFailed), r.window)
			return
		}
		if err := r.store.ImportData(bundle); err != nil {
			dialog.ShowInformation(r.tr(KeyImport), r.tr(KeyImportFailed), r.window)
			return
		}
		dialog.ShowInformation(r.tr(KeyImport), r.tr(KeyImportDone), r.window)
	}, r.window)
}

func networkTab(r *RootUI) fyne.CanvasObject {
	current := r.store.NetworkSettings()

	ip := widget.NewEntry()
	ip.SetText(current.IP)
	ip.Validator = optionalIPv4(r)

	gateway := widget.NewEntry()
	gateway.SetText(current.Gateway)
	gateway.Validator = optionalIPv4(r)

	// One-shot interface listing; the select is not re-populated while the
	// dialog stays open.
	names, err := r.netcfg.ListInterfaces()
	if err != nil || len(names) == 0 {
		names = []string{model.DefaultInterfaceName}
	}
	iface := widget.NewSelect(names, nil)
	iface.SetSelected(current.InterfaceName)
	if iface.Selected == "" {
		iface.SetSelected(names[0])
	}

	status := widget.NewLabel("")
	status.Wrapping = fyne.TextWrapWord

	var apply *widget.Button
	apply = widget.NewButton(r.tr(KeyApplyNetwork), func() {
		ns := model.NetworkSettings{
			IP:            ip.Text,
			Gateway:       gateway.Text,
			InterfaceName: iface.Selected,
		}
		r.store.UpdateGlobalNetworkSettings(ns)

		apply.Disable()
		status.SetText(r.tr(KeyApplyingNetwork))
		go func() {
			err := r.netcfg.Apply(context.Background(), ns)
			fyne.Do(func() {
				apply.Enable()
				if err != nil {
					status.SetText(r.tr(KeyNetworkApplyFailed) + ": " + err.Error())
					return
				}
				status.SetText(r.tr(KeyNetworkApplied))
			})
		}()
	})
	apply.Importance = widget.HighImportance

	form := widget.NewForm(
		widget.NewFormItem(r.tr(KeyIPAddress), ip),
		widget.NewFormItem(r.tr(KeyGateway), gateway),
		widget.NewFormItem(r.tr(KeyInterface), iface),
	)
	return container.NewVBox(form, apply, status)
}

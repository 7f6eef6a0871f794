package preferences

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window   fyne.Window
	settings Settings
	onSave   func(Settings)
	sound    *widget.Check
	haptics  *widget.Check
	quotes   *widget.Check
	backend  *widget.Select
	note     *widget.Label
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("SetPace Settings")

	sound := widget.NewCheck("Sound cues", nil)
	haptics := widget.NewCheck("Flash on phase change", nil)
	quotes := widget.NewCheck("Show motivational quotes", nil)
	backend := widget.NewSelect(StorageBackends, nil)

	note := widget.NewLabel("Storage changes apply after restart.")
	note.Wrapping = fyne.TextWrapWord

	form := container.NewVBox(
		widget.NewLabelWithStyle("Feedback", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		sound,
		haptics,
		widget.NewLabelWithStyle("Timer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		quotes,
		widget.NewLabelWithStyle("Storage", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		backend,
		note,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 320))

	prefs := &Window{
		window:  window,
		onSave:  onSave,
		sound:   sound,
		haptics: haptics,
		quotes:  quotes,
		backend: backend,
		note:    note,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.sound.SetChecked(settings.SoundEnabled)
	prefs.haptics.SetChecked(settings.HapticsEnabled)
	prefs.quotes.SetChecked(settings.ShowQuotes)
	prefs.backend.SetSelected(settings.StorageBackend)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings
	settings.SoundEnabled = prefs.sound.Checked
	settings.HapticsEnabled = prefs.haptics.Checked
	settings.ShowQuotes = prefs.quotes.Checked
	if backend := prefs.backend.Selected; backend != "" {
		settings.StorageBackend = backend
	}

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

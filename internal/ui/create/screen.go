package create

import (
	"context"
	"errors"
	"log/slog"

	"setpace/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

var errSaveFailed = errors.New("failed to save workout, please try again")

// Saver persists a new workout.
type Saver interface {
	Save(ctx context.Context, workout model.Workout) (model.Workout, error)
}

// Callbacks defines navigation handlers for the create screen.
type Callbacks struct {
	OnSaved  func(model.Workout)
	OnCancel func()
}

// Screen is the new-workout form.
type Screen struct {
	saver     Saver
	window    fyne.Window
	callbacks Callbacks
	logger    *slog.Logger

	content     fyne.CanvasObject
	name        *widget.Entry
	sets        *widget.Entry
	workMinutes *widget.Entry
	workSeconds *widget.Entry
	restMinutes *widget.Entry
	restSeconds *widget.Entry
	errorLabel  *widget.Label
	saveButton  *widget.Button
}

// New builds the create screen. window hosts error dialogs.
func New(saver Saver, window fyne.Window, callbacks Callbacks, logger *slog.Logger) *Screen {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	screen := &Screen{
		saver:     saver,
		window:    window,
		callbacks: callbacks,
		logger:    logger.With("screen", "create"),
	}

	screen.name = placeholderEntry("e.g., Boxing, HIIT, Tabata")
	screen.sets = placeholderEntry("8")
	screen.workMinutes = placeholderEntry("3")
	screen.workSeconds = placeholderEntry("0")
	screen.restMinutes = placeholderEntry("1")
	screen.restSeconds = placeholderEntry("0")

	screen.errorLabel = widget.NewLabel("")
	screen.errorLabel.Importance = widget.DangerImportance
	screen.errorLabel.Hide()

	screen.saveButton = widget.NewButtonWithIcon("Save Workout", theme.DocumentSaveIcon(), screen.handleSave)
	screen.saveButton.Importance = widget.HighImportance

	backButton := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() {
		if screen.callbacks.OnCancel != nil {
			screen.callbacks.OnCancel()
		}
	})
	title := widget.NewLabelWithStyle("New Workout", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	form := widget.NewForm(
		widget.NewFormItem("Workout Name", screen.name),
		widget.NewFormItem("Number of Sets", screen.sets),
		widget.NewFormItem("Work Duration", durationRow(screen.workMinutes, screen.workSeconds)),
		widget.NewFormItem("Rest Duration", durationRow(screen.restMinutes, screen.restSeconds)),
	)

	screen.content = container.NewBorder(
		container.NewBorder(nil, nil, backButton, nil, title),
		container.NewVBox(screen.errorLabel, screen.saveButton),
		nil, nil,
		container.NewVScroll(form),
	)
	return screen
}

// Content returns the root canvas object.
func (screen *Screen) Content() fyne.CanvasObject {
	return screen.content
}

// Values returns the current form text.
func (screen *Screen) Values() Values {
	return Values{
		Name:        screen.name.Text,
		Sets:        screen.sets.Text,
		WorkMinutes: screen.workMinutes.Text,
		WorkSeconds: screen.workSeconds.Text,
		RestMinutes: screen.restMinutes.Text,
		RestSeconds: screen.restSeconds.Text,
	}
}

// Clear empties every field.
func (screen *Screen) Clear() {
	for _, entry := range []*widget.Entry{
		screen.name, screen.sets,
		screen.workMinutes, screen.workSeconds,
		screen.restMinutes, screen.restSeconds,
	} {
		entry.SetText("")
	}
	screen.errorLabel.Hide()
}

func (screen *Screen) handleSave() {
	workout, err := Parse(screen.Values())
	if err != nil {
		screen.errorLabel.SetText(Message(err))
		screen.errorLabel.Show()
		return
	}
	screen.errorLabel.Hide()

	saved, err := screen.saver.Save(context.Background(), workout)
	if err != nil {
		screen.logger.Error("save workout", "name", workout.Name, "error", err)
		if screen.window != nil {
			dialog.ShowError(errSaveFailed, screen.window)
		}
		return
	}

	screen.logger.Info("workout saved", "id", saved.ID, "name", saved.Name)
	screen.Clear()
	if screen.callbacks.OnSaved != nil {
		screen.callbacks.OnSaved(saved)
	}
}

func placeholderEntry(placeholder string) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(placeholder)
	return entry
}

func durationRow(minutes, seconds *widget.Entry) fyne.CanvasObject {
	return container.NewGridWithColumns(4,
		minutes, widget.NewLabel("min"),
		seconds, widget.NewLabel("sec"),
	)
}

package home

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"setpace/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Workouts is the repository surface the home screen needs.
type Workouts interface {
	List(ctx context.Context) []model.Workout
	Save(ctx context.Context, workout model.Workout) (model.Workout, error)
	Delete(ctx context.Context, id string) error
}

// Callbacks defines navigation handlers for the home screen.
type Callbacks struct {
	OnOpen        func(model.Workout)
	OnCreate      func()
	OnPreferences func()
}

// Screen lists saved workouts and offers presets when the list is empty.
type Screen struct {
	workouts  Workouts
	window    fyne.Window
	callbacks Callbacks
	logger    *slog.Logger

	items   []model.Workout
	list    *widget.List
	empty   fyne.CanvasObject
	content fyne.CanvasObject
}

// New builds the home screen. window hosts confirmation and error dialogs.
func New(workouts Workouts, window fyne.Window, callbacks Callbacks, logger *slog.Logger) *Screen {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	screen := &Screen{
		workouts:  workouts,
		window:    window,
		callbacks: callbacks,
		logger:    logger.With("screen", "home"),
	}

	screen.list = widget.NewList(
		func() int { return len(screen.items) },
		screen.createItem,
		screen.updateItem,
	)
	screen.list.OnSelected = func(id widget.ListItemID) {
		screen.list.UnselectAll()
		if id < 0 || id >= len(screen.items) {
			return
		}
		if screen.callbacks.OnOpen != nil {
			screen.callbacks.OnOpen(screen.items[id])
		}
	}

	screen.empty = screen.buildEmptyState()

	title := widget.NewLabelWithStyle("Workout Timer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	createButton := widget.NewButtonWithIcon("New", theme.ContentAddIcon(), func() {
		if screen.callbacks.OnCreate != nil {
			screen.callbacks.OnCreate()
		}
	})
	settingsButton := widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		if screen.callbacks.OnPreferences != nil {
			screen.callbacks.OnPreferences()
		}
	})
	header := container.NewBorder(nil, nil, nil, container.NewHBox(createButton, settingsButton), title)

	screen.content = container.NewBorder(header, nil, nil, nil, container.NewStack(screen.list, screen.empty))
	screen.Refresh()
	return screen
}

// Content returns the root canvas object.
func (screen *Screen) Content() fyne.CanvasObject {
	return screen.content
}

// Refresh reloads workouts from the repository.
func (screen *Screen) Refresh() {
	screen.items = screen.workouts.List(context.Background())
	if len(screen.items) == 0 {
		screen.list.Hide()
		screen.empty.Show()
	} else {
		screen.empty.Hide()
		screen.list.Show()
	}
	screen.list.Refresh()
}

// Items returns the workouts currently shown.
func (screen *Screen) Items() []model.Workout {
	return screen.items
}

func (screen *Screen) createItem() fyne.CanvasObject {
	name := widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	summary := widget.NewLabel("")
	deleteButton := widget.NewButtonWithIcon("", theme.DeleteIcon(), nil)
	deleteButton.Importance = widget.DangerImportance
	return container.NewBorder(nil, nil, nil, deleteButton, container.NewVBox(name, summary))
}

func (screen *Screen) updateItem(id widget.ListItemID, object fyne.CanvasObject) {
	if id < 0 || id >= len(screen.items) {
		return
	}
	workout := screen.items[id]

	row := object.(*fyne.Container)
	text := row.Objects[0].(*fyne.Container)
	text.Objects[0].(*widget.Label).SetText(workout.Name)
	text.Objects[1].(*widget.Label).SetText(workout.Summary())
	row.Objects[1].(*widget.Button).OnTapped = func() {
		screen.confirmDelete(workout)
	}
}

func (screen *Screen) confirmDelete(workout model.Workout) {
	if screen.window == nil {
		screen.deleteWorkout(workout.ID)
		return
	}
	message := fmt.Sprintf("Are you sure you want to delete %q?", workout.Name)
	dialog.ShowConfirm("Delete Workout", message, func(confirmed bool) {
		if confirmed {
			screen.deleteWorkout(workout.ID)
		}
	}, screen.window)
}

func (screen *Screen) deleteWorkout(id string) {
	if err := screen.workouts.Delete(context.Background(), id); err != nil {
		screen.logger.Error("delete workout", "id", id, "error", err)
		screen.showError(errors.New("failed to delete workout"))
	}
	screen.Refresh()
}

func (screen *Screen) addPreset(preset model.Workout) {
	if _, err := screen.workouts.Save(context.Background(), preset); err != nil {
		screen.logger.Error("add preset", "name", preset.Name, "error", err)
		screen.showError(fmt.Errorf("failed to add %s", preset.Name))
	}
	screen.Refresh()
}

func (screen *Screen) showError(err error) {
	if screen.window != nil {
		dialog.ShowError(err, screen.window)
	}
}

func (screen *Screen) buildEmptyState() fyne.CanvasObject {
	welcome := widget.NewLabelWithStyle("Welcome!", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	subtitle := widget.NewLabelWithStyle("Get started with a preset workout or create your own", fyne.TextAlignCenter, fyne.TextStyle{})
	subtitle.Wrapping = fyne.TextWrapWord

	grid := container.NewGridWithColumns(2)
	for _, preset := range model.Presets() {
		label := fmt.Sprintf("%s\n%d × %s", preset.Name, preset.Sets, model.FormatDuration(preset.WorkDuration))
		grid.Add(widget.NewButtonWithIcon(label, theme.ContentAddIcon(), func() {
			screen.addPreset(preset)
		}))
	}

	return container.NewVBox(
		welcome,
		subtitle,
		widget.NewLabelWithStyle("Quick Start", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		grid,
	)
}

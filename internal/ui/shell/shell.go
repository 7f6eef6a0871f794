package shell

import (
	"context"
	"errors"
	"log/slog"

	"setpace/internal/core/interval"
	"setpace/internal/core/model"
	"setpace/internal/feedback"
	"setpace/internal/ui/create"
	"setpace/internal/ui/home"
	"setpace/internal/ui/preferences"
	"setpace/internal/ui/timer"
	"setpace/internal/ui/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
)

const windowTitle = "SetPace"

// Workouts is the repository surface used across screens.
type Workouts interface {
	home.Workouts
	Get(ctx context.Context, id string) (model.Workout, bool)
}

// Feedback is the cue player shared by every timer session.
type Feedback interface {
	interval.Feedback
	SetConfig(config feedback.Config)
	SetPulser(pulser feedback.Pulser)
}

// Dependencies wires the shell to the rest of the application.
type Dependencies struct {
	App             fyne.App
	Workouts        Workouts
	Feedback        Feedback
	Scheduler       interval.Scheduler
	Settings        preferences.Settings
	OnSettingsSaved func(preferences.Settings) error
	// KeepAwake toggles display blanking while a timer screen is open.
	// Defaults to the app driver.
	KeepAwake       func(awake bool)
	Logger          *slog.Logger
}

// Shell owns the main window and swaps screen content inside it.
type Shell struct {
	deps   Dependencies
	logger *slog.Logger
	window fyne.Window

	home   *home.Screen
	create *create.Screen
	timer  *timer.Screen
	prefs  *preferences.Window
	tray   *tray.Manager
}

// New creates the main window and the home screen.
func New(deps Dependencies) *Shell {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	if deps.Feedback == nil {
		deps.Feedback = nopFeedback{}
	}
	if deps.Scheduler == nil {
		deps.Scheduler = timer.MainLoopScheduler{}
	}
	if deps.KeepAwake == nil {
		app := deps.App
		deps.KeepAwake = func(awake bool) {
			app.Driver().SetDisableScreenBlanking(awake)
		}
	}

	shell := &Shell{
		deps:   deps,
		logger: deps.Logger.With("component", "shell"),
		window: deps.App.NewWindow(windowTitle),
	}
	shell.window.Resize(fyne.NewSize(420, 640))

	shell.home = home.New(deps.Workouts, shell.window, home.Callbacks{
		OnOpen:        func(workout model.Workout) { shell.OpenWorkout(workout.ID) },
		OnCreate:      shell.ShowCreate,
		OnPreferences: shell.ShowPreferences,
	}, deps.Logger)
	shell.create = create.New(deps.Workouts, shell.window, create.Callbacks{
		OnSaved:  func(model.Workout) { shell.ShowHome() },
		OnCancel: shell.ShowHome,
	}, deps.Logger)
	shell.prefs = preferences.New(deps.App, deps.Settings, shell.saveSettings)

	if desktopApp, ok := deps.App.(desktop.App); ok {
		shell.tray = tray.New(desktopApp, tray.Callbacks{
			OnShow:        shell.Show,
			OnTogglePause: shell.togglePause,
			OnReset:       shell.resetSession,
			OnPreferences: shell.ShowPreferences,
			OnQuit:        shell.Quit,
		})
		shell.window.SetCloseIntercept(shell.window.Hide)
	}

	shell.ShowHome()
	return shell
}

// Window returns the main window.
func (shell *Shell) Window() fyne.Window {
	return shell.window
}

// Show brings the main window to the front.
func (shell *Shell) Show() {
	shell.window.Show()
	shell.window.RequestFocus()
}

// ShowHome closes any running session and shows the workout list.
func (shell *Shell) ShowHome() {
	shell.closeTimer()
	shell.home.Refresh()
	shell.window.SetContent(shell.home.Content())
}

// ShowCreate shows an empty new-workout form.
func (shell *Shell) ShowCreate() {
	shell.closeTimer()
	shell.create.Clear()
	shell.window.SetContent(shell.create.Content())
}

// ShowPreferences opens the settings window.
func (shell *Shell) ShowPreferences() {
	shell.prefs.Show()
}

// OpenWorkout loads a workout by id and shows a fresh timer session for it.
func (shell *Shell) OpenWorkout(id string) {
	workout, ok := shell.deps.Workouts.Get(context.Background(), id)
	if !ok {
		shell.logger.Warn("workout not found", "id", id)
		shell.ShowHome()
		dialog.ShowError(errors.New("workout not found"), shell.window)
		return
	}

	shell.closeTimer()
	engine := interval.New(shell.deps.Scheduler, shell.deps.Feedback, interval.Options{Logger: shell.deps.Logger})
	shell.timer = timer.New(engine, workout, timer.Options{
		ShowQuotes: shell.deps.Settings.ShowQuotes,
		OnBack:     shell.ShowHome,
		OnChange:   shell.updateTray,
		Logger:     shell.deps.Logger,
	})
	shell.deps.Feedback.SetPulser(shell.timer.Pulser())
	shell.window.SetContent(shell.timer.Content())
	shell.deps.KeepAwake(true)
}

// Session returns the active timer screen, or nil.
func (shell *Shell) Session() *timer.Screen {
	return shell.timer
}

// Quit tears down the session and stops the application.
func (shell *Shell) Quit() {
	shell.closeTimer()
	shell.deps.App.Quit()
}

func (shell *Shell) closeTimer() {
	if shell.timer == nil {
		return
	}
	shell.deps.Feedback.SetPulser(nil)
	shell.timer.Close()
	shell.timer = nil
	shell.deps.KeepAwake(false)
	shell.updateTray(interval.Snapshot{Status: interval.StatusIdle})
}

func (shell *Shell) togglePause() {
	if shell.timer == nil {
		return
	}
	engine := shell.timer.Engine()
	if engine.Snapshot().IsPaused {
		engine.Resume()
		return
	}
	engine.Pause()
}

func (shell *Shell) resetSession() {
	if shell.timer != nil {
		shell.timer.Engine().Reset()
	}
}

func (shell *Shell) updateTray(snapshot interval.Snapshot) {
	if shell.tray != nil {
		shell.tray.Update(snapshot)
	}
}

func (shell *Shell) saveSettings(settings preferences.Settings) {
	shell.deps.Settings = settings
	shell.deps.Feedback.SetConfig(settings.FeedbackConfig())
	if shell.deps.OnSettingsSaved == nil {
		return
	}
	if err := shell.deps.OnSettingsSaved(settings); err != nil {
		shell.logger.Error("save settings", "error", err)
		dialog.ShowError(errors.New("failed to save settings"), shell.window)
	}
}

type nopFeedback struct {
	interval.NopFeedback
}

func (nopFeedback) SetConfig(feedback.Config) {}

func (nopFeedback) SetPulser(feedback.Pulser) {}

package timer

import (
	"image/color"
	"log/slog"

	"setpace/internal/core/interval"
	"setpace/internal/core/model"
	"setpace/internal/feedback"
	"setpace/internal/ui/pulse"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Options configures a timer screen.
type Options struct {
	ShowQuotes bool
	OnBack     func()
	OnChange   func(interval.Snapshot)
	Logger     *slog.Logger
}

// Screen renders one workout session and relays user controls to its engine.
type Screen struct {
	engine  *interval.Engine
	workout model.Workout
	options Options
	logger  *slog.Logger

	content       fyne.CanvasObject
	totalLabel    *widget.Label
	phaseText     *canvas.Text
	setLabel      *widget.Label
	clockText     *canvas.Text
	progress      *widget.ProgressBar
	quoteLabel    *widget.Label
	errorLabel    *widget.Label
	startButton   *widget.Button
	pauseButton   *widget.Button
	resumeButton  *widget.Button
	resetButton   *widget.Button
	restartButton *widget.Button
	flash         *canvas.Rectangle
	flasher       *pulse.Flasher

	unsubscribe func()
}

// New builds the timer screen for workout. The screen owns engine until Close.
func New(engine *interval.Engine, workout model.Workout, options Options) *Screen {
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	screen := &Screen{
		engine:  engine,
		workout: workout,
		options: options,
		logger:  logger.With("screen", "timer"),
	}
	screen.build()
	screen.unsubscribe = engine.Subscribe(func(event interval.Event) {
		screen.render(event.Snapshot)
	})
	screen.render(engine.Snapshot())
	return screen
}

// Content returns the root canvas object.
func (screen *Screen) Content() fyne.CanvasObject {
	return screen.content
}

// Pulser returns the flash overlay used as the haptic channel.
func (screen *Screen) Pulser() feedback.Pulser {
	return screen.flasher
}

// Engine exposes the controls for secondary surfaces such as the tray.
func (screen *Screen) Engine() *interval.Engine {
	return screen.engine
}

// Close tears the session down. No tick fires after Close returns.
func (screen *Screen) Close() {
	if screen.unsubscribe != nil {
		screen.unsubscribe()
		screen.unsubscribe = nil
	}
	screen.engine.Close()
	screen.flasher.Stop()
}

func (screen *Screen) build() {
	title := widget.NewLabelWithStyle(screen.workout.Name, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	backButton := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() {
		if screen.options.OnBack != nil {
			screen.options.OnBack()
		}
	})
	screen.totalLabel = widget.NewLabelWithStyle(TotalLine(screen.workout), fyne.TextAlignCenter, fyne.TextStyle{})
	header := container.NewBorder(nil, nil, backButton, nil, container.NewVBox(title, screen.totalLabel))

	screen.phaseText = canvas.NewText("", PhaseColor(interval.StatusIdle))
	screen.phaseText.TextSize = 32
	screen.phaseText.TextStyle = fyne.TextStyle{Bold: true}
	screen.phaseText.Alignment = fyne.TextAlignCenter

	screen.setLabel = widget.NewLabel("")
	screen.setLabel.Alignment = fyne.TextAlignCenter

	screen.clockText = canvas.NewText("00:00", PhaseColor(interval.StatusIdle))
	screen.clockText.TextSize = 64
	screen.clockText.Alignment = fyne.TextAlignCenter
	screen.clockText.TextStyle = fyne.TextStyle{Monospace: true}

	screen.progress = widget.NewProgressBar()
	screen.progress.TextFormatter = func() string { return "" }

	screen.quoteLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	screen.quoteLabel.Wrapping = fyne.TextWrapWord

	screen.errorLabel = widget.NewLabel("")
	screen.errorLabel.Alignment = fyne.TextAlignCenter
	screen.errorLabel.Hide()

	screen.startButton = widget.NewButtonWithIcon("START", theme.MediaPlayIcon(), screen.handleStart)
	screen.startButton.Importance = widget.HighImportance
	screen.pauseButton = widget.NewButtonWithIcon("", theme.MediaPauseIcon(), screen.engine.Pause)
	screen.resumeButton = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), screen.engine.Resume)
	screen.resetButton = widget.NewButtonWithIcon("", theme.MediaStopIcon(), screen.engine.Reset)
	screen.restartButton = widget.NewButtonWithIcon("RESTART", theme.MediaReplayIcon(), screen.engine.Reset)
	screen.restartButton.Importance = widget.HighImportance

	controls := container.NewHBox(
		layout.NewSpacer(),
		screen.startButton,
		screen.pauseButton,
		screen.resumeButton,
		screen.resetButton,
		screen.restartButton,
		layout.NewSpacer(),
	)

	body := container.NewVBox(
		screen.phaseText,
		screen.setLabel,
		screen.clockText,
		screen.progress,
		screen.quoteLabel,
		screen.errorLabel,
		controls,
	)

	screen.flash = canvas.NewRectangle(color.Transparent)
	screen.flasher = pulse.New(pulse.DefaultConfig(), func(fill color.Color) {
		fyne.Do(func() {
			screen.flash.FillColor = fill
			screen.flash.Refresh()
		})
	})

	screen.content = container.NewStack(
		container.NewBorder(header, nil, nil, nil, container.NewCenter(body)),
		screen.flash,
	)
}

func (screen *Screen) handleStart() {
	workout := screen.workout
	if err := screen.engine.Start(&workout); err != nil {
		screen.logger.Warn("start session", "error", err)
		screen.errorLabel.SetText("This workout cannot be started: " + err.Error())
		screen.errorLabel.Show()
		return
	}
	screen.errorLabel.Hide()
}

func (screen *Screen) render(snapshot interval.Snapshot) {
	phaseColor := PhaseColor(snapshot.Status)

	screen.phaseText.Text = PhaseLabel(snapshot.Status)
	screen.phaseText.Color = phaseColor
	screen.phaseText.Refresh()

	screen.setLabel.SetText(SetLine(snapshot))

	screen.clockText.Text = model.FormatClock(snapshot.TimeLeft)
	screen.clockText.Color = phaseColor
	screen.clockText.Refresh()

	screen.progress.SetValue(snapshot.Progress)

	if screen.options.ShowQuotes && snapshot.Status.Running() && snapshot.Quote != "" {
		screen.quoteLabel.SetText("\"" + snapshot.Quote + "\"")
		screen.quoteLabel.Show()
	} else {
		screen.quoteLabel.Hide()
	}

	state := ControlsFor(snapshot)
	setVisible(screen.startButton, state.Start)
	setVisible(screen.pauseButton, state.Pause)
	setVisible(screen.resumeButton, state.Resume)
	setVisible(screen.resetButton, state.Reset)
	setVisible(screen.restartButton, state.Restart)

	if screen.options.OnChange != nil {
		screen.options.OnChange(snapshot)
	}
}

func setVisible(object fyne.CanvasObject, visible bool) {
	if visible {
		object.Show()
		return
	}
	object.Hide()
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"setpace/internal/feedback"
	"setpace/internal/platform"
	"setpace/internal/storage"
	"setpace/internal/ui/preferences"
	"setpace/internal/ui/shell"
	"setpace/internal/ui/timer"
	"setpace/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/mattn/go-isatty"
)

const (
	appName = "SetPace"
	appID   = "com.setpace.app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(run).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	level, err := parseLogLevel(opts.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	lock, err := platform.AcquireSessionLock(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			logger.Info("another instance is running")
			return nil
		}
		return err
	}
	defer func() {
		_ = lock.Release()
	}()

	dir := opts.DataDir
	if dir == "" {
		dir, err = platform.DataDir(appName)
		if err != nil {
			return err
		}
	}

	settings, err := storage.LoadSettings(dir)
	if err != nil {
		logger.Warn("settings unreadable, using defaults", "dir", dir, "error", err)
		settings = preferences.DefaultSettings()
	}

	backend := settings.StorageBackend
	if opts.Storage != "" {
		backend = opts.Storage
	}
	store, err := storage.OpenStore(backend, dir)
	if err != nil {
		return fmt.Errorf("open workout storage: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Warn("close workout storage", "error", closeErr)
		}
	}()
	logger.Info("storage ready", "backend", backend, "dir", dir)

	workouts := storage.NewWorkoutRepository(store, logger)
	player := feedback.NewPlayer(settings.FeedbackConfig(), feedback.NewBellDevice(bellOutput()), nil, logger)
	defer player.Wait()

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.MustIcon("app.svg"))

	appShell := shell.New(shell.Dependencies{
		App:       fyneApp,
		Workouts:  workouts,
		Feedback:  player,
		Scheduler: timer.MainLoopScheduler{},
		Settings:  settings,
		OnSettingsSaved: func(updated preferences.Settings) error {
			return storage.SaveSettings(dir, updated)
		},
		Logger: logger,
	})

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-runCtx.Done()
		if ctx.Err() != nil {
			logger.Info("interrupted, shutting down")
			fyne.Do(appShell.Quit)
		}
	}()

	appShell.Window().Show()
	fyneApp.Run()
	return nil
}

// bellOutput is where cue bells are written. Without a terminal there is
// nobody to hear them.
func bellOutput() io.Writer {
	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return os.Stderr
	}
	return io.Discard
}

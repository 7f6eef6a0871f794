package shell

import (
	"context"
	"errors"
	"testing"
	"time"

	"setpace/internal/core/interval"
	"setpace/internal/core/model"
	"setpace/internal/feedback"
	"setpace/internal/storage"
	"setpace/internal/ui/preferences"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type idleTimer struct{ stopped bool }

func (timer *idleTimer) Stop() bool {
	timer.stopped = true
	return true
}

type idleScheduler struct {
	timers []*idleTimer
}

func (scheduler *idleScheduler) AfterFunc(time.Duration, func()) interval.Timer {
	timer := &idleTimer{}
	scheduler.timers = append(scheduler.timers, timer)
	return timer
}

type recordingFeedback struct {
	interval.NopFeedback
	configs []feedback.Config
	pulsers []feedback.Pulser
}

func (recorder *recordingFeedback) SetConfig(config feedback.Config) {
	recorder.configs = append(recorder.configs, config)
}

func (recorder *recordingFeedback) SetPulser(pulser feedback.Pulser) {
	recorder.pulsers = append(recorder.pulsers, pulser)
}

type fixture struct {
	shell     *Shell
	repo      *storage.WorkoutRepository
	feedback  *recordingFeedback
	scheduler *idleScheduler
	saved     []preferences.Settings
	saveErr   error
	awake     []bool
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	app := test.NewTempApp(t)
	store := storage.NewMemoryStore()
	fix := &fixture{
		repo:      storage.NewWorkoutRepository(store, nil),
		feedback:  &recordingFeedback{},
		scheduler: &idleScheduler{},
	}
	fix.shell = New(Dependencies{
		App:       app,
		Workouts:  fix.repo,
		Feedback:  fix.feedback,
		Scheduler: fix.scheduler,
		Settings:  preferences.DefaultSettings(),
		OnSettingsSaved: func(settings preferences.Settings) error {
			fix.saved = append(fix.saved, settings)
			return fix.saveErr
		},
		KeepAwake: func(awake bool) {
			fix.awake = append(fix.awake, awake)
		},
	})
	t.Cleanup(fix.shell.closeTimer)
	return fix
}

func (fix *fixture) addWorkout(t *testing.T) model.Workout {
	t.Helper()
	saved, err := fix.repo.Save(context.Background(), model.Workout{Name: "Intervals", Sets: 2, WorkDuration: 10, RestDuration: 5})
	require.NoError(t, err)
	return saved
}

func TestShellStartsOnHome(t *testing.T) {
	fix := newFixture(t)

	assert.Nil(t, fix.shell.Session())
	assert.Same(t, fix.shell.home.Content(), fix.shell.Window().Content())
}

func TestOpenWorkoutCreatesSession(t *testing.T) {
	fix := newFixture(t)
	workout := fix.addWorkout(t)

	fix.shell.OpenWorkout(workout.ID)

	session := fix.shell.Session()
	require.NotNil(t, session)
	assert.Same(t, session.Content(), fix.shell.Window().Content())
	require.Len(t, fix.feedback.pulsers, 1)
	assert.NotNil(t, fix.feedback.pulsers[0])

	require.NoError(t, session.Engine().Start(&workout))
	assert.Equal(t, interval.StatusGetReady, session.Engine().Snapshot().Status)
	assert.Equal(t, 2, session.Engine().Snapshot().TotalSets)
}

func TestLeavingTimerClosesSession(t *testing.T) {
	fix := newFixture(t)
	workout := fix.addWorkout(t)
	fix.shell.OpenWorkout(workout.ID)
	engine := fix.shell.Session().Engine()
	require.NoError(t, engine.Start(&workout))

	fix.shell.ShowHome()

	assert.Nil(t, fix.shell.Session())
	assert.Equal(t, interval.StatusIdle, engine.Snapshot().Status)
	for _, timer := range fix.scheduler.timers {
		assert.True(t, timer.stopped)
	}
	require.Len(t, fix.feedback.pulsers, 2)
	assert.Nil(t, fix.feedback.pulsers[1])
}

func TestOpenMissingWorkoutReturnsHome(t *testing.T) {
	fix := newFixture(t)

	fix.shell.OpenWorkout("missing")

	assert.Nil(t, fix.shell.Session())
	assert.Same(t, fix.shell.home.Content(), fix.shell.Window().Content())
}

func TestShowCreate(t *testing.T) {
	fix := newFixture(t)

	fix.shell.ShowCreate()

	assert.Same(t, fix.shell.create.Content(), fix.shell.Window().Content())
}

func TestTogglePauseAndReset(t *testing.T) {
	fix := newFixture(t)
	workout := fix.addWorkout(t)

	assert.NotPanics(t, fix.shell.togglePause)
	assert.NotPanics(t, fix.shell.resetSession)

	fix.shell.OpenWorkout(workout.ID)
	engine := fix.shell.Session().Engine()
	require.NoError(t, engine.Start(&workout))

	fix.shell.togglePause()
	assert.True(t, engine.Snapshot().IsPaused)
	fix.shell.togglePause()
	assert.False(t, engine.Snapshot().IsPaused)

	fix.shell.resetSession()
	assert.Equal(t, interval.StatusIdle, engine.Snapshot().Status)
}

func TestSaveSettingsAppliesFeedbackConfig(t *testing.T) {
	fix := newFixture(t)
	updated := preferences.DefaultSettings()
	updated.SoundEnabled = false
	updated.ShowQuotes = false

	fix.shell.saveSettings(updated)

	require.Len(t, fix.saved, 1)
	assert.Equal(t, updated, fix.saved[0])
	require.Len(t, fix.feedback.configs, 1)
	assert.False(t, fix.feedback.configs[0].SoundEnabled)
	assert.False(t, fix.shell.deps.Settings.ShowQuotes)
}

func TestSaveSettingsFailureKeepsRuntimeConfig(t *testing.T) {
	fix := newFixture(t)
	fix.saveErr = errors.New("read-only config dir")
	updated := preferences.DefaultSettings()
	updated.HapticsEnabled = false

	fix.shell.saveSettings(updated)

	require.Len(t, fix.feedback.configs, 1)
	assert.False(t, fix.feedback.configs[0].HapticsEnabled)
}

func TestTimerKeepsDisplayAwake(t *testing.T) {
	fix := newFixture(t)
	workout := fix.addWorkout(t)
	assert.Empty(t, fix.awake)

	fix.shell.OpenWorkout(workout.ID)
	assert.Equal(t, []bool{true}, fix.awake)

	fix.shell.OpenWorkout(workout.ID)
	assert.Equal(t, []bool{true, false, true}, fix.awake)

	fix.shell.ShowHome()
	assert.Equal(t, []bool{true, false, true, false}, fix.awake)

	fix.shell.ShowHome()
	assert.Len(t, fix.awake, 4)
}

func TestQuitReleasesDisplay(t *testing.T) {
	fix := newFixture(t)
	workout := fix.addWorkout(t)
	fix.shell.OpenWorkout(workout.ID)

	fix.shell.Quit()

	assert.Equal(t, []bool{true, false}, fix.awake)
	assert.Nil(t, fix.shell.Session())
}

func TestMissingWorkoutDoesNotKeepDisplayAwake(t *testing.T) {
	fix := newFixture(t)

	fix.shell.OpenWorkout("missing")

	assert.Empty(t, fix.awake)
}

func TestDefaultKeepAwakeUsesDriver(t *testing.T) {
	app := test.NewTempApp(t)
	shell := New(Dependencies{
		App:       app,
		Workouts:  storage.NewWorkoutRepository(storage.NewMemoryStore(), nil),
		Scheduler: &idleScheduler{},
	})
	t.Cleanup(shell.closeTimer)

	assert.NotPanics(t, func() {
		shell.deps.KeepAwake(true)
		shell.deps.KeepAwake(false)
	})
}

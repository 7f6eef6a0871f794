package interval

import (
	"fmt"
	"log/slog"
	"time"

	"setpace/internal/core/model"
)

// DefaultGetReadyDuration is the lead-in before the first work phase, in seconds.
const DefaultGetReadyDuration = 3

// leadUpCueFrom is the highest pre-decrement value that triggers a lead-up cue.
const leadUpCueFrom = 4

// Options contains runtime options for the Engine.
type Options struct {
	TickInterval     time.Duration
	GetReadyDuration int
	Quotes           QuoteSource
	Logger           *slog.Logger
}

type listenerEntry struct {
	id       int
	listener func(Event)
}

// Engine drives one workout session through get-ready, work and rest phases.
//
// Engine is not safe for concurrent use. Control methods and scheduler callbacks
// must run on the same goroutine.
type Engine struct {
	scheduler Scheduler
	feedback  Feedback
	options   Options
	logger    *slog.Logger

	workout       model.Workout
	status        Status
	timeLeft      int
	phaseDuration int
	currentSet    int
	paused        bool
	quote         string

	timer      Timer
	generation uint64

	listeners      []listenerEntry
	nextListenerID int
}

// New creates an idle Engine.
func New(scheduler Scheduler, feedback Feedback, options Options) *Engine {
	if scheduler == nil {
		scheduler = SystemScheduler
	}
	if feedback == nil {
		feedback = NopFeedback{}
	}
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.GetReadyDuration <= 0 {
		options.GetReadyDuration = DefaultGetReadyDuration
	}
	if options.Quotes == nil {
		options.Quotes = NewRandomQuotes(nil)
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Engine{
		scheduler:  scheduler,
		feedback:   feedback,
		options:    options,
		logger:     logger.With("component", "interval"),
		status:     StatusIdle,
		currentSet: 1,
	}
}

// Subscribe registers an observer. Observers run synchronously after every change.
// The returned function removes the observer.
func (engine *Engine) Subscribe(listener func(Event)) func() {
	engine.nextListenerID++
	id := engine.nextListenerID
	engine.listeners = append(engine.listeners, listenerEntry{id: id, listener: listener})
	return func() {
		for i, entry := range engine.listeners {
			if entry.id == id {
				engine.listeners = append(engine.listeners[:i:i], engine.listeners[i+1:]...)
				return
			}
		}
	}
}

// Start begins a new session for workout, discarding any session in progress.
// A nil workout is ignored. The workout is copied, so later edits do not affect
// the running session.
func (engine *Engine) Start(workout *model.Workout) error {
	if workout == nil {
		return nil
	}
	if err := workout.ValidateForTimer(); err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	engine.cancelTick()
	engine.workout = *workout
	engine.currentSet = 1
	engine.paused = false
	engine.enterPhase(StatusGetReady, engine.options.GetReadyDuration)
	engine.quote = engine.options.Quotes.Next()
	engine.logger.Debug("session started", "workout", workout.Name, "sets", workout.Sets)

	engine.playCue(false)
	engine.emit(EventStateChange)
	engine.arm()
	return nil
}

// Pause freezes the countdown. It is a no-op unless a phase is running.
func (engine *Engine) Pause() {
	if !engine.status.Running() || engine.paused {
		return
	}
	engine.paused = true
	engine.cancelTick()
	engine.emit(EventStateChange)
}

// Resume continues a paused countdown with a fresh tick period.
func (engine *Engine) Resume() {
	if !engine.status.Running() || !engine.paused {
		return
	}
	engine.paused = false
	engine.emit(EventStateChange)
	engine.arm()
}

// Reset cancels any pending tick and returns to IDLE.
func (engine *Engine) Reset() {
	engine.cancelTick()
	engine.status = StatusIdle
	engine.timeLeft = 0
	engine.phaseDuration = 0
	engine.currentSet = 1
	engine.paused = false
	engine.quote = ""
	engine.emit(EventStateChange)
}

// Close resets the engine and drops all observers.
func (engine *Engine) Close() {
	engine.Reset()
	engine.listeners = nil
}

// Snapshot returns the current session view.
func (engine *Engine) Snapshot() Snapshot {
	return Snapshot{
		Status:        engine.status,
		TimeLeft:      engine.timeLeft,
		PhaseDuration: engine.phaseDuration,
		CurrentSet:    engine.currentSet,
		TotalSets:     engine.workout.Sets,
		IsPaused:      engine.paused,
		Quote:         engine.quote,
		Progress:      engine.progress(),
	}
}

func (engine *Engine) arm() {
	engine.cancelTick()
	generation := engine.generation
	engine.timer = engine.scheduler.AfterFunc(engine.options.TickInterval, func() {
		engine.onTimer(generation)
	})
}

// cancelTick stops the pending timer and invalidates callbacks that were already
// queued before the stop took effect.
func (engine *Engine) cancelTick() {
	if engine.timer != nil {
		engine.timer.Stop()
		engine.timer = nil
	}
	engine.generation++
}

func (engine *Engine) onTimer(generation uint64) {
	if generation != engine.generation {
		return
	}
	engine.timer = nil
	engine.tick()
	if engine.status.Running() && !engine.paused && engine.timer == nil {
		engine.arm()
	}
}

func (engine *Engine) tick() {
	if !engine.status.Running() || engine.paused {
		return
	}

	previous := engine.timeLeft
	if previous <= 1 {
		engine.timeLeft = 0
		engine.expire()
		return
	}

	if previous <= leadUpCueFrom {
		engine.playCue(false)
	}
	engine.timeLeft = previous - 1
	engine.emit(EventTick)
}

// expire performs phase-expiry transitions until a phase with time on the clock
// is entered or the session finishes. Only a zero-length rest loops.
func (engine *Engine) expire() {
	for {
		switch engine.status {
		case StatusGetReady:
			engine.enterWork()
		case StatusWork:
			if engine.currentSet < engine.workout.Sets {
				engine.enterPhase(StatusRest, engine.workout.RestDuration)
			} else {
				engine.finish()
			}
		case StatusRest:
			engine.currentSet++
			engine.enterWork()
		default:
			return
		}

		engine.playCue(true)
		engine.playHaptic()
		engine.emit(EventStateChange)

		if !engine.status.Running() || engine.paused || engine.timeLeft > 0 {
			return
		}
	}
}

func (engine *Engine) enterWork() {
	engine.enterPhase(StatusWork, engine.workout.WorkDuration)
	engine.quote = engine.options.Quotes.Next()
}

func (engine *Engine) enterPhase(status Status, duration int) {
	engine.status = status
	engine.timeLeft = duration
	engine.phaseDuration = duration
}

func (engine *Engine) finish() {
	engine.cancelTick()
	engine.status = StatusFinished
	engine.timeLeft = 0
	engine.logger.Debug("session finished", "workout", engine.workout.Name)
}

func (engine *Engine) progress() float64 {
	if engine.phaseDuration <= 0 {
		return 0
	}
	progress := float64(engine.timeLeft) / float64(engine.phaseDuration)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

func (engine *Engine) playCue(big bool) {
	defer engine.recoverFeedback("cue")
	if err := engine.feedback.PlayCue(big); err != nil {
		engine.logger.Debug("cue failed", "big", big, "error", err)
	}
}

func (engine *Engine) playHaptic() {
	defer engine.recoverFeedback("haptic")
	if err := engine.feedback.PlayHapticPulse(); err != nil {
		engine.logger.Debug("haptic pulse failed", "error", err)
	}
}

func (engine *Engine) recoverFeedback(kind string) {
	if recovered := recover(); recovered != nil {
		engine.logger.Debug("feedback panicked", "kind", kind, "panic", recovered)
	}
}

func (engine *Engine) emit(eventType EventType) {
	if len(engine.listeners) == 0 {
		return
	}
	event := Event{
		Type:     eventType,
		Snapshot: engine.Snapshot(),
		At:       time.Now(),
	}
	listeners := append([]listenerEntry(nil), engine.listeners...)
	for _, entry := range listeners {
		entry.listener(event)
	}
}

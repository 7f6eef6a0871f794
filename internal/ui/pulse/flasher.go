package pulse

import (
	"context"
	"image/color"
	"sync"
	"time"
)

// Step is one frame of a flash sequence.
type Step struct {
	Color    color.Color
	Duration time.Duration
}

// Config contains the flash sequences for light and strong pulses.
type Config struct {
	Light  []Step
	Strong []Step
	Clear  color.Color
}

// Flasher plays flash sequences over the timer screen. It stands in for a
// vibration motor on desktop builds.
type Flasher struct {
	mu     sync.Mutex
	config Config
	paint  func(color.Color)
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a Flasher. paint is called from the flasher's goroutine.
func New(config Config, paint func(color.Color)) *Flasher {
	return &Flasher{config: config, paint: paint}
}

// Pulse starts a light or strong flash, interrupting any flash in progress.
func (flasher *Flasher) Pulse(strong bool) {
	steps := flasher.config.Light
	if strong {
		steps = flasher.config.Strong
	}
	flasher.start(steps)
}

// Stop cancels the current flash and clears the overlay.
func (flasher *Flasher) Stop() {
	flasher.mu.Lock()
	cancel, done := flasher.cancel, flasher.done
	flasher.cancel = nil
	flasher.done = nil
	flasher.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
	flasher.paint(flasher.config.Clear)
}

func (flasher *Flasher) start(steps []Step) {
	flasher.mu.Lock()
	if flasher.cancel != nil {
		flasher.cancel()
	}
	previous := flasher.done
	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	flasher.cancel = cancel
	flasher.done = done
	flasher.mu.Unlock()

	go func() {
		defer close(done)
		if previous != nil {
			<-previous
		}
		flasher.run(runCtx, steps)
	}()
}

func (flasher *Flasher) run(ctx context.Context, steps []Step) {
	for _, step := range steps {
		if ctx.Err() != nil {
			return
		}
		flasher.paint(step.Color)
		if !sleepWithContext(ctx, step.Duration) {
			return
		}
	}
	flasher.paint(flasher.config.Clear)
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

package interval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type manualTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (timer *manualTimer) Stop() bool {
	if timer.stopped || timer.fired {
		return false
	}
	timer.stopped = true
	return true
}

// manualScheduler fires callbacks only when the test asks it to.
type manualScheduler struct {
	timers []*manualTimer
}

func (scheduler *manualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	timer := &manualTimer{delay: d, fn: f}
	scheduler.timers = append(scheduler.timers, timer)
	return timer
}

func (scheduler *manualScheduler) pending() []*manualTimer {
	var pending []*manualTimer
	for _, timer := range scheduler.timers {
		if !timer.stopped && !timer.fired {
			pending = append(pending, timer)
		}
	}
	return pending
}

// fire runs every callback pending at call time and reports how many ran.
func (scheduler *manualScheduler) fire() int {
	due := scheduler.pending()
	for _, timer := range due {
		if timer.stopped {
			continue
		}
		timer.fired = true
		timer.fn()
	}
	return len(due)
}

func (scheduler *manualScheduler) ticks(t *testing.T, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		require.Equal(t, 1, scheduler.fire(), "tick %d expected exactly one armed timer", i+1)
	}
}

type sequenceQuotes struct {
	quotes []string
	next   int
}

func (source *sequenceQuotes) Next() string {
	quote := source.quotes[source.next%len(source.quotes)]
	source.next++
	return quote
}

func newTestEngine(feedback Feedback) (*Engine, *manualScheduler) {
	scheduler := &manualScheduler{}
	engine := New(scheduler, feedback, Options{
		Quotes: &sequenceQuotes{quotes: []string{"q1", "q2", "q3", "q4", "q5", "q6"}},
	})
	return engine, scheduler
}

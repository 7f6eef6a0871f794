package timer

import (
	"time"

	"setpace/internal/core/interval"

	"fyne.io/fyne/v2"
)

// MainLoopScheduler fires engine ticks on the fyne main goroutine, which keeps
// the engine and widget updates on one thread.
type MainLoopScheduler struct{}

func (MainLoopScheduler) AfterFunc(delay time.Duration, callback func()) interval.Timer {
	return time.AfterFunc(delay, func() {
		fyne.Do(callback)
	})
}

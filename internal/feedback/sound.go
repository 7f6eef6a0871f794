package feedback

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"
)

var errReleased = errors.New("sound already released")

// Cue identifies which sound to play.
type Cue int

const (
	CueShort Cue = iota
	CueBig
)

// SoundDevice hands out a playable sound per request.
type SoundDevice interface {
	Acquire(cue Cue) (Sound, error)
}

// Sound is a single-use playback handle. Release frees its resources and must be
// called exactly once.
type Sound interface {
	Play(ctx context.Context) error
	Release() error
}

// BellDevice rings the terminal bell on a writer. A big cue rings twice.
type BellDevice struct {
	mu  sync.Mutex
	out io.Writer
	gap time.Duration
}

// NewBellDevice creates a BellDevice writing to out.
func NewBellDevice(out io.Writer) *BellDevice {
	return &BellDevice{out: out, gap: 150 * time.Millisecond}
}

func (device *BellDevice) Acquire(cue Cue) (Sound, error) {
	rings := 1
	if cue == CueBig {
		rings = 2
	}
	return &bellSound{device: device, rings: rings}, nil
}

type bellSound struct {
	device   *BellDevice
	rings    int
	released bool
}

func (sound *bellSound) Play(ctx context.Context) error {
	if sound.released {
		return errReleased
	}
	for i := 0; i < sound.rings; i++ {
		if i > 0 && !sleepWithContext(ctx, sound.device.gap) {
			return ctx.Err()
		}
		if err := sound.device.ring(); err != nil {
			return err
		}
	}
	return nil
}

func (sound *bellSound) Release() error {
	sound.released = true
	return nil
}

func (device *BellDevice) ring() error {
	device.mu.Lock()
	defer device.mu.Unlock()
	_, err := device.out.Write([]byte{'\a'})
	return err
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

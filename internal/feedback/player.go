package feedback

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Pulser produces a haptic (or visual stand-in) pulse.
type Pulser interface {
	Pulse(strong bool)
}

// Config toggles the feedback channels.
type Config struct {
	SoundEnabled   bool
	HapticsEnabled bool
	PlayTimeout    time.Duration
}

// Player implements the interval engine's feedback port. Every call returns
// immediately; playback happens on its own goroutine.
type Player struct {
	mu     sync.RWMutex
	config Config
	device SoundDevice
	pulser Pulser
	logger *slog.Logger
	wg     sync.WaitGroup
}

// NewPlayer creates a Player. A nil device or pulser disables that channel.
func NewPlayer(config Config, device SoundDevice, pulser Pulser, logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Player{
		config: normalize(config),
		device: device,
		pulser: pulser,
		logger: logger.With("component", "feedback"),
	}
}

// SetConfig replaces the configuration for subsequent cues.
func (player *Player) SetConfig(config Config) {
	player.mu.Lock()
	player.config = normalize(config)
	player.mu.Unlock()
}

// SetPulser swaps the haptic target, for example when the timer screen is rebuilt.
func (player *Player) SetPulser(pulser Pulser) {
	player.mu.Lock()
	player.pulser = pulser
	player.mu.Unlock()
}

// PlayCue plays a short or big cue. A short cue also sends a light pulse.
func (player *Player) PlayCue(big bool) error {
	config, device, pulser := player.snapshot()
	if config.SoundEnabled && device != nil {
		cue := CueShort
		if big {
			cue = CueBig
		}
		player.goSafe("sound", func() {
			player.playSound(device, cue, config.PlayTimeout)
		})
	}
	if !big && config.HapticsEnabled && pulser != nil {
		player.goSafe("pulse", func() {
			pulser.Pulse(false)
		})
	}
	return nil
}

// PlayHapticPulse sends a strong pulse.
func (player *Player) PlayHapticPulse() error {
	config, _, pulser := player.snapshot()
	if !config.HapticsEnabled || pulser == nil {
		return nil
	}
	player.goSafe("pulse", func() {
		pulser.Pulse(true)
	})
	return nil
}

// Wait blocks until in-flight cues finish.
func (player *Player) Wait() {
	player.wg.Wait()
}

func (player *Player) snapshot() (Config, SoundDevice, Pulser) {
	player.mu.RLock()
	defer player.mu.RUnlock()
	return player.config, player.device, player.pulser
}

func (player *Player) playSound(device SoundDevice, cue Cue, timeout time.Duration) {
	sound, err := device.Acquire(cue)
	if err != nil {
		player.logger.Warn("acquire sound", "cue", cue, "error", err)
		return
	}
	defer func() {
		if err := sound.Release(); err != nil {
			player.logger.Warn("release sound", "cue", cue, "error", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := sound.Play(ctx); err != nil {
		player.logger.Warn("play sound", "cue", cue, "error", err)
	}
}

func (player *Player) goSafe(kind string, run func()) {
	player.wg.Add(1)
	go func() {
		defer player.wg.Done()
		defer func() {
			if recovered := recover(); recovered != nil {
				player.logger.Warn("feedback panicked", "kind", kind, "panic", recovered)
			}
		}()
		run()
	}()
}

func normalize(config Config) Config {
	if config.PlayTimeout <= 0 {
		config.PlayTimeout = 2 * time.Second
	}
	return config
}

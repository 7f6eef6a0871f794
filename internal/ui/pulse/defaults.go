package pulse

import (
	"image/color"
	"time"
)

var (
	lightFlash  = color.NRGBA{R: 255, G: 255, B: 255, A: 40}
	strongFlash = color.NRGBA{R: 255, G: 255, B: 255, A: 110}
	transparent = color.NRGBA{}
)

// DefaultConfig returns a single soft blink for light pulses and a double blink
// for strong pulses.
func DefaultConfig() Config {
	return Config{
		Light: []Step{
			{Color: lightFlash, Duration: 80 * time.Millisecond},
		},
		Strong: []Step{
			{Color: strongFlash, Duration: 140 * time.Millisecond},
			{Color: transparent, Duration: 80 * time.Millisecond},
			{Color: strongFlash, Duration: 140 * time.Millisecond},
		},
		Clear: transparent,
	}
}

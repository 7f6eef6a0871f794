package timer

import (
	"fmt"
	"image/color"

	"setpace/internal/core/interval"
	"setpace/internal/core/model"
)

var (
	colorGetReady = color.NRGBA{R: 0xFF, G: 0xA5, B: 0x00, A: 0xFF}
	colorWork     = color.NRGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF}
	colorRest     = color.NRGBA{R: 0x21, G: 0x96, B: 0xF3, A: 0xFF}
	colorFinished = color.NRGBA{R: 0x9C, G: 0x27, B: 0xB0, A: 0xFF}
	colorIdle     = color.NRGBA{R: 0x75, G: 0x75, B: 0x75, A: 0xFF}
)

// Controls lists which session buttons are visible.
type Controls struct {
	Start   bool
	Pause   bool
	Resume  bool
	Reset   bool
	Restart bool
}

// ControlsFor maps a snapshot to the visible controls.
func ControlsFor(snapshot interval.Snapshot) Controls {
	switch {
	case snapshot.Status == interval.StatusIdle:
		return Controls{Start: true}
	case snapshot.Status == interval.StatusFinished:
		return Controls{Restart: true}
	case snapshot.IsPaused:
		return Controls{Resume: true, Reset: true}
	default:
		return Controls{Pause: true, Reset: true}
	}
}

// PhaseLabel is the headline shown above the clock.
func PhaseLabel(status interval.Status) string {
	switch status {
	case interval.StatusGetReady:
		return "GET READY"
	case interval.StatusWork:
		return "WORK"
	case interval.StatusRest:
		return "REST"
	case interval.StatusFinished:
		return "FINISHED!"
	default:
		return "READY"
	}
}

func PhaseColor(status interval.Status) color.Color {
	switch status {
	case interval.StatusGetReady:
		return colorGetReady
	case interval.StatusWork:
		return colorWork
	case interval.StatusRest:
		return colorRest
	case interval.StatusFinished:
		return colorFinished
	default:
		return colorIdle
	}
}

// SetLine returns "Set i of n" while a session runs, otherwise an empty string.
func SetLine(snapshot interval.Snapshot) string {
	if !snapshot.Status.Running() || snapshot.TotalSets == 0 {
		return ""
	}
	return fmt.Sprintf("Set %d of %d", snapshot.CurrentSet, snapshot.TotalSets)
}

// TotalLine is the session length including the get-ready lead-in.
func TotalLine(workout model.Workout) string {
	return "Total " + model.FormatClock(workout.TotalDuration(interval.DefaultGetReadyDuration))
}

// StatusLine is the one-line summary used by the tray menu.
func StatusLine(snapshot interval.Snapshot) string {
	switch snapshot.Status {
	case interval.StatusIdle:
		return "Ready"
	case interval.StatusFinished:
		return "Workout finished"
	}
	line := PhaseLabel(snapshot.Status) + " " + model.FormatClock(snapshot.TimeLeft)
	if set := SetLine(snapshot); set != "" {
		line += " · " + set
	}
	if snapshot.IsPaused {
		line += " (paused)"
	}
	return line
}

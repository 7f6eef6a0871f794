package interval

import "time"

// Status is the single authoritative phase of a session.
type Status string

const (
	StatusIdle     Status = "IDLE"
	StatusGetReady Status = "GET_READY"
	StatusWork     Status = "WORK"
	StatusRest     Status = "REST"
	StatusFinished Status = "FINISHED"
)

// Running reports whether the status has a countdown attached.
func (status Status) Running() bool {
	return status == StatusGetReady || status == StatusWork || status == StatusRest
}

// EventType defines the type of engine event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventTick        EventType = "tick"
)

// Snapshot is the read-only view handed to presentation.
type Snapshot struct {
	Status        Status
	TimeLeft      int
	PhaseDuration int
	CurrentSet    int
	TotalSets     int
	IsPaused      bool
	Quote         string
	Progress      float64
}

// Event represents an engine update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	At       time.Time
}

package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidWorkout indicates a workout definition that cannot be timed or stored.
var ErrInvalidWorkout = errors.New("invalid workout")

// Workout is a named interval workout definition.
type Workout struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Sets         int    `json:"sets"`
	WorkDuration int    `json:"workDuration"`
	RestDuration int    `json:"restDuration"`
}

// Validate checks every field required to persist the workout.
func (workout Workout) Validate() error {
	if strings.TrimSpace(workout.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidWorkout)
	}
	return workout.ValidateForTimer()
}

// ValidateForTimer checks only the fields the interval engine reads.
func (workout Workout) ValidateForTimer() error {
	if workout.WorkDuration <= 0 {
		return fmt.Errorf("%w: work duration must be greater than 0", ErrInvalidWorkout)
	}
	if workout.Sets < 1 {
		return fmt.Errorf("%w: sets must be at least 1", ErrInvalidWorkout)
	}
	if workout.RestDuration < 0 {
		return fmt.Errorf("%w: rest duration must not be negative", ErrInvalidWorkout)
	}
	return nil
}

// TotalDuration returns the length of a full session in seconds, including the
// get-ready lead-in.
func (workout Workout) TotalDuration(getReady int) int {
	if workout.Sets < 1 {
		return getReady
	}
	return getReady + workout.Sets*workout.WorkDuration + (workout.Sets-1)*workout.RestDuration
}

// Summary renders the one-line description shown in workout lists.
func (workout Workout) Summary() string {
	return fmt.Sprintf("%d sets • %s work • %s rest",
		workout.Sets, FormatDuration(workout.WorkDuration), FormatDuration(workout.RestDuration))
}

// Presets returns the quick-start catalog. Returned workouts carry no id.
func Presets() []Workout {
	return []Workout{
		{Name: "Boxing", Sets: 8, WorkDuration: 180, RestDuration: 60},
		{Name: "HIIT", Sets: 10, WorkDuration: 30, RestDuration: 15},
		{Name: "Tabata", Sets: 8, WorkDuration: 20, RestDuration: 10},
		{Name: "Stretching", Sets: 5, WorkDuration: 60, RestDuration: 30},
	}
}

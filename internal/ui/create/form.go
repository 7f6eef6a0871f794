package create

import (
	"errors"
	"strconv"
	"strings"

	"setpace/internal/core/model"
)

var (
	errNameRequired = errors.New("workout name is required")
	errWorkRequired = errors.New("work duration must be greater than 0")
)

// Message returns the inline text shown for a Parse error.
func Message(err error) string {
	switch {
	case errors.Is(err, errNameRequired):
		return "Please enter a workout name"
	case errors.Is(err, errWorkRequired):
		return "Work duration must be greater than 0"
	default:
		return err.Error()
	}
}

// Values holds the raw text of the create form.
type Values struct {
	Name        string
	Sets        string
	WorkMinutes string
	WorkSeconds string
	RestMinutes string
	RestSeconds string
}

// Parse turns form text into a workout. Sets defaults to 1 and empty or
// unparsable duration fields count as 0.
func Parse(values Values) (model.Workout, error) {
	name := strings.TrimSpace(values.Name)
	if name == "" {
		return model.Workout{}, errNameRequired
	}

	sets := parseNumber(values.Sets)
	if sets <= 0 {
		sets = 1
	}
	workout := model.Workout{
		Name:         name,
		Sets:         sets,
		WorkDuration: parseNumber(values.WorkMinutes)*60 + parseNumber(values.WorkSeconds),
		RestDuration: parseNumber(values.RestMinutes)*60 + parseNumber(values.RestSeconds),
	}
	if workout.WorkDuration <= 0 {
		return model.Workout{}, errWorkRequired
	}
	if err := workout.Validate(); err != nil {
		return model.Workout{}, err
	}
	return workout, nil
}

func parseNumber(text string) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || parsed < 0 {
		return 0
	}
	return parsed
}

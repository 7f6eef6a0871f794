package create

import (
	"context"
	"errors"
	"testing"

	"setpace/internal/core/model"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSaver struct {
	saved []model.Workout
	err   error
}

func (saver *recordingSaver) Save(_ context.Context, workout model.Workout) (model.Workout, error) {
	if saver.err != nil {
		return model.Workout{}, saver.err
	}
	workout.ID = "id-1"
	saver.saved = append(saver.saved, workout)
	return workout, nil
}

func TestScreenSavesWorkout(t *testing.T) {
	test.NewTempApp(t)
	saver := &recordingSaver{}
	var opened []model.Workout
	screen := New(saver, nil, Callbacks{OnSaved: func(workout model.Workout) {
		opened = append(opened, workout)
	}}, nil)

	test.Type(screen.name, "Tabata")
	test.Type(screen.sets, "8")
	test.Type(screen.workSeconds, "20")
	test.Type(screen.restSeconds, "10")
	test.Tap(screen.saveButton)

	require.Len(t, saver.saved, 1)
	assert.Equal(t, model.Workout{ID: "id-1", Name: "Tabata", Sets: 8, WorkDuration: 20, RestDuration: 10}, saver.saved[0])
	require.Len(t, opened, 1)
	assert.Equal(t, "id-1", opened[0].ID)
	assert.Empty(t, screen.name.Text)
	assert.False(t, screen.errorLabel.Visible())
}

func TestScreenShowsInlineError(t *testing.T) {
	test.NewTempApp(t)
	saver := &recordingSaver{}
	screen := New(saver, nil, Callbacks{}, nil)

	test.Type(screen.name, "No work")
	test.Tap(screen.saveButton)

	assert.Empty(t, saver.saved)
	assert.True(t, screen.errorLabel.Visible())
	assert.Equal(t, "Work duration must be greater than 0", screen.errorLabel.Text)
	assert.Equal(t, "No work", screen.name.Text)
}

func TestScreenKeepsFormOnStorageFailure(t *testing.T) {
	app := test.NewTempApp(t)
	window := app.NewWindow("create")
	t.Cleanup(window.Close)

	saver := &recordingSaver{err: errors.New("disk full")}
	saved := false
	screen := New(saver, window, Callbacks{OnSaved: func(model.Workout) { saved = true }}, nil)
	window.SetContent(screen.Content())

	test.Type(screen.name, "Kept")
	test.Type(screen.workMinutes, "1")
	test.Tap(screen.saveButton)

	assert.False(t, saved)
	assert.Equal(t, "Kept", screen.name.Text)
	assert.False(t, screen.errorLabel.Visible())
}

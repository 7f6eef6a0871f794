package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"setpace/internal/core/model"
)

// WorkoutsKey is the namespaced key holding the serialized workout list.
const WorkoutsKey = "setpace.workouts"

// ErrStorage marks failures of the underlying store on write paths.
var ErrStorage = errors.New("workout storage failure")

// WorkoutRepository persists the workout list as one JSON document.
//
// Every write reads, modifies and rewrites the whole list; concurrent writers
// are not supported.
type WorkoutRepository struct {
	store  Store
	logger *slog.Logger
	newID  func() string
}

// NewWorkoutRepository creates a repository over store.
func NewWorkoutRepository(store Store, logger *slog.Logger) *WorkoutRepository {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &WorkoutRepository{
		store:  store,
		logger: logger.With("component", "workouts"),
		newID:  uuid.NewString,
	}
}

// List returns stored workouts in insertion order. Read failures are logged and
// reported as an empty list.
func (repo *WorkoutRepository) List(ctx context.Context) []model.Workout {
	workouts, err := repo.load(ctx)
	if err != nil {
		repo.logger.Warn("list workouts", "error", err)
		return []model.Workout{}
	}
	return workouts
}

// Get returns the workout with id.
func (repo *WorkoutRepository) Get(ctx context.Context, id string) (model.Workout, bool) {
	for _, workout := range repo.List(ctx) {
		if workout.ID == id {
			return workout, true
		}
	}
	return model.Workout{}, false
}

// Save replaces the stored workout with the same id, or appends it. Workouts
// without an id get a fresh one.
func (repo *WorkoutRepository) Save(ctx context.Context, workout model.Workout) (model.Workout, error) {
	if err := workout.Validate(); err != nil {
		return model.Workout{}, fmt.Errorf("save workout: %w", err)
	}

	workouts, err := repo.load(ctx)
	if err != nil {
		return model.Workout{}, fmt.Errorf("save workout: %w: %w", ErrStorage, err)
	}

	if workout.ID == "" {
		workout.ID = repo.newID()
		workouts = append(workouts, workout)
	} else if index := indexOf(workouts, workout.ID); index >= 0 {
		workouts[index] = workout
	} else {
		workouts = append(workouts, workout)
	}

	if err := repo.persist(ctx, workouts); err != nil {
		return model.Workout{}, fmt.Errorf("save workout: %w: %w", ErrStorage, err)
	}
	repo.logger.Debug("workout saved", "id", workout.ID, "name", workout.Name)
	return workout, nil
}

// Delete removes the workout with id. Unknown ids are not an error.
func (repo *WorkoutRepository) Delete(ctx context.Context, id string) error {
	workouts, err := repo.load(ctx)
	if err != nil {
		return fmt.Errorf("delete workout: %w: %w", ErrStorage, err)
	}

	filtered := workouts[:0]
	for _, workout := range workouts {
		if workout.ID != id {
			filtered = append(filtered, workout)
		}
	}

	if err := repo.persist(ctx, filtered); err != nil {
		return fmt.Errorf("delete workout: %w: %w", ErrStorage, err)
	}
	return nil
}

func (repo *WorkoutRepository) load(ctx context.Context) ([]model.Workout, error) {
	rawData, err := repo.store.Get(ctx, WorkoutsKey)
	if errors.Is(err, ErrNotFound) {
		return []model.Workout{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read workouts: %w", err)
	}

	var workouts []model.Workout
	if err := json.Unmarshal(rawData, &workouts); err != nil {
		return nil, fmt.Errorf("decode workouts: %w", err)
	}
	if workouts == nil {
		workouts = []model.Workout{}
	}
	return workouts, nil
}

func (repo *WorkoutRepository) persist(ctx context.Context, workouts []model.Workout) error {
	serialized, err := json.Marshal(workouts)
	if err != nil {
		return fmt.Errorf("encode workouts: %w", err)
	}
	if err := repo.store.Set(ctx, WorkoutsKey, serialized); err != nil {
		return fmt.Errorf("write workouts: %w", err)
	}
	return nil
}

func indexOf(workouts []model.Workout, id string) int {
	for i, workout := range workouts {
		if workout.ID == id {
			return i
		}
	}
	return -1
}

package storage

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"setpace/internal/core/model"
)

type failingStore struct {
	getErr error
	setErr error
	value  []byte
	writes int
}

func (store *failingStore) Get(context.Context, string) ([]byte, error) {
	if store.getErr != nil {
		return nil, store.getErr
	}
	if store.value == nil {
		return nil, ErrNotFound
	}
	return store.value, nil
}

func (store *failingStore) Set(_ context.Context, _ string, value []byte) error {
	store.writes++
	if store.setErr != nil {
		return store.setErr
	}
	store.value = value
	return nil
}

func (store *failingStore) Close() error { return nil }

func newTestRepository(store Store) *WorkoutRepository {
	repo := NewWorkoutRepository(store, nil)
	next := 0
	repo.newID = func() string {
		next++
		return fmt.Sprintf("id-%d", next)
	}
	return repo
}

func TestSaveIntoEmptyStorage(t *testing.T) {
	ctx := context.Background()
	repo := NewWorkoutRepository(NewMemoryStore(), nil)

	saved, err := repo.Save(ctx, model.Workout{Name: "A", Sets: 8, WorkDuration: 180, RestDuration: 60})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	workouts := repo.List(ctx)
	require.Len(t, workouts, 1)
	assert.Equal(t, saved, workouts[0])
}

func TestSaveReplacesExistingID(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(NewMemoryStore())

	first, err := repo.Save(ctx, model.Workout{Name: "A", Sets: 1, WorkDuration: 10})
	require.NoError(t, err)
	second, err := repo.Save(ctx, model.Workout{Name: "B", Sets: 2, WorkDuration: 20})
	require.NoError(t, err)

	first.Name = "A2"
	first.Sets = 4
	_, err = repo.Save(ctx, first)
	require.NoError(t, err)

	workouts := repo.List(ctx)
	require.Len(t, workouts, 2)
	assert.Equal(t, "A2", workouts[0].Name)
	assert.Equal(t, 4, workouts[0].Sets)
	assert.Equal(t, second, workouts[1])
}

func TestSaveAppendsUnknownID(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(NewMemoryStore())

	saved, err := repo.Save(ctx, model.Workout{ID: "imported", Name: "A", Sets: 1, WorkDuration: 10})
	require.NoError(t, err)
	assert.Equal(t, "imported", saved.ID)
	assert.Len(t, repo.List(ctx), 1)
}

func TestSaveRejectsInvalidWorkout(t *testing.T) {
	store := &failingStore{}
	repo := newTestRepository(store)

	_, err := repo.Save(context.Background(), model.Workout{Name: "A", Sets: 1})
	require.ErrorIs(t, err, model.ErrInvalidWorkout)
	assert.Zero(t, store.writes)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(NewMemoryStore())
	for _, name := range []string{"A", "B", "C"} {
		_, err := repo.Save(ctx, model.Workout{Name: name, Sets: 1, WorkDuration: 10})
		require.NoError(t, err)
	}

	require.NoError(t, repo.Delete(ctx, "id-2"))
	workouts := repo.List(ctx)
	require.Len(t, workouts, 2)
	assert.Equal(t, "A", workouts[0].Name)
	assert.Equal(t, "C", workouts[1].Name)

	require.NoError(t, repo.Delete(ctx, "unknown"))
	assert.Len(t, repo.List(ctx), 2)
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(NewMemoryStore())
	saved, err := repo.Save(ctx, model.Workout{Name: "A", Sets: 1, WorkDuration: 10})
	require.NoError(t, err)

	found, ok := repo.Get(ctx, saved.ID)
	require.True(t, ok)
	assert.Equal(t, saved, found)

	_, ok = repo.Get(ctx, "missing")
	assert.False(t, ok)
}

func TestListDegradesOnFailure(t *testing.T) {
	ctx := context.Background()

	broken := newTestRepository(&failingStore{getErr: errors.New("disk gone")})
	assert.Empty(t, broken.List(ctx))
	assert.NotNil(t, broken.List(ctx))

	corrupt := newTestRepository(&failingStore{value: []byte("{not json")})
	assert.Empty(t, corrupt.List(ctx))
}

func TestWriteFailuresPropagate(t *testing.T) {
	ctx := context.Background()
	diskErr := errors.New("disk full")

	readBroken := newTestRepository(&failingStore{getErr: diskErr})
	_, err := readBroken.Save(ctx, model.Workout{Name: "A", Sets: 1, WorkDuration: 10})
	require.ErrorIs(t, err, ErrStorage)
	require.ErrorIs(t, err, diskErr)
	require.ErrorIs(t, readBroken.Delete(ctx, "x"), ErrStorage)

	writeBroken := newTestRepository(&failingStore{setErr: diskErr})
	_, err = writeBroken.Save(ctx, model.Workout{Name: "A", Sets: 1, WorkDuration: 10})
	require.ErrorIs(t, err, ErrStorage)
	require.ErrorIs(t, writeBroken.Delete(ctx, "x"), diskErr)

	corrupt := newTestRepository(&failingStore{value: []byte("{not json")})
	_, err = corrupt.Save(ctx, model.Workout{Name: "A", Sets: 1, WorkDuration: 10})
	require.ErrorIs(t, err, ErrStorage)
}

func TestRepositoryOverEveryBackend(t *testing.T) {
	ctx := context.Background()
	for name, store := range openTestStores(t) {
		t.Run(name, func(t *testing.T) {
			repo := newTestRepository(store)
			saved, err := repo.Save(ctx, model.Workout{Name: "Tabata", Sets: 8, WorkDuration: 20, RestDuration: 10})
			require.NoError(t, err)
			require.Equal(t, []model.Workout{saved}, repo.List(ctx))

			require.NoError(t, repo.Delete(ctx, saved.ID))
			require.Empty(t, repo.List(ctx))
		})
	}
}

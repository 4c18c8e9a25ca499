package observations_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcherald/mcherald/internal/core/entities/announcement"
	"github.com/mcherald/mcherald/internal/core/entities/observation"
	"github.com/mcherald/mcherald/internal/core/entities/protocol"
	"github.com/mcherald/mcherald/internal/core/entities/status"
	"github.com/mcherald/mcherald/internal/core/entities/target"
	"github.com/mcherald/mcherald/internal/core/repositories"
	"github.com/mcherald/mcherald/internal/persistence/memory/observations"
)

func makeObservation(streak int) observation.Observation {
	tgt := target.MustNew("mc.example.com", 25565)
	st := status.NewUnavailable(protocol.EditionJava, "connection refused")
	return observation.New(tgt, st, streak, false, announcement.DecisionNone, time.Now())
}

func TestObservations_AddThenList(t *testing.T) {
	ctx := context.TODO()
	repo := observations.New(10)

	first := makeObservation(1)
	second := makeObservation(2)
	third := makeObservation(3)
	for _, obs := range []observation.Observation{first, second, third} {
		require.NoError(t, repo.Add(ctx, obs))
	}

	listed, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	// newest first
	assert.Equal(t, third.ID, listed[0].ID)
	assert.Equal(t, second.ID, listed[1].ID)
	assert.Equal(t, first.ID, listed[2].ID)
}

func TestObservations_ListIsLimited(t *testing.T) {
	ctx := context.TODO()
	repo := observations.New(10)

	for i := range 5 {
		require.NoError(t, repo.Add(ctx, makeObservation(i+1)))
	}

	listed, err := repo.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, 5, listed[0].Streak)
	assert.Equal(t, 4, listed[1].Streak)

	all, err := repo.List(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestObservations_OldestAreEvictedAtCap(t *testing.T) {
	ctx := context.TODO()
	repo := observations.New(3)

	for i := range 5 {
		require.NoError(t, repo.Add(ctx, makeObservation(i+1)))
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	listed, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, 5, listed[0].Streak)
	assert.Equal(t, 3, listed[2].Streak)
}

func TestObservations_Latest(t *testing.T) {
	ctx := context.TODO()
	repo := observations.New(10)

	_, err := repo.Latest(ctx)
	require.ErrorIs(t, err, repositories.ErrObservationNotFound)

	newest := makeObservation(2)
	require.NoError(t, repo.Add(ctx, makeObservation(1)))
	require.NoError(t, repo.Add(ctx, newest))

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, newest.ID, latest.ID)
}

func TestObservations_Clear(t *testing.T) {
	ctx := context.TODO()
	repo := observations.New(10)

	require.NoError(t, repo.Add(ctx, makeObservation(1)))
	require.NoError(t, repo.Add(ctx, makeObservation(2)))
	require.NoError(t, repo.Clear(ctx))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = repo.Latest(ctx)
	require.ErrorIs(t, err, repositories.ErrObservationNotFound)
}

func TestObservations_ListCopiesItems(t *testing.T) {
	ctx := context.TODO()
	repo := observations.New(10)

	require.NoError(t, repo.Add(ctx, makeObservation(1)))

	listed, err := repo.List(ctx, 0)
	require.NoError(t, err)
	listed[0].Streak = 42

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, latest.Streak)
}

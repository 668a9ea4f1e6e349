package shooter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateIsReproducible(t *testing.T) {
	a := Simulate(context.Background(), New(), 42, 3000, Autopilot{Restart: true})
	b := Simulate(context.Background(), New(), 42, 3000, Autopilot{Restart: true})

	assert.Equal(t, a, b)
	assert.Equal(t, 3000, a.Ticks)
	assert.Positive(t, a.Games)
	assert.GreaterOrEqual(t, a.Level, 1)
	assert.GreaterOrEqual(t, a.BestScore, a.Score)
	assert.Positive(t, a.Sounds[SoundShoot])
}

func TestSimulateSeedsDiffer(t *testing.T) {
	a := Simulate(context.Background(), New(), 1, 2000, Autopilot{})
	b := Simulate(context.Background(), New(), 2, 2000, Autopilot{})
	assert.NotEqual(t, a.Hash, b.Hash)
}

func TestSimulateCountsBossDefeats(t *testing.T) {
	res := Simulate(context.Background(), New(), 7, 20000, Autopilot{Restart: true})
	assert.Equal(t, res.Sounds[SoundLevelComplete], res.Bosses)
	assert.GreaterOrEqual(t, res.Sounds[SoundGameOver], res.Games-1)
}

func TestSimulateStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := Simulate(ctx, New(), 1, 10000, Autopilot{})
	require.Zero(t, res.Ticks)
	assert.Equal(t, PhaseMenu, res.Phase)
}

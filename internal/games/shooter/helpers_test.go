package shooter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// classicConfig is the default config without power-up drops, so tests
// control every pickup themselves.
func classicConfig() config.ShooterConfig {
	cfg := config.DefaultShooterConfig()
	cfg.PowerUps.Enabled = nil
	return cfg
}

func runtimeWithSeed(seed int64) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.Seed = seed
	return rc
}

// newPlaying returns a session that has just entered PLAYING on level 1.
func newPlaying(t *testing.T, opts ...Option) *Game {
	t.Helper()
	g := New(append([]Option{WithConfig(classicConfig())}, opts...)...)
	g.Reset(runtimeWithSeed(7))
	g.Step(core.InputOf(core.ActionStart))
	require.Equal(t, PhasePlaying, g.Phase())
	return g
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func stepN(g *Game, n int, in core.InputFrame) {
	for i := 0; i < n; i++ {
		g.Step(in)
	}
}

func countSound(sounds []core.Sound, s core.Sound) int {
	n := 0
	for _, v := range sounds {
		if v == s {
			n++
		}
	}
	return n
}

func countOwner(ps []Projectile, o Owner) int {
	n := 0
	for _, p := range ps {
		if p.Owner == o {
			n++
		}
	}
	return n
}

// hostileOnPlayer returns an enemy shot that will overlap the ship after
// one movement step.
func hostileOnPlayer(g *Game) Projectile {
	p := g.player
	return Projectile{X: p.X + 20, Y: p.Y + 10, VY: 6, W: 12, H: 32, Owner: OwnerEnemy}
}

// memStore is an in-memory ScoreStore.
type memStore struct {
	high  int
	saved []int
	err   error
}

func (m *memStore) HighScore(string) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.high, nil
}

func (m *memStore) SaveScore(_ string, score int) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.saved = append(m.saved, score)
	return int64(len(m.saved)), nil
}

var errStoreDown = errors.New("store down")

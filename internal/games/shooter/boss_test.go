package shooter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// arenaBoss places a boss that has finished entering.
func arenaBoss(g *Game, health, maxHealth int) {
	g.destroyed = g.lvl.EnemiesToClear
	g.bossSpawned = true
	g.boss = &Boss{
		X:         (g.cfg.Field.Width - g.cfg.Boss.Width) / 2,
		Y:         g.cfg.Boss.ArenaY,
		W:         g.cfg.Boss.Width,
		H:         g.cfg.Boss.Height,
		Health:    health,
		MaxHealth: maxHealth,
		Pattern:   g.lvl.StartPattern,
		zigDir:    1,
	}
}

// Scenario D: an enraged boss fires on the fast interval.
func TestEnragedBossFiresFaster(t *testing.T) {
	g := newPlaying(t)
	arenaBoss(g, 1, 10)
	require.True(t, g.bossEnraged())
	assert.Equal(t, 30, g.bossAttackInterval())

	for i := 1; i < 30; i++ {
		g.Step(idle())
		require.Zero(t, countOwner(g.projectiles, OwnerBoss), "tick %d", i)
	}

	res := g.Step(idle())
	assert.Equal(t, 1, countOwner(g.projectiles, OwnerBoss))
	assert.Equal(t, 1, countSound(res.Sounds, SoundEnemyShoot))

	var boss *EntityView
	snap := g.Snapshot()
	for i := range snap.Entities {
		if snap.Entities[i].Kind == KindBoss {
			boss = &snap.Entities[i]
		}
	}
	require.NotNil(t, boss)
	assert.True(t, boss.Flags.Has(FlagEnraged))
}

func TestCalmBossUsesLevelDelay(t *testing.T) {
	g := newPlaying(t)
	arenaBoss(g, 10, 10)
	assert.False(t, g.bossEnraged())
	assert.Equal(t, 60, g.bossAttackInterval())

	// Exactly at the threshold is not enraged
	g.boss.Health = 5
	assert.False(t, g.bossEnraged())
	g.boss.Health = 4
	assert.True(t, g.bossEnraged())
}

func TestRageDelayFloor(t *testing.T) {
	g := newPlaying(t)
	g.lvl.BossShootDelay = 12
	arenaBoss(g, 1, 10)
	assert.Equal(t, g.cfg.Boss.MinRageDelay, g.bossAttackInterval())
}

func TestBossVolleyShapes(t *testing.T) {
	tests := []struct {
		level  int
		attack AttackPattern
		shots  int
	}{
		{1, AttackSingle, 1},
		{2, AttackFan, 2},
		{3, AttackRadial, 11},
		{5, AttackFan, 3},
	}

	for _, tc := range tests {
		g := newPlaying(t)
		g.startLevel(tc.level)
		require.Equal(t, tc.attack, g.lvl.Attack)
		arenaBoss(g, 5, 5)

		g.bossVolley()
		shots := g.projectiles
		require.Len(t, shots, tc.shots, "level %d", tc.level)

		switch tc.attack {
		case AttackSingle:
			assert.Zero(t, shots[0].VX)
			assert.Equal(t, g.cfg.Boss.LaserSpeed, shots[0].VY)
		case AttackFan:
			// Symmetric spread, all heading down
			assert.InDelta(t, -shots[0].VX, shots[len(shots)-1].VX, 1e-9)
			for _, s := range shots {
				assert.Greater(t, s.VY, 0.0)
			}
		case AttackRadial:
			up, down := 0, 0
			for _, s := range shots {
				if s.VY < 0 {
					up++
				} else {
					down++
				}
			}
			assert.Positive(t, up)
			assert.Positive(t, down)
		}
		for _, s := range shots {
			assert.Equal(t, OwnerBoss, s.Owner)
		}
	}
}

func TestBossEntryAndArenaBounds(t *testing.T) {
	g := newPlaying(t)
	g.destroyed = g.lvl.EnemiesToClear
	g.spawnBoss()
	require.NotNil(t, g.boss)
	require.True(t, g.boss.Entering)

	entryTicks := int((g.cfg.Boss.ArenaY + g.cfg.Boss.Height) / g.cfg.Boss.EntrySpeed)
	for i := 0; i < entryTicks; i++ {
		g.moveBoss()
	}
	assert.False(t, g.boss.Entering)
	assert.Equal(t, g.cfg.Boss.ArenaY, g.boss.Y)

	maxX := g.cfg.Field.Width - g.boss.W
	maxY := g.cfg.Field.Height/2 - g.boss.H
	seen := map[BossPattern]bool{}
	for i := 0; i < 3*g.lvl.PatternPeriod; i++ {
		g.moveBoss()
		seen[g.boss.Pattern] = true
		require.GreaterOrEqual(t, g.boss.X, 0.0)
		require.LessOrEqual(t, g.boss.X, maxX)
		require.GreaterOrEqual(t, g.boss.Y, 0.0)
		require.LessOrEqual(t, g.boss.Y, maxY)
	}
	assert.Len(t, seen, 3, "every movement pattern is used")
}

func TestBossPatternAdvancesEachPeriod(t *testing.T) {
	g := newPlaying(t)
	arenaBoss(g, 5, 5)
	require.Equal(t, PatternSine, g.boss.Pattern)

	for i := 0; i < g.lvl.PatternPeriod-1; i++ {
		g.moveBoss()
	}
	assert.Equal(t, PatternSine, g.boss.Pattern)
	g.moveBoss()
	assert.Equal(t, PatternOrbit, g.boss.Pattern)
}

func TestBossHealthBarInHUD(t *testing.T) {
	g := newPlaying(t)
	arenaBoss(g, 3, 12)

	hud := g.Snapshot().HUD
	assert.True(t, hud.HasBoss)
	assert.InDelta(t, 0.25, hud.BossHealth, 1e-9)
}

package shooter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

func TestLevelConfigForTable(t *testing.T) {
	levels := config.DefaultShooterConfig().Levels

	tests := []struct {
		level      int
		spawnDelay int
		speed      float64
		clear      int
		bossHealth int
		bossDelay  int
		attack     AttackPattern
		shots      int
	}{
		{1, 60, 2, 20, 5, 60, AttackSingle, 1},
		{2, 45, 3, 30, 8, 45, AttackFan, 2},
		{3, 30, 4, 40, 10, 30, AttackRadial, 11},
	}

	for _, tc := range tests {
		lc := LevelConfigFor(levels, tc.level)
		assert.Equal(t, tc.level, lc.Level)
		assert.Equal(t, tc.spawnDelay, lc.SpawnDelay, "level %d spawn delay", tc.level)
		assert.Equal(t, tc.speed, lc.EnemySpeed, "level %d speed", tc.level)
		assert.Equal(t, tc.clear, lc.EnemiesToClear, "level %d quota", tc.level)
		assert.Equal(t, tc.bossHealth, lc.BossHealth, "level %d boss health", tc.level)
		assert.Equal(t, tc.bossDelay, lc.BossShootDelay, "level %d boss delay", tc.level)
		assert.Equal(t, tc.attack, lc.Attack, "level %d attack", tc.level)
		assert.Equal(t, tc.shots, lc.ShotCount, "level %d shots", tc.level)
		assert.Equal(t, BossPattern((tc.level-1)%3), lc.StartPattern)
		assert.Equal(t, 0.5, lc.RageThreshold)
	}
}

func TestLevelConfigForClampsLow(t *testing.T) {
	levels := config.DefaultShooterConfig().Levels
	first := LevelConfigFor(levels, 1)

	for _, n := range []int{0, -1, -100} {
		assert.Equal(t, first, LevelConfigFor(levels, n), "level %d", n)
	}
}

func TestLevelConfigForExtrapolates(t *testing.T) {
	levels := config.DefaultShooterConfig().Levels

	l4 := LevelConfigFor(levels, 4)
	assert.Equal(t, 25, l4.SpawnDelay)
	assert.Equal(t, 4.5, l4.EnemySpeed)
	assert.Equal(t, 2, l4.EnemyHealth)
	assert.Equal(t, 14, l4.BossHealth)
	assert.InDelta(t, 0.005, l4.EnemyShootChance, 1e-12)
	assert.Equal(t, 27, l4.BossShootDelay)
	assert.Equal(t, 50, l4.EnemiesToClear)
	assert.Equal(t, 420, l4.PatternPeriod)
	assert.Equal(t, AttackSingle, l4.Attack)

	l6 := LevelConfigFor(levels, 6)
	assert.Equal(t, 15, l6.SpawnDelay)
	assert.Equal(t, 3, l6.EnemyHealth)
	assert.Equal(t, 70, l6.EnemiesToClear)
	assert.Equal(t, AttackRadial, l6.Attack)

	l100 := LevelConfigFor(levels, 100)
	assert.Equal(t, 15, l100.SpawnDelay)
	assert.Equal(t, 8.0, l100.EnemySpeed)
	assert.Equal(t, 4, l100.EnemyHealth)
	assert.Equal(t, 10+97*4, l100.BossHealth)
	assert.InDelta(t, 0.01, l100.EnemyShootChance, 1e-12)
	assert.Equal(t, 12, l100.BossShootDelay)
	assert.Equal(t, 100, l100.EnemiesToClear)
	assert.Equal(t, 240, l100.PatternPeriod)
	assert.Equal(t, maxFanShots, LevelConfigFor(levels, 62).ShotCount)
	assert.Equal(t, maxRadialShots, LevelConfigFor(levels, 99).ShotCount)
}

func TestLevelConfigForIsPure(t *testing.T) {
	levels := config.DefaultShooterConfig().Levels
	before := append([]config.LevelEntry(nil), levels.Table...)

	for n := -2; n < 30; n++ {
		assert.Equal(t, LevelConfigFor(levels, n), LevelConfigFor(levels, n))
	}
	assert.Equal(t, before, levels.Table, "table must not be mutated")
}

func TestLevelConfigMonotonic(t *testing.T) {
	levels := config.DefaultShooterConfig().Levels
	prev := LevelConfigFor(levels, 1)

	for n := 2; n <= 50; n++ {
		lc := LevelConfigFor(levels, n)
		assert.LessOrEqual(t, lc.SpawnDelay, prev.SpawnDelay, "level %d", n)
		assert.GreaterOrEqual(t, lc.EnemySpeed, prev.EnemySpeed, "level %d", n)
		assert.GreaterOrEqual(t, lc.BossHealth, prev.BossHealth, "level %d", n)
		assert.GreaterOrEqual(t, lc.EnemiesToClear, prev.EnemiesToClear, "level %d", n)
		assert.GreaterOrEqual(t, lc.SpawnDelay, 1)
		assert.GreaterOrEqual(t, lc.EnemyHealth, 1)
		prev = lc
	}
}

package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
)

// AttackPattern is the shape of a boss volley.
type AttackPattern int

const (
	AttackSingle AttackPattern = iota // One shot straight down
	AttackFan                         // Shots spread across an arc centred straight down
	AttackRadial                      // Shots at evenly spaced angles around the boss
)

// String returns the attack name.
func (a AttackPattern) String() string {
	switch a {
	case AttackSingle:
		return "single"
	case AttackFan:
		return "fan"
	case AttackRadial:
		return "radial"
	default:
		return "unknown"
	}
}

const (
	maxFanShots    = 7
	maxRadialShots = 16
)

// LevelConfig holds the derived parameters of one level.
type LevelConfig struct {
	Level            int
	SpawnDelay       int
	EnemySpeed       float64
	EnemyHealth      int
	BossHealth       int
	EnemyShootChance float64
	BossShootDelay   int
	EnemiesToClear   int
	PatternPeriod    int // Ticks per boss movement pattern
	StartPattern     BossPattern
	Attack           AttackPattern
	ShotCount        int
	RageThreshold    float64
}

// LevelConfigFor derives the configuration of level n.
// Levels below 1 clamp to 1. Levels past the table extend its last entry
// by the scaling steps, each clamped to its cap.
func LevelConfigFor(levels config.LevelsConfig, n int) LevelConfig {
	if n < 1 {
		n = 1
	}

	var entry config.LevelEntry
	if len(levels.Table) > 0 {
		if n <= len(levels.Table) {
			entry = levels.Table[n-1]
		} else {
			entry = extrapolate(levels.Table[len(levels.Table)-1], levels.Scaling, n-len(levels.Table))
		}
	}

	sc := levels.Scaling
	period := sc.PatternPeriod - (n-1)*sc.PatternPeriodStep
	if period < sc.MinPatternPeriod {
		period = sc.MinPatternPeriod
	}
	if period < 1 {
		period = 1
	}

	lc := LevelConfig{
		Level:            n,
		SpawnDelay:       entry.SpawnDelay,
		EnemySpeed:       entry.EnemySpeed,
		EnemyHealth:      entry.EnemyHealth,
		BossHealth:       entry.BossHealth,
		EnemyShootChance: entry.EnemyShootChance,
		BossShootDelay:   entry.BossShootDelay,
		EnemiesToClear:   entry.EnemiesToClear,
		PatternPeriod:    period,
		StartPattern:     BossPattern((n - 1) % patternCount),
		Attack:           AttackPattern((n - 1) % 3),
		RageThreshold:    levels.RageThreshold,
	}

	switch lc.Attack {
	case AttackSingle:
		lc.ShotCount = 1
	case AttackFan:
		lc.ShotCount = min(maxFanShots, 2+(n-1)/3)
	case AttackRadial:
		lc.ShotCount = min(maxRadialShots, 8+n)
	}
	return lc
}

// extrapolate applies k scaling steps to the last authored level.
// A cap never pulls a value back past where the table left it.
func extrapolate(last config.LevelEntry, sc config.ScalingConfig, k int) config.LevelEntry {
	e := last

	e.SpawnDelay = floorInt(last.SpawnDelay-k*sc.SpawnDelayStep, sc.MinSpawnDelay, last.SpawnDelay)
	e.BossShootDelay = floorInt(last.BossShootDelay-k*sc.BossShootDelayStep, sc.MinBossShootDelay, last.BossShootDelay)
	e.EnemySpeed = capFloat(last.EnemySpeed+float64(k)*sc.SpeedStep, sc.MaxSpeed, last.EnemySpeed)
	e.EnemyShootChance = capFloat(last.EnemyShootChance+float64(k)*sc.ShootChanceStep, sc.MaxShootChance, last.EnemyShootChance)
	e.EnemiesToClear = capInt(last.EnemiesToClear+k*sc.ClearStep, sc.MaxClear, last.EnemiesToClear)
	e.BossHealth = last.BossHealth + k*sc.BossHealthStep

	if sc.EnemyHealthEvery > 0 {
		e.EnemyHealth = capInt(last.EnemyHealth+k/sc.EnemyHealthEvery, sc.MaxEnemyHealth, last.EnemyHealth)
	}
	return e
}

// floorInt lowers v to no less than floor, unless start is already below it.
func floorInt(v, floor, start int) int {
	return max(v, min(floor, start))
}

func capInt(v, ceil, start int) int {
	return min(v, max(ceil, start))
}

func capFloat(v, ceil, start float64) float64 {
	return min(v, max(ceil, start))
}

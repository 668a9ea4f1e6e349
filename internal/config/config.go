// Package config provides YAML-based configuration loading and difficulty
// presets for the shooter.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// ShooterConfig contains all configuration for the shooter.
type ShooterConfig struct {
	Field    FieldConfig   `yaml:"field"`
	Player   PlayerConfig  `yaml:"player"`
	Crash    CrashConfig   `yaml:"crash"`
	Enemy    EnemyConfig   `yaml:"enemy"`
	Boss     BossConfig    `yaml:"boss"`
	PowerUps PowerUpConfig `yaml:"powerups"`
	Phases   PhaseConfig   `yaml:"phases"`
	Effects  EffectsConfig `yaml:"effects"`
	Levels   LevelsConfig  `yaml:"levels"`
}

// FieldConfig is the playfield size in world units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player ship and its lasers.
type PlayerConfig struct {
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	BottomMargin      float64 `yaml:"bottom_margin"` // Gap between ship and field bottom
	Speed             float64 `yaml:"speed"`
	Lives             int     `yaml:"lives"`
	FireCooldown      int     `yaml:"fire_cooldown"`       // Ticks between shots
	RapidFireCooldown int     `yaml:"rapid_fire_cooldown"` // Ticks between shots with rapid-fire
	LaserWidth        float64 `yaml:"laser_width"`
	LaserHeight       float64 `yaml:"laser_height"`
	LaserSpeed        float64 `yaml:"laser_speed"`
	GraceTicks        int     `yaml:"grace_ticks"` // Invulnerability after recovering from a crash
}

// CrashConfig defines the post-hit fall and bounce.
type CrashConfig struct {
	Kick          float64 `yaml:"kick"`
	Gravity       float64 `yaml:"gravity"`
	Damping       float64 `yaml:"damping"`
	RecoveryTicks int     `yaml:"recovery_ticks"`
}

// EnemyConfig defines regular enemies.
type EnemyConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	KillScore   int     `yaml:"kill_score"`
	FlashTicks  int     `yaml:"flash_ticks"`
	LaserWidth  float64 `yaml:"laser_width"`
	LaserHeight float64 `yaml:"laser_height"`
	LaserSpeed  float64 `yaml:"laser_speed"`
}

// BossConfig defines the end-of-level boss.
type BossConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	ArenaY       float64 `yaml:"arena_y"`     // Vertical position where the entry ends
	EntrySpeed   float64 `yaml:"entry_speed"` // Units per tick while entering
	ClearBonus   int     `yaml:"clear_bonus"`
	MinRageDelay int     `yaml:"min_rage_delay"`
	FanArc       float64 `yaml:"fan_arc"` // Degrees
	LaserWidth   float64 `yaml:"laser_width"`
	LaserHeight  float64 `yaml:"laser_height"`
	LaserSpeed   float64 `yaml:"laser_speed"`
	SweepRate    float64 `yaml:"sweep_rate"` // Radians per tick for sine and orbit movement
	ZigzagSpeed  float64 `yaml:"zigzag_speed"`
}

// PowerUpConfig defines drops and buff durations.
type PowerUpConfig struct {
	Chance          float64  `yaml:"chance"` // Per-tick drop probability
	FallSpeed       float64  `yaml:"fall_speed"`
	Size            float64  `yaml:"size"`
	MultiplierCap   int      `yaml:"multiplier_cap"`
	MultiplierTicks int      `yaml:"multiplier_ticks"`
	RapidFireTicks  int      `yaml:"rapid_fire_ticks"`
	ShieldTicks     int      `yaml:"shield_ticks"`
	Enabled         []string `yaml:"enabled"` // Subset of multiplier, rapid_fire, shield
}

// PhaseConfig defines phase timings.
type PhaseConfig struct {
	LevelCompleteTicks int `yaml:"level_complete_ticks"`
}

// EffectsConfig defines presentation-only effects.
type EffectsConfig struct {
	Stars           int `yaml:"stars"`
	ExplosionFrames int `yaml:"explosion_frames"`
	ShakeTicks      int `yaml:"shake_ticks"`
}

// LevelsConfig holds the authored level table and the law that extends it.
type LevelsConfig struct {
	Table         []LevelEntry  `yaml:"table"`
	Scaling       ScalingConfig `yaml:"scaling"`
	RageThreshold float64       `yaml:"rage_threshold"` // Boss health fraction below which it enrages
}

// LevelEntry is one authored level.
type LevelEntry struct {
	SpawnDelay       int     `yaml:"spawn_delay"`
	EnemySpeed       float64 `yaml:"enemy_speed"`
	EnemyHealth      int     `yaml:"enemy_health"`
	BossHealth       int     `yaml:"boss_health"`
	EnemyShootChance float64 `yaml:"enemy_shoot_chance"`
	BossShootDelay   int     `yaml:"boss_shoot_delay"`
	EnemiesToClear   int     `yaml:"enemies_to_clear"`
}

// ScalingConfig extrapolates levels past the end of the table.
// Each step is applied once per level beyond the last entry.
type ScalingConfig struct {
	SpawnDelayStep     int     `yaml:"spawn_delay_step"`
	MinSpawnDelay      int     `yaml:"min_spawn_delay"`
	SpeedStep          float64 `yaml:"speed_step"`
	MaxSpeed           float64 `yaml:"max_speed"`
	BossHealthStep     int     `yaml:"boss_health_step"`
	EnemyHealthEvery   int     `yaml:"enemy_health_every"` // Levels per +1 enemy health
	MaxEnemyHealth     int     `yaml:"max_enemy_health"`
	ShootChanceStep    float64 `yaml:"shoot_chance_step"`
	MaxShootChance     float64 `yaml:"max_shoot_chance"`
	BossShootDelayStep int     `yaml:"boss_shoot_delay_step"`
	MinBossShootDelay  int     `yaml:"min_boss_shoot_delay"`
	ClearStep          int     `yaml:"clear_step"`
	MaxClear           int     `yaml:"max_clear"`
	PatternPeriod      int     `yaml:"pattern_period"` // Boss pattern period at level 1
	PatternPeriodStep  int     `yaml:"pattern_period_step"`
	MinPatternPeriod   int     `yaml:"min_pattern_period"`
}

// Power-up names accepted in PowerUpConfig.Enabled.
const (
	PowerUpMultiplier = "multiplier"
	PowerUpRapidFire  = "rapid_fire"
	PowerUpShield     = "shield"
)

// Validate checks that the configuration can drive a simulation.
func (c ShooterConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field must have positive size", ErrInvalidConfig)
	case c.Player.Width <= 0 || c.Player.Height <= 0 || c.Player.Width > c.Field.Width:
		return fmt.Errorf("%w: player size must fit the field", ErrInvalidConfig)
	case c.Enemy.Width <= 0 || c.Enemy.Height <= 0 || c.Enemy.Width > c.Field.Width:
		return fmt.Errorf("%w: enemy size must fit the field", ErrInvalidConfig)
	case c.Boss.Width <= 0 || c.Boss.Height <= 0 || c.Boss.Width > c.Field.Width:
		return fmt.Errorf("%w: boss size must fit the field", ErrInvalidConfig)
	case c.Player.Lives < 1:
		return fmt.Errorf("%w: player.lives must be at least 1", ErrInvalidConfig)
	case c.Player.FireCooldown < 1 || c.Player.RapidFireCooldown < 1:
		return fmt.Errorf("%w: fire cooldowns must be at least 1", ErrInvalidConfig)
	case c.Crash.RecoveryTicks < 1:
		return fmt.Errorf("%w: crash.recovery_ticks must be at least 1", ErrInvalidConfig)
	case c.Levels.RageThreshold < 0 || c.Levels.RageThreshold > 1:
		return fmt.Errorf("%w: levels.rage_threshold must be within [0, 1]", ErrInvalidConfig)
	case c.PowerUps.Chance < 0 || c.PowerUps.Chance > 1:
		return fmt.Errorf("%w: powerups.chance must be within [0, 1]", ErrInvalidConfig)
	case c.PowerUps.MultiplierCap < 1:
		return fmt.Errorf("%w: powerups.multiplier_cap must be at least 1", ErrInvalidConfig)
	case len(c.Levels.Table) == 0:
		return fmt.Errorf("%w: levels.table must not be empty", ErrInvalidConfig)
	}

	for _, name := range c.PowerUps.Enabled {
		switch name {
		case PowerUpMultiplier, PowerUpRapidFire, PowerUpShield:
		default:
			return fmt.Errorf("%w: unknown power-up %q", ErrInvalidConfig, name)
		}
	}

	for i, l := range c.Levels.Table {
		if l.SpawnDelay < 1 || l.EnemyHealth < 1 || l.BossHealth < 1 ||
			l.BossShootDelay < 1 || l.EnemiesToClear < 1 || l.EnemySpeed <= 0 {
			return fmt.Errorf("%w: levels.table[%d] has non-positive values", ErrInvalidConfig, i)
		}
		if l.EnemyShootChance < 0 || l.EnemyShootChance > 1 {
			return fmt.Errorf("%w: levels.table[%d].enemy_shoot_chance must be within [0, 1]", ErrInvalidConfig, i)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a flag value into a preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, s)
	}
}

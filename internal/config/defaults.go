package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the built-in shooter configuration.
// It mirrors defaults/shooter.yaml and is used if the embedded file cannot be parsed.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:             64,
			Height:            64,
			BottomMargin:      20,
			Speed:             6,
			Lives:             3,
			FireCooldown:      12,
			RapidFireCooldown: 5,
			LaserWidth:        8,
			LaserHeight:       24,
			LaserSpeed:        10,
			GraceTicks:        60,
		},
		Crash: CrashConfig{
			Kick:          -10,
			Gravity:       0.5,
			Damping:       0.5,
			RecoveryTicks: 120,
		},
		Enemy: EnemyConfig{
			Width:       48,
			Height:      48,
			KillScore:   100,
			FlashTicks:  6,
			LaserWidth:  12,
			LaserHeight: 32,
			LaserSpeed:  6,
		},
		Boss: BossConfig{
			Width:        96,
			Height:       96,
			ArenaY:       50,
			EntrySpeed:   2,
			ClearBonus:   1000,
			MinRageDelay: 10,
			FanArc:       40,
			LaserWidth:   12,
			LaserHeight:  32,
			LaserSpeed:   6,
			SweepRate:    0.02,
			ZigzagSpeed:  4,
		},
		PowerUps: PowerUpConfig{
			Chance:          0.002,
			FallSpeed:       2,
			Size:            24,
			MultiplierCap:   8,
			MultiplierTicks: 600,
			RapidFireTicks:  480,
			ShieldTicks:     600,
			Enabled:         []string{PowerUpMultiplier, PowerUpRapidFire, PowerUpShield},
		},
		Phases: PhaseConfig{
			LevelCompleteTicks: 180,
		},
		Effects: EffectsConfig{
			Stars:           150,
			ExplosionFrames: 12,
			ShakeTicks:      60,
		},
		Levels: LevelsConfig{
			RageThreshold: 0.5,
			Table: []LevelEntry{
				{SpawnDelay: 60, EnemySpeed: 2, EnemyHealth: 1, BossHealth: 5, EnemyShootChance: 0, BossShootDelay: 60, EnemiesToClear: 20},
				{SpawnDelay: 45, EnemySpeed: 3, EnemyHealth: 1, BossHealth: 8, EnemyShootChance: 0.002, BossShootDelay: 45, EnemiesToClear: 30},
				{SpawnDelay: 30, EnemySpeed: 4, EnemyHealth: 2, BossHealth: 10, EnemyShootChance: 0.004, BossShootDelay: 30, EnemiesToClear: 40},
			},
			Scaling: ScalingConfig{
				SpawnDelayStep:     5,
				MinSpawnDelay:      15,
				SpeedStep:          0.5,
				MaxSpeed:           8,
				BossHealthStep:     4,
				EnemyHealthEvery:   3,
				MaxEnemyHealth:     4,
				ShootChanceStep:    0.001,
				MaxShootChance:     0.01,
				BossShootDelayStep: 3,
				MinBossShootDelay:  12,
				ClearStep:          10,
				MaxClear:           100,
				PatternPeriod:      600,
				PatternPeriodStep:  60,
				MinPatternPeriod:   240,
			},
		},
	}
}

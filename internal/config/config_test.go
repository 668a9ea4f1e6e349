package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := parseShooter(defaultShooterYAML)
	if err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultShooterConfig()) {
		t.Errorf("embedded yaml and DefaultShooterConfig differ:\n%+v\n%+v", cfg, DefaultShooterConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadShooterCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("player:\n  lives: 7\npowerups:\n  enabled: []\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadShooter(path)
	if err != nil {
		t.Fatalf("LoadShooter: %v", err)
	}
	if cfg.Player.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Player.Lives)
	}
	if len(cfg.PowerUps.Enabled) != 0 {
		t.Errorf("Enabled = %v, expected empty", cfg.PowerUps.Enabled)
	}
	// Keys not named in the file keep their defaults
	if cfg.Player.Speed != 6 {
		t.Errorf("Speed = %v, expected default 6", cfg.Player.Speed)
	}
	if len(cfg.Levels.Table) != 3 {
		t.Errorf("level table len = %d, expected 3", len(cfg.Levels.Table))
	}
}

func TestLoadShooterMissingCustomPath(t *testing.T) {
	_, err := LoadShooter(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
}

func TestLoadShooterInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero lives", "player:\n  lives: 0\n"},
		{"bad chance", "powerups:\n  chance: 2\n"},
		{"unknown powerup", "powerups:\n  enabled: [laser_sword]\n"},
		{"empty table", "levels:\n  table: []\n"},
		{"rage above one", "levels:\n  rage_threshold: 1.5\n"},
		{"enemy wider than field", "enemy:\n  width: 900\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadShooter(path)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestApplyShooterPreset(t *testing.T) {
	base := DefaultShooterConfig()

	easy := DefaultShooterConfig()
	ApplyShooterPreset(&easy, DifficultyEasy)
	if easy.Player.Lives != 5 {
		t.Errorf("easy lives = %d, expected 5", easy.Player.Lives)
	}
	if easy.Levels.Table[0].EnemySpeed != 1.5 {
		t.Errorf("easy level 1 speed = %v, expected 1.5", easy.Levels.Table[0].EnemySpeed)
	}

	hard := DefaultShooterConfig()
	ApplyShooterPreset(&hard, DifficultyHard)
	if hard.Player.Lives != 2 {
		t.Errorf("hard lives = %d, expected 2", hard.Player.Lives)
	}
	if hard.PowerUps.Chance != 0.001 {
		t.Errorf("hard chance = %v, expected 0.001", hard.PowerUps.Chance)
	}

	normal := DefaultShooterConfig()
	ApplyShooterPreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, base) {
		t.Error("normal preset should not change the config")
	}
}

func TestApplyShooterPresetDoesNotAlias(t *testing.T) {
	cfg := DefaultShooterConfig()
	table := cfg.Levels.Table
	ApplyShooterPreset(&cfg, DifficultyHard)
	if table[0].EnemySpeed != 2 {
		t.Errorf("original table mutated: speed = %v", table[0].EnemySpeed)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"easy", DifficultyEasy, false},
		{"normal", DifficultyNormal, false},
		{"hard", DifficultyHard, false},
		{"", DifficultyNormal, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.expected {
			t.Errorf("ParseDifficulty(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestLoadEnv(t *testing.T) {
	for _, k := range []string{EnvDB, EnvFPS, EnvLogLevel} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	path := filepath.Join(t.TempDir(), ".env")
	data := []byte("SHOOTER_DB=/tmp/s.db\nSHOOTER_FPS=30\nSHOOTER_LOG_LEVEL=debug\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	env, err := LoadEnv(path)
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	want := Env{DBPath: "/tmp/s.db", FPS: 30, LogLevel: "debug"}
	if env != want {
		t.Errorf("LoadEnv = %+v, expected %+v", env, want)
	}
}

func TestLoadEnvMissingFile(t *testing.T) {
	t.Setenv(EnvFPS, "")
	os.Unsetenv(EnvFPS)

	env, err := LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("missing dotenv file should be ignored: %v", err)
	}
	if env.FPS != 0 {
		t.Errorf("FPS = %d, expected 0", env.FPS)
	}
}

func TestLoadEnvBadFPS(t *testing.T) {
	t.Setenv(EnvFPS, "fast")
	_, err := LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

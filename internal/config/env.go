package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Env holds flag defaults taken from the environment.
// Zero values mean "not set".
type Env struct {
	DBPath   string
	FPS      int
	LogLevel string
}

// Environment variable names read by LoadEnv.
const (
	EnvDB       = "SHOOTER_DB"
	EnvFPS      = "SHOOTER_FPS"
	EnvLogLevel = "SHOOTER_LOG_LEVEL"
)

// LoadEnv loads dotenv files (a missing file is not an error) and reads the
// shooter variables. Variables already set in the process take precedence.
func LoadEnv(files ...string) (Env, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Env{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	env := Env{
		DBPath:   os.Getenv(EnvDB),
		LogLevel: os.Getenv(EnvLogLevel),
	}
	if v := os.Getenv(EnvFPS); v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil || fps <= 0 {
			return env, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvFPS, v)
		}
		env.FPS = fps
	}
	return env, nil
}

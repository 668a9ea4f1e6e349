package shooter

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// Registered game variants.
const (
	IDShooter = "shooter"
	IDClassic = "shooter_classic"
)

// Settings chosen on the command line, read when the registry creates a game.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	defaultLogger    *log.Logger
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetLogger sets the logger given to games created by the registry.
func SetLogger(l *log.Logger) {
	defaultLogger = l
}

// LoadVariantConfig loads the configuration for a variant using the
// command-line settings. The classic variant has no power-ups.
func LoadVariantConfig(id string) (config.ShooterConfig, error) {
	cfg, err := config.LoadShooter(configPath)
	if err != nil {
		return cfg, err
	}
	if difficultyPreset != "" {
		config.ApplyShooterPreset(&cfg, difficultyPreset)
	}

	switch id {
	case IDShooter:
	case IDClassic:
		cfg.PowerUps.Enabled = nil
	default:
		return cfg, fmt.Errorf("shooter: unknown variant %q", id)
	}
	return cfg, nil
}

// NewVariant creates a session for a registered variant.
func NewVariant(id string, opts ...Option) (*Game, error) {
	cfg, err := LoadVariantConfig(id)
	if err != nil {
		return nil, err
	}
	base := []Option{WithConfig(cfg), WithID(id, variantTitle(id)), WithLogger(defaultLogger)}
	return New(append(base, opts...)...), nil
}

func variantTitle(id string) string {
	if id == IDClassic {
		return "Space Shooter (Classic)"
	}
	return "Space Shooter"
}

// newRegistered is the registry factory. Config errors fall back to the
// built-in defaults; the CLI validates the config before playing.
func newRegistered(id string) registry.Game {
	g, err := NewVariant(id)
	if err != nil {
		cfg := config.DefaultShooterConfig()
		if id == IDClassic {
			cfg.PowerUps.Enabled = nil
		}
		return New(WithConfig(cfg), WithID(id, variantTitle(id)), WithLogger(defaultLogger))
	}
	return g
}

func init() {
	registry.Register(IDShooter, func() registry.Game {
		return newRegistered(IDShooter)
	})
	registry.Register(IDClassic, func() registry.Game {
		return newRegistered(IDClassic)
	})
}

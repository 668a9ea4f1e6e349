// shooter is a terminal space shooter: steer a ship, clear enemy waves and
// beat a boss on every level.
//
// Usage:
//
//	shooter list              - List available modes
//	shooter play [mode]       - Play a mode (default: shooter)
//	shooter menu              - Pick a mode interactively
//	shooter scores [mode]     - Show high scores
//	shooter serve             - Start SSH server for remote play
//	shooter headless          - Run the autopilot without a terminal
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60, env SHOOTER_FPS)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (env SHOOTER_DB)
//	--config <path>       - Custom shooter config YAML
//	--difficulty <preset> - easy, normal or hard
//	--log-level <level>   - debug, info, warn, error (env SHOOTER_LOG_LEVEL)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

const defaultDBPath = "~/.arcade/scores.db"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string

	// logger is configured in the root pre-run hook
	logger  = log.New(os.Stderr)
	logSink io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logSink != nil {
		logSink.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Space Shooter - a retro arcade shooter in your terminal",
	Long: `Space Shooter is a terminal arcade game. Steer your ship, shoot down
enemy waves, collect power-ups and defeat a boss on every level.

Available commands:
  list      - Show all available modes
  play      - Play a mode directly
  menu      - Interactive mode picker
  scores    - View high scores
  serve     - Start SSH server for remote play
  headless  - Run the autopilot and print a report

Examples:
  shooter play
  shooter play shooter_classic --difficulty hard
  shooter headless --seed 42 --ticks 36000
  shooter serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", defaultDBPath, "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom shooter config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(headlessCmd)
}

// setup applies environment defaults, configures logging and hands the
// config settings to the shooter factory.
func setup(cmd *cobra.Command, _ []string) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if !flags.Changed("fps") && env.FPS > 0 {
		flagFPS = env.FPS
	}
	if !flags.Changed("db") && env.DBPath != "" {
		flagDBPath = env.DBPath
	}
	if !flags.Changed("log-level") && env.LogLevel != "" {
		flagLogLevel = env.LogLevel
	}
	if flagFPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", config.ErrInvalidConfig, flagFPS)
	}

	if err := setupLogger(); err != nil {
		return err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	shooter.SetConfigPath(flagConfig)
	shooter.SetDifficultyPreset(preset)
	shooter.SetLogger(logger)
	return nil
}

func setupLogger() error {
	level, err := log.ParseLevel(strings.ToLower(flagLogLevel))
	if err != nil {
		return fmt.Errorf("%w: log level %q", config.ErrInvalidConfig, flagLogLevel)
	}

	var out io.Writer = os.Stderr
	if flagLogFile != "" {
		path := expandHome(flagLogFile)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		logSink = f
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "shooter",
		Level:           level,
	})
	return nil
}

// interactiveLogger is used while the alt screen owns the terminal.
// Without --log-file, logs are dropped so they cannot corrupt the frame.
func interactiveLogger() *log.Logger {
	if flagLogFile == "" {
		return log.New(io.Discard)
	}
	return logger
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// validateMode checks a mode ID and its config before a session starts, so
// a broken config file is reported instead of silently replaced.
func validateMode(id string) error {
	if _, err := shooter.LoadVariantConfig(id); err != nil {
		return err
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/platform/audio"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (default: shooter).

Controls:
  A/D, Left/Right - Steer
  Space           - Fire
  Enter           - Start
  P/Esc           - Pause
  R               - Restart (after game over)
  Ctrl+S          - Save a screenshot
  Ctrl+Y          - Copy the frame to the clipboard
  Q/Ctrl+C        - Quit

Examples:
  shooter play
  shooter play shooter_classic
  shooter play --difficulty hard --mute
  shooter play --config ./my-shooter.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := shooter.IDShooter
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'shooter list' to see available modes", gameID)
	}
	if err := validateMode(gameID); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	sink := openSink()
	defer sink.Close()

	shooter.SetLogger(interactiveLogger())
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	logger.Info("starting game", "game", gameID, "seed", flagSeed, "fps", flagFPS)

	return tui.Run(game, runtimeConfig(), tui.Options{
		Store:  store,
		Sink:   sink,
		Logger: interactiveLogger(),
	})
}

// runtimeConfig sizes the session to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. Play continues without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// openSink opens the speaker unless muted. Play continues silently without it.
func openSink() audio.Sink {
	if flagMute {
		return audio.Nop{}
	}
	sink, err := audio.OpenSpeaker(interactiveLogger())
	if err != nil {
		logger.Warn("audio unavailable, playing muted", "error", err)
		return audio.Nop{}
	}
	return sink
}

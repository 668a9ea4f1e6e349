package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	flagTicks     int
	flagRuns      int
	flagRecord    bool
	flagNoRestart bool
)

var headlessCmd = &cobra.Command{
	Use:   "headless [mode]",
	Short: "Run the autopilot without a terminal",
	Long: `Drive a session with the built-in autopilot and print a report.
Runs are reproducible: the same seed and mode always give the same report.

With --runs N, seeds seed, seed+1, ... seed+N-1 are simulated in turn.
With --record, each report is stored and listed by 'shooter scores -i'.

Examples:
  shooter headless --seed 42
  shooter headless shooter_classic --ticks 108000 --runs 5 --record`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHeadless,
}

func init() {
	headlessCmd.Flags().IntVar(&flagTicks, "ticks", 36000, "Ticks to simulate per run")
	headlessCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of consecutive seeds to run")
	headlessCmd.Flags().BoolVar(&flagRecord, "record", false, "Store each report in the database")
	headlessCmd.Flags().BoolVar(&flagNoRestart, "no-restart", false, "Stop playing after the first game over")
}

func runHeadless(cmd *cobra.Command, args []string) error {
	gameID := shooter.IDShooter
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'shooter list' to see available modes", gameID)
	}
	if flagTicks <= 0 || flagRuns <= 0 {
		return fmt.Errorf("--ticks and --runs must be positive")
	}

	var store *storage.Store
	if flagRecord {
		var err error
		store, err = storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("cannot open scores database: %w", err)
		}
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	for i := range flagRuns {
		game, err := shooter.NewVariant(gameID)
		if err != nil {
			return err
		}

		start := time.Now()
		res := shooter.Simulate(ctx, game, seed+int64(i), flagTicks, shooter.Autopilot{Restart: !flagNoRestart})
		logger.Debug("run finished", "game", gameID, "seed", res.Seed, "elapsed", time.Since(start))

		printReport(cmd.OutOrStdout(), gameID, res)

		if store != nil {
			id, err := store.SaveRun(storage.RunReport{
				GameID: gameID,
				Seed:   res.Seed,
				Ticks:  res.Ticks,
				Score:  res.BestScore,
				Level:  res.Level,
				Phase:  res.Phase.String(),
			})
			if err != nil {
				return fmt.Errorf("cannot record run: %w", err)
			}
			logger.Info("run recorded", "id", id, "seed", res.Seed)
		}

		if ctx.Err() != nil {
			logger.Warn("interrupted", "completed", i+1, "runs", flagRuns)
			return nil
		}
	}
	return nil
}

func printReport(out io.Writer, gameID string, res shooter.RunResult) {
	fmt.Fprintf(out, "mode=%s seed=%d ticks=%d\n", gameID, res.Seed, res.Ticks)
	fmt.Fprintf(out, "  score=%d best=%d level=%d phase=%s\n", res.Score, res.BestScore, res.Level, res.Phase)
	fmt.Fprintf(out, "  games=%d bosses=%d hash=%016x\n", res.Games, res.Bosses, res.Hash)

	tags := make([]core.Sound, 0, len(res.Sounds))
	for s := range res.Sounds {
		tags = append(tags, s)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	fmt.Fprint(out, "  sounds:")
	for _, tag := range tags {
		fmt.Fprintf(out, " %s=%d", tag, res.Sounds[tag])
	}
	fmt.Fprintln(out)
}

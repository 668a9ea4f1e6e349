package shooter

import (
	"context"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// RunResult summarises a headless run.
type RunResult struct {
	Seed      int64
	Ticks     int // Ticks actually simulated
	Score     int // Score at the end of the run
	BestScore int // Best final or current score across restarts
	Level     int // Highest level reached
	Phase     Phase
	Games     int // Games started
	Bosses    int // Bosses defeated
	Sounds    map[core.Sound]int
	Hash      uint64 // Hash of the final snapshot
}

// Simulate resets g with seed and drives it with the autopilot for up to
// ticks steps. Cancelling ctx stops the run early.
func Simulate(ctx context.Context, g *Game, seed int64, ticks int, pilot Autopilot) RunResult {
	runtime := core.DefaultConfig()
	runtime.Seed = seed
	g.Reset(runtime)

	res := RunResult{Seed: seed, Sounds: make(map[core.Sound]int)}
	snap := g.Snapshot()
	for res.Ticks < ticks {
		if res.Ticks%1024 == 0 && ctx.Err() != nil {
			break
		}

		in := pilot.Next(snap)
		if in.Has(core.ActionStart) || in.Has(core.ActionRestart) {
			res.Games++
		}
		out := g.Step(in)
		res.Ticks++

		for _, s := range out.Sounds {
			res.Sounds[s]++
			if s == SoundLevelComplete {
				res.Bosses++
			}
		}

		snap = g.Snapshot()
		res.BestScore = max(res.BestScore, snap.HUD.Score)
		res.Level = max(res.Level, snap.HUD.Level)
	}

	res.Score = snap.HUD.Score
	res.Phase = snap.HUD.Phase
	res.Hash = snap.Hash()
	return res
}

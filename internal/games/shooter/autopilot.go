package shooter

import (
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Autopilot tuning in world units.
const (
	autopilotDeadZone  = 8   // Horizontal slack before steering
	autopilotLookAhead = 160 // How far above the ship threats are considered
	autopilotMargin    = 12  // Extra width around the ship when checking threats
)

// Autopilot produces input from snapshots. It is deterministic and never
// reads the RNG, so headless runs are reproducible from the seed alone.
type Autopilot struct {
	// Restart makes the pilot start a new game after GAME_OVER.
	Restart bool
}

// Next returns the input for the tick following snap.
func (a *Autopilot) Next(snap Snapshot) core.InputFrame {
	switch snap.HUD.Phase {
	case PhaseMenu:
		return core.InputOf(core.ActionStart)
	case PhaseGameOver:
		if a.Restart {
			return core.InputOf(core.ActionRestart)
		}
		return core.NewInputFrame()
	case PhaseLevelComplete:
		return core.NewInputFrame()
	}

	var player *EntityView
	for i := range snap.Entities {
		if snap.Entities[i].Kind == KindPlayer {
			player = &snap.Entities[i]
			break
		}
	}
	in := core.InputOf(core.ActionFire)
	if player == nil {
		return in
	}

	pcx := player.X + player.W/2

	if threat, ok := nearestThreat(snap, player); ok {
		// Step away from the shot, toward the side with more room
		if threat < pcx && player.X+player.W < snap.FieldW || player.X <= 0 {
			in.Set(core.ActionRight)
		} else {
			in.Set(core.ActionLeft)
		}
		return in
	}

	target := targetX(snap)
	switch {
	case target < pcx-autopilotDeadZone:
		in.Set(core.ActionLeft)
	case target > pcx+autopilotDeadZone:
		in.Set(core.ActionRight)
	}
	return in
}

// nearestThreat returns the x-centre of the closest hostile shot heading
// into the ship's column.
func nearestThreat(snap Snapshot, player *EntityView) (float64, bool) {
	best := math.Inf(1)
	x := 0.0
	for _, e := range snap.Entities {
		if e.Kind != KindEnemyShot && e.Kind != KindBossShot {
			continue
		}
		if e.X+e.W < player.X-autopilotMargin || e.X > player.X+player.W+autopilotMargin {
			continue
		}
		dist := player.Y - (e.Y + e.H)
		if dist < -player.H || dist > autopilotLookAhead {
			continue
		}
		if dist < best {
			best = dist
			x = e.X + e.W/2
		}
	}
	return x, !math.IsInf(best, 1)
}

// targetX picks the boss, else the lowest enemy, else the field centre.
func targetX(snap Snapshot) float64 {
	lowest := -math.MaxFloat64
	x := snap.FieldW / 2
	for _, e := range snap.Entities {
		switch e.Kind {
		case KindBoss:
			return e.X + e.W/2
		case KindEnemy, KindGunner:
			if e.Y > lowest {
				lowest = e.Y
				x = e.X + e.W/2
			}
		}
	}
	return x
}

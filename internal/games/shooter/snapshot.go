package shooter

import "math"

// Kind identifies what an entity view depicts.
type Kind int

const (
	KindStar Kind = iota
	KindParticle
	KindPowerUpMultiplier
	KindPowerUpRapidFire
	KindPowerUpShield
	KindEnemy
	KindGunner
	KindBoss
	KindPlayerShot
	KindEnemyShot
	KindBossShot
	KindPlayer
)

// Flags carry presentation hints for an entity.
type Flags uint8

const (
	FlagFlashing     Flags = 1 << iota // Recently hit
	FlagInvulnerable                   // Player should blink
	FlagShielded                       // Player shield is up
	FlagEntering                       // Boss is still entering
	FlagEnraged                        // Boss is below its rage threshold
	FlagCrashing                       // Player is in the crash sub-state
)

// Has reports whether all bits of f are set.
func (fl Flags) Has(f Flags) bool {
	return fl&f == f
}

// EntityView is a read-only description of one drawable thing.
type EntityView struct {
	Kind  Kind
	X, Y  float64
	W, H  float64
	Flags Flags
}

// HUD holds the scalars shown around the playfield.
type HUD struct {
	Score           int
	HighScore       int
	Lives           int
	Level           int
	Phase           Phase
	Paused          bool
	Multiplier      int
	MultiplierTicks int
	RapidFireTicks  int
	ShieldTicks     int
	HasBoss         bool
	BossHealth      float64 // Fraction in [0, 1]
	EnemiesLeft     int     // Kills still needed before the boss
	CompleteTicks   int     // Countdown to the next level
	Shake           int
}

// Snapshot is the complete post-tick view of a session, in draw order.
type Snapshot struct {
	Tick        int
	FieldW      float64
	FieldH      float64
	HUD         HUD
	Entities    []EntityView
	RNGState    uint64
	CosmeticRNG uint64
}

// Snapshot returns the current state for rendering and tests.
func (g *Game) Snapshot() Snapshot {
	p := &g.player
	hud := HUD{
		Score:           g.score,
		HighScore:       max(g.highScore, g.score),
		Lives:           p.Lives,
		Level:           g.level,
		Phase:           g.phase,
		Paused:          g.paused,
		Multiplier:      p.Multiplier,
		MultiplierTicks: p.MultiplierTicks,
		RapidFireTicks:  p.RapidFireTicks,
		ShieldTicks:     p.ShieldTicks,
		EnemiesLeft:     max(0, g.lvl.EnemiesToClear-g.destroyed),
		CompleteTicks:   g.completeTimer,
		Shake:           g.shake,
	}
	if g.boss != nil {
		hud.HasBoss = true
		hud.BossHealth = g.boss.HealthFraction()
	}

	n := len(g.stars) + len(g.powerUps) + len(g.enemies) + len(g.projectiles) + 2
	for _, ex := range g.explosions {
		n += len(ex.Particles)
	}
	ents := make([]EntityView, 0, n)

	for _, s := range g.stars {
		ents = append(ents, EntityView{Kind: KindStar, X: s.X, Y: s.Y, W: 1, H: s.Speed})
	}

	for _, pu := range g.powerUps {
		kind := KindPowerUpMultiplier
		switch pu.Kind {
		case PowerUpRapidFire:
			kind = KindPowerUpRapidFire
		case PowerUpShield:
			kind = KindPowerUpShield
		}
		ents = append(ents, EntityView{Kind: kind, X: pu.X, Y: pu.Y, W: pu.Size, H: pu.Size})
	}

	for _, e := range g.enemies {
		v := EntityView{Kind: KindEnemy, X: e.X, Y: e.Y, W: e.W, H: e.H}
		if e.Tier == TierGunner {
			v.Kind = KindGunner
		}
		if e.Flash > 0 {
			v.Flags |= FlagFlashing
		}
		ents = append(ents, v)
	}

	if b := g.boss; b != nil {
		v := EntityView{Kind: KindBoss, X: b.X, Y: b.Y, W: b.W, H: b.H}
		if b.Flash > 0 {
			v.Flags |= FlagFlashing
		}
		if b.Entering {
			v.Flags |= FlagEntering
		}
		if g.bossEnraged() {
			v.Flags |= FlagEnraged
		}
		ents = append(ents, v)
	}

	for _, pr := range g.projectiles {
		kind := KindPlayerShot
		switch pr.Owner {
		case OwnerEnemy:
			kind = KindEnemyShot
		case OwnerBoss:
			kind = KindBossShot
		}
		ents = append(ents, EntityView{Kind: kind, X: pr.X, Y: pr.Y, W: pr.W, H: pr.H})
	}

	if g.phase == PhasePlaying || g.phase == PhaseLevelComplete {
		v := EntityView{Kind: KindPlayer, X: p.X, Y: p.Y, W: p.W, H: p.H}
		if p.Invuln > 0 {
			v.Flags |= FlagInvulnerable
		}
		if p.Shield {
			v.Flags |= FlagShielded
		}
		if p.Crashing {
			v.Flags |= FlagCrashing
		}
		ents = append(ents, v)
	}

	for _, ex := range g.explosions {
		for _, pt := range ex.Particles {
			ents = append(ents, EntityView{Kind: KindParticle, X: pt.X, Y: pt.Y, W: pt.Size, H: pt.Size})
		}
	}

	return Snapshot{
		Tick:        g.tick,
		FieldW:      g.cfg.Field.Width,
		FieldH:      g.cfg.Field.Height,
		HUD:         hud,
		Entities:    ents,
		RNGState:    g.rng.State(),
		CosmeticRNG: g.fx.State(),
	}
}

// Count returns how many entities of the given kind are in the snapshot.
func (s Snapshot) Count(k Kind) int {
	n := 0
	for _, e := range s.Entities {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s Snapshot) Hash() uint64 {
	h := uint64(s.Tick) //#nosec G115 -- hash computation
	mix := func(v uint64) {
		h = h*31 + v
	}
	mixInt := func(v int) {
		mix(uint64(v)) //#nosec G115 -- hash computation
	}
	mixF := func(v float64) {
		mix(math.Float64bits(v))
	}

	mixInt(s.HUD.Score)
	mixInt(s.HUD.HighScore)
	mixInt(s.HUD.Lives)
	mixInt(s.HUD.Level)
	mixInt(int(s.HUD.Phase))
	mixInt(s.HUD.Multiplier)
	mixInt(s.HUD.MultiplierTicks)
	mixInt(s.HUD.RapidFireTicks)
	mixInt(s.HUD.ShieldTicks)
	mixF(s.HUD.BossHealth)
	mixInt(s.HUD.EnemiesLeft)
	mixInt(s.HUD.CompleteTicks)
	mixInt(s.HUD.Shake)
	if s.HUD.Paused {
		mix(1)
	}

	for _, e := range s.Entities {
		mixInt(int(e.Kind))
		mixF(e.X)
		mixF(e.Y)
		mixF(e.W)
		mixF(e.H)
		mixInt(int(e.Flags))
	}

	mix(s.RNGState)
	mix(s.CosmeticRNG)
	return h
}

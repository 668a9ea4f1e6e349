package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// Owner tags who fired a projectile.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
	OwnerBoss
)

// Hostile reports whether the projectile can hurt the player.
func (o Owner) Hostile() bool {
	return o != OwnerPlayer
}

// Projectile is a laser bolt with explicit velocity.
type Projectile struct {
	X, Y   float64
	VX, VY float64
	W, H   float64
	Owner  Owner
}

// Box returns the projectile's collision box.
func (p Projectile) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Tier distinguishes regular enemy kinds.
type Tier int

const (
	TierPlain  Tier = iota
	TierGunner      // Shoots twice as often
)

// Enemy is a regular wave enemy falling toward the player.
type Enemy struct {
	X, Y   float64
	VX, VY float64
	W, H   float64
	Health int
	Flash  int // Hit-flash ticks remaining
	Tier   Tier
	Level  int // Level the enemy was spawned under
}

// Box returns the enemy's collision box.
func (e Enemy) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.W, e.H)
}

// BossPattern is a boss movement pattern.
type BossPattern int

const (
	PatternSine BossPattern = iota
	PatternOrbit
	PatternZigzag

	patternCount = 3
)

// String returns the pattern name.
func (p BossPattern) String() string {
	switch p {
	case PatternSine:
		return "sine"
	case PatternOrbit:
		return "orbit"
	case PatternZigzag:
		return "zigzag"
	default:
		return "unknown"
	}
}

// Boss is the end-of-level enemy. At most one exists per level.
type Boss struct {
	X, Y         float64
	W, H         float64
	Health       int
	MaxHealth    int
	Pattern      BossPattern
	PatternTimer int // Ticks spent in the current pattern
	AttackTimer  int // Ticks since the last volley
	Entering     bool
	Flash        int
	clock        int     // Ticks spent in the arena
	zigDir       float64 // Horizontal direction for zigzag
}

// Box returns the boss collision box.
func (b *Boss) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.W, b.H)
}

// HealthFraction returns health/maxHealth in [0, 1].
func (b *Boss) HealthFraction() float64 {
	if b.MaxHealth <= 0 {
		return 0
	}
	return core.ClampF(float64(b.Health)/float64(b.MaxHealth), 0, 1)
}

// PowerUpKind is the effect a power-up grants.
type PowerUpKind int

const (
	PowerUpMultiplier PowerUpKind = iota
	PowerUpRapidFire
	PowerUpShield
)

// String returns the power-up name as used in configuration.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpMultiplier:
		return "multiplier"
	case PowerUpRapidFire:
		return "rapid_fire"
	case PowerUpShield:
		return "shield"
	default:
		return "unknown"
	}
}

// PowerUp is a falling pickup.
type PowerUp struct {
	X, Y  float64
	VY    float64
	Size  float64
	Kind  PowerUpKind
	Pulse int // Presentation only
}

// Box returns the pickup's collision box.
func (p PowerUp) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Size, p.Size)
}

// Particle is a single explosion fragment.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
}

// Explosion is a short-lived particle burst. Presentation only.
type Explosion struct {
	X, Y      float64
	Particles []Particle
	Frame     int
	Finished  bool
}

// Star is a background point that wraps vertically.
type Star struct {
	X, Y  float64
	Speed float64
}

// Player is the player ship with its crash state and buffs.
type Player struct {
	X, Y float64
	W, H float64

	Lives    int
	Invuln   int // Ticks of invulnerability remaining
	Cooldown int // Ticks until the next shot is allowed

	Crashing bool
	CrashVY  float64
	Recovery int // Ticks until control returns

	RapidFire       bool
	RapidFireTicks  int
	Shield          bool
	ShieldTicks     int
	Multiplier      int
	MultiplierTicks int
}

// Box returns the player's collision box.
func (p *Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Vulnerable reports whether a hostile hit would cost a life.
func (p *Player) Vulnerable() bool {
	return !p.Crashing && p.Invuln == 0
}

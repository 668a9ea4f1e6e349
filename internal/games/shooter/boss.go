package shooter

import (
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// zigzagBob is the vertical amplitude of the zigzag pattern.
const zigzagBob = 24

// moveBoss runs the entry, the movement pattern and the attack timer.
func (g *Game) moveBoss() {
	b := g.boss
	bc := g.cfg.Boss
	if b.Flash > 0 {
		b.Flash--
	}

	if b.Entering {
		b.Y += bc.EntrySpeed
		if b.Y >= bc.ArenaY {
			b.Y = bc.ArenaY
			b.Entering = false
		}
		return
	}

	b.clock++
	b.PatternTimer++
	if b.PatternTimer >= g.lvl.PatternPeriod {
		b.Pattern = (b.Pattern + 1) % patternCount
		b.PatternTimer = 0
	}

	fw, fh := g.cfg.Field.Width, g.cfg.Field.Height
	t := float64(b.clock) * bc.SweepRate

	switch b.Pattern {
	case PatternSine:
		b.X = fw/2 + math.Sin(t)*fw/3 - b.W/2
		b.Y = bc.ArenaY
	case PatternOrbit:
		b.X = fw/2 + math.Cos(t)*fw/3 - b.W/2
		b.Y = bc.ArenaY + fh/8 + math.Sin(t)*fh/8
	case PatternZigzag:
		if b.zigDir == 0 {
			b.zigDir = 1
		}
		b.X += b.zigDir * bc.ZigzagSpeed
		if b.X <= 0 || b.X >= fw-b.W {
			b.zigDir = -b.zigDir
		}
		phase := b.clock % (2 * zigzagBob)
		if phase > zigzagBob {
			phase = 2*zigzagBob - phase
		}
		b.Y = bc.ArenaY + float64(phase)
	}

	b.X = core.ClampF(b.X, 0, fw-b.W)
	b.Y = core.ClampF(b.Y, 0, math.Max(0, fh/2-b.H))

	b.AttackTimer++
	if b.AttackTimer >= g.bossAttackInterval() {
		b.AttackTimer = 0
		g.bossVolley()
	}
}

// bossEnraged reports whether the boss is below the rage threshold.
func (g *Game) bossEnraged() bool {
	return g.boss != nil && g.boss.HealthFraction() < g.lvl.RageThreshold
}

// bossAttackInterval is the level delay, halved while enraged.
func (g *Game) bossAttackInterval() int {
	delay := g.lvl.BossShootDelay
	if g.bossEnraged() {
		delay = max(g.cfg.Boss.MinRageDelay, delay/2)
	}
	return max(1, delay)
}

// bossVolley fires the level's attack pattern.
func (g *Game) bossVolley() {
	b := g.boss
	bc := g.cfg.Boss
	cx, cy := b.Box().Center()

	shoot := func(x, y, angle float64) {
		g.projectiles = append(g.projectiles, Projectile{
			X:     x - bc.LaserWidth/2,
			Y:     y,
			VX:    bc.LaserSpeed * math.Sin(angle),
			VY:    bc.LaserSpeed * math.Cos(angle),
			W:     bc.LaserWidth,
			H:     bc.LaserHeight,
			Owner: OwnerBoss,
		})
	}

	n := max(1, g.lvl.ShotCount)
	switch g.lvl.Attack {
	case AttackSingle:
		shoot(cx, b.Y+b.H, 0)
	case AttackFan:
		arc := bc.FanArc * math.Pi / 180
		if n == 1 {
			shoot(cx, b.Y+b.H, 0)
			break
		}
		for i := 0; i < n; i++ {
			shoot(cx, b.Y+b.H, -arc/2+arc*float64(i)/float64(n-1))
		}
	case AttackRadial:
		for i := 0; i < n; i++ {
			shoot(cx, cy-bc.LaserHeight/2, 2*math.Pi*float64(i)/float64(n))
		}
	}
	g.emit(SoundEnemyShoot)
}

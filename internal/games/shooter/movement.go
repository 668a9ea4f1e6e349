package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// handleInput applies steering and firing. A crashing ship ignores both.
func (g *Game) handleInput(in core.InputFrame) {
	p := &g.player
	if p.Cooldown > 0 {
		p.Cooldown--
	}
	if p.Crashing {
		return
	}

	if in.Has(core.ActionLeft) {
		p.X -= g.cfg.Player.Speed
	}
	if in.Has(core.ActionRight) {
		p.X += g.cfg.Player.Speed
	}
	p.X = core.ClampF(p.X, 0, g.cfg.Field.Width-p.W)

	if in.Has(core.ActionFire) && p.Cooldown == 0 {
		pc := g.cfg.Player
		g.projectiles = append(g.projectiles, Projectile{
			X:     p.X + p.W/2 - pc.LaserWidth/2,
			Y:     p.Y - pc.LaserHeight,
			VY:    -pc.LaserSpeed,
			W:     pc.LaserWidth,
			H:     pc.LaserHeight,
			Owner: OwnerPlayer,
		})
		p.Cooldown = pc.FireCooldown
		if p.RapidFire {
			p.Cooldown = pc.RapidFireCooldown
		}
		g.emit(SoundShoot)
	}
}

// move advances every gameplay entity by one tick.
func (g *Game) move() {
	g.movePlayer()
	g.moveProjectiles()
	g.moveEnemies()
	if g.boss != nil {
		g.moveBoss()
	}
	g.movePowerUps()
}

// movePlayer runs the crash fall and bounce, and the recovery countdown.
func (g *Game) movePlayer() {
	p := &g.player
	if p.Invuln > 0 {
		p.Invuln--
	}
	if !p.Crashing {
		return
	}

	cc := g.cfg.Crash
	floor := g.cfg.Field.Height - p.H
	p.CrashVY += cc.Gravity
	p.Y += p.CrashVY
	if p.Y >= floor {
		p.CrashVY = -p.CrashVY * cc.Damping
		p.Y = floor
	}

	p.Recovery--
	if p.Recovery <= 0 {
		p.Crashing = false
		p.Recovery = 0
		p.CrashVY = 0
		p.Y = g.flightY()
	}
}

// moveProjectiles advances shots and drops those that left the field.
func (g *Game) moveProjectiles() {
	w, h := g.cfg.Field.Width, g.cfg.Field.Height
	kept := g.projectiles[:0]
	for _, pr := range g.projectiles {
		pr.X += pr.VX
		pr.Y += pr.VY

		if pr.Owner == OwnerPlayer {
			if pr.Y+pr.H < 0 {
				continue
			}
		} else if pr.X+pr.W < 0 || pr.X > w || pr.Y+pr.H < 0 || pr.Y > h {
			continue
		}
		kept = append(kept, pr)
	}
	g.projectiles = kept
}

// moveEnemies advances the wave and rolls enemy fire.
// Enemies past the bottom are left for the collision pass.
func (g *Game) moveEnemies() {
	ec := g.cfg.Enemy
	for i := range g.enemies {
		e := &g.enemies[i]
		e.X += e.VX
		e.Y += e.VY
		if e.Flash > 0 {
			e.Flash--
		}

		// Only enemies whose muzzle is still on the field shoot
		if e.Y+e.H >= g.cfg.Field.Height {
			continue
		}
		chance := g.lvl.EnemyShootChance
		if e.Tier == TierGunner {
			chance *= 2
		}
		if chance <= 0 || g.rng.Float64() >= chance {
			continue
		}
		g.projectiles = append(g.projectiles, Projectile{
			X:     e.X + e.W/2 - ec.LaserWidth/2,
			Y:     e.Y + e.H,
			VY:    ec.LaserSpeed,
			W:     ec.LaserWidth,
			H:     ec.LaserHeight,
			Owner: OwnerEnemy,
		})
		g.emit(SoundEnemyShoot)
	}
}

// movePowerUps drops pickups and removes those below the field.
func (g *Game) movePowerUps() {
	kept := g.powerUps[:0]
	for _, pu := range g.powerUps {
		pu.Y += pu.VY
		pu.Pulse++
		if pu.Y > g.cfg.Field.Height {
			continue
		}
		kept = append(kept, pu)
	}
	g.powerUps = kept
}

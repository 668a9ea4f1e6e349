package shooter

// resolveCollisions applies every overlap of this tick in a fixed order.
// vulnerable is the player's state at the start of the tick.
func (g *Game) resolveCollisions(vulnerable bool) {
	g.sweepDeadEnemies()

	if g.boss != nil {
		if g.hitBoss() {
			return
		}
	} else {
		g.hitEnemies()
	}

	g.hitPlayer(vulnerable)
	g.escapeEnemies()
	g.collectPowerUps()
}

// sweepDeadEnemies removes enemies that have no health left without scoring.
func (g *Game) sweepDeadEnemies() {
	kept := g.enemies[:0]
	for _, e := range g.enemies {
		if e.Health > 0 {
			kept = append(kept, e)
		}
	}
	g.enemies = kept
}

// hitBoss applies player shots to the boss. It reports whether the boss died.
func (g *Game) hitBoss() bool {
	b := g.boss
	box := b.Box()

	kept := g.projectiles[:0]
	defeated := false
	for _, pr := range g.projectiles {
		if defeated || pr.Owner != OwnerPlayer || !pr.Box().Intersects(box) {
			kept = append(kept, pr)
			continue
		}
		b.Health--
		b.Flash = g.cfg.Enemy.FlashTicks
		if b.Health <= 0 {
			defeated = true
		}
	}
	g.projectiles = kept

	if !defeated {
		return false
	}

	g.addScore(g.cfg.Boss.ClearBonus * g.level)
	cx, cy := box.Center()
	g.explode(cx, cy, 3)
	for i := 0; i < 4; i++ {
		g.explode(cx+g.fx.Range(-b.W/2, b.W/2), cy+g.fx.Range(-b.H/2, b.H/2), 2)
	}
	g.emit(SoundExplosion)
	g.emit(SoundLevelComplete)
	g.logger.Debug("boss defeated", "level", g.level, "score", g.score)

	g.boss = nil
	g.bossDefeated = true
	return true
}

// hitEnemies applies player shots to the wave. Each shot damages only the
// first overlapping live enemy.
func (g *Game) hitEnemies() {
	kept := g.projectiles[:0]
	for _, pr := range g.projectiles {
		if pr.Owner != OwnerPlayer || !g.damageFirstEnemy(pr) {
			kept = append(kept, pr)
		}
	}
	g.projectiles = kept
	g.sweepDeadEnemies()
}

func (g *Game) damageFirstEnemy(pr Projectile) bool {
	box := pr.Box()
	for i := range g.enemies {
		e := &g.enemies[i]
		if e.Health <= 0 || !box.Intersects(e.Box()) {
			continue
		}
		e.Health--
		e.Flash = g.cfg.Enemy.FlashTicks
		if e.Health == 0 {
			g.destroyed++
			g.addScore(g.cfg.Enemy.KillScore)
			cx, cy := e.Box().Center()
			g.explode(cx, cy, 1)
			g.emit(SoundExplosion)
		}
		return true
	}
	return false
}

// hitPlayer applies hostile shots to the player. Shots overlapping an
// invulnerable ship pass through.
func (g *Game) hitPlayer(vulnerable bool) {
	kept := g.projectiles[:0]
	for _, pr := range g.projectiles {
		if !pr.Owner.Hostile() || !pr.Box().Intersects(g.player.Box()) {
			kept = append(kept, pr)
			continue
		}
		switch {
		case g.player.Shield:
			g.player.ShieldTicks = g.cfg.PowerUps.ShieldTicks
			g.emit(SoundShieldHit)
		case vulnerable:
			g.damagePlayer()
		default:
			kept = append(kept, pr)
		}
	}
	g.projectiles = kept
}

// escapeEnemies removes enemies that left the bottom of the field.
// Each costs a life unless the shield is up, even during invulnerability.
func (g *Game) escapeEnemies() {
	kept := g.enemies[:0]
	for _, e := range g.enemies {
		if e.Y < g.cfg.Field.Height {
			kept = append(kept, e)
			continue
		}
		if g.player.Shield {
			g.emit(SoundShieldHit)
			continue
		}
		g.damagePlayer()
	}
	g.enemies = kept
}

// damagePlayer takes a life and starts the crash. Lives stop at zero.
func (g *Game) damagePlayer() {
	p := &g.player
	if p.Lives <= 0 {
		return
	}
	p.Lives--

	cc := g.cfg.Crash
	p.Crashing = true
	p.CrashVY = cc.Kick
	p.Recovery = cc.RecoveryTicks
	p.Invuln = cc.RecoveryTicks + g.cfg.Player.GraceTicks
	g.shake = g.cfg.Effects.ShakeTicks

	cx, cy := p.Box().Center()
	g.explode(cx, cy, 2)
	g.emit(SoundCrash)
	g.emit(SoundExplosion)
}

// collectPowerUps applies pickups touching the player.
func (g *Game) collectPowerUps() {
	kept := g.powerUps[:0]
	for _, pu := range g.powerUps {
		if !pu.Box().Intersects(g.player.Box()) {
			kept = append(kept, pu)
			continue
		}
		g.applyPowerUp(pu.Kind)
		g.emit(SoundPowerUp)
	}
	g.powerUps = kept
}

// addScore awards base points scaled by the current multiplier.
func (g *Game) addScore(base int) {
	g.score += base * max(1, g.player.Multiplier)
}

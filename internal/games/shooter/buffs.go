package shooter

// applyPowerUp grants a buff. Collecting an active buff refreshes its timer;
// the multiplier doubles up to its cap.
func (g *Game) applyPowerUp(kind PowerUpKind) {
	p := &g.player
	pc := g.cfg.PowerUps

	switch kind {
	case PowerUpMultiplier:
		p.Multiplier = min(pc.MultiplierCap, max(1, p.Multiplier)*2)
		p.MultiplierTicks = pc.MultiplierTicks
	case PowerUpRapidFire:
		p.RapidFire = true
		p.RapidFireTicks = pc.RapidFireTicks
	case PowerUpShield:
		p.Shield = true
		p.ShieldTicks = pc.ShieldTicks
	}
}

// tickBuffs counts down every active buff once.
func (g *Game) tickBuffs() {
	p := &g.player

	if p.MultiplierTicks > 0 {
		p.MultiplierTicks--
		if p.MultiplierTicks == 0 {
			p.Multiplier = 1
		}
	}
	if p.RapidFireTicks > 0 {
		p.RapidFireTicks--
		if p.RapidFireTicks == 0 {
			p.RapidFire = false
		}
	}
	if p.ShieldTicks > 0 {
		p.ShieldTicks--
		if p.ShieldTicks == 0 {
			p.Shield = false
		}
	}
}

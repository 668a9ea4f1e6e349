package shooter

// spawn creates enemies, the boss and power-ups when their conditions hold.
func (g *Game) spawn() {
	g.spawnEnemy()
	g.spawnBoss()
	g.spawnPowerUp()
}

// spawnEnemy adds a regular enemy every SpawnDelay ticks until the quota is met.
func (g *Game) spawnEnemy() {
	if g.boss != nil || g.bossSpawned || g.destroyed >= g.lvl.EnemiesToClear {
		return
	}

	g.spawnTimer++
	if g.spawnTimer < g.lvl.SpawnDelay {
		return
	}
	g.spawnTimer = 0

	ec := g.cfg.Enemy
	g.enemies = append(g.enemies, Enemy{
		X:      g.rng.Float64() * (g.cfg.Field.Width - ec.Width),
		Y:      -ec.Height,
		VY:     g.lvl.EnemySpeed,
		W:      ec.Width,
		H:      ec.Height,
		Health: max(1, g.lvl.EnemyHealth),
		Tier:   Tier(g.rng.Intn(2)),
		Level:  g.level,
	})
}

// spawnBoss brings in the level boss once the wave is cleared.
func (g *Game) spawnBoss() {
	if g.bossSpawned || g.destroyed < g.lvl.EnemiesToClear || len(g.enemies) > 0 {
		return
	}

	bc := g.cfg.Boss
	health := max(1, g.lvl.BossHealth)
	g.boss = &Boss{
		X:         (g.cfg.Field.Width - bc.Width) / 2,
		Y:         -bc.Height,
		W:         bc.Width,
		H:         bc.Height,
		Health:    health,
		MaxHealth: health,
		Pattern:   g.lvl.StartPattern,
		Entering:  true,
		zigDir:    1,
	}
	g.bossSpawned = true
	g.emit(SoundBossAlert)
	g.logger.Debug("boss spawned", "level", g.level, "health", health, "pattern", g.lvl.StartPattern)
}

// spawnPowerUp rolls the per-tick drop chance.
func (g *Game) spawnPowerUp() {
	if len(g.enabled) == 0 || g.rng.Float64() >= g.cfg.PowerUps.Chance {
		return
	}

	pc := g.cfg.PowerUps
	g.powerUps = append(g.powerUps, PowerUp{
		X:    g.rng.Float64() * (g.cfg.Field.Width - pc.Size),
		Y:    -pc.Size,
		VY:   pc.FallSpeed,
		Size: pc.Size,
		Kind: g.enabled[g.rng.Intn(len(g.enabled))],
	})
}

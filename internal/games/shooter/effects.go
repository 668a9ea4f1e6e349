package shooter

const (
	particlesPerSize = 20
	particleDecay    = 0.9
	minStarSpeed     = 1
	maxStarSpeed     = 3
)

// initStars scatters the star field over the whole playfield.
func (g *Game) initStars() {
	g.stars = g.stars[:0]
	for i := 0; i < g.cfg.Effects.Stars; i++ {
		g.stars = append(g.stars, Star{
			X:     g.fx.Float64() * g.cfg.Field.Width,
			Y:     g.fx.Float64() * g.cfg.Field.Height,
			Speed: float64(minStarSpeed + g.fx.Intn(maxStarSpeed-minStarSpeed+1)),
		})
	}
}

// explode starts a particle burst. Uses only the cosmetic RNG.
func (g *Game) explode(x, y float64, size int) {
	n := particlesPerSize * size
	ex := Explosion{X: x, Y: y, Particles: make([]Particle, 0, n)}
	spread := 3 * float64(size)
	for i := 0; i < n; i++ {
		ex.Particles = append(ex.Particles, Particle{
			X:    x,
			Y:    y,
			VX:   g.fx.Range(-spread, spread),
			VY:   g.fx.Range(-spread, spread),
			Size: g.fx.Range(2, 5),
		})
	}
	g.explosions = append(g.explosions, ex)
}

// updateEffects animates stars, explosions and screen shake.
// It runs in every phase while the game is not paused.
func (g *Game) updateEffects() {
	h := g.cfg.Field.Height
	for i := range g.stars {
		s := &g.stars[i]
		s.Y += s.Speed
		if s.Y > h {
			s.Y = 0
			s.X = g.fx.Float64() * g.cfg.Field.Width
		}
	}

	kept := g.explosions[:0]
	for _, ex := range g.explosions {
		for i := range ex.Particles {
			pt := &ex.Particles[i]
			pt.X += pt.VX
			pt.Y += pt.VY
			pt.Size *= particleDecay
		}
		ex.Frame++
		if ex.Frame >= g.cfg.Effects.ExplosionFrames {
			ex.Finished = true
			continue
		}
		kept = append(kept, ex)
	}
	g.explosions = kept

	if g.shake > 0 {
		g.shake--
	}
}

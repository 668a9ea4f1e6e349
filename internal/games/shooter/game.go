// Package shooter implements a fixed-timestep arcade space shooter: one ship
// against waves of enemies and a boss per level.
//
// The simulation consumes core.InputFrame values and produces a Snapshot and
// a list of sound tags per tick. It never touches a terminal or a speaker.
package shooter

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// Sound tags emitted in core.StepResult.Sounds.
const (
	SoundShoot         core.Sound = "shoot"
	SoundEnemyShoot    core.Sound = "enemy_shoot"
	SoundExplosion     core.Sound = "explosion"
	SoundCrash         core.Sound = "crash"
	SoundShieldHit     core.Sound = "shield_hit"
	SoundPowerUp       core.Sound = "powerup"
	SoundBossAlert     core.Sound = "boss_alert"
	SoundLevelComplete core.Sound = "level_complete"
	SoundGameOver      core.Sound = "game_over"
)

// cosmeticSeedSalt separates the cosmetic RNG stream from gameplay.
const cosmeticSeedSalt = 0x5eed_face_cafe

// Phase is the session state machine.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseLevelComplete
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "MENU"
	case PhasePlaying:
		return "PLAYING"
	case PhaseLevelComplete:
		return "LEVEL_COMPLETE"
	case PhaseGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// ScoreStore reads the high score and records final scores.
type ScoreStore = registry.ScoreStore

// Game is one shooter session. It owns every entity and both RNG streams.
type Game struct {
	id    string
	title string

	cfg     config.ShooterConfig
	runtime core.RuntimeConfig
	logger  *log.Logger
	scores  ScoreStore

	rng *SimpleRNG // Gameplay stream
	fx  *SimpleRNG // Cosmetic stream

	phase     Phase
	paused    bool
	tick      int
	level     int
	lvl       LevelConfig
	score     int
	highScore int

	destroyed     int
	spawnTimer    int
	completeTimer int
	bossSpawned   bool
	bossDefeated  bool

	player      Player
	projectiles []Projectile
	enemies     []Enemy
	boss        *Boss
	powerUps    []PowerUp
	enabled     []PowerUpKind

	explosions []Explosion
	stars      []Star
	shake      int

	sounds []core.Sound
}

// Option configures a Game.
type Option func(*Game)

// WithConfig replaces the default configuration.
func WithConfig(cfg config.ShooterConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
	}
}

// WithLogger sets the logger for phase transitions and persistence failures.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithScores attaches a score store.
func WithScores(s ScoreStore) Option {
	return func(g *Game) {
		g.scores = s
	}
}

// WithID sets the registry identity used for score storage.
func WithID(id, title string) Option {
	return func(g *Game) {
		g.id = id
		g.title = title
	}
}

// New creates a shooter session in the MENU phase.
func New(opts ...Option) *Game {
	g := &Game{
		id:     IDShooter,
		title:  "Space Shooter",
		cfg:    config.DefaultShooterConfig(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Config returns the configuration the session runs with.
func (g *Game) Config() config.ShooterConfig {
	return g.cfg
}

// AttachScores sets the score store and refreshes the high score.
func (g *Game) AttachScores(s ScoreStore) {
	g.scores = s
	g.loadHighScore()
}

// Reset returns the session to the MENU phase with fresh RNG streams.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = NewSimpleRNG(runtime.Seed)
	g.fx = NewSimpleRNG(runtime.Seed ^ cosmeticSeedSalt)

	g.enabled = g.enabled[:0]
	for _, name := range g.cfg.PowerUps.Enabled {
		switch name {
		case config.PowerUpMultiplier:
			g.enabled = append(g.enabled, PowerUpMultiplier)
		case config.PowerUpRapidFire:
			g.enabled = append(g.enabled, PowerUpRapidFire)
		case config.PowerUpShield:
			g.enabled = append(g.enabled, PowerUpShield)
		}
	}

	g.tick = 0
	g.score = 0
	g.paused = false
	g.explosions = g.explosions[:0]
	g.shake = 0
	g.initStars()
	g.setupLevel(1)
	g.player.Lives = g.cfg.Player.Lives
	g.setPhase(PhaseMenu)
	g.loadHighScore()
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionQuit) {
		return core.StepResult{State: g.State(), Quit: true}
	}

	g.sounds = nil

	// A tick that starts a game only performs the reset
	started := false
	switch g.phase {
	case PhaseMenu:
		if in.Has(core.ActionStart) {
			g.newGame()
			started = true
		}
	case PhaseGameOver:
		if in.Has(core.ActionRestart) {
			g.newGame()
			started = true
		}
	case PhasePlaying, PhaseLevelComplete:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	switch g.phase {
	case PhasePlaying:
		if !started {
			g.stepPlaying(in)
		}
	case PhaseLevelComplete:
		g.completeTimer--
		if g.completeTimer <= 0 {
			g.startLevel(g.level + 1)
		}
	}

	g.updateEffects()

	return core.StepResult{
		State:  g.State(),
		Sounds: g.sounds,
	}
}

// stepPlaying runs one PLAYING tick in the fixed system order.
func (g *Game) stepPlaying(in core.InputFrame) {
	vulnerable := g.player.Vulnerable()

	g.handleInput(in)
	g.move()
	g.spawn()
	g.resolveCollisions(vulnerable)
	g.tickBuffs()
	g.checkPhase()
}

// checkPhase applies the transitions decided during this tick.
func (g *Game) checkPhase() {
	switch {
	case g.player.Lives <= 0:
		g.enterGameOver()
	case g.bossDefeated:
		g.enterLevelComplete()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.player.Lives,
		Level:    g.level,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// newGame performs the full reset shared by start and restart.
func (g *Game) newGame() {
	g.score = 0
	g.player.Lives = g.cfg.Player.Lives
	g.loadHighScore()
	g.startLevel(1)
}

// startLevel enters PLAYING on level n. Lives and score are kept.
func (g *Game) startLevel(n int) {
	g.setupLevel(n)
	g.paused = false
	g.setPhase(PhasePlaying)
}

// setupLevel clears the field and re-derives the level configuration.
func (g *Game) setupLevel(n int) {
	g.level = n
	g.lvl = LevelConfigFor(g.cfg.Levels, n)

	g.projectiles = g.projectiles[:0]
	g.enemies = g.enemies[:0]
	g.powerUps = g.powerUps[:0]
	g.boss = nil
	g.destroyed = 0
	g.spawnTimer = 0
	g.completeTimer = 0
	g.bossSpawned = false
	g.bossDefeated = false

	lives := g.player.Lives
	g.player = Player{
		X:          (g.cfg.Field.Width - g.cfg.Player.Width) / 2,
		Y:          g.flightY(),
		W:          g.cfg.Player.Width,
		H:          g.cfg.Player.Height,
		Lives:      lives,
		Multiplier: 1,
	}
}

func (g *Game) enterLevelComplete() {
	g.completeTimer = g.cfg.Phases.LevelCompleteTicks
	g.setPhase(PhaseLevelComplete)
}

func (g *Game) enterGameOver() {
	g.player.Lives = 0
	g.setPhase(PhaseGameOver)
	g.emit(SoundGameOver)

	// Big finale around the ship
	cx, cy := g.player.Box().Center()
	for i := 0; i < 3; i++ {
		g.explode(cx+g.fx.Range(-40, 40), cy+g.fx.Range(-40, 40), 2)
	}

	if g.score > g.highScore {
		g.highScore = g.score
	}
	g.saveScore()
}

func (g *Game) setPhase(p Phase) {
	if g.phase != p {
		g.logger.Debug("phase change", "from", g.phase, "to", p, "level", g.level, "score", g.score)
	}
	g.phase = p
}

func (g *Game) loadHighScore() {
	if g.scores == nil {
		return
	}
	hs, err := g.scores.HighScore(g.id)
	if err != nil {
		g.logger.Warn("cannot load high score", "game", g.id, "err", err)
		return
	}
	g.highScore = max(hs, g.highScore)
}

func (g *Game) saveScore() {
	if g.scores == nil || g.score <= 0 {
		return
	}
	if _, err := g.scores.SaveScore(g.id, g.score); err != nil {
		g.logger.Warn("cannot save score", "game", g.id, "score", g.score, "err", err)
	}
}

// emit appends a sound trigger for this tick.
func (g *Game) emit(s core.Sound) {
	g.sounds = append(g.sounds, s)
}

// flightY is the player's normal vertical position.
func (g *Game) flightY() float64 {
	return g.cfg.Field.Height - g.cfg.Player.Height - g.cfg.Player.BottomMargin
}

package shooter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

func TestNewStartsInMenu(t *testing.T) {
	g := New()
	assert.Equal(t, PhaseMenu, g.Phase())
	assert.Equal(t, IDShooter, g.ID())

	snap := g.Snapshot()
	assert.Equal(t, 3, snap.HUD.Lives)
	assert.Equal(t, 1, snap.HUD.Level)
	assert.Equal(t, 0, snap.Count(KindPlayer), "player is hidden in the menu")
	assert.Equal(t, 150, snap.Count(KindStar))
}

func TestMenuIgnoresEverythingButStart(t *testing.T) {
	g := New(WithConfig(classicConfig()))

	for _, a := range []core.Action{core.ActionRestart, core.ActionFire, core.ActionLeft, core.ActionPause} {
		g.Step(core.InputOf(a))
		assert.Equal(t, PhaseMenu, g.Phase(), "action %s", a)
	}
	assert.False(t, g.paused)

	g.Step(core.InputOf(core.ActionStart))
	assert.Equal(t, PhasePlaying, g.Phase())
	assert.Equal(t, 1, g.level)
	assert.Equal(t, 3, g.player.Lives)
	assert.Equal(t, 0, g.score)
}

func TestQuitStopsWithoutSimulating(t *testing.T) {
	g := newPlaying(t)
	before := g.Snapshot().Hash()

	res := g.Step(core.InputOf(core.ActionQuit, core.ActionFire))
	assert.True(t, res.Quit)
	assert.Empty(t, res.Sounds)
	assert.Equal(t, before, g.Snapshot().Hash())
}

func TestRestartWhilePlayingIsNoop(t *testing.T) {
	a := newPlaying(t)
	b := newPlaying(t)
	stepN(a, 90, idle())
	stepN(b, 90, idle())

	a.Step(core.InputOf(core.ActionRestart))
	a.Step(core.InputOf(core.ActionRestart))
	b.Step(idle())
	b.Step(idle())

	assert.Equal(t, b.Snapshot().Hash(), a.Snapshot().Hash())
	assert.Equal(t, PhasePlaying, a.Phase())
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newPlaying(t)
	stepN(g, 70, idle())

	res := g.Step(core.InputOf(core.ActionPause))
	assert.True(t, res.State.Paused)
	frozen := g.Snapshot()

	stepN(g, 50, core.InputOf(core.ActionFire, core.ActionLeft))
	assert.Equal(t, frozen.Hash(), g.Snapshot().Hash())

	g.Step(core.InputOf(core.ActionPause))
	assert.False(t, g.State().Paused)
	assert.Equal(t, frozen.Tick+1, g.Snapshot().Tick)
}

func TestPlayerMovementClamped(t *testing.T) {
	g := newPlaying(t)

	stepN(g, 200, core.InputOf(core.ActionLeft))
	assert.Equal(t, 0.0, g.player.X)

	stepN(g, 300, core.InputOf(core.ActionRight))
	assert.Equal(t, g.cfg.Field.Width-g.player.W, g.player.X)
}

func TestFireCooldown(t *testing.T) {
	g := newPlaying(t)
	fire := core.InputOf(core.ActionFire)

	res := g.Step(fire)
	assert.Equal(t, 1, countSound(res.Sounds, SoundShoot))
	stepN(g, g.cfg.Player.FireCooldown-1, fire)
	assert.Equal(t, 1, countOwner(g.projectiles, OwnerPlayer))

	g.Step(fire)
	assert.Equal(t, 2, countOwner(g.projectiles, OwnerPlayer))
}

func TestRapidFireCooldown(t *testing.T) {
	g := newPlaying(t)
	g.applyPowerUp(PowerUpRapidFire)

	// Shots on ticks 1, 6 and 11
	stepN(g, 11, core.InputOf(core.ActionFire))
	assert.Equal(t, 3, countOwner(g.projectiles, OwnerPlayer))
}

func TestPlayerShotsLeaveTheTop(t *testing.T) {
	g := newPlaying(t)
	g.Step(core.InputOf(core.ActionFire))
	require.Len(t, g.projectiles, 1)

	// Spawned at y=492 moving 10 per tick, fully above the field after 52 ticks
	stepN(g, 52, idle())
	assert.Empty(t, g.projectiles)
}

// Scenario A: the level 1 wave and the boss hand-over.
func TestWaveSpawnAndBossHandover(t *testing.T) {
	g := newPlaying(t)
	assert.Equal(t, 60, g.lvl.SpawnDelay)
	assert.Equal(t, 2.0, g.lvl.EnemySpeed)
	assert.Equal(t, 20, g.lvl.EnemiesToClear)

	stepN(g, 59, idle())
	assert.Empty(t, g.enemies)

	g.Step(idle())
	require.Len(t, g.enemies, 1)
	e := g.enemies[0]
	assert.Equal(t, -g.cfg.Enemy.Height, e.Y)
	assert.Equal(t, 2.0, e.VY)
	assert.Equal(t, 1, e.Health)
	assert.GreaterOrEqual(t, e.X, 0.0)
	assert.LessOrEqual(t, e.X, g.cfg.Field.Width-g.cfg.Enemy.Width)

	// The 20th kill
	g.enemies = []Enemy{{X: 100, Y: 200, W: 48, H: 48, VY: 2, Health: 1}}
	g.destroyed = 19
	g.spawnTimer = 0
	g.projectiles = []Projectile{{X: 120, Y: 230, VY: -10, W: 8, H: 24, Owner: OwnerPlayer}}

	res := g.Step(idle())
	assert.Equal(t, 20, g.destroyed)
	assert.Empty(t, g.enemies)
	assert.Empty(t, g.projectiles)
	assert.Nil(t, g.boss, "the boss waits for the next tick")
	assert.Equal(t, 100, g.score)
	assert.Equal(t, 1, countSound(res.Sounds, SoundExplosion))

	res = g.Step(idle())
	require.NotNil(t, g.boss)
	assert.True(t, g.boss.Entering)
	assert.Equal(t, 5, g.boss.Health)
	assert.Equal(t, (g.cfg.Field.Width-g.cfg.Boss.Width)/2, g.boss.X)
	assert.Equal(t, 1, countSound(res.Sounds, SoundBossAlert))

	// No more regular enemies, and only one boss
	alerts := 0
	for i := 0; i < 300; i++ {
		res := g.Step(idle())
		alerts += countSound(res.Sounds, SoundBossAlert)
	}
	assert.Empty(t, g.enemies)
	assert.Zero(t, alerts)
	assert.NotNil(t, g.boss)
}

// Scenario B: the last life.
func TestLastLifeEndsGame(t *testing.T) {
	store := &memStore{}
	g := newPlaying(t, WithScores(store))
	g.player.Lives = 1
	g.score = 700
	g.projectiles = []Projectile{hostileOnPlayer(g)}

	res := g.Step(idle())
	assert.Equal(t, 0, g.player.Lives)
	assert.Equal(t, PhaseGameOver, g.Phase())
	assert.True(t, res.State.GameOver)
	assert.Equal(t, 1, countSound(res.Sounds, SoundGameOver))
	assert.Equal(t, 1, countSound(res.Sounds, SoundCrash))
	assert.Equal(t, []int{700}, store.saved)

	for i := 0; i < 300; i++ {
		res := g.Step(idle())
		assert.Empty(t, g.enemies)
		assert.Empty(t, g.powerUps)
		assert.Nil(t, g.boss)
		assert.Zero(t, countSound(res.Sounds, SoundGameOver))
	}
	assert.Equal(t, PhaseGameOver, g.Phase())
	assert.Len(t, store.saved, 1, "score is reported once")
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newPlaying(t)
	g.level = 3
	g.score = 1234
	g.player.Lives = 1
	g.projectiles = []Projectile{hostileOnPlayer(g)}
	g.Step(idle())
	require.Equal(t, PhaseGameOver, g.Phase())

	g.Step(core.InputOf(core.ActionStart))
	assert.Equal(t, PhaseGameOver, g.Phase(), "start does nothing after game over")

	g.Step(core.InputOf(core.ActionRestart))
	assert.Equal(t, PhasePlaying, g.Phase())
	assert.Equal(t, 1, g.level)
	assert.Equal(t, 0, g.score)
	assert.Equal(t, 3, g.player.Lives)
	assert.Empty(t, g.projectiles)
	assert.Equal(t, 1234, g.Snapshot().HUD.HighScore)
}

func TestZeroScoreIsNotSaved(t *testing.T) {
	store := &memStore{}
	g := newPlaying(t, WithScores(store))
	g.player.Lives = 1
	g.projectiles = []Projectile{hostileOnPlayer(g)}
	g.Step(idle())

	require.Equal(t, PhaseGameOver, g.Phase())
	assert.Empty(t, store.saved)
}

func TestStoreFailuresAreIgnored(t *testing.T) {
	store := &memStore{err: errStoreDown}
	g := newPlaying(t, WithScores(store))
	g.score = 100
	g.player.Lives = 1
	g.projectiles = []Projectile{hostileOnPlayer(g)}

	assert.NotPanics(t, func() { g.Step(idle()) })
	assert.Equal(t, PhaseGameOver, g.Phase())
}

func TestHighScoreLoadedFromStore(t *testing.T) {
	store := &memStore{high: 9000}
	g := New(WithConfig(classicConfig()))
	g.AttachScores(store)
	assert.Equal(t, 9000, g.Snapshot().HUD.HighScore)

	var _ registry.ScoreAware = g
}

func TestCrashAndRecovery(t *testing.T) {
	g := newPlaying(t)
	g.projectiles = []Projectile{hostileOnPlayer(g)}
	startX := g.player.X

	g.Step(idle())
	require.True(t, g.player.Crashing)
	assert.Equal(t, 2, g.player.Lives)
	assert.Equal(t, g.cfg.Effects.ShakeTicks, g.shake)

	floor := g.cfg.Field.Height - g.player.H
	for i := 1; i < g.cfg.Crash.RecoveryTicks; i++ {
		g.Step(core.InputOf(core.ActionLeft, core.ActionFire))
		assert.True(t, g.player.Crashing, "tick %d", i)
		assert.LessOrEqual(t, g.player.Y, floor)
	}
	assert.Equal(t, startX, g.player.X, "no steering while crashing")
	assert.Zero(t, countOwner(g.projectiles, OwnerPlayer), "no firing while crashing")

	g.Step(idle())
	assert.False(t, g.player.Crashing)
	assert.Equal(t, g.flightY(), g.player.Y)
	assert.Equal(t, g.cfg.Player.GraceTicks, g.player.Invuln)
	assert.False(t, g.player.Vulnerable())

	g.Step(core.InputOf(core.ActionFire))
	assert.Equal(t, 1, countOwner(g.projectiles, OwnerPlayer))
}

func TestLevelCompleteAndNextLevel(t *testing.T) {
	g := newPlaying(t)
	g.destroyed = 20
	g.bossSpawned = true
	g.player.Multiplier = 2
	g.player.MultiplierTicks = 500
	g.player.Lives = 2
	g.boss = &Boss{X: 352, Y: 50, W: 96, H: 96, Health: 1, MaxHealth: 5, zigDir: 1}
	g.projectiles = []Projectile{
		{X: 396, Y: 120, VY: -10, W: 8, H: 24, Owner: OwnerPlayer},
		hostileOnPlayer(g),
	}

	res := g.Step(idle())
	assert.Equal(t, PhaseLevelComplete, g.Phase())
	assert.Nil(t, g.boss)
	assert.Equal(t, 1000*1*2, g.score)
	assert.Equal(t, 1, countSound(res.Sounds, SoundLevelComplete))
	assert.Equal(t, 2, g.player.Lives, "resolution stops once the boss is destroyed")

	stepN(g, g.cfg.Phases.LevelCompleteTicks-1, core.InputOf(core.ActionFire))
	assert.Equal(t, PhaseLevelComplete, g.Phase())
	assert.Equal(t, 1, g.level)

	g.Step(idle())
	assert.Equal(t, PhasePlaying, g.Phase())
	assert.Equal(t, 2, g.level)
	assert.Equal(t, 45, g.lvl.SpawnDelay)
	assert.Equal(t, 2, g.player.Lives)
	assert.Equal(t, 2000, g.score)
	assert.Empty(t, g.projectiles)
	assert.Equal(t, 1, g.player.Multiplier)
	assert.Equal(t, (g.cfg.Field.Width-g.player.W)/2, g.player.X)
	assert.Zero(t, g.destroyed)
	assert.False(t, g.bossSpawned)
}

func TestRegisteredVariants(t *testing.T) {
	assert.True(t, registry.Exists(IDShooter))
	assert.True(t, registry.Exists(IDClassic))

	g, err := registry.Create(IDClassic)
	require.NoError(t, err)
	sg, ok := g.(*Game)
	require.True(t, ok)
	assert.Empty(t, sg.enabled, "classic has no power-ups")
	assert.Equal(t, IDClassic, sg.ID())

	g, err = registry.Create(IDShooter)
	require.NoError(t, err)
	assert.Len(t, g.(*Game).enabled, 3)
}

package shooter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShotDamagesOnlyFirstEnemy(t *testing.T) {
	g := newPlaying(t)
	g.enemies = []Enemy{
		{X: 100, Y: 200, W: 48, H: 48, VY: 2, Health: 1},
		{X: 100, Y: 200, W: 48, H: 48, VY: 2, Health: 1, Tier: TierGunner},
	}
	g.projectiles = []Projectile{{X: 120, Y: 230, VY: -10, W: 8, H: 24, Owner: OwnerPlayer}}

	g.Step(idle())
	require.Len(t, g.enemies, 1)
	assert.Equal(t, TierGunner, g.enemies[0].Tier)
	assert.Equal(t, 1, g.enemies[0].Health)
	assert.Equal(t, 1, g.destroyed)
	assert.Empty(t, g.projectiles)
}

func TestEnemyHealthTwoTakesTwoHits(t *testing.T) {
	g := newPlaying(t)
	g.enemies = []Enemy{{X: 100, Y: 200, W: 48, H: 48, Health: 2}}
	shot := Projectile{X: 120, Y: 230, VY: -10, W: 8, H: 24, Owner: OwnerPlayer}

	g.projectiles = []Projectile{shot}
	g.Step(idle())
	require.Len(t, g.enemies, 1)
	assert.Equal(t, 1, g.enemies[0].Health)
	assert.Equal(t, g.cfg.Enemy.FlashTicks, g.enemies[0].Flash)
	assert.Zero(t, g.score)

	g.projectiles = []Projectile{shot}
	g.Step(idle())
	assert.Empty(t, g.enemies)
	assert.Equal(t, 100, g.score)
}

func TestZeroHealthEnemySweptWithoutScore(t *testing.T) {
	g := newPlaying(t)
	g.enemies = []Enemy{{X: 100, Y: 200, W: 48, H: 48, Health: 0}}
	g.projectiles = []Projectile{{X: 120, Y: 230, VY: -10, W: 8, H: 24, Owner: OwnerPlayer}}

	g.Step(idle())
	assert.Empty(t, g.enemies)
	assert.Zero(t, g.score)
	assert.Zero(t, g.destroyed)
	assert.Len(t, g.projectiles, 1, "the shot was not spent on a dead enemy")
}

func TestKillScoreUsesMultiplier(t *testing.T) {
	g := newPlaying(t)
	g.player.Multiplier = 4
	g.player.MultiplierTicks = 100
	g.enemies = []Enemy{{X: 100, Y: 200, W: 48, H: 48, Health: 1}}
	g.projectiles = []Projectile{{X: 120, Y: 230, VY: -10, W: 8, H: 24, Owner: OwnerPlayer}}

	g.Step(idle())
	assert.Equal(t, 400, g.score)
}

func TestInvulnerablePlayerLetsShotsThrough(t *testing.T) {
	g := newPlaying(t)
	g.player.Invuln = 100
	g.projectiles = []Projectile{hostileOnPlayer(g)}

	g.Step(idle())
	assert.Equal(t, 3, g.player.Lives)
	assert.False(t, g.player.Crashing)
	assert.Len(t, g.projectiles, 1)
}

func TestShieldAbsorbsAndRefreshes(t *testing.T) {
	g := newPlaying(t)
	g.player.Shield = true
	g.player.ShieldTicks = 10
	g.projectiles = []Projectile{hostileOnPlayer(g)}

	res := g.Step(idle())
	assert.Equal(t, 3, g.player.Lives)
	assert.Empty(t, g.projectiles)
	assert.True(t, g.player.Shield)
	assert.Equal(t, g.cfg.PowerUps.ShieldTicks-1, g.player.ShieldTicks)
	assert.Equal(t, 1, countSound(res.Sounds, SoundShieldHit))
}

func TestEscapedEnemyIgnoresInvulnerability(t *testing.T) {
	g := newPlaying(t)
	g.player.Invuln = 100
	g.enemies = []Enemy{{X: 0, Y: 599, W: 48, H: 48, VY: 2, Health: 1}}

	res := g.Step(idle())
	assert.Empty(t, g.enemies)
	assert.Equal(t, 2, g.player.Lives)
	assert.True(t, g.player.Crashing)
	assert.Equal(t, 1, countSound(res.Sounds, SoundCrash))
}

func TestEscapedEnemyBlockedByShield(t *testing.T) {
	g := newPlaying(t)
	g.player.Shield = true
	g.player.ShieldTicks = 100
	g.enemies = []Enemy{{X: 0, Y: 599, W: 48, H: 48, VY: 2, Health: 1}}

	g.Step(idle())
	assert.Empty(t, g.enemies)
	assert.Equal(t, 3, g.player.Lives)
	assert.Zero(t, g.destroyed, "escapes never count as kills")
}

func TestAllHazardsInOneTickApply(t *testing.T) {
	g := newPlaying(t)
	g.projectiles = []Projectile{hostileOnPlayer(g), hostileOnPlayer(g)}

	g.Step(idle())
	assert.Equal(t, 1, g.player.Lives)
	assert.Equal(t, PhasePlaying, g.Phase())
}

func TestLivesClampAndGameOverOnce(t *testing.T) {
	g := newPlaying(t)
	g.player.Lives = 1
	g.projectiles = []Projectile{hostileOnPlayer(g), hostileOnPlayer(g)}
	g.enemies = []Enemy{{X: 0, Y: 599, W: 48, H: 48, VY: 2, Health: 1}}

	res := g.Step(idle())
	assert.Equal(t, 0, g.player.Lives)
	assert.Equal(t, PhaseGameOver, g.Phase())
	assert.Equal(t, 1, countSound(res.Sounds, SoundGameOver))
	assert.Empty(t, g.enemies)
}

func TestHostileShotsLeaveAnyEdge(t *testing.T) {
	g := newPlaying(t)
	g.player.Invuln = 1000
	g.projectiles = []Projectile{
		{X: 1, Y: 300, VX: -6, W: 12, H: 32, Owner: OwnerBoss},
		{X: 790, Y: 300, VX: 6, W: 12, H: 32, Owner: OwnerBoss},
		{X: 400, Y: 10, VY: -6, W: 12, H: 32, Owner: OwnerBoss},
		{X: 100, Y: 590, VY: 6, W: 12, H: 32, Owner: OwnerEnemy},
	}

	stepN(g, 10, idle())
	assert.Empty(t, g.projectiles)
}

func TestPowerUpsFallAndExpire(t *testing.T) {
	g := newPlaying(t)
	g.powerUps = []PowerUp{{X: 0, Y: 590, VY: 2, Size: 24, Kind: PowerUpShield}}

	stepN(g, 6, idle())
	assert.Empty(t, g.powerUps)
	assert.False(t, g.player.Shield)
}

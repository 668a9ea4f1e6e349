package shooter

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Layout and minimum size for terminal rendering.
const (
	hudRows    = 2
	MinScreenW = 40
	MinScreenH = 16
)

// Visual characters for rendering
const (
	StarChar       = '.'
	ParticleChar   = '*'
	EnemyChar      = 'V'
	GunnerChar     = 'W'
	BossChar       = '▓'
	PlayerChar     = '█'
	PlayerNoseChar = '▲'
	PlayerShotChar = '│'
	EnemyShotChar  = '¦'
	BossShotChar   = '•'
	ShieldLeft     = '('
	ShieldRight    = ')'
	BorderHoriz    = '─'
	LifeChar       = '♥'
)

// Render draws the current state into the terminal screen buffer.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot())
}

// RenderSnapshot draws a snapshot. World units are scaled to the screen
// below the two HUD rows.
func RenderSnapshot(dst *core.Screen, snap Snapshot) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	v := newViewport(dst, snap)
	for _, e := range snap.Entities {
		v.draw(e, snap.Tick)
	}

	renderHUD(dst, snap.HUD)
	renderOverlay(dst, snap.HUD)
}

// viewport maps world coordinates to screen cells.
type viewport struct {
	dst    *core.Screen
	sx, sy float64
	offX   int
}

func newViewport(dst *core.Screen, snap Snapshot) viewport {
	v := viewport{
		dst: dst,
		sx:  float64(dst.Width()) / snap.FieldW,
		sy:  float64(dst.Height()-hudRows) / snap.FieldH,
	}
	if snap.HUD.Shake > 0 {
		v.offX = 1
		if snap.Tick%2 == 0 {
			v.offX = -1
		}
	}
	return v
}

// cells returns the screen rectangle covered by a world box.
// Every visible entity covers at least one cell.
func (v viewport) cells(x, y, w, h float64) core.Rect {
	x0 := int(math.Floor(x * v.sx))
	y0 := int(math.Floor(y * v.sy))
	x1 := max(x0+1, int(math.Floor((x+w)*v.sx)))
	y1 := max(y0+1, int(math.Floor((y+h)*v.sy)))
	return core.NewRect(x0+v.offX, y0+hudRows, x1-x0, y1-y0)
}

func (v viewport) fill(r core.Rect, ch rune, c core.Color) {
	// Keep the field clear of the HUD rows
	top := max(r.Y, hudRows)
	v.dst.DrawRect(core.NewRect(r.X, top, r.W, r.Bottom()-top), ch, c)
}

func (v viewport) draw(e EntityView, tick int) {
	r := v.cells(e.X, e.Y, e.W, e.H)

	switch e.Kind {
	case KindStar:
		c := core.ColorGray
		if e.H >= maxStarSpeed {
			c = core.ColorWhite
		}
		v.fill(core.NewRect(r.X, r.Y, 1, 1), StarChar, c)
	case KindParticle:
		c := core.ColorOrange
		if e.W > 3 {
			c = core.ColorBrightYellow
		}
		v.fill(core.NewRect(r.X, r.Y, 1, 1), ParticleChar, c)
	case KindPowerUpMultiplier:
		v.fill(r, 'M', core.ColorBrightYellow)
	case KindPowerUpRapidFire:
		v.fill(r, 'R', core.ColorBrightGreen)
	case KindPowerUpShield:
		v.fill(r, 'S', core.ColorBrightCyan)
	case KindEnemy, KindGunner:
		ch, c := EnemyChar, core.ColorRed
		if e.Kind == KindGunner {
			ch, c = GunnerChar, core.ColorMagenta
		}
		if e.Flags.Has(FlagFlashing) {
			c = core.ColorBrightWhite
		}
		v.fill(r, ch, c)
	case KindBoss:
		c := core.ColorBrightRed
		if e.Flags.Has(FlagEnraged) {
			c = core.ColorOrange
		}
		if e.Flags.Has(FlagFlashing) {
			c = core.ColorBrightWhite
		}
		v.fill(r, BossChar, c)
	case KindPlayerShot:
		v.fill(r, PlayerShotChar, core.ColorBrightYellow)
	case KindEnemyShot:
		v.fill(r, EnemyShotChar, core.ColorRed)
	case KindBossShot:
		v.fill(r, BossShotChar, core.ColorBrightMagenta)
	case KindPlayer:
		v.drawPlayer(r, e.Flags, tick)
	}
}

func (v viewport) drawPlayer(r core.Rect, fl Flags, tick int) {
	if fl.Has(FlagInvulnerable) && (tick/4)%2 == 1 {
		return
	}

	c := core.ColorCyan
	if fl.Has(FlagCrashing) {
		c = core.ColorRed
	}
	v.fill(r, PlayerChar, c)
	v.fill(core.NewRect(r.X+r.W/2, r.Y, 1, 1), PlayerNoseChar, core.ColorBrightWhite)

	if fl.Has(FlagShielded) {
		for y := r.Y; y < r.Bottom(); y++ {
			v.fill(core.NewRect(r.X-1, y, 1, 1), ShieldLeft, core.ColorBrightBlue)
			v.fill(core.NewRect(r.Right(), y, 1, 1), ShieldRight, core.ColorBrightBlue)
		}
	}
}

// renderHUD draws score, lives and level on row 0, buffs and progress on row 1.
func renderHUD(dst *core.Screen, hud HUD) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	dst.DrawHLine(0, 1, dst.Width(), BorderHoriz, core.ColorGray)

	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d  Hi: %d", hud.Score, hud.HighScore), core.ColorBrightWhite)
	dst.DrawTextCenteredColored(0, "Lives: "+strings.Repeat(string(LifeChar), hud.Lives), core.ColorBrightRed)
	levelText := fmt.Sprintf("Level: %d", hud.Level)
	dst.DrawTextColored(dst.Width()-len(levelText)-1, 0, levelText, core.ColorBrightWhite)

	if hud.Phase != PhasePlaying && hud.Phase != PhaseLevelComplete {
		return
	}

	if effects := effectsString(hud); effects != "" {
		dst.DrawTextColored(1, 1, " "+effects+" ", core.ColorBrightGreen)
	}

	var progress string
	if hud.HasBoss {
		const barW = 10
		filled := int(math.Ceil(hud.BossHealth * barW))
		progress = fmt.Sprintf(" BOSS [%s%s] ", strings.Repeat("#", filled), strings.Repeat("-", barW-filled))
	} else {
		progress = fmt.Sprintf(" Enemies left: %d ", hud.EnemiesLeft)
	}
	dst.DrawTextColored(dst.Width()-len(progress)-1, 1, progress, core.ColorYellow)
}

// effectsString creates a compact buff display.
func effectsString(hud HUD) string {
	var parts []string
	if hud.MultiplierTicks > 0 {
		parts = append(parts, fmt.Sprintf("x%d(%ds)", hud.Multiplier, seconds(hud.MultiplierTicks)))
	}
	if hud.RapidFireTicks > 0 {
		parts = append(parts, fmt.Sprintf("RAPID(%ds)", seconds(hud.RapidFireTicks)))
	}
	if hud.ShieldTicks > 0 {
		parts = append(parts, fmt.Sprintf("SHIELD(%ds)", seconds(hud.ShieldTicks)))
	}
	return strings.Join(parts, " ")
}

func seconds(ticks int) int {
	return (ticks + 59) / 60
}

// renderOverlay draws phase messages over the field.
func renderOverlay(dst *core.Screen, hud HUD) {
	mid := dst.Height() / 2

	switch hud.Phase {
	case PhaseMenu:
		dst.DrawTextCenteredColored(mid-3, "S P A C E   S H O O T E R", core.ColorBrightCyan)
		dst.DrawTextCenteredColored(mid-1, fmt.Sprintf("High score: %d", hud.HighScore), core.ColorYellow)
		dst.DrawTextCentered(mid+1, "Press ENTER to start")
		dst.DrawTextCenteredColored(mid+3, "←/→ move  SPACE fire  P pause  Q quit", core.ColorGray)
	case PhaseLevelComplete:
		dst.DrawTextCenteredColored(mid-1, fmt.Sprintf("LEVEL %d COMPLETE", hud.Level), core.ColorBrightGreen)
		dst.DrawTextCentered(mid+1, fmt.Sprintf("Next level in %d...", seconds(hud.CompleteTicks)))
	case PhaseGameOver:
		dst.DrawTextCenteredColored(mid-2, "G A M E   O V E R", core.ColorBrightRed)
		dst.DrawTextCentered(mid, fmt.Sprintf("Score: %d  Level: %d", hud.Score, hud.Level))
		if hud.Score > 0 && hud.Score >= hud.HighScore {
			dst.DrawTextCenteredColored(mid+1, "NEW HIGH SCORE!", core.ColorBrightYellow)
		}
		dst.DrawTextCentered(mid+3, "R restart  Q quit")
	}

	if hud.Paused {
		dst.DrawTextCenteredColored(mid, " PAUSED ", core.ColorBrightYellow)
	}
}

package game

import (
	"fmt"

	"github.com/smolin/blockade/internal/core"
	"github.com/smolin/blockade/internal/engine/block"
	"github.com/smolin/blockade/internal/engine/entity"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
	BulletChar = '|'
	GuideChar  = '·'
	HorizLine  = '─'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderBlocks(dst)
	g.renderPaddle(dst)
	g.renderBalls(dst)
	g.renderBullets(dst)
	g.renderOverlay(dst)
}

// cellX maps a virtual-pixel X coordinate to a terminal column.
func cellX(px float64) int {
	return int(px) / core.CellPixelsX
}

// cellY maps a virtual-pixel Y coordinate to a terminal row.
func cellY(px float64) int {
	return int(px) / core.CellPixelsY
}

// renderHUD draws the score, lives, ammo, timer, and level indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.ledger.Score()))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d  Ammo: %d", g.sess.State().Lives(), g.ledger.Ammo()))

	lvl := levelLabel(g)
	dst.DrawText(dst.Width()-len(lvl)-1, 0, lvl)

	// Row 1: bonus timer on the left, transient notice in the middle.
	dst.DrawText(1, 1, fmt.Sprintf("Time: %d", g.sess.State().BonusRemaining()))
	if g.notice != "" && g.tickCount < g.noticeUntil {
		dst.DrawTextCentered(1, g.notice)
	} else {
		for x := 0; x < dst.Width(); x++ {
			dst.Set(x, 1, HorizLine)
		}
	}
}

// renderBlocks draws the block field, coloring by kind and fading blocks
// through their explosion frames.
func (g *Game) renderBlocks(dst *core.Screen) {
	for _, b := range g.sess.Blocks().Blocks() {
		if b.Phase() == block.StateDestroyed {
			continue
		}

		bounds := b.Bounds()
		x0 := cellX(bounds.X)
		x1 := cellX(bounds.Right() - 1)
		y0 := cellY(bounds.Y)
		y1 := cellY(bounds.Bottom() - 1)

		glyph, color := blockGlyph(b)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				dst.SetColored(x, y, glyph, color)
			}
		}
	}
}

// explosionGlyphs fade a breaking block out, indexed by explosion frame.
var explosionGlyphs = []rune{'█', '▓', '▒', '░', '.'}

// blockGlyph picks the glyph and color for a block by kind and phase.
// Counter blocks show their remaining hit count.
func blockGlyph(b block.Breakable) (rune, core.Color) {
	if b.Phase() == block.StateBreaking {
		if blk, ok := b.(interface{ ExplosionFrame() int }); ok {
			frame := blk.ExplosionFrame()
			if frame >= len(explosionGlyphs) {
				frame = len(explosionGlyphs) - 1
			}
			return explosionGlyphs[frame], core.ColorYellow
		}
		return '▒', core.ColorYellow
	}

	if c, ok := b.(*block.CounterBlock); ok {
		return rune('0' + core.Clamp(c.HitsRemaining(), 0, 9)), core.ColorBrightCyan
	}

	switch b.Kind() {
	case block.KindBlue:
		return '█', core.ColorBlue
	case block.KindGreen:
		return '█', core.ColorGreen
	case block.KindOrange:
		return '█', core.ColorOrange
	case block.KindPurple:
		return '█', core.ColorMagenta
	case block.KindRed:
		return '█', core.ColorRed
	case block.KindUnbreakable:
		return '▓', core.ColorGray
	case block.KindBomb:
		return '*', core.ColorBrightRed
	case block.KindExpand:
		return 'E', core.ColorBrightGreen
	case block.KindShrink:
		return 'S', core.ColorBrightMagenta
	case block.KindSticky:
		return 'T', core.ColorBrightGreen
	case block.KindReverse:
		return 'V', core.ColorBrightMagenta
	case block.KindAmmo:
		return 'A', core.ColorBrightYellow
	case block.KindMultiball:
		return 'M', core.ColorBrightCyan
	case block.KindRoamer:
		return 'R', core.ColorCyan
	default:
		return '█', core.ColorWhite
	}
}

// renderPaddle draws the player's paddle.
func (g *Game) renderPaddle(dst *core.Screen) {
	p := g.sess.Paddle()
	bounds := p.Bounds()
	y := cellY(bounds.Y)
	x0 := cellX(bounds.X)
	x1 := cellX(bounds.Right() - 1)

	color := core.ColorWhite
	if g.sess.PowerUps().Sticky() {
		color = core.ColorBrightGreen
	}
	for x := x0; x <= x1; x++ {
		dst.SetColored(x, y, PaddleChar, color)
	}
}

// renderBalls draws all balls, plus the launch guide for stuck balls.
func (g *Game) renderBalls(dst *core.Screen) {
	for _, b := range g.sess.Balls() {
		if !b.Active {
			continue
		}

		dst.SetColored(cellX(b.Pos.X), cellY(b.Pos.Y), BallChar, core.ColorBrightWhite)

		if b.Stuck {
			g.renderGuide(dst, b)
		}
	}
}

// renderGuide draws the aim line for a stuck ball's current guide slot.
func (g *Game) renderGuide(dst *core.Screen, b *entity.Ball) {
	dir := entity.LaunchDirection(b.GuidePos)
	for i := 1; i <= 4; i++ {
		step := float64(i * core.CellPixelsY)
		p := b.Pos.Add(dir.Scale(step))
		dst.SetColored(cellX(p.X), cellY(p.Y), GuideChar, core.ColorGray)
	}
}

// renderBullets draws bullets in flight.
func (g *Game) renderBullets(dst *core.Screen) {
	for _, b := range g.sess.Bullets() {
		if !b.Active {
			continue
		}
		dst.SetColored(cellX(b.Pos.X), cellY(b.Pos.Y), BulletChar, core.ColorBrightYellow)
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePlaying:
		if g.hasStuckBall() {
			dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch")
		}

	case StateLevelClear:
		g.drawCenteredBox(dst, "LEVEL CLEAR!", fmt.Sprintf("Bonus: %d", g.clearBonus*g.cfg.Gameplay.BonusPerSec))

	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.ledger.Score())
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.ledger.Score())
		g.drawCenteredBox(dst, "YOU WIN!", subtitle)
	}
}

func (g *Game) hasStuckBall() bool {
	for _, b := range g.sess.Balls() {
		if b.Active && b.Stuck {
			return true
		}
	}
	return false
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewCellRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewCellRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

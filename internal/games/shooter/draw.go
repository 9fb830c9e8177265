package shooter

import (
	"github.com/vovakirdan/space-shooter/internal/assets"
	"github.com/vovakirdan/space-shooter/internal/core"
)

// drawSprite projects a sprite placed at logical (x, y) onto the screen.
// Glyphs outside the playfield are clipped.
func drawSprite(dst *core.Screen, vp core.Viewport, s assets.Sprite, x, y int, c core.Color) {
	for gy, row := range s.Glyphs {
		py := y + gy*assets.TexelH
		if py < 0 || py >= vp.Height {
			continue
		}
		for gx, g := range row {
			if g == ' ' {
				continue
			}
			px := x + gx*assets.TexelW
			if !vp.Visible(px, py) {
				continue
			}
			col, r := vp.ToCell(px, py)
			dst.SetCell(col, r, g, c)
		}
	}
}

// drawText places text whose top-left corner is the logical point (x, y).
// The text is shifted left if it would run past the last column.
func drawText(dst *core.Screen, vp core.Viewport, x, y int, text string, c core.Color) {
	col, row := vp.ToCell(x, y)
	col = core.Clamp(col, 0, max(dst.Width()-len([]rune(text)), 0))
	dst.DrawText(col, row, text, c)
}

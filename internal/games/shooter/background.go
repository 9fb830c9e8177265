package shooter

import (
	"fmt"

	"github.com/vovakirdan/space-shooter/internal/assets"
	"github.com/vovakirdan/space-shooter/internal/core"
)

// Background scrolls two stacked copies of the sky tile downward.
// A tile whose top reaches one tile height jumps back above the other,
// so the pair always covers [0, tile height).
type Background struct {
	tile  assets.Sprite
	rect1 core.Rect
	rect2 core.Rect
	speed int
	color core.Color
}

// NewBackground places one tile at the top of the field and one directly above it.
func NewBackground(tile assets.Sprite, speed int, c core.Color) *Background {
	w, h := tile.Width(), tile.Height()
	return &Background{
		tile:  tile,
		rect1: core.NewRect(0, 0, w, h),
		rect2: core.NewRect(0, -h, w, h),
		speed: speed,
		color: c,
	}
}

// Update scrolls both tiles and wraps any that left the bottom.
func (b *Background) Update() {
	b.rect1.Y += b.speed
	b.rect2.Y += b.speed
	b.rect1 = wrapTile(b.rect1)
	b.rect2 = wrapTile(b.rect2)
}

// wrapTile moves a tile that scrolled off the bottom two heights up,
// keeping it flush with the other tile even when speed does not divide
// the height.
func wrapTile(r core.Rect) core.Rect {
	if r.Top() >= r.H {
		r.Y -= 2 * r.H
	}
	return r
}

// Tiles returns both tile rectangles.
func (b *Background) Tiles() (core.Rect, core.Rect) {
	return b.rect1, b.rect2
}

// Draw renders both tiles.
func (b *Background) Draw(dst *core.Screen, vp core.Viewport) {
	drawSprite(dst, vp, b.tile, b.rect1.X, b.rect1.Y, b.color)
	drawSprite(dst, vp, b.tile, b.rect2.X, b.rect2.Y, b.color)
}

// check verifies that the two tiles still cover the field without a gap.
func (b *Background) check() error {
	h := b.rect1.H
	lo, hi := min(b.rect1.Y, b.rect2.Y), max(b.rect1.Y, b.rect2.Y)
	if lo > 0 || hi < 0 || hi >= h || hi-lo != h {
		return fmt.Errorf("%w: background tiles at y=%d and y=%d leave a gap", ErrInvariant, b.rect1.Y, b.rect2.Y)
	}
	return nil
}

package shooter

import (
	"github.com/vovakirdan/space-shooter/internal/assets"
	"github.com/vovakirdan/space-shooter/internal/core"
)

// Player is the ship at the bottom of the field.
type Player struct {
	frames []assets.Sprite
	anim   Animation
	rect   core.Rect
	speed  int
	fieldW int
	color  core.Color
}

// NewPlayer centers the ship horizontally, bottomOffset pixels above the bottom edge.
// The first frame sets the collision size.
func NewPlayer(frames []assets.Sprite, fieldW, fieldH, bottomOffset, speed int, c core.Color) *Player {
	return &Player{
		frames: frames,
		anim:   NewAnimation(len(frames)),
		rect:   core.CenteredRect(fieldW/2, fieldH-bottomOffset, frames[0].Width(), frames[0].Height()),
		speed:  speed,
		fieldW: fieldW,
		color:  c,
	}
}

// Rect returns the ship's collision rectangle.
func (p *Player) Rect() core.Rect { return p.rect }

func (p *Player) animation() *Animation { return &p.anim }

// Update moves the ship according to held keys. Left and right are applied
// independently, so holding both moves left then right within one tick.
func (p *Player) Update(in core.InputFrame) {
	if in.IsHeld(core.ActionLeft) && p.rect.Left() > 0 {
		p.rect.X -= p.speed
	}
	if in.IsHeld(core.ActionRight) && p.rect.Right() < p.fieldW {
		p.rect.X += p.speed
	}
}

// Draw renders the current animation frame.
func (p *Player) Draw(dst *core.Screen, vp core.Viewport) {
	drawSprite(dst, vp, p.frames[p.anim.Frame()], p.rect.X, p.rect.Y, p.color)
}

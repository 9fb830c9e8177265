package shooter

import (
	"fmt"

	"github.com/vovakirdan/space-shooter/internal/assets"
	"github.com/vovakirdan/space-shooter/internal/audio"
	"github.com/vovakirdan/space-shooter/internal/core"
)

// Targets is what projectiles can hit.
type Targets interface {
	DestroyFirst(r core.Rect) bool
}

// ProjectilePool holds the rising projectiles.
type ProjectilePool struct {
	sprite assets.Sprite
	rects  []core.Rect
	state  *State
	sound  audio.Player
	speed  int
	points int
	color  core.Color
}

// NewProjectilePool creates an empty pool.
func NewProjectilePool(sprite assets.Sprite, state *State, sound audio.Player, speed, points int, c core.Color) *ProjectilePool {
	return &ProjectilePool{
		sprite: sprite,
		rects:  make([]core.Rect, 0, 16),
		state:  state,
		sound:  sound,
		speed:  speed,
		points: points,
		color:  c,
	}
}

// Rects returns the live projectiles. The slice is owned by the pool.
func (pp *ProjectilePool) Rects() []core.Rect { return pp.rects }

// Len returns the number of live projectiles.
func (pp *ProjectilePool) Len() int { return len(pp.rects) }

// Fire launches a projectile centered on the ship's top edge and starts
// the fire sound. The projectile exists even if the sound fails.
func (pp *ProjectilePool) Fire(ship core.Rect) error {
	pp.rects = append(pp.rects, core.CenteredRect(ship.CenterX(), ship.Top(), pp.sprite.Width(), pp.sprite.Height()))
	if err := pp.sound.PlayFire(); err != nil {
		return fmt.Errorf("shooter: fire sound: %w", err)
	}
	return nil
}

// Update moves every projectile up, drops the ones above the top edge and
// resolves hits. A projectile destroys at most one enemy per tick.
func (pp *ProjectilePool) Update(targets Targets) {
	kept := pp.rects[:0]
	for _, r := range pp.rects {
		r.Y -= pp.speed

		if r.Bottom() < 0 {
			continue
		}
		if targets.DestroyFirst(r) {
			pp.state.AddKill(pp.points)
			continue
		}
		kept = append(kept, r)
	}
	pp.rects = kept
}

// Draw renders every projectile.
func (pp *ProjectilePool) Draw(dst *core.Screen, vp core.Viewport) {
	for _, r := range pp.rects {
		drawSprite(dst, vp, pp.sprite, r.X, r.Y, pp.color)
	}
}

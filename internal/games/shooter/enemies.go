package shooter

import (
	"math/rand"

	"github.com/vovakirdan/space-shooter/internal/assets"
	"github.com/vovakirdan/space-shooter/internal/core"
)

// EnemyPool holds the falling enemies. Enemies have no identity beyond
// their rectangle and all share one animation.
type EnemyPool struct {
	frames []assets.Sprite
	anim   Animation
	rects  []core.Rect
	rng    *rand.Rand
	state  *State
	speed  int
	margin int
	fieldW int
	fieldH int
	color  core.Color
}

// NewEnemyPool creates an empty pool. Spawn positions come from rng.
func NewEnemyPool(frames []assets.Sprite, state *State, rng *rand.Rand, fieldW, fieldH, speed, margin int, c core.Color) *EnemyPool {
	return &EnemyPool{
		frames: frames,
		anim:   NewAnimation(len(frames)),
		rects:  make([]core.Rect, 0, 16),
		rng:    rng,
		state:  state,
		speed:  speed,
		margin: margin,
		fieldW: fieldW,
		fieldH: fieldH,
		color:  c,
	}
}

func (ep *EnemyPool) animation() *Animation { return &ep.anim }

// Rects returns the live enemies. The slice is owned by the pool.
func (ep *EnemyPool) Rects() []core.Rect { return ep.rects }

// Len returns the number of live enemies.
func (ep *EnemyPool) Len() int { return len(ep.rects) }

// Spawn adds one enemy whose top-left corner is (x, 0), with x uniform in
// [margin, width-margin].
func (ep *EnemyPool) Spawn() core.Rect {
	x := ep.margin + ep.rng.Intn(ep.fieldW-2*ep.margin+1)
	r := core.NewRect(x, 0, ep.frames[0].Width(), ep.frames[0].Height())
	ep.rects = append(ep.rects, r)
	return r
}

// Add places an enemy at an exact position.
func (ep *EnemyPool) Add(x, y int) {
	ep.rects = append(ep.rects, core.NewRect(x, y, ep.frames[0].Width(), ep.frames[0].Height()))
}

// Update moves every enemy down, then resolves player hits and enemies
// that left the bottom edge. It returns true when a hit took the last life;
// the remaining enemies are left untouched in that case.
func (ep *EnemyPool) Update(player core.Rect) bool {
	kept := ep.rects[:0]
	for i, r := range ep.rects {
		r.Y += ep.speed

		if r.Intersects(player) {
			if ep.state.LoseLife() {
				ep.rects[i] = r
				ep.rects = append(kept, ep.rects[i:]...)
				return true
			}
			continue
		}
		if r.Top() >= ep.fieldH {
			continue
		}
		kept = append(kept, r)
	}
	ep.rects = kept
	return false
}

// DestroyFirst removes the first enemy that overlaps r.
// It returns false if no enemy overlaps.
func (ep *EnemyPool) DestroyFirst(r core.Rect) bool {
	for i, e := range ep.rects {
		if e.Intersects(r) {
			ep.rects = append(ep.rects[:i], ep.rects[i+1:]...)
			return true
		}
	}
	return false
}

// Draw renders every enemy with the shared animation frame.
func (ep *EnemyPool) Draw(dst *core.Screen, vp core.Viewport) {
	frame := ep.frames[ep.anim.Frame()]
	for _, r := range ep.rects {
		drawSprite(dst, vp, frame, r.X, r.Y, ep.color)
	}
}

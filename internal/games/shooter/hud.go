package shooter

import (
	"fmt"

	"github.com/vovakirdan/space-shooter/internal/assets"
	"github.com/vovakirdan/space-shooter/internal/core"
)

// hudMargin is the gap between the overlay text and the field edges.
const hudMargin = 10

// HUD draws the score and life counters. It only reads State.
type HUD struct {
	state  *State
	fieldW int
	color  core.Color
}

// NewHUD creates the overlay for state.
func NewHUD(state *State, fieldW int, c core.Color) *HUD {
	return &HUD{state: state, fieldW: fieldW, color: c}
}

// Lines returns the two overlay strings.
func (h *HUD) Lines() (score, lives string) {
	return fmt.Sprintf("Score: %d", h.state.Score()), fmt.Sprintf("Lives: %d", h.state.Lives())
}

// Draw renders score at the top-left and lives at the top-right.
func (h *HUD) Draw(dst *core.Screen, vp core.Viewport) {
	score, lives := h.Lines()
	drawText(dst, vp, hudMargin, hudMargin, score, h.color)

	livesW := len(lives) * assets.TexelW
	drawText(dst, vp, h.fieldW-livesW-hudMargin, hudMargin, lives, h.color)
}

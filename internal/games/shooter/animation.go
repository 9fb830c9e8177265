package shooter

// Animation cycles a frame index each time the animation timer fires.
type Animation struct {
	frames int
	index  int
}

// NewAnimation creates an animation over n frames.
func NewAnimation(n int) Animation {
	return Animation{frames: max(n, 1)}
}

// Frame returns the current frame index.
func (a *Animation) Frame() int { return a.index }

// Advance moves to the next frame, wrapping around.
func (a *Animation) Advance() {
	a.index = (a.index + 1) % a.frames
}

// animated is implemented by components subscribed to the animation timer.
type animated interface {
	animation() *Animation
}

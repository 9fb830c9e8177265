package shooter

import (
	"errors"
	"fmt"
)

// ErrInvariant marks a frame that left the session in an impossible state.
// Unlike other frame errors it is not safe to keep playing after it.
var ErrInvariant = errors.New("shooter: state invariant violated")

// State is the score and life count shared by the pools.
// Enemies only take lives; projectiles only add score.
type State struct {
	score    int
	lives    int
	maxLives int
	kills    int
	over     bool
}

// NewState creates a state with the given starting lives.
func NewState(lives int) *State {
	return &State{lives: lives, maxLives: lives}
}

// Score returns the current score.
func (s *State) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *State) Lives() int { return s.lives }

// Kills returns how many enemies projectiles destroyed.
func (s *State) Kills() int { return s.kills }

// Over reports whether the last life was lost.
func (s *State) Over() bool { return s.over }

// AddKill records one enemy destroyed by a projectile worth points.
func (s *State) AddKill(points int) {
	s.score += points
	s.kills++
}

// LoseLife takes one life. It returns true when that was the last life,
// which ends the session.
func (s *State) LoseLife() bool {
	if s.lives > 1 {
		s.lives--
		return false
	}
	s.lives = 0
	s.over = true
	return true
}

// snapshot captures the values invariants are checked against.
type snapshot struct {
	score, lives int
}

func (s *State) snapshot() snapshot {
	return snapshot{score: s.score, lives: s.lives}
}

// check verifies the state after a frame against the state before it.
func (s *State) check(prev snapshot) error {
	switch {
	case s.lives < 0 || s.lives > s.maxLives:
		return fmt.Errorf("%w: lives %d outside [0, %d]", ErrInvariant, s.lives, s.maxLives)
	case s.lives > prev.lives:
		return fmt.Errorf("%w: lives increased from %d to %d", ErrInvariant, prev.lives, s.lives)
	case s.score < prev.score:
		return fmt.Errorf("%w: score decreased from %d to %d", ErrInvariant, prev.score, s.score)
	case s.score < 0:
		return fmt.Errorf("%w: negative score %d", ErrInvariant, s.score)
	}
	return nil
}

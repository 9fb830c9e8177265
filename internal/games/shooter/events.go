package shooter

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/space-shooter/internal/core"
)

// ErrUnknownEvent is returned for events no component handles.
var ErrUnknownEvent = errors.New("shooter: unknown event")

// EventKind identifies an event delivered to the components each frame.
type EventKind int

const (
	EventQuit           EventKind = iota // Window close or quit key
	EventKeyDown                         // Discrete key press, Action says which
	EventSpawnTimer                      // Enemy spawn period elapsed
	EventAnimationTimer                  // Animation frame period elapsed
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "Quit"
	case EventKeyDown:
		return "KeyDown"
	case EventSpawnTimer:
		return "SpawnTimer"
	case EventAnimationTimer:
		return "AnimationTimer"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one record from the per-frame event poll.
type Event struct {
	Kind   EventKind
	Action core.Action // Set for EventKeyDown
}

func (e Event) String() string {
	if e.Kind == EventKeyDown {
		return fmt.Sprintf("KeyDown(%s)", e.Action)
	}
	return e.Kind.String()
}

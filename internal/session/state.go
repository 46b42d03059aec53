// Package session runs the menu, playing and game-over state machine that
// owns the snake, the food and the score.
package session

// State represents the current session state.
type State int

const (
	// StateMenu shows the title and the Start and Exit controls.
	StateMenu State = iota
	// StatePlaying advances the snake on every due tick.
	StatePlaying
	// StateGameOver freezes the final board until the player continues.
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// CollisionKind identifies what ended a round.
type CollisionKind int

const (
	CollisionNone CollisionKind = iota
	CollisionSelf
	CollisionWall
)

// String returns a human-readable collision name.
func (k CollisionKind) String() string {
	switch k {
	case CollisionNone:
		return "none"
	case CollisionSelf:
		return "self"
	case CollisionWall:
		return "wall"
	default:
		return "unknown"
	}
}

// Collision records the body indices that ended the round, for highlighting.
// A self collision holds the two matching indices; a wall collision holds one.
type Collision struct {
	Kind    CollisionKind
	Indices []int
}

// Involves reports whether body index i took part in the collision.
func (c Collision) Involves(i int) bool {
	for _, idx := range c.Indices {
		if idx == i {
			return true
		}
	}
	return false
}

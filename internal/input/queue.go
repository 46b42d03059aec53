package input

import "github.com/samdwyer/gridsnake/internal/grid"

// Queue buffers requested directions between ticks, oldest first.
type Queue struct {
	pending []grid.Direction
}

// Push appends a direction.
func (q *Queue) Push(d grid.Direction) {
	q.pending = append(q.pending, d)
}

// PushFrame appends the frame's highest priority direction, if any.
// It appends at most one entry per call.
func (q *Queue) PushFrame(f Frame) bool {
	d, ok := f.Direction()
	if ok {
		q.Push(d)
	}
	return ok
}

// Next removes the oldest entry and returns the direction to move in.
// An entry that reverses current is dropped and current is returned.
// With nothing queued, current is returned and ok is false.
func (q *Queue) Next(current grid.Direction) (d grid.Direction, ok bool) {
	if len(q.pending) == 0 {
		return current, false
	}
	next := q.pending[0]
	q.pending = q.pending[1:]
	if next == current.Opposite() {
		return current, true
	}
	return next, true
}

// Len returns the number of queued entries.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Clear drops every queued entry.
func (q *Queue) Clear() {
	q.pending = q.pending[:0]
}

package input

import (
	"testing"

	"github.com/samdwyer/gridsnake/internal/grid"
)

func TestFrameDirectionPriority(t *testing.T) {
	tests := []struct {
		name   string
		keys   KeySet
		want   grid.Direction
		wantOK bool
	}{
		{"none", Keys(), 0, false},
		{"confirm only", Keys(KeyConfirm), 0, false},
		{"down", Keys(KeyDown), grid.Down, true},
		{"up beats everything", Keys(KeyDown, KeyLeft, KeyRight, KeyUp), grid.Up, true},
		{"right beats left and down", Keys(KeyDown, KeyLeft, KeyRight), grid.Right, true},
		{"left beats down", Keys(KeyDown, KeyLeft), grid.Left, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Frame{Keys: tt.keys}.Direction()
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("Direction() = %v,%v want %v,%v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestKeySet(t *testing.T) {
	s := Keys(KeyUp, KeyQuit)
	if !s.Has(KeyUp) || !s.Has(KeyQuit) {
		t.Errorf("Keys(up, quit) missing members: %b", s)
	}
	if s.Has(KeyConfirm) {
		t.Error("Keys(up, quit).Has(confirm) = true")
	}
}

func TestQueuePushFrameOnePerFrame(t *testing.T) {
	var q Queue
	q.PushFrame(Frame{Keys: Keys(KeyUp, KeyLeft)})
	q.PushFrame(Frame{})
	q.PushFrame(Frame{Keys: Keys(KeyLeft)})

	if q.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", q.Len())
	}
	if d, _ := q.Next(grid.Right); d != grid.Up {
		t.Errorf("first Next() = %v, want up", d)
	}
	if d, _ := q.Next(grid.Up); d != grid.Left {
		t.Errorf("second Next() = %v, want left", d)
	}
}

func TestQueueDropsReversalAtConsumption(t *testing.T) {
	var q Queue
	q.Push(grid.Right)

	// Enqueued while moving left: the entry stays queued until consumed.
	if q.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", q.Len())
	}
	d, ok := q.Next(grid.Left)
	if !ok || d != grid.Left {
		t.Errorf("Next(left) with right queued = %v,%v want left,true", d, ok)
	}
	if q.Len() != 0 {
		t.Errorf("reversal not consumed, Len() = %d", q.Len())
	}
}

func TestQueueAcceptsPerpendicularTurn(t *testing.T) {
	var q Queue
	q.Push(grid.Down)

	if d, _ := q.Next(grid.Right); d != grid.Down {
		t.Errorf("Next(right) with down queued = %v, want down", d)
	}
}

func TestQueueEmpty(t *testing.T) {
	var q Queue
	d, ok := q.Next(grid.Up)
	if ok || d != grid.Up {
		t.Errorf("Next() on empty queue = %v,%v want up,false", d, ok)
	}

	q.Push(grid.Left)
	q.Clear()
	if q.Len() != 0 {
		t.Errorf("Len() after Clear = %d", q.Len())
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		key      Key
		expected string
	}{
		{KeyUp, "up"},
		{KeyConfirm, "confirm"},
		{KeyQuit, "quit"},
		{Key(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.key.String(); got != tt.expected {
			t.Errorf("Key(%d).String() = %q, want %q", tt.key, got, tt.expected)
		}
	}
}

package tick

import (
	"testing"
	"time"
)

func TestDue(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewScheduler(start)
	interval := 150 * time.Millisecond

	if s.Due(start.Add(100*time.Millisecond), interval) {
		t.Error("Due() before interval = true, want false")
	}
	if !s.Due(start.Add(150*time.Millisecond), interval) {
		t.Error("Due() at exactly interval = false, want true")
	}
	if got := s.Last(); !got.Equal(start.Add(150 * time.Millisecond)) {
		t.Errorf("Last() = %v, want start+150ms", got)
	}
	if s.Due(start.Add(200*time.Millisecond), interval) {
		t.Error("Due() 50ms after tick = true, want false")
	}
}

func TestDueAtMostOncePerFrame(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewScheduler(start)

	// A long stall still yields a single tick; the backlog is dropped.
	now := start.Add(time.Second)
	if !s.Due(now, 100*time.Millisecond) {
		t.Fatal("Due() after stall = false, want true")
	}
	if s.Due(now, 100*time.Millisecond) {
		t.Error("Due() twice in one frame = true, want false")
	}
}

func TestZeroIntervalFiresEveryFrame(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewScheduler(start)

	for i := 0; i < 5; i++ {
		if !s.Due(start.Add(time.Duration(i)*time.Millisecond), 0) {
			t.Errorf("frame %d: Due(_, 0) = false, want true", i)
		}
	}
}

func TestReset(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewScheduler(start)

	later := start.Add(time.Hour)
	s.Reset(later)
	if s.Due(later.Add(10*time.Millisecond), 50*time.Millisecond) {
		t.Error("Due() right after Reset = true, want false")
	}
}

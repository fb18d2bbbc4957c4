package imguidemo

import (
	"math"
	"testing"
	"time"
)

type fakeTime struct {
	t time.Time
}

func (f *fakeTime) now() time.Time { return f.t }

func (f *fakeTime) advance(d time.Duration) { f.t = f.t.Add(d) }

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestClock_FirstTickIsNominal(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewClockWith(ft.now)

	if dt := c.Tick(); dt != NominalFrameTime {
		t.Errorf("Expected first tick %f, got %f", NominalFrameTime, dt)
	}
}

func TestClock_Elapsed(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewClockWith(ft.now)
	c.Tick()

	ft.advance(20 * time.Millisecond)
	if dt := c.Tick(); !approx(dt, 0.02) {
		t.Errorf("Expected 0.02s, got %f", dt)
	}

	ft.advance(500 * time.Millisecond)
	if dt := c.Tick(); !approx(dt, 0.5) {
		t.Errorf("Expected 0.5s, got %f", dt)
	}
}

func TestClock_ClampsToMinimum(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewClockWith(ft.now)
	c.Tick()

	// No time passed.
	if dt := c.Tick(); dt != MinFrameTime {
		t.Errorf("Expected %g for zero elapsed, got %g", MinFrameTime, dt)
	}

	// Clock went backwards.
	ft.advance(-time.Second)
	if dt := c.Tick(); dt != MinFrameTime {
		t.Errorf("Expected %g for negative elapsed, got %g", MinFrameTime, dt)
	}
}

func TestFrameHistory_Empty(t *testing.T) {
	h := NewFrameHistory(4)

	if h.Len() != 0 || len(h.Values()) != 0 {
		t.Errorf("Expected empty history, got %v", h.Values())
	}
	if h.Average() != 0 || h.FPS() != 0 {
		t.Errorf("Expected zero average and FPS, got %f, %f", h.Average(), h.FPS())
	}
}

func TestFrameHistory_Wraps(t *testing.T) {
	h := NewFrameHistory(3)
	for _, v := range []float32{1, 2, 3, 4, 5} {
		h.Push(v)
	}

	if h.Len() != 3 {
		t.Fatalf("Expected 3 samples, got %d", h.Len())
	}
	got := h.Values()
	want := []float32{3, 4, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected %v oldest first, got %v", want, got)
		}
	}
	if h.Average() != 4 {
		t.Errorf("Expected average 4, got %f", h.Average())
	}
}

func TestFrameHistory_FPS(t *testing.T) {
	h := NewFrameHistory(10)
	h.Push(0.02)
	h.Push(0.02)

	if fps := h.FPS(); !approx(fps, 50) {
		t.Errorf("Expected 50 FPS, got %f", fps)
	}
}

func TestFrameHistory_MinimumCapacity(t *testing.T) {
	h := NewFrameHistory(0)
	h.Push(1)
	h.Push(2)

	if h.Len() != 1 || h.Values()[0] != 2 {
		t.Errorf("Expected single newest sample, got %v", h.Values())
	}
}

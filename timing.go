package imguidemo

import "time"

// Frame timing constants.
const (
	NominalFrameTime float32 = 1.0 / 60.0
	MinFrameTime     float32 = 1e-5 // Dear ImGui rejects a zero delta
)

// Clock produces per-frame delta times.
type Clock struct {
	now  func() time.Time
	last time.Time
}

// NewClock creates a clock reading the wall clock.
func NewClock() *Clock {
	return NewClockWith(time.Now)
}

// NewClockWith creates a clock reading an arbitrary time source.
func NewClockWith(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Tick returns the seconds elapsed since the previous Tick.
// The first tick reports NominalFrameTime.
func (c *Clock) Tick() float32 {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return NominalFrameTime
	}

	dt := float32(t.Sub(c.last).Seconds())
	c.last = t
	if dt < MinFrameTime {
		return MinFrameTime
	}
	return dt
}

// FrameHistory is a fixed-capacity ring of frame times in seconds.
type FrameHistory struct {
	buf   []float32
	next  int
	count int
}

// NewFrameHistory creates a history holding up to capacity samples.
func NewFrameHistory(capacity int) *FrameHistory {
	if capacity < 1 {
		capacity = 1
	}
	return &FrameHistory{buf: make([]float32, capacity)}
}

// Push records a frame time, evicting the oldest when full.
func (h *FrameHistory) Push(dt float32) {
	h.buf[h.next] = dt
	h.next = (h.next + 1) % len(h.buf)
	if h.count < len(h.buf) {
		h.count++
	}
}

// Len returns the number of recorded samples.
func (h *FrameHistory) Len() int {
	return h.count
}

// Values returns the samples oldest first.
func (h *FrameHistory) Values() []float32 {
	out := make([]float32, 0, h.count)
	start := (h.next - h.count + len(h.buf)) % len(h.buf)
	for i := 0; i < h.count; i++ {
		out = append(out, h.buf[(start+i)%len(h.buf)])
	}
	return out
}

// Average returns the mean frame time, or 0 when empty.
func (h *FrameHistory) Average() float32 {
	if h.count == 0 {
		return 0
	}
	var sum float32
	for _, v := range h.Values() {
		sum += v
	}
	return sum / float32(h.count)
}

// FPS returns frames per second derived from the average frame time.
func (h *FrameHistory) FPS() float32 {
	avg := h.Average()
	if avg <= 0 {
		return 0
	}
	return 1 / avg
}

package game

import (
	"sync"
	"time"
)

// frameTap records the interval between the last N updates into a ring
// buffer so the tick rate can be reported from another goroutine.
type frameTap struct {
	buffer    []time.Duration
	nextIndex int
	filled    int
	last      time.Time
	mu        sync.RWMutex
}

func newFrameTap(ringSize int) *frameTap {
	return &frameTap{
		buffer: make([]time.Duration, ringSize),
	}
}

// record notes an update at now. The first call only sets the reference time.
func (t *frameTap) record(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.last.IsZero() {
		t.buffer[t.nextIndex] = now.Sub(t.last)
		t.nextIndex++
		if t.nextIndex >= len(t.buffer) {
			t.nextIndex = 0
		}
		if t.filled < len(t.buffer) {
			t.filled++
		}
	}
	t.last = now
}

// snapshot returns up to the last n intervals, oldest first.
func (t *frameTap) snapshot(n int) []time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > t.filled {
		n = t.filled
	}
	out := make([]time.Duration, 0, n)
	// Walk backwards from nextIndex - 1
	idx := t.nextIndex - 1
	if idx < 0 {
		idx = len(t.buffer) - 1
	}
	for i := 0; i < n; i++ {
		out = append(out, t.buffer[idx])
		idx--
		if idx < 0 {
			idx = len(t.buffer) - 1
		}
	}
	// reverse to chronological order
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// rate is the mean number of updates per second over the buffered window.
func (t *frameTap) rate() float64 {
	intervals := t.snapshot(len(t.buffer))
	if len(intervals) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range intervals {
		total += d
	}
	if total <= 0 {
		return 0
	}
	return float64(len(intervals)) / total.Seconds()
}

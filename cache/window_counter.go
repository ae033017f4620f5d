package cache

import (
	"sync"
	"time"
)

// ── Fixed-window request counters ────────────────────────────────────────────
// In-process stand-in for the Redis INCR/EXPIRE pair used by the rate limiter.

type windowEntry struct {
	count   int64
	resetAt time.Time
}

type WindowCounter struct {
	mu      sync.Mutex
	entries map[string]*windowEntry
	now     func() time.Time
}

func NewWindowCounter() *WindowCounter {
	return &WindowCounter{entries: make(map[string]*windowEntry), now: time.Now}
}

// Incr bumps the counter for key, opening a new window when the previous one expired.
// It returns the count inside the current window and when that window resets.
func (w *WindowCounter) Incr(key string, window time.Duration) (int64, time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	e, ok := w.entries[key]
	if !ok || !now.Before(e.resetAt) {
		e = &windowEntry{resetAt: now.Add(window)}
		w.entries[key] = e
	}
	e.count++
	return e.count, e.resetAt
}

// Sweep drops windows that already reset.
func (w *WindowCounter) Sweep() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	removed := 0
	for key, e := range w.entries {
		if !now.Before(e.resetAt) {
			delete(w.entries, key)
			removed++
		}
	}
	return removed
}

func (w *WindowCounter) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.entries)
}

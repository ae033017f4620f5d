// Package cache holds small process-local state shared across requests.
package cache

import (
	"sync"
	"time"
)

// DefaultTokenTTL is how long an idle browser's detail token is remembered.
const DefaultTokenTTL = 5 * time.Minute

// ── Detail-overlay request tokens ────────────────────────────────────────────
// Each browser key carries a monotonically increasing sequence. A request takes a
// token with Begin; when its upstream fetch returns it asks IsCurrent and answers
// "superseded" if a newer request began in the meantime.

type tokenEntry struct {
	seq       uint64
	touchedAt time.Time
}

type DetailTokens struct {
	mu      sync.RWMutex
	entries map[string]tokenEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewDetailTokens(ttl time.Duration) *DetailTokens {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &DetailTokens{entries: make(map[string]tokenEntry), ttl: ttl, now: time.Now}
}

// Begin issues the next token for key. Tokens start at 1.
func (d *DetailTokens) Begin(key string) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	e := d.entries[key]
	e.seq++
	e.touchedAt = d.now()
	d.entries[key] = e
	return e.seq
}

// IsCurrent reports whether token is still the newest one issued for key.
// A key that expired or was never seen has no current token.
func (d *DetailTokens) IsCurrent(key string, token uint64) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	e, ok := d.entries[key]
	if !ok || d.now().Sub(e.touchedAt) >= d.ttl {
		return false
	}
	return e.seq == token
}

// Sweep forgets keys idle for longer than the TTL.
func (d *DetailTokens) Sweep() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	removed := 0
	for key, e := range d.entries {
		if now.Sub(e.touchedAt) >= d.ttl {
			delete(d.entries, key)
			removed++
		}
	}
	return removed
}

func (d *DetailTokens) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.entries)
}

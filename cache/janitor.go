package cache

import (
	"context"
	"time"
)

// Sweeper drops expired entries and reports how many it removed.
type Sweeper interface {
	Sweep() int
}

// RunJanitor sweeps every interval until ctx is done.
func RunJanitor(ctx context.Context, interval time.Duration, sweepers ...Sweeper) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, s := range sweepers {
				s.Sweep()
			}
		}
	}
}

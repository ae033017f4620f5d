package cart

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	BackendCookie = "cookie"
	BackendRedis  = "redis"
)

// Opener picks the storage backend for a request and loads the cart from it.
type Opener struct {
	Backend    string
	CookieName string
	TTL        time.Duration
	Secure     bool
	Redis      KV
	Logger     *zap.Logger
}

// Storage returns the backend for one browser. Redis is used only when a client is configured.
func (o Opener) Storage(w http.ResponseWriter, r *http.Request, browserID string) Storage {
	if o.Backend == BackendRedis && o.Redis != nil && browserID != "" {
		return NewRedisStorage(o.Redis, browserID, o.TTL)
	}
	return NewCookieStorage(w, r, o.CookieName, o.TTL, o.Secure)
}

// Open loads the cart of the browser behind r.
func (o Opener) Open(ctx context.Context, w http.ResponseWriter, r *http.Request, browserID string, observer Observer) *Store {
	return Load(ctx, o.Storage(w, r, browserID), observer, o.Logger)
}

package cart

import (
	"context"
	"sync"

	"github.com/go-faster/errors"
)

// ErrStorage reports a cart that could not be read from or written to its backend.
var ErrStorage = errors.New("cart storage failure")

// ErrNoCart means the backend holds no cart yet. Load treats it as an empty cart without logging.
var ErrNoCart = errors.New("no stored cart")

// Storage is the durable slot holding one serialized cart.
type Storage interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// MemoryStorage keeps the serialized cart in process memory.
type MemoryStorage struct {
	mu   sync.Mutex
	data []byte
}

func NewMemoryStorage(initial []byte) *MemoryStorage {
	return &MemoryStorage{data: append([]byte(nil), initial...)}
}

func (m *MemoryStorage) Load(context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, ErrNoCart
	}
	return append([]byte(nil), m.data...), nil
}

func (m *MemoryStorage) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
	return nil
}

// Bytes returns the last saved payload.
func (m *MemoryStorage) Bytes() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.data...)
}

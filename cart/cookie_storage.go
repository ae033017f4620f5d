package cart

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/klauspost/compress/gzip"
)

const (
	DefaultCookieName = "cart"
	// MaxCookieBytes bounds each cookie value below the common 4096-byte browser limit.
	MaxCookieBytes = 4000
	// MaxCookieChunks is how many cookies (cart, cart.1, ...) one cart may span.
	MaxCookieChunks = 4

	maxDecodedBytes = 1 << 20
)

// CookieStorage keeps the cart in browser cookies as gzipped, base64url-encoded JSON,
// split into chunks of at most MaxCookieBytes.
type CookieStorage struct {
	w      http.ResponseWriter
	r      *http.Request
	name   string
	ttl    time.Duration
	secure bool

	pending []byte
	saved   bool
	written int
}

// NewCookieStorage reads from r and writes Set-Cookie headers to w.
func NewCookieStorage(w http.ResponseWriter, r *http.Request, name string, ttl time.Duration, secure bool) *CookieStorage {
	if name == "" {
		name = DefaultCookieName
	}
	return &CookieStorage{w: w, r: r, name: name, ttl: ttl, secure: secure}
}

// Load returns the value saved earlier in this request, else the request cookies.
func (s *CookieStorage) Load(context.Context) ([]byte, error) {
	if s.saved {
		return append([]byte(nil), s.pending...), nil
	}
	if s.r == nil {
		return nil, ErrNoCart
	}
	first, err := s.r.Cookie(s.name)
	if errors.Is(err, http.ErrNoCookie) || (err == nil && first.Value == "") {
		return nil, ErrNoCart
	}
	if err != nil {
		return nil, errors.Wrap(ErrStorage, err.Error())
	}

	var value strings.Builder
	value.WriteString(first.Value)
	for i := 1; i < MaxCookieChunks; i++ {
		chunk, err := s.r.Cookie(chunkName(s.name, i))
		if err != nil || chunk.Value == "" {
			break
		}
		value.WriteString(chunk.Value)
	}
	return decodeCookieValue(value.String())
}

func (s *CookieStorage) Save(_ context.Context, data []byte) error {
	value, err := encodeCookieValue(data)
	if err != nil {
		return err
	}
	chunks := splitChunks(value, MaxCookieBytes)
	if len(chunks) > MaxCookieChunks {
		return errors.Wrapf(ErrStorage, "cart cookie would be %d bytes", len(value))
	}

	for i, chunk := range chunks {
		http.SetCookie(s.w, s.cookie(chunkName(s.name, i), chunk, false))
	}
	// expire chunks left over from a longer cart
	for i := len(chunks); i < MaxCookieChunks; i++ {
		if i < s.written || s.hasRequestCookie(chunkName(s.name, i)) {
			http.SetCookie(s.w, s.cookie(chunkName(s.name, i), "", true))
		}
	}

	s.written = len(chunks)
	s.pending = append([]byte(nil), data...)
	s.saved = true
	return nil
}

func (s *CookieStorage) cookie(name, value string, expire bool) *http.Cookie {
	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
	switch {
	case expire:
		cookie.MaxAge = -1
	case s.ttl > 0:
		cookie.MaxAge = int(s.ttl.Seconds())
		cookie.Expires = time.Now().Add(s.ttl)
	}
	return cookie
}

func (s *CookieStorage) hasRequestCookie(name string) bool {
	if s.r == nil {
		return false
	}
	_, err := s.r.Cookie(name)
	return err == nil
}

func chunkName(name string, i int) string {
	if i == 0 {
		return name
	}
	return name + "." + strconv.Itoa(i)
}

func splitChunks(value string, size int) []string {
	chunks := make([]string, 0, len(value)/size+1)
	for len(value) > size {
		chunks = append(chunks, value[:size])
		value = value[size:]
	}
	return append(chunks, value)
}

func encodeCookieValue(data []byte) (string, error) {
	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return "", errors.Wrap(ErrStorage, err.Error())
	}
	if _, err := zw.Write(data); err != nil {
		return "", errors.Wrap(ErrStorage, err.Error())
	}
	if err := zw.Close(); err != nil {
		return "", errors.Wrap(ErrStorage, err.Error())
	}
	return base64.RawURLEncoding.EncodeToString(buf.Bytes()), nil
}

func decodeCookieValue(value string) ([]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil, errors.Wrap(ErrStorage, "cart cookie is not base64url")
	}
	zr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrap(ErrStorage, "cart cookie is not gzip")
	}
	defer zr.Close()

	data, err := io.ReadAll(io.LimitReader(zr, maxDecodedBytes+1))
	if err != nil {
		return nil, errors.Wrap(ErrStorage, err.Error())
	}
	if len(data) > maxDecodedBytes {
		return nil, errors.Wrap(ErrStorage, "cart cookie is too large")
	}
	return data, nil
}

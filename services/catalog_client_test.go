package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/require"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
)

const upstreamProducts = `[
  {"id":1,"title":"Red Shirt","price":10,"description":"cotton","category":"clothing","image":"https://img/1.png","rating":{"rate":4.5,"count":12}},
  {"id":2,"title":"Blue Hat","price":5.25,"description":"wool","category":"accessories","image":"https://img/2.png","rating":{"rate":3,"count":4}}
]`

// newUpstream serves a minimal copy of the upstream catalog API.
func newUpstream(t *testing.T) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte(upstreamProducts))
	})
	mux.HandleFunc("/products/categories", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte(`["accessories","clothing","men's clothing"]`))
	})
	mux.HandleFunc("/products/category/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		switch strings.TrimPrefix(r.URL.Path, "/products/category/") {
		case "clothing":
			_, _ = w.Write([]byte(`[{"id":1,"title":"Red Shirt","price":10,"category":"clothing","rating":{"rate":4.5,"count":12}}]`))
		case "men's clothing":
			_, _ = w.Write([]byte(`[{"id":3,"title":"Jacket","price":55.99,"category":"men's clothing","rating":{"rate":2.1,"count":1}}]`))
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	})
	mux.HandleFunc("/products/1", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte(`{"id":1,"title":"Red Shirt","price":10,"description":"cotton","category":"clothing","image":"https://img/1.png","rating":{"rate":4.5,"count":12}}`))
	})
	mux.HandleFunc("/products/404", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/products/999", func(w http.ResponseWriter, r *http.Request) {
		// the public fake store answers unknown ids with 200 and an empty body
		atomic.AddInt32(&hits, 1)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestCatalogClientFetchAllProducts(t *testing.T) {
	t.Parallel()

	srv, hits := newUpstream(t)
	client := NewCatalogClient(srv.URL+"/", 0, nil)

	products, err := client.FetchAllProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	require.Equal(t, "Red Shirt", products[0].Title)
	require.Equal(t, "5.25", products[1].Price.String())
	require.Equal(t, 4.5, products[0].Rating.Rate)

	// no caching: each call is a fresh round trip
	_, err = client.FetchAllProducts(context.Background())
	require.NoError(t, err)
	require.Equal(t, int32(2), atomic.LoadInt32(hits))
}

func TestCatalogClientFetchCategoriesPrependsAll(t *testing.T) {
	t.Parallel()

	srv, _ := newUpstream(t)
	client := NewCatalogClient(srv.URL, 0, nil)

	categories, err := client.FetchCategories(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{models.AllCategories, "accessories", "clothing", "men's clothing"}, categories)
}

func TestCatalogClientFetchByCategoryEscapesPath(t *testing.T) {
	t.Parallel()

	srv, _ := newUpstream(t)
	client := NewCatalogClient(srv.URL, 0, nil)

	products, err := client.FetchByCategory(context.Background(), "men's clothing")
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, 3, products[0].ID)

	none, err := client.FetchByCategory(context.Background(), "garden")
	require.NoError(t, err)
	require.NotNil(t, none)
	require.Empty(t, none)
}

func TestCatalogClientFetchByID(t *testing.T) {
	t.Parallel()

	srv, hits := newUpstream(t)
	client := NewCatalogClient(srv.URL, 0, nil)
	ctx := context.Background()

	product, err := client.FetchByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "cotton", product.Description)

	_, err = client.FetchByID(ctx, 999)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = client.FetchByID(ctx, 404)
	require.ErrorIs(t, err, ErrNotFound)

	before := atomic.LoadInt32(hits)
	for _, id := range []int{0, -7} {
		_, err = client.FetchByID(ctx, id)
		require.ErrorIs(t, err, ErrInvalidID)
	}
	require.Equal(t, before, atomic.LoadInt32(hits), "invalid ids must not reach upstream")
}

func TestCatalogClientErrorTaxonomy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    error
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusBadGateway)
			},
			want: ErrNetwork,
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"products": [`))
			},
			want: ErrParse,
		},
		{
			name: "unexpected shape",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"id": 1}`))
			},
			want: ErrParse,
		},
		{
			name: "empty body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			want: ErrParse,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(tc.handler)
			t.Cleanup(srv.Close)

			_, err := NewCatalogClient(srv.URL, 0, nil).FetchAllProducts(context.Background())
			require.Error(t, err)
			require.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestCatalogClientTransportFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewCatalogClient(url, 0, nil).FetchCategories(context.Background())
	require.ErrorIs(t, err, ErrNetwork)
}

func TestCatalogClientBaseURL(t *testing.T) {
	t.Parallel()

	require.Equal(t, DefaultUpstreamBaseURL, NewCatalogClient("", 0, nil).BaseURL())
	require.Equal(t, DefaultUpstreamBaseURL, NewCatalogClient("  ", 0, nil).BaseURL())
	require.Equal(t, "http://catalog.local/v1", NewCatalogClient(" http://catalog.local/v1// ", 0, nil).BaseURL())
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestCatalogClientWithHTTPClient(t *testing.T) {
	t.Parallel()

	var seen string
	client := NewCatalogClient("http://catalog.local", 0, nil).WithHTTPClient(&http.Client{
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			seen = r.URL.String()
			return nil, errors.New("dial refused")
		}),
	})

	_, err := client.FetchAllProducts(context.Background())
	require.ErrorIs(t, err, ErrNetwork)
	require.Equal(t, "http://catalog.local/products", seen)

	require.Same(t, client, client.WithHTTPClient(nil), "nil keeps the current transport")
}

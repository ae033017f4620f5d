package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/go-faster/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/Modeva-Ecommerce/modeva-storefront/views"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeStore is an upstream catalog with 25 products in two categories.
type fakeStore struct {
	mu      sync.Mutex
	broken  bool
	holdFor map[string]hold
}

// hold parks requests for one path until release is closed; arrived fires per request.
type hold struct {
	arrived chan struct{}
	release chan struct{}
}

func productJSON(id int) string {
	category, title := "men's clothing", fmt.Sprintf("Cotton Shirt %d", id)
	if id%2 == 0 {
		category, title = "jewelery", fmt.Sprintf("Silver Ring %d", id)
	}
	return fmt.Sprintf(`{"id":%d,"title":%q,"price":%d.5,"description":"Item **%d**","category":%q,"image":"https://img.example/%d.png","rating":{"rate":3.5,"count":%d}}`,
		id, title, id, id, category, id, id*10)
}

func (f *fakeStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	broken := f.broken
	parked, isHeld := f.holdFor[r.URL.Path]
	f.mu.Unlock()

	if isHeld {
		parked.arrived <- struct{}{}
		<-parked.release
	}
	if broken {
		http.Error(w, "down", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.URL.Path == "/products":
		parts := make([]string, 0, 25)
		for i := 1; i <= 25; i++ {
			parts = append(parts, productJSON(i))
		}
		fmt.Fprint(w, "["+strings.Join(parts, ",")+"]")
	case r.URL.Path == "/products/categories":
		fmt.Fprint(w, `["jewelery","men's clothing"]`)
	case strings.HasPrefix(r.URL.Path, "/products/category/"):
		want := strings.TrimPrefix(r.URL.Path, "/products/category/")
		parts := []string{}
		for i := 1; i <= 25; i++ {
			if (want == "jewelery") == (i%2 == 0) && (want == "jewelery" || want == "men's clothing") {
				parts = append(parts, productJSON(i))
			}
		}
		fmt.Fprint(w, "["+strings.Join(parts, ",")+"]")
	default:
		var id int
		if _, err := fmt.Sscanf(r.URL.Path, "/products/%d", &id); err != nil || id > 25 {
			return // unknown ids answer an empty body like the public fake store
		}
		fmt.Fprint(w, productJSON(id))
	}
}

func (f *fakeStore) setBroken(b bool) {
	f.mu.Lock()
	f.broken = b
	f.mu.Unlock()
}

func (f *fakeStore) hold(path string) hold {
	f.mu.Lock()
	defer f.mu.Unlock()
	h := hold{arrived: make(chan struct{}, 1), release: make(chan struct{})}
	if f.holdFor == nil {
		f.holdFor = map[string]hold{}
	}
	f.holdFor[path] = h
	return h
}

type harness struct {
	t        *testing.T
	upstream *fakeStore
	router   *gin.Engine

	mu      sync.Mutex
	cookies map[string]*http.Cookie
}

func newHarness(t *testing.T, mutate ...func(*Deps)) *harness {
	t.Helper()

	upstream := &fakeStore{}
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	cfg := config.DefaultAppConfig()
	cfg.UpstreamBaseURL = srv.URL

	renderer, err := views.NewRenderer()
	require.NoError(t, err)

	deps := Deps{
		Config:   cfg,
		Catalog:  services.NewCatalogClient(cfg.UpstreamBaseURL, time.Second, nil),
		Renderer: renderer,
	}
	for _, m := range mutate {
		m(&deps)
	}
	return &harness{t: t, upstream: upstream, router: NewRouter(deps), cookies: map[string]*http.Cookie{}}
}

// do sends a request carrying every cookie the harness browser holds.
func (h *harness) do(method, target string, body any, headers ...string) *httptest.ResponseRecorder {
	h.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(h.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	h.mu.Lock()
	for _, c := range h.cookies {
		req.AddCookie(c)
	}
	h.mu.Unlock()

	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)

	h.mu.Lock()
	for _, c := range w.Result().Cookies() {
		h.cookies[c.Name] = c
	}
	h.mu.Unlock()
	return w
}

func (h *harness) doc(w *httptest.ResponseRecorder) *goquery.Document {
	h.t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(w.Body.String()))
	require.NoError(h.t, err)
	return doc
}

type actionResponse struct {
	Kind  string              `json:"kind"`
	HTML  string              `json:"html"`
	Cart  *models.CartSummary `json:"cart"`
	Badge *views.Badge        `json:"badge"`
	Toast string              `json:"toast"`
	Token uint64              `json:"token"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestIndexPageRendersFirstPage(t *testing.T) {
	h := newHarness(t)

	for _, path := range []string{"/", "/Products", "/Products/Index"} {
		w := h.do(http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code, path)
		doc := h.doc(w)
		require.Equal(t, 10, doc.Find("#productsGrid .product-card").Length(), path)
		require.Equal(t, "all", doc.Find("#categoryFilter option").First().AttrOr("value", ""))
		require.Equal(t, 3, doc.Find("#categoryFilter option").Length())
		require.Equal(t, "1", doc.Find("#pagination li.active a").Text())
	}
	require.Contains(t, h.cookies, middleware.BrowserCookieName)
}

func TestIndexPageFiltersFromQuery(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodGet, "/?category=jewelery&search=ring+1&page=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	doc := h.doc(w)

	// even ids are jewelery; "ring 1" matches 10, 12, 14, 16, 18
	cards := doc.Find("#productsGrid .product-card")
	require.Equal(t, 5, cards.Length())
	cards.Each(func(_ int, s *goquery.Selection) {
		assert.Equal(t, "Jewelery", strings.TrimSpace(s.Find(".category-badge").Text()))
		assert.Equal(t, "Ring 1", s.Find(".highlight").Text())
	})
	require.Equal(t, "jewelery", doc.Find("#categoryFilter option[selected]").AttrOr("value", ""))
	require.Equal(t, 0, doc.Find("#pagination li").Length())
}

func TestIndexPageUpstreamDown(t *testing.T) {
	h := newHarness(t)
	h.upstream.setBroken(true)

	w := h.do(http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	doc := h.doc(w)
	require.Equal(t, views.LoadErrorMessage, strings.TrimSpace(doc.Find("#productsGrid .alert-danger").Text()))
	require.Equal(t, 1, doc.Find("#categoryFilter option").Length())
}

func TestGridFragmentClampsPage(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodGet, "/Products/Grid?page=99", nil)
	require.Equal(t, http.StatusOK, w.Code)
	doc := h.doc(w)
	require.Equal(t, "3", doc.Find("#gridFragment").AttrOr("data-page", ""))
	require.Equal(t, 5, doc.Find(".product-card").Length())
	require.True(t, doc.Find("#pagination li").Last().HasClass("disabled"), "Next disabled on last page")
}

func TestGetProducts(t *testing.T) {
	h := newHarness(t)

	res := decode[models.ProductListResponse](t, h.do(http.MethodGet, "/Products/GetProducts?page=2&pageSize=10", nil))
	require.Equal(t, 25, res.TotalCount)
	require.Equal(t, 2, res.CurrentPage)
	require.Equal(t, 10, res.PageSize)
	require.Len(t, res.Products, 10)
	require.Equal(t, 11, res.Products[0].ID)
	require.Equal(t, []string{"all", "jewelery", "men's clothing"}, res.Categories)

	res = decode[models.ProductListResponse](t, h.do(http.MethodGet, "/Products/GetProducts?category=men%27s+clothing&search=SHIRT+2", nil))
	require.Equal(t, 3, res.TotalCount) // 21, 23, 25

	res = decode[models.ProductListResponse](t, h.do(http.MethodGet, "/Products/GetProducts?page=9", nil))
	require.Empty(t, res.Products)
	require.Equal(t, 25, res.TotalCount)

	h.upstream.setBroken(true)
	w := h.do(http.MethodGet, "/Products/GetProducts?page=3&pageSize=5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	res = decode[models.ProductListResponse](t, w)
	require.Empty(t, res.Products)
	require.Zero(t, res.TotalCount)
	require.Equal(t, 3, res.CurrentPage)
	require.Equal(t, 5, res.PageSize)
	require.Equal(t, []string{"all"}, res.Categories)
}

func TestListingsWithOutOfRangePages(t *testing.T) {
	h := newHarness(t)

	for _, page := range []string{"1000000000000000000", "99999999999999999999"} {
		w := h.do(http.MethodGet, "/Products/GetProducts?page="+page, nil)
		require.Equal(t, http.StatusOK, w.Code, page)
		res := decode[models.ProductListResponse](t, w)
		require.NotNil(t, res.Products, page)
		require.Empty(t, res.Products, page)
		require.Equal(t, models.MaxPage, res.CurrentPage, page)
		require.Equal(t, 25, res.TotalCount, page)

		w = h.do(http.MethodGet, "/api/ProductsApi?page="+page, nil)
		require.Equal(t, http.StatusOK, w.Code, page)
		body := decode[models.ApiResponse](t, w)
		require.Equal(t, []any{}, body.Data, page)
		require.Equal(t, models.MaxPage, body.Meta.Page, page)
		require.Equal(t, 3, body.Meta.TotalPages, page)
	}

	// negative pages normalize to the first page
	w := h.do(http.MethodGet, "/Products/GetProducts?page=-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[models.ProductListResponse](t, w)
	require.Equal(t, 1, res.CurrentPage)
	require.Len(t, res.Products, 10)
	require.Equal(t, 1, res.Products[0].ID)

	w = h.do(http.MethodGet, "/api/ProductsApi?page=-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[models.ApiResponse](t, w)
	require.Equal(t, 1, body.Meta.Page)
	require.Len(t, body.Data, 10)

	// the rendered grid clamps to the last page instead
	doc := h.doc(h.do(http.MethodGet, "/Products/Grid?page=1000000000000000000", nil))
	require.Equal(t, "3", doc.Find("#gridFragment").AttrOr("data-page", ""))
	require.Equal(t, 5, doc.Find(".product-card").Length())
}

func TestGetProductStatuses(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodGet, "/Products/GetProduct?id=3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Cotton Shirt 3", decode[models.Product](t, w).Title)

	for _, id := range []string{"0", "-1", "abc", ""} {
		w = h.do(http.MethodGet, "/Products/GetProduct?id="+id, nil)
		require.Equal(t, http.StatusBadRequest, w.Code, id)
		require.True(t, decode[models.ApiResponse](t, w).Error)
	}

	w = h.do(http.MethodGet, "/Products/GetProduct?id=999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	h.upstream.setBroken(true)
	w = h.do(http.MethodGet, "/Products/GetProduct?id=3", nil)
	require.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetCategories(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, []string{"all", "jewelery", "men's clothing"}, decode[[]string](t, h.do(http.MethodGet, "/Products/GetCategories", nil)))

	h.upstream.setBroken(true)
	require.Equal(t, []string{"all"}, decode[[]string](t, h.do(http.MethodGet, "/Products/GetCategories", nil)))
}

func TestDetailOverlay(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodGet, "/Products/Detail?id=4", nil)
	require.Equal(t, http.StatusOK, w.Code)
	doc := h.doc(w)
	require.Equal(t, "Silver Ring 4", doc.Find("#productModalTitle").Text())
	require.Equal(t, "JEWELERY", doc.Find("#productModalCategory").Text())
	require.Equal(t, "$4.5", doc.Find("#productModalPrice").Text())
	require.Equal(t, "4", doc.Find("#productModalDescription strong").Text())
	require.Contains(t, doc.Find("#productModalRating").Text(), "(40 reviews)")
	require.Equal(t, "4", doc.Find("#addToCartBtn").AttrOr("data-product-id", ""))
	require.NotEmpty(t, w.Header().Get("X-Detail-Token"))

	require.Equal(t, http.StatusBadRequest, h.do(http.MethodGet, "/Products/Detail?id=x", nil).Code)
	w = h.do(http.MethodGet, "/Products/Detail?id=404", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Error loading product details. Please try again.", w.Body.String())
}

func TestDetailOverlaySupersededResponse(t *testing.T) {
	h := newHarness(t)
	h.do(http.MethodGet, "/Products/GetCategories", nil)
	require.Contains(t, h.cookies, middleware.BrowserCookieName)

	parked := h.upstream.hold("/products/1")

	slow := make(chan *httptest.ResponseRecorder, 1)
	go func() { slow <- h.do(http.MethodGet, "/Products/Detail?id=1", nil) }()

	select {
	case <-parked.arrived:
	case <-time.After(time.Second):
		t.Fatal("slow detail request never reached upstream")
	}

	newer := h.do(http.MethodGet, "/Products/Detail?id=2", nil)
	require.Equal(t, http.StatusOK, newer.Code)
	require.Equal(t, "2", newer.Header().Get("X-Detail-Token"))

	close(parked.release)
	old := <-slow
	require.Equal(t, http.StatusConflict, old.Code)
	require.Equal(t, "superseded", old.Body.String())
	require.Equal(t, "1", old.Header().Get("X-Detail-Token"))
}

func TestApiEnvelopeAndRateLimit(t *testing.T) {
	h := newHarness(t, func(d *Deps) { d.Config.RateLimit = 3 })

	w := h.do(http.MethodGet, "/api/ProductsApi?page=3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[models.ApiResponse](t, w)
	require.NotNil(t, body.Meta)
	require.Equal(t, 3, body.Meta.Page)
	require.Equal(t, 3, body.Meta.TotalPages)
	require.Equal(t, 25, body.Meta.Total)
	require.Equal(t, 2, body.Rate.Remaining)
	require.Equal(t, "GET /api/ProductsApi", body.RequestedEntity)

	w = h.do(http.MethodGet, "/api/ProductsApi/7", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = h.do(http.MethodGet, "/api/ProductsApi/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// the limit is per route: the list route has one request left
	require.Equal(t, http.StatusOK, h.do(http.MethodGet, "/api/ProductsApi", nil).Code)
	require.Equal(t, http.StatusOK, h.do(http.MethodGet, "/api/ProductsApi", nil).Code)
	require.Equal(t, http.StatusTooManyRequests, h.do(http.MethodGet, "/api/ProductsApi", nil).Code)
}

func TestCartFlowThroughActions(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodPost, "/Storefront/Actions", map[string]any{"kind": "add-to-cart", "productId": 1})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res := decode[actionResponse](t, w)
	require.Equal(t, "add-to-cart", res.Kind)
	require.Equal(t, "Added to cart!", res.Toast)
	require.Equal(t, 1, res.Badge.Count)
	require.Contains(t, h.cookies, "cart")

	res = decode[actionResponse](t, h.do(http.MethodPost, "/Storefront/Actions", map[string]any{"kind": "add-to-cart", "productId": 1}))
	require.Equal(t, 2, res.Cart.TotalItems)
	require.Len(t, res.Cart.Items, 1)
	require.Equal(t, "3", res.Cart.TotalAmount.String()) // 2 × 1.5

	res = decode[actionResponse](t, h.do(http.MethodPost, "/Storefront/Actions", map[string]any{"kind": "add-to-cart", "productId": 2}))
	require.Equal(t, 3, res.Cart.TotalItems)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.HTML))
	require.NoError(t, err)
	require.Equal(t, 2, doc.Find(".cart-item").Length())
	require.Equal(t, "$5.50", doc.Find("#cartTotal").Text())

	res = decode[actionResponse](t, h.do(http.MethodPost, "/Storefront/Actions", map[string]any{"kind": "update-quantity", "productId": 2, "quantity": 4}))
	require.Equal(t, 6, res.Cart.TotalItems)
	require.Empty(t, res.Toast)

	res = decode[actionResponse](t, h.do(http.MethodPost, "/Storefront/Actions", map[string]any{"kind": "update-quantity", "productId": 1, "quantity": 0}))
	require.Equal(t, 4, res.Cart.TotalItems)
	require.Len(t, res.Cart.Items, 1)

	// the page reflects the stored cart
	page := h.doc(h.do(http.MethodGet, "/", nil))
	require.Equal(t, "4", page.Find("#cartCount").Text())

	summary := decode[models.CartSummary](t, h.do(http.MethodGet, "/Cart", nil, "Accept", "application/json"))
	require.Equal(t, 4, summary.TotalItems)

	cartPage := h.doc(h.do(http.MethodGet, "/Cart", nil))
	require.Equal(t, 1, cartPage.Find(".cart-item").Length())

	w = h.do(http.MethodPost, "/Cart/Checkout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Checkout functionality would be implemented here. Total: $10.00", decode[models.ApiResponse](t, w).Message)

	res = decode[actionResponse](t, h.do(http.MethodPost, "/Storefront/Actions", map[string]any{"kind": "remove", "productId": 2}))
	require.Zero(t, res.Cart.TotalItems)
	require.True(t, res.Badge.Hidden)

	w = h.do(http.MethodPost, "/Cart/Checkout", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Your cart is empty!", decode[models.ApiResponse](t, w).Message)
}

func TestCartCookieHoldsEveryProduct(t *testing.T) {
	h := newHarness(t)

	for id := 1; id <= 25; id++ {
		w := h.do(http.MethodPost, "/Storefront/Actions", map[string]any{"kind": "add-to-cart", "productId": id})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Equal(t, "Added to cart!", decode[actionResponse](t, w).Toast)
	}
	for name, c := range h.cookies {
		require.LessOrEqual(t, len(c.Value), 4000, name)
	}

	summary := decode[models.CartSummary](t, h.do(http.MethodGet, "/Cart", nil, "Accept", "application/json"))
	require.Equal(t, 25, summary.TotalItems)
	require.Len(t, summary.Items, 25)
	require.Equal(t, "Silver Ring 24", summary.Items[23].Product.Title)
}

// unwritableKV reads as empty and refuses every write.
type unwritableKV struct{}

func (unwritableKV) Get(context.Context, string) *redis.StringCmd {
	return redis.NewStringResult("", redis.Nil)
}

func (unwritableKV) Set(context.Context, string, interface{}, time.Duration) *redis.StatusCmd {
	return redis.NewStatusResult("", errors.New("READONLY You can't write against a read only replica"))
}

func TestCartSaveFailureIsReported(t *testing.T) {
	h := newHarness(t, func(d *Deps) {
		d.Config.CartBackend = "redis"
		d.Redis = unwritableKV{}
	})

	w := h.do(http.MethodPost, "/Storefront/Actions", map[string]any{"kind": "add-to-cart", "productId": 1})
	require.Equal(t, http.StatusInsufficientStorage, w.Code)
	body := decode[models.ApiResponse](t, w)
	require.True(t, body.Error)
	require.Equal(t, "Could not save your cart. Please try again.", body.Message)
	require.NotContains(t, w.Body.String(), "Added to cart!")

	summary := decode[models.CartSummary](t, h.do(http.MethodGet, "/Cart", nil, "Accept", "application/json"))
	require.Zero(t, summary.TotalItems)
}

func TestCorruptCartCookieStartsEmpty(t *testing.T) {
	h := newHarness(t)
	h.cookies["cart"] = &http.Cookie{Name: "cart", Value: "bm90IGpzb24"} // "not json"

	summary := decode[models.CartSummary](t, h.do(http.MethodGet, "/Cart", nil, "Accept", "application/json"))
	require.Zero(t, summary.TotalItems)
	require.Empty(t, summary.Items)
}

func TestActionDispatchErrors(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodPost, "/Storefront/Actions", map[string]any{"kind": "explode"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.True(t, decode[models.ApiResponse](t, w).Error)

	w = h.do(http.MethodPost, "/Storefront/Actions", map[string]any{"productId": 1})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(http.MethodPost, "/Storefront/Actions", map[string]any{"kind": "add-to-cart", "productId": 999})
	require.Equal(t, http.StatusNotFound, w.Code)

	w = h.do(http.MethodPost, "/Storefront/Actions", map[string]any{"kind": "view", "productId": 0})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Error loading product details. Please try again.", decode[models.ApiResponse](t, w).Message)
}

func TestActionViewAndPageChange(t *testing.T) {
	h := newHarness(t)

	res := decode[actionResponse](t, h.do(http.MethodPost, "/Storefront/Actions", map[string]any{"kind": "view", "productId": 5}))
	require.Contains(t, res.HTML, "Cotton Shirt 5")
	require.NotZero(t, res.Token)

	res = decode[actionResponse](t, h.do(http.MethodPost, "/Storefront/Actions", map[string]any{"kind": "page-change", "page": 2, "category": "all", "search": ""}))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.HTML))
	require.NoError(t, err)
	require.Equal(t, 10, doc.Find(".product-card").Length())
	require.Equal(t, "11", doc.Find(".product-card").First().AttrOr("data-product-id", ""))
	require.Equal(t, "2", doc.Find("#pagination li.active a").Text())
}

func TestInfrastructureRoutes(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = h.do(http.MethodGet, "/static/js/storefront.js", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "/Storefront/Actions")

	w = h.do(http.MethodGet, "/swagger/doc.json", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "/Products/GetProducts")

	require.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

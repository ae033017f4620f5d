package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
)

const (
	DefaultUpstreamBaseURL = "https://fakestoreapi.com"
	defaultUpstreamTimeout = 10 * time.Second
	maxUpstreamBody        = 8 << 20
)

// CatalogClient fetches products and categories from the upstream catalog API.
// There are no retries and no caching: every call is a fresh round trip.
type CatalogClient struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewCatalogClient constructs a client for baseURL. An empty baseURL targets the public fake store.
func NewCatalogClient(baseURL string, timeout time.Duration, logger *zap.Logger) *CatalogClient {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultUpstreamBaseURL
	}
	if timeout <= 0 {
		timeout = defaultUpstreamTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// WithHTTPClient swaps the underlying transport, mostly for tests.
func (c *CatalogClient) WithHTTPClient(client *http.Client) *CatalogClient {
	if client != nil {
		c.http = client
	}
	return c
}

// BaseURL returns the upstream root the client talks to.
func (c *CatalogClient) BaseURL() string {
	return c.baseURL
}

// FetchAllProducts returns the full upstream product list.
func (c *CatalogClient) FetchAllProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.getJSON(ctx, &products, "products"); err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// FetchByCategory returns the upstream product list of one category.
func (c *CatalogClient) FetchByCategory(ctx context.Context, category string) ([]models.Product, error) {
	var products []models.Product
	if err := c.getJSON(ctx, &products, "products", "category", url.PathEscape(category)); err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// FetchCategories returns the upstream category names with the "all" sentinel prepended.
func (c *CatalogClient) FetchCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.getJSON(ctx, &categories, "products", "categories"); err != nil {
		return nil, err
	}
	return append([]string{models.AllCategories}, categories...), nil
}

// FetchByID returns a single product. The id must be a positive integer.
func (c *CatalogClient) FetchByID(ctx context.Context, id int) (models.Product, error) {
	if id < 1 {
		return models.Product{}, errors.Wrapf(ErrInvalidID, "id %d", id)
	}

	var product *models.Product
	err := c.getJSON(ctx, &product, "products", strconv.Itoa(id))
	switch {
	case errors.Is(err, errEmptyBody):
		return models.Product{}, errors.Wrapf(ErrNotFound, "id %d", id)
	case err != nil:
		return models.Product{}, err
	case product == nil || product.ID == 0:
		return models.Product{}, errors.Wrapf(ErrNotFound, "id %d", id)
	}
	return *product, nil
}

// errEmptyBody is an ErrParse for list endpoints; FetchByID reads it as not found.
var errEmptyBody = errors.Wrap(ErrParse, "empty upstream body")

// getJSON issues GET {baseURL}/{segments...} and decodes the body into dst.
// Segments are joined as already-escaped path elements.
func (c *CatalogClient) getJSON(ctx context.Context, dst any, segments ...string) error {
	endpoint, err := url.JoinPath(c.baseURL, segments...)
	if err != nil {
		return errors.Wrap(ErrNetwork, err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(ErrNetwork, err.Error())
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("upstream request failed",
			zap.String("url", endpoint),
			zap.Error(err),
		)
		return errors.Wrap(ErrNetwork, err.Error())
	}
	defer resp.Body.Close()

	c.logger.Debug("upstream request",
		zap.String("url", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode == http.StatusNotFound {
		return errors.Wrap(ErrNotFound, endpoint)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Wrap(ErrNetwork, fmt.Sprintf("status %d: %s", resp.StatusCode, drainError(resp.Body)))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamBody))
	if err != nil {
		return errors.Wrap(ErrNetwork, err.Error())
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return errEmptyBody
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return errors.Wrap(ErrParse, err.Error())
	}
	return nil
}

func drainError(r io.Reader) string {
	if r == nil {
		return ""
	}
	b, _ := io.ReadAll(io.LimitReader(r, 256))
	return strings.TrimSpace(string(b))
}

package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Upstream and browser payloads carry prices as bare JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// ═══════════════════════════════════════════════════════════
// Catalog Models (mirrors the upstream catalog schema 1:1)
// ═══════════════════════════════════════════════════════════

// Rating is the upstream aggregate review score for a product.
type Rating struct {
	Rate  float64 `json:"rate" example:"3.9"`
	Count int     `json:"count" example:"120"`
}

// Product is a single catalog entry as served by the upstream API.
// It is immutable once fetched.
type Product struct {
	ID          int             `json:"id" example:"1"`
	Title       string          `json:"title" example:"Fjallraven - Foldsack No. 1 Backpack"`
	Price       decimal.Decimal `json:"price" swaggertype:"number" example:"109.95"`
	Description string          `json:"description"`
	Category    string          `json:"category" example:"men's clothing"`
	Image       string          `json:"image" example:"https://fakestoreapi.com/img/81fPKd-2AYL._AC_SL1500_.jpg"`
	Rating      Rating          `json:"rating"`
}

// Snapshot copies the fields a cart line keeps about a product.
func (p Product) Snapshot() ProductSnapshot {
	return ProductSnapshot{
		ID:       p.ID,
		Title:    p.Title,
		Price:    p.Price,
		Category: p.Category,
		Image:    p.Image,
	}
}

// ProductSnapshot is the copy of a product stored inside a cart line.
type ProductSnapshot struct {
	ID       int             `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price" swaggertype:"number"`
	Category string          `json:"category,omitempty"`
	Image    string          `json:"image,omitempty"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

// ProductListResponse is the payload of GET /Products/GetProducts.
type ProductListResponse struct {
	Products    []Product `json:"products"`
	TotalCount  int       `json:"totalCount" example:"20"`
	PageSize    int       `json:"pageSize" example:"10"`
	CurrentPage int       `json:"currentPage" example:"1"`
	Categories  []string  `json:"categories"`
}

// EmptyProductList is the degraded listing returned when the upstream fails.
func EmptyProductList(page, pageSize int, categories []string) ProductListResponse {
	if categories == nil {
		categories = []string{AllCategories}
	}
	return ProductListResponse{
		Products:    []Product{},
		TotalCount:  0,
		PageSize:    pageSize,
		CurrentPage: page,
		Categories:  categories,
	}
}

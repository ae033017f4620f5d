package models

import (
	"net/url"
	"strconv"
	"strings"
)

// AllCategories is the sentinel category meaning "no category filter".
const AllCategories = "all"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	// MaxPage bounds requested page numbers; no catalog comes close to it.
	MaxPage = 1_000_000
)

// FilterState is the transient category/search/page selection of one request.
type FilterState struct {
	Category string `form:"category" json:"category"`
	Search   string `form:"search" json:"search"`
	Page     int    `form:"page" json:"page"`
	PageSize int    `form:"pageSize" json:"pageSize"`
}

// Normalize applies defaults: "all" category, page within [1, MaxPage], pageSize within [1, MaxPageSize].
func (f FilterState) Normalize(defaultPageSize int) FilterState {
	if defaultPageSize < 1 || defaultPageSize > MaxPageSize {
		defaultPageSize = DefaultPageSize
	}
	f.Category = strings.TrimSpace(f.Category)
	if f.Category == "" {
		f.Category = AllCategories
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Page > MaxPage {
		f.Page = MaxPage
	}
	if f.PageSize < 1 || f.PageSize > MaxPageSize {
		f.PageSize = defaultPageSize
	}
	return f
}

// IsAllCategories reports whether the category selection applies no filter.
func (f FilterState) IsAllCategories() bool {
	return f.Category == "" || f.Category == AllCategories
}

// Query encodes the state as a raw query string, omitting defaults.
func (f FilterState) Query(page int) string {
	parts := make([]string, 0, 3)
	if !f.IsAllCategories() {
		parts = append(parts, "category="+url.QueryEscape(f.Category))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		parts = append(parts, "search="+url.QueryEscape(s))
	}
	if page > 1 {
		parts = append(parts, "page="+strconv.Itoa(page))
	}
	return strings.Join(parts, "&")
}

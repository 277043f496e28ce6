// Package pagination provides query-parameter parsing and in-memory
// windowing for list endpoints. Upstream responses for match lists are
// cached whole; the page window is applied after the cache.
package pagination

import (
	"net/url"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 50
)

// Params is a normalized page request. Page is always >= 1 and Limit is
// clamped to [1, MaxLimit].
type Params struct {
	Page  int
	Limit int
}

// Meta describes the window that was served, relative to the full list.
type Meta struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"perPage"`
	TotalPages int  `json:"totalPages"`
	TotalItems int  `json:"totalItems,omitempty"`
	HasNext    bool `json:"hasNext"`
}

// FromQuery normalizes the page and limit query parameters. Missing,
// malformed or out-of-range values fall back to the defaults rather
// than failing the request.
func FromQuery(query url.Values) Params {
	page := atoiOr(query.Get("page"), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}

	limit := atoiOr(query.Get("limit"), DefaultLimit)
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Params{Page: page, Limit: limit}
}

func atoiOr(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

// Window slices items down to the requested page. Pages past the end
// yield an empty non-nil slice; TotalPages is at least 1 so callers can
// always report a coherent page count.
func Window[T any](items []T, p Params) ([]T, Meta) {
	total := len(items)

	totalPages := (total + p.Limit - 1) / p.Limit
	if totalPages < 1 {
		totalPages = 1
	}

	meta := Meta{
		Page:       p.Page,
		PerPage:    p.Limit,
		TotalPages: totalPages,
		TotalItems: total,
		HasNext:    p.Page < totalPages,
	}

	start := (p.Page - 1) * p.Limit
	if start >= total {
		return []T{}, meta
	}
	end := start + p.Limit
	if end > total {
		end = total
	}
	return items[start:end], meta
}

// Package pagination provides the page-of-results envelope shared by
// every list endpoint.
package pagination

import "errors"

var ErrInvalidPageSize = errors.New("page size must be positive")

const DefaultSize = 20

// PageRequest describes the slice of results a caller wants.
// Page is zero-based. Sort is a repository-interpreted sort key; the
// empty string means the repository default.
type PageRequest struct {
	Page int
	Size int
	Sort string
}

// NewPageRequest builds a PageRequest. A negative page is clamped to 0;
// a non-positive size is a contract violation, not a default.
func NewPageRequest(page, size int, sort string) (PageRequest, error) {
	if size <= 0 {
		return PageRequest{}, ErrInvalidPageSize
	}
	if page < 0 {
		page = 0
	}
	return PageRequest{Page: page, Size: size, Sort: sort}, nil
}

// Offset is the row offset for the requested page.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page is a bounded slice of a larger ordered result set plus its
// total-count metadata. Requesting a page past the end yields empty
// Items with the totals intact.
type Page[T any] struct {
	Items         []T   `json:"items"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
}

// NewPage wraps items in a page envelope for the given request.
func NewPage[T any](items []T, req PageRequest, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}

	totalPages := int(total) / req.Size
	if int(total)%req.Size != 0 {
		totalPages++
	}

	return Page[T]{
		Items:         items,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}

// Map converts a page of one item type into another, preserving the
// pagination metadata.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	items := make([]U, len(p.Items))
	for i, item := range p.Items {
		items[i] = fn(item)
	}
	return Page[U]{
		Items:         items,
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
	}
}

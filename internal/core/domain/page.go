package domain

import (
	"fmt"
	"math"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 1000
)

// PageRequest addresses one zero-based page of an ordered result set.
type PageRequest struct {
	Page int
	Size int
	Sort Sort
}

func NewPageRequest(page, size int, sort Sort) (PageRequest, error) {
	if page < 0 {
		return PageRequest{}, NewValidationError("page", "page must be zero or positive")
	}
	if size < 1 || size > MaxPageSize {
		return PageRequest{}, NewValidationError("count", fmt.Sprintf("count must be between 1 and %d", MaxPageSize))
	}
	if page > math.MaxInt/size {
		return PageRequest{}, NewValidationError("page", fmt.Sprintf("page must be at most %d for count %d", math.MaxInt/size, size))
	}
	if len(sort) == 0 {
		sort = DefaultSort
	}
	return PageRequest{Page: page, Size: size, Sort: sort}, nil
}

// Offset does not overflow for a request built by NewPageRequest.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

package pagination

import "fmt"

// Options holds the paging defaults shared by every list operation.
type Options struct {
	DefaultPage     int
	DefaultPageSize int
	MaxPageSize     int
}

func DefaultOptions() Options {
	return Options{
		DefaultPage:     1,
		DefaultPageSize: 20,
		MaxPageSize:     100,
	}
}

func (o Options) Validate() error {
	if o.DefaultPage < 1 {
		return fmt.Errorf("default page must be >= 1")
	}
	if o.DefaultPageSize < 1 {
		return fmt.Errorf("default page size must be >= 1")
	}
	if o.MaxPageSize < 1 {
		return fmt.Errorf("max page size must be >= 1")
	}
	if o.DefaultPageSize > o.MaxPageSize {
		return fmt.Errorf("default page size %d exceeds max page size %d", o.DefaultPageSize, o.MaxPageSize)
	}
	return nil
}

// Normalize never fails. A page below the default resets the page size as well,
// even when the caller asked for a valid one.
func Normalize(page, pageSize int, opts Options) (int, int) {
	if page < opts.DefaultPage {
		page = opts.DefaultPage
		pageSize = opts.DefaultPageSize
	} else if pageSize < 1 {
		pageSize = opts.DefaultPageSize
	}

	if pageSize > opts.MaxPageSize {
		pageSize = opts.MaxPageSize
	}

	return page, pageSize
}

// Page is the envelope returned by list operations.
type Page[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
}

func NewPage[T any](items []T, totalCount, page, pageSize int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:      items,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
	}
}

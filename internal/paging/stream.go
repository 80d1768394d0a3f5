// Package paging provides a lazy, single-use sequence over page-numbered API results.
package paging

import (
	"context"
	"errors"
)

// DefaultPageSize is the page size requested from GitHub
const DefaultPageSize = 100

// ErrStreamConsumed is returned when a stream is iterated after it was drained
var ErrStreamConsumed = errors.New("stream already consumed")

// PageFunc fetches one page (1-based) of results
type PageFunc[T any] func(ctx context.Context, page int) ([]T, error)

// Stream walks page-numbered results one item at a time.
// A page is only requested once the previous one is used up, and only if the
// previous page was full. A stream cannot be restarted.
//
//	s := client.SearchIssues(ctx, query)
//	for s.Next() {
//	    item := s.Item()
//	}
//	if err := s.Err(); err != nil {
//	    ...
//	}
type Stream[T any] struct {
	buf      []T
	ctx      context.Context
	done     bool
	err      error
	fetch    PageFunc[T]
	idx      int
	item     T
	lastPage bool
	page     int
	pageSize int
}

// New creates a stream that fetches pages of pageSize items with fetch
func New[T any](ctx context.Context, pageSize int, fetch PageFunc[T]) *Stream[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Stream[T]{
		ctx:      ctx,
		fetch:    fetch,
		page:     1,
		pageSize: pageSize,
	}
}

// Next advances to the next item, fetching a new page when needed.
// It returns false at the end of results or on error.
func (s *Stream[T]) Next() bool {
	if s.done {
		if s.err == nil {
			s.err = ErrStreamConsumed
		}
		return false
	}

	for s.idx >= len(s.buf) {
		if s.lastPage {
			s.finish(nil)
			return false
		}
		if !s.fetchPage() {
			return false
		}
	}

	s.item = s.buf[s.idx]
	s.idx++
	return true
}

// Item returns the current item
func (s *Stream[T]) Item() T {
	return s.item
}

// Err returns the first error hit while fetching, or ErrStreamConsumed
// if Next was called again after the stream ended
func (s *Stream[T]) Err() error {
	return s.err
}

func (s *Stream[T]) fetchPage() bool {
	items, err := s.fetch(s.ctx, s.page)
	if err != nil {
		s.finish(err)
		return false
	}

	// A short page means there is nothing more to fetch
	if len(items) < s.pageSize {
		s.lastPage = true
	}
	s.buf = items
	s.idx = 0
	s.page++
	return true
}

func (s *Stream[T]) finish(err error) {
	s.done = true
	s.err = err
	s.buf = nil
	var zero T
	s.item = zero
}

// MapPages converts every item of the pages fetch returns with fn.
// Page lengths are kept, so a short source page still ends the stream.
func MapPages[T, U any](fetch PageFunc[T], fn func(T) (U, error)) PageFunc[U] {
	return func(ctx context.Context, page int) ([]U, error) {
		items, err := fetch(ctx, page)
		if err != nil {
			return nil, err
		}

		out := make([]U, len(items))
		for i, item := range items {
			if out[i], err = fn(item); err != nil {
				return nil, err
			}
		}
		return out, nil
	}
}

// Collect drains a stream into a slice
func Collect[T any](s *Stream[T]) ([]T, error) {
	var items []T
	for s.Next() {
		items = append(items, s.Item())
	}
	if err := s.Err(); err != nil {
		return items, err
	}
	return items, nil
}

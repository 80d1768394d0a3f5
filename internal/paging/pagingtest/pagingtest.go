// Package pagingtest provides canned streams for fakes of the ports that return paging.Stream.
package pagingtest

import (
	"context"

	"github.com/renato0307/pickcheck/internal/paging"
)

// FromSlice returns a stream over items, served as a single page
func FromSlice[T any](items []T) *paging.Stream[T] {
	return paging.New(context.Background(), len(items)+1, func(_ context.Context, page int) ([]T, error) {
		if page > 1 {
			return nil, nil
		}
		return items, nil
	})
}

// Failed returns a stream whose first page fails with err
func Failed[T any](err error) *paging.Stream[T] {
	return paging.New(context.Background(), paging.DefaultPageSize, func(context.Context, int) ([]T, error) {
		return nil, err
	})
}

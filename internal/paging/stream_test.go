package paging

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pager serves items in pages and records which pages were requested
type pager struct {
	items     []int
	pageSize  int
	requested []int
	failOn    int
}

func (p *pager) fetch(_ context.Context, page int) ([]int, error) {
	p.requested = append(p.requested, page)
	if p.failOn == page {
		return nil, errors.New("boom")
	}
	start := (page - 1) * p.pageSize
	if start >= len(p.items) {
		return nil, nil
	}
	end := min(start+p.pageSize, len(p.items))
	return p.items[start:end], nil
}

func seq(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestStream_ShortPageEndsWithoutExtraRequest(t *testing.T) {
	p := &pager{items: seq(5), pageSize: 2}

	items, err := Collect(New(context.Background(), 2, p.fetch))

	require.NoError(t, err)
	assert.Equal(t, seq(5), items)
	assert.Equal(t, []int{1, 2, 3}, p.requested)
}

func TestStream_FullLastPageNeedsOneMoreRequest(t *testing.T) {
	p := &pager{items: seq(4), pageSize: 2}

	items, err := Collect(New(context.Background(), 2, p.fetch))

	require.NoError(t, err)
	assert.Equal(t, seq(4), items)
	assert.Equal(t, []int{1, 2, 3}, p.requested)
}

func TestStream_Empty(t *testing.T) {
	p := &pager{pageSize: 100}

	items, err := Collect(New(context.Background(), 100, p.fetch))

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, []int{1}, p.requested)
}

func TestStream_IsLazy(t *testing.T) {
	p := &pager{items: seq(10), pageSize: 2}
	s := New(context.Background(), 2, p.fetch)

	assert.Empty(t, p.requested)

	require.True(t, s.Next())
	assert.Equal(t, 1, s.Item())
	require.True(t, s.Next())
	assert.Equal(t, 2, s.Item())
	assert.Equal(t, []int{1}, p.requested)
}

func TestStream_ErrorStopsIteration(t *testing.T) {
	p := &pager{items: seq(6), pageSize: 2, failOn: 2}
	s := New(context.Background(), 2, p.fetch)

	items, err := Collect(s)

	require.EqualError(t, err, "boom")
	assert.Equal(t, []int{1, 2}, items)
	assert.False(t, s.Next())
	assert.EqualError(t, s.Err(), "boom")
}

func TestStream_NotRestartable(t *testing.T) {
	p := &pager{items: seq(3), pageSize: 2}
	s := New(context.Background(), 2, p.fetch)

	_, err := Collect(s)
	require.NoError(t, err)

	items, err := Collect(s)
	assert.ErrorIs(t, err, ErrStreamConsumed)
	assert.Empty(t, items)
	assert.Equal(t, []int{1, 2}, p.requested)
}

func TestMapPages_KeepsPageBoundaries(t *testing.T) {
	p := &pager{items: seq(5), pageSize: 2}
	double := func(n int) (string, error) { return strconv.Itoa(n * 2), nil }

	items, err := Collect(New(context.Background(), 2, MapPages(p.fetch, double)))

	require.NoError(t, err)
	assert.Equal(t, []string{"2", "4", "6", "8", "10"}, items)
	assert.Equal(t, []int{1, 2, 3}, p.requested)
}

func TestMapPages_ConversionErrorStopsStream(t *testing.T) {
	p := &pager{items: seq(4), pageSize: 2}
	failOnThree := func(n int) (int, error) {
		if n == 3 {
			return 0, errors.New("bad item")
		}
		return n, nil
	}

	items, err := Collect(New(context.Background(), 2, MapPages(p.fetch, failOnThree)))

	assert.EqualError(t, err, "bad item")
	assert.Equal(t, []int{1, 2}, items)
}

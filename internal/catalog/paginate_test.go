package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	t.Run("first page", func(t *testing.T) {
		page := Paginate(items, 1, 3)
		assert.Equal(t, []int{1, 2, 3}, page.Items)
		assert.Equal(t, 7, page.Total)
		assert.True(t, page.HasMore)
	})

	t.Run("middle page", func(t *testing.T) {
		page := Paginate(items, 2, 3)
		assert.Equal(t, []int{4, 5, 6}, page.Items)
		assert.True(t, page.HasMore)
	})

	t.Run("last partial page", func(t *testing.T) {
		page := Paginate(items, 3, 3)
		assert.Equal(t, []int{7}, page.Items)
		assert.False(t, page.HasMore)
	})

	t.Run("page past the end is empty, not an error", func(t *testing.T) {
		page := Paginate(items, 10, 3)
		assert.Empty(t, page.Items)
		assert.NotNil(t, page.Items)
		assert.Equal(t, 7, page.Total)
		assert.False(t, page.HasMore)
	})

	t.Run("limit larger than items", func(t *testing.T) {
		page := Paginate(items, 1, 50)
		assert.Equal(t, items, page.Items)
		assert.False(t, page.HasMore)
	})

	t.Run("empty input", func(t *testing.T) {
		page := Paginate([]int{}, 1, 10)
		assert.Empty(t, page.Items)
		assert.Equal(t, 0, page.Total)
		assert.False(t, page.HasMore)
	})

	t.Run("window length law", func(t *testing.T) {
		// len(items) == min(limit, max(0, N - (page-1)*limit))
		for _, n := range []int{0, 1, 5, 10, 23} {
			seq := make([]int, n)
			for page := 1; page <= 6; page++ {
				for _, limit := range []int{1, 3, 10} {
					got := Paginate(seq, page, limit)
					want := n - (page-1)*limit
					if want < 0 {
						want = 0
					}
					if want > limit {
						want = limit
					}
					assert.Len(t, got.Items, want, "n=%d page=%d limit=%d", n, page, limit)
					assert.Equal(t, page*limit < n, got.HasMore, "n=%d page=%d limit=%d", n, page, limit)
				}
			}
		}
	})
}

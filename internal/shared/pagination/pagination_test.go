package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPageRequest(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req, err := NewPageRequest(2, 20, "id")
		require.NoError(t, err)
		assert.Equal(t, 2, req.Page)
		assert.Equal(t, 20, req.Size)
		assert.Equal(t, 40, req.Offset())
	})

	t.Run("negative page is clamped to zero", func(t *testing.T) {
		req, err := NewPageRequest(-3, 10, "")
		require.NoError(t, err)
		assert.Equal(t, 0, req.Page)
		assert.Equal(t, 0, req.Offset())
	})

	t.Run("zero size is a contract violation", func(t *testing.T) {
		_, err := NewPageRequest(0, 0, "")
		assert.ErrorIs(t, err, ErrInvalidPageSize)
	})

	t.Run("negative size is a contract violation", func(t *testing.T) {
		_, err := NewPageRequest(0, -5, "")
		assert.ErrorIs(t, err, ErrInvalidPageSize)
	})
}

func TestNewPage(t *testing.T) {
	req, err := NewPageRequest(0, 20, "")
	require.NoError(t, err)

	t.Run("totals are computed from the full count", func(t *testing.T) {
		page := NewPage([]int{1, 2, 3}, req, 43)
		assert.Len(t, page.Items, 3)
		assert.Equal(t, int64(43), page.TotalElements)
		assert.Equal(t, 3, page.TotalPages)
	})

	t.Run("exact multiple of size", func(t *testing.T) {
		page := NewPage([]int{1, 2}, req, 40)
		assert.Equal(t, 2, page.TotalPages)
	})

	t.Run("page past the end is empty with correct totals", func(t *testing.T) {
		farReq, err := NewPageRequest(5, 20, "")
		require.NoError(t, err)

		page := NewPage([]int(nil), farReq, 10)
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
		assert.Equal(t, int64(10), page.TotalElements)
		assert.Equal(t, 1, page.TotalPages)
	})

	t.Run("empty result set", func(t *testing.T) {
		page := NewPage([]string{}, req, 0)
		assert.Empty(t, page.Items)
		assert.Equal(t, 0, page.TotalPages)
	})
}

func TestMap(t *testing.T) {
	req, err := NewPageRequest(1, 2, "")
	require.NoError(t, err)

	page := NewPage([]int{3, 4}, req, 6)
	mapped := Map(page, func(v int) int { return v * 10 })

	assert.Equal(t, []int{30, 40}, mapped.Items)
	assert.Equal(t, page.Page, mapped.Page)
	assert.Equal(t, page.TotalElements, mapped.TotalElements)
	assert.Equal(t, page.TotalPages, mapped.TotalPages)
}

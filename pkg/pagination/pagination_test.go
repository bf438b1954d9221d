package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamsNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Params
		want Params
	}{
		{"零值回落到默认", Params{}, Params{Page: 1, Limit: DefaultLimit}},
		{"负数回落到默认", Params{Page: -3, Limit: -1}, Params{Page: 1, Limit: DefaultLimit}},
		{"超过上限截断到上限", Params{Page: 2, Limit: 500}, Params{Page: 2, Limit: MaxLimit}},
		{"合法值原样保留", Params{Page: 3, Limit: 25}, Params{Page: 3, Limit: 25}},
		{"上限值本身合法", Params{Page: 1, Limit: MaxLimit}, Params{Page: 1, Limit: MaxLimit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestParamsOffset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, Params{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 50, Params{Page: 3, Limit: 25}.Offset())
}

func TestNewPage(t *testing.T) {
	t.Run("总页数向上取整", func(t *testing.T) {
		page := NewPage([]int{1, 2, 3}, 21, Params{Page: 1, Limit: 10})
		assert.Equal(t, int64(21), page.TotalDocs)
		assert.Equal(t, int64(3), page.TotalPages)
		assert.True(t, page.HasNextPage)
		assert.False(t, page.HasPrevPage)
	})

	t.Run("整除时不多出空页", func(t *testing.T) {
		page := NewPage([]int{}, 20, Params{Page: 2, Limit: 10})
		assert.Equal(t, int64(2), page.TotalPages)
		assert.False(t, page.HasNextPage)
		assert.True(t, page.HasPrevPage)
	})

	t.Run("末页没有下一页", func(t *testing.T) {
		page := NewPage([]int{1}, 21, Params{Page: 3, Limit: 10})
		assert.False(t, page.HasNextPage)
		assert.True(t, page.HasPrevPage)
	})

	t.Run("空结果", func(t *testing.T) {
		page := NewPage([]int{}, 0, Params{Page: 1, Limit: 10})
		assert.Equal(t, int64(0), page.TotalPages)
		assert.True(t, page.IsEmpty())
		assert.False(t, page.HasNextPage)
		assert.False(t, page.HasPrevPage)
	})

	t.Run("越过末页的页码没有下一页", func(t *testing.T) {
		page := NewPage([]int{}, 5, Params{Page: 9, Limit: 10})
		assert.False(t, page.HasNextPage)
		assert.True(t, page.HasPrevPage)
		assert.False(t, page.IsEmpty())
	})
}

package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	list := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	cases := []struct {
		name     string
		limit    int
		offset   int
		expected []int
	}{
		{"first page", 3, 0, []int{0, 1, 2}},
		{"middle page", 3, 3, []int{3, 4, 5}},
		{"partial last page", 4, 8, []int{8, 9}},
		{"offset at end", 5, 10, []int{}},
		{"offset past end", 5, 50, []int{}},
		{"limit covers everything", 100, 0, list},
		{"single element", 1, 9, []int{9}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Paginate(list, tc.limit, tc.offset))
		})
	}
}

func TestPaginate_MatchesSliceExpression(t *testing.T) {
	list := []string{"a", "b", "c", "d", "e"}

	for offset := 0; offset <= len(list)+2; offset++ {
		for limit := 1; limit <= len(list)+2; limit++ {
			got := Paginate(list, limit, offset)
			if offset >= len(list) {
				assert.Empty(t, got)
				continue
			}
			end := min(offset+limit, len(list))
			assert.Equal(t, list[offset:end], got)
		}
	}
}

func TestPaginate_EmptyInput(t *testing.T) {
	assert.Empty(t, Paginate([]int{}, 10, 0))
}

package ctxiter

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func findMultiples(i int, modulus *int) (bool, error) {
	return i%*modulus == 0, nil
}

func TestFilterWithContextTable(t *testing.T) {
	tests := []struct {
		name    string
		input   []int
		modulus int
		want    []int
	}{
		{
			name:    "multiples of two",
			input:   []int{1, 2, 3, 4, 5, 6, 7, 8},
			modulus: 2,
			want:    []int{2, 4, 6, 8},
		},
		{
			name:    "multiples of three",
			input:   []int{1, 2, 3, 4, 5, 6, 7, 8, 9},
			modulus: 3,
			want:    []int{3, 6, 9},
		},
		{
			name:    "nothing matches",
			input:   []int{1, 3, 5},
			modulus: 2,
			want:    []int{},
		},
		{
			name:    "empty list",
			input:   []int{},
			modulus: 2,
			want:    []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			filtered := FilterWithContext[int, int](
				SliceWithContext(tt.input, tt.modulus), findMultiples)

			out := []int{}
			ctx := context.Background()
			for filtered.Next(ctx) {
				out = append(out, filtered.Get(ctx))
			}

			assert.EqualValues(tt.want, out)
			assert.Nil(filtered.Error())
		})
	}
}

func TestFilterMethod(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	filtered := RangeWithContext(0, 20, 5).Filter(findMultiples)

	out := []int{}
	for filtered.Next(ctx) {
		out = append(out, filtered.Get(ctx))
	}

	assert.Equal([]int{0, 5, 10, 15}, out)
}

func TestFilterForwardsContext(t *testing.T) {
	assert := assert.New(t)

	wrapped := SliceWithContext([]int{1, 2, 3}, 2)
	filtered := wrapped.Filter(findMultiples)

	assert.Same(wrapped.Context(), filtered.Context())
}

func TestFilterError(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	errBad := errors.New("bad element")

	filtered := SliceWithContext([]int{2, 4, 5, 6}, 2).
		Filter(func(item int, modulus *int) (bool, error) {
			if item%2 != 0 {
				return false, fmt.Errorf("%d: %w", item, errBad)
			}
			return item%*modulus == 0, nil
		})

	out := []int{}
	for filtered.Next(ctx) {
		out = append(out, filtered.Get(ctx))
	}

	// the elements before the failing one are produced..
	assert.Equal([]int{2, 4}, out)

	// .. the predicate's error is propagated unchanged..
	assert.ErrorIs(filtered.Error(), errBad)

	// .. and the iterator stays stopped
	assert.False(filtered.Next(ctx))
}

func TestFilterThenMap(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	type config struct {
		modulus int
		offset  int
	}

	result := RangeWithContext(0, 10, config{modulus: 3, offset: 100}).
		Filter(func(item int, cfg *config) (bool, error) {
			return item%cfg.modulus == 0, nil
		}).
		Map(func(item int, cfg *config) (int, error) {
			return item + cfg.offset, nil
		})

	out := []int{}
	for result.Next(ctx) {
		out = append(out, result.Get(ctx))
	}

	assert.Equal([]int{100, 103, 106, 109}, out)
	assert.Nil(result.Error())
}

func TestFilterHasNoSizeHint(t *testing.T) {
	assert := assert.New(t)

	filtered := RangeWithContext(0, 10, 2).Filter(findMultiples)

	// the element count is not preserved, so the filter must not claim
	// a size through the Size interface
	var it Iterator[int] = filtered
	_, ok := it.(Size[int])
	assert.False(ok)
}

package heapalloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRange(t *testing.T) {
	t.Run("Size", func(t *testing.T) {
		testCases := []struct {
			name     string
			r        Range
			expected uint64
		}{
			{"positive size", Range{Start: 10, End: 20}, 10},
			{"zero size", Range{Start: 5, End: 5}, 0},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Equal(t, tc.expected, tc.r.Size())
			})
		}
	})

	t.Run("Overlaps", func(t *testing.T) {
		testCases := []struct {
			name     string
			r1, r2   Range
			expected bool
		}{
			{"r2 starts during r1", Range{Start: 10, End: 20}, Range{Start: 15, End: 25}, true},
			{"adjacent ranges", Range{Start: 10, End: 20}, Range{Start: 20, End: 30}, false},
			{"r1 contains r2", Range{Start: 5, End: 25}, Range{Start: 10, End: 20}, true},
			{"no overlap", Range{Start: 10, End: 20}, Range{Start: 25, End: 30}, false},
			{"identical ranges", Range{Start: 10, End: 20}, Range{Start: 10, End: 20}, true},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Equal(t, tc.expected, tc.r1.Overlaps(tc.r2))
				assert.Equal(t, tc.expected, tc.r2.Overlaps(tc.r1))
			})
		}
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "[16, 116)", Range{Start: 16, End: 116}.String())
	})
}

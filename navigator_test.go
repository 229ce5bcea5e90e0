package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigatorMoveHighlight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		count  int
		wrap   bool
		start  int
		deltas []int
		want   int
	}{
		{
			name:   "down within range",
			count:  3,
			wrap:   true,
			deltas: []int{1},
			want:   1,
		},
		{
			name:   "up from top wraps to bottom",
			count:  3,
			wrap:   true,
			deltas: []int{-1},
			want:   2,
		},
		{
			name:   "down from bottom wraps to top",
			count:  3,
			wrap:   true,
			start:  2,
			deltas: []int{1},
			want:   0,
		},
		{
			name:   "up from top clamps without wrap",
			count:  3,
			wrap:   false,
			deltas: []int{-1},
			want:   0,
		},
		{
			name:   "down from bottom clamps without wrap",
			count:  3,
			wrap:   false,
			start:  2,
			deltas: []int{1, 1},
			want:   2,
		},
		{
			name:   "empty list stays at zero",
			count:  0,
			wrap:   true,
			deltas: []int{1, -1},
			want:   0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			nav := newNavigator(tt.count, tt.wrap)
			nav.layout(tt.count)
			nav.setHighlight(tt.start)
			for _, d := range tt.deltas {
				nav.moveHighlight(d)
			}
			assert.Equal(t, tt.want, nav.highlight)
		})
	}
}

func TestNavigatorViewportInvariant(t *testing.T) {
	t.Parallel()

	nav := newNavigator(10, true)
	nav.layout(3)

	moves := []int{1, 1, 1, 1, 1, -1, -1, 1, 1, 1, 1, 1, 1, -1, -1, -1, -1, -1, -1, -1, 1}
	for _, d := range moves {
		nav.moveHighlight(d)
		require.LessOrEqual(t, nav.first, nav.highlight)
		require.Less(t, nav.highlight, nav.first+nav.pageSize)
		require.GreaterOrEqual(t, nav.first, 0)
		require.LessOrEqual(t, nav.first+nav.pageSize, nav.count)
	}
}

func TestNavigatorMinimalScroll(t *testing.T) {
	t.Parallel()

	nav := newNavigator(10, false)
	nav.layout(3)

	// Moving within the window does not scroll.
	nav.moveHighlight(1)
	nav.moveHighlight(1)
	assert.Equal(t, 0, nav.first)

	// Crossing the bottom edge shifts by exactly one row.
	nav.moveHighlight(1)
	assert.Equal(t, 3, nav.highlight)
	assert.Equal(t, 1, nav.first)

	// Moving back inside the window leaves it in place.
	nav.moveHighlight(-1)
	assert.Equal(t, 2, nav.highlight)
	assert.Equal(t, 1, nav.first)

	// Crossing the top edge shifts back by one.
	nav.moveHighlight(-1)
	nav.moveHighlight(-1)
	assert.Equal(t, 0, nav.highlight)
	assert.Equal(t, 0, nav.first)
}

func TestNavigatorWrapScrollsToFarEnd(t *testing.T) {
	t.Parallel()

	nav := newNavigator(10, true)
	nav.layout(3)

	nav.moveHighlight(-1)
	assert.Equal(t, 9, nav.highlight)
	assert.Equal(t, 7, nav.first)

	nav.moveHighlight(1)
	assert.Equal(t, 0, nav.highlight)
	assert.Equal(t, 0, nav.first)
}

func TestNavigatorSetCount(t *testing.T) {
	t.Parallel()

	nav := newNavigator(10, true)
	nav.layout(4)
	nav.setHighlight(8)

	nav.setCount(3)
	assert.Equal(t, 2, nav.highlight)
	assert.LessOrEqual(t, nav.first+nav.pageSize, nav.count)

	nav.setCount(0)
	assert.Equal(t, 0, nav.highlight)
	assert.Equal(t, 0, nav.first)
}

func TestNavigatorToggle(t *testing.T) {
	t.Parallel()

	nav := newNavigator(4, true)
	nav.layout(4)

	nav.setHighlight(2)
	nav.toggle()
	nav.setHighlight(0)
	nav.toggle()
	assert.Equal(t, []int{0, 2}, nav.checkedItems())

	// Toggling again clears.
	nav.toggle()
	assert.Equal(t, []int{2}, nav.checkedItems())
}

func TestNavigatorMoveItem(t *testing.T) {
	t.Parallel()

	t.Run("swap carries the highlight", func(t *testing.T) {
		t.Parallel()

		nav := newNavigator(3, true)
		nav.layout(3)
		nav.initOrder()
		nav.setHighlight(1)

		require.True(t, nav.moveItem(1))
		assert.Equal(t, []int{0, 2, 1}, nav.order)
		assert.Equal(t, 2, nav.highlight)
	})

	t.Run("no-op at the bottom boundary", func(t *testing.T) {
		t.Parallel()

		nav := newNavigator(3, true)
		nav.layout(3)
		nav.initOrder()
		nav.setHighlight(2)

		assert.False(t, nav.moveItem(1))
		assert.Equal(t, []int{0, 1, 2}, nav.order)
		assert.Equal(t, 2, nav.highlight)
	})

	t.Run("no-op at the top boundary", func(t *testing.T) {
		t.Parallel()

		nav := newNavigator(3, true)
		nav.layout(3)
		nav.initOrder()

		assert.False(t, nav.moveItem(-1))
		assert.Equal(t, []int{0, 1, 2}, nav.order)
		assert.Equal(t, 0, nav.highlight)
	})
}

func TestNavigatorVisible(t *testing.T) {
	t.Parallel()

	nav := newNavigator(10, false)
	nav.layout(4)

	start, end := nav.visible()
	assert.Equal(t, 0, start)
	assert.Equal(t, 4, end)
	assert.False(t, nav.hasMoreAbove())
	assert.True(t, nav.hasMoreBelow())

	nav.setHighlight(9)
	start, end = nav.visible()
	assert.Equal(t, 6, start)
	assert.Equal(t, 10, end)
	assert.True(t, nav.hasMoreAbove())
	assert.False(t, nav.hasMoreBelow())
}

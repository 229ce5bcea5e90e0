package dialog

// navigator owns the selection state of the list prompts: the highlighted
// position, the checked set (MultiSelect), the item permutation (Sort), and
// the visible window over the current view.
//
// Invariants, held after every mutation:
//   - highlight stays within [0, count) while count > 0
//   - first <= highlight < first+pageSize once layout has run
//
// The window follows a minimal-scroll policy: moving the highlight out of
// the window shifts the window by the smallest amount that brings the
// highlight back in, never recentering.
type navigator struct {
	count     int
	highlight int
	first     int
	pageSize  int
	wrap      bool
	checked   map[int]bool
	order     []int // item permutation, Sort only
}

func newNavigator(count int, wrap bool) *navigator {
	return &navigator{
		count:    count,
		wrap:     wrap,
		pageSize: 1,
		checked:  make(map[int]bool),
	}
}

// layout applies the page size computed for the current terminal height and
// re-establishes the window invariant.
func (n *navigator) layout(pageSize int) {
	if pageSize < 1 {
		pageSize = 1
	}
	if n.count > 0 && pageSize > n.count {
		pageSize = n.count
	}
	n.pageSize = pageSize
	n.ensureVisible()
}

// moveHighlight shifts the highlight by delta rows. At the list boundary it
// wraps around when wrapping is enabled, otherwise it stays put.
func (n *navigator) moveHighlight(delta int) {
	if n.count == 0 {
		return
	}
	next := n.highlight + delta
	if n.wrap {
		next = ((next % n.count) + n.count) % n.count
	} else {
		if next < 0 {
			next = 0
		}
		if next >= n.count {
			next = n.count - 1
		}
	}
	n.highlight = next
	n.ensureVisible()
}

// setHighlight jumps straight to a position, clamped into range.
func (n *navigator) setHighlight(pos int) {
	if n.count == 0 {
		n.highlight = 0
		return
	}
	if pos < 0 {
		pos = 0
	}
	if pos >= n.count {
		pos = n.count - 1
	}
	n.highlight = pos
	n.ensureVisible()
}

// setCount resizes the view (the filtered list shrank or grew) and clamps
// the highlight and window back into range.
func (n *navigator) setCount(count int) {
	n.count = count
	if count == 0 {
		n.highlight = 0
		n.first = 0
		return
	}
	if n.highlight >= count {
		n.highlight = count - 1
	}
	if n.pageSize > count {
		n.pageSize = count
	}
	n.ensureVisible()
}

// toggle flips the checked state of the highlighted item.
func (n *navigator) toggle() {
	if n.count == 0 {
		return
	}
	n.checked[n.highlight] = !n.checked[n.highlight]
}

// checkedItems returns the checked indices in ascending order.
func (n *navigator) checkedItems() []int {
	items := make([]int, 0, len(n.checked))
	for i := 0; i < n.count; i++ {
		if n.checked[i] {
			items = append(items, i)
		}
	}
	return items
}

// initOrder starts Sort mode with the identity permutation.
func (n *navigator) initOrder() {
	n.order = make([]int, n.count)
	for i := range n.order {
		n.order[i] = i
	}
}

// moveItem swaps the highlighted element with its neighbor, carrying the
// highlight along so it keeps pointing at the moved item. A no-op at the
// list boundary: item moves never wrap.
func (n *navigator) moveItem(delta int) bool {
	next := n.highlight + delta
	if next < 0 || next >= n.count {
		return false
	}
	n.order[n.highlight], n.order[next] = n.order[next], n.order[n.highlight]
	n.highlight = next
	n.ensureVisible()
	return true
}

// itemAt maps a view position to an original item index, honoring the Sort
// permutation when present.
func (n *navigator) itemAt(pos int) int {
	if n.order != nil {
		return n.order[pos]
	}
	return pos
}

// visible returns the window bounds [start, end).
func (n *navigator) visible() (start, end int) {
	end = n.first + n.pageSize
	if end > n.count {
		end = n.count
	}
	return n.first, end
}

func (n *navigator) hasMoreAbove() bool {
	return n.first > 0
}

func (n *navigator) hasMoreBelow() bool {
	return n.first+n.pageSize < n.count
}

// ensureVisible shifts the window by the minimum amount that keeps the
// highlight inside it.
func (n *navigator) ensureVisible() {
	if n.highlight < n.first {
		n.first = n.highlight
	}
	if n.highlight >= n.first+n.pageSize {
		n.first = n.highlight - n.pageSize + 1
	}
	if limit := n.count - n.pageSize; n.first > limit {
		n.first = limit
	}
	if n.first < 0 {
		n.first = 0
	}
}

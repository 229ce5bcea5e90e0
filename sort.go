package dialog

import (
	"io"
	"strings"
)

// Sort prompts the user to reorder a list. Space grabs or releases the
// highlighted item; while grabbed, Up/Down carry the item with the
// highlight. Item moves never wrap: moving a grabbed item past the list
// boundary is a no-op. Enter returns the permutation of original indices in
// their new order.
//
//	order, err := dialog.NewSort("Rank the options", items).Interact()
//	// order[0] is the original index of the item ranked first
type Sort struct {
	prompt   string
	items    []string
	wrap     bool
	showHelp bool
	theme    *Theme
	keyMap   *KeyMap

	term   terminalInterface
	output io.Writer
}

// SortOption configures a Sort prompt.
type SortOption func(*Sort)

// WithSortWrap enables or disables wrap-around highlight navigation
// (default on). Item moves never wrap regardless.
func WithSortWrap(wrap bool) SortOption {
	return func(s *Sort) { s.wrap = wrap }
}

// WithSortTheme sets the theme.
func WithSortTheme(theme *Theme) SortOption {
	return func(s *Sort) { s.theme = theme }
}

// WithSortKeyMap sets custom key bindings.
func WithSortKeyMap(km *KeyMap) SortOption {
	return func(s *Sort) { s.keyMap = km }
}

// WithSortHelp shows a key legend under the list.
func WithSortHelp(show bool) SortOption {
	return func(s *Sort) { s.showHelp = show }
}

// NewSort creates a Sort prompt over the given items.
func NewSort(prompt string, items []string, opts ...SortOption) *Sort {
	s := &Sort{
		prompt: prompt,
		items:  items,
		wrap:   true,
		theme:  DefaultTheme(),
		keyMap: NewListKeyMap(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Interact runs the prompt and returns the reordered original indices.
// Cancellation is reported as ErrCancelled.
func (s *Sort) Interact() ([]int, error) {
	order, ok, err := s.run()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCancelled
	}
	return order, nil
}

// InteractOpt runs the prompt; cancellation yields an empty result with
// ok=false and a nil error.
func (s *Sort) InteractOpt() ([]int, bool, error) {
	return s.run()
}

func (s *Sort) run() ([]int, bool, error) {
	if len(s.items) == 0 {
		return nil, false, ErrNoItems
	}

	sess, err := newSession(s.term, s.output, s.keyMap)
	if err != nil {
		return nil, false, err
	}
	if err := sess.acquire(true); err != nil {
		return nil, false, err
	}
	defer sess.release()

	nav := newNavigator(len(s.items), s.wrap)
	nav.initOrder()
	grabbed := false

	for {
		nav.layout(sess.pageSize(len(s.items)))
		if err := sess.renderer.render(s.frame(sess, nav, grabbed)); err != nil {
			return nil, false, err
		}

		key, err := sess.readKey()
		if err != nil {
			return nil, false, err
		}

		switch key.action {
		case ActionSubmit:
			order := append([]int{}, nav.order...)
			if err := sess.renderer.finish(s.summary(order)); err != nil {
				return nil, false, err
			}
			return order, true, nil
		case ActionCancel:
			if err := sess.renderer.clear(); err != nil {
				return nil, false, err
			}
			return nil, false, nil
		case ActionToggle:
			grabbed = !grabbed
		case ActionMoveUp:
			if grabbed {
				nav.moveItem(-1)
			} else {
				nav.moveHighlight(-1)
			}
		case ActionMoveDown:
			if grabbed {
				nav.moveItem(1)
			} else {
				nav.moveHighlight(1)
			}
		case ActionMoveHome:
			if !grabbed {
				nav.setHighlight(0)
			}
		case ActionMoveEnd:
			if !grabbed {
				nav.setHighlight(len(s.items) - 1)
			}
		}
	}
}

func (s *Sort) frame(sess *session, nav *navigator, grabbed bool) []string {
	width := sess.width() - 4
	lines := []string{s.theme.FormatPrompt(s.prompt)}
	if nav.hasMoreAbove() {
		lines = append(lines, s.theme.FormatMore(true))
	}
	start, end := nav.visible()
	for pos := start; pos < end; pos++ {
		highlighted := pos == nav.highlight
		text := truncateToWidth(s.items[nav.itemAt(pos)], width)
		lines = append(lines, s.theme.FormatSortItem(text, grabbed && highlighted, highlighted))
	}
	if nav.hasMoreBelow() {
		lines = append(lines, s.theme.FormatMore(false))
	}
	if s.showHelp {
		lines = append(lines, s.theme.FormatHelp("↑/↓ move · space grab · enter confirm · esc cancel"))
	}
	return lines
}

func (s *Sort) summary(order []int) string {
	names := make([]string, len(order))
	for i, idx := range order {
		names[i] = s.items[idx]
	}
	return s.theme.FormatSummary(s.prompt, strings.Join(names, ", "))
}

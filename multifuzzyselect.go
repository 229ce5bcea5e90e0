package dialog

import (
	"io"
	"strings"
)

// MultiFuzzySelect prompts the user to check any number of items from a list
// narrowed by a fuzzy query. Typing edits the query like FuzzySelect; Space
// toggles the highlighted item and resets the query, so the next pick starts
// from the full list again. Space is the toggle key and therefore cannot
// appear in the query.
//
// The checked set is keyed by original index and survives re-filtering: an
// item checked under one query stays checked when the query changes.
//
//	picked, err := dialog.NewMultiFuzzySelect("Pick toppings", items).Interact()
//
// Enter returns the checked original indices in ascending order, which may be
// an empty set.
type MultiFuzzySelect struct {
	prompt   string
	items    []string
	defaults []int
	wrap     bool
	showHelp bool
	theme    *Theme
	keyMap   *KeyMap

	term   terminalInterface
	output io.Writer
}

// MultiFuzzySelectOption configures a MultiFuzzySelect prompt.
type MultiFuzzySelectOption func(*MultiFuzzySelect)

// WithMultiFuzzySelectDefaults pre-checks the given original indices.
func WithMultiFuzzySelectDefaults(indices []int) MultiFuzzySelectOption {
	return func(m *MultiFuzzySelect) { m.defaults = indices }
}

// WithMultiFuzzySelectWrap enables or disables wrap-around navigation
// (default on).
func WithMultiFuzzySelectWrap(wrap bool) MultiFuzzySelectOption {
	return func(m *MultiFuzzySelect) { m.wrap = wrap }
}

// WithMultiFuzzySelectTheme sets the theme.
func WithMultiFuzzySelectTheme(theme *Theme) MultiFuzzySelectOption {
	return func(m *MultiFuzzySelect) { m.theme = theme }
}

// WithMultiFuzzySelectKeyMap sets custom key bindings.
func WithMultiFuzzySelectKeyMap(km *KeyMap) MultiFuzzySelectOption {
	return func(m *MultiFuzzySelect) { m.keyMap = km }
}

// WithMultiFuzzySelectHelp shows a key legend under the list.
func WithMultiFuzzySelectHelp(show bool) MultiFuzzySelectOption {
	return func(m *MultiFuzzySelect) { m.showHelp = show }
}

// NewMultiFuzzySelect creates a MultiFuzzySelect prompt over the given items.
func NewMultiFuzzySelect(prompt string, items []string, opts ...MultiFuzzySelectOption) *MultiFuzzySelect {
	km := NewEditKeyMap()
	km.Bind(' ', ActionToggle)

	m := &MultiFuzzySelect{
		prompt: prompt,
		items:  items,
		wrap:   true,
		theme:  DefaultTheme(),
		keyMap: km,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Interact runs the prompt and returns the checked original indices in
// ascending order. Cancellation is reported as ErrCancelled.
func (m *MultiFuzzySelect) Interact() ([]int, error) {
	picked, ok, err := m.run()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCancelled
	}
	return picked, nil
}

// InteractOpt runs the prompt; cancellation yields an empty result with
// ok=false and a nil error.
func (m *MultiFuzzySelect) InteractOpt() ([]int, bool, error) {
	return m.run()
}

func (m *MultiFuzzySelect) run() ([]int, bool, error) {
	if len(m.items) == 0 {
		return nil, false, ErrNoItems
	}

	sess, err := newSession(m.term, m.output, m.keyMap)
	if err != nil {
		return nil, false, err
	}
	if err := sess.acquire(false); err != nil {
		return nil, false, err
	}
	defer sess.release()

	checked := make(map[int]bool)
	for _, i := range m.defaults {
		if i >= 0 && i < len(m.items) {
			checked[i] = true
		}
	}

	ed := &lineEditor{}
	view := filterItems(m.items, "")
	nav := newNavigator(len(view), m.wrap)
	lastQuery := ""

	for {
		if query := ed.text(); query != lastQuery {
			view = filterItems(m.items, query)
			nav.setCount(len(view))
			lastQuery = query
		}

		nav.layout(sess.pageSize(len(view)))
		if err := sess.renderer.render(m.frame(sess, nav, ed.text(), view, checked)); err != nil {
			return nil, false, err
		}
		col := m.theme.InputPrefixWidth(m.prompt, "") + displayWidth(string(ed.buffer[:ed.cursor]))
		if err := sess.renderer.position(0, col); err != nil {
			return nil, false, err
		}

		key, err := sess.readKey()
		if err != nil {
			return nil, false, err
		}

		switch key.action {
		case ActionSubmit:
			if len(view) == 0 {
				continue
			}
			picked := checkedIndices(checked, len(m.items))
			if err := sess.renderer.finish(m.summary(picked)); err != nil {
				return nil, false, err
			}
			return picked, true, nil
		case ActionCancel:
			if err := sess.renderer.clear(); err != nil {
				return nil, false, err
			}
			return nil, false, nil
		case ActionToggle:
			if len(view) > 0 {
				idx := view[nav.highlight].Index
				checked[idx] = !checked[idx]
			}
			// The query resets on toggle; the next pick starts from the
			// full list.
			ed.deleteLine()
		case ActionMoveUp:
			nav.moveHighlight(-1)
		case ActionMoveDown:
			nav.moveHighlight(1)
		case ActionMoveLeft:
			ed.moveLeft()
		case ActionMoveRight:
			ed.moveRight()
		case ActionMoveHome:
			ed.moveHome()
		case ActionMoveEnd:
			ed.moveEnd()
		case ActionMoveWordLeft:
			ed.moveWordLeft()
		case ActionMoveWordRight:
			ed.moveWordRight()
		case ActionDeleteBack:
			ed.deleteBack()
		case ActionDeleteForward:
			ed.deleteForward()
		case ActionDeleteLine:
			ed.deleteLine()
		case ActionDeleteToEnd:
			ed.deleteToEnd()
		case ActionDeleteWordBack:
			ed.deleteWordBack()
		default:
			if key.r != 0 {
				ed.insert(key.r)
				// A narrowed view starts over from its best match.
				nav.setHighlight(0)
			}
		}
	}
}

func (m *MultiFuzzySelect) frame(sess *session, nav *navigator, query string, view []fuzzyMatch, checked map[int]bool) []string {
	width := sess.width() - 6 // cursor plus checkbox
	lines := []string{m.theme.FormatInput(m.prompt, "", query, EchoNormal)}
	if nav.hasMoreAbove() {
		lines = append(lines, m.theme.FormatMore(true))
	}
	start, end := nav.visible()
	for pos := start; pos < end; pos++ {
		match := view[pos]
		text := truncateToWidth(match.Text, width)
		lines = append(lines, m.theme.FormatMultiFuzzyItem(text, match.Positions, checked[match.Index], pos == nav.highlight))
	}
	if nav.hasMoreBelow() {
		lines = append(lines, m.theme.FormatMore(false))
	}
	if m.showHelp {
		lines = append(lines, m.theme.FormatHelp("type to filter · space toggle · ↑/↓ move · enter confirm · esc cancel"))
	}
	return lines
}

func (m *MultiFuzzySelect) summary(picked []int) string {
	names := make([]string, len(picked))
	for i, idx := range picked {
		names[i] = m.items[idx]
	}
	return m.theme.FormatSummary(m.prompt, strings.Join(names, ", "))
}

// checkedIndices flattens the checked set into ascending original indices.
func checkedIndices(checked map[int]bool, count int) []int {
	picked := make([]int, 0, len(checked))
	for i := 0; i < count; i++ {
		if checked[i] {
			picked = append(picked, i)
		}
	}
	return picked
}

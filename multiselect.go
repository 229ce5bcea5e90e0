package dialog

import (
	"io"
	"strings"
)

// MultiSelect prompts the user to check any number of items from a list.
// Space toggles the highlighted item; Enter confirms the checked set, which
// may be empty.
//
//	picked, ok, err := dialog.NewMultiSelect("Toppings", items).InteractOpt()
//
// With InteractOpt, cancelling is a designed "no selection" outcome: it
// returns ok=false and a nil error rather than a failure.
type MultiSelect struct {
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

// MultiSelectOption configures a MultiSelect prompt.
type MultiSelectOption func(*MultiSelect)

// WithMultiSelectDefaults pre-checks the given indices.
func WithMultiSelectDefaults(indices []int) MultiSelectOption {
	return func(m *MultiSelect) { m.defaults = indices }
}

// WithMultiSelectWrap enables or disables wrap-around navigation
// (default on).
func WithMultiSelectWrap(wrap bool) MultiSelectOption {
	return func(m *MultiSelect) { m.wrap = wrap }
}

// WithMultiSelectTheme sets the theme.
func WithMultiSelectTheme(theme *Theme) MultiSelectOption {
	return func(m *MultiSelect) { m.theme = theme }
}

// WithMultiSelectKeyMap sets custom key bindings.
func WithMultiSelectKeyMap(km *KeyMap) MultiSelectOption {
	return func(m *MultiSelect) { m.keyMap = km }
}

// WithMultiSelectHelp shows a key legend under the list.
func WithMultiSelectHelp(show bool) MultiSelectOption {
	return func(m *MultiSelect) { m.showHelp = show }
}

// NewMultiSelect creates a MultiSelect prompt over the given items.
func NewMultiSelect(prompt string, items []string, opts ...MultiSelectOption) *MultiSelect {
	m := &MultiSelect{
		prompt: prompt,
		items:  items,
		wrap:   true,
		theme:  DefaultTheme(),
		keyMap: NewListKeyMap(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Interact runs the prompt and returns the checked indices in ascending
// order. Cancellation is reported as ErrCancelled.
func (m *MultiSelect) Interact() ([]int, error) {
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
func (m *MultiSelect) InteractOpt() ([]int, bool, error) {
	return m.run()
}

func (m *MultiSelect) run() ([]int, bool, error) {
	if len(m.items) == 0 {
		return nil, false, ErrNoItems
	}

	sess, err := newSession(m.term, m.output, m.keyMap)
	if err != nil {
		return nil, false, err
	}
	if err := sess.acquire(true); err != nil {
		return nil, false, err
	}
	defer sess.release()

	nav := newNavigator(len(m.items), m.wrap)
	for _, i := range m.defaults {
		if i >= 0 && i < len(m.items) {
			nav.checked[i] = true
		}
	}

	for {
		nav.layout(sess.pageSize(len(m.items)))
		if err := sess.renderer.render(m.frame(sess, nav)); err != nil {
			return nil, false, err
		}

		key, err := sess.readKey()
		if err != nil {
			return nil, false, err
		}

		switch key.action {
		case ActionSubmit:
			picked := nav.checkedItems()
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
			nav.toggle()
		case ActionMoveUp:
			nav.moveHighlight(-1)
		case ActionMoveDown:
			nav.moveHighlight(1)
		case ActionMoveHome:
			nav.setHighlight(0)
		case ActionMoveEnd:
			nav.setHighlight(len(m.items) - 1)
		}
	}
}

func (m *MultiSelect) frame(sess *session, nav *navigator) []string {
	width := sess.width() - 6 // cursor plus checkbox
	lines := []string{m.theme.FormatPrompt(m.prompt)}
	if nav.hasMoreAbove() {
		lines = append(lines, m.theme.FormatMore(true))
	}
	start, end := nav.visible()
	for pos := start; pos < end; pos++ {
		text := truncateToWidth(m.items[pos], width)
		lines = append(lines, m.theme.FormatMultiSelectItem(text, nav.checked[pos], pos == nav.highlight))
	}
	if nav.hasMoreBelow() {
		lines = append(lines, m.theme.FormatMore(false))
	}
	if m.showHelp {
		lines = append(lines, m.theme.FormatHelp("↑/↓ move · space toggle · enter confirm · esc cancel"))
	}
	return lines
}

func (m *MultiSelect) summary(picked []int) string {
	names := make([]string, len(picked))
	for i, idx := range picked {
		names[i] = m.items[idx]
	}
	return m.theme.FormatSummary(m.prompt, strings.Join(names, ", "))
}

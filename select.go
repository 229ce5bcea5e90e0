package dialog

import "io"

// Select prompts the user to pick one item from a list. Navigation wraps at
// the list boundary by default, and lists taller than the terminal are
// paged with more-above/more-below indicators.
//
//	items := []string{"Apple", "Banana", "Cherry"}
//	idx, err := dialog.NewSelect("Pick a fruit", items,
//		dialog.WithSelectDefault(1),
//	).Interact()
type Select struct {
	prompt   string
	items    []string
	def      int
	wrap     bool
	showHelp bool
	theme    *Theme
	keyMap   *KeyMap

	// test seams, nil in production
	term   terminalInterface
	output io.Writer
}

// SelectOption configures a Select prompt.
type SelectOption func(*Select)

// WithSelectDefault sets the initially highlighted index.
func WithSelectDefault(index int) SelectOption {
	return func(s *Select) { s.def = index }
}

// WithSelectWrap enables or disables wrap-around navigation (default on).
func WithSelectWrap(wrap bool) SelectOption {
	return func(s *Select) { s.wrap = wrap }
}

// WithSelectTheme sets the theme.
func WithSelectTheme(theme *Theme) SelectOption {
	return func(s *Select) { s.theme = theme }
}

// WithSelectKeyMap sets custom key bindings.
func WithSelectKeyMap(km *KeyMap) SelectOption {
	return func(s *Select) { s.keyMap = km }
}

// WithSelectHelp shows a key legend under the list.
func WithSelectHelp(show bool) SelectOption {
	return func(s *Select) { s.showHelp = show }
}

// NewSelect creates a Select prompt over the given items.
func NewSelect(prompt string, items []string, opts ...SelectOption) *Select {
	s := &Select{
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

// Interact runs the prompt and returns the selected index. Cancellation is
// reported as ErrCancelled.
func (s *Select) Interact() (int, error) {
	idx, ok, err := s.run()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrCancelled
	}
	return idx, nil
}

// InteractOpt runs the prompt; cancellation yields ok=false with a nil
// error instead of a failure.
func (s *Select) InteractOpt() (int, bool, error) {
	return s.run()
}

func (s *Select) run() (int, bool, error) {
	if len(s.items) == 0 {
		return 0, false, ErrNoItems
	}

	sess, err := newSession(s.term, s.output, s.keyMap)
	if err != nil {
		return 0, false, err
	}
	if err := sess.acquire(true); err != nil {
		return 0, false, err
	}
	defer sess.release()

	nav := newNavigator(len(s.items), s.wrap)
	nav.setHighlight(s.def)

	for {
		nav.layout(sess.pageSize(len(s.items)))
		if err := sess.renderer.render(s.frame(sess, nav)); err != nil {
			return 0, false, err
		}

		key, err := sess.readKey()
		if err != nil {
			return 0, false, err
		}

		switch key.action {
		case ActionSubmit:
			summary := s.theme.FormatSummary(s.prompt, s.items[nav.highlight])
			if err := sess.renderer.finish(summary); err != nil {
				return 0, false, err
			}
			return nav.highlight, true, nil
		case ActionCancel:
			if err := sess.renderer.clear(); err != nil {
				return 0, false, err
			}
			return 0, false, nil
		case ActionMoveUp:
			nav.moveHighlight(-1)
		case ActionMoveDown:
			nav.moveHighlight(1)
		case ActionMoveHome:
			nav.setHighlight(0)
		case ActionMoveEnd:
			nav.setHighlight(len(s.items) - 1)
		}
	}
}

func (s *Select) frame(sess *session, nav *navigator) []string {
	width := sess.width() - 2
	lines := []string{s.theme.FormatPrompt(s.prompt)}
	if nav.hasMoreAbove() {
		lines = append(lines, s.theme.FormatMore(true))
	}
	start, end := nav.visible()
	for pos := start; pos < end; pos++ {
		text := truncateToWidth(s.items[pos], width)
		lines = append(lines, s.theme.FormatSelectItem(text, pos == nav.highlight))
	}
	if nav.hasMoreBelow() {
		lines = append(lines, s.theme.FormatMore(false))
	}
	if s.showHelp {
		lines = append(lines, s.theme.FormatHelp("↑/↓ move · enter select · esc cancel"))
	}
	return lines
}

package dialog

import "io"

// FuzzySelect prompts the user to pick one item from a list narrowed by a
// fuzzy query. Every printable key edits the query; the list re-filters on
// each edit, ordered best match first, and the highlight resets to the top
// of the narrowed view. Matching is case-insensitive subsequence matching:
// query runes must appear in the item in order, not necessarily adjacent.
//
//	idx, err := dialog.NewFuzzySelect("Switch branch", branches).Interact()
//
// The returned index always refers to the original items slice, not the
// filtered view.
type FuzzySelect struct {
	prompt   string
	items    []string
	wrap     bool
	showHelp bool
	theme    *Theme
	keyMap   *KeyMap

	term   terminalInterface
	output io.Writer
}

// FuzzySelectOption configures a FuzzySelect prompt.
type FuzzySelectOption func(*FuzzySelect)

// WithFuzzySelectWrap enables or disables wrap-around navigation
// (default on).
func WithFuzzySelectWrap(wrap bool) FuzzySelectOption {
	return func(f *FuzzySelect) { f.wrap = wrap }
}

// WithFuzzySelectTheme sets the theme.
func WithFuzzySelectTheme(theme *Theme) FuzzySelectOption {
	return func(f *FuzzySelect) { f.theme = theme }
}

// WithFuzzySelectKeyMap sets custom key bindings.
func WithFuzzySelectKeyMap(km *KeyMap) FuzzySelectOption {
	return func(f *FuzzySelect) { f.keyMap = km }
}

// WithFuzzySelectHelp shows a key legend under the list.
func WithFuzzySelectHelp(show bool) FuzzySelectOption {
	return func(f *FuzzySelect) { f.showHelp = show }
}

// NewFuzzySelect creates a FuzzySelect prompt over the given items.
func NewFuzzySelect(prompt string, items []string, opts ...FuzzySelectOption) *FuzzySelect {
	f := &FuzzySelect{
		prompt: prompt,
		items:  items,
		wrap:   true,
		theme:  DefaultTheme(),
		keyMap: NewEditKeyMap(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Interact runs the prompt and returns the original index of the chosen
// item. Cancellation is reported as ErrCancelled.
func (f *FuzzySelect) Interact() (int, error) {
	idx, ok, err := f.run()
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
func (f *FuzzySelect) InteractOpt() (int, bool, error) {
	return f.run()
}

func (f *FuzzySelect) run() (int, bool, error) {
	if len(f.items) == 0 {
		return 0, false, ErrNoItems
	}

	sess, err := newSession(f.term, f.output, f.keyMap)
	if err != nil {
		return 0, false, err
	}
	if err := sess.acquire(false); err != nil {
		return 0, false, err
	}
	defer sess.release()

	ed := &lineEditor{}
	view := filterItems(f.items, "")
	nav := newNavigator(len(view), f.wrap)
	lastQuery := ""

	for {
		if query := ed.text(); query != lastQuery {
			view = filterItems(f.items, query)
			nav.setCount(len(view))
			lastQuery = query
		}

		nav.layout(sess.pageSize(len(view)))
		if err := sess.renderer.render(f.frame(sess, nav, ed.text(), view)); err != nil {
			return 0, false, err
		}
		col := f.theme.InputPrefixWidth(f.prompt, "") + displayWidth(string(ed.buffer[:ed.cursor]))
		if err := sess.renderer.position(0, col); err != nil {
			return 0, false, err
		}

		key, err := sess.readKey()
		if err != nil {
			return 0, false, err
		}

		switch key.action {
		case ActionSubmit:
			if len(view) == 0 {
				continue
			}
			chosen := view[nav.highlight]
			if err := sess.renderer.finish(f.theme.FormatSummary(f.prompt, chosen.Text)); err != nil {
				return 0, false, err
			}
			return chosen.Index, true, nil
		case ActionCancel:
			if err := sess.renderer.clear(); err != nil {
				return 0, false, err
			}
			return 0, false, nil
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

func (f *FuzzySelect) frame(sess *session, nav *navigator, query string, view []fuzzyMatch) []string {
	width := sess.width() - 2
	lines := []string{f.theme.FormatInput(f.prompt, "", query, EchoNormal)}
	if nav.hasMoreAbove() {
		lines = append(lines, f.theme.FormatMore(true))
	}
	start, end := nav.visible()
	for pos := start; pos < end; pos++ {
		m := view[pos]
		text := truncateToWidth(m.Text, width)
		lines = append(lines, f.theme.FormatFuzzyItem(text, m.Positions, pos == nav.highlight))
	}
	if nav.hasMoreBelow() {
		lines = append(lines, f.theme.FormatMore(false))
	}
	if f.showHelp {
		lines = append(lines, f.theme.FormatHelp("type to filter · ↑/↓ move · enter select · esc cancel"))
	}
	return lines
}

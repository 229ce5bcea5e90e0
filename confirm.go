package dialog

import "io"

// Confirm asks a yes/no question. The y and n keys answer immediately;
// Enter picks the configured default when one is set and is ignored
// otherwise.
//
//	yes, err := dialog.NewConfirm("Overwrite the file?",
//		dialog.WithConfirmDefault(false),
//	).Interact()
type Confirm struct {
	prompt string
	def    *bool
	theme  *Theme
	keyMap *KeyMap

	term   terminalInterface
	output io.Writer
}

// ConfirmOption configures a Confirm prompt.
type ConfirmOption func(*Confirm)

// WithConfirmDefault sets the answer chosen by a bare Enter.
func WithConfirmDefault(def bool) ConfirmOption {
	return func(c *Confirm) { c.def = &def }
}

// WithConfirmTheme sets the theme.
func WithConfirmTheme(theme *Theme) ConfirmOption {
	return func(c *Confirm) { c.theme = theme }
}

// NewConfirm creates a Confirm prompt.
func NewConfirm(prompt string, opts ...ConfirmOption) *Confirm {
	km := newKeyMap()
	km.Bind('\r', ActionSubmit)
	km.Bind('\n', ActionSubmit)
	km.Bind('\x03', ActionCancel)
	km.Bind('\x1b', ActionCancel)

	c := &Confirm{
		prompt: prompt,
		theme:  DefaultTheme(),
		keyMap: km,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Interact runs the prompt and returns the answer. Cancellation is reported
// as ErrCancelled.
func (c *Confirm) Interact() (bool, error) {
	answer, ok, err := c.InteractOpt()
	if err != nil {
		return false, err
	}
	if !ok {
		return false, ErrCancelled
	}
	return answer, nil
}

// InteractOpt runs the prompt; cancellation yields ok=false with a nil
// error instead of a failure.
func (c *Confirm) InteractOpt() (bool, bool, error) {
	sess, err := newSession(c.term, c.output, c.keyMap)
	if err != nil {
		return false, false, err
	}
	if err := sess.acquire(true); err != nil {
		return false, false, err
	}
	defer sess.release()

	for {
		frame := []string{c.theme.FormatConfirm(c.prompt, c.def)}
		if err := sess.renderer.render(frame); err != nil {
			return false, false, err
		}

		key, err := sess.readKey()
		if err != nil {
			return false, false, err
		}

		switch key.action {
		case ActionSubmit:
			if c.def == nil {
				continue
			}
			return c.finish(sess, *c.def)
		case ActionCancel:
			if err := sess.renderer.clear(); err != nil {
				return false, false, err
			}
			return false, false, nil
		}

		switch key.r {
		case 'y', 'Y':
			return c.finish(sess, true)
		case 'n', 'N':
			return c.finish(sess, false)
		}
	}
}

func (c *Confirm) finish(sess *session, answer bool) (bool, bool, error) {
	value := "no"
	if answer {
		value = "yes"
	}
	if err := sess.renderer.finish(c.theme.FormatSummary(c.prompt, value)); err != nil {
		return false, false, err
	}
	return answer, true, nil
}

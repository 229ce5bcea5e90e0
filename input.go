package dialog

import (
	"fmt"
	"io"
	"os"
)

// Input prompts for a single line of text with inline editing, optional
// validation, a default value, and history recall on Up/Down.
//
//	name, err := dialog.NewInput("Project name",
//		dialog.WithDefault("untitled"),
//		dialog.WithValidator(validateName),
//	).Interact()
//
// When the buffer is empty at confirm time and a default is configured, the
// default is substituted before validation runs, so the validator always
// sees the effective value.
type Input struct {
	prompt     string
	def        string
	validator  func(string) error
	allowEmpty bool
	showHelp   bool
	history    *History
	theme      *Theme
	keyMap     *KeyMap

	term   terminalInterface
	output io.Writer
}

// InputOption configures an Input prompt.
type InputOption func(*Input)

// WithDefault sets the value returned when the user confirms an empty
// buffer. The default still passes through the validator.
func WithDefault(def string) InputOption {
	return func(i *Input) { i.def = def }
}

// WithValidator sets the validation hook invoked on every confirm attempt.
// A non-nil error rejects the confirm: the message is shown inline and the
// prompt keeps editing without clearing the buffer.
func WithValidator(validate func(string) error) InputOption {
	return func(i *Input) { i.validator = validate }
}

// WithAllowEmpty permits confirming an empty value when no default is set.
func WithAllowEmpty(allow bool) InputOption {
	return func(i *Input) { i.allowEmpty = allow }
}

// WithHistory attaches a history store. Up/Down recall entries; the
// confirmed value is appended and, for file-backed stores, persisted.
func WithHistory(history *History) InputOption {
	return func(i *Input) { i.history = history }
}

// WithInputTheme sets the theme.
func WithInputTheme(theme *Theme) InputOption {
	return func(i *Input) { i.theme = theme }
}

// WithInputKeyMap sets custom key bindings.
func WithInputKeyMap(km *KeyMap) InputOption {
	return func(i *Input) { i.keyMap = km }
}

// WithInputHelp shows a key legend under the input line.
func WithInputHelp(show bool) InputOption {
	return func(i *Input) { i.showHelp = show }
}

// NewInput creates an Input prompt.
func NewInput(prompt string, opts ...InputOption) *Input {
	i := &Input{
		prompt: prompt,
		theme:  DefaultTheme(),
		keyMap: NewEditKeyMap(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Interact runs the prompt and returns the confirmed value. Cancellation is
// reported as ErrCancelled.
func (i *Input) Interact() (string, error) {
	value, ok, err := i.InteractOpt()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrCancelled
	}
	return value, nil
}

// InteractOpt runs the prompt; cancellation yields ok=false with a nil
// error instead of a failure.
func (i *Input) InteractOpt() (string, bool, error) {
	sess, err := newSession(i.term, i.output, i.keyMap)
	if err != nil {
		return "", false, err
	}
	if err := sess.acquire(false); err != nil {
		return "", false, err
	}
	defer sess.release()

	value, ok, err := runLine(sess, lineConfig{
		prompt:     i.prompt,
		def:        i.def,
		validator:  i.validator,
		allowEmpty: i.allowEmpty,
		echo:       EchoNormal,
		history:    i.history,
		showHelp:   i.showHelp,
		theme:      i.theme,
	})
	if err != nil {
		return "", false, err
	}
	if !ok {
		if err := sess.renderer.clear(); err != nil {
			return "", false, err
		}
		return "", false, nil
	}

	if i.history != nil {
		i.history.Add(value)
		if err := i.history.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to save history: %v\n", err)
		}
	}
	if err := sess.renderer.finish(i.theme.FormatSummary(i.prompt, value)); err != nil {
		return "", false, err
	}
	return value, true, nil
}

// lineConfig parameterizes one run of the shared line-editing loop. Input
// runs it once; Password runs it once per entry and again on mismatch.
type lineConfig struct {
	prompt     string
	def        string
	validator  func(string) error
	allowEmpty bool
	echo       EchoMode
	history    *History
	showHelp   bool
	theme      *Theme
	errMsg     string // error shown before the first keystroke
}

// runLine drives the editing loop until the value validates or the user
// cancels. It leaves the rendered region in place; the caller finishes with
// a summary or clears it.
func runLine(sess *session, cfg lineConfig) (string, bool, error) {
	ed := &lineEditor{}
	var entries []string
	if cfg.history != nil {
		entries = cfg.history.Entries()
	}
	histIdx := len(entries)
	errMsg := cfg.errMsg

	for {
		frame := []string{cfg.theme.FormatInput(cfg.prompt, cfg.def, ed.text(), cfg.echo)}
		if errMsg != "" {
			frame = append(frame, cfg.theme.FormatError(errMsg))
		}
		if cfg.showHelp {
			frame = append(frame, cfg.theme.FormatHelp("enter confirm · esc cancel"))
		}
		if err := sess.renderer.render(frame); err != nil {
			return "", false, err
		}
		col := cfg.theme.InputPrefixWidth(cfg.prompt, cfg.def) + echoWidth(ed.buffer[:ed.cursor], cfg.echo)
		if err := sess.renderer.position(0, col); err != nil {
			return "", false, err
		}

		key, err := sess.readKey()
		if err != nil {
			return "", false, err
		}

		switch key.action {
		case ActionSubmit:
			text := ed.text()
			if text == "" && cfg.def != "" {
				// Defaults are not exempt from validation.
				text = cfg.def
			}
			if text == "" && !cfg.allowEmpty {
				errMsg = "input is required"
				continue
			}
			if cfg.validator != nil {
				if err := cfg.validator(text); err != nil {
					errMsg = err.Error()
					continue
				}
			}
			return text, true, nil
		case ActionCancel:
			return "", false, nil
		case ActionMoveUp:
			if histIdx > 0 {
				histIdx--
				ed.setText(entries[histIdx])
			}
		case ActionMoveDown:
			if histIdx < len(entries) {
				histIdx++
				if histIdx == len(entries) {
					ed.setText("")
				} else {
					ed.setText(entries[histIdx])
				}
			}
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
			if ed.deleteBack() {
				errMsg = ""
			}
		case ActionDeleteForward:
			if ed.deleteForward() {
				errMsg = ""
			}
		case ActionDeleteLine:
			ed.deleteLine()
			errMsg = ""
		case ActionDeleteToEnd:
			ed.deleteToEnd()
			errMsg = ""
		case ActionDeleteWordBack:
			ed.deleteWordBack()
			errMsg = ""
		default:
			if key.r != 0 {
				ed.insert(key.r)
				errMsg = ""
				histIdx = len(entries)
			}
		}
	}
}

// echoWidth is the display width of the echoed text before the cursor.
func echoWidth(runes []rune, mode EchoMode) int {
	switch mode {
	case EchoMask:
		return len(runes)
	case EchoNone:
		return 0
	}
	return displayWidth(string(runes))
}

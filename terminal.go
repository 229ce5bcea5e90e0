package dialog

import (
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// terminalInterface abstracts terminal operations so prompts can run against
// a real terminal in production and a scripted one in tests.
//
// Implementations:
//   - realTerminal: go-tty for key input, golang.org/x/term for raw mode
//   - mockTerminal: deterministic scripted input for tests
type terminalInterface interface {
	SetRaw() error                        // Enter raw mode for immediate key processing
	Restore() error                       // Restore original terminal settings
	Size() (width, height int, err error) // Terminal dimensions with safe fallbacks
	ReadRune() (rune, int, error)         // Read a single Unicode character (blocking)
	Buffered() bool                       // Whether input is already pending
	Close() error                         // Release the device
}

// realTerminal drives an actual terminal. go-tty handles cross-platform key
// input; raw mode state is saved and restored through golang.org/x/term so
// the terminal is usable again on every exit path, including Ctrl+C.
type realTerminal struct {
	tty           *tty.TTY
	stdinFd       int
	originalState *term.State // captured on SetRaw, nil when not in raw mode
	closed        bool        // guards against double Close, which panics on Windows
}

func newRealTerminal() (*realTerminal, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}
	return &realTerminal{
		tty:     t,
		stdinFd: int(os.Stdin.Fd()),
	}, nil
}

// newOutputWriter returns the writer prompts render to, with ANSI escape
// support on Windows via go-colorable.
func newOutputWriter() io.Writer {
	if runtime.GOOS == "windows" {
		return colorable.NewColorableStdout()
	}
	return os.Stdout
}

func (t *realTerminal) SetRaw() error {
	if !term.IsTerminal(t.stdinFd) {
		return nil
	}
	state, err := term.GetState(t.stdinFd)
	if err != nil {
		return err
	}
	t.originalState = state
	_, err = term.MakeRaw(t.stdinFd)
	return err
}

func (t *realTerminal) Restore() error {
	if t.originalState == nil || !term.IsTerminal(t.stdinFd) {
		return nil
	}
	err := term.Restore(t.stdinFd, t.originalState)
	t.originalState = nil
	return err
}

func (t *realTerminal) Size() (width, height int, err error) {
	w, h, err := t.tty.Size()
	if err != nil || w <= 0 || h <= 0 {
		// Safe fallback so viewport math never divides by zero.
		return 80, 24, err
	}
	return w, h, nil
}

func (t *realTerminal) ReadRune() (rune, int, error) {
	r, err := t.tty.ReadRune()
	if err != nil {
		return 0, 0, err
	}
	return r, 1, nil
}

func (t *realTerminal) Buffered() bool {
	return t.tty.Buffered()
}

func (t *realTerminal) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	if t.tty != nil {
		return t.tty.Close()
	}
	return nil
}

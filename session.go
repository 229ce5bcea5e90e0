package dialog

import (
	"fmt"
	"io"
	"os"
)

// session bundles the terminal, output writer, renderer, and key map for
// one prompt run. It is created when Interact starts and discarded when the
// prompt returns; the terminal is exclusively owned by the session for the
// duration of the loop.
type session struct {
	term     terminalInterface
	renderer *renderer
	keyMap   *KeyMap
	ownsTerm bool
}

// newSession wires a prompt run. term and output may be nil, in which case
// the real terminal and an ANSI-capable stdout are used; tests inject a
// mockTerminal and a bytes.Buffer instead.
func newSession(term terminalInterface, output io.Writer, keyMap *KeyMap) (*session, error) {
	owns := false
	if term == nil {
		t, err := newRealTerminal()
		if err != nil {
			return nil, fmt.Errorf("failed to open terminal: %w", err)
		}
		term = t
		owns = true
	}
	if output == nil {
		output = newOutputWriter()
	}
	return &session{
		term:     term,
		renderer: newRenderer(output),
		keyMap:   keyMap,
		ownsTerm: owns,
	}, nil
}

// acquire puts the terminal into raw mode and optionally hides the cursor.
// Every acquire must be paired with a deferred release.
func (s *session) acquire(hideCursor bool) error {
	if err := s.term.SetRaw(); err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	if hideCursor {
		s.renderer.showCursor(false)
	}
	return nil
}

// release restores the terminal on every exit path. Failures here are
// best-effort: the prompt result (or its error) is already decided.
func (s *session) release() {
	s.renderer.showCursor(true)
	if err := s.term.Restore(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to restore terminal state: %v\n", err)
	}
	if s.ownsTerm {
		if err := s.term.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close terminal: %v\n", err)
		}
	}
}

// keyPress is one decoded key event. r is set only for printable input that
// has no binding; bound keys surface through action alone.
type keyPress struct {
	action KeyAction
	r      rune
}

// readKey blocks for the next key and resolves it against the session key
// map. A bare ESC (no buffered follow-up bytes) resolves through the rune
// bindings; ESC with pending input starts an escape sequence.
func (s *session) readKey() (keyPress, error) {
	r, _, err := s.term.ReadRune()
	if err != nil {
		return keyPress{}, fmt.Errorf("failed to read input: %w", err)
	}

	if r == '\x1b' && s.term.Buffered() {
		seq, err := s.readEscapeSequence()
		if err != nil {
			return keyPress{}, fmt.Errorf("failed to read input: %w", err)
		}
		return keyPress{action: s.keyMap.SequenceAction(seq)}, nil
	}

	if action := s.keyMap.Action(r); action != ActionNone {
		return keyPress{action: action}, nil
	}
	if isPrintable(r) {
		return keyPress{r: r}, nil
	}
	return keyPress{}, nil
}

// readEscapeSequence consumes the bytes following an ESC until the sequence
// is complete. CSI sequences ("[" leader) end at their final byte in
// 0x40..0x7e; SS3 sequences ("O" leader, sent by terminals in application
// cursor mode) carry exactly one more byte; anything else is a single-rune
// sequence (Alt-modified key). Bounded to avoid spinning on garbage input.
func (s *session) readEscapeSequence() (string, error) {
	r, _, err := s.term.ReadRune()
	if err != nil {
		return "", err
	}
	seq := []rune{r}

	switch r {
	case '[':
		for i := 0; i < 8; i++ {
			r, _, err := s.term.ReadRune()
			if err != nil {
				return "", err
			}
			seq = append(seq, r)
			if r >= '@' && r <= '~' {
				return string(seq), nil
			}
		}
	case 'O':
		r, _, err := s.term.ReadRune()
		if err != nil {
			return "", err
		}
		seq = append(seq, r)
	}
	return string(seq), nil
}

// pageSize computes the number of item rows that fit the terminal for this
// render. One row is reserved for the prompt line and one for the error or
// help line; when the list overflows, two more are reserved for the
// more-above/more-below indicators.
func (s *session) pageSize(count int) int {
	_, h, _ := s.term.Size()
	ps := h - 2
	if count > ps {
		ps -= 2
	}
	if ps < 1 {
		ps = 1
	}
	if count < ps {
		ps = count
	}
	return ps
}

// width returns the current terminal width in cells.
func (s *session) width() int {
	w, _, _ := s.term.Size()
	return w
}

func isPrintable(r rune) bool {
	return r >= 32 && r != 127
}

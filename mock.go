package dialog

import "io"

// mockTerminal implements terminalInterface with a pre-scripted key
// sequence. Escape sequences are written into the script verbatim, e.g.
// "\x1b[B\r" for ArrowDown followed by Enter. A trailing bare ESC reads as
// cancellation because Buffered reports no pending input after it.
type mockTerminal struct {
	input    []rune
	inputPos int
	rawMode  bool
	width    int
	height   int
}

func newMockTerminal(input string) *mockTerminal {
	return &mockTerminal{
		input:  []rune(input),
		width:  80,
		height: 24,
	}
}

// newSizedMockTerminal scripts input against a fixed terminal geometry,
// used by paging and viewport tests.
func newSizedMockTerminal(input string, width, height int) *mockTerminal {
	return &mockTerminal{
		input:  []rune(input),
		width:  width,
		height: height,
	}
}

func (m *mockTerminal) SetRaw() error {
	m.rawMode = true
	return nil
}

func (m *mockTerminal) Restore() error {
	m.rawMode = false
	return nil
}

func (m *mockTerminal) Size() (width, height int, err error) {
	return m.width, m.height, nil
}

func (m *mockTerminal) ReadRune() (rune, int, error) {
	if m.inputPos >= len(m.input) {
		return 0, 0, io.EOF
	}
	r := m.input[m.inputPos]
	m.inputPos++
	return r, 1, nil
}

func (m *mockTerminal) Buffered() bool {
	return m.inputPos < len(m.input)
}

func (m *mockTerminal) Close() error {
	return nil
}

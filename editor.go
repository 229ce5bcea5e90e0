package dialog

// lineEditor owns the text buffer and cursor offset for the line-editing
// prompts. The cursor is a rune offset and always stays within [0, length].
type lineEditor struct {
	buffer []rune
	cursor int
}

func (e *lineEditor) insert(r rune) {
	e.buffer = append(e.buffer[:e.cursor], append([]rune{r}, e.buffer[e.cursor:]...)...)
	e.cursor++
}

// deleteBack removes the rune before the cursor. Reports whether anything
// was removed.
func (e *lineEditor) deleteBack() bool {
	if e.cursor == 0 {
		return false
	}
	e.buffer = append(e.buffer[:e.cursor-1], e.buffer[e.cursor:]...)
	e.cursor--
	return true
}

// deleteForward removes the rune under the cursor.
func (e *lineEditor) deleteForward() bool {
	if e.cursor >= len(e.buffer) {
		return false
	}
	e.buffer = append(e.buffer[:e.cursor], e.buffer[e.cursor+1:]...)
	return true
}

func (e *lineEditor) moveLeft() {
	if e.cursor > 0 {
		e.cursor--
	}
}

func (e *lineEditor) moveRight() {
	if e.cursor < len(e.buffer) {
		e.cursor++
	}
}

func (e *lineEditor) moveHome() {
	e.cursor = 0
}

func (e *lineEditor) moveEnd() {
	e.cursor = len(e.buffer)
}

func (e *lineEditor) moveWordLeft() {
	e.cursor = e.wordBoundary(-1)
}

func (e *lineEditor) moveWordRight() {
	e.cursor = e.wordBoundary(1)
}

// deleteLine discards the whole buffer.
func (e *lineEditor) deleteLine() {
	e.buffer = e.buffer[:0]
	e.cursor = 0
}

// deleteToEnd removes everything from the cursor to the end of the line.
func (e *lineEditor) deleteToEnd() {
	e.buffer = e.buffer[:e.cursor]
}

// deleteWordBack removes the word immediately before the cursor.
func (e *lineEditor) deleteWordBack() {
	if e.cursor == 0 {
		return
	}
	start := e.wordBoundary(-1)
	e.buffer = append(e.buffer[:start], e.buffer[e.cursor:]...)
	e.cursor = start
}

// setText replaces the buffer, placing the cursor at the end. Used for
// history recall.
func (e *lineEditor) setText(text string) {
	e.buffer = []rune(text)
	e.cursor = len(e.buffer)
}

func (e *lineEditor) text() string {
	return string(e.buffer)
}

func (e *lineEditor) empty() bool {
	return len(e.buffer) == 0
}

// wordBoundary finds the next word boundary in the given direction.
// Moving right lands after the current word; moving left lands at the start
// of the previous word. Word characters are letters, digits and underscore.
func (e *lineEditor) wordBoundary(direction int) int {
	if direction > 0 {
		pos := e.cursor
		for pos < len(e.buffer) && !isWordChar(e.buffer[pos]) {
			pos++
		}
		for pos < len(e.buffer) && isWordChar(e.buffer[pos]) {
			pos++
		}
		return pos
	}

	pos := e.cursor
	if pos > 0 {
		pos--
	}
	for pos > 0 && !isWordChar(e.buffer[pos]) {
		pos--
	}
	for pos > 0 && isWordChar(e.buffer[pos-1]) {
		pos--
	}
	return pos
}

func isWordChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}

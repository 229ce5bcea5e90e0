package dialog

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// renderer redraws the prompt region incrementally. Each prompt state is
// rendered as a frame, a slice of styled lines; the renderer tracks the
// previously drawn frame, moves the cursor back to the top of the region,
// rewrites only when something changed, and wipes leftover rows when the new
// frame is shorter. There are no full-screen clears.
//
// Rendering an identical frame writes nothing, so redundant render calls in
// the prompt loop cost no terminal traffic and cause no flicker.
type renderer struct {
	output    io.Writer
	lastFrame []string
	curLine   int // region line the terminal cursor sits on
	curCol    int // tracked column, -1 after a render left it at line end
}

func newRenderer(output io.Writer) *renderer {
	return &renderer{output: output, curCol: -1}
}

// render draws the frame, replacing the previously drawn region.
func (r *renderer) render(frame []string) error {
	if slices.Equal(frame, r.lastFrame) {
		return nil
	}

	var b strings.Builder
	if len(r.lastFrame) > 0 && r.curLine > 0 {
		fmt.Fprintf(&b, "\x1b[%dA", r.curLine)
	}
	b.WriteString("\r")

	for i, line := range frame {
		b.WriteString("\x1b[2K")
		b.WriteString(line)
		if i < len(frame)-1 {
			b.WriteString("\r\n")
		}
	}

	// The previous frame was taller: wipe what it left behind, then come
	// back to the last line of the new frame.
	if extra := len(r.lastFrame) - len(frame); extra > 0 {
		for i := 0; i < extra; i++ {
			b.WriteString("\r\n\x1b[2K")
		}
		fmt.Fprintf(&b, "\x1b[%dA\r", extra)
	}

	r.lastFrame = slices.Clone(frame)
	r.curLine = len(frame) - 1
	r.curCol = -1

	_, err := io.WriteString(r.output, b.String())
	return err
}

// position places the terminal cursor on a frame line and column, both
// 0-based. Used by the line-editing prompts to park the cursor at the edit
// offset. A no-op when the cursor is already there.
func (r *renderer) position(line, col int) error {
	if line == r.curLine && col == r.curCol {
		return nil
	}

	var b strings.Builder
	switch {
	case line < r.curLine:
		fmt.Fprintf(&b, "\x1b[%dA", r.curLine-line)
	case line > r.curLine:
		fmt.Fprintf(&b, "\x1b[%dB", line-r.curLine)
	}
	b.WriteString("\r")
	if col > 0 {
		fmt.Fprintf(&b, "\x1b[%dC", col)
	}

	r.curLine = line
	r.curCol = col

	_, err := io.WriteString(r.output, b.String())
	return err
}

// clear erases the whole drawn region, leaving the cursor at its top-left.
func (r *renderer) clear() error {
	if len(r.lastFrame) == 0 {
		return nil
	}

	var b strings.Builder
	if r.curLine > 0 {
		fmt.Fprintf(&b, "\x1b[%dA", r.curLine)
	}
	b.WriteString("\r")
	for i := range r.lastFrame {
		b.WriteString("\x1b[2K")
		if i < len(r.lastFrame)-1 {
			b.WriteString("\r\n")
		}
	}
	if len(r.lastFrame) > 1 {
		fmt.Fprintf(&b, "\x1b[%dA", len(r.lastFrame)-1)
	}
	b.WriteString("\r")

	r.lastFrame = nil
	r.curLine = 0
	r.curCol = 0

	_, err := io.WriteString(r.output, b.String())
	return err
}

// finish replaces the interactive region with a single summary line. This
// is the terminal render of a confirmed prompt; nothing of the interactive
// state stays on screen.
func (r *renderer) finish(summary string) error {
	if err := r.clear(); err != nil {
		return err
	}
	_, err := io.WriteString(r.output, summary+"\r\n")
	return err
}

func (r *renderer) showCursor(show bool) {
	if show {
		fmt.Fprint(r.output, "\x1b[?25h")
		return
	}
	fmt.Fprint(r.output, "\x1b[?25l")
}

package dialog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRendererRender(t *testing.T) {
	t.Parallel()

	t.Run("first frame draws every line", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		r := newRenderer(&buf)
		require.NoError(t, r.render([]string{"one", "two", "three"}))

		out := buf.String()
		assert.Contains(t, out, "one")
		assert.Contains(t, out, "two")
		assert.Contains(t, out, "three")
		assert.Equal(t, 2, r.curLine)
	})

	t.Run("identical frame writes nothing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		r := newRenderer(&buf)
		frame := []string{"one", "two"}
		require.NoError(t, r.render(frame))

		before := buf.Len()
		require.NoError(t, r.render([]string{"one", "two"}))
		assert.Equal(t, before, buf.Len())
	})

	t.Run("changed frame moves back to the region top", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		r := newRenderer(&buf)
		require.NoError(t, r.render([]string{"one", "two"}))

		buf.Reset()
		require.NoError(t, r.render([]string{"one", "TWO"}))
		out := buf.String()
		assert.True(t, strings.HasPrefix(out, "\x1b[1A"), "should move up over the old region")
		assert.Contains(t, out, "TWO")
	})

	t.Run("shrinking frame wipes leftover lines", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		r := newRenderer(&buf)
		require.NoError(t, r.render([]string{"one", "two", "three"}))

		buf.Reset()
		require.NoError(t, r.render([]string{"one"}))
		out := buf.String()
		// Two stale rows below the new frame get cleared, then the cursor
		// returns to the frame's last line.
		assert.Equal(t, 2, strings.Count(out, "\r\n\x1b[2K"))
		assert.Contains(t, out, "\x1b[2A")
		assert.Equal(t, 0, r.curLine)
	})
}

func TestRendererPosition(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := newRenderer(&buf)
	require.NoError(t, r.render([]string{"prompt: abc", "help"}))

	buf.Reset()
	require.NoError(t, r.position(0, 9))
	assert.Equal(t, "\x1b[1A\r\x1b[9C", buf.String())

	// Same spot again is a no-op.
	buf.Reset()
	require.NoError(t, r.position(0, 9))
	assert.Zero(t, buf.Len())

	buf.Reset()
	require.NoError(t, r.position(1, 0))
	assert.Equal(t, "\x1b[1B\r", buf.String())
}

func TestRendererClear(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := newRenderer(&buf)
	require.NoError(t, r.render([]string{"one", "two", "three"}))

	buf.Reset()
	require.NoError(t, r.clear())
	out := buf.String()
	assert.Equal(t, 3, strings.Count(out, "\x1b[2K"))
	assert.Nil(t, r.lastFrame)
	assert.Equal(t, 0, r.curLine)

	// Clearing an empty region writes nothing.
	buf.Reset()
	require.NoError(t, r.clear())
	assert.Zero(t, buf.Len())
}

func TestRendererFinish(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := newRenderer(&buf)
	require.NoError(t, r.render([]string{"pick one", "  apple", "❯ banana"}))
	require.NoError(t, r.finish("✔ picked banana"))

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "✔ picked banana\r\n"))
	assert.Nil(t, r.lastFrame)
}

package dialog

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiSelectInteract(t *testing.T) {
	t.Parallel()

	items := []string{"Apple", "Banana", "Cherry"}

	tests := []struct {
		name  string
		input string
		opts  []MultiSelectOption
		want  []int
	}{
		{
			name:  "enter with nothing checked returns an empty set",
			input: "\r",
			want:  []int{},
		},
		{
			name:  "space checks the highlighted item",
			input: " \r",
			want:  []int{0},
		},
		{
			name:  "space twice unchecks again",
			input: "  \r",
			want:  []int{},
		},
		{
			name:  "checked items come back in ascending order",
			input: "\x1b[B\x1b[B \x1b[A\x1b[A \r",
			want:  []int{0, 2},
		},
		{
			name:  "defaults pre-check items",
			input: "\r",
			opts:  []MultiSelectOption{WithMultiSelectDefaults([]int{2, 0})},
			want:  []int{0, 2},
		},
		{
			name:  "defaults can be unchecked before confirming",
			input: " \r",
			opts:  []MultiSelectOption{WithMultiSelectDefaults([]int{0, 1})},
			want:  []int{1},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := NewMultiSelect("Pick fruits", items, tt.opts...)
			m.term = newMockTerminal(tt.input)
			m.output = &bytes.Buffer{}

			got, err := m.Interact()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMultiSelectCancel(t *testing.T) {
	t.Parallel()

	t.Run("InteractOpt yields an empty result and no error", func(t *testing.T) {
		t.Parallel()

		m := NewMultiSelect("Pick", []string{"a", "b"})
		m.term = newMockTerminal(" \x1b")
		m.output = &bytes.Buffer{}

		got, ok, err := m.InteractOpt()
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, got)
	})

	t.Run("Interact reports ErrCancelled", func(t *testing.T) {
		t.Parallel()

		m := NewMultiSelect("Pick", []string{"a", "b"})
		m.term = newMockTerminal("\x1b")
		m.output = &bytes.Buffer{}

		_, err := m.Interact()
		assert.ErrorIs(t, err, ErrCancelled)
	})
}

func TestMultiSelectEmptyItems(t *testing.T) {
	t.Parallel()

	m := NewMultiSelect("Pick", nil)
	m.term = newMockTerminal("")
	m.output = &bytes.Buffer{}

	_, err := m.Interact()
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestMultiSelectOutput(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	m := NewMultiSelect("Pick fruits", []string{"Apple", "Banana", "Cherry"})
	m.term = newMockTerminal(" \x1b[B\x1b[B \r")
	m.output = out

	got, err := m.Interact()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, got)

	plain := stripANSI(out.String())
	assert.Contains(t, plain, "[x]")
	assert.Contains(t, plain, "✔ Pick fruits · Apple, Cherry")
}

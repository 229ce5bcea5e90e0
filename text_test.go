package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "ascii", text: "hello", want: 5},
		{name: "empty", text: "", want: 0},
		{name: "wide runes count double", text: "日本語", want: 6},
		{name: "mixed width", text: "Go言語", want: 6},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, displayWidth(tt.text))
		})
	}
}

func TestTruncateToWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{name: "fits untouched", text: "hello", width: 10, want: "hello"},
		{name: "exact fit untouched", text: "hello", width: 5, want: "hello"},
		{name: "truncated with ellipsis", text: "hello world", width: 8, want: "hello w…"},
		{name: "wide runes respect cells", text: "日本語テキスト", width: 7, want: "日本語…"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := truncateToWidth(tt.text, tt.width)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, displayWidth(got), tt.width)
		})
	}
}

func TestStripANSI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "no escapes", text: "plain", want: "plain"},
		{name: "color codes", text: "\x1b[1;38;2;0;255;0mgreen\x1b[0m", want: "green"},
		{name: "cursor movement", text: "\x1b[2Aup\x1b[10Cright", want: "upright"},
		{name: "erase line", text: "\x1b[2Kcleared", want: "cleared"},
		{name: "only escapes", text: "\x1b[0m\x1b[2K", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, stripANSI(tt.text))
		})
	}
}

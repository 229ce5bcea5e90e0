package dialog

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// displayWidth returns the number of terminal cells the string occupies,
// accounting for East Asian wide runes.
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// truncateToWidth shortens a string to fit the given cell width, appending
// an ellipsis when something was cut.
func truncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// stripANSI removes CSI escape sequences so width math sees only the
// visible text.
func stripANSI(s string) string {
	const (
		plain = iota
		sawEsc
		inCSI
	)
	var b strings.Builder
	b.Grow(len(s))
	state := plain
	for _, r := range s {
		switch state {
		case sawEsc:
			if r == '[' {
				state = inCSI
			} else {
				state = plain
			}
		case inCSI:
			// A CSI sequence ends at the first byte in 0x40..0x7e.
			if r >= '@' && r <= '~' {
				state = plain
			}
		default:
			if r == '\x1b' {
				state = sawEsc
				continue
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

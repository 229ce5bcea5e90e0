package dialog

import (
	"fmt"
	"strings"
)

// Color represents an RGB color with optional bold formatting.
type Color struct {
	R    uint8 `toml:"r"`
	G    uint8 `toml:"g"`
	B    uint8 `toml:"b"`
	Bold bool  `toml:"bold"`
}

// ToANSI converts the color to an ANSI true-color escape sequence.
func (c Color) ToANSI() string {
	var codes []string
	if c.Bold {
		codes = append(codes, "1")
	}
	codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))
	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

// Reset returns the ANSI reset sequence.
func Reset() string {
	return "\x1b[0m"
}

// ColorScheme assigns a color to each semantic element of a prompt. Schemes
// can also be loaded from TOML files, see LoadColorScheme.
type ColorScheme struct {
	Name      string `toml:"name"`
	Prompt    Color  `toml:"prompt"`    // prompt indicator and question text
	Input     Color  `toml:"input"`     // typed text
	Item      Color  `toml:"item"`      // unhighlighted list rows
	Highlight Color  `toml:"highlight"` // highlighted list row
	Checked   Color  `toml:"checked"`   // checked marks on MultiSelect
	Match     Color  `toml:"match"`     // matched runes on FuzzySelect
	Error     Color  `toml:"error"`     // validation error line
	Summary   Color  `toml:"summary"`   // confirmed-selection line
	Hint      Color  `toml:"hint"`      // paging indicators and help line
}

// SchemeDefault is the default color scheme: green prompt, cyan highlight.
var SchemeDefault = &ColorScheme{
	Name:      "default",
	Prompt:    Color{R: 0, G: 255, B: 0, Bold: true},
	Input:     Color{R: 255, G: 255, B: 255, Bold: true},
	Item:      Color{R: 200, G: 200, B: 200},
	Highlight: Color{R: 0, G: 255, B: 255, Bold: true},
	Checked:   Color{R: 0, G: 255, B: 0},
	Match:     Color{R: 255, G: 255, B: 0, Bold: true},
	Error:     Color{R: 255, G: 85, B: 85, Bold: true},
	Summary:   Color{R: 0, G: 255, B: 0},
	Hint:      Color{R: 128, G: 128, B: 128},
}

// SchemeDark is a softer palette for dark terminals.
var SchemeDark = &ColorScheme{
	Name:      "dark",
	Prompt:    Color{R: 102, G: 217, B: 239, Bold: true},
	Input:     Color{R: 248, G: 248, B: 242},
	Item:      Color{R: 189, G: 147, B: 249},
	Highlight: Color{R: 80, G: 250, B: 123, Bold: true},
	Checked:   Color{R: 80, G: 250, B: 123},
	Match:     Color{R: 255, G: 184, B: 108, Bold: true},
	Error:     Color{R: 255, G: 85, B: 85, Bold: true},
	Summary:   Color{R: 80, G: 250, B: 123},
	Hint:      Color{R: 98, G: 114, B: 164},
}

// SchemeLight is a palette for light terminals.
var SchemeLight = &ColorScheme{
	Name:      "light",
	Prompt:    Color{R: 0, G: 119, B: 187, Bold: true},
	Input:     Color{R: 36, G: 41, B: 46},
	Item:      Color{R: 88, G: 96, B: 105},
	Highlight: Color{R: 40, G: 167, B: 69, Bold: true},
	Checked:   Color{R: 40, G: 167, B: 69},
	Match:     Color{R: 215, G: 58, B: 73, Bold: true},
	Error:     Color{R: 203, G: 36, B: 49, Bold: true},
	Summary:   Color{R: 40, G: 167, B: 69},
	Hint:      Color{R: 149, G: 157, B: 165},
}

// EchoMode controls how typed characters are rendered on a line prompt.
type EchoMode int

const (
	// EchoNormal renders the typed text as-is.
	EchoNormal EchoMode = iota
	// EchoMask renders one mask character per typed rune.
	EchoMask
	// EchoNone suppresses the echo entirely.
	EchoNone
)

// Theme turns semantic prompt elements into styled text lines. All format
// methods are pure; the theme holds no prompt state.
type Theme struct {
	Scheme          *ColorScheme
	PromptIndicator string // leads the question line
	DoneIndicator   string // leads the summary line
	ErrorIndicator  string // leads the error line
	CursorIndicator string // marks the highlighted row
	CheckedBox      string
	UncheckedBox    string
	GrabbedMark     string // marks the grabbed row on Sort
	MaskRune        rune   // echo character in EchoMask mode
}

// NewTheme creates a theme over the given color scheme with the default
// indicator glyphs.
func NewTheme(scheme *ColorScheme) *Theme {
	if scheme == nil {
		scheme = SchemeDefault
	}
	return &Theme{
		Scheme:          scheme,
		PromptIndicator: "?",
		DoneIndicator:   "✔",
		ErrorIndicator:  "✘",
		CursorIndicator: "❯",
		CheckedBox:      "[x]",
		UncheckedBox:    "[ ]",
		GrabbedMark:     "≡",
		MaskRune:        '*',
	}
}

// DefaultTheme returns a theme over SchemeDefault.
func DefaultTheme() *Theme {
	return NewTheme(SchemeDefault)
}

// FormatPrompt renders the question line of a list prompt.
func (t *Theme) FormatPrompt(prompt string) string {
	return t.Scheme.Prompt.ToANSI() + t.PromptIndicator + Reset() + " " + prompt
}

// FormatInput renders the question line of a line-editing prompt, with the
// typed text echoed according to mode and an optional default hint.
func (t *Theme) FormatInput(prompt, def, input string, mode EchoMode) string {
	var b strings.Builder
	b.WriteString(t.inputPrefix(prompt, def))
	b.WriteString(t.Scheme.Input.ToANSI())
	b.WriteString(t.echo(input, mode))
	b.WriteString(Reset())
	return b.String()
}

// InputPrefixWidth reports the display width of everything left of the
// typed text on the input line, used to park the terminal cursor.
func (t *Theme) InputPrefixWidth(prompt, def string) int {
	return displayWidth(stripANSI(t.inputPrefix(prompt, def)))
}

func (t *Theme) inputPrefix(prompt, def string) string {
	var b strings.Builder
	b.WriteString(t.Scheme.Prompt.ToANSI())
	b.WriteString(t.PromptIndicator)
	b.WriteString(Reset())
	b.WriteString(" ")
	b.WriteString(prompt)
	if def != "" {
		b.WriteString(" ")
		b.WriteString(t.Scheme.Hint.ToANSI())
		b.WriteString("(" + def + ")")
		b.WriteString(Reset())
	}
	b.WriteString(": ")
	return b.String()
}

func (t *Theme) echo(input string, mode EchoMode) string {
	switch mode {
	case EchoMask:
		return strings.Repeat(string(t.MaskRune), len([]rune(input)))
	case EchoNone:
		return ""
	}
	return input
}

// FormatConfirm renders the question line of a Confirm prompt. The default
// answer, when present, is capitalized in the hint.
func (t *Theme) FormatConfirm(prompt string, def *bool) string {
	hint := "(y/n)"
	if def != nil {
		if *def {
			hint = "(Y/n)"
		} else {
			hint = "(y/N)"
		}
	}
	return t.FormatPrompt(prompt) + " " + t.Scheme.Hint.ToANSI() + hint + Reset() + " "
}

// FormatSelectItem renders one Select row.
func (t *Theme) FormatSelectItem(text string, highlighted bool) string {
	if highlighted {
		return t.Scheme.Highlight.ToANSI() + t.CursorIndicator + " " + text + Reset()
	}
	return "  " + t.Scheme.Item.ToANSI() + text + Reset()
}

// FormatMultiSelectItem renders one MultiSelect row with its checkbox.
func (t *Theme) FormatMultiSelectItem(text string, checked, highlighted bool) string {
	box := t.UncheckedBox
	boxColor := t.Scheme.Item
	if checked {
		box = t.CheckedBox
		boxColor = t.Scheme.Checked
	}
	cursor := "  "
	textColor := t.Scheme.Item
	if highlighted {
		cursor = t.Scheme.Highlight.ToANSI() + t.CursorIndicator + Reset() + " "
		textColor = t.Scheme.Highlight
	}
	return cursor + boxColor.ToANSI() + box + Reset() + " " + textColor.ToANSI() + text + Reset()
}

// FormatSortItem renders one Sort row; a grabbed row carries the grab mark.
func (t *Theme) FormatSortItem(text string, grabbed, highlighted bool) string {
	mark := " "
	if grabbed {
		mark = t.GrabbedMark
	}
	if highlighted {
		return t.Scheme.Highlight.ToANSI() + t.CursorIndicator + mark + " " + text + Reset()
	}
	return " " + mark + " " + t.Scheme.Item.ToANSI() + text + Reset()
}

// FormatFuzzyItem renders one FuzzySelect row, highlighting the rune
// positions that matched the query.
func (t *Theme) FormatFuzzyItem(text string, matched []int, highlighted bool) string {
	var b strings.Builder
	if highlighted {
		b.WriteString(t.Scheme.Highlight.ToANSI())
		b.WriteString(t.CursorIndicator)
		b.WriteString(Reset())
		b.WriteString(" ")
	} else {
		b.WriteString("  ")
	}
	t.writeMatchedText(&b, text, matched, highlighted)
	return b.String()
}

// FormatMultiFuzzyItem renders one MultiFuzzySelect row: checkbox first, then
// the item text with matched rune positions highlighted.
func (t *Theme) FormatMultiFuzzyItem(text string, matched []int, checked, highlighted bool) string {
	var b strings.Builder
	if highlighted {
		b.WriteString(t.Scheme.Highlight.ToANSI())
		b.WriteString(t.CursorIndicator)
		b.WriteString(Reset())
		b.WriteString(" ")
	} else {
		b.WriteString("  ")
	}
	box := t.UncheckedBox
	boxColor := t.Scheme.Item
	if checked {
		box = t.CheckedBox
		boxColor = t.Scheme.Checked
	}
	b.WriteString(boxColor.ToANSI())
	b.WriteString(box)
	b.WriteString(Reset())
	b.WriteString(" ")
	t.writeMatchedText(&b, text, matched, highlighted)
	return b.String()
}

func (t *Theme) writeMatchedText(b *strings.Builder, text string, matched []int, highlighted bool) {
	base := t.Scheme.Item
	if highlighted {
		base = t.Scheme.Highlight
	}

	pos := 0
	for i, r := range []rune(text) {
		if pos < len(matched) && matched[pos] == i {
			b.WriteString(t.Scheme.Match.ToANSI())
			b.WriteRune(r)
			b.WriteString(Reset())
			pos++
			continue
		}
		b.WriteString(base.ToANSI())
		b.WriteRune(r)
		b.WriteString(Reset())
	}
}

// FormatError renders a validation error line.
func (t *Theme) FormatError(msg string) string {
	return t.Scheme.Error.ToANSI() + t.ErrorIndicator + " " + msg + Reset()
}

// FormatSummary renders the selection summary that replaces the prompt
// region once the user confirms.
func (t *Theme) FormatSummary(prompt, value string) string {
	s := t.Scheme.Summary.ToANSI() + t.DoneIndicator + Reset() + " " + prompt
	if value != "" {
		s += " " + t.Scheme.Hint.ToANSI() + "· " + Reset() + value
	}
	return s
}

// FormatMore renders the scroll indicator shown when the list continues
// beyond the visible window.
func (t *Theme) FormatMore(above bool) string {
	arrow := "↓ more"
	if above {
		arrow = "↑ more"
	}
	return "  " + t.Scheme.Hint.ToANSI() + arrow + Reset()
}

// FormatHelp renders the key legend line shown when help is enabled.
func (t *Theme) FormatHelp(text string) string {
	return t.Scheme.Hint.ToANSI() + text + Reset()
}

package dialog

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// LoadColorScheme reads a color scheme from a TOML file. The file mirrors
// the ColorScheme fields:
//
//	name = "midnight"
//
//	[prompt]
//	r = 102
//	g = 217
//	b = 239
//	bold = true
//
//	[highlight]
//	r = 80
//	g = 250
//	b = 123
//
// Elements left out of the file keep the zero color (black, not bold), so a
// scheme file usually starts from a copy of a built-in scheme.
func LoadColorScheme(path string) (*ColorScheme, error) {
	var scheme ColorScheme
	if _, err := toml.DecodeFile(path, &scheme); err != nil {
		return nil, fmt.Errorf("failed to load color scheme: %w", err)
	}
	if scheme.Name == "" {
		return nil, fmt.Errorf("color scheme %s: missing name", path)
	}
	return &scheme, nil
}

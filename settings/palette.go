package settings

import (
	_ "embed"
	"strings"
)

// rawPalette is the bundled color-name resource, one name per line.
//
//go:embed data/colors.u8
var rawPalette string

// Palette returns the color names available for highlight styling, in
// resource order.
func Palette() []string {
	lines := strings.Split(strings.ReplaceAll(rawPalette, "\r\n", "\n"), "\n")
	colors := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			colors = append(colors, line)
		}
	}
	return colors
}

// InPalette reports whether name is one of the bundled colors.
func InPalette(name string) bool {
	for _, color := range Palette() {
		if color == name {
			return true
		}
	}
	return false
}

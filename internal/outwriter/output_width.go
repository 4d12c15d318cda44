package outwriter

import (
	"os"

	"golang.org/x/term"
)

// maxFieldWidth caps free-text table columns based on terminal width so a
// long CPU or RAM description does not wrap the whole row.
func maxFieldWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		// Conservative default for narrow terminals and CI
		width = 80
	}

	switch {
	case width < 100:
		return 24
	case width < 140:
		return 40
	default:
		return 60
	}
}

// truncateField shortens a value to max runes with an ellipsis marker.
func truncateField(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

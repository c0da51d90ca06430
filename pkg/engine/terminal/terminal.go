package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24

	// HUDLines is the number of rows reserved below the map for status and messages
	HUDLines = 8
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// MapViewport returns how many map cells fit on screen once the HUD is reserved.
// Each cell is drawn as a single character.
func MapViewport() (cols, rows int) {
	return viewportFor(GetSize())
}

func viewportFor(width, height int) (cols, rows int) {
	cols = width
	rows = height - HUDLines
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return cols, rows
}

// IsInteractive reports whether stdin is a terminal that can be put in raw mode
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

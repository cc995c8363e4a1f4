package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
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

// Viewport fits a grid into a terminal of the given size.
// reservedRows are lines taken by text around the grid; cellWidth is the
// number of columns one grid cell needs. Both results are odd so the grid
// has a centre cell, and never below minRows/minCols.
func Viewport(width, height, reservedRows, cellWidth, minRows, minCols int) (rows, cols int) {
	cols = width / cellWidth
	rows = height - reservedRows

	if cols < minCols {
		cols = minCols
	}
	if rows < minRows {
		rows = minRows
	}
	return oddAtLeast(rows, minRows), oddAtLeast(cols, minCols)
}

// oddAtLeast rounds an even n to an odd neighbour no smaller than floor
func oddAtLeast(n, floor int) int {
	if n%2 != 0 {
		return n
	}
	if n-1 < floor {
		return n + 1
	}
	return n - 1
}

// Clear moves the cursor home and erases the screen
func Clear(w io.Writer) {
	io.WriteString(w, "\x1b[H\x1b[2J")
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

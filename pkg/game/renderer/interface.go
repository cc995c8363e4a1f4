package renderer

import (
	"wormholes/pkg/game/state"
)

// TextStyle names the roles a text frontend can colour
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleAction
	StyleActionShort
	StyleDenied
	StyleSubtle
	StyleDirection
	StyleHead
	StyleBody
	StyleTail
)

// Renderer defines the interface for game rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame:
	// the worm, the status bar, messages and the input prompt
	RenderFrame(s *state.Session)

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// ShowMessage displays a message to the user outside the frame
	ShowMessage(msg string)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// ApplyMarkup formats a message with the current renderer's markup.
// Without a renderer the markup is reduced to plain text.
func ApplyMarkup(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return PlainMarkup(msg, args...)
}

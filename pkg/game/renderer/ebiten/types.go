// Package ebiten provides an Ebiten-based graphical renderer for Wormholes.
package ebiten

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"

	engineinput "wormholes/pkg/engine/input"
	"wormholes/pkg/game/renderer"
	"wormholes/pkg/game/state"
)

// renderSnapshot holds a consistent copy of session state for Draw
type renderSnapshot struct {
	valid    bool
	frame    renderer.Frame
	status   string
	prompt   string
	notices  []string
	messages []string
}

// StepFunc applies one intent to the session
type StepFunc func(s *state.Session, intent engineinput.Intent)

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	// Grid to world conversion
	scale renderer.Scale

	// Font source and cached face for HUD text
	monoFontSource *text.GoTextFaceSource
	monoFace       *text.GoTextFace

	// Game state driven from Update
	session *state.Session
	step    StepFunc

	// Optional scripted input, polled every stepFrames frames
	script     engineinput.Source
	stepFrames int
	frames     int

	// Cached render snapshot for consistent drawing
	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex

	// Messages shown by ShowMessage outside the session log
	notices []string

	log *zap.Logger
}

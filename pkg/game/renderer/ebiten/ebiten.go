package ebiten

import (
	"errors"
	"fmt"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"
	"go.uber.org/zap"

	engineinput "wormholes/pkg/engine/input"
	"wormholes/pkg/game/renderer"
	"wormholes/pkg/game/state"
)

// Options configures the window renderer
type Options struct {
	WindowWidth  int
	WindowHeight int
	Scale        renderer.Scale

	// Script, when set, supplies a move every StepFrames frames while no key is pressed
	Script     engineinput.Source
	StepFrames int

	Log *zap.Logger
}

// New creates a window renderer that steps s with step on Ebiten's update loop
func New(s *state.Session, step StepFunc, opts Options) *EbitenRenderer {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	stepFrames := opts.StepFrames
	if stepFrames <= 0 {
		stepFrames = 1
	}
	return &EbitenRenderer{
		windowWidth:  opts.WindowWidth,
		windowHeight: opts.WindowHeight,
		scale:        opts.Scale,
		session:      s,
		step:         step,
		script:       opts.Script,
		stepFrames:   stepFrames,
		log:          log,
	}
}

// Init sets up the window and loads fonts
func (e *EbitenRenderer) Init() {
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("TITLE"))
	if err := e.loadFonts(); err != nil {
		// HUD text is skipped without a font; the worm still draws
		e.log.Warn("font unavailable", zap.Error(err))
	}
}

// Clear is a no-op: Draw repaints the whole screen every frame
func (e *EbitenRenderer) Clear() {}

// FormatText formats a message and strips the markup
func (e *EbitenRenderer) FormatText(msg string, args ...any) string {
	return renderer.PlainMarkup(msg, args...)
}

// ShowMessage displays a notice above the message log from the next frame on
func (e *EbitenRenderer) ShowMessage(msg string) {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()
	const maxNotices = 3
	e.notices = append(e.notices, msg)
	if len(e.notices) > maxNotices {
		e.notices = e.notices[len(e.notices)-maxNotices:]
	}
	e.snapshot.notices = slices.Clone(e.notices)
}

// Layout returns the game's logical screen size
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.windowWidth, e.windowHeight
}

// Run starts the Ebiten game loop and blocks until the window closes or the player quits
func (e *EbitenRenderer) Run() error {
	e.RenderFrame(e.session)
	e.log.Info("window opening", zap.Int("width", e.windowWidth), zap.Int("height", e.windowHeight))
	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

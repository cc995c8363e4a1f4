package gameplay

import (
	"errors"
	"fmt"
	"io"

	"github.com/leonelquinteros/gotext"
	"go.uber.org/zap"

	engineinput "wormholes/pkg/engine/input"
	"wormholes/pkg/game/config"
	"wormholes/pkg/game/renderer"
	"wormholes/pkg/game/state"
)

// BuildSession creates a new session with the starting worm from the config
func BuildSession(cfg *config.Config, log *zap.Logger) (*state.Session, error) {
	w, err := cfg.NewWorm()
	if err != nil {
		return nil, fmt.Errorf("build worm: %w", err)
	}

	s := state.NewSession(w, log)
	s.Log.Info("session started",
		zap.Stringer("worm", w),
		zap.Stringer("policy", w.Policy()),
	)
	logMessage(s, gotext.Get("WELCOME"))
	return s, nil
}

// Run renders and steps the session until the player quits or the source runs dry.
// An exhausted source (io.EOF) ends the game normally.
func Run(s *state.Session, r renderer.Renderer, src engineinput.Source) error {
	for !s.Quit {
		r.Clear()
		r.RenderFrame(s)

		intent, err := engineinput.NextIntent(src)
		if errors.Is(err, io.EOF) {
			s.Log.Info("input finished", zap.Int("tick", s.Tick))
			r.ShowMessage(gotext.Get("INPUT_FINISHED"))
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		ProcessIntent(s, intent)
	}

	r.Clear()
	r.RenderFrame(s)
	return nil
}

package gameplay

import (
	"errors"

	"github.com/leonelquinteros/gotext"
	"go.uber.org/zap"

	"wormholes/pkg/engine/spatial"
	"wormholes/pkg/game/renderer"
	"wormholes/pkg/game/state"
	"wormholes/pkg/game/worm"
)

// Messages that take arguments, used when the locale lacks them
const (
	neckBlockedFallback    = "The worm cannot crawl DIR{%s} into its own neck."
	grownFallback          = "The worm grows to %d segments."
	growthResolvedFallback = "A tail sprouts to the DIR{%s}."
)

// MoveWorm crawls the worm one cell according to its movement policy
func MoveWorm(s *state.Session, d spatial.Direction) {
	err := s.Worm.Move(d)

	var invalid *worm.InvalidDirectionError
	if errors.As(err, &invalid) {
		s.Log.Debug("move rejected", zap.Stringer("direction", d), zap.Error(err))
		logMessage(s, renderer.Translate("NECK_BLOCKED", neckBlockedFallback), d.String())
		return
	}
	if err != nil {
		s.Log.Error("move failed", zap.Stringer("direction", d), zap.Error(err))
		return
	}

	advance(s)
	s.Log.Debug("worm moved",
		zap.Stringer("direction", d),
		zap.Stringer("head", s.Worm.HeadPosition()),
		zap.Int("tick", s.Tick),
	)
}

// Lengthen grows the worm's tail. A tailless worm has no direction to grow in,
// so the pending growth is stored until the next move intent resolves it.
func Lengthen(s *state.Session) {
	err := s.Worm.TryLengthen()

	var tailless *worm.LengthenTaillessError
	if errors.As(err, &tailless) {
		s.PendingGrowth = tailless
		s.Log.Debug("lengthen needs a direction", zap.Int("tick", s.Tick))
		logMessage(s, gotext.Get("GROWTH_NEEDS_DIRECTION"))
		return
	}
	if err != nil {
		s.Log.Error("lengthen failed", zap.Error(err))
		return
	}

	advance(s)
	s.Log.Debug("worm lengthened", zap.Int("segments", s.Worm.NumSegments()), zap.Int("tick", s.Tick))
	logMessage(s, renderer.Translate("GROWN", grownFallback), s.Worm.NumSegments())
}

// ResolveGrowth completes a pending growth in direction d
func ResolveGrowth(s *state.Session, d spatial.Direction) {
	pending := s.PendingGrowth
	s.PendingGrowth = nil

	if err := pending.Resolve(d); err != nil {
		// the worm changed since the growth was requested
		s.Log.Debug("growth resolution rejected", zap.Stringer("direction", d), zap.Error(err))
		logMessage(s, gotext.Get("GROWTH_STALE"))
		return
	}

	advance(s)
	s.Log.Debug("growth resolved", zap.Stringer("direction", d), zap.Int("tick", s.Tick))
	logMessage(s, renderer.Translate("GROWTH_RESOLVED", growthResolvedFallback), d.String())
}

// CancelGrowth drops a pending growth. With nothing pending it clears the message log.
func CancelGrowth(s *state.Session) {
	if s.PendingGrowth == nil {
		s.ClearMessages()
		return
	}
	s.PendingGrowth = nil
	logMessage(s, gotext.Get("GROWTH_CANCELLED"))
}

func advance(s *state.Session) {
	s.Tick++
}

// logMessage adds a formatted message to the session's message log
func logMessage(s *state.Session, msg string, a ...any) {
	formatted := renderer.ApplyMarkup(msg, a...)
	s.AddMessage(formatted)
}

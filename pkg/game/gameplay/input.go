// Package gameplay provides the game step: turning player intents into worm moves.
package gameplay

import (
	"github.com/leonelquinteros/gotext"

	engineinput "wormholes/pkg/engine/input"
	"wormholes/pkg/game/state"
)

// ProcessIntent handles a high-level input intent from the tiered input system.
// It is the only place the session's worm is mutated.
func ProcessIntent(s *state.Session, intent engineinput.Intent) {
	switch intent.Action {
	case engineinput.ActionNone:
		return

	case engineinput.ActionQuit:
		s.Quit = true
		logMessage(s, gotext.Get("GOODBYE"))
		return

	case engineinput.ActionCancel:
		CancelGrowth(s)
		return

	case engineinput.ActionLengthen:
		Lengthen(s)
		return
	}

	if d, ok := intent.Direction(); ok {
		if s.AwaitingDirection() {
			ResolveGrowth(s, d)
			return
		}
		MoveWorm(s, d)
		return
	}

	logMessage(s, gotext.Get("UNKNOWN_COMMAND"))
}

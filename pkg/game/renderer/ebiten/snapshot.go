package ebiten

import (
	"fmt"
	"slices"

	"github.com/leonelquinteros/gotext"

	"wormholes/pkg/game/renderer"
	"wormholes/pkg/game/state"
)

// statusLine summarises the session for the HUD
func statusLine(s *state.Session) string {
	return fmt.Sprintf("%s %s  %s %d  %s %d  %s %s",
		gotext.Get("STATUS_HEAD"), s.Worm.HeadPosition(),
		gotext.Get("STATUS_SEGMENTS"), s.Worm.NumSegments(),
		gotext.Get("STATUS_TICK"), s.Tick,
		gotext.Get("STATUS_POLICY"), s.Worm.Policy(),
	)
}

// RenderFrame captures a snapshot of the session for the next Draw call
func (e *EbitenRenderer) RenderFrame(s *state.Session) {
	snap := renderSnapshot{
		valid:    true,
		frame:    renderer.Snapshot(s.Worm),
		status:   statusLine(s),
		messages: slices.Clone(s.Messages),
	}
	if s.AwaitingDirection() {
		snap.prompt = gotext.Get("AWAITING_DIRECTION")
	}

	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()
	snap.notices = slices.Clone(e.notices)
	e.snapshot = snap
}

// currentSnapshot returns the latest snapshot
func (e *EbitenRenderer) currentSnapshot() renderSnapshot {
	e.snapshotMutex.RLock()
	defer e.snapshotMutex.RUnlock()
	return e.snapshot
}

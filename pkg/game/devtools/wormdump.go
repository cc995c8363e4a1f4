// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"wormholes/pkg/engine/spatial"
	"wormholes/pkg/game/renderer"
	"wormholes/pkg/game/state"
	"wormholes/pkg/game/worm"
)

// cellSymbol returns the single-character symbol for the pieces sharing one cell
func cellSymbol(pieces []renderer.Piece) rune {
	switch {
	case len(pieces) == 0:
		return '.'
	case pieces[0].Role == renderer.RoleHead:
		return '@'
	case len(pieces) > 1:
		return '+'
	case pieces[0].Role == renderer.RoleTail:
		return 'T'
	default:
		return '*'
	}
}

// writeLayer writes one z level, north at the top
func writeLayer(w io.Writer, frame renderer.Frame, byCell map[spatial.Vector3i][]renderer.Piece, z int) {
	for y := frame.Max.Y; y >= frame.Min.Y; y-- {
		for x := frame.Min.X; x <= frame.Max.X; x++ {
			fmt.Fprintf(w, "%c", cellSymbol(byCell[spatial.Vec(x, y, z)]))
		}
		fmt.Fprintln(w)
	}
}

// DumpWorm writes a debug dump of the session's worm: metadata, legend,
// one map per z level and the segment list.
func DumpWorm(w io.Writer, s *state.Session) error {
	if s.Worm == nil {
		return fmt.Errorf("no worm")
	}

	frame := renderer.Snapshot(s.Worm)
	byCell := make(map[spatial.Vector3i][]renderer.Piece, len(frame.Pieces))
	for _, p := range frame.Pieces {
		byCell[p.Cell] = append(byCell[p.Cell], p)
	}

	// --- Metadata ---
	fmt.Fprintln(w, "=== WORM DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "worm: %s\n", s.Worm)
	fmt.Fprintf(w, "head: %s\n", s.Worm.HeadPosition())
	fmt.Fprintf(w, "positions: %d\n", s.Worm.NumSegments())
	fmt.Fprintf(w, "tailless: %v\n", s.Worm.IsTailless())
	fmt.Fprintf(w, "policy: %s\n", s.Worm.Policy())
	fmt.Fprintf(w, "tick: %d\n", s.Tick)
	fmt.Fprintf(w, "awaiting_direction: %v\n", s.AwaitingDirection())
	fmt.Fprintf(w, "bounds: %s .. %s\n", frame.Min, frame.Max)
	fmt.Fprintf(w, "overlaps: %d\n", frame.Overlaps)
	fmt.Fprintf(w, "coordinate_system: x east, y north, z up\n")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, ". = empty  @ = head  * = body  T = tail  + = body crossing itself")
	fmt.Fprintln(w, "")

	for z := frame.Max.Z; z >= frame.Min.Z; z-- {
		fmt.Fprintf(w, "--- Level z=%d ---\n", z)
		writeLayer(w, frame, byCell, z)
		fmt.Fprintln(w, "")
	}

	fmt.Fprintln(w, "--- Segments (head to tail) ---")
	dirs := s.Worm.Directions()
	for i, p := range frame.Pieces {
		if i < len(dirs) {
			fmt.Fprintf(w, "  %d: %s next: %s (%c)\n", p.Index, p.Cell, dirs[i], worm.Symbol(dirs[i]))
			continue
		}
		fmt.Fprintf(w, "  %d: %s\n", p.Index, p.Cell)
	}
	return nil
}

// DumpWormToFile writes DumpWorm's output to filename and returns its absolute path
func DumpWormToFile(s *state.Session, filename string) (string, error) {
	absPath, err := filepath.Abs(filename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create dump: %w", err)
	}
	defer f.Close()

	if err := DumpWorm(f, s); err != nil {
		return "", err
	}
	return absPath, nil
}

package worm

import (
	"errors"
	"fmt"

	"wormholes/pkg/engine/spatial"
)

var (
	// ErrEmptyChain is returned when a segment chain is built from no directions
	ErrEmptyChain = errors.New("worm: segment chain needs at least one direction")

	// ErrStaleResolution is returned when a LengthenTaillessError is resolved
	// after the worm it came from has already changed
	ErrStaleResolution = errors.New("worm: lengthen resolution no longer matches the worm")
)

// LengthenTaillessError is returned by TryLengthen on a worm without a tail.
// The tail has no direction to continue in, so the caller must pick one and
// call Resolve.
type LengthenTaillessError struct {
	worm     *Worm
	revision uint64
}

func (e *LengthenTaillessError) Error() string {
	return "worm: missing tail to lengthen, need direction"
}

// Resolve completes the lengthen by growing a one-segment tail in direction d.
// It fails with ErrStaleResolution if the worm was changed after the error was produced.
func (e *LengthenTaillessError) Resolve(d spatial.Direction) error {
	w := e.worm
	if w == nil || w.revision != e.revision || !w.IsTailless() {
		return ErrStaleResolution
	}
	segments, err := NewSegments(d)
	if err != nil {
		return err
	}
	w.segments = segments
	w.revision++
	return nil
}

// InvalidDirectionError is returned by TryCrawl when the requested direction
// leads straight back into the worm's own neck
type InvalidDirectionError struct {
	Direction spatial.Direction
}

func (e *InvalidDirectionError) Error() string {
	return fmt.Sprintf("worm: cannot crawl %v into its own neck", e.Direction)
}

// ParseError reports a character outside the chain notation
type ParseError struct {
	Char   rune
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("worm: invalid character: '%c' at offset %d", e.Char, e.Offset)
}

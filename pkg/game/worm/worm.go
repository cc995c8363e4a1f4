// Package worm models a worm: a head cell followed by a chain of body
// segments that trails it through the grid.
package worm

import (
	"fmt"
	"iter"
	"slices"

	"wormholes/pkg/engine/spatial"
)

// MovementPolicy decides what happens when a worm is told to crawl into its own neck
type MovementPolicy int

// Movement policies
const (
	// AutoReverse backs the worm up, sliding the whole body one cell tailward
	AutoReverse MovementPolicy = iota
	// RejectNeck refuses the move and leaves the worm unchanged
	RejectNeck
)

// String returns the config name of the policy
func (p MovementPolicy) String() string {
	switch p {
	case AutoReverse:
		return "auto_reverse"
	case RejectNeck:
		return "reject_neck"
	default:
		return "unknown"
	}
}

// ParsePolicy converts a config name into a MovementPolicy
func ParsePolicy(name string) (MovementPolicy, error) {
	switch name {
	case "auto_reverse", "":
		return AutoReverse, nil
	case "reject_neck":
		return RejectNeck, nil
	default:
		return AutoReverse, fmt.Errorf("unknown movement policy %q", name)
	}
}

// Worm is a head position plus an optional chain of segments.
// A nil segments chain means the worm is just a head.
type Worm struct {
	head     spatial.Vector3i
	segments *Segments
	policy   MovementPolicy

	// revision changes on every mutation so pending lengthen errors can detect staleness
	revision uint64
}

// Option configures a Worm at construction time
type Option func(*Worm)

// WithPolicy selects how Move handles a crawl into the neck
func WithPolicy(p MovementPolicy) Option {
	return func(w *Worm) {
		w.policy = p
	}
}

// New creates a worm from a head position and segment directions ordered head to tail.
// An empty dirs slice produces a tailless worm.
func New(head spatial.Vector3i, dirs []spatial.Direction, opts ...Option) *Worm {
	w := &Worm{head: head}
	for _, opt := range opts {
		opt(w)
	}
	if len(dirs) > 0 {
		// NewSegments only fails on empty input
		w.segments, _ = NewSegments(dirs...)
	}
	return w
}

// IsTailless reports whether the worm is just a head with no segments
func (w *Worm) IsTailless() bool {
	return w.segments == nil
}

// HeadPosition returns the grid position of the head.
// Any other position requires SegmentPositions.
func (w *Worm) HeadPosition() spatial.Vector3i {
	return w.head
}

// NumSegments returns the number of positions yielded by SegmentPositions
func (w *Worm) NumSegments() int {
	if w.segments == nil {
		return 1
	}
	return w.segments.Len() + 1
}

// Policy returns the movement policy chosen at construction
func (w *Worm) Policy() MovementPolicy {
	return w.policy
}

// Directions returns a copy of the segment directions from head to tail
func (w *Worm) Directions() []spatial.Direction {
	if w.segments == nil {
		return nil
	}
	return w.segments.Directions()
}

// NeckDirection returns the direction from the head to its neck, if the worm has one
func (w *Worm) NeckDirection() (spatial.Direction, bool) {
	if w.segments == nil {
		return 0, false
	}
	return w.segments.HeadDirection(), true
}

// TryLengthen grows the tail by one segment, continuing in the tail's direction.
// It does not know about level geometry. On a tailless worm it returns a
// *LengthenTaillessError whose Resolve supplies the missing direction:
//
//	if err := w.TryLengthen(); err != nil {
//		var tailless *LengthenTaillessError
//		if errors.As(err, &tailless) {
//			tailless.Resolve(promptDirection())
//		}
//	}
func (w *Worm) TryLengthen() error {
	if w.segments == nil {
		return &LengthenTaillessError{worm: w, revision: w.revision}
	}
	w.segments.PushTail(w.segments.TailDirection())
	w.revision++
	return nil
}

// Crawl pulls the head one cell in direction d without changing the worm's length.
// Crawling into the neck backs the worm up instead. It does not know about level geometry.
func (w *Worm) Crawl(d spatial.Direction) {
	w.head = w.head.Step(d)
	w.revision++
	if w.segments == nil {
		return
	}

	segments := w.segments
	newHead := d.Opposite()
	if segments.HeadDirection().Opposite() != newHead {
		segments.PushHead(newHead)
		w.segments = segments.PopTail().Remaining
		return
	}

	// reversing
	segments.PushTail(segments.TailDirection())
	w.segments = segments.PopHead().Remaining
}

// TryCrawl is Crawl, except that crawling into the neck fails with an
// *InvalidDirectionError and leaves the worm untouched
func (w *Worm) TryCrawl(d spatial.Direction) error {
	if neck, ok := w.NeckDirection(); ok && neck == d {
		return &InvalidDirectionError{Direction: d}
	}
	w.Crawl(d)
	return nil
}

// Move crawls in direction d according to the worm's movement policy
func (w *Worm) Move(d spatial.Direction) error {
	if w.policy == RejectNeck {
		return w.TryCrawl(d)
	}
	w.Crawl(d)
	return nil
}

// SegmentPositions returns an iterator over the grid position of every
// segment, head first. Positions are recomputed on each iteration.
func (w *Worm) SegmentPositions() iter.Seq[spatial.Vector3i] {
	return func(yield func(spatial.Vector3i) bool) {
		pos := w.head
		if !yield(pos) {
			return
		}
		if w.segments == nil {
			return
		}
		for d := range w.segments.All() {
			pos = pos.Step(d)
			if !yield(pos) {
				return
			}
		}
	}
}

// Positions returns the positions yielded by SegmentPositions as a slice
func (w *Worm) Positions() []spatial.Vector3i {
	return slices.Collect(w.SegmentPositions())
}

// String returns the head position followed by the chain notation
func (w *Worm) String() string {
	if w.segments == nil {
		return w.head.String()
	}
	return w.head.String() + " " + w.segments.String()
}

package worm

import (
	"iter"
	"strings"

	"github.com/zyedidia/generic/list"

	"wormholes/pkg/engine/spatial"
)

// Segments is the body of a worm, stored as directions relative to the head.
//
// Entry i is the direction, seen from segment i-1 (or the head for i == 0),
// in which segment i lies. A Segments value is never empty: a worm without a
// body has no Segments at all.
type Segments struct {
	dirs *list.List[spatial.Direction]
	n    int
}

// PopResult is returned by PopHead and PopTail.
// Remaining is nil when the pop removed the last segment.
type PopResult struct {
	Removed   spatial.Direction
	Remaining *Segments
}

// NewSegments builds a chain from directions ordered head to tail
func NewSegments(dirs ...spatial.Direction) (*Segments, error) {
	if len(dirs) == 0 {
		return nil, ErrEmptyChain
	}
	s := &Segments{dirs: list.New[spatial.Direction]()}
	for _, d := range dirs {
		s.PushTail(d)
	}
	return s, nil
}

// Len returns the number of segments, not counting the head
func (s *Segments) Len() int {
	return s.n
}

// HeadDirection returns the direction of the segment closest to the head (the neck),
// given from the head's perspective.
func (s *Segments) HeadDirection() spatial.Direction {
	if s.dirs.Front == nil {
		panic("worm: empty segment chain")
	}
	return s.dirs.Front.Value
}

// TailDirection returns the direction of the last segment,
// given from the perspective of the segment before it.
func (s *Segments) TailDirection() spatial.Direction {
	if s.dirs.Back == nil {
		panic("worm: empty segment chain")
	}
	return s.dirs.Back.Value
}

// PushHead adds a new segment next to the head
func (s *Segments) PushHead(d spatial.Direction) {
	s.dirs.PushFront(d)
	s.n++
}

// PushTail adds a new segment after the current tail
func (s *Segments) PushTail(d spatial.Direction) {
	s.dirs.PushBack(d)
	s.n++
}

// PopHead removes the segment next to the head.
// The receiver must not be used afterwards; continue with the result's Remaining.
func (s *Segments) PopHead() PopResult {
	front := s.dirs.Front
	if front == nil {
		panic("worm: empty segment chain")
	}
	s.dirs.Remove(front)
	s.n--
	return s.popResult(front.Value)
}

// PopTail removes the last segment.
// The receiver must not be used afterwards; continue with the result's Remaining.
func (s *Segments) PopTail() PopResult {
	back := s.dirs.Back
	if back == nil {
		panic("worm: empty segment chain")
	}
	s.dirs.Remove(back)
	s.n--
	return s.popResult(back.Value)
}

func (s *Segments) popResult(removed spatial.Direction) PopResult {
	if s.n == 0 {
		return PopResult{Removed: removed}
	}
	return PopResult{Removed: removed, Remaining: s}
}

// All returns an iterator over the directions from head to tail
func (s *Segments) All() iter.Seq[spatial.Direction] {
	return func(yield func(spatial.Direction) bool) {
		for n := s.dirs.Front; n != nil; n = n.Next {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Directions returns a copy of the directions from head to tail
func (s *Segments) Directions() []spatial.Direction {
	dirs := make([]spatial.Direction, 0, s.n)
	for d := range s.All() {
		dirs = append(dirs, d)
	}
	return dirs
}

// String returns the chain in the notation accepted by Parse
func (s *Segments) String() string {
	var b strings.Builder
	b.Grow(s.n)
	for d := range s.All() {
		b.WriteRune(Symbol(d))
	}
	return b.String()
}

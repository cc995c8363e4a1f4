package renderer

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"wormholes/pkg/engine/spatial"
	"wormholes/pkg/game/worm"
)

// Role tells a renderer which part of the worm a position belongs to
type Role int

const (
	RoleHead Role = iota
	RoleBody
	RoleTail
)

// Piece is one worm position ready to draw
type Piece struct {
	Index int
	Cell  spatial.Vector3i
	Role  Role

	// Growth is +1 for the head, -1 for the tail, 0 otherwise.
	// A tailless worm's single piece is both ends, so it gets 0.
	Growth int
}

// Frame is a read-only copy of a worm's layout taken between game steps
type Frame struct {
	Pieces   []Piece
	Occupied mapset.Set[spatial.Vector3i]

	// Overlaps counts pieces sitting in a cell already taken by a piece nearer the head
	Overlaps int

	// Min and Max bound every occupied cell
	Min, Max spatial.Vector3i
}

// Snapshot copies the worm's segment positions into a Frame
func Snapshot(w *worm.Worm) Frame {
	f := Frame{
		Pieces:   make([]Piece, 0, w.NumSegments()),
		Occupied: mapset.New[spatial.Vector3i](),
	}

	tail := w.NumSegments() - 1
	i := 0
	for pos := range w.SegmentPositions() {
		p := Piece{Index: i, Cell: pos, Role: RoleBody}
		switch {
		case i == 0:
			p.Role = RoleHead
		case i == tail:
			p.Role = RoleTail
		}
		if i == 0 {
			p.Growth++
		}
		if i == tail {
			p.Growth--
		}

		if f.Occupied.Has(pos) {
			f.Overlaps++
		}
		f.Occupied.Put(pos)

		if i == 0 {
			f.Min, f.Max = pos, pos
		} else {
			f.Min = spatial.Vec(min(f.Min.X, pos.X), min(f.Min.Y, pos.Y), min(f.Min.Z, pos.Z))
			f.Max = spatial.Vec(max(f.Max.X, pos.X), max(f.Max.Y, pos.Y), max(f.Max.Z, pos.Z))
		}

		f.Pieces = append(f.Pieces, p)
		i++
	}
	return f
}

// Head returns the head piece
func (f Frame) Head() Piece {
	return f.Pieces[0]
}

// WorldPos is a position in world space
type WorldPos struct {
	X, Y, Z float64
}

// Scale converts between grid cells and world space.
// It is configuration owned by the renderer; game state never sees it.
type Scale struct {
	CellSize float64
}

// CellToWorld returns the world position of a cell's centre
func (s Scale) CellToWorld(c spatial.Vector3i) WorldPos {
	return WorldPos{
		X: float64(c.X) * s.CellSize,
		Y: float64(c.Y) * s.CellSize,
		Z: float64(c.Z) * s.CellSize,
	}
}

// WorldToCell returns the cell nearest to a world position
func (s Scale) WorldToCell(p WorldPos) spatial.Vector3i {
	inv := 1 / s.CellSize
	return spatial.Vec(
		int(math.Round(p.X*inv)),
		int(math.Round(p.Y*inv)),
		int(math.Round(p.Z*inv)),
	)
}

// Radius returns the drawing radius of a piece: half a cell, nudged by its growth
func (s Scale) Radius(p Piece) float64 {
	return s.CellSize/2 + float64(p.Growth)
}

package worm

import "wormholes/pkg/engine/spatial"

// Chain notation: each character is one segment direction. The arrows point
// the way the body runs; 'x' points toward the viewer (Up) and 'o' away (Down).
var symbols = map[rune]spatial.Direction{
	'>': spatial.East,
	'<': spatial.West,
	'^': spatial.North,
	'v': spatial.South,
	'x': spatial.Up,
	'o': spatial.Down,
}

// Symbol returns the chain notation character for a direction
func Symbol(d spatial.Direction) rune {
	switch d {
	case spatial.East:
		return '>'
	case spatial.West:
		return '<'
	case spatial.North:
		return '^'
	case spatial.South:
		return 'v'
	case spatial.Up:
		return 'x'
	case spatial.Down:
		return 'o'
	default:
		return '?'
	}
}

// DirectionForSymbol returns the direction for a chain notation character
func DirectionForSymbol(r rune) (spatial.Direction, bool) {
	d, ok := symbols[r]
	return d, ok
}

// Parse builds a worm from a head position and a chain string.
// It fails on the first character outside the notation; no worm is returned then.
// An empty chain gives a tailless worm.
func Parse(head spatial.Vector3i, chain string, opts ...Option) (*Worm, error) {
	dirs := make([]spatial.Direction, 0, len(chain))
	for i, r := range chain {
		d, ok := DirectionForSymbol(r)
		if !ok {
			return nil, &ParseError{Char: r, Offset: i}
		}
		dirs = append(dirs, d)
	}
	return New(head, dirs, opts...), nil
}

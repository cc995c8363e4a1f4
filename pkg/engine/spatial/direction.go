package spatial

// Direction represents one of the six cardinal directions of the grid.
//
// Directions come in axis pairs whose values differ only in the lowest bit,
// so the opposite of a direction is a single XOR.
type Direction uint8

// Direction constants
const (
	East  Direction = iota // +X
	West                   // -X
	North                  // +Y
	South                  // -Y
	Up                     // +Z
	Down                   // -Z
)

// Axis identifies one of the three grid axes.
type Axis uint8

// Axis constants
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the string representation of an axis
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "Unknown"
	}
}

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{East, West, North, South, Up, Down}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case East:
		return "East"
	case West:
		return "West"
	case North:
		return "North"
	case South:
		return "South"
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the six cardinal directions
func (d Direction) IsValid() bool {
	return d <= Down
}

// Opposite returns the opposite direction.
// Invalid directions are returned unchanged.
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return d ^ 1
}

// Axis returns the axis the direction runs along
func (d Direction) Axis() Axis {
	return Axis(d >> 1)
}

// Sign returns +1 for directions pointing along the positive axis and -1 otherwise
func (d Direction) Sign() int {
	if d&1 == 0 {
		return 1
	}
	return -1
}

// Vector returns the unit vector for this direction.
// There is deliberately no inverse: an arbitrary vector has no canonical direction.
func (d Direction) Vector() Vector3i {
	if !d.IsValid() {
		return Vector3i{}
	}
	switch d.Axis() {
	case AxisX:
		return Vector3i{X: d.Sign()}
	case AxisY:
		return Vector3i{Y: d.Sign()}
	default:
		return Vector3i{Z: d.Sign()}
	}
}

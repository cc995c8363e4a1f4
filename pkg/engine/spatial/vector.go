// Package spatial provides integer grid vectors and the six cardinal directions.
package spatial

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned when a vector is divided by a zero component
var ErrDivisionByZero = errors.New("spatial: division by zero component")

// Vector3i is a position or offset on the 3D grid
type Vector3i struct {
	X, Y, Z int
}

// Vec creates a new Vector3i
func Vec(x, y, z int) Vector3i {
	return Vector3i{X: x, Y: y, Z: z}
}

// String returns the vector formatted as (x, y, z)
func (v Vector3i) String() string {
	return fmt.Sprintf("(%d, %d, %d)", v.X, v.Y, v.Z)
}

// Add returns the vector sum v + o
func (v Vector3i) Add(o Vector3i) Vector3i {
	return Vector3i{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the vector difference v - o
func (v Vector3i) Sub(o Vector3i) Vector3i {
	return Vector3i{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Mul returns the component-wise product v * o
func (v Vector3i) Mul(o Vector3i) Vector3i {
	return Vector3i{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Div returns the component-wise quotient v / o, truncated toward zero.
// It fails if any component of o is zero.
func (v Vector3i) Div(o Vector3i) (Vector3i, error) {
	if o.X == 0 || o.Y == 0 || o.Z == 0 {
		return Vector3i{}, fmt.Errorf("divide %v by %v: %w", v, o, ErrDivisionByZero)
	}
	return Vector3i{v.X / o.X, v.Y / o.Y, v.Z / o.Z}, nil
}

// Neg returns the vector with every component negated
func (v Vector3i) Neg() Vector3i {
	return Vector3i{-v.X, -v.Y, -v.Z}
}

// AddScalar adds s to every component
func (v Vector3i) AddScalar(s int) Vector3i {
	return Vector3i{v.X + s, v.Y + s, v.Z + s}
}

// SubScalar subtracts s from every component
func (v Vector3i) SubScalar(s int) Vector3i {
	return Vector3i{v.X - s, v.Y - s, v.Z - s}
}

// MulScalar multiplies every component by s
func (v Vector3i) MulScalar(s int) Vector3i {
	return Vector3i{v.X * s, v.Y * s, v.Z * s}
}

// DivScalar divides every component by s, truncated toward zero
func (v Vector3i) DivScalar(s int) (Vector3i, error) {
	if s == 0 {
		return Vector3i{}, fmt.Errorf("divide %v by 0: %w", v, ErrDivisionByZero)
	}
	return Vector3i{v.X / s, v.Y / s, v.Z / s}, nil
}

// Step returns the neighbouring position one cell away in direction d
func (v Vector3i) Step(d Direction) Vector3i {
	return v.Add(d.Vector())
}

// Back returns the neighbouring position one cell away against direction d
func (v Vector3i) Back(d Direction) Vector3i {
	return v.Add(d.Opposite().Vector())
}

// ManhattanDistance returns the grid distance between v and o
func (v Vector3i) ManhattanDistance(o Vector3i) int {
	d := v.Sub(o)
	return abs(d.X) + abs(d.Y) + abs(d.Z)
}

// abs returns the absolute value of an integer
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

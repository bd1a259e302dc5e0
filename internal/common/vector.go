package common

import (
	"fmt"
	"math"
)

// Vector represents a point or velocity in the 2D simulation plane.
// Velocities are expressed as fractions of the speed of light (c = 1).
type Vector struct {
	X float64
	Y float64
}

// NewVector creates a vector from its two components.
func NewVector(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the component-wise sum of two vectors.
func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Subtract returns the component-wise difference of two vectors.
func (v Vector) Subtract(other Vector) Vector {
	return Vector{X: v.X - other.X, Y: v.Y - other.Y}
}

// MultiplyByScalar multiplies the vector by a scalar value.
func (v Vector) MultiplyByScalar(scalar float64) Vector {
	return Vector{X: v.X * scalar, Y: v.Y * scalar}
}

// Dot calculates the dot product with another vector.
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

// NormSq calculates the squared Euclidean norm (magnitude squared) of the vector.
func (v Vector) NormSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Norm calculates the Euclidean norm (magnitude) of the vector.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.NormSq())
}

// IsZero reports whether both components are exactly zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Unit returns the unit vector in the direction of v.
// The zero vector is returned unchanged.
func (v Vector) Unit() Vector {
	n := v.Norm()
	if n == 0 {
		return Vector{}
	}
	return v.MultiplyByScalar(1 / n)
}

// Decompose splits the vector into components parallel and perpendicular
// to the given axis. For a zero axis the whole vector is perpendicular.
func (v Vector) Decompose(axis Vector) (parallel, perpendicular Vector) {
	if axis.IsZero() {
		return Vector{}, v
	}
	unit := axis.Unit()
	parallel = unit.MultiplyByScalar(v.Dot(unit))
	perpendicular = v.Subtract(parallel)
	return parallel, perpendicular
}

// Distance calculates the Euclidean distance between two vectors.
func (v Vector) Distance(other Vector) float64 {
	return v.Subtract(other).Norm()
}

// String returns a string representation of the vector with limited
// precision for cleaner output.
func (v Vector) String() string {
	return fmt.Sprintf("[%.3f, %.3f]", v.X, v.Y)
}

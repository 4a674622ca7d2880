// Package hawkmath provides the vector and angle primitives that the rest of
// the library builds on. All types in this package are immutable values;
// every operation returns a new value and never errors on degenerate input.
// Divisions by zero follow IEEE-754 and propagate Inf or NaN.
package hawkmath

import "math"

// A Vector2d is a point or displacement in 2D field space, in meters.
type Vector2d struct {
	X, Y float64
}

// Canonical vectors.
var (
	// Origin is the point (0, 0).
	Origin = Vector2d{0, 0}

	// UnitX is the unit vector along the positive X axis.
	UnitX = Vector2d{1, 0}

	// UnitY is the unit vector along the positive Y axis.
	UnitY = Vector2d{0, 1}
)

// Vec creates a vector from its components.
func Vec(x, y float64) Vector2d {
	return Vector2d{X: x, Y: y}
}

// Add returns the component-wise sum of v and other.
func (v Vector2d) Add(other Vector2d) Vector2d {
	return v.AddXY(other.X, other.Y)
}

// AddXY returns v shifted by (x, y).
func (v Vector2d) AddXY(x, y float64) Vector2d {
	return Vector2d{v.X + x, v.Y + y}
}

// Sub returns the component-wise difference of v and other.
func (v Vector2d) Sub(other Vector2d) Vector2d {
	return v.SubXY(other.X, other.Y)
}

// SubXY returns v shifted by (-x, -y).
func (v Vector2d) SubXY(x, y float64) Vector2d {
	return Vector2d{v.X - x, v.Y - y}
}

// Scale returns v multiplied by a scalar.
func (v Vector2d) Scale(scalar float64) Vector2d {
	return Vector2d{v.X * scalar, v.Y * scalar}
}

// Mul returns the component-wise product of v and other.
func (v Vector2d) Mul(other Vector2d) Vector2d {
	return Vector2d{v.X * other.X, v.Y * other.Y}
}

// Div returns v divided by a scalar. Dividing by zero produces non-finite
// components.
func (v Vector2d) Div(scalar float64) Vector2d {
	return Vector2d{v.X / scalar, v.Y / scalar}
}

// DivVec returns the component-wise quotient of v and other. A zero component
// in other produces a non-finite component in the result.
func (v Vector2d) DivVec(other Vector2d) Vector2d {
	return Vector2d{v.X / other.X, v.Y / other.Y}
}

// Pow scales v by magnitude^exponent, preserving direction. A zero-magnitude
// vector raised to a negative exponent propagates the non-finite scale
// factor.
func (v Vector2d) Pow(exponent float64) Vector2d {
	return v.Scale(math.Pow(v.Magnitude(), exponent))
}

// Dot returns the dot product of v and other.
func (v Vector2d) Dot(other Vector2d) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the scalar z-component of the 3D cross product of v and
// other.
func (v Vector2d) Cross(other Vector2d) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Rotate returns v rotated about the origin.
func (v Vector2d) Rotate(angle Angle) Vector2d {
	return Vector2d{
		v.X*angle.Cos() - v.Y*angle.Sin(),
		v.X*angle.Sin() + v.Y*angle.Cos(),
	}
}

// RotateAround returns v rotated about an arbitrary origin point.
func (v Vector2d) RotateAround(angle Angle, origin Vector2d) Vector2d {
	cos := angle.Cos()
	sin := angle.Sin()

	return Vector2d{
		(v.X-origin.X)*cos - (v.Y-origin.Y)*sin + origin.X,
		(v.X-origin.X)*sin + (v.Y-origin.Y)*cos + origin.Y,
	}
}

// Normalized returns the unit vector in the direction of v. A vector with
// magnitude at most 1e-9 normalizes to UnitX instead of producing a
// non-finite result.
func (v Vector2d) Normalized() Vector2d {
	magnitude := v.Magnitude()
	if magnitude <= 1e-9 {
		return UnitX
	}

	return v.Div(magnitude)
}

// Negate returns v with both components negated.
func (v Vector2d) Negate() Vector2d {
	return Vector2d{-v.X, -v.Y}
}

// Magnitude returns the Euclidean norm of v.
func (v Vector2d) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the Euclidean distance from v to the origin. It is the
// same quantity as Magnitude under the name the drive code historically used.
func (v Vector2d) Distance() float64 {
	return v.Magnitude()
}

// Angle returns the direction of v as an Angle. The zero vector points along
// the positive X axis.
func (v Vector2d) Angle() Angle {
	return FromVector(v.X, v.Y)
}

// Slice returns the components of v as a two-element slice, for callers that
// feed coordinates into array-based APIs.
func (v Vector2d) Slice() []float64 {
	return []float64{v.X, v.Y}
}

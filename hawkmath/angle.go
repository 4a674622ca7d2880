package hawkmath

import "math"

// Common angle measures in radians.
const (
	Pi        = math.Pi
	TwoPi     = 2 * math.Pi
	HalfPi    = math.Pi / 2
	QuarterPi = math.Pi / 4
)

const (
	toDegrees   = 180.0 / math.Pi
	toRadians   = math.Pi / 180.0
	toRotations = 1.0 / TwoPi
)

// An Angle is a planar orientation. It stores the radian measure together
// with its cosine and sine, computed once at construction so the three are
// always consistent. The zero value is the zero angle.
type Angle struct {
	radians  float64
	cos, sin float64
}

// NewAngle creates an Angle from a radian measure.
func NewAngle(radians float64) Angle {
	return Angle{
		radians: radians,
		cos:     math.Cos(radians),
		sin:     math.Sin(radians),
	}
}

// FromDegrees creates an Angle from a degree measure.
func FromDegrees(degrees float64) Angle {
	return NewAngle(degrees * toRadians)
}

// FromRotations creates an Angle from a number of full rotations.
func FromRotations(rotations float64) Angle {
	return NewAngle(rotations * TwoPi)
}

// FromVector creates the Angle of the vector (x, y) using the two-argument
// arctangent. The zero vector maps to the zero angle, the direction of the
// positive X axis.
func FromVector(x, y float64) Angle {
	return NewAngle(math.Atan2(y, x))
}

// FromSlope creates the Angle of a line with the given slope. The arctangent
// only covers (-pi/2, pi/2), so a direction and its opposite map to the same
// Angle. Callers that need directionality must use FromVector.
func FromSlope(slope float64) Angle {
	return NewAngle(math.Atan(slope))
}

// Radians returns the radian measure of a.
func (a Angle) Radians() float64 {
	return a.radians
}

// Degrees returns the degree measure of a.
func (a Angle) Degrees() float64 {
	return a.radians * toDegrees
}

// Rotations returns the measure of a in full rotations.
func (a Angle) Rotations() float64 {
	return a.radians * toRotations
}

// Cos returns the cosine of a, precomputed at construction.
func (a Angle) Cos() float64 {
	// An uninitialized Angle holds zeros for both cached terms, a pair no
	// real angle can produce. It reads as cos(0).
	if a.cos == 0 && a.sin == 0 {
		return 1
	}

	return a.cos
}

// Sin returns the sine of a, precomputed at construction.
func (a Angle) Sin() float64 {
	return a.sin
}

// RotateBy returns the angle a + other.
func (a Angle) RotateBy(other Angle) Angle {
	return NewAngle(a.radians + other.radians)
}

// Normalized returns a wrapped into (-pi, pi].
func (a Angle) Normalized() Angle {
	return NewAngle(Normalize(a.radians))
}

// Equal reports whether two angles have the same radian measure. The cosine
// and sine are derived values and do not participate.
func (a Angle) Equal(other Angle) bool {
	return a.radians == other.radians
}

// Normalize wraps a radian measure into (-pi, pi].
func Normalize(radians float64) float64 {
	wrapped := math.Mod(radians+Pi, TwoPi)
	if wrapped <= 0 {
		wrapped += TwoPi
	}

	return wrapped - Pi
}

package hawkmath

import "math"

// CopyPow raises the absolute value of base to the exponent power and
// restores the sign of the base. It is used to shape joystick inputs without
// flipping their direction. A zero base with a negative exponent produces a
// non-finite result.
func CopyPow(base, exponent float64) float64 {
	return math.Copysign(math.Pow(math.Abs(base), exponent), base)
}

// Continuous180To360 wraps a degree measure into [0, 360).
func Continuous180To360(degrees float64) float64 {
	wrapped := math.Mod(degrees, 360)
	if wrapped < 0 {
		wrapped += 360
	}

	return wrapped
}

// Convert360To180 wraps a degree measure into (-180, 180].
func Convert360To180(degrees float64) float64 {
	wrapped := math.Mod(degrees+180, 360)
	if wrapped <= 0 {
		wrapped += 360
	}

	return wrapped - 180
}

// Convert360To180Rad wraps a radian measure into (-pi, pi]. It is the same
// operation as Normalize under the name the swerve code historically used.
func Convert360To180Rad(radians float64) float64 {
	return Normalize(radians)
}

// RPSToMPS converts a wheel velocity in rotations per second to meters per
// second given the wheel circumference in meters.
func RPSToMPS(wheelRPS, circumference float64) float64 {
	return wheelRPS * circumference
}

// MPSToRPS converts a wheel velocity in meters per second to rotations per
// second given the wheel circumference in meters. A zero circumference is a
// caller error and produces a non-finite result.
func MPSToRPS(wheelMPS, circumference float64) float64 {
	return wheelMPS / circumference
}

// RotationsToMeters converts a wheel position in rotations to a distance in
// meters given the wheel circumference in meters.
func RotationsToMeters(wheelRotations, circumference float64) float64 {
	return wheelRotations * circumference
}

// MetersToRotations converts a wheel distance in meters to a position in
// rotations given the wheel circumference in meters. A zero circumference is
// a caller error and produces a non-finite result.
func MetersToRotations(wheelMeters, circumference float64) float64 {
	return wheelMeters / circumference
}

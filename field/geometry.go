package field

import "github.com/steelhawks/HawkLib-Reformed/hawkmath"

// A Vector3d is a point in 3D field space, in meters.
type Vector3d struct {
	X, Y, Z float64
}

// Vec2 projects v onto the field plane.
func (v Vector3d) Vec2() hawkmath.Vector2d {
	return hawkmath.Vec(v.X, v.Y)
}

// An Orientation3 is a 3D orientation expressed as roll, pitch, and yaw.
type Orientation3 struct {
	Roll, Pitch, Yaw hawkmath.Angle
}

// A Pose is a 2D position combined with a heading.
type Pose struct {
	Translation hawkmath.Vector2d
	Rotation    hawkmath.Angle
}

// A Pose3 is a 3D position combined with a 3D orientation.
type Pose3 struct {
	Translation Vector3d
	Orientation Orientation3
}

package field

import "github.com/steelhawks/HawkLib-Reformed/hawkmath"

// A Flipper mirrors blue-frame coordinates across the field center when the
// robot is assigned to the red alliance. The alliance source is consulted on
// every call; the field layout is fixed at construction.
//
// When no mirroring applies, every method returns its input unchanged.
type Flipper struct {
	source AllianceSource
	layout Layout
}

// NewFlipper creates a Flipper over an alliance source and a field layout.
func NewFlipper(source AllianceSource, layout Layout) *Flipper {
	return &Flipper{
		source: source,
		layout: layout,
	}
}

// Layout returns the field layout the Flipper mirrors across.
func (f *Flipper) Layout() Layout {
	return f.layout
}

// Alliance returns the current alliance assignment from the source.
func (f *Flipper) Alliance() Alliance {
	return f.source.Alliance()
}

// ShouldFlip reports whether coordinates must be mirrored. It is true only
// when the current alliance is known and red; an unknown alliance keeps the
// blue frame as a fail-safe.
func (f *Flipper) ShouldFlip() bool {
	return f.source.Alliance() == AllianceRed
}

// ApplyX mirrors an X coordinate across the field midline.
func (f *Flipper) ApplyX(x float64) float64 {
	if f.ShouldFlip() {
		return f.layout.Length - x
	}

	return x
}

// ApplyY mirrors a Y coordinate across the field centerline.
func (f *Flipper) ApplyY(y float64) float64 {
	if f.ShouldFlip() {
		return f.layout.Width - y
	}

	return y
}

// Apply mirrors a 2D position.
func (f *Flipper) Apply(v hawkmath.Vector2d) hawkmath.Vector2d {
	return hawkmath.Vec(f.ApplyX(v.X), f.ApplyY(v.Y))
}

// ApplyAngle mirrors a heading by adding a half turn. The result is wrapped
// into (-pi, pi].
func (f *Flipper) ApplyAngle(a hawkmath.Angle) hawkmath.Angle {
	if f.ShouldFlip() {
		return hawkmath.NewAngle(hawkmath.Normalize(a.Radians() + hawkmath.Pi))
	}

	return a
}

// Apply3 mirrors a 3D position. Mirroring is about the vertical centerline,
// so Z passes through unchanged.
func (f *Flipper) Apply3(v Vector3d) Vector3d {
	return Vector3d{
		X: f.ApplyX(v.X),
		Y: f.ApplyY(v.Y),
		Z: v.Z,
	}
}

// ApplyOrientation3 mirrors a 3D orientation by a half turn about the
// vertical axis only.
func (f *Flipper) ApplyOrientation3(o Orientation3) Orientation3 {
	if f.ShouldFlip() {
		return Orientation3{
			Roll:  o.Roll,
			Pitch: o.Pitch,
			Yaw:   hawkmath.NewAngle(hawkmath.Normalize(o.Yaw.Radians() + hawkmath.Pi)),
		}
	}

	return o
}

// ApplyPose mirrors a 2D pose, position and heading together.
func (f *Flipper) ApplyPose(p Pose) Pose {
	if f.ShouldFlip() {
		return Pose{
			Translation: f.Apply(p.Translation),
			Rotation:    f.ApplyAngle(p.Rotation),
		}
	}

	return p
}

// ApplyPose3 mirrors a 3D pose.
func (f *Flipper) ApplyPose3(p Pose3) Pose3 {
	if f.ShouldFlip() {
		return Pose3{
			Translation: f.Apply3(p.Translation),
			Orientation: f.ApplyOrientation3(p.Orientation),
		}
	}

	return p
}

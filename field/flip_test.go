package field

import (
	"github.com/steelhawks/HawkLib-Reformed/hawkmath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Flipper", func() {
	var (
		layout   Layout
		alliance Alliance
		flipper  *Flipper
	)

	BeforeEach(func() {
		layout = Layout{Length: 16.0, Width: 8.0}
		alliance = AllianceUnknown
		flipper = NewFlipper(
			AllianceFunc(func() Alliance { return alliance }), layout)
	})

	Context("when the alliance is unknown", func() {
		It("should not flip", func() {
			Expect(flipper.ShouldFlip()).To(BeFalse())
		})

		It("should leave every value unchanged", func() {
			pose := Pose{
				Translation: hawkmath.Vec(3, 2),
				Rotation:    hawkmath.NewAngle(0.3),
			}

			Expect(flipper.ApplyX(3)).To(Equal(3.0))
			Expect(flipper.ApplyY(2)).To(Equal(2.0))
			Expect(flipper.Apply(hawkmath.Vec(3, 2))).
				To(Equal(hawkmath.Vec(3, 2)))
			Expect(flipper.ApplyAngle(hawkmath.NewAngle(0.3))).
				To(Equal(hawkmath.NewAngle(0.3)))
			Expect(flipper.ApplyPose(pose)).To(Equal(pose))
		})
	})

	Context("when on the blue alliance", func() {
		BeforeEach(func() {
			alliance = AllianceBlue
		})

		It("should not flip", func() {
			Expect(flipper.ShouldFlip()).To(BeFalse())
			Expect(flipper.ApplyX(3)).To(Equal(3.0))
		})
	})

	Context("when on the red alliance", func() {
		BeforeEach(func() {
			alliance = AllianceRed
		})

		It("should flip", func() {
			Expect(flipper.ShouldFlip()).To(BeTrue())
		})

		It("should mirror coordinates across the field center", func() {
			Expect(flipper.ApplyX(3)).To(Equal(13.0))
			Expect(flipper.ApplyY(2)).To(Equal(6.0))
		})

		It("should return to the original coordinate when applied twice", func() {
			Expect(flipper.ApplyX(flipper.ApplyX(3))).To(Equal(3.0))
			Expect(flipper.ApplyY(flipper.ApplyY(2))).To(Equal(2.0))
		})

		It("should mirror a pose with a half-turn heading change", func() {
			pose := Pose{
				Translation: hawkmath.Vec(3, 2),
				Rotation:    hawkmath.NewAngle(0.3),
			}

			flipped := flipper.ApplyPose(pose)

			Expect(flipped.Translation.X).To(Equal(13.0))
			Expect(flipped.Translation.Y).To(Equal(6.0))
			Expect(flipped.Rotation.Radians()).To(
				BeNumerically("~", hawkmath.Normalize(0.3+hawkmath.Pi), 1e-12))
		})

		It("should pass Z through when mirroring a 3D position", func() {
			flipped := flipper.Apply3(Vector3d{X: 3, Y: 2, Z: 1.5})

			Expect(flipped).To(Equal(Vector3d{X: 13, Y: 6, Z: 1.5}))
		})

		It("should mirror a projected 3D position like its 2D shadow", func() {
			v := Vector3d{X: 3, Y: 2, Z: 1.5}

			Expect(flipper.Apply(v.Vec2())).
				To(Equal(flipper.Apply3(v).Vec2()))
		})

		It("should only turn yaw when mirroring a 3D orientation", func() {
			o := Orientation3{
				Roll:  hawkmath.NewAngle(0.1),
				Pitch: hawkmath.NewAngle(0.2),
				Yaw:   hawkmath.NewAngle(0.3),
			}

			flipped := flipper.ApplyOrientation3(o)

			Expect(flipped.Roll).To(Equal(o.Roll))
			Expect(flipped.Pitch).To(Equal(o.Pitch))
			Expect(flipped.Yaw.Radians()).To(
				BeNumerically("~", hawkmath.Normalize(0.3+hawkmath.Pi), 1e-12))
		})

		It("should mirror a 3D pose as a whole", func() {
			p := Pose3{
				Translation: Vector3d{X: 1, Y: 2, Z: 3},
				Orientation: Orientation3{Yaw: hawkmath.NewAngle(0)},
			}

			flipped := flipper.ApplyPose3(p)

			Expect(flipped.Translation.X).To(Equal(15.0))
			Expect(flipped.Translation.Z).To(Equal(3.0))
			Expect(flipped.Orientation.Yaw.Radians()).To(
				BeNumerically("~", hawkmath.Pi, 1e-12))
		})
	})

	It("should read the alliance fresh on every call", func() {
		alliance = AllianceRed
		Expect(flipper.ApplyX(3)).To(Equal(13.0))

		alliance = AllianceBlue
		Expect(flipper.ApplyX(3)).To(Equal(3.0))

		alliance = AllianceRed
		Expect(flipper.ApplyX(3)).To(Equal(13.0))
	})
})

package hawkmath

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Scalar helpers", func() {
	It("should raise to a power without flipping the sign of the base", func() {
		Expect(CopyPow(2, 2)).To(Equal(4.0))
		Expect(CopyPow(-2, 2)).To(Equal(-4.0))
		Expect(CopyPow(-0.5, 3)).To(BeNumerically("~", -0.125, 1e-12))
		Expect(CopyPow(0, 2)).To(Equal(0.0))
	})

	It("should propagate a non-finite result from a zero base and negative exponent", func() {
		Expect(math.IsInf(CopyPow(0, -1), 1)).To(BeTrue())
	})

	It("should wrap degrees into the range from 0 to 360", func() {
		Expect(Continuous180To360(-90)).To(Equal(270.0))
		Expect(Continuous180To360(90)).To(Equal(90.0))
		Expect(Continuous180To360(360)).To(Equal(0.0))
		Expect(Continuous180To360(-450)).To(Equal(270.0))
	})

	It("should wrap degrees into the range from -180 to 180", func() {
		Expect(Convert360To180(270)).To(Equal(-90.0))
		Expect(Convert360To180(90)).To(Equal(90.0))
		Expect(Convert360To180(180)).To(Equal(180.0))
		Expect(Convert360To180(540)).To(Equal(180.0))
	})

	It("should wrap radians the same way Normalize does", func() {
		Expect(Convert360To180Rad(3 * Pi)).To(Equal(Normalize(3 * Pi)))
	})

	It("should convert wheel speeds through the circumference", func() {
		Expect(RPSToMPS(2, 0.5)).To(Equal(1.0))
		Expect(MPSToRPS(1, 0.5)).To(Equal(2.0))
		Expect(RotationsToMeters(4, 0.25)).To(Equal(1.0))
		Expect(MetersToRotations(1, 0.25)).To(Equal(4.0))
	})
})

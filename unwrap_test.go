package qphase

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestWrapToPrincipalBranch(t *testing.T) {
	Convey("Given angles in and outside the principal branch", t, func() {
		Convey("It should leave principal-branch angles untouched", func() {
			So(wrapToPrincipalBranch(0), ShouldEqual, 0)
			So(wrapToPrincipalBranch(math.Pi/4), ShouldAlmostEqual, math.Pi/4, 1e-12)
			So(wrapToPrincipalBranch(-math.Pi/4), ShouldAlmostEqual, -math.Pi/4, 1e-12)
			So(wrapToPrincipalBranch(math.Pi), ShouldAlmostEqual, math.Pi, 1e-12)
		})

		Convey("It should reduce modulo 2π into (−π, π]", func() {
			So(wrapToPrincipalBranch(2*math.Pi), ShouldAlmostEqual, 0, 1e-12)
			So(wrapToPrincipalBranch(3*math.Pi), ShouldAlmostEqual, math.Pi, 1e-12)
			So(wrapToPrincipalBranch(-3*math.Pi/2), ShouldAlmostEqual, math.Pi/2, 1e-12)
			So(wrapToPrincipalBranch(5*math.Pi/2), ShouldAlmostEqual, math.Pi/2, 1e-12)
		})

		Convey("It should resolve the −π tie to +π", func() {
			So(wrapToPrincipalBranch(-math.Pi), ShouldAlmostEqual, math.Pi, 1e-12)
			So(wrapToPrincipalBranch(-3*math.Pi), ShouldAlmostEqual, math.Pi, 1e-12)
		})

		Convey("The result magnitude never exceeds π", func() {
			for theta := -25.0; theta <= 25.0; theta += 0.05 {
				So(math.Abs(wrapToPrincipalBranch(theta)), ShouldBeLessThanOrEqualTo, math.Pi+1e-12)
			}
		})
	})
}

func TestUnwrap(t *testing.T) {
	Convey("Given a local angle and a running estimate", t, func() {
		Convey("With no prior it should return the local angle", func() {
			So(Unwrap(math.Pi/2, 0, 1), ShouldAlmostEqual, math.Pi/2, 1e-12)
			So(Unwrap(-math.Pi/3, 0, 4), ShouldAlmostEqual, -math.Pi/3, 1e-12)
		})

		Convey("It should subtract the prior scaled by the power", func() {
			So(Unwrap(math.Pi/2, math.Pi/8, 2), ShouldAlmostEqual, math.Pi/4, 1e-12)
			So(Unwrap(0, math.Pi/2, 2), ShouldAlmostEqual, math.Pi, 1e-12)
		})

		Convey("The correction is bounded by π for any inputs", func() {
			for power := 1; power <= 1024; power *= 2 {
				for k := 0; k < 40; k++ {
					localAngle := -math.Pi + float64(k)*math.Pi/10
					prior := float64(k-20) / 3
					So(math.Abs(Unwrap(localAngle, prior, power)), ShouldBeLessThanOrEqualTo, math.Pi+1e-12)
				}
			}
		})
	})
}

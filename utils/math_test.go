package utils

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestDegRadConversions(t *testing.T) {
	test.That(t, DegToRad(0), test.ShouldAlmostEqual, 0)
	test.That(t, DegToRad(180), test.ShouldAlmostEqual, math.Pi)
	test.That(t, DegToRad(-90), test.ShouldAlmostEqual, -math.Pi/2)
	test.That(t, RadToDeg(math.Pi), test.ShouldAlmostEqual, 180)
	test.That(t, RadToDeg(DegToRad(123.4)), test.ShouldAlmostEqual, 123.4, 1e-12)
}

func TestWrapAngleRad(t *testing.T) {
	test.That(t, WrapAngleRad(0), test.ShouldAlmostEqual, 0)
	test.That(t, WrapAngleRad(math.Pi/2), test.ShouldAlmostEqual, math.Pi/2)
	test.That(t, WrapAngleRad(math.Pi), test.ShouldAlmostEqual, -math.Pi)
	test.That(t, WrapAngleRad(-math.Pi), test.ShouldAlmostEqual, -math.Pi)
	test.That(t, WrapAngleRad(2*math.Pi), test.ShouldAlmostEqual, 0)
	test.That(t, WrapAngleRad(3*math.Pi), test.ShouldAlmostEqual, -math.Pi)
	test.That(t, WrapAngleRad(-3*math.Pi/2), test.ShouldAlmostEqual, math.Pi/2)

	for _, ang := range []float64{-1e6, -7.25 * math.Pi, -0.1, 0.1, 9 * math.Pi, 1e6} {
		got := WrapAngleRad(ang)
		test.That(t, got, test.ShouldBeGreaterThanOrEqualTo, -math.Pi)
		test.That(t, got, test.ShouldBeLessThan, math.Pi)
	}
}

package kinematics

import (
	"math"
	"math/rand"
	"testing"

	"go.viam.com/test"

	"github.com/robomech/armkit/utils"
)

func TestDHTransform(t *testing.T) {
	zero := DHParam{}.Transform()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			want := 0.0
			if r == c {
				want = 1.0
			}
			test.That(t, zero.At(r, c), test.ShouldAlmostEqual, want)
		}
	}

	// bottom row stays [0 0 0 1] for arbitrary parameters
	m := DHParam{Alpha: 1.1, A: 2.2, D: -0.4, Theta: 0.7}.Transform()
	test.That(t, m.At(3, 0), test.ShouldAlmostEqual, 0)
	test.That(t, m.At(3, 1), test.ShouldAlmostEqual, 0)
	test.That(t, m.At(3, 2), test.ShouldAlmostEqual, 0)
	test.That(t, m.At(3, 3), test.ShouldAlmostEqual, 1)
}

func TestNewArm(t *testing.T) {
	arm, err := NewArm(DefaultLinkLengths)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, arm.LinkLengths(), test.ShouldResemble, DefaultLinkLengths)

	_, err = NewArm(LinkLengths{1, 0, 1, 1})
	test.That(t, err, test.ShouldNotBeNil)
	_, err = NewArm(LinkLengths{1, 1, -2, 1})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestZeroPose(t *testing.T) {
	for _, links := range []LinkLengths{
		DefaultLinkLengths,
		{0.5, 1.2, 0.8, 2.0},
		{3, 0.1, 0.1, 0.1},
	} {
		arm, err := NewArm(links)
		test.That(t, err, test.ShouldBeNil)
		want := links[0] + links[1] + links[2] + links[3]

		pos := arm.EndPosition(0, 0, 0, 0)
		test.That(t, pos.X, test.ShouldAlmostEqual, want, 1e-9)
		test.That(t, pos.Y, test.ShouldAlmostEqual, 0, 1e-9)
		test.That(t, pos.Z, test.ShouldAlmostEqual, 0, 1e-9)

		alt := arm.EndPositionExplicit(0, 0, 0, 0)
		test.That(t, alt.X, test.ShouldAlmostEqual, want, 1e-9)
		test.That(t, alt.Y, test.ShouldAlmostEqual, 0, 1e-9)
		test.That(t, alt.Z, test.ShouldAlmostEqual, 0, 1e-9)
	}
}

func TestKnownPositions(t *testing.T) {
	arm, err := NewArm(DefaultLinkLengths)
	test.That(t, err, test.ShouldBeNil)

	cases := []struct {
		anglesDeg [4]float64
		want      [3]float64
	}{
		{[4]float64{0, 0, 0, 0}, [3]float64{4, 0, 0}},
		{[4]float64{90, 0, 0, 0}, [3]float64{0, 4, 0}},
		{[4]float64{0, 90, 0, 0}, [3]float64{0, 0, 4}},
		{[4]float64{0, 0, 90, 0}, [3]float64{1, 0, 3}},
		{[4]float64{45, 30, 15, 10}, [3]float64{2.457947477, 1.721220653, 2.589092721}},
	}
	for _, c := range cases {
		pos := arm.EndPosition(
			utils.DegToRad(c.anglesDeg[0]),
			utils.DegToRad(c.anglesDeg[1]),
			utils.DegToRad(c.anglesDeg[2]),
			utils.DegToRad(c.anglesDeg[3]),
		)
		test.That(t, pos.X, test.ShouldAlmostEqual, c.want[0], 1e-6)
		test.That(t, pos.Y, test.ShouldAlmostEqual, c.want[1], 1e-6)
		test.That(t, pos.Z, test.ShouldAlmostEqual, c.want[2], 1e-6)
	}
}

func TestMethodsAgree(t *testing.T) {
	//nolint:gosec
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		links := LinkLengths{
			0.1 + 3*rng.Float64(),
			0.1 + 3*rng.Float64(),
			0.1 + 3*rng.Float64(),
			0.1 + 3*rng.Float64(),
		}
		arm, err := NewArm(links)
		test.That(t, err, test.ShouldBeNil)

		j1 := -math.Pi + 2*math.Pi*rng.Float64()
		j2 := -math.Pi + 2*math.Pi*rng.Float64()
		j3 := -math.Pi + 2*math.Pi*rng.Float64()
		j4 := -math.Pi + 2*math.Pi*rng.Float64()

		pos := arm.EndPosition(j1, j2, j3, j4)
		alt := arm.EndPositionExplicit(j1, j2, j3, j4)
		test.That(t, pos.Sub(alt).Norm(), test.ShouldBeLessThan, 1e-6)
	}
}

func TestDHParamsTable(t *testing.T) {
	arm, err := NewArm(LinkLengths{0.5, 1.2, 0.8, 2.0})
	test.That(t, err, test.ShouldBeNil)

	table := arm.DHParams(0.1, 0.2, 0.3, 0.4)
	test.That(t, table, test.ShouldResemble, []DHParam{
		{Alpha: math.Pi / 2, A: 0, D: 0, Theta: 0.1},
		{Alpha: 0, A: 0.5, D: 0, Theta: 0.2},
		{Alpha: math.Pi / 2, A: 0, D: 0, Theta: 0.3},
		{Alpha: 0, A: 1.2, D: 0, Theta: 0.4},
	})
}

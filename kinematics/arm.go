package kinematics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// LinkLengths holds the four link lengths of the arm, base out.
type LinkLengths [4]float64

// DefaultLinkLengths is a uniform arm with every link one unit long.
var DefaultLinkLengths = LinkLengths{1, 1, 1, 1}

// Arm models a 4-DOF serial arm with perpendicular joints and a rigid tool
// extending past the last joint. An Arm is immutable after construction and
// safe for concurrent use.
type Arm struct {
	links LinkLengths
}

// NewArm returns an arm model with the given link lengths.
func NewArm(links LinkLengths) (*Arm, error) {
	for i, l := range links {
		if l <= 0 {
			return nil, errors.Errorf("link %d has non-positive length %f", i+1, l)
		}
	}
	return &Arm{links: links}, nil
}

// LinkLengths returns the arm's link lengths.
func (a *Arm) LinkLengths() LinkLengths {
	return a.links
}

// DHParams returns the arm's Denavit-Hartenberg table for the given joint
// angles. Links three and four do not appear in the table; they form a rigid
// tool offset past the last joint.
func (a *Arm) DHParams(j1, j2, j3, j4 float64) []DHParam {
	return []DHParam{
		{Alpha: math.Pi / 2, A: 0, D: 0, Theta: j1},
		{Alpha: 0, A: a.links[0], D: 0, Theta: j2},
		{Alpha: math.Pi / 2, A: 0, D: 0, Theta: j3},
		{Alpha: 0, A: a.links[1], D: 0, Theta: j4},
	}
}

// EndPosition computes the end effector position from joint angles (radians)
// by composing the DH table and then the tool offset. With all joints at zero
// the arm is fully extended along +X: (L1+L2+L3+L4, 0, 0).
func (a *Arm) EndPosition(j1, j2, j3, j4 float64) r3.Vector {
	t := mgl64.Ident4()
	for _, dh := range a.DHParams(j1, j2, j3, j4) {
		t = t.Mul4(dh.Transform())
	}
	t = t.Mul4(mgl64.Translate3D(a.links[2]+a.links[3], 0, 0))
	return translation(t)
}

// EndPositionExplicit computes the same end effector position by chaining the
// five frame-to-frame rigid transforms directly instead of going through the
// DH table. The two derivations describe the same manipulator geometry, so
// they must agree for all inputs; tests hold them to within 1e-6.
func (a *Arm) EndPositionExplicit(j1, j2, j3, j4 float64) r3.Vector {
	// base -> joint 1: yaw about Z
	t := mgl64.HomogRotate3DZ(j1)
	// joint 1 -> joint 2: shoulder pitch, link 1 along local X
	t = t.Mul4(mgl64.HomogRotate3DY(-j2).Mul4(mgl64.Translate3D(a.links[0], 0, 0)))
	// joint 2 -> joint 3: elbow pitch about the same point
	t = t.Mul4(mgl64.HomogRotate3DY(-j3))
	// joint 3 -> joint 4: wrist roll, link 2 along local X
	t = t.Mul4(mgl64.HomogRotate3DZ(-j4).Mul4(mgl64.Translate3D(a.links[1], 0, 0)))
	// joint 4 -> end effector: rigid tool along local X
	t = t.Mul4(mgl64.Translate3D(a.links[2]+a.links[3], 0, 0))
	return translation(t)
}

func translation(t mgl64.Mat4) r3.Vector {
	return r3.Vector{X: t.At(0, 3), Y: t.At(1, 3), Z: t.At(2, 3)}
}

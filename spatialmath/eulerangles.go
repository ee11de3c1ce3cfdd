// Package spatialmath defines spatial mathematical operations.
package spatialmath

import (
	"math"

	"gonum.org/v1/gonum/num/quat"

	"github.com/robomech/armkit/utils"
)

// If pitch is within this distance of a pole, roll and yaw are coupled and
// only their sum (north pole) or difference (south pole) is observable.
const poleEpsilon = 1e-10

// EulerAngles are three angles (in radians) used to represent the rotation of
// an object in 3D Euclidean space. The angles are applied in the order of
// roll (x), pitch (y), yaw (z).
type EulerAngles struct {
	Roll  float64 `json:"roll"`
	Pitch float64 `json:"pitch"`
	Yaw   float64 `json:"yaw"`
}

// NewEulerAngles creates an empty EulerAngles struct.
func NewEulerAngles() *EulerAngles {
	return &EulerAngles{}
}

// Quaternion returns the orientation in quaternion representation.
// Near pitch = ±π/2 the redundant degree of freedom is folded out of yaw
// before the half-angle formulas are applied.
// See: https://en.wikipedia.org/wiki/Conversion_between_quaternions_and_Euler_angles
func (ea *EulerAngles) Quaternion() quat.Number {
	roll, pitch, yaw := ea.Roll, ea.Pitch, ea.Yaw
	switch {
	case math.Abs(pitch-math.Pi/2) < poleEpsilon:
		roll += yaw
		yaw = 0
	case math.Abs(pitch+math.Pi/2) < poleEpsilon:
		roll -= yaw
		yaw = 0
	}

	cy := math.Cos(yaw * 0.5)
	sy := math.Sin(yaw * 0.5)
	cp := math.Cos(pitch * 0.5)
	sp := math.Sin(pitch * 0.5)
	cr := math.Cos(roll * 0.5)
	sr := math.Sin(roll * 0.5)

	return quat.Number{
		Real: cr*cp*cy + sr*sp*sy,
		Imag: sr*cp*cy - cr*sp*sy,
		Jmag: cr*sp*cy + sr*cp*sy,
		Kmag: cr*cp*sy - sr*sp*cy,
	}
}

// Normalized returns the angles wrapped elementwise into [-π, π).
func (ea *EulerAngles) Normalized() *EulerAngles {
	return &EulerAngles{
		Roll:  utils.WrapAngleRad(ea.Roll),
		Pitch: utils.WrapAngleRad(ea.Pitch),
		Yaw:   utils.WrapAngleRad(ea.Yaw),
	}
}

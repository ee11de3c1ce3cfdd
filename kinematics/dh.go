// Package kinematics implements forward kinematics for a 4-DOF serial arm
// with perpendicular joints.
package kinematics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DHParam is one Denavit-Hartenberg row: four scalars fully describing the
// relative pose between two consecutive joint frames.
type DHParam struct {
	Alpha float64 `json:"alpha"` // link twist (radians)
	A     float64 `json:"a"`     // link length
	D     float64 `json:"d"`     // link offset
	Theta float64 `json:"theta"` // joint angle (radians)
}

// Transform returns the homogeneous transform for this DH row. The bottom row
// is always [0 0 0 1].
func (dh DHParam) Transform() mgl64.Mat4 {
	ct := math.Cos(dh.Theta)
	st := math.Sin(dh.Theta)
	ca := math.Cos(dh.Alpha)
	sa := math.Sin(dh.Alpha)

	m := mgl64.Ident4()
	m.Set(0, 0, ct)
	m.Set(0, 1, -st*ca)
	m.Set(0, 2, st*sa)
	m.Set(0, 3, dh.A*ct)
	m.Set(1, 0, st)
	m.Set(1, 1, ct*ca)
	m.Set(1, 2, -ct*sa)
	m.Set(1, 3, dh.A*st)
	m.Set(2, 0, 0)
	m.Set(2, 1, sa)
	m.Set(2, 2, ca)
	m.Set(2, 3, dh.D)
	return m
}

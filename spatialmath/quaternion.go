package spatialmath

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// QuatToEulerAngles converts a rotation quaternion to euler angles.
// The input is normalized first, so any nonzero quaternion is accepted;
// a zero quaternion is a precondition violation and produces NaNs.
// See: https://en.wikipedia.org/wiki/Conversion_between_quaternions_and_Euler_angles
func QuatToEulerAngles(q quat.Number) *EulerAngles {
	q = quat.Scale(1/quat.Abs(q), q)
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag

	ea := NewEulerAngles()
	ea.Roll = math.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y))

	// Floating point error can push the asin argument past ±1 for near-pole
	// orientations; clamp to the matching pole instead of a domain error.
	sinp := 2 * (w*y - z*x)
	if math.Abs(sinp) >= 1 {
		ea.Pitch = math.Copysign(math.Pi/2, sinp)
	} else {
		ea.Pitch = math.Asin(sinp)
	}

	ea.Yaw = math.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z))
	return ea
}

// Flip will multiply a quaternion by -1, returning a quaternion representing
// the same orientation but in the opposing octant.
func Flip(q quat.Number) quat.Number {
	return quat.Number{Real: -q.Real, Imag: -q.Imag, Jmag: -q.Jmag, Kmag: -q.Kmag}
}

// QuaternionAlmostEqual will return a bool describing whether two quaternions
// represent approximately the same orientation. Since q and -q encode the same
// rotation, both octants are checked.
func QuaternionAlmostEqual(a, b quat.Number, tol float64) bool {
	return quatComponentsClose(a, b, tol) || quatComponentsClose(a, Flip(b), tol)
}

func quatComponentsClose(a, b quat.Number, tol float64) bool {
	return math.Abs(a.Real-b.Real) < tol &&
		math.Abs(a.Imag-b.Imag) < tol &&
		math.Abs(a.Jmag-b.Jmag) < tol &&
		math.Abs(a.Kmag-b.Kmag) < tol
}

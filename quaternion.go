package rotations

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/num/quat"
)

// Quaternion is an orientation in quaternion representation. It is the hub
// representation of this library: cross-parameterization conversions without
// a dedicated formula go through it, because quaternion composition and
// inversion are the cheapest and best-conditioned.
//
// A Quaternion must be kept at unit norm to represent a rotation. The
// accessors never re-normalize; callers mutating components directly are
// responsible for calling Normalize afterwards.
type Quaternion quat.Number

// NewQuaternion returns the identity quaternion (1, 0, 0, 0).
func NewQuaternion() *Quaternion {
	return &Quaternion{Real: 1}
}

// Quaternion returns orientation in quaternion representation.
func (q *Quaternion) Quaternion() quat.Number {
	return quat.Number(*q)
}

// EulerAngles returns orientation in Euler angle representation.
func (q *Quaternion) EulerAngles() *EulerAngles {
	return QuatToEulerAngles(q.Quaternion())
}

// EulerAnglesXYZ returns orientation in XYZ-order Euler angle representation.
func (q *Quaternion) EulerAnglesXYZ() *EulerAnglesXYZ {
	return QuatToEulerAnglesXYZ(q.Quaternion())
}

// AxisAngles returns the orientation in axis angle representation.
func (q *Quaternion) AxisAngles() *R4AA {
	return QuatToR4AA(q.Quaternion())
}

// RotationVector returns the orientation in rotation vector representation.
func (q *Quaternion) RotationVector() *RotationVector {
	return QuatToRotationVector(q.Quaternion())
}

// RotationMatrix returns the orientation in rotation matrix representation.
func (q *Quaternion) RotationMatrix() *RotationMatrix {
	return QuatToRotationMatrix(q.Quaternion())
}

// Inverted returns the quaternion representing the opposite rotation. The
// receiver must be unit norm, in which case the conjugate is the inverse.
func (q *Quaternion) Inverted() *Quaternion {
	inv := Quaternion(quat.Conj(q.Quaternion()))
	return &inv
}

// Normalize scales the quaternion to unit norm. Panics on the zero
// quaternion, which represents no rotation at any scale.
func (q *Quaternion) Normalize() {
	norm := quat.Abs(q.Quaternion())
	if norm == 0.0 {
		panic("cannot normalize zero quaternion")
	}
	q.Real /= norm
	q.Imag /= norm
	q.Jmag /= norm
	q.Kmag /= norm
}

// String returns the components whitespace-separated, for diagnostics.
func (q *Quaternion) String() string {
	return fmt.Sprintf("%v %v %v %v", q.Real, q.Imag, q.Jmag, q.Kmag)
}

// QuaternionAlmostEqual returns whether two quaternions represent the same
// rotation within the given tolerance. Since q and -q represent the same
// rotation, both signs are checked.
func QuaternionAlmostEqual(q1, q2 quat.Number, tol float64) bool {
	return quat.Abs(quat.Sub(q1, q2)) < tol || quat.Abs(quat.Add(q1, q2)) < tol
}

// Flip returns the antipodal quaternion, which represents the same rotation.
func Flip(q quat.Number) quat.Number {
	return quat.Number{Real: -q.Real, Imag: -q.Imag, Jmag: -q.Jmag, Kmag: -q.Kmag}
}

// slerp spherically interpolates between two quaternions.
func slerp(qN1, qN2 quat.Number, by float64) quat.Number {
	q1 := mgl64.Quat{W: qN1.Real, V: mgl64.Vec3{qN1.Imag, qN1.Jmag, qN1.Kmag}}
	q2 := mgl64.Quat{W: qN2.Real, V: mgl64.Vec3{qN2.Imag, qN2.Jmag, qN2.Kmag}}
	q := mgl64.QuatSlerp(q1, q2, by)
	return quat.Number{Real: q.W, Imag: q.V.X(), Jmag: q.V.Y(), Kmag: q.V.Z()}
}

// angleBetween returns the angle of the rotation taking q1 to q2, a
// sign-insensitive distance on the rotation group.
func angleBetween(q1, q2 quat.Number) float64 {
	inner := q1.Real*q2.Real + q1.Imag*q2.Imag + q1.Jmag*q2.Jmag + q1.Kmag*q2.Kmag
	if inner < -1 {
		inner = -1
	} else if inner > 1 {
		inner = 1
	}
	return 2 * math.Acos(math.Abs(inner))
}

// Package rotations provides interchangeable parameterizations of rotations
// in 3D Euclidean space, along with conversion, composition, inversion and
// canonicalization operations between them.
package rotations

import (
	"gonum.org/v1/gonum/num/quat"
)

// Orientation is an interface used to express the different parameterizations
// of the orientation of a rigid object or a frame of reference in 3D
// Euclidean space. Every parameterization can convert itself to every other
// one; conversions without a specialized formula are routed through the
// quaternion representation.
type Orientation interface {
	Quaternion() quat.Number
	EulerAngles() *EulerAngles
	EulerAnglesXYZ() *EulerAnglesXYZ
	AxisAngles() *R4AA
	RotationVector() *RotationVector
	RotationMatrix() *RotationMatrix
}

// NewZeroOrientation returns an orientation which signifies no rotation.
func NewZeroOrientation() Orientation {
	return &Quaternion{1, 0, 0, 0}
}

// Compose returns the orientation resulting from applying b first and then a.
// All rotations in this library are active rotations acting on column
// vectors, so composition is the quaternion product qa*qb and follows the
// same convention as matrix multiplication.
func Compose(a, b Orientation) Orientation {
	q := Quaternion(quat.Mul(a.Quaternion(), b.Quaternion()))
	return &q
}

// OrientationInverse returns the orientation that undoes the given one, i.e.
// Compose(o, OrientationInverse(o)) is the zero orientation.
func OrientationInverse(o Orientation) Orientation {
	q := Quaternion(quat.Conj(o.Quaternion()))
	return &q
}

// OrientationBetween returns the orientation representing the difference
// between the two given Orientations, i.e. the orientation that composed
// with o1 yields o2.
func OrientationBetween(o1, o2 Orientation) Orientation {
	q := Quaternion(quat.Mul(o2.Quaternion(), quat.Conj(o1.Quaternion())))
	return &q
}

// OrientationAlmostEqual will return a bool describing whether 2 orientations
// represent the same rotation, regardless of the parameterizations they are
// stored in.
func OrientationAlmostEqual(o1, o2 Orientation) bool {
	return QuaternionAlmostEqual(o1.Quaternion(), o2.Quaternion(), 1e-5)
}

package rotations

import (
	"fmt"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// RotationVector is an orientation expressed as a 3-vector pointing along
// the rotation axis whose magnitude is the rotation angle in radians. The
// zero vector is the identity rotation.
type RotationVector r3.Vector

// NewRotationVector creates an empty RotationVector struct, which represents
// the identity rotation.
func NewRotationVector() *RotationVector {
	return &RotationVector{}
}

// RotationVector returns the orientation in rotation vector representation.
func (rv *RotationVector) RotationVector() *RotationVector {
	return rv
}

// Quaternion returns orientation in quaternion representation.
func (rv *RotationVector) Quaternion() quat.Number {
	return R3ToR4(r3.Vector(*rv)).ToQuat()
}

// EulerAngles returns orientation in Euler angle representation.
func (rv *RotationVector) EulerAngles() *EulerAngles {
	return QuatToEulerAngles(rv.Quaternion())
}

// EulerAnglesXYZ returns orientation in XYZ-order Euler angle representation.
func (rv *RotationVector) EulerAnglesXYZ() *EulerAnglesXYZ {
	return QuatToEulerAnglesXYZ(rv.Quaternion())
}

// AxisAngles returns the orientation in axis angle representation.
func (rv *RotationVector) AxisAngles() *R4AA {
	return R3ToR4(r3.Vector(*rv))
}

// RotationMatrix returns the orientation in rotation matrix representation.
func (rv *RotationVector) RotationMatrix() *RotationMatrix {
	return QuatToRotationMatrix(rv.Quaternion())
}

// Inverted returns the rotation vector of the opposite rotation, which is
// simply the negated vector.
func (rv *RotationVector) Inverted() *RotationVector {
	return &RotationVector{X: -rv.X, Y: -rv.Y, Z: -rv.Z}
}

// String returns the components whitespace-separated, for diagnostics.
func (rv *RotationVector) String() string {
	return fmt.Sprintf("%v %v %v", rv.X, rv.Y, rv.Z)
}

// QuatToRotationVector converts a unit quaternion to the rotation vector
// representation, routing through axis angles. Near the zero rotation the
// axis is unobservable but the vector degrades gracefully to zero magnitude.
func QuatToRotationVector(q quat.Number) *RotationVector {
	rv := RotationVector(QuatToR4AA(q).ToR3())
	return &rv
}

package rotations

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"

	"github.com/mechlabs/rotations/utils"
)

// gimbalLockTol is the half-width in radians of the guard band around the
// two singular pitch values ±π/2. Pitch extracted from a rotation near the
// poles is itself noisy, so the band test is deliberately over-sized; a
// zero-width test would make the branch selection in SetUnique unstable
// under tiny perturbations of numerically indistinguishable inputs.
const gimbalLockTol = 1e-3

// EulerAngles are three angles (in radians) used to represent the rotation
// of an object in 3D Euclidean space. The rotation is applied in intrinsic
// ZYX order: first yaw about Z, then pitch about the new Y, then roll about
// the newest X. Equivalently R = Rz(yaw)*Ry(pitch)*Rx(roll).
type EulerAngles struct {
	Roll  float64 `json:"roll"`  // X'' axis
	Pitch float64 `json:"pitch"` // Y' axis
	Yaw   float64 `json:"yaw"`   // Z axis
}

// NewEulerAngles creates an empty EulerAngles struct, which represents the
// identity rotation.
func NewEulerAngles() *EulerAngles {
	return &EulerAngles{Roll: 0, Pitch: 0, Yaw: 0}
}

// X is a generic alias for the roll angle.
func (ea *EulerAngles) X() float64 { return ea.Roll }

// Y is a generic alias for the pitch (Y') angle.
func (ea *EulerAngles) Y() float64 { return ea.Pitch }

// Z is a generic alias for the yaw (Z) angle.
func (ea *EulerAngles) Z() float64 { return ea.Yaw }

// SetX is a generic alias for setting the roll angle.
func (ea *EulerAngles) SetX(x float64) { ea.Roll = x }

// SetY is a generic alias for setting the pitch (Y') angle.
func (ea *EulerAngles) SetY(y float64) { ea.Pitch = y }

// SetZ is a generic alias for setting the yaw (Z) angle.
func (ea *EulerAngles) SetZ(z float64) { ea.Yaw = z }

// EulerAngles returns orientation in Euler angle representation.
func (ea *EulerAngles) EulerAngles() *EulerAngles {
	return ea
}

// Quaternion returns orientation in quaternion representation.
func (ea *EulerAngles) Quaternion() quat.Number {
	sy, cy := math.Sincos(ea.Yaw / 2)
	sp, cp := math.Sincos(ea.Pitch / 2)
	sr, cr := math.Sincos(ea.Roll / 2)

	// q = qz(yaw) * qy(pitch) * qx(roll)
	return quat.Number{
		Real: cr*cp*cy + sr*sp*sy,
		Imag: sr*cp*cy - cr*sp*sy,
		Jmag: cr*sp*cy + sr*cp*sy,
		Kmag: cr*cp*sy - sr*sp*cy,
	}
}

// EulerAnglesXYZ returns orientation in XYZ-order Euler angle representation.
func (ea *EulerAngles) EulerAnglesXYZ() *EulerAnglesXYZ {
	return QuatToEulerAnglesXYZ(ea.Quaternion())
}

// AxisAngles returns the orientation in axis angle representation.
func (ea *EulerAngles) AxisAngles() *R4AA {
	return QuatToR4AA(ea.Quaternion())
}

// RotationVector returns the orientation in rotation vector representation.
func (ea *EulerAngles) RotationVector() *RotationVector {
	return QuatToRotationVector(ea.Quaternion())
}

// RotationMatrix returns the orientation in rotation matrix representation.
func (ea *EulerAngles) RotationMatrix() *RotationMatrix {
	return QuatToRotationMatrix(ea.Quaternion())
}

// Inverted returns the Euler angles of the opposite rotation.
func (ea *EulerAngles) Inverted() *EulerAngles {
	return QuatToEulerAngles(quat.Conj(ea.Quaternion()))
}

// Invert flips the receiver to the opposite rotation in place.
func (ea *EulerAngles) Invert() *EulerAngles {
	*ea = *ea.Inverted()
	return ea
}

// QuatToEulerAngles converts a quaternion to the euler angle representation.
// The three angles are extracted directly from the entries of the
// corresponding rotation matrix rather than by building the matrix first,
// which keeps trigonometric error to a single atan2/asin per angle.
func QuatToEulerAngles(q quat.Number) *EulerAngles {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag

	// matrix entries m10, m00, m20, m21, m22 of Rz*Ry*Rx
	sinPitch := 2 * (y*w - x*z)
	if sinPitch > 1 {
		sinPitch = 1
	} else if sinPitch < -1 {
		sinPitch = -1
	}
	return &EulerAngles{
		Yaw:   math.Atan2(2*(x*y+z*w), 1-2*(y*y+z*z)),
		Pitch: math.Asin(sinPitch),
		Roll:  math.Atan2(2*(y*z+x*w), 1-2*(x*x+y*y)),
	}
}

// EulerAnglesFromRotationMatrix extracts the ZYX euler angles directly from
// the entries of a rotation matrix. The formula is singular when the pitch
// entry is ±1 (pitch = ±π/2, gimbal lock); there the extracted yaw and roll
// are only determined up to their sum or difference, and SetUnique is
// responsible for producing a well-defined representative.
func EulerAnglesFromRotationMatrix(rm *RotationMatrix) *EulerAngles {
	sinPitch := -rm.At(2, 0)
	if sinPitch > 1 {
		sinPitch = 1
	} else if sinPitch < -1 {
		sinPitch = -1
	}
	return &EulerAngles{
		Yaw:   math.Atan2(rm.At(1, 0), rm.At(0, 0)),
		Pitch: math.Asin(sinPitch),
		Roll:  math.Atan2(rm.At(2, 1), rm.At(2, 2)),
	}
}

// Unique returns the deterministic representative of all euler angle triples
// describing the same rotation as the receiver, with yaw and roll in [-π,π)
// and pitch within gimbalLockTol of [-π/2,π/2]. Inside the gimbal lock bands
// around pitch ±π/2 only the sum (lower pole) or difference (upper pole) of
// yaw and roll is observable; the redundant degree of freedom is folded into
// yaw and roll is set to zero.
func (ea *EulerAngles) Unique() *EulerAngles {
	yaw := utils.CycleIntervalRadians(ea.Yaw)
	pitch := utils.CycleIntervalRadians(ea.Pitch)
	roll := utils.CycleIntervalRadians(ea.Roll)

	switch {
	case pitch < -math.Pi/2-gimbalLockTol:
		// past the lower singularity: reflect through the pole
		if yaw < 0 {
			yaw += math.Pi
		} else {
			yaw -= math.Pi
		}
		pitch = -(pitch + math.Pi)
		if roll < 0 {
			roll += math.Pi
		} else {
			roll -= math.Pi
		}
	case -math.Pi/2-gimbalLockTol <= pitch && pitch <= -math.Pi/2+gimbalLockTol:
		// lower gimbal lock band: only yaw+roll is observable
		yaw += roll
		roll = 0
	case -math.Pi/2+gimbalLockTol < pitch && pitch < math.Pi/2-gimbalLockTol:
		// regular region
	case math.Pi/2-gimbalLockTol <= pitch && pitch <= math.Pi/2+gimbalLockTol:
		// upper gimbal lock band: only yaw-roll is observable
		yaw -= roll
		roll = 0
	default: // math.Pi/2+gimbalLockTol < pitch
		// past the upper singularity: reflect through the pole
		if yaw < 0 {
			yaw += math.Pi
		} else {
			yaw -= math.Pi
		}
		pitch = -(pitch - math.Pi)
		if roll < 0 {
			roll += math.Pi
		} else {
			roll -= math.Pi
		}
	}
	return &EulerAngles{Roll: roll, Pitch: pitch, Yaw: yaw}
}

// SetUnique overwrites the receiver with its unique representative.
func (ea *EulerAngles) SetUnique() *EulerAngles {
	*ea = *ea.Unique()
	return ea
}

// String returns the components whitespace-separated, for diagnostics.
func (ea *EulerAngles) String() string {
	return fmt.Sprintf("%v %v %v", ea.Roll, ea.Pitch, ea.Yaw)
}

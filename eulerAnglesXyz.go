package rotations

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"

	"github.com/mechlabs/rotations/utils"
)

// EulerAnglesXYZ are three angles (in radians) applied in intrinsic XYZ
// order: first roll about X, then pitch about the new Y, then yaw about the
// newest Z. Equivalently R = Rx(roll)*Ry(pitch)*Rz(yaw).
type EulerAnglesXYZ struct {
	Roll  float64 `json:"roll"`  // X axis
	Pitch float64 `json:"pitch"` // Y' axis
	Yaw   float64 `json:"yaw"`   // Z'' axis
}

// NewEulerAnglesXYZ creates an empty EulerAnglesXYZ struct, which represents
// the identity rotation.
func NewEulerAnglesXYZ() *EulerAnglesXYZ {
	return &EulerAnglesXYZ{Roll: 0, Pitch: 0, Yaw: 0}
}

// EulerAnglesXYZ returns orientation in XYZ-order Euler angle representation.
func (ea *EulerAnglesXYZ) EulerAnglesXYZ() *EulerAnglesXYZ {
	return ea
}

// Quaternion returns orientation in quaternion representation.
func (ea *EulerAnglesXYZ) Quaternion() quat.Number {
	sr, cr := math.Sincos(ea.Roll / 2)
	sp, cp := math.Sincos(ea.Pitch / 2)
	sy, cy := math.Sincos(ea.Yaw / 2)

	// q = qx(roll) * qy(pitch) * qz(yaw)
	return quat.Number{
		Real: cr*cp*cy - sr*sp*sy,
		Imag: sr*cp*cy + cr*sp*sy,
		Jmag: cr*sp*cy - sr*cp*sy,
		Kmag: cr*cp*sy + sr*sp*cy,
	}
}

// EulerAngles returns orientation in ZYX-order Euler angle representation.
func (ea *EulerAnglesXYZ) EulerAngles() *EulerAngles {
	return QuatToEulerAngles(ea.Quaternion())
}

// AxisAngles returns the orientation in axis angle representation.
func (ea *EulerAnglesXYZ) AxisAngles() *R4AA {
	return QuatToR4AA(ea.Quaternion())
}

// RotationVector returns the orientation in rotation vector representation.
func (ea *EulerAnglesXYZ) RotationVector() *RotationVector {
	return QuatToRotationVector(ea.Quaternion())
}

// RotationMatrix returns the orientation in rotation matrix representation.
func (ea *EulerAnglesXYZ) RotationMatrix() *RotationMatrix {
	return QuatToRotationMatrix(ea.Quaternion())
}

// Inverted returns the XYZ euler angles of the opposite rotation.
func (ea *EulerAnglesXYZ) Inverted() *EulerAnglesXYZ {
	return QuatToEulerAnglesXYZ(quat.Conj(ea.Quaternion()))
}

// QuatToEulerAnglesXYZ converts a quaternion to the XYZ-order euler angle
// representation, extracting the angles directly from the entries of the
// corresponding rotation matrix. The pitch extraction is singular when its
// sine is ±1, mirrored from the ZYX case.
func QuatToEulerAnglesXYZ(q quat.Number) *EulerAnglesXYZ {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag

	// matrix entries m02, m12, m22, m01, m00 of Rx*Ry*Rz
	sinPitch := 2 * (x*z + y*w)
	if sinPitch > 1 {
		sinPitch = 1
	} else if sinPitch < -1 {
		sinPitch = -1
	}
	return &EulerAnglesXYZ{
		Roll:  math.Atan2(2*(x*w-y*z), 1-2*(x*x+y*y)),
		Pitch: math.Asin(sinPitch),
		Yaw:   math.Atan2(2*(z*w-x*y), 1-2*(y*y+z*z)),
	}
}

// Unique returns the deterministic representative of all XYZ euler angle
// triples describing the same rotation as the receiver, with roll and yaw in
// [-π,π) and pitch within gimbalLockTol of [-π/2,π/2]. The singular axis is
// still pitch;
// inside the gimbal lock bands the redundant degree of freedom is folded
// into roll (the first applied angle) and yaw is set to zero.
func (ea *EulerAnglesXYZ) Unique() *EulerAnglesXYZ {
	roll := utils.CycleIntervalRadians(ea.Roll)
	pitch := utils.CycleIntervalRadians(ea.Pitch)
	yaw := utils.CycleIntervalRadians(ea.Yaw)

	switch {
	case pitch < -math.Pi/2-gimbalLockTol:
		if roll < 0 {
			roll += math.Pi
		} else {
			roll -= math.Pi
		}
		pitch = -(pitch + math.Pi)
		if yaw < 0 {
			yaw += math.Pi
		} else {
			yaw -= math.Pi
		}
	case -math.Pi/2-gimbalLockTol <= pitch && pitch <= -math.Pi/2+gimbalLockTol:
		// lower gimbal lock band: only roll-yaw is observable
		roll -= yaw
		yaw = 0
	case -math.Pi/2+gimbalLockTol < pitch && pitch < math.Pi/2-gimbalLockTol:
		// regular region
	case math.Pi/2-gimbalLockTol <= pitch && pitch <= math.Pi/2+gimbalLockTol:
		// upper gimbal lock band: only roll+yaw is observable
		roll += yaw
		yaw = 0
	default: // math.Pi/2+gimbalLockTol < pitch
		if roll < 0 {
			roll += math.Pi
		} else {
			roll -= math.Pi
		}
		pitch = -(pitch - math.Pi)
		if yaw < 0 {
			yaw += math.Pi
		} else {
			yaw -= math.Pi
		}
	}
	return &EulerAnglesXYZ{Roll: roll, Pitch: pitch, Yaw: yaw}
}

// SetUnique overwrites the receiver with its unique representative.
func (ea *EulerAnglesXYZ) SetUnique() *EulerAnglesXYZ {
	*ea = *ea.Unique()
	return ea
}

// String returns the components whitespace-separated, for diagnostics.
func (ea *EulerAnglesXYZ) String() string {
	return fmt.Sprintf("%v %v %v", ea.Roll, ea.Pitch, ea.Yaw)
}

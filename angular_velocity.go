package rotations

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"

	"github.com/mechlabs/rotations/utils"
)

// AngularVelocity contains angular velocity in rad/s across x/y/z axes.
type AngularVelocity r3.Vector

// R3ToAngVel converts an r3 vector to an angular velocity.
func R3ToAngVel(vec r3.Vector) *AngularVelocity {
	return &AngularVelocity{X: vec.X, Y: vec.Y, Z: vec.Z}
}

// OrientationToAngularVel calculates an angular velocity based on an
// orientation change over a time difference.
func OrientationToAngularVel(diff Orientation, dt float64) *AngularVelocity {
	axA := diff.AxisAngles()

	return &AngularVelocity{
		X: axA.RX * axA.Theta / dt,
		Y: axA.RY * axA.Theta / dt,
		Z: axA.RZ * axA.Theta / dt,
	}
}

// QuatToAngVel calculates an angular velocity based on an orientation change
// expressed in quaternions over a time difference.
func QuatToAngVel(diffQ quat.Number, dt float64) *AngularVelocity {
	w := quat.Scale(2/dt, quat.Log(diffQ))
	return &AngularVelocity{
		X: w.Imag,
		Y: w.Jmag,
		Z: w.Kmag,
	}
}

// EulerToAngVel calculates an angular velocity based on an orientation change
// expressed in euler angles over a time difference.
func EulerToAngVel(diffEu EulerAngles, dt float64) *AngularVelocity {
	return &AngularVelocity{
		X: diffEu.Roll/dt - math.Sin(diffEu.Pitch)*diffEu.Yaw/dt,
		Y: math.Cos(diffEu.Roll)*diffEu.Pitch/dt + math.Cos(diffEu.Pitch)*math.Sin(diffEu.Roll)*diffEu.Yaw/dt,
		Z: -math.Sin(diffEu.Roll)*diffEu.Pitch/dt + math.Cos(diffEu.Pitch)*math.Cos(diffEu.Roll)*diffEu.Yaw/dt,
	}
}

// RotMatToAngVel calculates an angular velocity based on an orientation
// change expressed in rotation matrices over a time difference.
func RotMatToAngVel(diffRm RotationMatrix, dt float64) *AngularVelocity {
	return OrientationToAngularVel(diffRm.AxisAngles(), dt)
}

// Degrees returns the angular velocity with components converted to deg/s.
func (av *AngularVelocity) Degrees() *AngularVelocity {
	return &AngularVelocity{
		X: utils.RadToDeg(av.X),
		Y: utils.RadToDeg(av.Y),
		Z: utils.RadToDeg(av.Z),
	}
}

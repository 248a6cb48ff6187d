package rotations

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// RotationMatrix is a 3x3 matrix in row major order that represents an
// active rotation of column vectors (world from body convention).
// A RotationMatrix must be orthonormal with determinant +1 to represent a
// rotation; the constructor and accessors do not validate or repair this,
// it is a precondition on the caller.
type RotationMatrix struct {
	mat [9]float64
}

// NewRotationMatrix creates the rotation matrix from a slice of floats in
// row major order. It errors if the slice does not hold exactly 9 elements.
func NewRotationMatrix(m []float64) (*RotationMatrix, error) {
	if len(m) != 9 {
		return nil, errors.Errorf("input slice has %d elements, need exactly 9", len(m))
	}
	return &RotationMatrix{[9]float64{m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8]}}, nil
}

// NewZeroRotationMatrix returns the identity rotation in matrix
// representation.
func NewZeroRotationMatrix() *RotationMatrix {
	return &RotationMatrix{[9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}}
}

// RotationMatrix returns the orientation in rotation matrix representation.
func (rm *RotationMatrix) RotationMatrix() *RotationMatrix {
	return rm
}

// Quaternion returns orientation in quaternion representation. The entries
// are recovered with the Shepperd method, branching on the largest of the
// trace and the diagonal entries so the division is always well conditioned.
func (rm *RotationMatrix) Quaternion() quat.Number {
	var q quat.Number
	m := rm.mat

	if tr := m[0] + m[4] + m[8]; tr > 0 {
		s := 2 * math.Sqrt(tr+1)
		q = quat.Number{
			Real: 0.25 * s,
			Imag: (m[7] - m[5]) / s,
			Jmag: (m[2] - m[6]) / s,
			Kmag: (m[3] - m[1]) / s,
		}
	} else if m[0] > m[4] && m[0] > m[8] {
		s := 2 * math.Sqrt(1+m[0]-m[4]-m[8])
		q = quat.Number{
			Real: (m[7] - m[5]) / s,
			Imag: 0.25 * s,
			Jmag: (m[1] + m[3]) / s,
			Kmag: (m[2] + m[6]) / s,
		}
	} else if m[4] > m[8] {
		s := 2 * math.Sqrt(1+m[4]-m[0]-m[8])
		q = quat.Number{
			Real: (m[2] - m[6]) / s,
			Imag: (m[1] + m[3]) / s,
			Jmag: 0.25 * s,
			Kmag: (m[5] + m[7]) / s,
		}
	} else {
		s := 2 * math.Sqrt(1+m[8]-m[0]-m[4])
		q = quat.Number{
			Real: (m[3] - m[1]) / s,
			Imag: (m[2] + m[6]) / s,
			Jmag: (m[5] + m[7]) / s,
			Kmag: 0.25 * s,
		}
	}
	return q
}

// EulerAngles returns orientation in Euler angle representation. This is a
// direct extraction from the matrix entries rather than a trip through the
// quaternion, both for accuracy and so the branch behavior near gimbal lock
// stays explicit and testable.
func (rm *RotationMatrix) EulerAngles() *EulerAngles {
	return EulerAnglesFromRotationMatrix(rm)
}

// EulerAnglesXYZ returns orientation in XYZ-order Euler angle representation.
func (rm *RotationMatrix) EulerAnglesXYZ() *EulerAnglesXYZ {
	return QuatToEulerAnglesXYZ(rm.Quaternion())
}

// AxisAngles returns the orientation in axis angle representation.
func (rm *RotationMatrix) AxisAngles() *R4AA {
	return QuatToR4AA(rm.Quaternion())
}

// RotationVector returns the orientation in rotation vector representation.
func (rm *RotationMatrix) RotationVector() *RotationVector {
	return QuatToRotationVector(rm.Quaternion())
}

// Inverted returns the inverse rotation, which for an orthonormal matrix is
// its transpose.
func (rm *RotationMatrix) Inverted() *RotationMatrix {
	m := rm.mat
	return &RotationMatrix{[9]float64{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}}
}

// At returns the float corresponding to the element at the specified
// location (row, col).
func (rm *RotationMatrix) At(row, col int) float64 {
	return rm.mat[3*row+col]
}

// Row returns the a vector with the indicated row.
func (rm *RotationMatrix) Row(row int) r3.Vector {
	return r3.Vector{X: rm.mat[3*row], Y: rm.mat[3*row+1], Z: rm.mat[3*row+2]}
}

// Col returns the a vector with the indicated column.
func (rm *RotationMatrix) Col(col int) r3.Vector {
	return r3.Vector{X: rm.mat[col], Y: rm.mat[3+col], Z: rm.mat[6+col]}
}

// Mul returns the vector rotated by the receiver.
func (rm *RotationMatrix) Mul(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: rm.mat[0]*v.X + rm.mat[1]*v.Y + rm.mat[2]*v.Z,
		Y: rm.mat[3]*v.X + rm.mat[4]*v.Y + rm.mat[5]*v.Z,
		Z: rm.mat[6]*v.X + rm.mat[7]*v.Y + rm.mat[8]*v.Z,
	}
}

// Mat returns the underlying storage as a gonum dense matrix, for callers
// that need to hand the rotation to general linear algebra routines. The
// returned matrix is a copy; mutating it does not affect the receiver.
func (rm *RotationMatrix) Mat() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		rm.mat[0], rm.mat[1], rm.mat[2],
		rm.mat[3], rm.mat[4], rm.mat[5],
		rm.mat[6], rm.mat[7], rm.mat[8],
	})
}

// String returns the entries whitespace-separated in row major order, for
// diagnostics.
func (rm *RotationMatrix) String() string {
	m := rm.mat
	return fmt.Sprintf("%v %v %v %v %v %v %v %v %v",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

// QuatToRotationMatrix converts a unit quaternion to a rotation matrix.
func QuatToRotationMatrix(q quat.Number) *RotationMatrix {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	return &RotationMatrix{[9]float64{
		1 - 2*y*y - 2*z*z, 2*x*y - 2*z*w, 2*x*z + 2*y*w,
		2*x*y + 2*z*w, 1 - 2*x*x - 2*z*z, 2*y*z - 2*x*w,
		2*x*z - 2*y*w, 2*y*z + 2*x*w, 1 - 2*x*x - 2*y*y,
	}}
}

package rotations

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// OrientationType defines what orientation representations are known to the
// JSON configuration layer.
type OrientationType string

// The set of allowed representations for orientation. Rotation matrices are
// deliberately not configurable: hand-written JSON cannot be trusted to be
// orthonormal and this library does not repair invalid representations.
const (
	EulerAnglesType    = OrientationType("euler_angles")
	EulerAnglesXYZType = OrientationType("euler_angles_xyz")
	QuaternionType     = OrientationType("quaternion")
	AxisAnglesType     = OrientationType("axis_angles")
	RotationVectorType = OrientationType("rotation_vector")
)

// RawOrientation holds the underlying type of orientation and the value.
type RawOrientation struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

// quaternionConfig is the JSON shape of a quaternion; quat.Number itself has
// no json tags.
type quaternionConfig struct {
	W float64 `json:"w"`
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// rotationVectorConfig is the JSON shape of a rotation vector.
type rotationVectorConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// ParseOrientation will use the Type in RawOrientation to unmarshal the
// Value into the correct struct that implements Orientation. An empty
// configuration parses to the zero orientation.
func ParseOrientation(ro RawOrientation) (Orientation, error) {
	// use the type to unmarshal the value
	switch OrientationType(ro.Type) {
	case "":
		return NewZeroOrientation(), nil
	case EulerAnglesType:
		var ea EulerAngles
		if err := json.Unmarshal(ro.Value, &ea); err != nil {
			return nil, err
		}
		return &ea, nil
	case EulerAnglesXYZType:
		var ea EulerAnglesXYZ
		if err := json.Unmarshal(ro.Value, &ea); err != nil {
			return nil, err
		}
		return &ea, nil
	case QuaternionType:
		var q quaternionConfig
		if err := json.Unmarshal(ro.Value, &q); err != nil {
			return nil, err
		}
		if q.W == 0 && q.X == 0 && q.Y == 0 && q.Z == 0 {
			return nil, errors.New("orientation quaternion cannot have zero norm")
		}
		quatern := Quaternion{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
		quatern.Normalize()
		return &quatern, nil
	case AxisAnglesType:
		var r4 R4AA
		if err := json.Unmarshal(ro.Value, &r4); err != nil {
			return nil, err
		}
		return &r4, nil
	case RotationVectorType:
		var rvc rotationVectorConfig
		if err := json.Unmarshal(ro.Value, &rvc); err != nil {
			return nil, err
		}
		return &RotationVector{X: rvc.X, Y: rvc.Y, Z: rvc.Z}, nil
	default:
		return nil, errors.Errorf("orientation type %s not recognized", ro.Type)
	}
}

// OrientationMap encodes the orientation to a typed map that marshals to the
// same JSON ParseOrientation accepts.
func OrientationMap(o Orientation) (map[string]interface{}, error) {
	switch oo := o.(type) {
	case *EulerAngles:
		return map[string]interface{}{"type": string(EulerAnglesType), "value": oo}, nil
	case *EulerAnglesXYZ:
		return map[string]interface{}{"type": string(EulerAnglesXYZType), "value": oo}, nil
	case *Quaternion:
		value := quaternionConfig{W: oo.Real, X: oo.Imag, Y: oo.Jmag, Z: oo.Kmag}
		return map[string]interface{}{"type": string(QuaternionType), "value": value}, nil
	case *R4AA:
		return map[string]interface{}{"type": string(AxisAnglesType), "value": oo}, nil
	case *RotationVector:
		value := rotationVectorConfig{X: oo.X, Y: oo.Y, Z: oo.Z}
		return map[string]interface{}{"type": string(RotationVectorType), "value": value}, nil
	default:
		return nil, errors.Errorf("do not know how to map Orientation type %T to json fields", o)
	}
}

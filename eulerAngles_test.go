package rotations

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestEulerQuatRoundTrip(t *testing.T) {
	for _, ea := range []*EulerAngles{
		{Roll: 0.1, Pitch: 0.2, Yaw: 0.3},
		{Roll: -2.5, Pitch: 1.1, Yaw: 3.0},
		{Roll: math.Pi - 0.01, Pitch: -1.5, Yaw: -math.Pi + 0.01},
	} {
		back := QuatToEulerAngles(ea.Quaternion())
		test.That(t, back.Roll, test.ShouldAlmostEqual, ea.Roll)
		test.That(t, back.Pitch, test.ShouldAlmostEqual, ea.Pitch)
		test.That(t, back.Yaw, test.ShouldAlmostEqual, ea.Yaw)
	}
}

func TestEulerFromMatrixMatchesQuatPath(t *testing.T) {
	for name, q := range sampleOrientations() {
		t.Run(name, func(t *testing.T) {
			rm := QuatToRotationMatrix(q)
			fromMat := EulerAnglesFromRotationMatrix(rm)
			// the direct extraction must agree with the quaternion one as a
			// rotation; near gimbal lock the triples may differ, so compare
			// canonical forms after SetUnique
			direct := fromMat.SetUnique()
			viaQuat := QuatToEulerAngles(q).SetUnique()
			test.That(t, OrientationAlmostEqual(direct, viaQuat), test.ShouldBeTrue)
		})
	}
}

func TestUniqueGimbalFold(t *testing.T) {
	// inside the upper band only yaw-roll is observable
	u := (&EulerAngles{Yaw: 1.0, Pitch: math.Pi / 2, Roll: 0.3}).Unique()
	test.That(t, u.Roll, test.ShouldAlmostEqual, 0)
	test.That(t, u.Yaw, test.ShouldAlmostEqual, 0.7)

	// inside the lower band only yaw+roll is observable
	l := (&EulerAngles{Yaw: 1.0, Pitch: -math.Pi / 2, Roll: 0.3}).Unique()
	test.That(t, l.Roll, test.ShouldAlmostEqual, 0)
	test.That(t, l.Yaw, test.ShouldAlmostEqual, 1.3)
	test.That(t, l.Pitch, test.ShouldAlmostEqual, -math.Pi/2)
}

func TestUniqueLowerPoleReflect(t *testing.T) {
	in := &EulerAngles{Yaw: 0.2, Pitch: -math.Pi/2 - 0.01, Roll: 0.1}
	out := in.Unique()

	// reflected per the lower branch: positive yaw and roll lose pi, pitch
	// reflects back into range
	test.That(t, out.Yaw, test.ShouldAlmostEqual, 0.2-math.Pi)
	test.That(t, out.Pitch, test.ShouldAlmostEqual, -(math.Pi/2 - 0.01))
	test.That(t, out.Roll, test.ShouldAlmostEqual, 0.1-math.Pi)

	// the reflected triple is the same rotation: its rotation matrix must
	// reproduce the original triple's matrix
	rmIn := in.RotationMatrix()
	rmOut := out.RotationMatrix()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			test.That(t, rmOut.At(row, col), test.ShouldAlmostEqual, rmIn.At(row, col))
		}
	}
}

func TestUniqueUpperPoleReflect(t *testing.T) {
	in := &EulerAngles{Yaw: -0.4, Pitch: math.Pi/2 + 0.02, Roll: -2.0}
	out := in.Unique()
	test.That(t, out.Yaw, test.ShouldAlmostEqual, -0.4+math.Pi)
	test.That(t, out.Pitch, test.ShouldAlmostEqual, math.Pi/2-0.02)
	test.That(t, out.Roll, test.ShouldAlmostEqual, -2.0+math.Pi)
	test.That(t, OrientationAlmostEqual(in, out), test.ShouldBeTrue)
}

func TestUniqueWrap(t *testing.T) {
	in := &EulerAngles{Yaw: 2*math.Pi + 0.5, Pitch: -0.3, Roll: -2*math.Pi - 1.0}
	out := in.Unique()
	test.That(t, out.Yaw, test.ShouldAlmostEqual, 0.5)
	test.That(t, out.Pitch, test.ShouldAlmostEqual, -0.3)
	test.That(t, out.Roll, test.ShouldAlmostEqual, -1.0)
}

func TestUniqueRangeAndIdempotence(t *testing.T) {
	step := 0.375
	for yaw := -3 * math.Pi; yaw < 3*math.Pi; yaw += step {
		for pitch := -3 * math.Pi; pitch < 3*math.Pi; pitch += step {
			for roll := -3 * math.Pi; roll < 3*math.Pi; roll += step {
				in := &EulerAngles{Roll: roll, Pitch: pitch, Yaw: yaw}
				u := in.Unique()

				test.That(t, u.Yaw, test.ShouldBeBetweenOrEqual, -math.Pi, math.Pi)
				test.That(t, u.Yaw, test.ShouldBeLessThan, math.Pi)
				test.That(t, u.Roll, test.ShouldBeBetweenOrEqual, -math.Pi, math.Pi)
				test.That(t, u.Roll, test.ShouldBeLessThan, math.Pi)
				// pitch lands in [-π/2, π/2); the upper gimbal band is the
				// documented exception where +π/2 passes through unchanged
				test.That(t, u.Pitch, test.ShouldBeGreaterThanOrEqualTo, -math.Pi/2-gimbalLockTol)
				test.That(t, u.Pitch, test.ShouldBeLessThanOrEqualTo, math.Pi/2+gimbalLockTol)

				// canonicalizing is a no-op on an already canonical triple
				uu := u.Unique()
				test.That(t, uu, test.ShouldResemble, u)

				// and it never changes the underlying rotation
				test.That(t, OrientationAlmostEqual(in, u), test.ShouldBeTrue)
			}
		}
	}
}

func TestUniqueBoundaryContinuity(t *testing.T) {
	// straddling the edge of the lower gimbal band changes which branch is
	// taken, but not the rotation that is represented
	eps := 1e-9
	for _, pitch := range []float64{
		-math.Pi/2 - gimbalLockTol - eps,
		-math.Pi/2 - gimbalLockTol + eps,
		math.Pi/2 - gimbalLockTol - eps,
		math.Pi/2 - gimbalLockTol + eps,
	} {
		in := &EulerAngles{Yaw: 0.8, Pitch: pitch, Roll: 0.1}
		u := in.Unique()
		test.That(t, angleBetween(in.Quaternion(), u.Quaternion()), test.ShouldBeLessThan, 1e-3)
	}
}

func TestSetUniqueInPlace(t *testing.T) {
	ea := &EulerAngles{Yaw: 1.0, Pitch: math.Pi / 2, Roll: 0.3}
	ret := ea.SetUnique()
	test.That(t, ret, test.ShouldEqual, ea) // same instance
	test.That(t, ea.Roll, test.ShouldAlmostEqual, 0)
	test.That(t, ea.Yaw, test.ShouldAlmostEqual, 0.7)
}

func TestEulerInvert(t *testing.T) {
	ea := &EulerAngles{Roll: 0.7, Pitch: -0.4, Yaw: 2.1}
	inv := ea.Inverted()
	test.That(t, OrientationAlmostEqual(Compose(ea, inv), NewZeroOrientation()), test.ShouldBeTrue)

	cp := *ea
	cp.Invert()
	test.That(t, cp.Roll, test.ShouldAlmostEqual, inv.Roll)
	test.That(t, cp.Pitch, test.ShouldAlmostEqual, inv.Pitch)
	test.That(t, cp.Yaw, test.ShouldAlmostEqual, inv.Yaw)
}

func TestEulerAliases(t *testing.T) {
	ea := &EulerAngles{}
	ea.SetX(0.1)
	ea.SetY(0.2)
	ea.SetZ(0.3)
	test.That(t, ea.X(), test.ShouldEqual, ea.Roll)
	test.That(t, ea.Y(), test.ShouldEqual, ea.Pitch)
	test.That(t, ea.Z(), test.ShouldEqual, ea.Yaw)
	test.That(t, ea.String(), test.ShouldEqual, "0.1 0.2 0.3")
}

package utils

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestDegRad(t *testing.T) {
	test.That(t, DegToRad(0), test.ShouldAlmostEqual, 0)
	test.That(t, DegToRad(5.625), test.ShouldAlmostEqual, math.Pi/32)
	test.That(t, DegToRad(180), test.ShouldAlmostEqual, math.Pi)
	test.That(t, DegToRad(360), test.ShouldAlmostEqual, 2*math.Pi)

	test.That(t, RadToDeg(math.Pi), test.ShouldAlmostEqual, 180)
	test.That(t, RadToDeg(0), test.ShouldAlmostEqual, 0)
	test.That(t, DegToRad(RadToDeg(12.5)), test.ShouldAlmostEqual, 12.5)
}

func TestAngleHelpers(t *testing.T) {
	test.That(t, AngleDiffDeg(10, 350), test.ShouldAlmostEqual, 20)
	test.That(t, AngleDiffDeg(350, 10), test.ShouldAlmostEqual, 20)
	test.That(t, AngleDiffDeg(90, 90), test.ShouldAlmostEqual, 0)
	test.That(t, AntiCWDeg(90), test.ShouldAlmostEqual, 270)
	test.That(t, ModAngDeg(-90), test.ShouldAlmostEqual, 270)
	test.That(t, ModAngDeg(725), test.ShouldAlmostEqual, 5)
}

func TestFloatingPointModulo(t *testing.T) {
	// unlike math.Mod, results land in [0, y) even for negative x
	test.That(t, FloatingPointModulo(-1, 2*math.Pi), test.ShouldAlmostEqual, 2*math.Pi-1)
	test.That(t, FloatingPointModulo(1, 2*math.Pi), test.ShouldAlmostEqual, 1)
	test.That(t, FloatingPointModulo(2*math.Pi+0.5, 2*math.Pi), test.ShouldAlmostEqual, 0.5)
	test.That(t, FloatingPointModulo(-3*math.Pi, 2*math.Pi), test.ShouldAlmostEqual, math.Pi)
}

func TestCycleIntervalRadians(t *testing.T) {
	test.That(t, CycleIntervalRadians(0), test.ShouldAlmostEqual, 0)
	test.That(t, CycleIntervalRadians(math.Pi), test.ShouldAlmostEqual, -math.Pi)
	test.That(t, CycleIntervalRadians(-math.Pi), test.ShouldAlmostEqual, -math.Pi)
	test.That(t, CycleIntervalRadians(3*math.Pi/2), test.ShouldAlmostEqual, -math.Pi/2)
	test.That(t, CycleIntervalRadians(-5*math.Pi), test.ShouldAlmostEqual, -math.Pi)
	test.That(t, CycleIntervalRadians(7), test.ShouldAlmostEqual, 7-2*math.Pi)
}

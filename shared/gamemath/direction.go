package gamemath

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Direction returns v scaled to unit length, or the zero vector when v is zero.
func Direction(v cp.Vector) cp.Vector {
	if v.X == 0 && v.Y == 0 {
		return cp.Vector{}
	}
	return v.Normalize()
}

// FacingDegrees returns the counter-clockwise rotation, in [0, 360), that turns
// the +Y axis onto v. The zero vector faces +Y.
func FacingDegrees(v cp.Vector) float64 {
	if v.X == 0 && v.Y == 0 {
		return 0
	}
	// unsigned angle from +Y
	a := Degrees(math.Acos(clamp(v.Y/v.Length(), -1, 1)))
	if v.X > 0 {
		a = 360 - a
	}
	if a >= 360 {
		a -= 360
	}
	return a
}

// RotationVector rotates the local offset by angle radians counter-clockwise.
func RotationVector(offset cp.Vector, angle float64) cp.Vector {
	return offset.Rotate(cp.ForAngle(angle))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

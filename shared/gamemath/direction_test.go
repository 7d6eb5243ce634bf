package gamemath

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

func TestDirection(t *testing.T) {
	assert.Equal(t, cp.Vector{}, Direction(cp.Vector{}))

	d := Direction(cp.Vector{X: 3, Y: 4})
	assert.InDelta(t, 0.6, d.X, 1e-9)
	assert.InDelta(t, 0.8, d.Y, 1e-9)
}

func TestFacingDegreesRange(t *testing.T) {
	for deg := 0.0; deg < 360; deg += 15 {
		v := cp.Vector{Y: 1}.Rotate(cp.ForAngle(Radians(deg)))
		got := FacingDegrees(v)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Less(t, got, 360.0)
		assert.InDelta(t, deg, got, 1e-6, "rotation %.0f", deg)
	}
	assert.Zero(t, FacingDegrees(cp.Vector{}))
}

func TestRadiansRoundTrip(t *testing.T) {
	assert.InDelta(t, math.Pi/4, Radians(45), 1e-12)
	assert.InDelta(t, 270, Degrees(Radians(270)), 1e-9)
}

package systems

import (
	"math"
	"testing"

	"github.com/automoto/hitbox-arena/input"
	"github.com/automoto/hitbox-arena/shared/gamemath"
	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

func held(actions ...input.Action) *input.State {
	s := &input.State{}
	for _, a := range actions {
		s.Current[a] = true
	}
	return s
}

func TestMovementVector(t *testing.T) {
	diag := 1 / math.Sqrt2
	tests := []struct {
		name string
		in   *input.State
		want cp.Vector
	}{
		{"nothing held", held(), cp.Vector{}},
		{"right", held(input.ActionMoveRight), cp.Vector{X: 1}},
		{"up", held(input.ActionMoveUp), cp.Vector{Y: 1}},
		{"down left", held(input.ActionMoveDown, input.ActionMoveLeft), cp.Vector{X: -diag, Y: -diag}},
		{"left and right cancel", held(input.ActionMoveLeft, input.ActionMoveRight), cp.Vector{}},
		{"all four cancel", held(input.ActionMoveUp, input.ActionMoveDown, input.ActionMoveLeft, input.ActionMoveRight), cp.Vector{}},
		{"up down cancel leaving right", held(input.ActionMoveUp, input.ActionMoveDown, input.ActionMoveRight), cp.Vector{X: 1}},
		{"nil state", nil, cp.Vector{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MovementVector(tt.in)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
			assert.LessOrEqual(t, got.Length(), 1+1e-9)
		})
	}
}

func TestFacingDegrees(t *testing.T) {
	tests := []struct {
		movement cp.Vector
		want     float64
	}{
		{cp.Vector{X: 0, Y: 1}, 0},
		{cp.Vector{X: -1, Y: 0}, 90},
		{cp.Vector{X: 0, Y: -1}, 180},
		{cp.Vector{X: 1, Y: 0}, 270},
		{cp.Vector{X: 1, Y: 1}.Normalize(), 315},
		{cp.Vector{X: -1, Y: 1}.Normalize(), 45},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, FacingDegrees(tt.movement), 1e-9, "movement %v", tt.movement)
	}
}

func TestFacingPointsUpAxisAlongMovement(t *testing.T) {
	for _, movement := range []cp.Vector{{X: 1}, {X: -1}, {Y: -1}, cp.Vector{X: 1, Y: -1}.Normalize()} {
		angle := gamemath.Radians(FacingDegrees(movement))
		up := cp.Vector{Y: 1}.Rotate(cp.ForAngle(angle))
		assert.InDelta(t, movement.X, up.X, 1e-9)
		assert.InDelta(t, movement.Y, up.Y, 1e-9)
	}
}

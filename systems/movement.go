package systems

import (
	"github.com/automoto/hitbox-arena/input"
	"github.com/automoto/hitbox-arena/shared/gamemath"
	"github.com/jakecoffman/cp"
)

// MovementVector composes the held direction actions into a unit vector.
// Opposite directions cancel; no direction held gives the zero vector.
func MovementVector(in *input.State) cp.Vector {
	var v cp.Vector
	if in == nil {
		return v
	}
	if in.Pressed(input.ActionMoveUp) {
		v.Y++
	}
	if in.Pressed(input.ActionMoveDown) {
		v.Y--
	}
	if in.Pressed(input.ActionMoveLeft) {
		v.X--
	}
	if in.Pressed(input.ActionMoveRight) {
		v.X++
	}
	return gamemath.Direction(v)
}

// FacingDegrees is the rotation that points a character's +Y side along movement.
func FacingDegrees(movement cp.Vector) float64 {
	return gamemath.FacingDegrees(movement)
}

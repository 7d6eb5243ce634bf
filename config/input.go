package config

import "github.com/automoto/hitbox-arena/input"

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings input.Bindings
}

// Input is the global input configuration
var Input InputConfig

func defaultInput() InputConfig {
	return InputConfig{
		Bindings: input.Bindings{
			input.ActionMoveUp:      {input.KeyW, input.KeyArrowUp},
			input.ActionMoveLeft:    {input.KeyA, input.KeyArrowLeft},
			input.ActionMoveDown:    {input.KeyS, input.KeyArrowDown},
			input.ActionMoveRight:   {input.KeyD, input.KeyArrowRight},
			input.ActionAttack:      {input.KeyF},
			input.ActionRespawn:     {input.KeyR},
			input.ActionToggleDebug: {input.KeyF3},
		},
	}
}

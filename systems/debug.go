package systems

import (
	"log"

	cfg "github.com/automoto/hitbox-arena/config"
	"github.com/automoto/hitbox-arena/input"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebugToggle flips the volume overlay on the debug key and remembers the choice.
func UpdateDebugToggle(ecs *ecs.ECS) {
	in := currentInput(ecs)
	if in == nil || !in.JustPressed(input.ActionToggleDebug) {
		return
	}
	cfg.Debug.DrawVolumes = !cfg.Debug.DrawVolumes
	log.Printf("debug overlay: %t", cfg.Debug.DrawVolumes)
	SaveCurrentSettings()
}

package systems

import (
	"github.com/automoto/hitbox-arena/arena"
	"github.com/automoto/hitbox-arena/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDecay counts transient entities down and despawns them on their last step.
func UpdateDecay(ecs *ecs.ECS) {
	cmds := arena.Get(ecs).Commands
	components.Decay.Each(ecs.World, func(e *donburi.Entry) {
		decay := components.Decay.Get(e)
		if decay.Counter <= 1 {
			cmds.Despawn(e.Entity())
			return
		}
		decay.Counter--
	})
}

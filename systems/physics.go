package systems

import (
	"github.com/automoto/hitbox-arena/arena"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics advances the solver one step and refreshes overlap reports.
func UpdatePhysics(ecs *ecs.ECS) {
	rt := arena.Get(ecs)
	rt.Physics.Step(ecs.World)
	rt.Collision.Update(ecs.World)
}

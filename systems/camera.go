package systems

import (
	"github.com/automoto/hitbox-arena/components"
	"github.com/automoto/hitbox-arena/config"
	"github.com/automoto/hitbox-arena/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the default camera toward the player.
func UpdateCamera(ecs *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return // no player, camera holds its position
	}
	target := components.Body.Get(playerEntry).Position

	s := config.Camera.FollowSmoothing
	camera.Position.X += (target.X - camera.Position.X) * s
	camera.Position.Y += (target.Y - camera.Position.Y) * s
}

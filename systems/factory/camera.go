package factory

import (
	"github.com/automoto/hitbox-arena/archetypes"
	"github.com/automoto/hitbox-arena/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Name.SetValue(camera, components.NameData{Value: "Camera"})
	components.Camera.SetValue(camera, components.CameraData{DefaultUI: true})
	return camera
}

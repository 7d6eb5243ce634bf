package archetypes

import (
	"github.com/automoto/hitbox-arena/components"
	cfg "github.com/automoto/hitbox-arena/config"
	"github.com/automoto/hitbox-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Body,
		components.Volume,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Transform,
		components.Body,
		components.Volume,
	)
	Hurtbox = newArchetype(
		tags.Hurtbox,
		components.Transform,
		components.Volume,
	)
	Hitbox = newArchetype(
		tags.Hitbox,
		components.Decay,
		components.Transform,
		components.Volume,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
		components.Name,
	)
	Input = newArchetype(
		components.Input,
	)
	Arena = newArchetype(
		components.Arena,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.Create(cfg.Default, all...))
}

package factory

import (
	"fmt"

	"github.com/automoto/hitbox-arena/arena"
	"github.com/automoto/hitbox-arena/archetypes"
	"github.com/automoto/hitbox-arena/components"
	"github.com/automoto/hitbox-arena/hierarchy"
	"github.com/automoto/hitbox-arena/layers"
	"github.com/automoto/hitbox-arena/tags"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// attachVolume puts the entry's volume into the solver and the broadphase.
// The entry must already be parented so its body owner can be found.
func attachVolume(ecs *ecs.ECS, e *donburi.Entry) error {
	if err := arena.Get(ecs).Physics.AttachVolume(ecs.World, e); err != nil {
		return err
	}
	arena.Get(ecs).Collision.Register(e)
	return nil
}

// CreateHurtbox gives owner a sensor circle on the hurt layer, placed at
// offset from the owner.
func CreateHurtbox(ecs *ecs.ECS, owner *donburi.Entry, radius float64, offset cp.Vector) (*donburi.Entry, error) {
	hurtbox := archetypes.Hurtbox.Spawn(ecs)
	components.Transform.SetValue(hurtbox, components.TransformData{Local: offset})
	components.Volume.SetValue(hurtbox, components.CircleVolume(radius, layers.RoleHurt, true))

	hierarchy.SetParent(ecs.World, hurtbox, owner)
	if err := attachVolume(ecs, hurtbox); err != nil {
		return nil, fmt.Errorf("failed to attach hurtbox: %w", err)
	}
	return hurtbox, nil
}

// Hurtbox returns the first hurtbox directly owned by e.
func Hurtbox(w donburi.World, e *donburi.Entry) (*donburi.Entry, bool) {
	for _, c := range hierarchy.Children(w, e) {
		if c.HasComponent(tags.Hurtbox) {
			return c, true
		}
	}
	return nil, false
}

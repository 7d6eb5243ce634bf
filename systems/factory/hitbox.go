package factory

import (
	"fmt"

	"github.com/automoto/hitbox-arena/archetypes"
	"github.com/automoto/hitbox-arena/components"
	cfg "github.com/automoto/hitbox-arena/config"
	"github.com/automoto/hitbox-arena/hierarchy"
	"github.com/automoto/hitbox-arena/layers"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHitbox spawns a short-lived melee hitbox owned by owner. It rides
// on the owner's body and decays after Combat.HitboxDecay steps.
func CreateHitbox(ecs *ecs.ECS, owner *donburi.Entry) (*donburi.Entry, error) {
	if owner == nil || !owner.Valid() {
		return nil, fmt.Errorf("failed to create hitbox: owner no longer exists")
	}

	hitbox := archetypes.Hitbox.Spawn(ecs)
	components.Transform.SetValue(hitbox, components.TransformData{
		Local: cp.Vector{X: cfg.Combat.HitboxOffsetX, Y: cfg.Combat.HitboxOffsetY},
	})
	components.Decay.SetValue(hitbox, components.DecayData{Counter: cfg.Combat.HitboxDecay})
	components.Volume.SetValue(hitbox, components.RectVolume(cfg.Combat.HitboxWidth, cfg.Combat.HitboxHeight, layers.RoleHit, true))

	hierarchy.SetParent(ecs.World, hitbox, owner)
	if err := attachVolume(ecs, hitbox); err != nil {
		return nil, fmt.Errorf("failed to attach hitbox: %w", err)
	}

	if owner.HasComponent(components.Player) {
		components.Player.Get(owner).Attacks++
	}
	return hitbox, nil
}

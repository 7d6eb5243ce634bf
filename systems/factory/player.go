package factory

import (
	"fmt"

	"github.com/automoto/hitbox-arena/arena"
	"github.com/automoto/hitbox-arena/archetypes"
	"github.com/automoto/hitbox-arena/components"
	cfg "github.com/automoto/hitbox-arena/config"
	"github.com/automoto/hitbox-arena/layers"
	"github.com/automoto/hitbox-arena/shared/gamemath"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player body with its hurtbox.
func CreatePlayer(ecs *ecs.ECS) (*donburi.Entry, error) {
	player := archetypes.Player.Spawn(ecs)

	components.Transform.SetValue(player, components.TransformData{
		Local: cp.Vector{X: cfg.Player.SpawnX, Y: cfg.Player.SpawnY},
		Angle: gamemath.Radians(cfg.Player.SpawnRotationDeg),
	})
	components.Body.SetValue(player, components.BodyData{
		Kind:         components.BodyDynamic,
		Mass:         cfg.Player.Mass,
		LockRotation: true,
	})
	components.Volume.SetValue(player, components.RectVolume(cfg.Player.BodySize, cfg.Player.BodySize, layers.RolePhysics, false))
	components.Player.SetValue(player, components.PlayerData{
		Direction: cp.Vector{X: 0, Y: 1},
		FacingDeg: cfg.Player.SpawnRotationDeg,
	})

	if err := arena.Get(ecs).Physics.AddBody(player); err != nil {
		return nil, fmt.Errorf("failed to create player body: %w", err)
	}
	if err := attachVolume(ecs, player); err != nil {
		return nil, fmt.Errorf("failed to attach player volume: %w", err)
	}

	offset := cp.Vector{X: cfg.Player.HurtboxOffsetX, Y: cfg.Player.HurtboxOffsetY}
	if _, err := CreateHurtbox(ecs, player, cfg.Player.HurtboxRadius, offset); err != nil {
		return nil, err
	}
	return player, nil
}

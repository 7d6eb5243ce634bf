package factory

import (
	"fmt"

	"github.com/automoto/hitbox-arena/arena"
	"github.com/automoto/hitbox-arena/archetypes"
	"github.com/automoto/hitbox-arena/components"
	cfg "github.com/automoto/hitbox-arena/config"
	"github.com/automoto/hitbox-arena/layers"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a kinematic enemy with its hurtbox at the enemy spawn point.
func CreateEnemy(ecs *ecs.ECS) (*donburi.Entry, error) {
	enemy := archetypes.Enemy.Spawn(ecs)

	components.Transform.SetValue(enemy, components.TransformData{
		Local: cp.Vector{X: cfg.Enemy.SpawnX, Y: cfg.Enemy.SpawnY},
	})
	components.Body.SetValue(enemy, components.BodyData{
		Kind:         components.BodyKinematic,
		LockRotation: true,
	})
	components.Volume.SetValue(enemy, components.RectVolume(cfg.Enemy.BodySize, cfg.Enemy.BodySize, layers.RolePhysics, false))
	components.Enemy.SetValue(enemy, components.EnemyData{SpawnIndex: nextSpawnIndex(ecs)})

	if err := arena.Get(ecs).Physics.AddBody(enemy); err != nil {
		return nil, fmt.Errorf("failed to create enemy body: %w", err)
	}
	if err := attachVolume(ecs, enemy); err != nil {
		return nil, fmt.Errorf("failed to attach enemy volume: %w", err)
	}

	offset := cp.Vector{X: cfg.Enemy.HurtboxOffsetX, Y: cfg.Enemy.HurtboxOffsetY}
	if _, err := CreateHurtbox(ecs, enemy, cfg.Enemy.HurtboxRadius, offset); err != nil {
		return nil, err
	}
	return enemy, nil
}

func nextSpawnIndex(ecs *ecs.ECS) int {
	e, ok := components.Arena.First(ecs.World)
	if !ok {
		e = archetypes.Arena.Spawn(ecs)
	}
	state := components.Arena.Get(e)
	state.EnemiesSpawned++
	return state.EnemiesSpawned
}

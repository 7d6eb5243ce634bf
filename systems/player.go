package systems

import (
	"log"

	"github.com/automoto/hitbox-arena/arena"
	"github.com/automoto/hitbox-arena/archetypes"
	"github.com/automoto/hitbox-arena/components"
	cfg "github.com/automoto/hitbox-arena/config"
	"github.com/automoto/hitbox-arena/events"
	"github.com/automoto/hitbox-arena/input"
	"github.com/automoto/hitbox-arena/shared/gamemath"
	"github.com/automoto/hitbox-arena/systems/factory"
	"github.com/automoto/hitbox-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer maps the input state onto the player's body.
func UpdatePlayer(ecs *ecs.ECS) {
	in := currentInput(ecs)
	if in == nil {
		return
	}

	if in.JustPressed(input.ActionRespawn) {
		events.SpawnEnemy.Publish(ecs.World, events.SpawnEnemyEvent{})
		return
	}

	player, ok := singlePlayer(ecs)
	if !ok {
		return
	}

	movement := MovementVector(in)
	body := components.Body.Get(player)
	body.Velocity = movement.Mult(cfg.Player.Speed)

	if movement.X != 0 || movement.Y != 0 {
		data := components.Player.Get(player)
		data.Direction = movement
		data.FacingDeg = FacingDegrees(movement)
		body.Angle = gamemath.Radians(data.FacingDeg)
	}

	if in.JustPressed(input.ActionAttack) {
		owner := player.Entity()
		arena.Get(ecs).Commands.Spawn(func(w donburi.World) {
			if !w.Valid(owner) {
				return
			}
			if _, err := factory.CreateHitbox(ecs, w.Entry(owner)); err != nil {
				log.Printf("Warning: %v", err)
			}
		})
	}
}

// singlePlayer returns the player when exactly one exists. A change to any
// other count is logged once.
func singlePlayer(ecs *ecs.ECS) (*donburi.Entry, bool) {
	var player *donburi.Entry
	count := 0
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		count++
		player = e
	})

	state := getOrCreateArena(ecs)
	if count != state.PlayerCount && count != 1 && cfg.Debug.LogHits {
		log.Printf("player movement skipped: %d players", count)
	}
	state.PlayerCount = count
	return player, count == 1
}

func getOrCreateArena(ecs *ecs.ECS) *components.ArenaData {
	e, ok := components.Arena.First(ecs.World)
	if !ok {
		e = archetypes.Arena.Spawn(ecs)
	}
	return components.Arena.Get(e)
}

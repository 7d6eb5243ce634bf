package systems

import (
	"testing"

	"github.com/automoto/hitbox-arena/arena"
	"github.com/automoto/hitbox-arena/collision"
	"github.com/automoto/hitbox-arena/config"
	"github.com/automoto/hitbox-arena/input"
	"github.com/automoto/hitbox-arena/physics"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// newArena builds the full arena with every system registered and started.
// configure runs after the config reset and before startup.
func newArena(t *testing.T, configure func()) (*ecs.ECS, input.KeySet) {
	t.Helper()
	config.Reset()
	t.Cleanup(config.Reset)
	if configure != nil {
		configure()
	}

	keys := input.KeySet{}
	game := arena.NewECS(
		donburi.NewWorld(),
		physics.NewWorld(config.Physics),
		collision.NewReporter(config.Physics),
		keys,
	)
	Register(game)
	Start(game)
	return game, keys
}

// newBareECS runs only the given systems, followed by the sync, over a world
// without solver or broadphase.
func newBareECS(t *testing.T, systems ...ecs.System) *ecs.ECS {
	t.Helper()
	config.Reset()
	t.Cleanup(config.Reset)

	game := arena.NewECS(donburi.NewWorld(), nil, nil, input.KeySet{})
	for _, s := range systems {
		game.AddSystem(s)
	}
	game.AddSystem(arena.Sync)
	return game
}

func count(w donburi.World, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(w)
}

func first(t *testing.T, w donburi.World, c donburi.IComponentType) *donburi.Entry {
	t.Helper()
	e, ok := donburi.NewQuery(filter.Contains(c)).First(w)
	require.True(t, ok)
	return e
}

func valid(w donburi.World, e *donburi.Entry) bool {
	return w.Valid(e.Entity())
}

package arena

import (
	"testing"

	"github.com/automoto/hitbox-arena/collision"
	"github.com/automoto/hitbox-arena/components"
	cfg "github.com/automoto/hitbox-arena/config"
	"github.com/automoto/hitbox-arena/layers"
	"github.com/automoto/hitbox-arena/physics"
	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	devents "github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

type ping struct{ n int }

func names(w donburi.World) int {
	return donburi.NewQuery(filter.Contains(components.Name)).Count(w)
}

func TestSyncDeliversEventsAndAppliesTheirCommands(t *testing.T) {
	game := NewECS(donburi.NewWorld(), nil, nil, nil)
	pings := devents.NewEventType[ping]()

	var delivered []int
	Observe(game, pings, func(e *ecs.ECS, ev ping) {
		delivered = append(delivered, ev.n)
		Get(e).Commands.Spawn(func(w donburi.World) {
			w.Create(components.Name)
		})
	})
	step := 0
	game.AddSystem(func(e *ecs.ECS) {
		step++
		pings.Publish(e.World, ping{n: step})
	})
	game.AddSystem(Sync)

	game.Update()
	game.Update()

	assert.Equal(t, []int{1, 2}, delivered)
	assert.Equal(t, 2, names(game.World), "observer commands land in the same step")
	assert.Zero(t, Get(game).Commands.Len())
}

func TestObservingOneEventTypeTwiceDeliversToBoth(t *testing.T) {
	game := NewECS(donburi.NewWorld(), nil, nil, nil)
	pings := devents.NewEventType[ping]()

	calls := 0
	Observe(game, pings, func(*ecs.ECS, ping) { calls++ })
	Observe(game, pings, func(*ecs.ECS, ping) { calls++ })
	require.Len(t, Get(game).queues, 1)

	pings.Publish(game.World, ping{})
	Sync(game)

	assert.Equal(t, 2, calls)
}

func TestSyncReleasesDespawnedHandles(t *testing.T) {
	w := donburi.NewWorld()
	pw := physics.NewWorld(cfg.Physics)
	rep := collision.NewReporter(cfg.Physics)
	game := NewECS(w, pw, rep, nil)

	e := w.Entry(w.Create(components.Transform, components.Body, components.Volume))
	components.Body.SetValue(e, components.BodyData{Kind: components.BodyKinematic})
	components.Volume.SetValue(e, components.RectVolume(32, 32, layers.RolePhysics, false))
	require.NoError(t, pw.AddBody(e))
	require.NoError(t, pw.AttachVolume(w, e))
	rep.Register(e)
	shape := components.Volume.Get(e).Handle
	require.Equal(t, 1, pw.Bodies())

	Get(game).Commands.DespawnRecursive(e.Entity())
	Sync(game)

	assert.False(t, w.Valid(e.Entity()))
	assert.Zero(t, pw.Bodies())
	assert.Nil(t, shape.Space())
}

func TestRuntimeMissing(t *testing.T) {
	assert.Nil(t, Of(donburi.NewWorld()))

	game := ecs.NewECS(donburi.NewWorld())
	assert.NotPanics(t, func() { Sync(game) })
}

func TestRuntimeCarriesServices(t *testing.T) {
	pw := physics.NewWorld(cfg.Physics)
	game := NewECS(donburi.NewWorld(), pw, nil, nil)

	rt := Get(game)
	require.NotNil(t, rt)
	assert.Same(t, pw, rt.Physics)
	assert.NotNil(t, rt.Commands)
	assert.Equal(t, cp.Vector{}, pw.Space().Gravity())
}

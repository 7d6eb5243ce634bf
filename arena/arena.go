// Package arena keeps the per-world runtime singleton and the end-of-step sync
// that applies queued world changes and delivers events.
package arena

import (
	"log"

	"github.com/automoto/hitbox-arena/collision"
	"github.com/automoto/hitbox-arena/commands"
	"github.com/automoto/hitbox-arena/input"
	"github.com/automoto/hitbox-arena/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	devents "github.com/yohamta/donburi/features/events"
)

// maxSyncRounds bounds the apply/deliver loop at the end of a step.
const maxSyncRounds = 16

type eventQueue interface {
	ProcessEvents(w donburi.World)
}

// RuntimeData holds the services every system reaches through the world.
type RuntimeData struct {
	Physics   *physics.World
	Collision *collision.Reporter
	Commands  *commands.Buffer
	Keys      input.Source

	queues []eventQueue
}

var Runtime = donburi.NewComponentType[RuntimeData]()

// NewECS creates the ECS over w and its runtime singleton. Despawned entries
// release their broadphase object and solver handles before leaving the world.
func NewECS(w donburi.World, pw *physics.World, rep *collision.Reporter, keys input.Source) *ecs.ECS {
	cmds := commands.NewBuffer()
	if rep != nil {
		cmds.OnDespawn(rep.Unregister)
	}
	if pw != nil {
		cmds.OnDespawn(pw.Release)
	}

	entry := w.Entry(w.Create(Runtime))
	Runtime.SetValue(entry, RuntimeData{
		Physics:   pw,
		Collision: rep,
		Commands:  cmds,
		Keys:      keys,
	})
	return ecs.NewECS(w)
}

// Get returns the runtime singleton of e's world.
func Get(e *ecs.ECS) *RuntimeData {
	return Of(e.World)
}

// Of returns the runtime singleton of w, or nil when w has none.
func Of(w donburi.World) *RuntimeData {
	entry, ok := Runtime.First(w)
	if !ok {
		return nil
	}
	return Runtime.Get(entry)
}

// Observe calls fn for every event of type et published during a step. The
// events are delivered by Sync.
func Observe[T any](e *ecs.ECS, et *devents.EventType[T], fn func(e *ecs.ECS, ev T)) {
	et.Subscribe(e.World, func(_ donburi.World, ev T) {
		fn(e, ev)
	})

	rt := Get(e)
	for _, q := range rt.queues {
		if q == eventQueue(et) {
			return
		}
	}
	rt.queues = append(rt.queues, et)
}

// Sync applies queued commands and delivers observed events until neither
// produces more work. Register it as the last system.
func Sync(e *ecs.ECS) {
	rt := Get(e)
	if rt == nil {
		return
	}
	for round := 0; round < maxSyncRounds; round++ {
		rt.Commands.Apply(e.World)
		for _, q := range rt.queues {
			q.ProcessEvents(e.World)
		}
		if rt.Commands.Len() == 0 {
			return
		}
	}
	log.Printf("Warning: sync did not settle after %d rounds, %d commands deferred", maxSyncRounds, rt.Commands.Len())
}

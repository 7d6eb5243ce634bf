// Package commands queues structural world changes during a step and applies
// them in one pass at the step's sync point.
package commands

import (
	"github.com/automoto/hitbox-arena/hierarchy"
	"github.com/yohamta/donburi"
)

type kind int

const (
	kindSpawn kind = iota
	kindDespawn
	kindDespawnRecursive
)

type command struct {
	kind   kind
	entity donburi.Entity
	spawn  func(w donburi.World)
}

// Hook runs for every entry right before it is removed from the world.
type Hook func(e *donburi.Entry)

// Buffer is a FIFO of pending world changes.
type Buffer struct {
	queue []command
	hooks []Hook
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

// OnDespawn registers a hook that releases external resources of removed entries.
func (b *Buffer) OnDespawn(h Hook) {
	b.hooks = append(b.hooks, h)
}

// Spawn queues a closure that creates entities.
func (b *Buffer) Spawn(fn func(w donburi.World)) {
	if fn == nil {
		return
	}
	b.queue = append(b.queue, command{kind: kindSpawn, spawn: fn})
}

// Despawn queues removal of a single entity. Entities it owns are orphaned.
func (b *Buffer) Despawn(e donburi.Entity) {
	b.queue = append(b.queue, command{kind: kindDespawn, entity: e})
}

// DespawnRecursive queues removal of an entity and everything it owns.
func (b *Buffer) DespawnRecursive(e donburi.Entity) {
	b.queue = append(b.queue, command{kind: kindDespawnRecursive, entity: e})
}

// Len returns the number of pending commands.
func (b *Buffer) Len() int {
	return len(b.queue)
}

// Apply runs every pending command in order, including commands queued while
// applying. Despawns of entities that no longer exist are dropped.
// It returns the number of entities removed.
func (b *Buffer) Apply(w donburi.World) int {
	removed := 0
	for i := 0; i < len(b.queue); i++ {
		cmd := b.queue[i]
		switch cmd.kind {
		case kindSpawn:
			cmd.spawn(w)
		case kindDespawn:
			if !w.Valid(cmd.entity) {
				continue
			}
			e := w.Entry(cmd.entity)
			for _, c := range hierarchy.Children(w, e) {
				hierarchy.Detach(w, c)
			}
			b.remove(w, e)
			removed++
		case kindDespawnRecursive:
			if !w.Valid(cmd.entity) {
				continue
			}
			for _, e := range hierarchy.Subtree(w, w.Entry(cmd.entity)) {
				b.remove(w, e)
				removed++
			}
		}
	}
	b.queue = b.queue[:0]
	return removed
}

func (b *Buffer) remove(w donburi.World, e *donburi.Entry) {
	for _, h := range b.hooks {
		h(e)
	}
	hierarchy.Detach(w, e)
	w.Remove(e.Entity())
}

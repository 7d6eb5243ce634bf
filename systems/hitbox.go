package systems

import (
	"fmt"
	"log"

	"github.com/automoto/hitbox-arena/arena"
	"github.com/automoto/hitbox-arena/components"
	cfg "github.com/automoto/hitbox-arena/config"
	"github.com/automoto/hitbox-arena/hierarchy"
	"github.com/automoto/hitbox-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHitboxes despawns whatever owns a hurtbox that a hitbox overlaps.
// Must run after UpdatePhysics so overlap reports are current.
func UpdateHitboxes(ecs *ecs.ECS) {
	w := ecs.World
	cmds := arena.Get(ecs).Commands
	tags.Hitbox.Each(w, func(hitbox *donburi.Entry) {
		if !hitbox.HasComponent(components.Volume) {
			return
		}
		for _, id := range components.Volume.Get(hitbox).Colliding {
			if !w.Valid(id) {
				continue
			}
			owner := ResolveOwner(w, w.Entry(id), cfg.Combat.MaxOwnerHops)
			if cfg.Debug.LogHits {
				log.Printf("hit: %s removes %s", describe(hitbox), describe(owner))
			}
			cmds.DespawnRecursive(owner.Entity())
		}
	})
}

// ResolveOwner climbs from a hurtbox to the entity it protects. The walk
// stops at the first entity that is not a hurtbox, at a hurtbox without an
// owner, or after maxHops links.
func ResolveOwner(w donburi.World, e *donburi.Entry, maxHops int) *donburi.Entry {
	cur := e
	for hops := 0; hops < maxHops; hops++ {
		if !cur.HasComponent(tags.Hurtbox) {
			break
		}
		parent, ok := hierarchy.Parent(w, cur)
		if !ok {
			break
		}
		cur = parent
	}
	return cur
}

func describe(e *donburi.Entry) string {
	switch {
	case e.HasComponent(tags.Player):
		return fmt.Sprintf("player %v", e.Entity())
	case e.HasComponent(tags.Enemy):
		return fmt.Sprintf("enemy %v", e.Entity())
	case e.HasComponent(tags.Hitbox):
		return fmt.Sprintf("hitbox %v", e.Entity())
	case e.HasComponent(tags.Hurtbox):
		return fmt.Sprintf("hurtbox %v", e.Entity())
	}
	return fmt.Sprintf("%v", e.Entity())
}

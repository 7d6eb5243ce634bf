// Package hierarchy maintains the ownership forest between entities.
//
// Every owned entity carries a components.Parent back-reference and every
// owner a components.Children list. Walks are iterative and guarded against
// malformed (cyclic) data.
package hierarchy

import (
	"github.com/automoto/hitbox-arena/components"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// SetParent makes parent the direct owner of child, detaching it from any previous owner.
func SetParent(w donburi.World, child, parent *donburi.Entry) {
	if child == nil || parent == nil || !child.Valid() || !parent.Valid() || child == parent {
		return
	}
	Detach(w, child)

	donburi.Add(child, components.Parent, &components.ParentData{Entity: parent.Entity()})

	if !parent.HasComponent(components.Children) {
		donburi.Add(parent, components.Children, &components.ChildrenData{})
	}
	children := components.Children.Get(parent)
	children.Entities = append(children.Entities, child.Entity())
}

// Parent returns the direct owner of e, if it has a live one.
func Parent(w donburi.World, e *donburi.Entry) (*donburi.Entry, bool) {
	if e == nil || !e.Valid() || !e.HasComponent(components.Parent) {
		return nil, false
	}
	p := components.Parent.Get(e).Entity
	if !w.Valid(p) {
		return nil, false
	}
	return w.Entry(p), true
}

// Children returns the live entities directly owned by e.
func Children(w donburi.World, e *donburi.Entry) []*donburi.Entry {
	if e == nil || !e.Valid() || !e.HasComponent(components.Children) {
		return nil
	}
	ids := components.Children.Get(e).Entities
	out := make([]*donburi.Entry, 0, len(ids))
	for _, id := range ids {
		if w.Valid(id) {
			out = append(out, w.Entry(id))
		}
	}
	return out
}

// Detach removes e from its owner's children list and drops its back-reference.
func Detach(w donburi.World, e *donburi.Entry) {
	if e == nil || !e.Valid() || !e.HasComponent(components.Parent) {
		return
	}
	p := components.Parent.Get(e).Entity
	e.RemoveComponent(components.Parent)

	if !w.Valid(p) {
		return
	}
	owner := w.Entry(p)
	if !owner.HasComponent(components.Children) {
		return
	}
	children := components.Children.Get(owner)
	id := e.Entity()
	for i, c := range children.Entities {
		if c == id {
			children.Entities = append(children.Entities[:i], children.Entities[i+1:]...)
			break
		}
	}
}

// Subtree returns e and everything it owns, owned entities before their owners.
// Each entity appears once even if the ownership data is malformed.
func Subtree(w donburi.World, e *donburi.Entry) []*donburi.Entry {
	if e == nil || !e.Valid() {
		return nil
	}

	type frame struct {
		entry    *donburi.Entry
		expanded bool
	}

	visited := map[donburi.Entity]bool{e.Entity(): true}
	stack := []frame{{entry: e}}
	var out []*donburi.Entry

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.expanded {
			out = append(out, top.entry)
			stack = stack[:len(stack)-1]
			continue
		}
		top.expanded = true
		children := Children(w, top.entry)
		for i := len(children) - 1; i >= 0; i-- {
			c := children[i]
			if visited[c.Entity()] {
				continue
			}
			visited[c.Entity()] = true
			stack = append(stack, frame{entry: c})
		}
	}
	return out
}

// BodyOwner finds the nearest ancestor-or-self carrying a rigid body and the
// offset of e from it, summed over the local transforms in between.
// maxHops bounds the walk.
func BodyOwner(w donburi.World, e *donburi.Entry, maxHops int) (*donburi.Entry, cp.Vector, bool) {
	var offset cp.Vector
	cur := e
	for hops := 0; cur != nil && hops <= maxHops; hops++ {
		if cur.HasComponent(components.Body) {
			return cur, offset, true
		}
		if cur.HasComponent(components.Transform) {
			offset = offset.Add(components.Transform.Get(cur).Local)
		}
		next, ok := Parent(w, cur)
		if !ok {
			break
		}
		cur = next
	}
	return nil, offset, false
}

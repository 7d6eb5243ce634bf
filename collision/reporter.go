// Package collision keeps a tagged broadphase of every collision volume and
// writes per-volume overlap reports after each physics step.
package collision

import (
	"log"

	"github.com/automoto/hitbox-arena/components"
	cfg "github.com/automoto/hitbox-arena/config"
	"github.com/jakecoffman/cp"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Reporter mirrors volume bounding boxes into a resolv space.
// The space origin sits at the arena centre, so world (0, 0) maps to
// (ArenaWidth/2, ArenaHeight/2). Volumes reaching past the grid are
// queried through the solver space instead.
type Reporter struct {
	space   *resolv.Space
	width   float64
	height  float64
	originX float64
	originY float64
}

func NewReporter(pc cfg.PhysicsConfig) *Reporter {
	return &Reporter{
		space:   resolv.NewSpace(pc.ArenaWidth, pc.ArenaHeight, pc.CellSize, pc.CellSize),
		width:   float64(pc.ArenaWidth),
		height:  float64(pc.ArenaHeight),
		originX: float64(pc.ArenaWidth) / 2,
		originY: float64(pc.ArenaHeight) / 2,
	}
}

func (r *Reporter) Space() *resolv.Space {
	return r.space
}

// Register creates the broadphase object for a volume whose shape is attached.
func (r *Reporter) Register(e *donburi.Entry) {
	if !e.HasComponent(components.Volume) {
		return
	}
	vol := components.Volume.Get(e)
	if vol.Handle == nil {
		log.Printf("Warning: volume %v registered before its shape was attached", e.Entity())
		return
	}

	x, y, w, h := r.bounds(vol.Handle.BB())
	obj := resolv.NewObject(x, y, w, h, vol.Layers.Tags()...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = e
	r.space.Add(obj)

	if e.HasComponent(components.Object) {
		components.Object.SetValue(e, components.ObjectData{Object: obj})
	} else {
		donburi.Add(e, components.Object, &components.ObjectData{Object: obj})
	}
}

// Unregister drops the entry's broadphase object.
func (r *Reporter) Unregister(e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	od := components.Object.Get(e)
	if od.Object != nil && od.Space != nil {
		r.space.Remove(od.Object)
	}
	od.Object = nil
}

// Update refreshes every overlap report. A pair is reported when both volumes
// accept each other's layer, they hang off different rigid bodies and their
// exact shapes intersect.
func (r *Reporter) Update(w donburi.World) {
	var volumes []*donburi.Entry
	components.Object.Each(w, func(e *donburi.Entry) {
		od := components.Object.Get(e)
		if od.Object == nil || !e.HasComponent(components.Volume) {
			return
		}
		vol := components.Volume.Get(e)
		if vol.Handle == nil {
			return
		}
		r.sync(od.Object, vol.Handle.BB())
		volumes = append(volumes, e)
	})

	for _, e := range volumes {
		vol := components.Volume.Get(e)
		vol.Colliding = vol.Colliding[:0]

		query := vol.Layers.QueryTags()
		if len(query) == 0 {
			continue
		}
		for _, other := range r.candidates(w, e, query) {
			if other.Entity() == e.Entity() || !other.Valid() || !other.HasComponent(components.Volume) {
				continue
			}
			ov := components.Volume.Get(other)
			if ov.Handle == nil || !vol.Layers.Interacts(ov.Layers) {
				continue
			}
			if sameBody(vol.Handle, ov.Handle) {
				continue
			}
			if cp.ShapesCollide(vol.Handle, ov.Handle).Count == 0 {
				continue
			}
			if !vol.IsColliding(other.Entity()) {
				vol.Colliding = append(vol.Colliding, other.Entity())
			}
		}
	}
}

// candidates lists the volumes that may overlap e. The grid only holds what
// lies inside it, so a volume reaching past it asks the solver space.
func (r *Reporter) candidates(w donburi.World, e *donburi.Entry, query []string) []*donburi.Entry {
	od := components.Object.Get(e)
	handle := components.Volume.Get(e).Handle

	var found []*donburi.Entry
	if r.inside(od.Object) {
		check := od.Check(0, 0, query...)
		if check == nil {
			return nil
		}
		for _, candidate := range check.Objects {
			if other, ok := candidate.Data.(*donburi.Entry); ok {
				found = append(found, other)
			}
		}
		return found
	}

	space := handle.Space()
	if space == nil {
		return nil
	}
	space.ShapeQuery(handle, func(shape *cp.Shape, _ *cp.ContactPointSet) {
		id, ok := shape.UserData.(donburi.Entity)
		if !ok || !w.Valid(id) {
			return // arena walls and released shapes
		}
		found = append(found, w.Entry(id))
	})
	return found
}

func (r *Reporter) inside(obj *resolv.Object) bool {
	return obj.X >= 0 && obj.Y >= 0 && obj.X+obj.W <= r.width && obj.Y+obj.H <= r.height
}

func (r *Reporter) bounds(bb cp.BB) (x, y, w, h float64) {
	return bb.L + r.originX, bb.B + r.originY, bb.R - bb.L, bb.T - bb.B
}

func (r *Reporter) sync(obj *resolv.Object, bb cp.BB) {
	x, y, w, h := r.bounds(bb)
	if obj.X == x && obj.Y == y && obj.W == w && obj.H == h {
		return
	}
	if obj.W != w || obj.H != h {
		obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	}
	obj.X, obj.Y, obj.W, obj.H = x, y, w, h
	obj.Update()
}

// Volumes sharing one moving body never report each other. Shapes on the
// static body belong to unrelated parentless volumes and still do.
func sameBody(a, b *cp.Shape) bool {
	body := a.Body()
	return body == b.Body() && body.GetType() != cp.BODY_STATIC
}

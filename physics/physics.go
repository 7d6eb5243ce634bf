// Package physics binds entity bodies and volumes to a Chipmunk2D space.
package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/hitbox-arena/components"
	cfg "github.com/automoto/hitbox-arena/config"
	"github.com/automoto/hitbox-arena/hierarchy"
	"github.com/automoto/hitbox-arena/layers"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

var (
	ErrNoBody       = errors.New("entry has no body component")
	ErrUnknownShape = errors.New("unknown volume shape")
)

// wallRadius is the thickness of the arena boundary segments.
const wallRadius = 1

// World owns the solver space and the entity <-> body bookkeeping.
type World struct {
	space  *cp.Space
	dt     float64
	bodies map[donburi.Entity]*cp.Body
	shapes map[donburi.Entity]*cp.Shape
	walls  []*cp.Shape
}

// NewWorld creates a space from the physics configuration.
func NewWorld(pc cfg.PhysicsConfig) *World {
	space := cp.NewSpace()
	space.Iterations = uint(pc.Iterations)
	space.SetGravity(cp.Vector{X: pc.GravityX, Y: pc.GravityY})

	tps := pc.TicksPerSecond
	if tps <= 0 {
		tps = 60
	}
	pw := &World{
		space:  space,
		dt:     1.0 / float64(tps),
		bodies: make(map[donburi.Entity]*cp.Body),
		shapes: make(map[donburi.Entity]*cp.Shape),
	}
	pw.addWalls(pc)
	return pw
}

// addWalls closes the arena with static segments on the physics layer, so
// solid bodies stay inside the broadphase grid.
func (pw *World) addWalls(pc cfg.PhysicsConfig) {
	if pc.ArenaWidth <= 0 || pc.ArenaHeight <= 0 {
		return
	}
	hw, hh := float64(pc.ArenaWidth)/2, float64(pc.ArenaHeight)/2
	corners := [4]cp.Vector{{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: hh}}
	filter := layers.Classify(layers.RolePhysics).Filter()

	for i := range corners {
		wall := cp.NewSegment(pw.space.StaticBody, corners[i], corners[(i+1)%len(corners)], wallRadius)
		wall.SetFilter(filter)
		pw.space.AddShape(wall)
		pw.walls = append(pw.walls, wall)
	}
}

// Walls returns the arena boundary shapes.
func (pw *World) Walls() []*cp.Shape {
	return pw.walls
}

func (pw *World) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// StepDuration is the simulated time advanced by one Step.
func (pw *World) StepDuration() float64 {
	return pw.dt
}

// AddBody creates the solver body for an entry carrying components.Body.
// The body starts at the entry's Transform.
func (pw *World) AddBody(e *donburi.Entry) error {
	if !e.HasComponent(components.Body) {
		return ErrNoBody
	}
	bd := components.Body.Get(e)

	var body *cp.Body
	switch bd.Kind {
	case components.BodyKinematic:
		body = cp.NewKinematicBody()
	case components.BodyStatic:
		body = cp.NewStaticBody()
	default:
		mass := bd.Mass
		if mass <= 0 {
			mass = 1
		}
		moment := mass * 1000
		if bd.LockRotation {
			moment = math.Inf(1)
		}
		body = cp.NewBody(mass, moment)
	}

	if e.HasComponent(components.Transform) {
		tr := components.Transform.Get(e)
		bd.Position = tr.Local
		bd.Angle = tr.Angle
	}
	body.SetPosition(bd.Position)
	body.SetAngle(bd.Angle)
	body.UserData = e.Entity()

	pw.space.AddBody(body)
	bd.Body = body
	pw.bodies[e.Entity()] = body
	return nil
}

// AttachVolume adds the entry's volume shape to the nearest rigid body at or
// above it in the ownership tree, or to the static body when there is none.
func (pw *World) AttachVolume(w donburi.World, e *donburi.Entry) error {
	if !e.HasComponent(components.Volume) {
		return fmt.Errorf("attach volume: %w", ErrUnknownShape)
	}
	vol := components.Volume.Get(e)

	body := pw.space.StaticBody
	owner, offset, ok := hierarchy.BodyOwner(w, e, cfg.Combat.MaxOwnerHops)
	if ok {
		bd := components.Body.Get(owner)
		if bd.Body == nil {
			return fmt.Errorf("attach volume to %v: %w", owner.Entity(), ErrNoBody)
		}
		body = bd.Body
	}

	var shape *cp.Shape
	switch vol.Shape {
	case components.ShapeRect:
		hw, hh := vol.Width/2, vol.Height/2
		shape = cp.NewBox2(body, cp.BB{L: offset.X - hw, B: offset.Y - hh, R: offset.X + hw, T: offset.Y + hh}, 0)
	case components.ShapeCircle:
		shape = cp.NewCircle(body, vol.Radius, offset)
	default:
		return fmt.Errorf("attach volume kind %d: %w", vol.Shape, ErrUnknownShape)
	}

	shape.SetSensor(vol.Sensor)
	shape.SetFilter(vol.Layers.Filter())
	shape.UserData = e.Entity()

	pw.space.AddShape(shape)
	vol.Offset = offset
	vol.Handle = shape
	pw.shapes[e.Entity()] = shape
	return nil
}

// Release removes the solver objects owned by e. Shapes attached to e's body
// by other entries are removed with the body.
func (pw *World) Release(e *donburi.Entry) {
	id := e.Entity()
	if shape, ok := pw.shapes[id]; ok {
		if shape.Space() != nil {
			pw.space.RemoveShape(shape)
		}
		delete(pw.shapes, id)
		if e.HasComponent(components.Volume) {
			components.Volume.Get(e).Handle = nil
		}
	}

	body, ok := pw.bodies[id]
	if !ok {
		return
	}
	var attached []*cp.Shape
	body.EachShape(func(s *cp.Shape) {
		attached = append(attached, s)
	})
	for _, s := range attached {
		if s.Space() != nil {
			pw.space.RemoveShape(s)
		}
		if owner, ok := s.UserData.(donburi.Entity); ok {
			delete(pw.shapes, owner)
		}
	}
	pw.space.RemoveBody(body)
	delete(pw.bodies, id)
	if e.HasComponent(components.Body) {
		components.Body.Get(e).Body = nil
	}
}

// Step pushes gameplay-written velocities and angles into the solver,
// advances one fixed step and pulls the results back.
func (pw *World) Step(w donburi.World) {
	components.Body.Each(w, func(e *donburi.Entry) {
		bd := components.Body.Get(e)
		if bd.Body == nil || bd.Kind == components.BodyStatic {
			return
		}
		bd.Body.SetVelocityVector(bd.Velocity)
		if bd.Body.Angle() != bd.Angle {
			bd.Body.SetAngle(bd.Angle)
		}
	})

	pw.space.Step(pw.dt)

	components.Body.Each(w, func(e *donburi.Entry) {
		bd := components.Body.Get(e)
		if bd.Body == nil {
			return
		}
		bd.Position = bd.Body.Position()
		bd.Velocity = bd.Body.Velocity()
		if bd.LockRotation {
			bd.Body.SetAngularVelocity(0)
		}
		bd.Angle = bd.Body.Angle()

		// roots carry world placement in their transform
		if e.HasComponent(components.Transform) && !e.HasComponent(components.Parent) {
			components.Transform.SetValue(e, components.TransformData{Local: bd.Position, Angle: bd.Angle})
		}
	})
}

// Bodies returns the number of live solver bodies.
func (pw *World) Bodies() int {
	return len(pw.bodies)
}

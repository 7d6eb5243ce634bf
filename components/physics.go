package components

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// BodyKind selects how the solver treats a body.
type BodyKind int

const (
	BodyDynamic   BodyKind = iota // moved by velocity and pushed by contacts
	BodyKinematic                 // moved by velocity only, never pushed
	BodyStatic
)

func (k BodyKind) String() string {
	switch k {
	case BodyDynamic:
		return "dynamic"
	case BodyKinematic:
		return "kinematic"
	case BodyStatic:
		return "static"
	}
	return "unknown"
}

// BodyData is a rigid body. Velocity and Angle are written by gameplay systems
// and pushed to the solver each step; Position is pulled back after the step.
type BodyData struct {
	Kind         BodyKind
	Mass         float64
	LockRotation bool
	Position     cp.Vector
	Velocity     cp.Vector
	Angle        float64 // radians, counter-clockwise
	Body         *cp.Body
}

var Body = donburi.NewComponentType[BodyData]()

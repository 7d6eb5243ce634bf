package components

import (
	"github.com/automoto/hitbox-arena/layers"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// ShapeKind is the geometry of a collision volume.
type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
)

// VolumeData is a collision volume attached to an entity.
type VolumeData struct {
	Shape  ShapeKind
	Width  float64 // rect
	Height float64 // rect
	Radius float64 // circle

	Layers layers.Membership
	Sensor bool // reports overlaps without pushing

	// Offset from the owning rigid body, filled in when the shape is attached.
	Offset cp.Vector
	Handle *cp.Shape

	// Entities overlapping this volume as of the last physics step.
	Colliding []donburi.Entity
}

var Volume = donburi.NewComponentType[VolumeData]()

// RectVolume returns a rectangle volume for a role.
func RectVolume(w, h float64, role layers.Role, sensor bool) VolumeData {
	return VolumeData{Shape: ShapeRect, Width: w, Height: h, Layers: layers.Classify(role), Sensor: sensor}
}

// CircleVolume returns a circle volume for a role.
func CircleVolume(r float64, role layers.Role, sensor bool) VolumeData {
	return VolumeData{Shape: ShapeCircle, Radius: r, Layers: layers.Classify(role), Sensor: sensor}
}

// IsColliding reports whether e was in the last overlap report.
func (v *VolumeData) IsColliding(e donburi.Entity) bool {
	for _, c := range v.Colliding {
		if c == e {
			return true
		}
	}
	return false
}

// Package layers classifies collision volumes into the physics, hurt and hit layers.
package layers

import "github.com/jakecoffman/cp"

// Layer is a bit set of collision layers.
type Layer uint

const (
	Physics Layer = 1 << iota
	Hurt
	Hit
)

// All lists the single-bit layers in declaration order.
var All = []Layer{Physics, Hurt, Hit}

// Role is what a volume is used for.
type Role int

const (
	RolePhysics Role = iota
	RoleHurt
	RoleHit
)

func (r Role) String() string {
	switch r {
	case RolePhysics:
		return "physics"
	case RoleHurt:
		return "hurt"
	case RoleHit:
		return "hit"
	}
	return "unknown"
}

// Membership is a volume's own layer and the layers it may overlap.
type Membership struct {
	Layer Layer
	Mask  Layer
}

// Classify returns the membership for a role. Hit and hurt volumes only see
// each other; physics volumes only see physics volumes.
func Classify(r Role) Membership {
	switch r {
	case RoleHurt:
		return Membership{Layer: Hurt, Mask: Hit}
	case RoleHit:
		return Membership{Layer: Hit, Mask: Hurt}
	default:
		return Membership{Layer: Physics, Mask: Physics}
	}
}

// Interacts reports whether the two memberships accept each other.
func (m Membership) Interacts(other Membership) bool {
	return m.Layer&other.Mask != 0 && other.Layer&m.Mask != 0
}

// Filter converts the membership to a Chipmunk shape filter.
func (m Membership) Filter() cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, uint(m.Layer), uint(m.Mask))
}

// Tags returns the broadphase tags of the volume's own layers.
func (m Membership) Tags() []string {
	return m.Layer.Tags()
}

// QueryTags returns the broadphase tags a volume searches for.
func (m Membership) QueryTags() []string {
	return m.Mask.Tags()
}

// Tag is the broadphase tag of a single layer.
func (l Layer) Tag() string {
	switch l {
	case Physics:
		return "physics"
	case Hurt:
		return "hurt"
	case Hit:
		return "hit"
	}
	return ""
}

// Tags expands a layer set into one tag per set bit.
func (l Layer) Tags() []string {
	tags := make([]string, 0, len(All))
	for _, single := range All {
		if l&single != 0 {
			tags = append(tags, single.Tag())
		}
	}
	return tags
}

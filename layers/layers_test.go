package layers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		role Role
		want Membership
	}{
		{RolePhysics, Membership{Layer: Physics, Mask: Physics}},
		{RoleHurt, Membership{Layer: Hurt, Mask: Hit}},
		{RoleHit, Membership{Layer: Hit, Mask: Hurt}},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.role))
		})
	}
}

func TestInteracts(t *testing.T) {
	physics := Classify(RolePhysics)
	hurt := Classify(RoleHurt)
	hit := Classify(RoleHit)

	assert.True(t, hit.Interacts(hurt))
	assert.True(t, hurt.Interacts(hit))
	assert.True(t, physics.Interacts(physics))

	assert.False(t, hit.Interacts(physics))
	assert.False(t, physics.Interacts(hit))
	assert.False(t, hurt.Interacts(physics))
	assert.False(t, hit.Interacts(hit))
	assert.False(t, hurt.Interacts(hurt))
}

func TestInteractsRequiresBothSides(t *testing.T) {
	// a accepts b, but b does not accept a
	a := Membership{Layer: Hit, Mask: Hurt}
	b := Membership{Layer: Hurt, Mask: Physics}
	assert.False(t, a.Interacts(b))
	assert.False(t, b.Interacts(a))
}

func TestFilterAgreesWithInteracts(t *testing.T) {
	roles := []Role{RolePhysics, RoleHurt, RoleHit}
	for _, a := range roles {
		for _, b := range roles {
			ma, mb := Classify(a), Classify(b)
			assert.Equal(t, ma.Interacts(mb), !ma.Filter().Reject(mb.Filter()), "%s vs %s", a, b)
		}
	}
}

func TestTags(t *testing.T) {
	assert.Equal(t, []string{"hurt"}, Classify(RoleHit).QueryTags())
	assert.Equal(t, []string{"hit"}, Classify(RoleHit).Tags())
	assert.Equal(t, []string{"physics", "hit"}, (Physics | Hit).Tags())
	assert.Empty(t, Layer(0).Tags())
}

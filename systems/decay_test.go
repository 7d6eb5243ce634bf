package systems

import (
	"testing"

	"github.com/automoto/hitbox-arena/components"
	"github.com/automoto/hitbox-arena/hierarchy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func spawnDecaying(w donburi.World, counter int) *donburi.Entry {
	e := w.Entry(w.Create(components.Decay, components.Transform))
	components.Decay.SetValue(e, components.DecayData{Counter: counter})
	return e
}

func TestDecayDespawnsOnLastStep(t *testing.T) {
	for _, n := range []int{1, 2, 5, 32} {
		game := newBareECS(t, UpdateDecay)
		w := game.World
		e := spawnDecaying(w, n)

		for step := 1; step < n; step++ {
			game.Update()
			require.True(t, valid(w, e), "counter %d: present after step %d", n, step)
			assert.Equal(t, n-step, components.Decay.Get(e).Counter)
		}
		game.Update()
		assert.False(t, valid(w, e), "counter %d: absent after step %d", n, n)
	}
}

func TestDecayGuardsNonPositiveCounters(t *testing.T) {
	for _, n := range []int{0, -3} {
		game := newBareECS(t, UpdateDecay)
		e := spawnDecaying(game.World, n)

		assert.NotPanics(t, game.Update)
		assert.False(t, valid(game.World, e), "counter %d", n)
	}
}

func TestDecayDoesNotTakeOwnedEntities(t *testing.T) {
	game := newBareECS(t, UpdateDecay)
	w := game.World
	e := spawnDecaying(w, 1)
	child := w.Entry(w.Create(components.Transform))
	hierarchy.SetParent(w, child, e)

	game.Update()

	assert.False(t, valid(w, e))
	require.True(t, valid(w, child))
	_, ok := hierarchy.Parent(w, child)
	assert.False(t, ok)
}

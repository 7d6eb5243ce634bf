package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testBindings = Bindings{
	ActionMoveUp: {KeyW, KeyArrowUp},
	ActionAttack: {KeyF},
}

func TestPollEdges(t *testing.T) {
	keys := KeySet{}
	var s State

	keys.Press(KeyF)
	s.Poll(keys, testBindings)
	assert.True(t, s.Pressed(ActionAttack))
	assert.True(t, s.JustPressed(ActionAttack))

	s.Poll(keys, testBindings)
	assert.True(t, s.Pressed(ActionAttack))
	assert.False(t, s.JustPressed(ActionAttack), "held keys only press once")

	keys.Release(KeyF)
	s.Poll(keys, testBindings)
	assert.False(t, s.Pressed(ActionAttack))
	assert.True(t, s.JustReleased(ActionAttack))
}

func TestEitherBoundKeyTriggersAction(t *testing.T) {
	for _, k := range []Key{KeyW, KeyArrowUp} {
		var s State
		s.Poll(KeySet{k: true}, testBindings)
		assert.True(t, s.Pressed(ActionMoveUp), k.String())
	}
}

func TestUnboundAndInvalidActions(t *testing.T) {
	var s State
	s.Poll(KeySet{KeyD: true}, testBindings)

	assert.False(t, s.Pressed(ActionMoveRight))
	assert.False(t, s.Pressed(ActionNone))
	assert.False(t, s.JustPressed(ActionCount))
	assert.False(t, s.JustReleased(Action(-1)))
}

func TestPollWithoutSourceReleasesEverything(t *testing.T) {
	var s State
	s.Poll(KeySet{KeyF: true}, testBindings)
	s.Poll(nil, testBindings)

	assert.False(t, s.Pressed(ActionAttack))
	assert.True(t, s.JustReleased(ActionAttack))
}

func TestKeySetRelease(t *testing.T) {
	keys := KeySet{}
	keys.Press(KeyW, KeyA, KeyF)
	keys.Release(KeyA)
	assert.True(t, keys.IsKeyPressed(KeyW))
	assert.False(t, keys.IsKeyPressed(KeyA))

	keys.Release()
	assert.Empty(t, keys)
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "ArrowLeft", KeyArrowLeft.String())
	assert.Equal(t, "Unknown", Key(99).String())
}

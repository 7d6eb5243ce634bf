// Package input tracks per-frame action state independent of the host keyboard API.
package input

// Key is a physical keyboard key the game reads.
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyArrowUp
	KeyArrowLeft
	KeyArrowDown
	KeyArrowRight
	KeyF
	KeyR
	KeyF3
	KeyCount // Must be last
)

var keyNames = [KeyCount]string{
	KeyUnknown:    "Unknown",
	KeyW:          "W",
	KeyA:          "A",
	KeyS:          "S",
	KeyD:          "D",
	KeyArrowUp:    "ArrowUp",
	KeyArrowLeft:  "ArrowLeft",
	KeyArrowDown:  "ArrowDown",
	KeyArrowRight: "ArrowRight",
	KeyF:          "F",
	KeyR:          "R",
	KeyF3:         "F3",
}

func (k Key) String() string {
	if k < 0 || k >= KeyCount {
		return keyNames[KeyUnknown]
	}
	return keyNames[k]
}

// Action represents a logical game action
type Action int

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveLeft
	ActionMoveDown
	ActionMoveRight
	ActionAttack
	ActionRespawn
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

// Source reports whether a key is currently held.
type Source interface {
	IsKeyPressed(k Key) bool
}

// Bindings maps each action to the keys that trigger it.
type Bindings map[Action][]Key

// State stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on demand by comparing frames.
type State struct {
	Current  [ActionCount]bool
	Previous [ActionCount]bool
}

// Poll swaps buffers and samples every bound action from src.
func (s *State) Poll(src Source, bindings Bindings) {
	s.Previous = s.Current
	s.Current = [ActionCount]bool{}
	if src == nil {
		return
	}

	for action, keys := range bindings {
		if action <= ActionNone || action >= ActionCount {
			continue
		}
		for _, k := range keys {
			if src.IsKeyPressed(k) {
				s.Current[action] = true
				break
			}
		}
	}
}

func (s *State) Pressed(a Action) bool {
	if a <= ActionNone || a >= ActionCount {
		return false
	}
	return s.Current[a]
}

// JustPressed reports a press edge: held this frame but not the previous one.
func (s *State) JustPressed(a Action) bool {
	if a <= ActionNone || a >= ActionCount {
		return false
	}
	return s.Current[a] && !s.Previous[a]
}

func (s *State) JustReleased(a Action) bool {
	if a <= ActionNone || a >= ActionCount {
		return false
	}
	return !s.Current[a] && s.Previous[a]
}

// KeySet is a Source backed by a set of held keys. Tests and replays drive input through it.
type KeySet map[Key]bool

func (ks KeySet) IsKeyPressed(k Key) bool {
	return ks[k]
}

// Press marks keys as held.
func (ks KeySet) Press(keys ...Key) {
	for _, k := range keys {
		ks[k] = true
	}
}

// Release clears held keys; with no arguments every key is released.
func (ks KeySet) Release(keys ...Key) {
	if len(keys) == 0 {
		for k := range ks {
			delete(ks, k)
		}
		return
	}
	for _, k := range keys {
		delete(ks, k)
	}
}

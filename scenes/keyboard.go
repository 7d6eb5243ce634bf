package scenes

import (
	"github.com/automoto/hitbox-arena/input"
	"github.com/hajimehoshi/ebiten/v2"
)

var ebitenKeys = map[input.Key]ebiten.Key{
	input.KeyW:          ebiten.KeyW,
	input.KeyA:          ebiten.KeyA,
	input.KeyS:          ebiten.KeyS,
	input.KeyD:          ebiten.KeyD,
	input.KeyArrowUp:    ebiten.KeyArrowUp,
	input.KeyArrowLeft:  ebiten.KeyArrowLeft,
	input.KeyArrowDown:  ebiten.KeyArrowDown,
	input.KeyArrowRight: ebiten.KeyArrowRight,
	input.KeyF:          ebiten.KeyF,
	input.KeyR:          ebiten.KeyR,
	input.KeyF3:         ebiten.KeyF3,
}

// Keyboard reads the ebiten keyboard as an input.Source.
type Keyboard struct{}

func (Keyboard) IsKeyPressed(k input.Key) bool {
	key, ok := ebitenKeys[k]
	return ok && ebiten.IsKeyPressed(key)
}

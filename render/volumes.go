// Package render draws the arena's debug overlay.
package render

import (
	"image/color"

	"github.com/automoto/hitbox-arena/components"
	cfg "github.com/automoto/hitbox-arena/config"
	"github.com/automoto/hitbox-arena/layers"
	"github.com/automoto/hitbox-arena/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const strokeWidth = 1

// View maps world coordinates (y up) to screen pixels (y down) around a camera.
type View struct {
	CameraX, CameraY float64
	Width, Height    float64
}

// NewView centers the view on the default camera, or on the origin when there is none.
func NewView(w donburi.World, screen *ebiten.Image) View {
	v := View{
		Width:  float64(screen.Bounds().Dx()),
		Height: float64(screen.Bounds().Dy()),
	}
	if e, ok := components.Camera.First(w); ok {
		camera := components.Camera.Get(e)
		v.CameraX, v.CameraY = camera.Position.X, camera.Position.Y
	}
	return v
}

// ToScreen converts a world point to screen space.
func (v View) ToScreen(p cp.Vector) (float32, float32) {
	x := p.X - v.CameraX + v.Width/2
	y := v.Height/2 - (p.Y - v.CameraY)
	return float32(x), float32(y)
}

// DrawBodies draws every rigid body as a filled marker with a facing tick
// while the volume overlay is on.
func DrawBodies(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawVolumes {
		return
	}
	v := NewView(ecs.World, screen)
	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		bd := components.Body.Get(e)
		x, y := v.ToScreen(bd.Position)
		vector.FillCircle(screen, x, y, 2, cfg.UI.BodyColor, false)

		tip := bd.Position.Add(gamemath.RotationVector(cp.Vector{Y: 10}, bd.Angle))
		tx, ty := v.ToScreen(tip)
		vector.StrokeLine(screen, x, y, tx, ty, strokeWidth, cfg.UI.BodyColor, false)
	})
}

// DrawVolumes outlines every attached volume in its layer's color while the
// volume overlay is on.
func DrawVolumes(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawVolumes {
		return
	}
	v := NewView(ecs.World, screen)
	components.Volume.Each(ecs.World, func(e *donburi.Entry) {
		vol := components.Volume.Get(e)
		if vol.Handle == nil {
			return
		}
		c := layerColor(vol.Layers.Layer)
		body := vol.Handle.Body()

		switch vol.Shape {
		case components.ShapeCircle:
			center := body.LocalToWorld(vol.Offset)
			x, y := v.ToScreen(center)
			vector.StrokeCircle(screen, x, y, float32(vol.Radius), strokeWidth, c, false)
		case components.ShapeRect:
			hw, hh := vol.Width/2, vol.Height/2
			corners := [4]cp.Vector{
				{X: vol.Offset.X - hw, Y: vol.Offset.Y - hh},
				{X: vol.Offset.X + hw, Y: vol.Offset.Y - hh},
				{X: vol.Offset.X + hw, Y: vol.Offset.Y + hh},
				{X: vol.Offset.X - hw, Y: vol.Offset.Y + hh},
			}
			for i := range corners {
				ax, ay := v.ToScreen(body.LocalToWorld(corners[i]))
				bx, by := v.ToScreen(body.LocalToWorld(corners[(i+1)%len(corners)]))
				vector.StrokeLine(screen, ax, ay, bx, by, strokeWidth, c, false)
			}
		}

		if len(vol.Colliding) > 0 {
			bb := vol.Handle.BB()
			x, y := v.ToScreen(cp.Vector{X: bb.L, Y: bb.T})
			vector.StrokeRect(screen, x, y, float32(bb.R-bb.L), float32(bb.T-bb.B), strokeWidth, cfg.White, false)
		}
	})
}

// DrawGrid draws the world axes through the origin.
func DrawGrid(ecs *ecs.ECS, screen *ebiten.Image) {
	v := NewView(ecs.World, screen)
	c := color.RGBA{R: 60, G: 60, B: 80, A: 255}
	ox, oy := v.ToScreen(cp.Vector{})
	vector.StrokeLine(screen, 0, oy, float32(v.Width), oy, strokeWidth, c, false)
	vector.StrokeLine(screen, ox, 0, ox, float32(v.Height), strokeWidth, c, false)
}

func layerColor(l layers.Layer) color.Color {
	for _, single := range layers.All {
		if l&single == 0 {
			continue
		}
		if c, ok := cfg.UI.LayerColors[single.Tag()]; ok {
			return c
		}
	}
	return cfg.White
}

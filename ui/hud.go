package ui

import (
	"fmt"

	"github.com/automoto/hitbox-arena/components"
	cfg "github.com/automoto/hitbox-arena/config"
	"github.com/automoto/hitbox-arena/fonts"
	"github.com/automoto/hitbox-arena/tags"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const hintText = "WASD/Arrows: Move   F: Attack   R: Spawn enemy   F3: Volumes"

// HUD shows the arena counters and control hints on the default UI camera.
type HUD struct {
	UI *ebitenui.UI

	enemyText  *widget.Text
	attackText *widget.Text
	debugText  *widget.Text

	normalFace text.Face
	smallFace  text.Face
}

func NewHUD() *HUD {
	hud := &HUD{
		normalFace: fonts.Regular.Face(),
		smallFace:  fonts.Small.Face(),
	}
	hud.buildUI()
	return hud
}

func (hud *HUD) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	stats := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(2),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	hud.enemyText = widget.NewText(
		widget.TextOpts.Text("", &hud.normalFace, cfg.UI.HUDTextColor),
	)
	hud.attackText = widget.NewText(
		widget.TextOpts.Text("", &hud.normalFace, cfg.UI.HUDTextColor),
	)
	hud.debugText = widget.NewText(
		widget.TextOpts.Text("", &hud.smallFace, cfg.UI.HintTextColor),
	)
	stats.AddChild(hud.enemyText)
	stats.AddChild(hud.attackText)
	stats.AddChild(hud.debugText)
	rootContainer.AddChild(stats)

	hint := widget.NewText(
		widget.TextOpts.Text(hintText, &hud.smallFace, cfg.UI.HintTextColor),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	rootContainer.AddChild(hint)

	hud.UI = &ebitenui.UI{Container: rootContainer}
}

// Update refreshes the labels from the world and updates the UI. It runs as a system.
func (hud *HUD) Update(ecs *ecs.ECS) {
	w := ecs.World
	enemies := 0
	tags.Enemy.Each(w, func(*donburi.Entry) {
		enemies++
	})
	hud.enemyText.Label = fmt.Sprintf("Enemies: %d", enemies)

	attacks := 0
	if e, ok := tags.Player.First(w); ok {
		attacks = components.Player.Get(e).Attacks
	}
	hud.attackText.Label = fmt.Sprintf("Attacks: %d", attacks)

	if cfg.Debug.DrawVolumes {
		hud.debugText.Label = "volumes: physics / hurt / hit"
	} else {
		hud.debugText.Label = ""
	}

	hud.UI.Update()
}

// Draw renders the HUD when a camera has the default UI flag.
func (hud *HUD) Draw(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHUD || !hasDefaultUICamera(ecs.World) {
		return
	}
	hud.UI.Draw(screen)
}

func hasDefaultUICamera(w donburi.World) bool {
	found := false
	components.Camera.Each(w, func(e *donburi.Entry) {
		if components.Camera.Get(e).DefaultUI {
			found = true
		}
	})
	return found
}

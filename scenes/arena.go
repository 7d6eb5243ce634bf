package scenes

import (
	"log"
	"sync"

	"github.com/automoto/hitbox-arena/arena"
	"github.com/automoto/hitbox-arena/collision"
	cfg "github.com/automoto/hitbox-arena/config"
	"github.com/automoto/hitbox-arena/physics"
	"github.com/automoto/hitbox-arena/render"
	"github.com/automoto/hitbox-arena/systems"
	"github.com/automoto/hitbox-arena/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type ArenaScene struct {
	ecs     *ecs.ECS
	watcher *cfg.TuningWatcher
	once    sync.Once
}

// NewArenaScene creates the arena. A non-nil watcher reloads tuning between steps.
func NewArenaScene(watcher *cfg.TuningWatcher) *ArenaScene {
	return &ArenaScene{watcher: watcher}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.reloadTuning()
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.UI.BackgroundColor)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	e := arena.NewECS(
		donburi.NewWorld(),
		physics.NewWorld(cfg.Physics),
		collision.NewReporter(cfg.Physics),
		Keyboard{},
	)
	systems.Register(e)

	hud := ui.NewHUD()
	e.AddSystem(hud.Update)

	// Add renderers
	e.AddRenderer(cfg.Default, render.DrawGrid)
	e.AddRenderer(cfg.Default, render.DrawVolumes)
	e.AddRenderer(cfg.Default, render.DrawBodies)
	e.AddRenderer(cfg.Overlay, hud.Draw)

	as.ecs = e

	systems.Start(e)
}

// reloadTuning applies a changed tuning file. Gameplay values apply on the
// next step; solver and broadphase settings apply to the next arena.
func (as *ArenaScene) reloadTuning() {
	if as.watcher == nil {
		return
	}
	path, ok := as.watcher.Poll()
	if !ok {
		return
	}
	tuning, err := cfg.LoadTuning(path)
	if err != nil {
		log.Printf("Warning: tuning not reloaded: %v", err)
		return
	}
	tuning.Apply()
	log.Printf("tuning reloaded from %s", path)
}

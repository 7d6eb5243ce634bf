package main

import (
	"flag"
	"log"

	"github.com/automoto/hitbox-arena/config"
	"github.com/automoto/hitbox-arena/fonts"
	"github.com/automoto/hitbox-arena/scenes"
	"github.com/automoto/hitbox-arena/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(watcher *config.TuningWatcher) *Game {
	return &Game{
		scene: scenes.NewArenaScene(watcher),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	debug := flag.Bool("debug", false, "draw collision volumes and log hits")
	tuningPath := flag.String("tuning", "", "YAML file overriding gameplay tuning")
	watch := flag.Bool("watch", false, "reload the tuning file when it changes")
	flag.Parse()

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}

	if *debug {
		config.Debug.DrawVolumes = true
		config.Debug.LogHits = true
	}

	var watcher *config.TuningWatcher
	if *tuningPath != "" {
		tuning, err := config.LoadTuning(*tuningPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		tuning.Apply()

		if *watch {
			watcher, err = config.NewTuningWatcher(*tuningPath)
			if err != nil {
				log.Fatalf("Failed to watch tuning file: %v", err)
			}
			defer watcher.Close()
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.Physics.TicksPerSecond)

	if err := ebiten.RunGame(NewGame(watcher)); err != nil {
		log.Fatal(err)
	}
}

package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers, drawn in order.
const (
	Default ecs.LayerID = iota
	Overlay
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed float64 `yaml:"speed"` // units per second

	// Spawn
	SpawnX           float64 `yaml:"spawnX"`
	SpawnY           float64 `yaml:"spawnY"`
	SpawnRotationDeg float64 `yaml:"spawnRotationDeg"`

	// Body
	BodySize float64 `yaml:"bodySize"`
	Mass     float64 `yaml:"mass"`

	// Hurtbox
	HurtboxRadius  float64 `yaml:"hurtboxRadius"`
	HurtboxOffsetX float64 `yaml:"hurtboxOffsetX"`
	HurtboxOffsetY float64 `yaml:"hurtboxOffsetY"`
}

// EnemyConfig contains enemy spawn configuration
type EnemyConfig struct {
	SpawnX   float64 `yaml:"spawnX"`
	SpawnY   float64 `yaml:"spawnY"`
	BodySize float64 `yaml:"bodySize"`

	HurtboxRadius  float64 `yaml:"hurtboxRadius"`
	HurtboxOffsetX float64 `yaml:"hurtboxOffsetX"`
	HurtboxOffsetY float64 `yaml:"hurtboxOffsetY"`

	// Number of enemies requested by the startup spawn event round.
	StartingCount int `yaml:"startingCount"`
}

// CombatConfig contains melee hitbox configuration values
type CombatConfig struct {
	HitboxWidth   float64 `yaml:"hitboxWidth"`
	HitboxHeight  float64 `yaml:"hitboxHeight"`
	HitboxOffsetX float64 `yaml:"hitboxOffsetX"`
	HitboxOffsetY float64 `yaml:"hitboxOffsetY"`
	HitboxDecay   int     `yaml:"hitboxDecay"` // steps the hitbox stays alive

	// Upper bound on parent links followed when resolving a hurtbox to its owner.
	MaxOwnerHops int `yaml:"maxOwnerHops"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	TicksPerSecond int     `yaml:"ticksPerSecond"`
	GravityX       float64 `yaml:"gravityX"`
	GravityY       float64 `yaml:"gravityY"`
	Iterations     int     `yaml:"iterations"`

	// Arena bounds, walled in and covered by the broadphase grid
	ArenaWidth  int `yaml:"arenaWidth"`
	ArenaHeight int `yaml:"arenaHeight"`
	CellSize    int `yaml:"cellSize"`
}

// CameraConfig contains camera follow behavior
type CameraConfig struct {
	FollowSmoothing float64 // 0 keeps the camera fixed, 1 snaps to the player
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawVolumes bool `yaml:"drawVolumes"` // physics debug overlay
	LogHits     bool `yaml:"logHits"`
	ShowHUD     bool `yaml:"showHUD"`
}

// UIConfig contains HUD and debug overlay colors
type UIConfig struct {
	BackgroundColor color.RGBA
	HUDTextColor    color.RGBA
	HintTextColor   color.RGBA

	// Debug overlay colors keyed by layer name
	LayerColors map[string]color.RGBA
	BodyColor   color.RGBA
}

type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Combat CombatConfig
var Physics PhysicsConfig
var Camera CameraConfig
var Debug DebugConfig
var UI UIConfig

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow      = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red         = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	BrightGreen = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightBlue   = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Grey        = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	Background  = color.RGBA{R: 20, G: 20, B: 30, A: 255}
)

func init() {
	Reset()
}

// Reset restores every configuration group to its built-in defaults.
func Reset() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "Hitbox Arena",
	}

	// Player Config
	Player = PlayerConfig{
		Speed:            100.0,
		SpawnX:           0,
		SpawnY:           0,
		SpawnRotationDeg: 45,
		BodySize:         32,
		Mass:             1,
		HurtboxRadius:    4,
		HurtboxOffsetX:   0,
		HurtboxOffsetY:   12,
	}

	// Enemy Config
	Enemy = EnemyConfig{
		SpawnX:         0,
		SpawnY:         128,
		BodySize:       32,
		HurtboxRadius:  14,
		HurtboxOffsetX: 0,
		HurtboxOffsetY: 0,
		StartingCount:  1,
	}

	// Combat Config
	Combat = CombatConfig{
		HitboxWidth:   8,
		HitboxHeight:  32,
		HitboxOffsetX: 0,
		HitboxOffsetY: 32,
		HitboxDecay:   32,
		MaxOwnerHops:  16,
	}

	// Physics Config
	Physics = PhysicsConfig{
		TicksPerSecond: 60,
		GravityX:       0,
		GravityY:       0, // top-down arena
		Iterations:     10,
		ArenaWidth:     4096,
		ArenaHeight:    4096,
		CellSize:       16,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		DrawVolumes: false,
		LogHits:     false,
		ShowHUD:     true,
	}

	UI = UIConfig{
		BackgroundColor: Background,
		HUDTextColor:    White,
		HintTextColor:   Grey,
		LayerColors: map[string]color.RGBA{
			"physics": LightBlue,
			"hurt":    BrightGreen,
			"hit":     Red,
		},
		BodyColor: Yellow,
	}

	Input = defaultInput()
}

package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is wrapped by every validation failure.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning is the YAML-overridable subset of the configuration.
//
// Keys left out of a tuning file keep their current values, so a file only
// needs to name what it changes:
//
//	player:
//	  speed: 140
//	combat:
//	  hitboxDecay: 20
type Tuning struct {
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Combat  CombatConfig  `yaml:"combat"`
	Physics PhysicsConfig `yaml:"physics"`
	Debug   DebugConfig   `yaml:"debug"`
}

// CurrentTuning snapshots the live configuration groups.
func CurrentTuning() Tuning {
	return Tuning{
		Player:  Player,
		Enemy:   Enemy,
		Combat:  Combat,
		Physics: Physics,
		Debug:   Debug,
	}
}

// LoadTuning reads a YAML tuning file and overlays it on the live configuration.
// The result is validated but not applied.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}
	return ParseTuning(data, CurrentTuning())
}

// ParseTuning overlays YAML data on base and validates the result.
func ParseTuning(data []byte, base Tuning) (*Tuning, error) {
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks that every value is usable by the simulation.
func (t Tuning) Validate() error {
	switch {
	case t.Player.Speed < 0:
		return fmt.Errorf("%w: player.speed must not be negative, got %.2f", ErrInvalidTuning, t.Player.Speed)
	case t.Player.BodySize <= 0:
		return fmt.Errorf("%w: player.bodySize must be positive, got %.2f", ErrInvalidTuning, t.Player.BodySize)
	case t.Player.Mass <= 0:
		return fmt.Errorf("%w: player.mass must be positive, got %.2f", ErrInvalidTuning, t.Player.Mass)
	case t.Player.HurtboxRadius <= 0:
		return fmt.Errorf("%w: player.hurtboxRadius must be positive, got %.2f", ErrInvalidTuning, t.Player.HurtboxRadius)
	case t.Enemy.BodySize <= 0:
		return fmt.Errorf("%w: enemy.bodySize must be positive, got %.2f", ErrInvalidTuning, t.Enemy.BodySize)
	case t.Enemy.HurtboxRadius <= 0:
		return fmt.Errorf("%w: enemy.hurtboxRadius must be positive, got %.2f", ErrInvalidTuning, t.Enemy.HurtboxRadius)
	case t.Enemy.StartingCount < 0:
		return fmt.Errorf("%w: enemy.startingCount must not be negative, got %d", ErrInvalidTuning, t.Enemy.StartingCount)
	case t.Combat.HitboxWidth <= 0 || t.Combat.HitboxHeight <= 0:
		return fmt.Errorf("%w: combat hitbox size must be positive, got %.2fx%.2f", ErrInvalidTuning, t.Combat.HitboxWidth, t.Combat.HitboxHeight)
	case t.Combat.HitboxDecay < 1:
		return fmt.Errorf("%w: combat.hitboxDecay must be at least 1, got %d", ErrInvalidTuning, t.Combat.HitboxDecay)
	case t.Combat.MaxOwnerHops < 1:
		return fmt.Errorf("%w: combat.maxOwnerHops must be at least 1, got %d", ErrInvalidTuning, t.Combat.MaxOwnerHops)
	case t.Physics.TicksPerSecond <= 0:
		return fmt.Errorf("%w: physics.ticksPerSecond must be positive, got %d", ErrInvalidTuning, t.Physics.TicksPerSecond)
	case t.Physics.Iterations <= 0:
		return fmt.Errorf("%w: physics.iterations must be positive, got %d", ErrInvalidTuning, t.Physics.Iterations)
	case t.Physics.ArenaWidth <= 0 || t.Physics.ArenaHeight <= 0:
		return fmt.Errorf("%w: physics arena must be positive, got %dx%d", ErrInvalidTuning, t.Physics.ArenaWidth, t.Physics.ArenaHeight)
	case t.Physics.CellSize <= 0:
		return fmt.Errorf("%w: physics.cellSize must be positive, got %d", ErrInvalidTuning, t.Physics.CellSize)
	case !t.Physics.Contains(t.Player.SpawnX, t.Player.SpawnY, t.Player.BodySize):
		return fmt.Errorf("%w: player spawn (%.2f, %.2f) is outside the arena", ErrInvalidTuning, t.Player.SpawnX, t.Player.SpawnY)
	case !t.Physics.Contains(t.Enemy.SpawnX, t.Enemy.SpawnY, t.Enemy.BodySize):
		return fmt.Errorf("%w: enemy spawn (%.2f, %.2f) is outside the arena", ErrInvalidTuning, t.Enemy.SpawnX, t.Enemy.SpawnY)
	}
	return nil
}

// Contains reports whether a square of the given size centred on (x, y) fits
// inside the arena. The arena is centred on the world origin.
func (pc PhysicsConfig) Contains(x, y, size float64) bool {
	hw := float64(pc.ArenaWidth)/2 - size/2
	hh := float64(pc.ArenaHeight)/2 - size/2
	return math.Abs(x) <= hw && math.Abs(y) <= hh
}

// Apply copies the tuning into the live configuration groups.
// Arena and tick values only take effect for spaces created afterwards.
func (t *Tuning) Apply() {
	Player = t.Player
	Enemy = t.Enemy
	Combat = t.Combat
	Physics = t.Physics
	Debug = t.Debug
}

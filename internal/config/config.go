// Package config provides YAML-based game configuration loading and
// difficulty presets for the chase game.
package config

import (
	"errors"
	"fmt"
)

// ChaseConfig contains all configuration for the chase game.
// World coordinates are abstract units; the terminal maps them to cells.
type ChaseConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Pursuer    PursuerConfig    `yaml:"pursuer"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Emission   EmissionConfig   `yaml:"emission"`
	Input      InputConfig      `yaml:"input"`
}

// WorldConfig defines how world units map onto terminal cells.
type WorldConfig struct {
	CellWidth  float64 `yaml:"cell_width"`  // world units per column
	CellHeight float64 `yaml:"cell_height"` // world units per row
}

// PlayerConfig defines the player entity.
type PlayerConfig struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	BaseSpeed float64 `yaml:"base_speed"` // per held direction, doubled with shift
}

// PursuerConfig defines the pursuer entity.
type PursuerConfig struct {
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	ChaseSpeed float64 `yaml:"chase_speed"`
}

// ProjectileConfig defines projectile flight.
type ProjectileConfig struct {
	Speed           float64 `yaml:"speed"`
	HomingDelayMS   int     `yaml:"homing_delay_ms"`
	LifetimeMS      int     `yaml:"lifetime_ms"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	SpawnFromCenter bool    `yaml:"spawn_from_center"`
}

// EmissionConfig defines how projectiles are emitted while firing.
type EmissionConfig struct {
	RateMS       int  `yaml:"rate_ms"`
	TrailingShot bool `yaml:"trailing_shot"` // one queued shot still fires after release
}

// InputConfig defines input handling.
type InputConfig struct {
	ExactRelease   bool `yaml:"exact_release"`    // releases cancel exactly what the press added
	ReleaseAfterMS int  `yaml:"release_after_ms"` // synthesize key-up after this idle time
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ChaseSpeedForPreset returns the pursuer base chase speed for a preset.
// The fixed preset and unknown names keep the configured speed (ok == false).
func ChaseSpeedForPreset(preset DifficultyPreset) (speed float64, ok bool) {
	switch preset {
	case DifficultyEasy:
		return 3, true
	case DifficultyNormal:
		return 5, true
	case DifficultyHard:
		return 8, true
	default:
		return 0, false
	}
}

// ApplyChasePreset modifies the config based on a difficulty preset.
func ApplyChasePreset(cfg *ChaseConfig, preset DifficultyPreset) {
	if speed, ok := ChaseSpeedForPreset(preset); ok {
		cfg.Pursuer.ChaseSpeed = speed
	}
}

// ParsePreset validates a preset name. An empty name is accepted as fixed.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyFixed, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (expected easy, normal, hard or fixed)", name)
	}
}

// Validate reports values the game cannot run with.
func (c ChaseConfig) Validate() error {
	var errs []error
	if c.World.CellWidth <= 0 || c.World.CellHeight <= 0 {
		errs = append(errs, errors.New("world cell size must be positive"))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 || c.Player.BaseSpeed <= 0 {
		errs = append(errs, errors.New("player size and base_speed must be positive"))
	}
	if c.Pursuer.Width <= 0 || c.Pursuer.Height <= 0 || c.Pursuer.ChaseSpeed <= 0 {
		errs = append(errs, errors.New("pursuer size and chase_speed must be positive"))
	}
	if c.Projectile.Speed <= 0 || c.Projectile.Width <= 0 || c.Projectile.Height <= 0 {
		errs = append(errs, errors.New("projectile speed and size must be positive"))
	}
	if c.Projectile.HomingDelayMS <= 0 || c.Projectile.HomingDelayMS >= c.Projectile.LifetimeMS {
		errs = append(errs, errors.New("projectile homing_delay_ms must be positive and below lifetime_ms"))
	}
	if c.Emission.RateMS <= 0 {
		errs = append(errs, errors.New("emission rate_ms must be positive"))
	}
	if c.Input.ReleaseAfterMS < 0 {
		errs = append(errs, errors.New("input release_after_ms must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

package config

import (
	_ "embed"
)

//go:embed defaults/chase.yaml
var defaultChaseYAML []byte

// DefaultChaseConfig returns the default chase configuration.
func DefaultChaseConfig() ChaseConfig {
	return ChaseConfig{
		World: WorldConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
		Player: PlayerConfig{
			X:         400,
			Y:         300,
			Width:     50,
			Height:    50,
			BaseSpeed: 10,
		},
		Pursuer: PursuerConfig{
			X:          0,
			Y:          0,
			Width:      100,
			Height:     100,
			ChaseSpeed: 5,
		},
		Projectile: ProjectileConfig{
			Speed:         10,
			HomingDelayMS: 300,
			LifetimeMS:    1000,
			Width:         10,
			Height:        10,
		},
		Emission: EmissionConfig{
			RateMS:       100,
			TrailingShot: true,
		},
		Input: InputConfig{
			ExactRelease:   false,
			ReleaseAfterMS: 120,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultChaseYAML
}

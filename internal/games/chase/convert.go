package chase

import (
	"time"

	"github.com/vovakirdan/tui-chase/internal/config"
	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/games/chase/sim"
)

// SimConfig converts the YAML configuration into simulation tuning.
func SimConfig(c config.ChaseConfig) sim.Config {
	return sim.Config{
		PlayerPos:   core.Vec{X: c.Player.X, Y: c.Player.Y},
		PlayerSize:  core.Size{W: c.Player.Width, H: c.Player.Height},
		PursuerPos:  core.Vec{X: c.Pursuer.X, Y: c.Pursuer.Y},
		PursuerSize: core.Size{W: c.Pursuer.Width, H: c.Pursuer.Height},
		BaseSpeed:   c.Player.BaseSpeed,
		ChaseSpeed:  c.Pursuer.ChaseSpeed,
		Projectile: sim.ProjectileConfig{
			Speed:           c.Projectile.Speed,
			HomingDelay:     millis(c.Projectile.HomingDelayMS),
			Lifetime:        millis(c.Projectile.LifetimeMS),
			Size:            core.Size{W: c.Projectile.Width, H: c.Projectile.Height},
			SpawnFromCenter: c.Projectile.SpawnFromCenter,
		},
		EmissionRate: millis(c.Emission.RateMS),
		TrailingShot: c.Emission.TrailingShot,
		ExactRelease: c.Input.ExactRelease,
	}
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

package sim

import (
	"time"

	"github.com/vovakirdan/tui-chase/internal/core"
)

// ProjectileState is the render/replay view of one projectile.
type ProjectileState struct {
	ID    core.EntityID
	Pos   core.Vec
	Size  core.Size
	Phase Phase
}

// Snapshot captures the simulation state for rendering, determinism tests and traces.
type Snapshot struct {
	Tick        uint64
	Now         time.Duration
	Player      core.Entity
	Pursuer     core.Entity
	Velocity    core.Vec
	Speed       float64
	ChaseSpeed  float64
	Aim         core.Vec
	InDanger    bool
	Emitting    bool
	Projectiles []ProjectileState

	Spawned    int
	Collisions int
	Timeouts   int
}

// Snapshot returns the current simulation snapshot.
func (s *Simulation) Snapshot() Snapshot {
	live := s.projectiles.live
	ps := make([]ProjectileState, 0, len(live))
	for _, p := range live {
		ps = append(ps, ProjectileState{
			ID:    p.ID,
			Pos:   p.Pos,
			Size:  p.Size,
			Phase: p.Phase,
		})
	}

	return Snapshot{
		Tick:        s.tick,
		Now:         s.sched.now,
		Player:      s.player,
		Pursuer:     s.pursuer,
		Velocity:    s.input.Velocity(),
		Speed:       s.input.Speed(),
		ChaseSpeed:  s.chaser.Speed(),
		Aim:         s.aim,
		InDanger:    s.danger.InDanger(),
		Emitting:    s.projectiles.Emitting(),
		Projectiles: ps,
		Spawned:     s.projectiles.spawned,
		Collisions:  s.projectiles.collisions,
		Timeouts:    s.projectiles.timeouts,
	}
}

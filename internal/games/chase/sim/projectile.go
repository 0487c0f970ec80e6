package sim

import (
	"slices"
	"time"

	"github.com/vovakirdan/tui-chase/internal/core"
)

// Phase is the flight phase of a projectile.
type Phase int

const (
	PhaseBallistic Phase = iota // straight line with the spawn-time velocity
	PhaseHoming                 // steering toward the live target each tick
	PhaseRemoved                // detached from the simulation
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseBallistic:
		return "ballistic"
	case PhaseHoming:
		return "homing"
	case PhaseRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// RemovalCause records which trigger removed a projectile.
type RemovalCause int

const (
	CauseNone RemovalCause = iota
	CauseCollision
	CauseTimeout
)

// String returns the cause name.
func (c RemovalCause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseCollision:
		return "collision"
	case CauseTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// ProjectileConfig holds the projectile tuning.
type ProjectileConfig struct {
	Speed           float64       // distance per tick, also the homing per-axis clamp
	HomingDelay     time.Duration // time after spawn at which homing starts
	Lifetime        time.Duration // time after spawn at which the projectile is removed
	Size            core.Size
	SpawnFromCenter bool // spawn at the player's center instead of its position
}

// Projectile is a transient entity in flight.
// Target is a non-owning reference; the projectile never keeps the target alive.
type Projectile struct {
	core.Entity
	Phase     Phase
	SpawnedAt time.Duration
	Target    core.EntityID
	Cause     RemovalCause

	velocity core.Vec
	homing   *event
	timeout  *event
}

// Velocity returns the velocity applied on the last step (or the ballistic
// velocity before the first step).
func (p *Projectile) Velocity() core.Vec {
	return p.velocity
}

// ProjectileManager owns every in-flight projectile and the emission timer.
type ProjectileManager struct {
	cfg     ProjectileConfig
	sched   *scheduler
	display Display

	live []*Projectile
	byID map[core.EntityID]*Projectile

	emitting bool
	trailing bool
	rate     time.Duration
	pending  *event

	spawned    int
	collisions int
	timeouts   int
}

func newProjectileManager(cfg ProjectileConfig, sched *scheduler, display Display, trailing bool) *ProjectileManager {
	return &ProjectileManager{
		cfg:      cfg,
		sched:    sched,
		display:  display,
		byID:     make(map[core.EntityID]*Projectile),
		trailing: trailing,
	}
}

// Spawn creates a ballistic projectile at from, aimed at aim, homing later on target.
// The phase switch and timeout are scheduled relative to the current simulated time.
func (m *ProjectileManager) Spawn(id core.EntityID, from, aim core.Vec, target core.EntityID) *Projectile {
	return m.spawnAt(m.sched.now, id, from, aim, target)
}

// spawnAt is Spawn with the spawn time given explicitly, so that a request
// drained late in a frame keeps its own timeline.
func (m *ProjectileManager) spawnAt(at time.Duration, id core.EntityID, from, aim core.Vec, target core.EntityID) *Projectile {
	p := &Projectile{
		Entity:    core.Entity{ID: id, Pos: from, Size: m.cfg.Size},
		Phase:     PhaseBallistic,
		SpawnedAt: at,
		Target:    target,
		velocity:  from.Heading(aim, m.cfg.Speed),
	}
	p.homing = m.sched.at(at+m.cfg.HomingDelay, eventHoming, id)
	p.timeout = m.sched.at(at+m.cfg.Lifetime, eventTimeout, id)

	m.live = append(m.live, p)
	m.byID[id] = p
	m.spawned++
	m.display.AddEntity(id, KindProjectile)
	return p
}

// SwitchToHoming moves a ballistic projectile into the homing phase.
// Returns false if the projectile is unknown or not ballistic.
func (m *ProjectileManager) SwitchToHoming(id core.EntityID) bool {
	p, ok := m.byID[id]
	if !ok || p.Phase != PhaseBallistic {
		return false
	}
	p.Phase = PhaseHoming
	p.homing = nil
	return true
}

// Remove detaches a projectile. Only the first call for a projectile has any
// effect; later calls (from either trigger) return false.
func (m *ProjectileManager) Remove(id core.EntityID, cause RemovalCause) bool {
	p, ok := m.byID[id]
	if !ok || p.Phase == PhaseRemoved {
		return false
	}

	p.Phase = PhaseRemoved
	p.Cause = cause
	m.sched.cancel(p.homing)
	m.sched.cancel(p.timeout)
	p.homing, p.timeout = nil, nil

	delete(m.byID, id)
	m.live = slices.DeleteFunc(m.live, func(q *Projectile) bool { return q.ID == id })

	switch cause {
	case CauseCollision:
		m.collisions++
	case CauseTimeout:
		m.timeouts++
	}
	m.display.RemoveEntity(id)
	return true
}

// Step advances every live projectile by one tick.
// lookup resolves homing targets; a missing target leaves the projectile
// coasting on its last velocity.
func (m *ProjectileManager) Step(lookup func(core.EntityID) (core.Entity, bool)) {
	for _, p := range slices.Clone(m.live) {
		switch p.Phase {
		case PhaseBallistic:
			p.Pos = p.Pos.Add(p.velocity)

		case PhaseHoming:
			target, ok := lookup(p.Target)
			if ok {
				p.velocity = m.homingVelocity(p.Pos, target.Pos)
			}
			p.Pos = p.Pos.Add(p.velocity)

			if ok && core.Contains(p.Entity, target) {
				m.Remove(p.ID, CauseCollision)
			}
		}
	}
}

// homingVelocity steers toward target at projectile speed, clamping each axis
// to [-speed, speed].
func (m *ProjectileManager) homingVelocity(from, target core.Vec) core.Vec {
	s := m.cfg.Speed
	v := from.Heading(target, s)
	return core.Vec{
		X: core.ClampF(v.X, -s, s),
		Y: core.ClampF(v.Y, -s, s),
	}
}

// StartEmission begins periodic spawn requests every rate.
// The first request fires one interval after the call. Starting while a
// request is already pending keeps the existing schedule.
func (m *ProjectileManager) StartEmission(rate time.Duration) {
	m.emitting = true
	if rate > 0 {
		m.rate = rate
	}
	if m.pending == nil {
		m.pending = m.sched.after(m.rate, eventEmit, 0)
	}
}

// StopEmission stops scheduling further spawn requests.
// With trailing shots enabled, a request already pending still fires once.
// Projectiles in flight are unaffected.
func (m *ProjectileManager) StopEmission() {
	m.emitting = false
	if !m.trailing {
		m.sched.cancel(m.pending)
		m.pending = nil
	}
}

// Emitting reports whether emission is active.
func (m *ProjectileManager) Emitting() bool {
	return m.emitting
}

// fire runs a due timer and reports whether a projectile should be spawned.
// Emission requests are rescheduled from their own due time, so the rate
// holds regardless of frame length.
// Phase switches and timeouts for projectiles that are already gone are no-ops.
func (m *ProjectileManager) fire(e *event) bool {
	switch e.kind {
	case eventEmit:
		if e != m.pending {
			return false
		}
		m.pending = nil
		if m.emitting {
			m.pending = m.sched.at(e.due+m.rate, eventEmit, 0)
		}
		return true
	case eventHoming:
		m.SwitchToHoming(e.projectile)
	case eventTimeout:
		m.Remove(e.projectile, CauseTimeout)
	}
	return false
}

// Get returns a copy of a live projectile.
func (m *ProjectileManager) Get(id core.EntityID) (Projectile, bool) {
	p, ok := m.byID[id]
	if !ok {
		return Projectile{}, false
	}
	return *p, true
}

// Live returns copies of all in-flight projectiles in spawn order.
func (m *ProjectileManager) Live() []Projectile {
	out := make([]Projectile, 0, len(m.live))
	for _, p := range m.live {
		out = append(out, *p)
	}
	return out
}

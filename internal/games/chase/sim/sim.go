// Package sim implements the pursuit-and-combat simulation: the player's
// velocity from held controls, the pursuer's chase step, proximity tests,
// and the two-phase projectile lifecycle.
//
// The package has no terminal or rendering dependencies. A Simulation is
// driven by Update and by the input entry points, all from a single
// goroutine; it is not safe for concurrent use.
package sim

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-chase/internal/core"
)

// Fixed IDs of the two persistent entities. Projectiles are numbered after them.
const (
	PlayerID  core.EntityID = 1
	PursuerID core.EntityID = 2
)

// Config holds the simulation tuning.
type Config struct {
	PlayerPos   core.Vec
	PlayerSize  core.Size
	PursuerPos  core.Vec
	PursuerSize core.Size

	BaseSpeed  float64 // player speed per held control, doubled by the modifier
	ChaseSpeed float64 // pursuer base chase speed

	Projectile   ProjectileConfig
	EmissionRate time.Duration
	TrailingShot bool // a pending spawn request still fires after StopEmission
	ExactRelease bool // releases subtract the delta added at press time
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		PlayerPos:   core.Vec{X: 400, Y: 300},
		PlayerSize:  core.Size{W: 50, H: 50},
		PursuerPos:  core.Vec{X: 0, Y: 0},
		PursuerSize: core.Size{W: 100, H: 100},
		BaseSpeed:   10,
		ChaseSpeed:  5,
		Projectile: ProjectileConfig{
			Speed:       10,
			HomingDelay: 300 * time.Millisecond,
			Lifetime:    time.Second,
			Size:        core.Size{W: 10, H: 10},
		},
		EmissionRate: 100 * time.Millisecond,
		TrailingShot: true,
	}
}

// Validation errors returned by New.
var (
	ErrInvalidSpeed    = errors.New("speeds must be positive")
	ErrInvalidTiming   = errors.New("homing delay must be positive and shorter than lifetime")
	ErrInvalidEmission = errors.New("emission rate must be positive")
)

// Validate checks the configuration for values the simulation cannot run with.
func (c Config) Validate() error {
	if c.BaseSpeed <= 0 || c.ChaseSpeed <= 0 || c.Projectile.Speed <= 0 {
		return ErrInvalidSpeed
	}
	if c.Projectile.HomingDelay <= 0 || c.Projectile.HomingDelay >= c.Projectile.Lifetime {
		return ErrInvalidTiming
	}
	if c.EmissionRate <= 0 {
		return ErrInvalidEmission
	}
	if _, err := core.NewEntity(0, core.Vec{}, c.Projectile.Size); err != nil {
		return fmt.Errorf("projectile: %w", err)
	}
	return nil
}

// Simulation is the aggregate of all simulation state.
type Simulation struct {
	cfg     Config
	display Display

	player  core.Entity
	pursuer core.Entity
	aim     core.Vec

	input       *InputController
	chaser      *Pursuer
	danger      *DangerTracker
	projectiles *ProjectileManager
	sched       *scheduler

	nextID core.EntityID
	tick   uint64
}

// New creates a simulation and announces the player and pursuer to display.
// A nil display discards notifications.
func New(cfg Config, display Display) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim: invalid config: %w", err)
	}
	if display == nil {
		display = NopDisplay{}
	}

	player, err := core.NewEntity(PlayerID, cfg.PlayerPos, cfg.PlayerSize)
	if err != nil {
		return nil, fmt.Errorf("sim: player: %w", err)
	}
	pursuer, err := core.NewEntity(PursuerID, cfg.PursuerPos, cfg.PursuerSize)
	if err != nil {
		return nil, fmt.Errorf("sim: pursuer: %w", err)
	}

	sched := &scheduler{}
	s := &Simulation{
		cfg:         cfg,
		display:     display,
		player:      player,
		pursuer:     pursuer,
		aim:         player.Pos,
		input:       NewInputController(cfg.BaseSpeed, cfg.ExactRelease),
		chaser:      NewPursuer(cfg.ChaseSpeed),
		danger:      NewDangerTracker(display),
		projectiles: newProjectileManager(cfg.Projectile, sched, display, cfg.TrailingShot),
		sched:       sched,
		nextID:      PursuerID + 1,
	}

	display.AddEntity(pursuer.ID, KindPursuer)
	display.AddEntity(player.ID, KindPlayer)
	return s, nil
}

// Update advances the simulation by one frame covering dt of simulated time.
//
// Timers due within the frame fire first, in due order. The frame body then
// runs in fixed order: danger from the pre-move position, player movement,
// and a post-move containment test that either chases or resets the chase
// speed. Projectiles step last. Movement is per frame; dt only drives timers.
func (s *Simulation) Update(dt time.Duration) {
	s.sched.advance(dt)
	for {
		e, ok := s.sched.next()
		if !ok {
			break
		}
		if s.projectiles.fire(e) {
			s.spawnProjectile(e.due)
		}
	}

	s.tick++
	s.danger.Update(core.Contains(s.player, s.pursuer))

	s.player.Pos = s.player.Pos.Add(s.input.Velocity())

	if core.Contains(s.player, s.pursuer) {
		s.chaser.ResetSpeed()
	} else {
		Chase(&s.pursuer, s.player.Pos, s.chaser.Speed())
	}

	s.projectiles.Step(s.lookup)
}

func (s *Simulation) spawnProjectile(at time.Duration) {
	from := s.player.Pos
	if s.cfg.Projectile.SpawnFromCenter {
		from = s.player.Center()
	}
	id := s.nextID
	s.nextID++
	s.projectiles.spawnAt(at, id, from, s.aim, s.pursuer.ID)
}

// lookup resolves entity references held by projectiles.
func (s *Simulation) lookup(id core.EntityID) (core.Entity, bool) {
	switch id {
	case s.pursuer.ID:
		return s.pursuer, true
	case s.player.ID:
		return s.player, true
	}
	return core.Entity{}, false
}

// KeyDown forwards a key press to the input controller.
// Returns false for keys with no binding.
func (s *Simulation) KeyDown(key string) bool {
	return s.input.KeyDown(key)
}

// KeyUp forwards a key release to the input controller.
func (s *Simulation) KeyUp(key string) bool {
	return s.input.KeyUp(key)
}

// PointerMove updates the aim target. Non-finite coordinates are ignored.
func (s *Simulation) PointerMove(x, y float64) {
	p := core.Vec{X: x, Y: y}
	if !p.Finite() {
		return
	}
	s.aim = p
}

// PointerDown starts projectile emission at the configured rate.
func (s *Simulation) PointerDown() {
	s.projectiles.StartEmission(s.cfg.EmissionRate)
}

// PointerUp stops projectile emission.
func (s *Simulation) PointerUp() {
	s.projectiles.StopEmission()
}

// Player returns the player entity.
func (s *Simulation) Player() core.Entity {
	return s.player
}

// Pursuer returns the pursuer entity.
func (s *Simulation) Pursuer() core.Entity {
	return s.pursuer
}

// Aim returns the current aim target.
func (s *Simulation) Aim() core.Vec {
	return s.aim
}

// ChaseSpeed returns the pursuer's current chase speed.
func (s *Simulation) ChaseSpeed() float64 {
	return s.chaser.Speed()
}

// Velocity returns the player's accumulated velocity.
func (s *Simulation) Velocity() core.Vec {
	return s.input.Velocity()
}

// InDanger returns the danger flag reported on the last frame.
func (s *Simulation) InDanger() bool {
	return s.danger.InDanger()
}

// Projectiles returns copies of the in-flight projectiles.
func (s *Simulation) Projectiles() []Projectile {
	return s.projectiles.Live()
}

// Emitting reports whether projectile emission is active.
func (s *Simulation) Emitting() bool {
	return s.projectiles.Emitting()
}

// Now returns the simulated time.
func (s *Simulation) Now() time.Duration {
	return s.sched.now
}

// Tick returns the number of frames simulated.
func (s *Simulation) Tick() uint64 {
	return s.tick
}

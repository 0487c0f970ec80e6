package sim

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-chase/internal/core"
)

func configAt(player, pursuer core.Vec) Config {
	cfg := DefaultConfig()
	cfg.PlayerPos = player
	cfg.PursuerPos = pursuer
	return cfg
}

func TestNewAnnouncesEntities(t *testing.T) {
	_, d := newTestSim(t, DefaultConfig())

	if d.adds[PlayerID] != 1 || d.kinds[PlayerID] != KindPlayer {
		t.Errorf("player add count = %d kind = %v", d.adds[PlayerID], d.kinds[PlayerID])
	}
	if d.adds[PursuerID] != 1 || d.kinds[PursuerID] != KindPursuer {
		t.Errorf("pursuer add count = %d kind = %v", d.adds[PursuerID], d.kinds[PursuerID])
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero base speed", func(c *Config) { c.BaseSpeed = 0 }, ErrInvalidSpeed},
		{"negative chase speed", func(c *Config) { c.ChaseSpeed = -1 }, ErrInvalidSpeed},
		{"homing after lifetime", func(c *Config) { c.Projectile.HomingDelay = 2 * time.Second }, ErrInvalidTiming},
		{"zero emission rate", func(c *Config) { c.EmissionRate = 0 }, ErrInvalidEmission},
		{"NaN player", func(c *Config) { c.PlayerPos.X = math.NaN() }, core.ErrInvalidPosition},
		{"empty pursuer", func(c *Config) { c.PursuerSize = core.Size{} }, core.ErrInvalidSize},
		{"empty projectile", func(c *Config) { c.Projectile.Size = core.Size{} }, core.ErrInvalidSize},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			_, err := New(cfg, nil)
			if !errors.Is(err, tc.want) {
				t.Errorf("New() error = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestChaseOneTick(t *testing.T) {
	s, _ := newTestSim(t, configAt(core.Vec{X: 100, Y: 0}, core.Vec{X: 0, Y: 0}))

	s.Update(frame)

	if s.Pursuer().Pos != (core.Vec{X: 5, Y: 0}) {
		t.Errorf("pursuer after one tick = %+v, expected {5 0}", s.Pursuer().Pos)
	}
	if s.InDanger() {
		t.Error("player 100 away should not be in danger")
	}
}

func TestDangerUsesPreMovePosition(t *testing.T) {
	// Player starts outside the radius and steps inside during the frame
	s, d := newTestSim(t, configAt(core.Vec{X: 55, Y: 0}, core.Vec{X: 0, Y: 0}))
	s.KeyDown(KeyLeft)

	s.Update(frame)

	if s.Player().Pos != (core.Vec{X: 45, Y: 0}) {
		t.Fatalf("player = %+v, expected {45 0}", s.Player().Pos)
	}
	if s.InDanger() || d.dangers[0] {
		t.Error("danger should come from the pre-move position (outside)")
	}
	if s.Pursuer().Pos != (core.Vec{X: 0, Y: 0}) {
		t.Errorf("pursuer = %+v, expected no chase once post-move containment holds", s.Pursuer().Pos)
	}
}

func TestChaseUsesPostMovePosition(t *testing.T) {
	// Player starts inside the radius and steps outside during the frame
	s, d := newTestSim(t, configAt(core.Vec{X: 45, Y: 0}, core.Vec{X: 0, Y: 0}))
	s.KeyDown(KeyRight)

	s.Update(frame)

	if !s.InDanger() || !d.dangers[0] {
		t.Error("danger should come from the pre-move position (inside)")
	}
	if s.Pursuer().Pos != (core.Vec{X: 5, Y: 0}) {
		t.Errorf("pursuer = %+v, expected a chase step to {5 0}", s.Pursuer().Pos)
	}
}

func TestDangerReportedEveryTick(t *testing.T) {
	s, d := newTestSim(t, configAt(core.Vec{X: 10, Y: 0}, core.Vec{X: 0, Y: 0}))

	for range 5 {
		s.Update(frame)
	}

	if len(d.dangers) != 5 {
		t.Fatalf("SetDanger calls = %d, expected 5", len(d.dangers))
	}
	for i, v := range d.dangers {
		if !v {
			t.Errorf("tick %d reported danger=false, expected true", i)
		}
	}
}

func TestChaseSpeedResetsOnContainment(t *testing.T) {
	s, _ := newTestSim(t, configAt(core.Vec{X: 10, Y: 0}, core.Vec{X: 0, Y: 0}))
	s.chaser.speed = 42

	s.Update(frame)

	if s.ChaseSpeed() != 5 {
		t.Errorf("ChaseSpeed() = %v, expected reset to 5", s.ChaseSpeed())
	}
}

func TestChaseSpeedUntouchedOutsideRadius(t *testing.T) {
	s, _ := newTestSim(t, configAt(core.Vec{X: 500, Y: 0}, core.Vec{X: 0, Y: 0}))
	s.chaser.speed = 42

	s.Update(frame)

	if s.ChaseSpeed() != 42 {
		t.Errorf("ChaseSpeed() = %v, expected 42 (no reset without containment)", s.ChaseSpeed())
	}
	if s.Pursuer().Pos != (core.Vec{X: 42, Y: 0}) {
		t.Errorf("pursuer = %+v, expected {42 0}", s.Pursuer().Pos)
	}
}

func TestPlayerIntegratesVelocity(t *testing.T) {
	s, _ := newTestSim(t, configAt(core.Vec{X: 400, Y: 300}, core.Vec{X: 0, Y: 0}))

	s.KeyDown(KeyD)
	s.KeyDown(KeyS)
	s.Update(frame)
	s.Update(frame)
	s.KeyUp(KeyS)
	s.Update(frame)

	expected := core.Vec{X: 430, Y: 320}
	if s.Player().Pos != expected {
		t.Errorf("player = %+v, expected %+v", s.Player().Pos, expected)
	}
}

func TestPointerEmitsAimedProjectiles(t *testing.T) {
	s, d := newTestSim(t, configAt(core.Vec{X: 400, Y: 300}, core.Vec{X: 0, Y: 0}))
	s.PointerMove(400, 400)
	s.PointerDown()

	s.Update(100 * time.Millisecond)

	ps := s.Projectiles()
	if len(ps) != 1 {
		t.Fatalf("projectiles = %d, expected 1", len(ps))
	}
	p := ps[0]
	if d.adds[p.ID] != 1 {
		t.Errorf("display adds for projectile = %d, expected 1", d.adds[p.ID])
	}
	if p.Target != PursuerID {
		t.Errorf("Target = %v, expected pursuer", p.Target)
	}
	// Spawned at the player and stepped once straight down at speed 10
	if math.Abs(p.Pos.X-400) > 1e-9 || math.Abs(p.Pos.Y-310) > 1e-9 {
		t.Errorf("projectile Pos = %+v, expected {400 310}", p.Pos)
	}
}

func TestSpawnFromCenter(t *testing.T) {
	cfg := configAt(core.Vec{X: 400, Y: 300}, core.Vec{X: 0, Y: 0})
	cfg.Projectile.SpawnFromCenter = true
	s, _ := newTestSim(t, cfg)
	s.PointerMove(1000, 325)
	s.PointerDown()

	s.Update(100 * time.Millisecond)

	p := s.Projectiles()[0]
	if p.SpawnedAt != 100*time.Millisecond {
		t.Errorf("SpawnedAt = %v, expected 100ms", p.SpawnedAt)
	}
	if p.Pos != (core.Vec{X: 435, Y: 325}) {
		t.Errorf("projectile Pos = %+v, expected {435 325}", p.Pos)
	}
}

func TestEmissionRateIndependentOfFrameLength(t *testing.T) {
	tests := []struct {
		name string
		dt   time.Duration
	}{
		{"60fps", frame},
		{"30ms", 30 * time.Millisecond},
		{"50ms", 50 * time.Millisecond},
		{"longer than rate", 250 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Far from the pursuer so nothing collides within the second
			s, _ := newTestSim(t, configAt(core.Vec{X: 4000, Y: 3000}, core.Vec{X: 0, Y: 0}))
			s.PointerMove(5000, 3000)
			s.PointerDown()

			for s.Now() < time.Second {
				s.Update(tc.dt)
			}

			rate := DefaultConfig().EmissionRate
			if got := s.Snapshot().Spawned; got != 10 {
				t.Fatalf("spawned over %v = %d, expected 10", s.Now(), got)
			}
			ps := s.Projectiles()
			if len(ps) != 10 {
				t.Fatalf("projectiles in flight = %d, expected 10", len(ps))
			}
			for i, p := range ps {
				if expected := time.Duration(i+1) * rate; p.SpawnedAt != expected {
					t.Errorf("projectile %d SpawnedAt = %v, expected %v", i, p.SpawnedAt, expected)
				}
			}
		})
	}
}

func TestLateSpawnKeepsItsTimeline(t *testing.T) {
	s, _ := newTestSim(t, configAt(core.Vec{X: 4000, Y: 3000}, core.Vec{X: 0, Y: 0}))
	s.PointerMove(5000, 3000)
	s.PointerDown()
	s.PointerUp()

	// The request due at 100ms drains at 250ms; homing is due at 400ms
	s.Update(250 * time.Millisecond)
	s.Update(140 * time.Millisecond)
	p := s.Projectiles()[0]
	if p.Phase != PhaseBallistic {
		t.Fatalf("Phase at 390ms = %v, expected ballistic", p.Phase)
	}

	s.Update(10 * time.Millisecond)
	if p := s.Projectiles()[0]; p.Phase != PhaseHoming {
		t.Errorf("Phase at 400ms = %v, expected homing", p.Phase)
	}

	// Timeout is due at 1100ms
	s.Update(690 * time.Millisecond)
	if len(s.Projectiles()) != 1 {
		t.Fatalf("projectile removed before its lifetime at %v", s.Now())
	}
	s.Update(10 * time.Millisecond)
	if len(s.Projectiles()) != 0 {
		t.Errorf("projectile still in flight at %v", s.Now())
	}
}

func TestStopEmissionLeavesProjectilesInFlight(t *testing.T) {
	cfg := configAt(core.Vec{X: 4000, Y: 3000}, core.Vec{X: 0, Y: 0})
	s, d := newTestSim(t, cfg)
	s.PointerMove(5000, 3000)

	s.PointerDown()
	s.Update(100 * time.Millisecond)
	s.PointerUp()

	if len(s.Projectiles()) != 1 {
		t.Fatalf("projectiles after first shot = %d, expected 1", len(s.Projectiles()))
	}

	// Trailing shot fires at 200ms, then both time out on their own schedule
	s.Update(100 * time.Millisecond)
	if len(s.Projectiles()) != 2 {
		t.Fatalf("projectiles after trailing shot = %d, expected 2", len(s.Projectiles()))
	}

	for range 12 {
		s.Update(100 * time.Millisecond)
	}
	if len(s.Projectiles()) != 0 {
		t.Errorf("projectiles after lifetime = %d, expected 0", len(s.Projectiles()))
	}

	snap := s.Snapshot()
	if snap.Spawned != 2 || snap.Timeouts != 2 {
		t.Errorf("spawned=%d timeouts=%d, expected 2/2", snap.Spawned, snap.Timeouts)
	}
	for id := PursuerID + 1; id <= PursuerID+2; id++ {
		if d.removes[id] != 1 {
			t.Errorf("projectile %d removals = %d, expected 1", id, d.removes[id])
		}
	}
}

func TestPointerMoveIgnoresNonFinite(t *testing.T) {
	s, _ := newTestSim(t, DefaultConfig())
	s.PointerMove(10, 20)
	s.PointerMove(math.Inf(1), 0)

	if s.Aim() != (core.Vec{X: 10, Y: 20}) {
		t.Errorf("Aim() = %+v, expected {10 20}", s.Aim())
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		s, _ := newTestSim(t, DefaultConfig())
		for i := range 240 {
			switch i {
			case 10:
				s.KeyDown(KeyUp)
				s.PointerMove(800, 100)
				s.PointerDown()
			case 40:
				s.KeyDown(KeyModifier)
				s.KeyDown(KeyRight)
			case 70:
				s.PointerUp()
				s.KeyUp(KeyUp)
			case 120:
				s.KeyUp(KeyModifier)
			}
			s.Update(frame)
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("snapshots differ:\n%+v\n%+v", a, b)
	}
	if a.Tick != 240 {
		t.Errorf("Tick = %d, expected 240", a.Tick)
	}
	if a.Spawned == 0 {
		t.Error("expected some projectiles to be spawned")
	}
}

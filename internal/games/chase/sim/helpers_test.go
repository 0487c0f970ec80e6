package sim

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-chase/internal/core"
)

const frame = time.Second / 60

// recordingDisplay counts every notification it receives.
type recordingDisplay struct {
	adds    map[core.EntityID]int
	removes map[core.EntityID]int
	kinds   map[core.EntityID]EntityKind
	dangers []bool
}

func newRecordingDisplay() *recordingDisplay {
	return &recordingDisplay{
		adds:    make(map[core.EntityID]int),
		removes: make(map[core.EntityID]int),
		kinds:   make(map[core.EntityID]EntityKind),
	}
}

func (d *recordingDisplay) AddEntity(id core.EntityID, kind EntityKind) {
	d.adds[id]++
	d.kinds[id] = kind
}

func (d *recordingDisplay) RemoveEntity(id core.EntityID) {
	d.removes[id]++
}

func (d *recordingDisplay) SetDanger(inDanger bool) {
	d.dangers = append(d.dangers, inDanger)
}

func newTestSim(t *testing.T, cfg Config) (*Simulation, *recordingDisplay) {
	t.Helper()
	d := newRecordingDisplay()
	s, err := New(cfg, d)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s, d
}

func newTestManager(cfg ProjectileConfig, trailing bool) (*ProjectileManager, *recordingDisplay) {
	d := newRecordingDisplay()
	return newProjectileManager(cfg, &scheduler{}, d, trailing), d
}

// runTimers advances the manager's clock by dt and fires due timers.
// Returns how many spawn requests fired.
func runTimers(m *ProjectileManager, dt time.Duration) int {
	m.sched.advance(dt)
	spawns := 0
	for {
		e, ok := m.sched.next()
		if !ok {
			return spawns
		}
		if m.fire(e) {
			spawns++
		}
	}
}

// fixedTarget returns a lookup that always resolves to target.
func fixedTarget(target core.Entity) func(core.EntityID) (core.Entity, bool) {
	return func(id core.EntityID) (core.Entity, bool) {
		if id != target.ID {
			return core.Entity{}, false
		}
		return target, true
	}
}

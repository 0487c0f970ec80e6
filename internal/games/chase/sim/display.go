package sim

import "github.com/vovakirdan/tui-chase/internal/core"

// EntityKind is the role an entity plays in the simulation.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindPursuer
	KindProjectile
)

// String returns the role name.
func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindPursuer:
		return "pursuer"
	case KindProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// Display is the rendering collaborator the simulation reports to.
// Positions are read back through Simulation.Snapshot.
type Display interface {
	AddEntity(id core.EntityID, kind EntityKind)
	RemoveEntity(id core.EntityID)
	SetDanger(inDanger bool)
}

// NopDisplay discards all notifications.
type NopDisplay struct{}

func (NopDisplay) AddEntity(core.EntityID, EntityKind) {}
func (NopDisplay) RemoveEntity(core.EntityID)          {}
func (NopDisplay) SetDanger(bool)                      {}

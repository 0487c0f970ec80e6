package sim

import (
	"math"

	"github.com/vovakirdan/tui-chase/internal/core"
)

// Pursuer holds the chase speed of the pursuing entity.
// Speed only ever returns to base; nothing currently raises or lowers it.
type Pursuer struct {
	base  float64
	speed float64
}

// NewPursuer creates a pursuer AI chasing at the given base speed.
func NewPursuer(base float64) *Pursuer {
	return &Pursuer{base: base, speed: base}
}

// Speed returns the current chase speed.
func (p *Pursuer) Speed() float64 {
	return p.speed
}

// Base returns the base chase speed.
func (p *Pursuer) Base() float64 {
	return p.base
}

// ResetSpeed restores the chase speed to its base value.
func (p *Pursuer) ResetSpeed() {
	p.speed = p.base
}

// Chase moves e one step toward target.
// Each axis step is rounded to whole units, so movement is integer-pixel.
func Chase(e *core.Entity, target core.Vec, speed float64) {
	step := e.Pos.Heading(target, speed)
	e.Pos.X += math.Round(step.X)
	e.Pos.Y += math.Round(step.Y)
}

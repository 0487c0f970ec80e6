package sim

import (
	"slices"

	"github.com/vovakirdan/tui-chase/internal/core"
)

// Direction is one of the four directional controls.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Key names as delivered by the terminal layer.
const (
	KeyUp       = "up"
	KeyDown     = "down"
	KeyLeft     = "left"
	KeyRight    = "right"
	KeyW        = "w"
	KeyS        = "s"
	KeyA        = "a"
	KeyD        = "d"
	KeyModifier = "shift"
)

// control is one directional input: its bound keys, a unit direction and
// the debounce state.
type control struct {
	keys    []string
	dir     core.Vec
	pressed bool
	applied core.Vec // delta added at press time
}

func (c *control) bound(key string) bool {
	return slices.Contains(c.keys, key)
}

// motionDelta returns the unit direction scaled by speed.
func (c *control) motionDelta(speed float64) core.Vec {
	return c.dir.Scale(speed)
}

// InputController turns key presses into the player's accumulated velocity.
//
// Velocity is a running sum: a press adds motionDelta(speed) and the matching
// release subtracts it again. Holding the modifier doubles speed for presses
// and releases made while it is held; contributions already accumulated are
// not rescaled.
type InputController struct {
	controls     [4]control
	base         float64
	speed        float64
	velocity     core.Vec
	exactRelease bool
}

// NewInputController creates a controller with the given base speed.
// With exactRelease, a release subtracts the delta recorded at press time
// instead of one computed from the current speed.
func NewInputController(baseSpeed float64, exactRelease bool) *InputController {
	return &InputController{
		controls: [4]control{
			DirUp:    {keys: []string{KeyUp, KeyW}, dir: core.Vec{X: 0, Y: -1}},
			DirDown:  {keys: []string{KeyDown, KeyS}, dir: core.Vec{X: 0, Y: 1}},
			DirLeft:  {keys: []string{KeyLeft, KeyA}, dir: core.Vec{X: -1, Y: 0}},
			DirRight: {keys: []string{KeyRight, KeyD}, dir: core.Vec{X: 1, Y: 0}},
		},
		base:         baseSpeed,
		speed:        baseSpeed,
		exactRelease: exactRelease,
	}
}

// KeyDown handles a key press. Returns false for unbound keys.
func (c *InputController) KeyDown(key string) bool {
	handled := false
	if key == KeyModifier {
		c.speed = c.base * 2
		handled = true
	}

	for i := range c.controls {
		ctl := &c.controls[i]
		if !ctl.bound(key) {
			continue
		}
		handled = true
		if ctl.pressed {
			continue
		}
		ctl.pressed = true
		ctl.applied = ctl.motionDelta(c.speed)
		c.velocity = c.velocity.Add(ctl.applied)
	}
	return handled
}

// KeyUp handles a key release. Returns false for unbound keys.
// Releasing a control that is not pressed changes nothing.
func (c *InputController) KeyUp(key string) bool {
	handled := false
	if key == KeyModifier {
		c.speed = c.base
		handled = true
	}

	for i := range c.controls {
		ctl := &c.controls[i]
		if !ctl.bound(key) {
			continue
		}
		handled = true
		if !ctl.pressed {
			continue
		}
		ctl.pressed = false

		delta := ctl.motionDelta(c.speed)
		if c.exactRelease {
			delta = ctl.applied
		}
		c.velocity = c.velocity.Sub(delta)
		ctl.applied = core.Vec{}
	}
	return handled
}

// Velocity returns the accumulated velocity.
func (c *InputController) Velocity() core.Vec {
	return c.velocity
}

// Speed returns the current movement speed.
func (c *InputController) Speed() float64 {
	return c.speed
}

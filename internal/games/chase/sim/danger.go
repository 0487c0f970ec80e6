package sim

// DangerTracker derives the in-danger flag from the per-tick containment test
// and forwards it to the display every tick. There is no hysteresis.
type DangerTracker struct {
	display  Display
	inDanger bool
}

// NewDangerTracker creates a tracker reporting to display.
func NewDangerTracker(display Display) *DangerTracker {
	return &DangerTracker{display: display}
}

// Update records the containment result and reports it.
// Returns true when the flag differs from the previous tick.
func (d *DangerTracker) Update(contained bool) bool {
	changed := contained != d.inDanger
	d.inDanger = contained
	d.display.SetDanger(contained)
	return changed
}

// InDanger returns the last reported flag.
func (d *DangerTracker) InDanger() bool {
	return d.inDanger
}

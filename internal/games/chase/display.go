package chase

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/games/chase/sim"
)

// logDisplay receives simulation notifications and logs them.
// Drawing itself reads the simulation snapshot, so this only tracks
// what is on screen and when the danger state flips.
type logDisplay struct {
	logger *log.Logger
	kinds  map[core.EntityID]sim.EntityKind
	danger bool
}

func newLogDisplay(logger *log.Logger) *logDisplay {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &logDisplay{
		logger: logger,
		kinds:  make(map[core.EntityID]sim.EntityKind),
	}
}

func (d *logDisplay) AddEntity(id core.EntityID, kind sim.EntityKind) {
	d.kinds[id] = kind
	d.logger.Debug("entity added", "id", id, "kind", kind)
}

func (d *logDisplay) RemoveEntity(id core.EntityID) {
	kind, ok := d.kinds[id]
	if !ok {
		d.logger.Warn("remove of unknown entity", "id", id)
		return
	}
	delete(d.kinds, id)
	d.logger.Debug("entity removed", "id", id, "kind", kind)
}

// SetDanger is called every frame; only transitions are logged.
func (d *logDisplay) SetDanger(inDanger bool) {
	if inDanger == d.danger {
		return
	}
	d.danger = inDanger
	if inDanger {
		d.logger.Debug("danger entered")
	} else {
		d.logger.Debug("danger cleared")
	}
}

// count returns how many entities of kind are displayed.
func (d *logDisplay) count(kind sim.EntityKind) int {
	n := 0
	for _, k := range d.kinds {
		if k == kind {
			n++
		}
	}
	return n
}

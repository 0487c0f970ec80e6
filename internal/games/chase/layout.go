package chase

import (
	"math"

	"github.com/vovakirdan/tui-chase/internal/config"
	"github.com/vovakirdan/tui-chase/internal/core"
)

// Layout places the 4:3 play surface on a terminal screen and converts
// between world units and cells.
type Layout struct {
	Left, Top  int // first cell inside the border
	Cols, Rows int // surface size in cells
	CellW      float64
	CellH      float64
}

// NewLayout fits the surface to a screen of w×h cells. The bottom row is
// reserved for the status line and the surface is centered horizontally.
func NewLayout(w, h int, world config.WorldConfig) Layout {
	rows := max(h-3, 1) // border top and bottom, status line
	worldH := float64(rows) * world.CellHeight
	cols := int(worldH * 4 / 3 / world.CellWidth)
	cols = core.Clamp(cols, 1, max(w-2, 1))

	return Layout{
		Left:  max((w-cols-2)/2, 0) + 1,
		Top:   1,
		Cols:  cols,
		Rows:  rows,
		CellW: world.CellWidth,
		CellH: world.CellHeight,
	}
}

// Border returns the rectangle enclosing the surface.
func (l Layout) Border() core.Rect {
	return core.NewRect(l.Left-1, l.Top-1, l.Cols+2, l.Rows+2)
}

// ToCell returns the screen cell holding world point v.
func (l Layout) ToCell(v core.Vec) (col, row int) {
	return l.Left + int(math.Floor(v.X/l.CellW)), l.Top + int(math.Floor(v.Y/l.CellH))
}

// ToWorld returns the world point at the center of a screen cell.
func (l Layout) ToWorld(col, row int) core.Vec {
	return core.Vec{
		X: (float64(col-l.Left) + 0.5) * l.CellW,
		Y: (float64(row-l.Top) + 0.5) * l.CellH,
	}
}

// Inside reports whether a screen cell lies on the surface.
func (l Layout) Inside(col, row int) bool {
	return col >= l.Left && col < l.Left+l.Cols && row >= l.Top && row < l.Top+l.Rows
}

// Span returns the cells covered by an entity, clipped to the surface.
// Every entity covers at least one cell; ok is false when it is off-surface.
func (l Layout) Span(e core.Entity) (r core.Rect, ok bool) {
	x0 := int(math.Floor(e.Pos.X / l.CellW))
	y0 := int(math.Floor(e.Pos.Y / l.CellH))
	x1 := max(int(math.Ceil((e.Pos.X+e.Size.W)/l.CellW)), x0+1)
	y1 := max(int(math.Ceil((e.Pos.Y+e.Size.H)/l.CellH)), y0+1)

	x0, x1 = max(x0, 0), min(x1, l.Cols)
	y0, y1 = max(y0, 0), min(y1, l.Rows)
	if x0 >= x1 || y0 >= y1 {
		return core.Rect{}, false
	}
	return core.NewRect(l.Left+x0, l.Top+y0, x1-x0, y1-y0), true
}

package input

import (
	"math"

	"github.com/lixenwraith/tilefade/grid"
)

// Speeds holds the animation parameters the navigator stamps on queued events
type Speeds struct {
	Move           float64 // neighbour step speed
	Teleport       float64 // edge wraparound speed
	Fade           float64 // opacity per frame
	InitialOpacity float64 // fade starting opacity
}

// DefaultSpeeds returns the stock tuning
func DefaultSpeeds() Speeds {
	return Speeds{
		Move:           10,
		Teleport:       50,
		Fade:           0.075,
		InitialOpacity: 1,
	}
}

// Outcome reports what a navigator call queued
type Outcome uint8

const (
	OutcomeIgnored Outcome = iota
	OutcomeMoved
	OutcomeTeleported
	OutcomeDestroyed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeTeleported:
		return "teleported"
	case OutcomeDestroyed:
		return "destroyed"
	default:
		return "ignored"
	}
}

// Navigator turns navigation intents into selection changes and queued grid events
// Stepping off an edge wraps the selection and queues a fast move across the grid
type Navigator struct {
	grid   *grid.Grid
	speeds Speeds
}

// NewNavigator creates a navigator bound to g
func NewNavigator(g *grid.Grid, speeds Speeds) *Navigator {
	return &Navigator{grid: g, speeds: speeds}
}

// Speeds returns the current tuning
func (n *Navigator) Speeds() Speeds {
	return n.speeds
}

// Apply dispatches tile intents; system intents are ignored
func (n *Navigator) Apply(intent Intent) Outcome {
	if dir, ok := intent.Direction(); ok {
		return n.Step(dir)
	}
	if intent == IntentDestroy {
		return n.Destroy()
	}
	return OutcomeIgnored
}

// Step moves the selection one tile in dir, wrapping at the edges
func (n *Navigator) Step(dir grid.Direction) Outcome {
	g := n.grid
	row, col := g.SelectedRow(), g.SelectedColumn()
	ts := g.TileSize()

	// Distance between the first and last tile on an axis
	span := func(count int) float64 {
		return math.Abs(float64(count)*ts - ts)
	}

	switch dir {
	case grid.Up:
		if row-1 < 1 {
			g.EnqueueMove(grid.Down, span(g.Rows()), n.speeds.Teleport)
			g.Select(col, g.Rows())
			return OutcomeTeleported
		}
		g.EnqueueMove(grid.Up, ts, n.speeds.Move)
		g.Select(col, row-1)

	case grid.Down:
		if row+1 > g.Rows() {
			g.EnqueueMove(grid.Up, span(g.Rows()), n.speeds.Teleport)
			g.Select(col, 1)
			return OutcomeTeleported
		}
		g.EnqueueMove(grid.Down, ts, n.speeds.Move)
		g.Select(col, row+1)

	case grid.Left:
		if col-1 < 1 {
			g.EnqueueMove(grid.Right, span(g.Columns()), n.speeds.Teleport)
			g.Select(g.Columns(), row)
			return OutcomeTeleported
		}
		g.EnqueueMove(grid.Left, ts, n.speeds.Move)
		g.Select(col-1, row)

	case grid.Right:
		if col+1 > g.Columns() {
			g.EnqueueMove(grid.Left, span(g.Columns()), n.speeds.Teleport)
			g.Select(1, row)
			return OutcomeTeleported
		}
		g.EnqueueMove(grid.Right, ts, n.speeds.Move)
		g.Select(col+1, row)

	default:
		return OutcomeIgnored
	}
	return OutcomeMoved
}

// Destroy queues a fade for the selected tile
// Ignored when the selection is off-grid or the tile was already queued
func (n *Navigator) Destroy() Outcome {
	g := n.grid
	if !g.InBounds(g.SelectedRow(), g.SelectedColumn()) {
		return OutcomeIgnored
	}
	idx := g.SelectedIndex()
	if g.IsDestroyed(idx) {
		return OutcomeIgnored
	}
	g.EnqueueDestroy(idx, n.speeds.Fade, n.speeds.InitialOpacity)
	return OutcomeDestroyed
}

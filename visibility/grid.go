// Package visibility tracks fog of war on a cell grid. A cell is Unseen
// until a friendly unit's vision covers it, Visible while covered, and
// PreviouslySeen once the cover moves away.
package visibility

import (
	"math"

	"github.com/automoto/starcarrier/units"
)

type CellState uint8

const (
	Unseen CellState = iota
	PreviouslySeen
	Visible
)

func (s CellState) String() string {
	switch s {
	case PreviouslySeen:
		return "previously_seen"
	case Visible:
		return "visible"
	}
	return "unseen"
}

// Grid is the fog-of-war state for one world. It is not safe for
// concurrent use.
type Grid struct {
	cellSize int
	width    int // in cells
	height   int

	cells   []CellState
	current []bool // scratch mask rebuilt on every Update
}

// NewGrid covers a worldW x worldH world with square cells. A non-positive
// cellSize falls back to 10.
func NewGrid(worldW, worldH, cellSize int) *Grid {
	if cellSize <= 0 {
		cellSize = 10
	}
	w := max(1, (worldW+cellSize-1)/cellSize)
	h := max(1, (worldH+cellSize-1)/cellSize)
	return &Grid{
		cellSize: cellSize,
		width:    w,
		height:   h,
		cells:    make([]CellState, w*h),
		current:  make([]bool, w*h),
	}
}

// Size returns the grid dimensions in cells.
func (g *Grid) Size() (int, int) {
	return g.width, g.height
}

func (g *Grid) CellSize() int {
	return g.cellSize
}

// CellState returns the state of cell (gx, gy). Cells outside the grid are
// Unseen.
func (g *Grid) CellState(gx, gy int) CellState {
	if !g.inBounds(gx, gy) {
		return Unseen
	}
	return g.cells[gy*g.width+gx]
}

// Update recomputes visibility from the friendlies' vision and returns the
// enemies standing in a currently visible cell.
func (g *Grid) Update(friendlies, enemies []*units.Unit) []*units.Unit {
	clear(g.current)
	for _, u := range friendlies {
		if !u.Alive() {
			continue
		}
		gx, gy := g.toCell(u.Pos.X, u.Pos.Y)
		g.markRadius(gx, gy, int(math.Ceil(u.VisionRadius/float64(g.cellSize))))
	}

	var visible []*units.Unit
	for _, e := range enemies {
		gx, gy := g.toCell(e.Pos.X, e.Pos.Y)
		if g.inBounds(gx, gy) && g.current[gy*g.width+gx] {
			visible = append(visible, e)
		}
	}

	for i, now := range g.current {
		switch {
		case now:
			g.cells[i] = Visible
		case g.cells[i] == Visible:
			g.cells[i] = PreviouslySeen
		}
	}
	return visible
}

// IsPositionVisible reports whether a world point lies in a Visible cell.
func (g *Grid) IsPositionVisible(x, y float64) bool {
	gx, gy := g.toCell(x, y)
	return g.CellState(gx, gy) == Visible
}

// Counts returns the number of cells in each state.
func (g *Grid) Counts() map[CellState]int {
	counts := map[CellState]int{Unseen: 0, PreviouslySeen: 0, Visible: 0}
	for _, s := range g.cells {
		counts[s]++
	}
	return counts
}

func (g *Grid) markRadius(cx, cy, r int) {
	minX, maxX := max(0, cx-r), min(g.width-1, cx+r)
	minY, maxY := max(0, cy-r), min(g.height-1, cy+r)
	r2 := r * r
	for y := minY; y <= maxY; y++ {
		dy := y - cy
		for x := minX; x <= maxX; x++ {
			dx := x - cx
			if dx*dx+dy*dy <= r2 {
				g.current[y*g.width+x] = true
			}
		}
	}
}

func (g *Grid) toCell(x, y float64) (int, int) {
	cs := float64(g.cellSize)
	return int(math.Floor(x / cs)), int(math.Floor(y / cs))
}

func (g *Grid) inBounds(gx, gy int) bool {
	return gx >= 0 && gx < g.width && gy >= 0 && gy < g.height
}

package jigsaw

// EmptySlot marks a grid cell with no tile.
const EmptySlot = -1

// Grid is a row-major placement of tile indices.
type Grid struct {
	Width, Height int
	Cells         []int // len = Width*Height; EmptySlot or a tile index
}

// NewGrid returns a width x height grid with every cell empty.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
		Cells:  make([]int, width*height),
	}
	for i := range g.Cells {
		g.Cells[i] = EmptySlot
	}
	return g
}

func (g *Grid) At(row, col int) int { return g.Cells[row*g.Width+col] }

func (g *Grid) Set(row, col, tile int) { g.Cells[row*g.Width+col] = tile }

// Filled reports whether (row, col) is inside the grid and holds a tile.
func (g *Grid) Filled(row, col int) bool {
	if row < 0 || row >= g.Height || col < 0 || col >= g.Width {
		return false
	}
	return g.At(row, col) != EmptySlot
}

// Rows returns the grid as a slice of rows. Handy for logging and tests.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.Height)
	for r := range g.Height {
		rows[r] = g.Cells[r*g.Width : (r+1)*g.Width : (r+1)*g.Width]
	}
	return rows
}

// Sub copies the height x width window whose top-left cell is (row, col).
func (g *Grid) Sub(row, col, width, height int) *Grid {
	out := NewGrid(width, height)
	for r := range height {
		copy(out.Cells[r*width:(r+1)*width], g.Cells[(row+r)*g.Width+col:])
	}
	return out
}

// Bounds returns the top-left corner and size of the smallest rectangle that
// covers every position.
func (a *Assembly) Bounds() (origin Position, width, height int) {
	if len(a.Positions) == 0 {
		return Position{}, 0, 0
	}
	lo, hi := a.Positions[0], a.Positions[0]
	for _, p := range a.Positions[1:] {
		lo.Row = min(lo.Row, p.Row)
		lo.Col = min(lo.Col, p.Col)
		hi.Row = max(hi.Row, p.Row)
		hi.Col = max(hi.Col, p.Col)
	}
	return lo, hi.Col - lo.Col + 1, hi.Row - lo.Row + 1
}

// Layout projects the assembly onto a grid covering its bounding rectangle,
// moved to a (0,0) origin. Trees are placed in Assembly.Trees order; a cell
// already claimed by an earlier tree is kept, and the later tile is left out.
func (a *Assembly) Layout() *Grid {
	origin, width, height := a.Bounds()
	g := NewGrid(width, height)
	for _, tree := range a.Trees {
		for _, tile := range tree {
			p := a.Positions[tile].Sub(origin)
			if g.At(p.Row, p.Col) == EmptySlot {
				g.Set(p.Row, p.Col, tile)
			}
		}
	}
	return g
}

// SelectWindow crops layout to width x height tiles, choosing the window
// with the fewest empty cells. Requests larger than the layout shrink to
// fit. Offsets are scanned top to bottom, then left to right, and the first
// best window wins.
func SelectWindow(layout *Grid, width, height int) *Grid {
	width = min(width, layout.Width)
	height = min(height, layout.Height)

	// empty[r][c] counts empty cells above and left of (r, c), exclusive.
	stride := layout.Width + 1
	empty := make([]int, (layout.Height+1)*stride)
	for r := range layout.Height {
		for c := range layout.Width {
			e := 0
			if layout.At(r, c) == EmptySlot {
				e = 1
			}
			empty[(r+1)*stride+c+1] = e + empty[r*stride+c+1] + empty[(r+1)*stride+c] - empty[r*stride+c]
		}
	}
	count := func(r, c int) int {
		r2, c2 := r+height, c+width
		return empty[r2*stride+c2] - empty[r*stride+c2] - empty[r2*stride+c] + empty[r*stride+c]
	}

	bestRow, bestCol, bestEmpty := 0, 0, -1
	for r := 0; r+height <= layout.Height; r++ {
		for c := 0; c+width <= layout.Width; c++ {
			if e := count(r, c); bestEmpty < 0 || e < bestEmpty {
				bestRow, bestCol, bestEmpty = r, c, e
			}
		}
	}
	return layout.Sub(bestRow, bestCol, width, height)
}

package world

// Grid represents the map with encapsulated cell storage.
// Cells live in a single row-major slice that is never resized, so pointers
// handed out by the grid stay valid for its lifetime.
type Grid struct {
	cells  []Cell
	width  int
	height int
}

// NewGrid creates a new grid of water cells with all neighbor links built.
// It panics if either dimension is not positive.
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Build(width, height)
	return g
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// Size returns the total number of cells
func (g *Grid) Size() int {
	return len(g.cells)
}

// IsValidPosition checks if an x/y position is within grid bounds
func (g *Grid) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(x, y int) *Cell {
	if g == nil || !g.IsValidPosition(x, y) {
		return nil
	}
	return &g.cells[y*g.width+x]
}

// Contains returns true if the cell belongs to this grid
func (g *Grid) Contains(c *Cell) bool {
	return c != nil && g.GetCell(c.X, c.Y) == c
}

// GetCellRelative returns the cell adjacent to the given cell in the specified direction
func (g *Grid) GetCellRelative(c *Cell, dir Direction) *Cell {
	if c == nil {
		return nil
	}
	if !dir.IsValid() {
		return nil
	}
	dx, dy := dir.Delta()
	return g.GetCell(c.X+dx, c.Y+dy)
}

// Build initializes the grid with the given dimensions and links every cell
// to its up, right, down and left neighbor.
func (g *Grid) Build(width, height int) {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.width = width
	g.height = height
	g.cells = make([]Cell, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[y*width+x].init(x, y)
		}
	}

	g.buildAllCellConnections()
}

func (g *Grid) buildAllCellConnections() {
	g.ForEachCell(func(cell *Cell) {
		for _, dir := range AllDirections() {
			adj := g.GetCellRelative(cell, dir)
			if adj == nil {
				continue
			}
			cell.SetNeighbor(dir, adj)
			adj.SetNeighbor(dir.Opposite(), cell)
		}
	})
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(cell *Cell)) {
	for i := range g.cells {
		fn(&g.cells[i])
	}
}

// CountWhere returns how many cells satisfy the predicate
func (g *Grid) CountWhere(pred func(cell *Cell) bool) int {
	n := 0
	g.ForEachCell(func(cell *Cell) {
		if pred(cell) {
			n++
		}
	})
	return n
}

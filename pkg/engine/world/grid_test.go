package world

import "testing"

func TestNewGrid_AllWaterUnowned(t *testing.T) {
	g := NewGrid(3, 2)
	if g.Width() != 3 || g.Height() != 2 {
		t.Fatalf("dimensions = %dx%d, want 3x2", g.Width(), g.Height())
	}
	if g.Size() != 6 {
		t.Errorf("Size() = %d, want 6", g.Size())
	}
	g.ForEachCell(func(c *Cell) {
		if c.Type != Water {
			t.Errorf("cell %v type = %v, want Water", c, c.Type)
		}
		if c.IsOwned() {
			t.Errorf("cell %v owned by %d, want NoTerritory", c, c.Territory)
		}
		if c.OffLimits {
			t.Errorf("cell %v is off-limits on a fresh grid", c)
		}
	})
}

func TestGetCell_OutOfBounds(t *testing.T) {
	g := NewGrid(2, 2)
	cases := []struct{ x, y int }{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {5, 5}}
	for _, tc := range cases {
		if c := g.GetCell(tc.x, tc.y); c != nil {
			t.Errorf("GetCell(%d, %d) = %v, want nil", tc.x, tc.y, c)
		}
	}
	if c := g.GetCell(1, 1); c == nil || c.X != 1 || c.Y != 1 {
		t.Errorf("GetCell(1, 1) = %v, want (1,1)", c)
	}
}

func TestNewGrid_PanicsOnNonPositiveDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewGrid(%d, %d) did not panic", dims[0], dims[1])
				}
			}()
			NewGrid(dims[0], dims[1])
		}()
	}
}

func TestNeighborLinks(t *testing.T) {
	// 3x3 grid: the center has four neighbors, the corner (0,0) has two.
	g := NewGrid(3, 3)
	center := g.GetCell(1, 1)

	want := map[Direction][2]int{
		Up:    {1, 0},
		Right: {2, 1},
		Down:  {1, 2},
		Left:  {0, 1},
	}
	for dir, pos := range want {
		n := center.GetNeighbor(dir)
		if n == nil || n.X != pos[0] || n.Y != pos[1] {
			t.Errorf("center.GetNeighbor(%v) = %v, want (%d,%d)", dir, n, pos[0], pos[1])
			continue
		}
		if back := n.GetNeighbor(dir.Opposite()); back != center {
			t.Errorf("neighbor %v does not link back to center via %v", n, dir.Opposite())
		}
	}

	corner := g.GetCell(0, 0)
	if corner.GetNeighbor(Up) != nil || corner.GetNeighbor(Left) != nil {
		t.Errorf("corner has links past the map edge")
	}
	if got := len(corner.GetNeighbors()); got != 2 {
		t.Errorf("len(corner.GetNeighbors()) = %d, want 2", got)
	}
}

func TestGetCellRelative(t *testing.T) {
	g := NewGrid(2, 2)
	c := g.GetCell(0, 0)
	if got := g.GetCellRelative(c, Right); got != g.GetCell(1, 0) {
		t.Errorf("GetCellRelative((0,0), Right) = %v, want (1,0)", got)
	}
	if got := g.GetCellRelative(c, Up); got != nil {
		t.Errorf("GetCellRelative((0,0), Up) = %v, want nil", got)
	}
	if got := g.GetCellRelative(nil, Down); got != nil {
		t.Errorf("GetCellRelative(nil, Down) = %v, want nil", got)
	}
	if got := g.GetCellRelative(c, Direction(9)); got != nil {
		t.Errorf("GetCellRelative with invalid direction = %v, want nil", got)
	}
}

func TestContains(t *testing.T) {
	g := NewGrid(2, 2)
	other := NewGrid(2, 2)
	if !g.Contains(g.GetCell(1, 0)) {
		t.Errorf("Contains(own cell) = false, want true")
	}
	if g.Contains(other.GetCell(1, 0)) {
		t.Errorf("Contains(foreign cell) = true, want false")
	}
	if g.Contains(nil) {
		t.Errorf("Contains(nil) = true, want false")
	}
}

func TestCountWhere(t *testing.T) {
	g := NewGrid(4, 1)
	g.GetCell(0, 0).Claim(0)
	g.GetCell(1, 0).Claim(0)
	g.GetCell(3, 0).MarkOffLimits()

	if got := g.CountWhere(func(c *Cell) bool { return c.Type == Land }); got != 2 {
		t.Errorf("land count = %d, want 2", got)
	}
	if got := g.CountWhere(func(c *Cell) bool { return c.IsAvailableWater() }); got != 1 {
		t.Errorf("available water count = %d, want 1", got)
	}
}

package world

import "testing"

func TestCell_ClaimRelease(t *testing.T) {
	c := NewCell(2, 3)
	if c.Type != Water || c.IsOwned() {
		t.Fatalf("NewCell = %+v, want unowned water", c)
	}

	c.Claim(7)
	if c.Type != Land || c.Territory != 7 {
		t.Errorf("after Claim(7): type %v territory %d, want Land 7", c.Type, c.Territory)
	}
	if c.IsAvailableWater() {
		t.Errorf("claimed cell reports available water")
	}

	c.Release()
	if c.Type != Water || c.IsOwned() || !c.OffLimits {
		t.Errorf("after Release: %+v, want off-limits unowned water", c)
	}
	if c.IsAvailableWater() {
		t.Errorf("released cell reports available water")
	}
}

func TestCell_MarkOffLimitsIgnoresLand(t *testing.T) {
	c := NewCell(0, 0)
	c.Claim(1)
	c.MarkOffLimits()
	if c.OffLimits {
		t.Errorf("MarkOffLimits set the flag on a land cell")
	}
}

func TestCell_AvailableWaterNeighbors(t *testing.T) {
	// 3x1: (0,0) land, (1,0) center, (2,0) off-limits water. Nothing is available.
	g := NewGrid(3, 1)
	g.GetCell(0, 0).Claim(0)
	g.GetCell(2, 0).MarkOffLimits()
	if got := g.GetCell(1, 0).AvailableWaterNeighbors(); len(got) != 0 {
		t.Errorf("AvailableWaterNeighbors = %v, want none", got)
	}

	g2 := NewGrid(3, 1)
	if got := g2.GetCell(1, 0).AvailableWaterNeighbors(); len(got) != 2 {
		t.Errorf("AvailableWaterNeighbors on fresh grid = %v, want 2 cells", got)
	}
}

func TestCell_NilSafe(t *testing.T) {
	var c *Cell
	if c.GetNeighbor(Up) != nil {
		t.Errorf("nil.GetNeighbor != nil")
	}
	c.SetNeighbor(Up, NewCell(0, 0))
	if c.IsAvailableWater() {
		t.Errorf("nil cell reports available water")
	}
	if c.String() != "(nil)" {
		t.Errorf("nil.String() = %q", c.String())
	}
}

func TestDirection_OppositeAndDelta(t *testing.T) {
	for _, d := range AllDirections() {
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("%v and %v deltas do not cancel", d, d.Opposite())
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() = %v", d, d.Opposite().Opposite())
		}
	}
	if Direction(-1).IsValid() || Direction(4).IsValid() {
		t.Errorf("out-of-range directions report valid")
	}
	if Direction(9).String() != "Unknown" {
		t.Errorf("Direction(9).String() = %q", Direction(9).String())
	}
}

package terminal

import "testing"

func TestGetSizeFallsBack(t *testing.T) {
	width, height := GetSize()
	if width <= 0 || height <= 0 {
		t.Errorf("GetSize() = %d, %d; want positive values", width, height)
	}
	if GetWidth() != width {
		t.Errorf("GetWidth() = %d, want %d", GetWidth(), width)
	}
}

func TestFitsWidthWithoutTerminal(t *testing.T) {
	if IsTerminal() {
		t.Skip("stdout is a terminal")
	}
	if !FitsWidth(1 << 20) {
		t.Error("expected any width to fit when stdout is not a terminal")
	}
}

func TestFitsWidthZeroColumns(t *testing.T) {
	if !FitsWidth(0) {
		t.Error("expected an empty line to fit")
	}
}

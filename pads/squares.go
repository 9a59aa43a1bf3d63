package pads

// Launchpad Pro programmer-mode pad ids.
// 8x8 Grid: Row 0 (bottom) = pads 11-18, Row 7 = pads 81-88
// Side columns (0 and 9) and the top/bottom button rows are not part of any square.

// Square is a 4x4 quadrant of the grid with its resting and pressed colors
type Square struct {
	Pads   [16]uint8
	Base   uint8
	Active uint8
}

// Squares partition the 8x8 grid. Order matters only for start-up lighting.
var Squares = [4]Square{
	{Pads: [16]uint8{11, 12, 13, 14, 21, 22, 23, 24, 31, 32, 33, 34, 41, 42, 43, 44}, Base: 4, Active: 5},
	{Pads: [16]uint8{51, 52, 53, 54, 61, 62, 63, 64, 71, 72, 73, 74, 81, 82, 83, 84}, Base: 44, Active: 45},
	{Pads: [16]uint8{15, 16, 17, 18, 25, 26, 27, 28, 35, 36, 37, 38, 45, 46, 47, 48}, Base: 12, Active: 13},
	{Pads: [16]uint8{55, 56, 57, 58, 65, 66, 67, 68, 75, 76, 77, 78, 85, 86, 87, 88}, Base: 30, Active: 29},
}

// FindSquare returns the square containing pad.
// Pads outside the 8x8 grid report false.
func FindSquare(pad uint8) (Square, bool) {
	for _, s := range Squares {
		if s.Contains(pad) {
			return s, true
		}
	}
	return Square{}, false
}

// Contains reports whether pad is one of the square's pads
func (s Square) Contains(pad uint8) bool {
	for _, p := range s.Pads {
		if p == pad {
			return true
		}
	}
	return false
}

// GridPads lists every pad of the 8x8 grid, bottom row first
func GridPads() []uint8 {
	pads := make([]uint8, 0, 64)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			pads = append(pads, RowColToPad(row, col))
		}
	}
	return pads
}

// RowColToPad converts a grid position (row 0 at the bottom) to a pad id
func RowColToPad(row, col int) uint8 {
	return uint8((row+1)*10 + col + 1)
}

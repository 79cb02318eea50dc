package board

import "strings"

// Grid renders the board's revealed state as a 144-character string,
// row-major (index = y*Size + x), one of '*' (undiscovered), '.'
// (water), 'X' (ship) per cell — the wire format's "grid" field.
func (b *Board) Grid() string {
	var sb strings.Builder
	sb.Grow(Size * Size)
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			sb.WriteString(b.CellAt(x, y).String())
		}
	}
	return sb.String()
}

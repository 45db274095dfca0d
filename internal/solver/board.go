package solver

import (
	"fmt"
	"strings"
)

// Board holds one CellSet per cell of the 9x9 grid, indexed row-major
// (row*9 + col).
type Board [81]CellSet

// Clone returns an independent copy. Search branches mutate clones so sibling
// branches never observe each other's eliminations.
func (b Board) Clone() Board { return b }

// Solved reports whether every cell is down to exactly one candidate.
func (b Board) Solved() bool {
	for i := range b {
		if b[i].Size() != 1 {
			return false
		}
	}
	return true
}

// Valid reports whether no two fixed peer cells hold the same digit. Cells
// with more than one candidate are ignored.
func (b Board) Valid() bool {
	for i := range b {
		if b[i].Size() != 1 {
			continue
		}
		digit, _ := b[i].First()
		for _, peer := range peers[i] {
			if b[peer].Size() == 1 && b[peer].Has(digit) {
				return false
			}
		}
	}
	return true
}

// String renders the grid with every cell's remaining candidates, padded to
// the widest cell, with separators between the 3x3 bands.
func (b Board) String() string {
	width := 0
	for i := range b {
		if size := b[i].Size(); size > width {
			width = size
		}
	}

	var builder strings.Builder
	for row := range 9 {
		for col := range 9 {
			builder.WriteByte(' ')
			builder.WriteString(center(b[9*row+col].String(), width))
			if col == 2 || col == 5 {
				builder.WriteString(" |")
			}
		}
		builder.WriteByte('\n')
		if row == 2 || row == 5 {
			line := strings.Repeat("-", 3*width+4)
			fmt.Fprintf(&builder, "%v+%v+%v\n", line, line, line)
		}
	}
	return builder.String()
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}

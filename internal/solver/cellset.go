package solver

import (
	"iter"
	"math/bits"
	"strings"
)

// CellSet is the set of digits (1-9) still possible for a single cell,
// packed into the low nine bits of a uint16.
type CellSet uint16

const allDigits CellSet = 1<<9 - 1

func NewCellSet() CellSet { return 0 }

// FullCellSet returns a set containing all nine digits.
func FullCellSet() CellSet { return allDigits }

func (s *CellSet) Set(digit uint8)   { *s |= 1 << (digit - 1) }
func (s *CellSet) Unset(digit uint8) { *s &^= 1 << (digit - 1) }
func (s *CellSet) Clear()            { *s = 0 }

func (s CellSet) Has(digit uint8) bool { return s&(1<<(digit-1)) != 0 }

func (s CellSet) Size() int { return bits.OnesCount16(uint16(s)) }

// First returns the smallest digit in the set. For a fixed cell this is the
// cell's value. ok is false when the set is empty.
func (s CellSet) First() (digit uint8, ok bool) {
	if s == 0 {
		return 0, false
	}
	return uint8(bits.TrailingZeros16(uint16(s))) + 1, true
}

// Subtract removes every digit present in other.
func (s *CellSet) Subtract(other CellSet) { *s &^= other }

// Digits yields the set's digits in ascending order. The sequence is
// restartable: ranging over it again replays the same digits.
func (s CellSet) Digits() iter.Seq[uint8] {
	return func(yield func(uint8) bool) {
		for digit := uint8(1); digit <= 9; digit++ {
			if s.Has(digit) && !yield(digit) {
				return
			}
		}
	}
}

func (s CellSet) String() string {
	var builder strings.Builder
	for digit := uint8(1); digit <= 9; digit++ {
		if s.Has(digit) {
			builder.WriteByte('0' + digit)
		}
	}
	return builder.String()
}

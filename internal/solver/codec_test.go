package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	classicPuzzle   = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"
	classicSolution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
)

func TestParse(t *testing.T) {
	t.Run("givens become singletons, unknowns become full sets", func(t *testing.T) {
		// Act
		board, err := Parse(classicPuzzle)

		// Assert
		assert.Nil(t, err)
		assert.Equal(t, 1, board[0].Size())
		assert.True(t, board[0].Has(5))
		assert.Equal(t, 9, board[2].Size())
	})

	t.Run("dots mark unknown cells", func(t *testing.T) {
		board, err := Parse(strings.Repeat(".", 81))

		assert.Nil(t, err)
		for i := range board {
			assert.Equal(t, 9, board[i].Size())
		}
	})

	t.Run("separators are ignored", func(t *testing.T) {
		// Arrange: the same puzzle broken across lines with decoration.
		var builder strings.Builder
		for row := range 9 {
			builder.WriteString(classicPuzzle[9*row : 9*row+9])
			builder.WriteString(" |\n")
		}

		// Act
		board, err := Parse(builder.String())

		// Assert
		assert.Nil(t, err)
		reference, _ := Parse(classicPuzzle)
		assert.Equal(t, reference, board)
	})

	t.Run("too few cells", func(t *testing.T) {
		_, err := Parse(classicPuzzle[:80])
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("too many cells", func(t *testing.T) {
		_, err := Parse(classicPuzzle + "1")
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := Parse("")
		assert.ErrorIs(t, err, ErrMalformed)
	})
}

func TestSerialize(t *testing.T) {
	t.Run("round-trip on a complete grid", func(t *testing.T) {
		// Arrange
		board, err := Parse(classicSolution)
		assert.Nil(t, err)

		// Act
		out, err := Serialize(board)

		// Assert
		assert.Nil(t, err)
		assert.Equal(t, classicSolution, out)
	})

	t.Run("undetermined board fails", func(t *testing.T) {
		board, err := Parse(classicPuzzle)
		assert.Nil(t, err)

		_, err = Serialize(board)

		assert.ErrorIs(t, err, ErrUnsolved)
	})
}

package solver

import "fmt"

// Parse builds a Board from puzzle text. '0' and '.' mark unknown cells,
// '1'-'9' mark givens; every other rune is ignored. The text must contain
// exactly 81 recognized cells.
func Parse(text string) (Board, error) {
	var board Board
	count := 0
	for _, r := range text {
		switch {
		case r == '0' || r == '.':
			if count < 81 {
				board[count] = FullCellSet()
			}
			count++
		case r >= '1' && r <= '9':
			if count < 81 {
				cell := NewCellSet()
				cell.Set(uint8(r - '0'))
				board[count] = cell
			}
			count++
		}
	}

	if count != 81 {
		return Board{}, fmt.Errorf("%w: found %v cells instead of 81", ErrMalformed, count)
	}
	return board, nil
}

// Serialize renders a solved board as its 81 digits in row-major order. It
// fails on boards that still carry undetermined or empty cells.
func Serialize(board Board) (string, error) {
	out := make([]byte, 81)
	for i := range board {
		if board[i].Size() != 1 {
			return "", fmt.Errorf("%w: cell %v has %v candidates", ErrUnsolved, i, board[i].Size())
		}
		digit, _ := board[i].First()
		out[i] = '0' + digit
	}
	return string(out), nil
}

package solver

// Solve runs constraint propagation and, when elimination alone stalls, a
// backtracking search over the least-constrained cell. It returns the solved
// board, or ErrUnsolvable when no assignment satisfies the puzzle.
func Solve(board Board) (Board, error) {
	switch propagate(&board) {
	case contradiction:
		return Board{}, ErrUnsolvable
	case solved:
		// Propagation never revisits cells that were fixed from the start, so
		// a fully-given board with conflicting givens still comes out as
		// "solved" and must be rejected here.
		if !board.Valid() {
			return Board{}, ErrUnsolvable
		}
		return board, nil
	}

	// Branch on the cell with the fewest remaining candidates, first in
	// row-major order on ties. The tie-break keeps multi-solution boards
	// deterministic across runs.
	smallest := 0
	smallestSize := 10
	for i := range board {
		if size := board[i].Size(); size > 1 && size < smallestSize {
			smallest = i
			smallestSize = size
		}
	}

	// Try every remaining candidate of that cell in ascending order; the
	// first branch that solves wins, exhaustion means no solution exists.
	for digit := range board[smallest].Digits() {
		trial := board.Clone()
		trial[smallest].Clear()
		trial[smallest].Set(digit)

		if solution, err := Solve(trial); err == nil {
			return solution, nil
		}
	}
	return Board{}, ErrUnsolvable
}

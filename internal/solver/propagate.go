package solver

type progress int

const (
	solved progress = iota
	stalled
	contradiction
)

// propagate repeatedly sweeps the whole board, removing from every
// undetermined cell the digits already fixed among its 20 peers, until a full
// sweep changes nothing. It reports solved when every cell ends up with a
// single candidate, contradiction as soon as any cell runs out of candidates,
// and stalled when elimination alone cannot settle the remaining cells.
func propagate(board *Board) progress {
	madeProgress := true
	isSolved := false
	for madeProgress {
		madeProgress = false
		isSolved = true
		for i := range board {
			// Already fixed, nothing to eliminate
			if board[i].Size() == 1 {
				continue
			}

			// Union of the digits already settled among the peers
			taken := NewCellSet()
			for _, peer := range peers[i] {
				if board[peer].Size() == 1 {
					digit, _ := board[peer].First()
					taken.Set(digit)
				}
			}

			board[i].Subtract(taken)
			switch board[i].Size() {
			case 0:
				return contradiction
			case 1:
				// The cell just became fixed; its peers may tighten on the
				// next sweep.
				madeProgress = true
			default:
				isSolved = false
			}
		}
	}

	if isSolved {
		return solved
	}
	return stalled
}

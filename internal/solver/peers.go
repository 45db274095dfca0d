package solver

// peers maps each of the 81 cells to the 20 cells sharing its row, column or
// 3x3 block: 8 row peers, 8 column peers and the 4 block cells not already
// covered by the row or column. Built eagerly at package initialization and
// read-only afterwards, so every solve shares it without locking.
var peers = buildPeers()

func buildPeers() [81][20]int {
	var table [81][20]int
	for row := range 9 {
		for col := range 9 {
			p := &table[9*row+col]
			n := 0

			// Row peers
			for i := range 9 {
				if i == col {
					continue
				}
				p[n] = 9*row + i
				n++
			}

			// Column peers
			for i := range 9 {
				if i == row {
					continue
				}
				p[n] = 9*i + col
				n++
			}

			// Remaining block peers
			for blockRow := row / 3 * 3; blockRow < row/3*3+3; blockRow++ {
				if blockRow == row {
					continue
				}
				for blockCol := col / 3 * 3; blockCol < col/3*3+3; blockCol++ {
					if blockCol == col {
						continue
					}
					p[n] = 9*blockRow + blockCol
					n++
				}
			}
		}
	}
	return table
}

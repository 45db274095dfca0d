package bench

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/samber/lo"

	"github.com/Tyraeis/sudoku-solver/internal/solver"
)

// Stats accumulates the outcome of a benchmark run.
type Stats struct {
	Boards    int           // puzzles handed to the solver
	Failed    int           // unsolvable puzzles plus verification mismatches
	Malformed int           // rows skipped because their puzzle text was not 81 cells
	Elapsed   time.Duration // total time spent inside Solve
}

// Rate returns cumulative throughput in boards per second.
func (s Stats) Rate() float64 {
	seconds := s.Elapsed.Seconds()
	if seconds == 0 {
		return 0
	}
	return float64(s.Boards) / seconds
}

// Runner drives the solver over a dataset and reports cumulative throughput
// to out after every board.
type Runner struct {
	config RunConfig
	out    io.Writer
}

func NewRunner(config RunConfig, out io.Writer) *Runner {
	if config.ProgressEvery < 1 {
		config.ProgressEvery = 1
	}
	return &Runner{config: config, out: out}
}

// Run processes every record of the dataset. Malformed rows and unsolvable or
// mismatching boards are counted, never fatal; only a broken input stream
// aborts the run, returning the statistics collected so far.
func (r *Runner) Run(input io.Reader) (Stats, error) {
	dataset := NewDataset(input, r.config)

	var stats Stats
	for {
		record, err := dataset.Next()
		var parseErr *csv.ParseError
		switch {
		case errors.Is(err, io.EOF):
			return stats, nil
		case errors.Is(err, solver.ErrMalformed) || errors.As(err, &parseErr):
			stats.Malformed++
			continue
		case err != nil:
			return stats, err
		}

		board, err := solver.Parse(record.Puzzle)
		if err != nil {
			stats.Malformed++
			continue
		}

		// Only the solve itself is timed; parsing and verification stay
		// outside the clock.
		start := time.Now()
		solution, err := solver.Solve(board)
		stats.Elapsed += time.Since(start)
		stats.Boards++

		if err != nil {
			stats.Failed++
		} else if r.config.Verify {
			// Solve only returns fully-determined boards, so serialization
			// cannot fail here.
			if lo.Must(solver.Serialize(solution)) != record.Expected {
				stats.Failed++
			}
		}

		if stats.Boards%r.config.ProgressEvery == 0 && stats.Elapsed > 0 {
			fmt.Fprintf(r.out, "%.0f boards/s (%d boards, %d failed)\n", stats.Rate(), stats.Boards, stats.Failed)
		}
	}
}

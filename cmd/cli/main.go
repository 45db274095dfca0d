package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/samber/lo"

	"github.com/Tyraeis/sudoku-solver/internal/solver"
)

func main() {
	// Define arguments
	puzzlePtr := flag.String("puzzle", "", "An 81-cell puzzle string, where '0' or '.' marks an unknown cell; alternatively pass a file containing one puzzle as a positional argument")
	flag.Parse()

	// Validate arguments
	puzzle := *puzzlePtr
	if puzzle == "" && flag.NArg() == 1 {
		content, err := os.ReadFile(flag.Arg(0))
		if err != nil {
			log.Fatalf("cannot read puzzle file: %v", err)
		}
		puzzle = string(content)
	}
	if puzzle == "" {
		log.Fatal("a puzzle must be specified with -puzzle or as a file argument")
	}

	board, err := solver.Parse(puzzle)
	if err != nil {
		log.Fatalf("cannot parse puzzle: %v", err)
	}

	solution, err := solver.Solve(board)
	if errors.Is(err, solver.ErrUnsolvable) {
		fmt.Println("no solution")
		os.Exit(20)
	}

	fmt.Print(solution)
	fmt.Println(lo.Must(solver.Serialize(solution)))
}

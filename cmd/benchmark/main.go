package main

import (
	"flag"
	"log"
	"os"

	"github.com/Tyraeis/sudoku-solver/internal/bench"
)

func main() {
	// Define arguments
	configPathPtr := flag.String("config", "", "Path to a JSON run configuration; if empty, defaults are used (puzzles in column 0, solutions in column 1, verification on)")
	flag.Parse()

	// Validate arguments
	if flag.NArg() != 1 {
		log.Fatal("a dataset file must be specified")
	}

	config, err := resolveConfig(*configPathPtr)
	if err != nil {
		log.Fatalf("cannot parse config file: %v", err)
	}

	file, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("cannot open dataset file: %v", err)
	}
	defer file.Close()

	runner := bench.NewRunner(config, os.Stdout)
	if _, err := runner.Run(file); err != nil {
		log.Fatalf("an error occurred while reading the dataset: %v", err)
	}
}

func resolveConfig(path string) (bench.RunConfig, error) {
	if path == "" {
		return bench.DefaultConfig(), nil
	}
	return bench.ConfigFromJson(path)
}

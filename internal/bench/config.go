package bench

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"
)

// RunConfig controls how the benchmark reads and verifies a dataset.
type RunConfig struct {
	PuzzleColumn   int  `mapstructure:"puzzleColumn"`
	SolutionColumn int  `mapstructure:"solutionColumn"`
	Verify         bool `mapstructure:"verify"`
	ProgressEvery  int  `mapstructure:"progressEvery"`
}

// DefaultConfig matches the common quizzes/solutions dataset layout: puzzles
// in the first column, expected solutions in the second, verification on and
// a progress line after every board.
func DefaultConfig() RunConfig {
	return RunConfig{
		PuzzleColumn:   0,
		SolutionColumn: 1,
		Verify:         true,
		ProgressEvery:  1,
	}
}

// ConfigFromJson loads a RunConfig from a JSON file; fields absent from the
// file keep their default values.
func ConfigFromJson(file string) (RunConfig, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return RunConfig{}, err
	}

	var configJson map[string]any
	if err := json.Unmarshal(bytes, &configJson); err != nil {
		return RunConfig{}, err
	}

	config := DefaultConfig()
	if err := mapstructure.Decode(configJson, &config); err != nil {
		return RunConfig{}, err
	}
	if config.ProgressEvery < 1 {
		config.ProgressEvery = 1
	}
	return config, nil
}

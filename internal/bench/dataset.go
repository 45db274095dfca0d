package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/Tyraeis/sudoku-solver/internal/solver"
)

// Record is one row of a puzzle dataset: the puzzle text plus the expected
// solved string, which is used only for verification.
type Record struct {
	Puzzle   string
	Expected string
}

// Dataset reads puzzle records from delimited text, one row per puzzle.
type Dataset struct {
	reader *csv.Reader
	config RunConfig
	first  bool
}

func NewDataset(r io.Reader, config RunConfig) *Dataset {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	return &Dataset{reader: reader, config: config, first: true}
}

// Next returns the following record, or io.EOF after the last row. Datasets
// commonly start with a header row; the first row is skipped when its puzzle
// column is not puzzle text. Rows missing the puzzle column surface as
// ErrMalformed, which callers may skip.
func (d *Dataset) Next() (Record, error) {
	for {
		row, err := d.reader.Read()
		if err != nil {
			return Record{}, err
		}
		fields := lo.Map(row, func(field string, _ int) string { return strings.TrimSpace(field) })

		if len(fields) <= d.config.PuzzleColumn {
			return Record{}, fmt.Errorf("%w: row has only %v columns", solver.ErrMalformed, len(fields))
		}
		record := Record{Puzzle: fields[d.config.PuzzleColumn]}
		if d.config.SolutionColumn < len(fields) {
			record.Expected = fields[d.config.SolutionColumn]
		}

		if d.first {
			d.first = false
			if _, err := solver.Parse(record.Puzzle); err != nil {
				continue
			}
		}
		return record, nil
	}
}

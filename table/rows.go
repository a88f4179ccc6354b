package table

import (
	"encoding/csv"
	"io"
)

// RowSource produces the rows consumed by a [Parser].
//
// Each row is an ordered sequence of string cells: index 0 is the term cell,
// index 1 the value cell, and indices ≥2 positional arguments. Next returns
// [io.EOF] when the source is exhausted. Delimiter and encoding concerns
// belong to the source, not the parser.
type RowSource interface {
	Next() ([]string, error)
}

type csvRows struct {
	reader *csv.Reader
}

// CSVRows returns a RowSource reading comma-separated rows from r.
// Rows may have varying cell counts; the parser decides what is malformed.
func CSVRows(r io.Reader) RowSource {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	return &csvRows{reader: reader}
}

func (c *csvRows) Next() ([]string, error) {
	return c.reader.Read()
}

type sliceRows struct {
	rows [][]string
	next int
}

// SliceRows returns a RowSource over rows already in memory.
func SliceRows(rows [][]string) RowSource {
	return &sliceRows{rows: rows}
}

func (s *sliceRows) Next() ([]string, error) {
	if s.next >= len(s.rows) {
		return nil, io.EOF
	}

	row := s.rows[s.next]
	s.next++

	return row, nil
}

package dataset

import "io"

// Record is one raw source record.
type Record struct {
	// Line is the 1-based position of the record in its source.
	Line   int
	Fields []string
}

// RecordSource yields raw records one at a time. Next returns io.EOF once
// the source is exhausted.
type RecordSource interface {
	Next() (Record, error)
}

// SliceSource is a RecordSource over records held in memory.
type SliceSource struct {
	rows [][]string
	pos  int
}

// NewSliceSource creates a SliceSource that yields rows in order.
func NewSliceSource(rows ...[]string) *SliceSource {
	return &SliceSource{rows: rows}
}

// Next returns the next row or io.EOF.
func (s *SliceSource) Next() (Record, error) {
	if s.pos >= len(s.rows) {
		return Record{}, io.EOF
	}
	s.pos++
	return Record{Line: s.pos, Fields: s.rows[s.pos-1]}, nil
}

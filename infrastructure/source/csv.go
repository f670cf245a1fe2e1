// Package source reads raw dataset records from delimited files.
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/helixml/periodic/domain/dataset"
)

const byteOrderMark = "\uFEFF"

// CSV is a dataset.RecordSource over comma-separated records. Records may
// have any number of fields and there is no header row.
type CSV struct {
	reader *csv.Reader
	closer io.Closer
	first  bool
}

// NewCSV creates a CSV source reading from r.
func NewCSV(r io.Reader) *CSV {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return &CSV{reader: reader, first: true}
}

// Open opens the file at path as a CSV source. Close releases the file.
func Open(path string) (*CSV, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source %s: %w", path, err)
	}
	c := NewCSV(f)
	c.closer = f
	return c, nil
}

// Next returns the next record, or io.EOF at the end of input.
func (c *CSV) Next() (dataset.Record, error) {
	fields, err := c.reader.Read()
	if errors.Is(err, io.EOF) {
		return dataset.Record{}, io.EOF
	}
	if err != nil {
		return dataset.Record{}, fmt.Errorf("read record: %w", err)
	}
	if c.first && len(fields) > 0 {
		fields[0] = strings.TrimPrefix(fields[0], byteOrderMark)
	}
	c.first = false

	line, _ := c.reader.FieldPos(0)
	return dataset.Record{Line: line, Fields: fields}, nil
}

// Close closes the underlying file, if the source owns one.
func (c *CSV) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

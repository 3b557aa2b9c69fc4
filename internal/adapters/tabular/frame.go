// Package tabular reads and writes the flat CSV tables the pipeline consumes
// and produces.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

const bom = "\ufeff"

// Frame is a CSV file held in memory, addressed by header name.
type Frame struct {
	Header []string
	Rows   [][]string
	index  map[string]int
}

// NewFrame builds a Frame from a header and rows.
func NewFrame(header []string, rows [][]string) *Frame {
	f := &Frame{Header: header, Rows: rows, index: make(map[string]int, len(header))}
	for i, h := range header {
		// First occurrence wins on duplicate names.
		if _, ok := f.index[h]; !ok {
			f.index[h] = i
		}
	}
	return f
}

// Read parses a headed CSV document.
func Read(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: no header", ErrMalformedRow)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRow, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], bom))
	}

	var rows [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedRow, err)
		}
		rows = append(rows, rec)
	}
	return NewFrame(header, rows), nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*Frame, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	f, err := Read(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Len returns the number of data rows.
func (f *Frame) Len() int { return len(f.Rows) }

// Col returns the index of a column.
func (f *Frame) Col(name string) (int, bool) {
	i, ok := f.index[name]
	return i, ok
}

// Require checks that every named column is present.
func (f *Frame) Require(names ...string) error {
	var missing []string
	for _, n := range names {
		if _, ok := f.index[n]; !ok {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}

// String returns the trimmed cell at row, column name; "" when the column is absent.
func (f *Frame) String(row int, name string) string {
	i, ok := f.index[name]
	if !ok || i >= len(f.Rows[row]) {
		return ""
	}
	return strings.TrimSpace(f.Rows[row][i])
}

// Float parses the cell at row, column name. Blank cells and absent columns
// are missing (NaN).
func (f *Frame) Float(row int, name string) (float64, error) {
	s := f.String(row, name)
	if s == "" {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN(), fmt.Errorf("%w: row %d column %s: %q", ErrMalformedRow, row+2, name, s)
	}
	return v, nil
}

// Int parses the cell at row, column name as an integer. ok is false for a
// blank cell or an absent column. Whole-valued decimals such as "12.0" are
// accepted.
func (f *Frame) Int(row int, name string) (v int, ok bool, err error) {
	x, err := f.Float(row, name)
	if err != nil {
		return 0, false, err
	}
	if math.IsNaN(x) {
		return 0, false, nil
	}
	if x != math.Trunc(x) {
		return 0, false, fmt.Errorf("%w: row %d column %s: %v is not an integer", ErrMalformedRow, row+2, name, x)
	}
	return int(x), true, nil
}

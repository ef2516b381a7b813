// Package table loads the whitespace-delimited numeric tables written by the
// allocation simulator.
package table

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// MinColumns is the narrowest table the renderer accepts: one x column plus two
// groups of four strategy columns.
const MinColumns = 9

// DataFormatError reports an input resource that is missing, unreadable,
// non-numeric, ragged or too narrow.
type DataFormatError struct {
	Source string
	Line   int // 1-based, 0 when the problem is not tied to a line
	Err    error
}

func (e *DataFormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *DataFormatError) Unwrap() error { return e.Err }

// maxLineSize bounds a single row. Rows are as wide as the simulator makes
// them, so the limit is far above the scanner default.
const maxLineSize = 1 << 30

// decimal matches plain decimal numbers with an optional exponent. Go-only
// spellings such as hex floats or underscores are not table values.
var decimal = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// Table is an immutable row-major matrix of float64 values.
type Table struct {
	rows    int
	columns int
	data    []float64
}

// Load reads the table stored at path.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DataFormatError{Source: path, Err: errors.Wrap(err, "cannot open table")}
	}
	defer f.Close()
	return Parse(path, f)
}

// Parse reads a table from r. Blank lines are skipped, every other line is one
// row. source is only used in error messages.
func Parse(source string, r io.Reader) (*Table, error) {
	t := &Table{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if t.rows == 0 {
			t.columns = len(fields)
		} else if len(fields) != t.columns {
			return nil, &DataFormatError{
				Source: source,
				Line:   line,
				Err:    errors.Errorf("row has %d columns, expected %d", len(fields), t.columns),
			}
		}
		for i, field := range fields {
			if !decimal.MatchString(field) {
				return nil, &DataFormatError{
					Source: source,
					Line:   line,
					Err:    errors.Errorf("column %d: %q is not a decimal number", i, field),
				}
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, &DataFormatError{
					Source: source,
					Line:   line,
					Err:    errors.Wrapf(err, "column %d", i),
				}
			}
			t.data = append(t.data, v)
		}
		t.rows++
	}
	if err := scanner.Err(); err != nil {
		// The failing line was never returned by Scan.
		return nil, &DataFormatError{Source: source, Line: line + 1, Err: errors.Wrap(err, "cannot read table")}
	}
	if t.rows == 0 {
		return nil, &DataFormatError{Source: source, Err: errors.New("table is empty")}
	}
	if t.columns < MinColumns {
		return nil, &DataFormatError{
			Source: source,
			Err:    errors.Errorf("table has %d columns, at least %d required", t.columns, MinColumns),
		}
	}
	return t, nil
}

// New builds a table from rows, applying the same checks as Parse.
func New(rows [][]float64) (*Table, error) {
	var b strings.Builder
	for _, row := range rows {
		for i, v := range row {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		b.WriteByte('\n')
	}
	return Parse("<memory>", strings.NewReader(b.String()))
}

func (t *Table) Rows() int    { return t.rows }
func (t *Table) Columns() int { return t.columns }

// At returns the value at row i, column j. It panics when out of range.
func (t *Table) At(i, j int) float64 {
	if i < 0 || i >= t.rows || j < 0 || j >= t.columns {
		panic(fmt.Sprintf("table: index (%d,%d) out of range %dx%d", i, j, t.rows, t.columns))
	}
	return t.data[i*t.columns+j]
}

// Column returns a copy of column j, or false if j is out of range.
func (t *Table) Column(j int) ([]float64, bool) {
	if j < 0 || j >= t.columns {
		return nil, false
	}
	col := make([]float64, t.rows)
	for i := range col {
		col[i] = t.data[i*t.columns+j]
	}
	return col, true
}

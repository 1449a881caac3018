package table

import "sort"

// Table is an ordered collection of named columns over in-memory rows.
// All columns share the same length. Cells are held as `any` so string,
// numeric, bool, and time values can coexist the way a tabular snapshot needs.
type Table struct {
	cols []string
	data map[string][]any
}

// New creates an empty table with the given column order.
func New(cols ...string) *Table {
	t := &Table{
		cols: make([]string, 0, len(cols)),
		data: make(map[string][]any, len(cols)),
	}
	for _, c := range cols {
		t.cols = append(t.cols, c)
		t.data[c] = nil
	}
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int {
	for _, c := range t.cols {
		return len(t.data[c])
	}
	return 0
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.cols))
	copy(out, t.cols)
	return out
}

// Has reports whether the table contains a column.
func (t *Table) Has(name string) bool {
	_, ok := t.data[name]
	return ok
}

// Require verifies that every named column is present. When one or more are
// missing it returns a *MissingColumnsError listing the missing names sorted.
func (t *Table) Require(cols ...string) error {
	var missing []string
	for _, c := range cols {
		if !t.Has(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return &MissingColumnsError{Columns: missing}
}

// SetColumn replaces or appends a column. New columns go to the end of the
// column order. The caller keeps ownership of values; the slice is stored as is.
func (t *Table) SetColumn(name string, values []any) {
	if !t.Has(name) {
		t.cols = append(t.cols, name)
	}
	t.data[name] = values
}

// Column returns the raw cells of a column, or nil if absent.
func (t *Table) Column(name string) []any {
	return t.data[name]
}

// Floats returns a column coerced to float64. Bool cells map to 1/0, integer
// cells widen. Cells of other types coerce to 0.
func (t *Table) Floats(name string) []float64 {
	src := t.data[name]
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = toFloat(v)
	}
	return out
}

// Strings returns a column coerced to string. Non-string cells become "".
func (t *Table) Strings(name string) []string {
	src := t.data[name]
	out := make([]string, len(src))
	for i, v := range src {
		if s, ok := v.(string); ok {
			out[i] = s
		}
	}
	return out
}

// Copy returns a deep copy. Cell values themselves are scalars and shared.
func (t *Table) Copy() *Table {
	out := New(t.cols...)
	for _, c := range t.cols {
		vals := make([]any, len(t.data[c]))
		copy(vals, t.data[c])
		out.data[c] = vals
	}
	return out
}

// Append concatenates another table below this one, preserving row order.
// The other table must carry at least this table's columns; extra columns
// are ignored.
func (t *Table) Append(other *Table) error {
	if err := other.Require(t.cols...); err != nil {
		return err
	}
	for _, c := range t.cols {
		t.data[c] = append(t.data[c], other.data[c]...)
	}
	return nil
}

// Rows materializes the table as one map per row, for JSON transport.
func (t *Table) Rows() []map[string]any {
	n := t.Len()
	out := make([]map[string]any, n)
	for i := 0; i < n; i++ {
		row := make(map[string]any, len(t.cols))
		for _, c := range t.cols {
			row[c] = t.data[c][i]
		}
		out[i] = row
	}
	return out
}

// FromRows builds a table from row maps. Columns listed in hint come first in
// that order (when present in the data); remaining columns follow sorted, so
// the result is deterministic regardless of map iteration.
func FromRows(rows []map[string]any, hint ...string) *Table {
	seen := make(map[string]bool)
	var cols []string
	for _, h := range hint {
		for _, r := range rows {
			if _, ok := r[h]; ok {
				cols = append(cols, h)
				seen[h] = true
				break
			}
		}
	}
	var rest []string
	for _, r := range rows {
		for k := range r {
			if !seen[k] {
				seen[k] = true
				rest = append(rest, k)
			}
		}
	}
	sort.Strings(rest)
	cols = append(cols, rest...)

	t := New(cols...)
	for _, c := range cols {
		vals := make([]any, len(rows))
		for i, r := range rows {
			vals[i] = r[c]
		}
		t.data[c] = vals
	}
	return t
}

func toFloat(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	default:
		return 0
	}
}

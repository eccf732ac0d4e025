package model

// Table is a row-oriented text table: one header row plus data rows.
// This is the shape the tabular store reads and writes; no column set is
// fixed, uploads from different export revisions carry different columns.
type Table struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// NewTable creates a table with the given header and no rows.
func NewTable(header ...string) *Table {
	return &Table{Header: header}
}

// IsEmpty reports whether the table has no data rows.
func (t *Table) IsEmpty() bool {
	return t == nil || len(t.Rows) == 0
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// ColumnIndex returns the index of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	if t == nil {
		return -1
	}
	for i, col := range t.Header {
		if col == name {
			return i
		}
	}
	return -1
}

// Get returns the cell at (row, col), or "" when the row is ragged
// or the index is out of range.
func (t *Table) Get(row, col int) string {
	if t == nil || row < 0 || row >= len(t.Rows) || col < 0 {
		return ""
	}
	r := t.Rows[row]
	if col >= len(r) {
		return ""
	}
	return r[col]
}

// Column returns all values of the column at index col, one per row.
// Ragged rows contribute "".
func (t *Table) Column(col int) []string {
	if t == nil {
		return nil
	}
	values := make([]string, len(t.Rows))
	for i := range t.Rows {
		values[i] = t.Get(i, col)
	}
	return values
}

// AppendColumn adds a derived column. values must have one entry per row;
// shorter slices are padded with "".
func (t *Table) AppendColumn(name string, values []string) {
	t.Header = append(t.Header, name)
	for i := range t.Rows {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		t.Rows[i] = append(t.Rows[i], v)
	}
}

// AppendRow adds one data row. Ragged rows are padded to the header width
// so every stored row has a value slot per column.
func (t *Table) AppendRow(row []string) {
	for len(row) < len(t.Header) {
		row = append(row, "")
	}
	t.Rows = append(t.Rows, row)
}

// RecordAt returns row i as a column-name → value map. Columns beyond the
// row's width map to "".
func (t *Table) RecordAt(i int) map[string]string {
	rec := make(map[string]string, len(t.Header))
	for c, name := range t.Header {
		rec[name] = t.Get(i, c)
	}
	return rec
}

// Records returns every row as a map, in row order.
func (t *Table) Records() []map[string]string {
	if t == nil {
		return nil
	}
	out := make([]map[string]string, len(t.Rows))
	for i := range t.Rows {
		out[i] = t.RecordAt(i)
	}
	return out
}

// Select returns a copy of the table holding only the rows whose index
// passes keep. Header is shared, rows are not copied.
func (t *Table) Select(keep func(row int) bool) *Table {
	out := &Table{Header: t.Header}
	for i := range t.Rows {
		if keep(i) {
			out.Rows = append(out.Rows, t.Rows[i])
		}
	}
	return out
}

// Merge appends src below t, unioning the column sets. Columns new to t are
// added at the end; existing rows read "" for them. Row order is preserved:
// all of t's rows first, then src's.
func (t *Table) Merge(src *Table) {
	if src == nil || len(src.Header) == 0 {
		return
	}
	if len(t.Header) == 0 {
		t.Header = append(t.Header, src.Header...)
		for _, row := range src.Rows {
			t.AppendRow(append([]string(nil), row...))
		}
		return
	}

	srcToDst := make([]int, len(src.Header))
	for si, name := range src.Header {
		di := t.ColumnIndex(name)
		if di < 0 {
			t.Header = append(t.Header, name)
			di = len(t.Header) - 1
		}
		srcToDst[si] = di
	}
	// Pad existing rows out to the widened header.
	for i := range t.Rows {
		for len(t.Rows[i]) < len(t.Header) {
			t.Rows[i] = append(t.Rows[i], "")
		}
	}
	for ri := range src.Rows {
		row := make([]string, len(t.Header))
		for si, di := range srcToDst {
			row[di] = src.Get(ri, si)
		}
		t.Rows = append(t.Rows, row)
	}
}

// Project reorders the table's columns to match header, by name. Columns
// absent from the table read ""; table columns not in header are dropped.
func (t *Table) Project(header []string) *Table {
	out := &Table{Header: append([]string(nil), header...)}
	src := make([]int, len(header))
	for i, name := range header {
		src[i] = t.ColumnIndex(name)
	}
	for ri := range t.Rows {
		row := make([]string, len(header))
		for i, si := range src {
			if si >= 0 {
				row[i] = t.Get(ri, si)
			}
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

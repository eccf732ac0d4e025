package ingest

import (
	"fmt"

	"github.com/haresh143heri/Ebasket-Return-App/internal/parser"
	"github.com/haresh143heri/Ebasket-Return-App/internal/tabstore"
)

// DeleteByUploadDate removes every row of the tab tagged with the given
// upload date and reports how many went away. Comparison is exact string
// equality on the Upload_Date column, never date parsing.
//
// The whole tab is read, filtered and rewritten; when nothing matches the
// tab is left untouched and 0 is returned (a no-op, not an error). An empty
// tab or one without an Upload_Date column is also a zero no-op.
func DeleteByUploadDate(st tabstore.Store, tab, date string) (int, error) {
	tbl, err := st.ReadAll(tab)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", tab, err)
	}
	if tbl.IsEmpty() {
		return 0, nil
	}
	dateCol := tbl.ColumnIndex(parser.ColUploadDate)
	if dateCol < 0 {
		return 0, nil
	}

	kept := tbl.Select(func(row int) bool {
		return tbl.Get(row, dateCol) != date
	})
	removed := tbl.Len() - kept.Len()
	if removed == 0 {
		return 0, nil
	}

	if err := st.OverwriteAll(tab, tbl.Header, kept.Rows); err != nil {
		return 0, fmt.Errorf("rewrite %s: %w", tab, err)
	}
	return removed, nil
}

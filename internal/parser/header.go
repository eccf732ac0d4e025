package parser

import "strings"

// LocateHeader finds the real header row inside a table parsed with no
// header assumption. Rows are scanned in order over the probe window; the
// first row whose trimmed cell values intersect the keyword set is declared
// the header. Exports from different tools prepend a variable number of
// banner rows, so row 0 is a candidate like any other.
//
// Returns (index, true) on a hit; (0, false) when no row in the window
// carries a keyword. Callers fall back to treating the table as already
// correctly headered.
func LocateHeader(rows [][]string, keywords map[string]struct{}) (int, bool) {
	if len(keywords) == 0 {
		return 0, false
	}
	limit := len(rows)
	if limit > HeaderProbeWindow {
		limit = HeaderProbeWindow
	}
	for i := 0; i < limit; i++ {
		for _, cell := range rows[i] {
			if _, ok := keywords[strings.TrimSpace(cell)]; ok {
				return i, true
			}
		}
	}
	return 0, false
}

// KeywordSet builds a lookup set from literal header keywords.
func KeywordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Header keyword sets per upload purpose. Exhaustive across the export
// format revisions seen in production; any one hit identifies the row.
var (
	returnHeaderKeywords = KeywordSet(
		"Return AWB No",
		"Forward AWB No",
		"Cust Order No",
		"RETURN ORDER NUMBER",
		"SELLER SKU",
		"Seller SKU ID",
		"Return Created Date",
		"FORWARD SELLER ORDER ID",
	)
	orderHeaderKeywords = KeywordSet(
		"Seller SKU ID",
		"SELLER SKU",
		"Article Name",
		"Open Order Date",
		"Order Date",
	)
)

// HeaderKeywords returns the keyword set used to probe for the header row
// of a file with the given purpose. Scan files have no trusted header at
// all (first column wins regardless), so their set is empty.
func HeaderKeywords(purpose Purpose) map[string]struct{} {
	switch purpose {
	case PurposeReturn:
		return returnHeaderKeywords
	case PurposeOrder:
		return orderHeaderKeywords
	default:
		return nil
	}
}

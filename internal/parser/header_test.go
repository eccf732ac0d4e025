package parser

import "testing"

func TestLocateHeader_AfterBannerRows(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"Ebasket Order Export"},
		{"Generated: 2026-01-25"},
		{""},
		{"Sr No", "Seller SKU ID", "Article Name", "Open Order Date"},
		{"1", "SKU1", "Cotton Saree", "25-01-2026"},
	}
	idx, found := LocateHeader(rows, orderHeaderKeywords)
	if !found {
		t.Fatal("expected header to be found")
	}
	if idx != 3 {
		t.Fatalf("header index = %d, want 3", idx)
	}
}

func TestLocateHeader_FirstRowWins(t *testing.T) {
	t.Parallel()

	// Both row 0 and row 2 carry keywords; row 0 must win.
	rows := [][]string{
		{"Seller SKU ID", "Article Name"},
		{"SKU1", "Saree"},
		{"Seller SKU ID", "Article Name"},
	}
	idx, found := LocateHeader(rows, orderHeaderKeywords)
	if !found || idx != 0 {
		t.Fatalf("got (%d, %v), want (0, true)", idx, found)
	}
}

func TestLocateHeader_WindowExhausted(t *testing.T) {
	t.Parallel()

	var rows [][]string
	for i := 0; i < 15; i++ {
		rows = append(rows, []string{"banner", "noise"})
	}
	// Keyword row sits outside the probe window.
	rows = append(rows, []string{"Seller SKU ID"})

	if idx, found := LocateHeader(rows, orderHeaderKeywords); found {
		t.Fatalf("expected not_found, got index %d", idx)
	}
}

func TestLocateHeader_TrimsCells(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"  Return AWB No ", " SELLER SKU"},
	}
	idx, found := LocateHeader(rows, returnHeaderKeywords)
	if !found || idx != 0 {
		t.Fatalf("got (%d, %v), want (0, true)", idx, found)
	}
}

func TestLocateHeader_EmptyKeywords(t *testing.T) {
	t.Parallel()

	rows := [][]string{{"a", "b"}}
	if _, found := LocateHeader(rows, nil); found {
		t.Fatal("nil keyword set must never match")
	}
	if _, found := LocateHeader(rows, HeaderKeywords(PurposeScan)); found {
		t.Fatal("scan purpose has no header keywords")
	}
}

package ingest

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/haresh143heri/Ebasket-Return-App/internal/parser"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testIngestor() *Ingestor {
	fixed := time.Date(2026, 1, 25, 10, 0, 0, 0, time.UTC)
	return NewWithClock(testLogger(), func() time.Time { return fixed })
}

func csvFile(name, content string) UploadedFile {
	return UploadedFile{Filename: name, Content: []byte(content), Format: FormatCSV}
}

func xlsxFile(t *testing.T, name string, rows [][]string) UploadedFile {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write xlsx: %v", err)
	}
	return UploadedFile{Filename: name, Content: buf.Bytes(), Format: FormatSpreadsheet}
}

func TestIngest_ScanKeepsFirstColumnOnly(t *testing.T) {
	t.Parallel()

	f := csvFile("scan1.csv", "Whatever,Noise\nAWB100,x\nAWB200,y\n")
	tbl, report, err := testIngestor().Ingest([]UploadedFile{f}, parser.PurposeScan)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	want := []string{parser.ColScannedID, parser.ColUploadDate, parser.ColSourceFile}
	if len(tbl.Header) != len(want) {
		t.Fatalf("header = %v, want %v", tbl.Header, want)
	}
	for i := range want {
		if tbl.Header[i] != want[i] {
			t.Fatalf("header = %v, want %v", tbl.Header, want)
		}
	}
	if tbl.Len() != 2 || tbl.Get(0, 0) != "AWB100" || tbl.Get(1, 0) != "AWB200" {
		t.Fatalf("rows = %v", tbl.Rows)
	}
	if tbl.Get(0, 1) != "2026-01-25" || tbl.Get(0, 2) != "scan1.csv" {
		t.Fatalf("tagging wrong: %v", tbl.Rows[0])
	}
	if report.ImportedFiles != 1 || report.TotalRows != 2 {
		t.Fatalf("report = %+v", report)
	}
}

func TestIngest_RelocatesHeaderBelowBanners(t *testing.T) {
	t.Parallel()

	f := csvFile("rtv.csv",
		"RTV Export\n"+
			"Generated 2026-01-25\n"+
			"Return AWB No,SELLER SKU,Return Created Date\n"+
			"AWB100,SKU1,2026-01-20 10:00:00 IST\n")

	tbl, report, err := testIngestor().Ingest([]UploadedFile{f}, parser.PurposeReturn)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if tbl.Len() != 1 {
		t.Fatalf("got %d rows, want 1", tbl.Len())
	}
	if tbl.ColumnIndex("Return AWB No") != 0 {
		t.Fatalf("header not relocated: %v", tbl.Header)
	}
	fr := report.Files[0]
	if fr.HeaderRow != 2 || !fr.Relocated {
		t.Fatalf("file result = %+v", fr)
	}
}

func TestIngest_NaiveHeaderKeptWhenNoKeyword(t *testing.T) {
	t.Parallel()

	f := csvFile("odd.csv", "ColA,ColB\n1,2\n")
	tbl, report, err := testIngestor().Ingest([]UploadedFile{f}, parser.PurposeReturn)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if tbl.ColumnIndex("ColA") != 0 || tbl.Len() != 1 {
		t.Fatalf("fallback parse wrong: header=%v rows=%d", tbl.Header, tbl.Len())
	}
	if report.Files[0].Relocated {
		t.Fatal("must not report relocation on fallback")
	}
}

func TestIngest_SpreadsheetOrders(t *testing.T) {
	t.Parallel()

	f := xlsxFile(t, "orders.xlsx", [][]string{
		{"Seller SKU ID", "Article Name", "Open Order Date"},
		{"SKU1", "Cotton Saree", "20-01-2026"},
		{"SKU2", "Crop Top", "21-01-2026"},
	})
	tbl, _, err := testIngestor().Ingest([]UploadedFile{f}, parser.PurposeOrder)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("got %d rows, want 2", tbl.Len())
	}
	if tbl.Get(1, tbl.ColumnIndex("Article Name")) != "Crop Top" {
		t.Fatalf("rows = %v", tbl.Rows)
	}
}

func TestIngest_BadFileDoesNotAbortBatch(t *testing.T) {
	t.Parallel()

	files := []UploadedFile{
		csvFile("good1.csv", "Return AWB No\nAWB1\n"),
		{Filename: "broken.xlsx", Content: []byte("not a zip"), Format: FormatSpreadsheet},
		csvFile("good2.csv", "Return AWB No\nAWB2\n"),
	}
	tbl, report, err := testIngestor().Ingest(files, parser.PurposeReturn)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("got %d rows, want 2", tbl.Len())
	}
	if report.ImportedFiles != 2 || report.TotalFiles != 3 {
		t.Fatalf("report = %+v", report)
	}
	if report.Files[1].Status != "error" || report.Files[1].Error == "" {
		t.Fatalf("broken file not reported: %+v", report.Files[1])
	}
}

func TestIngest_EmptyBatch(t *testing.T) {
	t.Parallel()

	tbl, report, err := testIngestor().Ingest(nil, parser.PurposeScan)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if !tbl.IsEmpty() || report.TotalFiles != 0 {
		t.Fatalf("empty batch: table=%+v report=%+v", tbl, report)
	}
}

func TestIngest_OverWideRowsKeepTagsAligned(t *testing.T) {
	t.Parallel()

	// The CSV reader accepts rows with more cells than the header row. The
	// surplus cells have no column name and must not shift the tag columns.
	f := csvFile("wide.csv",
		"Return AWB No\n"+
			"AWB1,extra\n"+
			"AWB2\n")
	tbl, _, err := testIngestor().Ingest([]UploadedFile{f}, parser.PurposeReturn)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("got %d rows, want 2", tbl.Len())
	}

	date := tbl.ColumnIndex(parser.ColUploadDate)
	src := tbl.ColumnIndex(parser.ColSourceFile)
	for i := 0; i < tbl.Len(); i++ {
		if tbl.Get(i, date) != "2026-01-25" {
			t.Fatalf("row %d upload date = %q, want 2026-01-25", i, tbl.Get(i, date))
		}
		if tbl.Get(i, src) != "wide.csv" {
			t.Fatalf("row %d source file = %q, want wide.csv", i, tbl.Get(i, src))
		}
	}
	for i, row := range tbl.Rows {
		if len(row) != len(tbl.Header) {
			t.Fatalf("row %d width = %d, header width = %d", i, len(row), len(tbl.Header))
		}
	}
	if tbl.Get(0, 0) != "AWB1" {
		t.Fatalf("rows = %v", tbl.Rows)
	}
}

func TestIngest_UnionsRaggedColumnSets(t *testing.T) {
	t.Parallel()

	files := []UploadedFile{
		csvFile("a.csv", "Return AWB No,SELLER SKU\nAWB1,SKU1\n"),
		csvFile("b.csv", "Return AWB No,Cust Order No\nAWB2,ORD2\n"),
	}
	tbl, _, err := testIngestor().Ingest(files, parser.PurposeReturn)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("got %d rows", tbl.Len())
	}
	sku := tbl.ColumnIndex("SELLER SKU")
	cust := tbl.ColumnIndex("Cust Order No")
	if sku < 0 || cust < 0 {
		t.Fatalf("union header missing columns: %v", tbl.Header)
	}
	// Row from a.csv has no Cust Order No; row from b.csv has no SKU.
	if tbl.Get(0, cust) != "" || tbl.Get(1, sku) != "" {
		t.Fatalf("padding wrong: %v", tbl.Rows)
	}
	if tbl.Get(0, sku) != "SKU1" || tbl.Get(1, cust) != "ORD2" {
		t.Fatalf("values misplaced: %v", tbl.Rows)
	}
}

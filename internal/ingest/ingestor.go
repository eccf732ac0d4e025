// Package ingest turns uploaded spreadsheet/CSV batches into normalized
// tables ready for append-only persistence, and carries the date-tagged
// retention path.
package ingest

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/haresh143heri/Ebasket-Return-App/internal/model"
	"github.com/haresh143heri/Ebasket-Return-App/internal/parser"
)

// Ingestor drives header location and schema normalization per uploaded
// file and concatenates same-purpose batches into one table.
type Ingestor struct {
	log *logrus.Logger
	now func() time.Time
}

// New creates an ingestor logging through log.
func New(log *logrus.Logger) *Ingestor {
	return &Ingestor{log: log, now: time.Now}
}

// NewWithClock creates an ingestor with a fixed clock, for tests that pin
// the upload date.
func NewWithClock(log *logrus.Logger, now func() time.Time) *Ingestor {
	return &Ingestor{log: log, now: now}
}

// Ingest parses every file of the batch, tags rows with the upload date and
// source filename, and concatenates the results in upload order. A file
// that fails to parse is reported and skipped; it never aborts its
// siblings. An empty file list yields an empty table and a report with
// zero files — distinguishable from a failure.
func (ing *Ingestor) Ingest(files []UploadedFile, purpose parser.Purpose) (*model.Table, *model.IngestReport, error) {
	start := ing.now()
	uploadDate := start.Format("2006-01-02")

	report := &model.IngestReport{
		BatchID:    uuid.New().String(),
		Purpose:    string(purpose),
		UploadDate: uploadDate,
		TotalFiles: len(files),
	}

	batch := &model.Table{}
	for _, f := range files {
		result := model.FileResult{Filename: f.Filename, Status: "imported"}

		tbl, headerRow, relocated, err := ing.ingestFile(f, purpose)
		if err != nil {
			result.Status = "error"
			result.Error = err.Error()
			report.Files = append(report.Files, result)
			ing.log.WithFields(logrus.Fields{
				"file":    f.Filename,
				"purpose": purpose,
				"error":   err.Error(),
			}).Warn("[ingest.file] parse failed, skipping")
			continue
		}

		// Tag every row with the batch metadata. The upload date is the
		// ingestion wall-clock date, never a date from inside the file.
		dates := make([]string, tbl.Len())
		names := make([]string, tbl.Len())
		for i := range dates {
			dates[i] = uploadDate
			names[i] = f.Filename
		}
		tbl.AppendColumn(parser.ColUploadDate, dates)
		tbl.AppendColumn(parser.ColSourceFile, names)

		result.Rows = tbl.Len()
		result.HeaderRow = headerRow
		result.Relocated = relocated
		report.Files = append(report.Files, result)
		report.ImportedFiles++

		batch.Merge(tbl)

		ing.log.WithFields(logrus.Fields{
			"file":      f.Filename,
			"purpose":   purpose,
			"rows":      tbl.Len(),
			"headerRow": headerRow,
			"batch":     report.BatchID,
		}).Info("[ingest.file]")
	}

	report.TotalRows = batch.Len()
	report.Duration = ing.now().Sub(start)
	return batch, report, nil
}

// ingestFile parses one file into a headered table. For scan files only the
// first column is kept, renamed to the canonical scan-id column — the
// header of a scan export is not trusted. For return and order files the
// naive header is probed for role keywords and relocated when the real
// header sits below banner rows.
func (ing *Ingestor) ingestFile(f UploadedFile, purpose parser.Purpose) (*model.Table, int, bool, error) {
	raw, err := readRaw(f)
	if err != nil {
		return nil, 0, false, err
	}
	if len(raw) == 0 {
		return &model.Table{Header: []string{}}, 0, false, nil
	}

	if purpose == parser.PurposeScan {
		tbl := model.NewTable(parser.ColScannedID)
		for _, row := range raw[1:] {
			cell := ""
			if len(row) > 0 {
				cell = row[0]
			}
			tbl.AppendRow([]string{cell})
		}
		return tbl, 0, false, nil
	}

	keywords := parser.HeaderKeywords(purpose)
	headerRow := 0
	relocated := false
	if !rowHasKeyword(raw[0], keywords) {
		if idx, found := parser.LocateHeader(raw, keywords); found {
			headerRow = idx
			relocated = idx != 0
		} else {
			ing.log.WithFields(logrus.Fields{
				"file":    f.Filename,
				"purpose": purpose,
			}).Warn("[ingest.header] no keyword row found, keeping naive header")
		}
	}

	tbl := &model.Table{Header: trimCells(raw[headerRow])}
	width := len(tbl.Header)
	for _, row := range raw[headerRow+1:] {
		r := append([]string(nil), row...)
		// Cells beyond the header width have no column name. They must be
		// dropped here or the tag columns appended later land at the wrong
		// index for these rows.
		if len(r) > width {
			r = r[:width]
		}
		tbl.AppendRow(r)
	}
	return tbl, headerRow, relocated, nil
}

func rowHasKeyword(row []string, keywords map[string]struct{}) bool {
	for _, cell := range row {
		if _, ok := keywords[strings.TrimSpace(cell)]; ok {
			return true
		}
	}
	return false
}

func trimCells(row []string) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = strings.TrimSpace(cell)
	}
	return out
}

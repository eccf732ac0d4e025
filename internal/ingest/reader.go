package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Format declares how an uploaded byte stream should be parsed.
type Format string

const (
	FormatCSV         Format = "csv"
	FormatSpreadsheet Format = "spreadsheet"
)

// UploadedFile is one file as handed over by the upload collaborator.
type UploadedFile struct {
	Filename string
	Content  []byte
	Format   Format
}

// DetectFormat picks the parse format from the filename extension.
// Everything that is not .csv goes through the spreadsheet reader.
func DetectFormat(filename string) Format {
	if strings.EqualFold(filepath.Ext(filename), ".csv") {
		return FormatCSV
	}
	return FormatSpreadsheet
}

// readRaw parses the file into raw rows with no header assumption.
func readRaw(f UploadedFile) ([][]string, error) {
	switch f.Format {
	case FormatCSV:
		return readCSV(f.Content)
	case FormatSpreadsheet:
		return readSpreadsheet(f.Content)
	default:
		return nil, fmt.Errorf("unknown format %q", f.Format)
	}
}

func readCSV(content []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(content))
	// Export rows are ragged; don't enforce a fixed field count.
	r.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv parse: %w", err)
		}
		rows = append(rows, record)
	}
	return rows, nil
}

// readSpreadsheet reads the first sheet of an xlsx workbook. Uploads only
// ever carry data on the first sheet.
func readSpreadsheet(content []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("spreadsheet open: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("spreadsheet read: %w", err)
	}
	return rows, nil
}

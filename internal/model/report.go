package model

import "time"

// FileResult is the per-file outcome of one ingestion batch.
type FileResult struct {
	Filename  string `json:"filename"`
	Status    string `json:"status"` // imported/skipped/error
	Rows      int    `json:"rows"`
	HeaderRow int    `json:"headerRow"` // located header row index in the raw file
	Relocated bool   `json:"relocated"` // true when the naive header was replaced
	Error     string `json:"error,omitempty"`
}

// IngestReport describes one ingestion call: which files went in, which
// failed, and how many rows the batch produced.
type IngestReport struct {
	BatchID       string        `json:"batchId"`
	Purpose       string        `json:"purpose"`
	UploadDate    string        `json:"uploadDate"`
	TotalFiles    int           `json:"totalFiles"`
	ImportedFiles int           `json:"importedFiles"`
	TotalRows     int           `json:"totalRows"`
	Files         []FileResult  `json:"files"`
	Duration      time.Duration `json:"duration"`
}

// DailyReport is the per-date view: order volume against returns scanned in
// and returns still missing for that date.
type DailyReport struct {
	Date    string              `json:"date"`
	Orders  int                 `json:"orders"`
	Returns int                 `json:"returns"`
	Missing int                 `json:"missing"`
	Rows    []map[string]string `json:"rows"`
}

// MonthBucket is one month of the yearly trend.
type MonthBucket struct {
	Month   string `json:"month"` // YYYY-MM
	Orders  int    `json:"orders"`
	Returns int    `json:"returns"` // matched returns only
}

// CategoryStat compares sales volume to matched returns per category.
type CategoryStat struct {
	Category string  `json:"category"`
	Sales    int     `json:"sales"`
	Returns  int     `json:"returns"`
	Ratio    float64 `json:"ratio"` // returns / sales * 100, 2dp
}

// SKUStat compares sales volume to matched returns per seller SKU.
type SKUStat struct {
	SKU     string `json:"sku"`
	Sales   int    `json:"sales"`
	Returns int    `json:"returns"`
}

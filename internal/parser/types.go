package parser

// Purpose tags what an uploaded batch contains.
type Purpose string

const (
	PurposeScan   Purpose = "scan"
	PurposeReturn Purpose = "rtv"
	PurposeOrder  Purpose = "order"
)

// Valid reports whether p is one of the known purposes.
func (p Purpose) Valid() bool {
	switch p {
	case PurposeScan, PurposeReturn, PurposeOrder:
		return true
	}
	return false
}

// Canonical column names attached by ingestion and reconciliation.
const (
	ColScannedID  = "Scanned_ID"
	ColUploadDate = "Upload_Date"
	ColSourceFile = "Source_File"

	ColStatus      = "Status"
	ColDate        = "Date"
	ColArticleName = "Article Name"
	ColCategory    = "Category"
)

// Match statuses assigned at read time.
const (
	StatusMatched = "Matched"
	StatusMissing = "Missing"
)

// HeaderProbeWindow is how many leading rows the header locator inspects
// before giving up. Export formats prepend at most a few banner rows.
const HeaderProbeWindow = 10

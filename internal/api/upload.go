package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/haresh143heri/Ebasket-Return-App/internal/ingest"
	"github.com/haresh143heri/Ebasket-Return-App/internal/model"
	"github.com/haresh143heri/Ebasket-Return-App/internal/parser"
	"github.com/haresh143heri/Ebasket-Return-App/internal/tabstore"
)

// purposeTab maps the upload purpose to its target tab.
var purposeTab = map[parser.Purpose]string{
	parser.PurposeScan:   tabstore.TabScans,
	parser.PurposeReturn: tabstore.TabRTV,
	parser.PurposeOrder:  tabstore.TabOrders,
}

// Upload ingests a multipart batch of csv/xlsx files into one tab.
// POST /api/upload
func (h *Handler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
		return
	}

	purpose := parser.Purpose(c.PostForm("purpose"))
	if !purpose.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "purpose must be scan, rtv or order"})
		return
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files uploaded"})
		return
	}

	files := make([]ingest.UploadedFile, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read uploaded file " + fh.Filename})
			return
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read uploaded file " + fh.Filename})
			return
		}
		files = append(files, ingest.UploadedFile{
			Filename: fh.Filename,
			Content:  content,
			Format:   ingest.DetectFormat(fh.Filename),
		})
	}

	h.writeMu.Lock()
	defer h.writeMu.Unlock()

	batch, report, err := h.ingestor.Ingest(files, purpose)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tab := purposeTab[purpose]
	if !batch.IsEmpty() {
		if err := h.appendBatch(tab, batch); err != nil {
			h.log.WithFields(logrus.Fields{
				"tab":   tab,
				"batch": report.BatchID,
			}).Errorf("[upload] persist failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "storage write failed"})
			return
		}
		h.cache.invalidate()
	}

	h.log.WithFields(logrus.Fields{
		"tab":      tab,
		"batch":    report.BatchID,
		"files":    report.TotalFiles,
		"imported": report.ImportedFiles,
		"rows":     report.TotalRows,
	}).Info("[upload] batch done")

	c.JSON(http.StatusOK, report)
}

// appendBatch writes the batch rows below the tab's existing data. A tab that
// already carries a header keeps it: batch rows are projected onto the stored
// column set by name, so older and newer export revisions coexist. Columns
// the stored header does not know are dropped with a warning.
func (h *Handler) appendBatch(tab string, batch *model.Table) error {
	stored, err := h.store.ReadAll(tab)
	if err != nil {
		return err
	}

	rows := batch
	if len(stored.Header) > 0 {
		for _, col := range batch.Header {
			if stored.ColumnIndex(col) < 0 {
				h.log.WithFields(logrus.Fields{
					"tab":    tab,
					"column": col,
				}).Warn("[upload] column not in stored header, dropped")
			}
		}
		rows = batch.Project(stored.Header)
	} else if err := h.store.AppendHeaderIfEmpty(tab, batch.Header); err != nil {
		return err
	}

	return h.store.AppendRows(tab, rows.Rows)
}

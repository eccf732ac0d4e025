package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/haresh143heri/Ebasket-Return-App/internal/ingest"
	"github.com/haresh143heri/Ebasket-Return-App/internal/tabstore"
)

// DeleteRequest names one tab and one upload date to purge.
type DeleteRequest struct {
	Tab  string `json:"tab"`
	Date string `json:"date"`
}

// DeleteByDate removes every row of a tab whose upload date matches exactly.
// POST /api/manage/delete
func (h *Handler) DeleteByDate(c *gin.Context) {
	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if !tabstore.KnownTab(req.Tab) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown tab"})
		return
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	h.writeMu.Lock()
	defer h.writeMu.Unlock()

	deleted, err := ingest.DeleteByUploadDate(h.store, req.Tab, req.Date)
	if err != nil {
		h.log.WithFields(logrus.Fields{
			"tab":  req.Tab,
			"date": req.Date,
		}).Errorf("[manage.delete] failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "storage write failed"})
		return
	}

	if deleted == 0 {
		c.JSON(http.StatusOK, gin.H{"deleted": 0, "message": "no data for that date"})
		return
	}

	h.cache.invalidate()
	h.log.WithFields(logrus.Fields{
		"tab":     req.Tab,
		"date":    req.Date,
		"deleted": deleted,
	}).Info("[manage.delete]")
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// Refresh drops the read cache so the next report rebuilds from the store.
// POST /api/manage/refresh
func (h *Handler) Refresh(c *gin.Context) {
	h.cache.invalidate()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// StatusResponse summarizes the stored data volume.
type StatusResponse struct {
	Initialized bool           `json:"initialized"`
	RowCounts   map[string]int `json:"rowCounts"`
}

// GetStatus reports per-tab row counts.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	resp := StatusResponse{RowCounts: make(map[string]int, len(tabstore.Tabs))}
	for _, tab := range tabstore.Tabs {
		tbl, err := h.store.ReadAll(tab)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "storage read failed"})
			return
		}
		resp.RowCounts[tab] = tbl.Len()
		if tbl.Len() > 0 {
			resp.Initialized = true
		}
	}
	c.JSON(http.StatusOK, resp)
}

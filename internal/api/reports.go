package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// DailyReport reports order/return/missing volume for one date.
// GET /api/reports/daily?date=YYYY-MM-DD
func (h *Handler) DailyReport(c *gin.Context) {
	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	ds, err := h.cache.get()
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "storage read failed"})
		return
	}
	c.JSON(http.StatusOK, ds.Daily(date))
}

// MonthlyReport returns twelve month buckets of order and matched-return
// volume for one year.
// GET /api/reports/monthly?year=YYYY
func (h *Handler) MonthlyReport(c *gin.Context) {
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().Year())))
	if err != nil || year < 2000 || year > 2100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}

	ds, err := h.cache.get()
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "storage read failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"year": year, "months": ds.Monthly(year)})
}

// CategoryReport compares sales and matched returns per category.
// GET /api/reports/categories
func (h *Handler) CategoryReport(c *gin.Context) {
	ds, err := h.cache.get()
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "storage read failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": ds.CategoryStats()})
}

// SKUReport aggregates sales and matched returns per SKU, or daily sales per
// SKU when view=daily.
// GET /api/reports/skus?view=aggregate|daily&date=YYYY-MM-DD
func (h *Handler) SKUReport(c *gin.Context) {
	ds, err := h.cache.get()
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "storage read failed"})
		return
	}

	switch c.DefaultQuery("view", "aggregate") {
	case "aggregate":
		c.JSON(http.StatusOK, gin.H{"skus": ds.SKUStats()})
	case "daily":
		date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
		if _, err := time.Parse("2006-01-02", date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"date": date, "skus": ds.DailySKUSales(date)})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "view must be aggregate or daily"})
	}
}

// MissingReport lists the return rows that no scan has accounted for.
// GET /api/reports/missing
func (h *Handler) MissingReport(c *gin.Context) {
	ds, err := h.cache.get()
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "storage read failed"})
		return
	}
	missing := ds.Missing()
	c.JSON(http.StatusOK, gin.H{
		"count": missing.Len(),
		"rows":  missing.Records(),
	})
}

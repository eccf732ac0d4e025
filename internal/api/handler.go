// Package api exposes the upload, report and management surface over HTTP.
// Handlers stay thin: ingestion and reconciliation live in their own
// packages, this layer adds sessions, the read cache and a write lock.
package api

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/haresh143heri/Ebasket-Return-App/internal/config"
	"github.com/haresh143heri/Ebasket-Return-App/internal/ingest"
	"github.com/haresh143heri/Ebasket-Return-App/internal/tabstore"
)

// Handler wires the API routes to the store.
type Handler struct {
	store    tabstore.Store
	cfg      *config.AppConfig
	log      *logrus.Logger
	ingestor *ingest.Ingestor
	sessions *sessionStore
	cache    *datasetCache

	// writeMu serializes uploads and deletions. The store reads, filters and
	// rewrites whole tabs, so concurrent writers would lose rows.
	writeMu sync.Mutex
}

// NewHandler creates the API handler.
func NewHandler(st tabstore.Store, cfg *config.AppConfig, log *logrus.Logger) *Handler {
	return &Handler{
		store:    st,
		cfg:      cfg,
		log:      log,
		ingestor: ingest.New(log),
		sessions: newSessionStore(),
		cache:    newDatasetCache(st, log, cfg.Cache.TTLSeconds),
	}
}

// RegisterRoutes registers the API routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// Session
	router.POST("/login", h.Login)
	router.POST("/logout", h.Logout)

	authed := router.Group("", h.RequireAuth())

	// Data ingestion
	authed.POST("/upload", h.Upload)

	// Reports
	authed.GET("/reports/daily", h.DailyReport)
	authed.GET("/reports/monthly", h.MonthlyReport)
	authed.GET("/reports/categories", h.CategoryReport)
	authed.GET("/reports/skus", h.SKUReport)
	authed.GET("/reports/missing", h.MissingReport)

	// Export
	authed.GET("/export/missing", h.ExportMissing)

	// Management
	authed.POST("/manage/delete", h.DeleteByDate)
	authed.POST("/manage/refresh", h.Refresh)
	authed.GET("/status", h.GetStatus)
}

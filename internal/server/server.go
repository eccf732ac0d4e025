// Package server assembles the gin engine, the storage backend and the API
// handler into one runnable HTTP server.
package server

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/haresh143heri/Ebasket-Return-App/internal/api"
	"github.com/haresh143heri/Ebasket-Return-App/internal/config"
	"github.com/haresh143heri/Ebasket-Return-App/internal/tabstore"
)

// Server is the HTTP server.
type Server struct {
	router *gin.Engine
	store  tabstore.Store
	api    *api.Handler
	log    *logrus.Logger
}

// NewServer creates the server: opens the configured storage backend and
// registers the API routes.
func NewServer(cfg *config.AppConfig, log *logrus.Logger) (*Server, error) {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	st, err := openStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	s := &Server{
		router: gin.Default(),
		store:  st,
		api:    api.NewHandler(st, cfg, log),
		log:    log,
	}
	s.setupRoutes()
	return s, nil
}

func openStore(cfg *config.AppConfig) (tabstore.Store, error) {
	switch cfg.Data.Backend {
	case "", "sqlite":
		dataDir, err := config.EnsureDataDir(cfg)
		if err != nil {
			dataDir = cfg.Data.DataDir
		}
		return tabstore.NewSQLite(filepath.Join(dataDir, "ebasket.db"))
	case "memory":
		return tabstore.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Data.Backend)
	}
}

func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	apiGroup := s.router.Group("/api")
	{
		s.api.RegisterRoutes(apiGroup)
	}

	s.router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "ebasket-return-app"})
	})
	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
}

// Run starts the server on addr.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close releases the storage backend.
func (s *Server) Close() error {
	return s.store.Close()
}

// GetStore exposes the storage backend for tests.
func (s *Server) GetStore() tabstore.Store {
	return s.store
}

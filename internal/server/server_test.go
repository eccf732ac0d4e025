package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/haresh143heri/Ebasket-Return-App/internal/config"
	"github.com/haresh143heri/Ebasket-Return-App/internal/tabstore"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func testConfig() *config.AppConfig {
	cfg := config.DefaultConfig()
	cfg.Server.DevMode = true
	cfg.Data.Backend = "memory"
	return cfg
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestNewServer_ServesRoutes(t *testing.T) {
	srv, err := NewServer(testConfig(), testLogger())
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	defer srv.Close()

	if _, ok := srv.GetStore().(*tabstore.MemoryStore); !ok {
		t.Fatalf("backend = %T, want memory store", srv.GetStore())
	}

	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "ebasket-return-app") {
		t.Fatalf("root: status = %d, body %s", w.Code, w.Body.String())
	}

	// API routes are registered and guarded.
	w = httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/status", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated status: code = %d, want 401", w.Code)
	}

	w = httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown route: code = %d, want 404", w.Code)
	}
}

func TestNewServer_RejectsUnknownBackend(t *testing.T) {
	cfg := testConfig()
	cfg.Data.Backend = "bogus"
	if _, err := NewServer(cfg, testLogger()); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/model"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/testutil"
	"gorm.io/gorm"
)

func setupHealthRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHealthHandler(db, time.Now().Add(-time.Minute), "test").RegisterRoutes(r)
	return r
}

func TestHealth(t *testing.T) {
	router := setupHealthRouter(testutil.NewTestDB(t))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	resp := decode[map[string]any](t, w)
	if resp["status"] != "ok" || resp["version"] != "test" {
		t.Errorf("unexpected health body %v", resp)
	}
	if uptime, _ := resp["uptime"].(float64); uptime < 60 {
		t.Errorf("expected uptime of at least 60s, got %v", resp["uptime"])
	}
}

func TestReady(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupHealthRouter(db)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ready", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[map[string]any](t, w)
	dbInfo, _ := resp["db"].(map[string]any)
	if dbInfo["driver"] != "sqlite" || dbInfo["status"] != "up" {
		t.Errorf("unexpected db status %v", resp["db"])
	}
	schema, _ := resp["schema"].(map[string]any)
	if schema["status"] != "migrated" || schema["tables"] != float64(5) {
		t.Errorf("unexpected schema status %v", resp["schema"])
	}
}

func TestReady_SchemaNotMigrated(t *testing.T) {
	router := setupHealthRouter(testutil.NewUnmigratedDB(t))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ready", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[map[string]any](t, w)
	schema, _ := resp["schema"].(map[string]any)
	missing, _ := schema["missing"].([]any)
	if schema["status"] != "missing" || len(missing) != 5 {
		t.Errorf("expected all five catalog tables missing, got %v", resp["schema"])
	}
}

func TestReady_BooksTableDropped(t *testing.T) {
	db := testutil.NewTestDB(t)
	if err := db.Migrator().DropTable(&model.Book{}); err != nil {
		t.Fatalf("failed to drop books: %v", err)
	}
	router := setupHealthRouter(db)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ready", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[map[string]any](t, w)
	schema, _ := resp["schema"].(map[string]any)
	missing, _ := schema["missing"].([]any)
	if len(missing) != 1 || missing[0] != "books" {
		t.Errorf("expected only books missing, got %v", resp["schema"])
	}
}

func TestReady_DatabaseClosed(t *testing.T) {
	db := testutil.NewTestDB(t)
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	_ = sqlDB.Close()

	router := setupHealthRouter(db)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ready", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d, body=%s", w.Code, w.Body.String())
	}
}

// Package handlers_test provides behavior tests for the API handlers package.
package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/jkoelman/zonewise/internal/api/handlers"
	"github.com/jkoelman/zonewise/internal/config"
	"github.com/jkoelman/zonewise/internal/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func openTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newTestRouter(t *testing.T) (*gin.Engine, *database.DB) {
	t.Helper()
	db := openTestDB(t)
	cfg, err := config.Load("")
	require.NoError(t, err)

	h := handlers.New(cfg, db, nil)
	r := gin.New()

	api := r.Group("/api/v1")
	api.GET("/health", h.Health)
	api.GET("/stats", h.Stats)
	api.POST("/imports", h.RunImport)
	api.POST("/imports/commit", h.CommitImport)
	api.GET("/prefix-rules", h.ListPrefixRules)
	api.POST("/prefix-rules", h.AddPrefixRule)
	api.DELETE("/prefix-rules/:prefix", h.DeletePrefixRule)
	api.GET("/fabrics/:id/aliases", h.ListAliases)
	api.GET("/fabrics/:id/zones", h.ListZones)

	return r, db
}

func performRequest(r http.Handler, method, path string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

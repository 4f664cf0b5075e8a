// Package handlers implements the REST API endpoint handlers for zonewise.
//
// REST API Endpoints:
//
// System Health:
//   - GET /api/v1/health - Health check status (includes database ping)
//   - GET /api/v1/stats - Server statistics (uptime, memory, goroutines)
//
// Imports:
//   - POST /api/v1/imports?fabric_id=N - Parse uploaded switch configuration
//     files into reviewed alias and zone records (nothing is persisted)
//   - POST /api/v1/imports/commit?fabric_id=N - Persist reviewed records
//
// Prefix Rules (smart WWPN type detection):
//   - GET /api/v1/prefix-rules - List configured WWPN prefix rules
//   - POST /api/v1/prefix-rules - Add or update a prefix rule
//   - DELETE /api/v1/prefix-rules/:prefix - Remove a prefix rule
//
// Fabrics:
//   - GET /api/v1/fabrics/:id/aliases - Stored aliases of one fabric
//   - GET /api/v1/fabrics/:id/zones - Stored zones of one fabric
//
// Authentication:
//
// All endpoints under /api/v1 support optional API key authentication via
// the X-API-Key header. Authentication is disabled when no key is configured.
//
// @title Zonewise Management API
// @version 1.0
// @description REST API for importing and reviewing Fibre Channel switch zoning configuration.
//
// @contact.name Zonewise Support
// @contact.url https://github.com/jkoelman/zonewise
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:8080
// @BasePath /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package handlers

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/jkoelman/zonewise/internal/config"
	"github.com/jkoelman/zonewise/internal/database"
)

// Handler contains dependencies for API handlers.
type Handler struct {
	cfg       *config.Config
	db        *database.DB
	logger    *slog.Logger
	startTime time.Time

	// Cumulative counters since start, surfaced by /stats.
	importsRun    atomic.Int64
	aliasesParsed atomic.Int64
	zonesParsed   atomic.Int64
	commits       atomic.Int64
}

// New creates a new Handler with the given configuration and database.
func New(cfg *config.Config, db *database.DB, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		cfg:       cfg,
		db:        db,
		logger:    logger,
		startTime: time.Now(),
	}
}

// DB returns the database connection for handlers that need it.
func (h *Handler) DB() *database.DB {
	return h.db
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jkoelman/zonewise/internal/api/models"
	"github.com/jkoelman/zonewise/internal/importer"
)

// fabricIDQuery extracts and validates the fabric_id query parameter.
func fabricIDQuery(c *gin.Context) (int, error) {
	raw := c.Query("fabric_id")
	if raw == "" {
		return 0, errors.New("fabric_id query parameter is required")
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, errors.New("fabric_id must be a positive integer")
	}
	return id, nil
}

// sessionDefaults merges the server configuration and the optional
// per-request overrides into the defaults for one import session.
func (h *Handler) sessionDefaults(override *importer.ImportDefaults) importer.ImportDefaults {
	if override != nil {
		return *override
	}
	defaults := importer.DefaultImportDefaults()
	if h.cfg != nil && h.cfg.Import.AllowDirectMembers != nil {
		defaults.AllowDirectMembers = *h.cfg.Import.AllowDirectMembers
	}
	return defaults
}

// RunImport godoc
// @Summary Run an import session
// @Description Parses uploaded switch configuration files into reviewed alias and zone records. Nothing is written to the database; use /imports/commit to persist the reviewed result.
// @Tags imports
// @Accept json
// @Produce json
// @Param fabric_id query int true "Target fabric ID"
// @Param request body models.ImportRequest true "Files to parse"
// @Success 200 {object} importer.Result
// @Failure 400 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /imports [post]
func (h *Handler) RunImport(c *gin.Context) {
	fabricID, err := fabricIDQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	if h.cfg != nil && h.cfg.Import.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.Import.MaxUploadBytes)
	}

	var req models.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}
	if len(req.Files) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "at least one file is required"})
		return
	}

	session := importer.NewSession(h.db, h.logger, fabricID, h.sessionDefaults(req.Defaults))
	if h.cfg != nil && h.cfg.Import.ChunkSize > 0 {
		session.ChunkSize = h.cfg.Import.ChunkSize
	}

	result, err := session.Run(c.Request.Context(), req.Files)
	if err != nil {
		// Run fails only on cancellation.
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	h.importsRun.Add(1)
	h.aliasesParsed.Add(int64(len(result.Aliases)))
	h.zonesParsed.Add(int64(len(result.Zones)))

	c.JSON(http.StatusOK, result)
}

// CommitImport godoc
// @Summary Commit reviewed import records
// @Description Persists the reviewed alias and zone records of a previous import session. Records marked as already existing or not flagged for creation are skipped.
// @Tags imports
// @Accept json
// @Produce json
// @Param fabric_id query int true "Target fabric ID"
// @Param request body models.CommitRequest true "Records to persist"
// @Success 200 {object} models.CommitResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /imports/commit [post]
func (h *Handler) CommitImport(c *gin.Context) {
	fabricID, err := fabricIDQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	var req models.CommitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.db.CommitImport(c.Request.Context(), fabricID, req.Aliases, req.Zones)
	if err != nil {
		h.logger.Error("import commit failed", "fabric_id", fabricID, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to commit import"})
		return
	}

	h.commits.Add(1)
	h.logger.Info("import committed",
		"fabric_id", fabricID,
		"session_id", req.SessionID,
		"aliases_created", res.AliasesCreated,
		"zones_created", res.ZonesCreated,
		"members_created", res.MembersCreated,
		"skipped", res.Skipped,
	)

	c.JSON(http.StatusOK, models.CommitResponse{
		SessionID:      req.SessionID,
		AliasesCreated: res.AliasesCreated,
		ZonesCreated:   res.ZonesCreated,
		MembersCreated: res.MembersCreated,
		Skipped:        res.Skipped,
	})
}

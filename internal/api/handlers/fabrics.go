package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jkoelman/zonewise/internal/api/models"
)

func fabricIDParam(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, errors.New("fabric id must be a positive integer")
	}
	return id, nil
}

// ListAliases godoc
// @Summary List stored aliases of a fabric
// @Tags fabrics
// @Produce json
// @Param id path int true "Fabric ID"
// @Success 200 {object} models.AliasListResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /fabrics/{id}/aliases [get]
func (h *Handler) ListAliases(c *gin.Context) {
	fabricID, err := fabricIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	aliases, err := h.db.ExistingAliases(c.Request.Context(), fabricID)
	if err != nil {
		h.logger.Error("failed to list aliases", "fabric_id", fabricID, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list aliases"})
		return
	}

	c.JSON(http.StatusOK, models.AliasListResponse{
		FabricID: fabricID,
		Aliases:  aliases,
		Count:    len(aliases),
	})
}

// ListZones godoc
// @Summary List stored zones of a fabric
// @Tags fabrics
// @Produce json
// @Param id path int true "Fabric ID"
// @Success 200 {object} models.ZoneListResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /fabrics/{id}/zones [get]
func (h *Handler) ListZones(c *gin.Context) {
	fabricID, err := fabricIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	zones, err := h.db.ZonesForFabric(c.Request.Context(), fabricID)
	if err != nil {
		h.logger.Error("failed to list zones", "fabric_id", fabricID, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list zones"})
		return
	}

	resp := models.ZoneListResponse{FabricID: fabricID, Zones: make([]models.ZoneSummary, 0, len(zones))}
	for _, z := range zones {
		resp.Zones = append(resp.Zones, models.ZoneSummary{
			ID:          z.ID,
			Name:        z.Name,
			VSAN:        z.VSAN,
			ZoneType:    z.ZoneType,
			MemberCount: z.MemberCount,
		})
	}
	resp.Count = len(resp.Zones)

	c.JSON(http.StatusOK, resp)
}

package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jkoelman/zonewise/internal/api/models"
	"github.com/jkoelman/zonewise/internal/importer"
)

// ListPrefixRules godoc
// @Summary List WWPN prefix rules
// @Description Returns the prefix rules used by smart WWPN type detection
// @Tags prefix-rules
// @Produce json
// @Success 200 {object} models.PrefixRuleListResponse
// @Failure 500 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /prefix-rules [get]
func (h *Handler) ListPrefixRules(c *gin.Context) {
	rules, err := h.db.WwpnPrefixRules(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list prefix rules", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list prefix rules"})
		return
	}

	resp := models.PrefixRuleListResponse{Rules: make([]models.PrefixRuleResponse, 0, len(rules))}
	for _, r := range rules {
		resp.Rules = append(resp.Rules, models.PrefixRuleResponse{
			Prefix: r.Prefix,
			Use:    string(r.Use),
			Vendor: r.Vendor,
		})
	}
	resp.Count = len(resp.Rules)

	c.JSON(http.StatusOK, resp)
}

// AddPrefixRule godoc
// @Summary Add a WWPN prefix rule
// @Description Adds or updates a prefix rule. The prefix is the leftmost four hex digits of a WWPN.
// @Tags prefix-rules
// @Accept json
// @Produce json
// @Param rule body models.PrefixRuleRequest true "Rule to add"
// @Success 200 {object} models.StatusResponse
// @Failure 400 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /prefix-rules [post]
func (h *Handler) AddPrefixRule(c *gin.Context) {
	var req models.PrefixRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	rule := importer.PrefixRule{
		Prefix: strings.ToLower(req.Prefix),
		Use:    importer.AliasUse(strings.ToLower(req.Use)),
		Vendor: req.Vendor,
	}
	if err := h.db.AddPrefixRule(c.Request.Context(), rule); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	h.logger.Info("prefix rule added", "prefix", rule.Prefix, "use", rule.Use)
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}

// DeletePrefixRule godoc
// @Summary Delete a WWPN prefix rule
// @Tags prefix-rules
// @Produce json
// @Param prefix path string true "Prefix to delete"
// @Success 200 {object} models.StatusResponse
// @Failure 404 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /prefix-rules/{prefix} [delete]
func (h *Handler) DeletePrefixRule(c *gin.Context) {
	prefix := c.Param("prefix")
	if err := h.db.DeletePrefixRule(c.Request.Context(), prefix); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: err.Error()})
		return
	}

	h.logger.Info("prefix rule deleted", "prefix", prefix)
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}

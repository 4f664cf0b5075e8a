package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/jkoelman/zonewise/internal/api/handlers"
	"github.com/jkoelman/zonewise/internal/api/middleware"
	"github.com/jkoelman/zonewise/internal/config"

	_ "github.com/jkoelman/zonewise/internal/api/docs" // swagger docs
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, cfg *config.Config) {
	// Swagger UI at /swagger/*
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	// Optional API key protection.
	if cfg != nil && cfg.Server.APIKey != "" {
		api.Use(middleware.RequireAPIKey(cfg.Server.APIKey))
	}

	api.GET("/health", h.Health)
	api.GET("/stats", h.Stats)

	api.POST("/imports", h.RunImport)
	api.POST("/imports/commit", h.CommitImport)

	api.GET("/prefix-rules", h.ListPrefixRules)
	api.POST("/prefix-rules", h.AddPrefixRule)
	api.DELETE("/prefix-rules/:prefix", h.DeletePrefixRule)

	api.GET("/fabrics/:id/aliases", h.ListAliases)
	api.GET("/fabrics/:id/zones", h.ListZones)
}

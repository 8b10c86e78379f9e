package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Записи инцидентов: чтение открыто, создание по API-ключу
	incidents := api.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.POST("", APIKeyAuthMiddleware(h.cfg, h.logger), h.createIncident)
	}

	// Карта
	api.GET("/views", h.listViews)
	api.GET("/views/:name/overlays", h.viewOverlays)
	api.POST("/overlays/preview", h.previewOverlays)
	api.POST("/location/validate", h.validateLocation)

	// Публичные формы ограничены по частоте
	limited := h.limiter.Middleware(h.logger)

	complaints := api.Group("/complaints")
	{
		complaints.GET("", h.listComplaints)
		complaints.POST("", limited, h.submitComplaint)
	}

	auth := api.Group("/auth", limited)
	{
		auth.POST("/signup", h.signUp)
		auth.POST("/signin", h.signIn)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}

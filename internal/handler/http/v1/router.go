package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Форма сообщения о происшествии
	reports := api.Group("/reports")
	{
		reports.GET("/types", h.listIncidentTypes)

		sessions := reports.Group("/sessions")
		sessions.POST("", h.createSession)
		sessions.GET("/:id", h.getSession)
		sessions.PATCH("/:id", h.updateSession)
		sessions.DELETE("/:id", h.deleteSession)
		sessions.POST("/:id/location", h.captureLocation)
		sessions.POST("/:id/photo", h.attachPhoto)
		sessions.DELETE("/:id/photo", h.removePhoto)
		sessions.POST("/:id/submit", SubmitRateLimiter(h.cfg), h.submitReport)
		sessions.POST("/:id/reset", h.resetSession)
		sessions.GET("/:id/notices", h.drainNotices)
		sessions.GET("/:id/stream", h.streamSession)
	}

	// Данные страниц портала
	portal := api.Group("/portal")
	{
		portal.GET("/landing", h.getLanding)
		portal.GET("/map", h.getLiveMap)
		portal.GET("/map/geojson", h.getMapGeoJSON)
		portal.GET("/predictions", h.getPredictions)
		portal.GET("/resources", h.getResources)
		portal.GET("/emergency", h.getEmergencyContacts)
	}

	// Панель администратора
	admin := api.Group("/admin", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		admin.GET("/dashboard", h.getDashboard)
		admin.GET("/reports/export", h.exportReports)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}

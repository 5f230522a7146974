package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)

	keyed := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))

	// Публичные маршруты: кампусы и сессия
	keyed.GET("/campuses", h.listCampuses)
	sessions := keyed.Group("/session")
	{
		sessions.GET("", h.getSession)
		sessions.POST("/register", h.register)
		sessions.POST("/login", h.login)
		sessions.POST("/logout", h.logout)
	}

	authed := keyed.Group("", SessionRequiredMiddleware(h.portal, h.logger))

	incidents := authed.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.POST("", h.reportIncident)
		incidents.POST("/refresh", h.refreshIncidents)
		incidents.GET("/:id", h.getIncident)
	}

	notices := authed.Group("/notices")
	{
		notices.GET("", h.listNotices)
		notices.POST("/refresh", h.refreshNotices)
		notices.GET("/:slug", h.getNotice)
	}

	authed.POST("/feedback", h.submitFeedback)
}

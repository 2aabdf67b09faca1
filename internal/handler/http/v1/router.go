package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	auth := JWTAuthMiddleware(h.cfg.JWTSecret, h.logger)

	// Прием инцидентов
	incidents := api.Group("/incidents", auth)
	{
		incidents.POST("/upload-photo", h.uploadPhoto)
		incidents.POST("/create", h.createIncident)
		incidents.GET("/:id", h.getIncident)
	}

	// Тепловые карты доступны только сотрудникам муниципалитета
	geospatial := api.Group("/geospatial", auth, RequireRole(h.userService, RoleMunicipalityStaff, h.logger))
	{
		geospatial.POST("/heatmap", h.createHeatmap)
		geospatial.GET("/heatmap/:id", h.getHeatmap)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}

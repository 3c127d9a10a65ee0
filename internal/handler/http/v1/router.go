package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Регистрация и вход доступны без токена
	auth := api.Group("/auth")
	{
		auth.POST("/signup", h.signUp)
		auth.POST("/login", h.logIn)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)

	// Все остальное - только с Bearer-токеном
	protected := api.Group("")
	protected.Use(JWTAuthMiddleware(h.cfg, h.logger))
	{
		users := protected.Group("/users")
		{
			users.GET("/me", h.getProfile)
			users.PUT("/me", h.updateProfile)
		}

		incidents := protected.Group("/incidents")
		{
			incidents.POST("", h.createIncident)
			incidents.GET("", h.listIncidents)
			incidents.GET("/sos", h.listSOSAlerts)
			incidents.GET("/:id", h.getIncident)
			incidents.PUT("/:id", h.updateIncident)
			incidents.DELETE("/:id", h.deleteIncident)
			incidents.POST("/:id/resolve", h.resolveSOS)
		}

		warnings := protected.Group("/warnings")
		{
			warnings.POST("", h.createWarning)
			warnings.GET("", h.listWarnings)
			warnings.GET("/active", h.listActiveWarnings)
			warnings.POST("/:id/resolve", h.resolveWarning)
		}

		weather := protected.Group("/weather")
		{
			weather.GET("", h.getCurrentWeather)
			weather.GET("/forecast", h.getForecast)
		}
	}
}

package routes

import (
	"aegis_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты приложения
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.Auth.RegisterRoutes(api)
		appHandlers.Service.RegisterRoutes(api)
		appHandlers.Booking.RegisterRoutes(api)
		appHandlers.Appointment.RegisterRoutes(api)
		appHandlers.Lead.RegisterRoutes(api)
	}
}

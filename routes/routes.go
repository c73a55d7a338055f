package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"medassist/config"
	"medassist/handlers"
	"medassist/middleware"
)

// RegisterChatRoutes registers the conversational endpoint.
func RegisterChatRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.POST("/chat", handlers.HandleChat)
	}
}

// RegisterAppointmentRoutes registers the appointment REST surface.
func RegisterAppointmentRoutes(r *gin.Engine) {
	api := r.Group("/api/appointments")
	{
		api.GET("", handlers.ListAppointments)
		api.PUT("/:id/cancel", handlers.CancelAppointment)
	}
}

// RegisterAdminRoutes registers maintenance endpoints.
func RegisterAdminRoutes(r *gin.Engine) {
	api := r.Group("/api/admin")
	{
		api.POST("/reindex", handlers.Reindex)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm your Health and Pharmacy Assistant"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterChatRoutes(r)
	RegisterAppointmentRoutes(r)
	RegisterAdminRoutes(r)
	RegisterHealthRoute(r)
}

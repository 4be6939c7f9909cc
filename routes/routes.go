package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agroregistros/tratativas-backend/controllers"
	"github.com/agroregistros/tratativas-backend/middleware"
)

func SetupRouter(r *gin.Engine, db *gorm.DB) *gin.Engine {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")
	api.Use(middleware.DBMiddleware(db))

	tratativa := api.Group("/tratativa")
	{
		tratativa.POST("/test-connection", controllers.TestConnection)
		tratativa.POST("/generate", controllers.GerarTratativa)
		tratativa.POST("/create", controllers.CriarTratativa)
		tratativa.GET("/list", controllers.ListarTratativas)
		tratativa.GET("/:id", controllers.ObterTratativa)
		tratativa.PATCH("/:id/devolver", controllers.DevolverTratativa)
	}

	aso := api.Group("/aso")
	{
		aso.POST("/generate-from-booking/:id", controllers.GerarASODeBooking)
		aso.POST("/generate-unified", controllers.GerarASOUnificado)
	}

	return r
}

package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agroregistros/tratativas-backend/config"
)

func HealthCheck(c *gin.Context) {
	db := config.DB

	response := gin.H{
		"status":    "ok",
		"message":   "Service is healthy",
		"timestamp": time.Now().Unix(),
		"db":        "ok",
	}

	// Tenta pingar o banco
	sqlDB, err := db.DB()
	if err != nil {
		response["db"] = "error: cannot get DB instance"
		response["status"] = "degraded"
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	if err := sqlDB.Ping(); err != nil {
		response["db"] = "error: cannot connect to DB"
		response["status"] = "degraded"
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, response)
}

// TestConnection ecoa a origem da requisição, usado pelo frontend para
// validar conectividade antes de enviar um documento.
func TestConnection(c *gin.Context) {
	origem := c.GetHeader("Origin")
	if origem == "" {
		origem = c.GetHeader("Referer")
	}
	if origem == "" {
		origem = "Origem desconhecida"
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Conexão estabelecida com sucesso",
		"ip":        c.ClientIP(),
		"origin":    origem,
		"userAgent": c.GetHeader("User-Agent"),
	})
}

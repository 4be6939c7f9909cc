package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/agroregistros/tratativas-backend/config"
	"github.com/agroregistros/tratativas-backend/routes"
	"github.com/agroregistros/tratativas-backend/utils"
)

func main() {
	// Carrega .env
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado")
	}

	config.InitDB()

	r := gin.Default()

	// CORS aberto: o frontend chama a API de origens variadas
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	r = routes.SetupRouter(r, config.DB)

	// Limpeza periódica dos rascunhos de unificação
	utils.StartCleanupJob()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Println("Server running at Port:" + port)
	r.Run(":" + port)
}

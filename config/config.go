package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/agroregistros/tratativas-backend/models"
)

var DB *gorm.DB

func InitDB() {
	// Lê as credenciais das variáveis de ambiente
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	// DSN para PostgreSQL
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=America/Sao_Paulo",
		dbHost, dbUser, dbPass, dbName, dbPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Não foi possível conectar ao banco:", err)
	}

	DB = db

	// Pega o *sql.DB para configurar o pool de conexões
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Não foi possível obter sql.DB do gorm:", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	err = DB.AutoMigrate(
		&models.Tratativa{},
		&models.Booking{},
		&models.ExameNecessario{},
		&models.Risco{},
	)
	if err != nil {
		log.Fatal("erro no autoMigrate: ", err)
	}
	log.Println("PostgreSQL conectado e migrado com sucesso!")
}

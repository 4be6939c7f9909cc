package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agroregistros/tratativas-backend/config"
	"github.com/agroregistros/tratativas-backend/models"
	"github.com/agroregistros/tratativas-backend/services"
	"github.com/agroregistros/tratativas-backend/utils"
)

func asoPipeline(db *gorm.DB) *services.ASOPipeline {
	store := utils.NewSupabaseStore(os.Getenv("SUPABASE_BUCKET_NAME"))
	linker := services.NewBookingLinker(db)
	return &services.ASOPipeline{
		Renderer:     renderer,
		Rasterizador: services.NewRasterizer(),
		Exames:       services.NewExameLookup(db),
		Uploader:     services.NewUploader(store, linker),
		Linker:       linker,
	}
}

// GerarASODeBooking gera o certificado de um agendamento específico.
func GerarASODeBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondeErro(c, http.StatusBadRequest, "ID de booking inválido", err)
		return
	}

	log.Printf("[ASO] Iniciando geração de PDF para booking: %s", id)

	var booking models.Booking
	if err := config.DB.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondeErro(c, http.StatusInternalServerError, "Erro ao gerar PDF", services.ErrBookingNaoEncontrado)
			return
		}
		respondeErro(c, http.StatusInternalServerError, "Erro ao buscar booking", err)
		return
	}

	url, err := asoPipeline(config.DB).GerarDeBooking(c.Request.Context(), booking)
	if err != nil {
		respondeErro(c, http.StatusInternalServerError, "Erro ao gerar PDF", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "PDF gerado e armazenado com sucesso",
		"url":     url,
	})
}

type unificadoRequest struct {
	BookingIDs []string `json:"bookingIds"`
	Filters    struct {
		Clinica string `json:"clinica"`
	} `json:"filters"`
}

// GerarASOUnificado resolve os ASOs faltantes, unifica todos num único
// PDF e sobe o resultado sob o prefixo de unificados.
func GerarASOUnificado(c *gin.Context) {
	var req unificadoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondeErro(c, http.StatusBadRequest, "Body inválido. Envie os dados em JSON com Content-Type: application/json", err)
		return
	}
	if len(req.BookingIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "É necessário fornecer ao menos um ID de agendamento",
		})
		return
	}

	ids := make([]uuid.UUID, 0, len(req.BookingIDs))
	for _, s := range req.BookingIDs {
		id, err := uuid.Parse(s)
		if err != nil {
			respondeErro(c, http.StatusBadRequest, "ID de booking inválido: "+s, err)
			return
		}
		ids = append(ids, id)
	}

	db := c.MustGet("db").(*gorm.DB)
	log.Printf("[Unificado] Iniciando geração de ASO unificado para %d booking(s)", len(ids))

	agrupamento := req.Filters.Clinica
	if agrupamento == "" {
		agrupamento = "AGENDAMENTOS"
	}

	pipeline := asoPipeline(db)
	unificador := &services.Unificador{
		Bookings: services.NewBookingRepo(db),
		Gerador:  pipeline,
		Merger:   services.NewMerger(),
		Uploader: pipeline.Uploader,
	}

	resultado, err := unificador.GerarUnificado(c.Request.Context(), ids, agrupamento)
	if err != nil {
		respondeErro(c, http.StatusInternalServerError, "Erro ao gerar ASO unificado", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "ASO unificado gerado com sucesso",
		"url":       resultado.URL,
		"total":     resultado.Total,
		"generated": resultado.Gerados,
		"existing":  resultado.Existentes,
	})
}

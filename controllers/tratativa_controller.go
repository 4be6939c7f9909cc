package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agroregistros/tratativas-backend/config"
	"github.com/agroregistros/tratativas-backend/models"
	"github.com/agroregistros/tratativas-backend/services"
	"github.com/agroregistros/tratativas-backend/utils"
)

// renderer é compartilhado entre os handlers para a logo ser lida uma
// única vez por processo.
var renderer = services.NewTemplateRenderer()

func tratativaPipeline(db *gorm.DB) *services.TratativaPipeline {
	store := utils.NewSupabaseStore(os.Getenv("SUPABASE_TRATATIVAS_BUCKET_NAME"))
	return &services.TratativaPipeline{
		Renderer:     renderer,
		Rasterizador: services.NewRasterizer(),
		Uploader:     services.NewUploader(store, services.NewTratativaLinker(db)),
	}
}

func respondeErro(c *gin.Context, status int, mensagem string, err error) {
	c.JSON(status, gin.H{
		"success": false,
		"message": mensagem,
		"error":   err.Error(),
	})
}

// GerarTratativa gera o PDF de uma tratativa sem criar registro novo.
func GerarTratativa(c *gin.Context) {
	var doc services.DocumentoTratativa
	if err := c.ShouldBindJSON(&doc); err != nil {
		respondeErro(c, http.StatusBadRequest, "Body inválido. Envie os dados em JSON com Content-Type: application/json", err)
		return
	}
	if err := doc.Validar(); err != nil {
		respondeErro(c, http.StatusBadRequest, "Dados incompletos. É necessário fornecer: número do documento, nome do funcionário, data, código da infração, descrição da infração, penalidade e líder", err)
		return
	}

	log.Printf("[Geração de PDF] Solicitação recebida, documento: %s", doc.NumeroDocumento)

	url, err := tratativaPipeline(config.DB).Gerar(c.Request.Context(), &doc)
	if err != nil {
		respondeErro(c, http.StatusInternalServerError, "Erro ao gerar documento de tratativa", err)
		return
	}

	log.Printf("[Geração de PDF] Link do documento: %s", url)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Documento de tratativa gerado com sucesso",
		"url":     url,
	})
}

// CriarTratativa cria o registro com status ENVIADA, gera o documento e
// grava a URL resultante no registro.
func CriarTratativa(c *gin.Context) {
	var doc services.DocumentoTratativa
	if err := c.ShouldBindJSON(&doc); err != nil {
		respondeErro(c, http.StatusBadRequest, "Body inválido. Envie os dados em JSON com Content-Type: application/json", err)
		return
	}
	if err := doc.Validar(); err != nil {
		respondeErro(c, http.StatusBadRequest, "Dados incompletos. É necessário fornecer: número do documento, nome do funcionário, data, código da infração, descrição da infração, penalidade e líder", err)
		return
	}

	db := c.MustGet("db").(*gorm.DB)
	log.Printf("[Tratativa] Iniciando criação de tratativa: %s", doc.NumeroDocumento)

	// Normaliza a data antes do insert; o banco guarda ISO.
	if datas := services.ProcessarDataOcorrencia(doc.DataInfracao, doc.HoraInfracao); datas.ISO != "" {
		doc.DataInfracao = datas.ISO
	}

	tratativa := models.Tratativa{
		NumeroDocumento:    doc.NumeroDocumento,
		NomeFuncionario:    doc.NomeFuncionario,
		Funcao:             doc.Funcao,
		Setor:              doc.Setor,
		Cpf:                doc.Cpf,
		DataInfracao:       doc.DataInfracao,
		HoraInfracao:       doc.HoraInfracao,
		CodigoInfracao:     doc.CodigoInfracao,
		InfracaoCometida:   doc.InfracaoCometida,
		PenalidadeAplicada: doc.PenalidadeAplicada,
		NomeLider:          doc.NomeLider,
		TextoInfracao:      doc.TextoInfracao,
		TextoLimite:        doc.TextoLimite,
		Metrica:            doc.Metrica,
		ValorPraticado:     doc.ValorPraticado,
		ValorLimite:        doc.ValorLimite,
		Status:             "ENVIADA",
		Mock:               doc.Mock,
	}
	if err := db.Create(&tratativa).Error; err != nil {
		respondeErro(c, http.StatusInternalServerError, "Erro ao criar registro de tratativa", err)
		return
	}
	log.Printf("[Tratativa] Registro criado com ID: %s", tratativa.ID)

	url, err := tratativaPipeline(db).Gerar(c.Request.Context(), &doc)
	if err != nil {
		respondeErro(c, http.StatusInternalServerError, "Erro ao criar tratativa e gerar documento", err)
		return
	}

	if err := services.NewTratativaLinker(db).Anexar(tratativa.ID, url); err != nil {
		respondeErro(c, http.StatusInternalServerError, "Erro ao atualizar registro com URL do documento", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Tratativa criada e documento gerado com sucesso",
		"tratativa_id": tratativa.ID,
		"url":          url,
	})
}

// ListarTratativas devolve todas as tratativas, mais recentes primeiro.
func ListarTratativas(c *gin.Context) {
	var tratativas []models.Tratativa
	if err := config.DB.Order("created_at DESC").Find(&tratativas).Error; err != nil {
		respondeErro(c, http.StatusInternalServerError, "Erro ao listar tratativas", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Tratativas listadas com sucesso",
		"tratativas": tratativas,
	})
}

// ObterTratativa devolve uma tratativa pelo id.
func ObterTratativa(c *gin.Context) {
	id := c.Param("id")

	var tratativa models.Tratativa
	if err := config.DB.First(&tratativa, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Tratativa não encontrada",
			})
			return
		}
		respondeErro(c, http.StatusInternalServerError, "Erro ao buscar tratativa", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Tratativa encontrada",
		"tratativa": tratativa,
	})
}

// DevolverTratativa marca a tratativa como DEVOLVIDA e registra o momento
// da devolução.
func DevolverTratativa(c *gin.Context) {
	id := c.Param("id")
	agora := time.Now()

	res := config.DB.Model(&models.Tratativa{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":         "DEVOLVIDA",
			"data_devolvida": &agora,
		})
	if res.Error != nil {
		respondeErro(c, http.StatusInternalServerError, "Erro ao devolver tratativa", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Tratativa não encontrada",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Tratativa devolvida com sucesso",
	})
}

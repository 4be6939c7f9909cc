package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agroregistros/tratativas-backend/models"
)

// BookingRepo abstrai a busca de agendamentos por id.
type BookingRepo interface {
	PorIDs(ids []uuid.UUID) ([]models.Booking, error)
}

type gormBookingRepo struct {
	db *gorm.DB
}

func NewBookingRepo(db *gorm.DB) BookingRepo {
	return &gormBookingRepo{db: db}
}

func (r *gormBookingRepo) PorIDs(ids []uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Where("id IN ?", ids).Find(&bookings).Error
	return bookings, err
}

type geradorASO interface {
	GerarDeBooking(ctx context.Context, booking models.Booking) (string, error)
}

type unificadorPDF interface {
	Unificar(ctx context.Context, urls []string) ([]byte, error)
}

type enviadorPDF interface {
	Enviar(pdf []byte, chave string) (string, error)
}

// ResultadoUnificado resume a geração de um documento unificado.
type ResultadoUnificado struct {
	URL        string
	Total      int
	Gerados    int
	Existentes int
}

// Unificador coordena o caminho em lote: resolve os ASOs faltantes pelo
// pipeline individual, unifica tudo num PDF e sobe o resultado sob a
// chave unificada.
type Unificador struct {
	Bookings BookingRepo
	Gerador  geradorASO
	Merger   unificadorPDF
	Uploader enviadorPDF
}

// GerarUnificado gera o documento combinado dos bookings informados.
// A ordem das URLs é estável: primeiro os documentos já existentes,
// depois os recém-gerados, cada grupo na ordem dos ids de entrada. A
// geração dos faltantes é sequencial de propósito: um navegador por vez
// limita o consumo de recursos do host. Qualquer falha individual aborta
// o lote inteiro — um unificado sem um dos membros é um documento errado,
// não um resultado degradado.
func (u *Unificador) GerarUnificado(ctx context.Context, ids []uuid.UUID, agrupamento string) (ResultadoUnificado, error) {
	var resultado ResultadoUnificado
	if len(ids) == 0 {
		return resultado, ErrDadosIncompletos
	}

	bookings, err := u.Bookings.PorIDs(ids)
	if err != nil {
		return resultado, fmt.Errorf("erro ao buscar bookings: %w", err)
	}

	// Reordena pela lista de entrada; o banco não garante ordem.
	porID := make(map[uuid.UUID]models.Booking, len(bookings))
	for _, b := range bookings {
		porID[b.ID] = b
	}

	var existentes []string
	var faltantes []models.Booking
	for _, id := range ids {
		b, ok := porID[id]
		if !ok {
			return resultado, fmt.Errorf("%w: %s", ErrBookingNaoEncontrado, id)
		}
		if b.AsoURL != "" {
			existentes = append(existentes, b.AsoURL)
		} else {
			faltantes = append(faltantes, b)
		}
	}
	log.Printf("[Unificado] ASOs existentes: %d, faltantes: %d", len(existentes), len(faltantes))

	gerados := make([]string, 0, len(faltantes))
	for _, b := range faltantes {
		url, err := u.Gerador.GerarDeBooking(ctx, b)
		if err != nil {
			return resultado, fmt.Errorf("erro ao gerar ASO do booking %s: %w", b.ID, err)
		}
		gerados = append(gerados, url)
	}

	todas := append(existentes, gerados...)
	log.Printf("[Unificado] Unificando %d documento(s)", len(todas))
	pdf, err := u.Merger.Unificar(ctx, todas)
	if err != nil {
		return resultado, err
	}

	chave := NomeArquivoUnificado(agrupamento, time.Now().Format("2006-01-02"))
	url, err := u.Uploader.Enviar(pdf, chave)
	if err != nil {
		return resultado, err
	}

	return ResultadoUnificado{
		URL:        url,
		Total:      len(ids),
		Gerados:    len(gerados),
		Existentes: len(existentes),
	}, nil
}

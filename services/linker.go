package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agroregistros/tratativas-backend/models"
)

// RecordLinker associa URLs de documentos gerados aos registros donos.
// Revincular um registro já correto é efetivamente um no-op.
type RecordLinker interface {
	VinculadosA(url string) ([]uuid.UUID, error)
	RevincularIDs(ids []uuid.UUID, novaURL string) (int64, error)
	Anexar(id uuid.UUID, url string) error
}

type gormLinker struct {
	db     *gorm.DB
	modelo any
	campo  string
}

// NewTratativaLinker vincula URLs ao campo documento_url de tratativas.
func NewTratativaLinker(db *gorm.DB) RecordLinker {
	return &gormLinker{db: db, modelo: &models.Tratativa{}, campo: "documento_url"}
}

// NewBookingLinker vincula URLs ao campo aso_url de bookings.
func NewBookingLinker(db *gorm.DB) RecordLinker {
	return &gormLinker{db: db, modelo: &models.Booking{}, campo: "aso_url"}
}

func (l *gormLinker) VinculadosA(url string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := l.db.Model(l.modelo).Where(l.campo+" = ?", url).Pluck("id", &ids).Error
	return ids, err
}

func (l *gormLinker) RevincularIDs(ids []uuid.UUID, novaURL string) (int64, error) {
	res := l.db.Model(l.modelo).Where("id IN ?", ids).Update(l.campo, novaURL)
	return res.RowsAffected, res.Error
}

func (l *gormLinker) Anexar(id uuid.UUID, url string) error {
	return l.db.Model(l.modelo).Where("id = ?", id).Update(l.campo, url).Error
}

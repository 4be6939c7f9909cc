package models

import (
	"time"

	"github.com/google/uuid"
)

// Booking é um agendamento de exame ocupacional. O pipeline só escreve
// no campo AsoURL; o restante do ciclo de vida pertence ao agendador.
type Booking struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Nome            string    `gorm:"size:255;not null" json:"nome"`
	Cpf             string    `gorm:"size:14" json:"cpf"`
	DataNasc        string    `gorm:"size:10" json:"data_nasc"` // ISO yyyy-mm-dd
	Funcao          string    `gorm:"size:255" json:"funcao"`
	Setor           string    `gorm:"size:255" json:"setor"`
	Empresa         string    `gorm:"size:255" json:"empresa"`
	Natureza        string    `gorm:"size:100" json:"natureza"` // ADMISSIONAL, PERIODICO, ...
	Clinica         string    `gorm:"type:text" json:"clinica"` // "NOME ... TELEFONE: ..."
	DataAgendamento string    `gorm:"size:10" json:"data_agendamento"`
	AsoURL          string    `gorm:"type:text;index" json:"aso_url"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

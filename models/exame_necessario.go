package models

import "github.com/google/uuid"

// ExameNecessario relaciona (funcao, natureza) aos exames exigidos.
type ExameNecessario struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Funcao   string    `gorm:"size:255;not null;index:idx_exame_funcao_natureza" json:"funcao"`
	Natureza string    `gorm:"size:100;not null;index:idx_exame_funcao_natureza" json:"natureza"`
	Exame    string    `gorm:"size:255;not null" json:"exame"`
	Codigo   string    `gorm:"size:30" json:"codigo"`
	Valor    float64   `json:"valor"`
}

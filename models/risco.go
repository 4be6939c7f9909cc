package models

import "github.com/google/uuid"

// Risco é o perfil de riscos ocupacionais de uma função. A função é
// armazenada em maiúsculas e sem espaços nas pontas.
type Risco struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Funcao     string    `gorm:"size:255;not null;uniqueIndex" json:"funcao"`
	Fisico     string    `gorm:"type:text" json:"fisico"`
	Quimico    string    `gorm:"type:text" json:"quimico"`
	Ergonomico string    `gorm:"type:text" json:"ergonomico"`
	Acidente   string    `gorm:"type:text" json:"acidente"`
	Biologico  string    `gorm:"type:text" json:"biologico"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

type Tratativa struct {
	ID                 uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	NumeroDocumento    string     `gorm:"size:50;not null;index" json:"numero_documento"`
	NomeFuncionario    string     `gorm:"size:255;not null" json:"nome_funcionario"`
	Funcao             string     `gorm:"size:255" json:"funcao"`
	Setor              string     `gorm:"size:255" json:"setor"`
	Cpf                string     `gorm:"size:14" json:"cpf"`
	DataInfracao       string     `gorm:"size:10" json:"data_infracao"` // ISO yyyy-mm-dd
	HoraInfracao       string     `gorm:"size:5" json:"hora_infracao"`  // HH:MM
	CodigoInfracao     string     `gorm:"size:20" json:"codigo_infracao"`
	InfracaoCometida   string     `gorm:"type:text" json:"infracao_cometida"`
	PenalidadeAplicada string     `gorm:"size:255" json:"penalidade_aplicada"`
	NomeLider          string     `gorm:"size:255" json:"nome_lider"`
	TextoInfracao      string     `gorm:"type:text" json:"texto_infracao"`
	TextoLimite        string     `gorm:"type:text" json:"texto_limite"`
	Metrica            string     `gorm:"size:30" json:"metrica"`
	ValorPraticado     string     `gorm:"size:30" json:"valor_praticado"`
	ValorLimite        string     `gorm:"size:30" json:"valor_limite"`
	DocumentoURL       string     `gorm:"type:text;index" json:"documento_url"`
	Status             string     `gorm:"size:20;default:'ENVIADA'" json:"status"` // ENVIADA | DEVOLVIDA | CANCELADA
	DataDevolvida      *time.Time `json:"data_devolvida"`
	Mock               bool       `gorm:"default:false" json:"mock"`
	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

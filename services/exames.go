package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/agroregistros/tratativas-backend/models"
)

// RiscoNaoEncontrado é o valor exibido no documento quando a função não
// possui perfil de riscos cadastrado. Nunca deixamos o campo em branco.
const RiscoNaoEncontrado = "NA"

// ExameRepo abstrai as consultas às tabelas exames_necessarios e riscos.
type ExameRepo interface {
	ExamesPorFuncao(funcao, natureza string) ([]models.ExameNecessario, error)
	RiscoPorFuncao(funcao string) (*models.Risco, error)
}

type gormExameRepo struct {
	db *gorm.DB
}

func (r *gormExameRepo) ExamesPorFuncao(funcao, natureza string) ([]models.ExameNecessario, error) {
	var exames []models.ExameNecessario
	err := r.db.Where("funcao = ? AND natureza = ?", funcao, natureza).Find(&exames).Error
	return exames, err
}

func (r *gormExameRepo) RiscoPorFuncao(funcao string) (*models.Risco, error) {
	var risco models.Risco
	err := r.db.Where("funcao = ?", funcao).First(&risco).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &risco, nil
}

// ExamesRiscos é o resultado consolidado das duas consultas.
type ExamesRiscos struct {
	Exames          []string // "CODIGO - EXAME"
	CustoTotal      float64
	RiscoFisico     string
	RiscoQuimico    string
	RiscoErgonomico string
	RiscoAcidente   string
	RiscoBiologico  string
}

// ExameLookup resolve exames exigidos e riscos ocupacionais de uma função.
type ExameLookup struct {
	repo ExameRepo
}

func NewExameLookup(db *gorm.DB) *ExameLookup {
	return &ExameLookup{repo: &gormExameRepo{db: db}}
}

func NewExameLookupComRepo(repo ExameRepo) *ExameLookup {
	return &ExameLookup{repo: repo}
}

// Buscar consulta exames por (funcao, natureza) e o perfil de riscos pela
// função em maiúsculas. As duas consultas são independentes: a ausência do
// perfil de riscos não descarta os exames já resolvidos — os cinco campos
// apenas recebem o sentinela RiscoNaoEncontrado.
func (l *ExameLookup) Buscar(funcao, natureza string) (ExamesRiscos, error) {
	resultado := ExamesRiscos{
		RiscoFisico:     RiscoNaoEncontrado,
		RiscoQuimico:    RiscoNaoEncontrado,
		RiscoErgonomico: RiscoNaoEncontrado,
		RiscoAcidente:   RiscoNaoEncontrado,
		RiscoBiologico:  RiscoNaoEncontrado,
	}

	exames, err := l.repo.ExamesPorFuncao(funcao, natureza)
	if err != nil {
		return resultado, fmt.Errorf("erro ao buscar exames: %w", err)
	}
	for _, e := range exames {
		resultado.Exames = append(resultado.Exames, fmt.Sprintf("%s - %s", e.Codigo, strings.ToUpper(e.Exame)))
		resultado.CustoTotal += e.Valor
	}

	risco, err := l.repo.RiscoPorFuncao(strings.ToUpper(strings.TrimSpace(funcao)))
	if err != nil {
		log.Printf("[Exames] Erro ao buscar riscos da função %q: %v", funcao, err)
		return resultado, nil
	}
	if risco == nil {
		log.Printf("[Exames] Função %q sem perfil de riscos cadastrado", funcao)
		return resultado, nil
	}

	resultado.RiscoFisico = valorOuSentinela(risco.Fisico)
	resultado.RiscoQuimico = valorOuSentinela(risco.Quimico)
	resultado.RiscoErgonomico = valorOuSentinela(risco.Ergonomico)
	resultado.RiscoAcidente = valorOuSentinela(risco.Acidente)
	resultado.RiscoBiologico = valorOuSentinela(risco.Biologico)
	return resultado, nil
}

func valorOuSentinela(v string) string {
	if strings.TrimSpace(v) == "" {
		return RiscoNaoEncontrado
	}
	return v
}

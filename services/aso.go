package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/agroregistros/tratativas-backend/models"
)

// ProcessarClinica separa o campo livre "NOME ... TELEFONE: ..." no par
// nome/endereço usado pelo certificado.
func ProcessarClinica(clinica string) ClinicaInfo {
	nome, telefone, achou := strings.Cut(clinica, "TELEFONE:")
	info := ClinicaInfo{Nome: strings.TrimSpace(nome)}
	if achou {
		info.Endereco = "TELEFONE:" + strings.TrimSpace(telefone)
	}
	return info
}

// ASOPipeline gera o certificado de exame ocupacional de um booking.
type ASOPipeline struct {
	Renderer     *TemplateRenderer
	Rasterizador *Rasterizer
	Exames       *ExameLookup
	Uploader     *Uploader
	Linker       RecordLinker
}

// GerarDeBooking roda o pipeline completo para um agendamento e grava a
// URL resultante no campo aso_url do registro.
func (p *ASOPipeline) GerarDeBooking(ctx context.Context, booking models.Booking) (string, error) {
	log.Printf("[ASO] Gerando documento para booking %s", booking.ID)

	examesRiscos, err := p.Exames.Buscar(booking.Funcao, booking.Natureza)
	if err != nil {
		return "", err
	}

	dataNascimento := booking.DataNasc
	if exibe, err := DataParaExibicao(booking.DataNasc); err == nil {
		dataNascimento = exibe
	}

	dados := &dadosTemplateASO{
		LogoSrc:         p.Renderer.logoDataURI(),
		NaturezaExame:   strings.ToUpper(booking.Natureza),
		Cpf:             booking.Cpf,
		Nome:            strings.ToUpper(booking.Nome),
		DataNascimento:  dataNascimento,
		Funcao:          strings.ToUpper(booking.Funcao),
		Setor:           strings.ToUpper(booking.Setor),
		Empresa:         strings.ToUpper(booking.Empresa),
		Exames:          examesRiscos.Exames,
		CustoTotal:      examesRiscos.CustoTotal,
		RiscoFisico:     examesRiscos.RiscoFisico,
		RiscoQuimico:    examesRiscos.RiscoQuimico,
		RiscoErgonomico: examesRiscos.RiscoErgonomico,
		RiscoAcidente:   examesRiscos.RiscoAcidente,
		RiscoBiologico:  examesRiscos.RiscoBiologico,
		Clinica:         ProcessarClinica(booking.Clinica),
		DataExame:       time.Now().Format("02/01/2006"),
	}

	html, err := p.Renderer.Renderizar("aso.html", "styles.css", dados)
	if err != nil {
		return "", err
	}

	pdf, err := p.Rasterizador.GerarPDF(ctx, html, OpcoesPagina{MargemMm: margemPadraoMm})
	if err != nil {
		return "", err
	}

	chave := NomeArquivoDocumento("", booking.Nome, booking.Natureza, booking.DataAgendamento)
	url, err := p.Uploader.Enviar(pdf, chave)
	if err != nil {
		return "", err
	}

	log.Printf("[ASO] Atualizando aso_url do booking %s", booking.ID)
	if err := p.Linker.Anexar(booking.ID, url); err != nil {
		return "", err
	}
	return url, nil
}

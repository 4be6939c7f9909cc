package services

import (
	"errors"
	"html/template"
)

// Erros do pipeline. Todos sobem até a borda HTTP como falha única, sem
// retentativa (cada chamada externa é feita exatamente uma vez).
var (
	ErrDadosIncompletos      = errors.New("dados incompletos")
	ErrRenderFalhou          = errors.New("falha ao renderizar template")
	ErrTimeoutRasterizacao   = errors.New("tempo esgotado ao rasterizar documento")
	ErrObjetoJaExiste        = errors.New("objeto já existe no storage")
	ErrBookingNaoEncontrado  = errors.New("booking não encontrado")
	ErrNenhumDocumentoUnir   = errors.New("nenhum documento para unificar")
	ErrDocumentoOrigemFalhou = errors.New("falha ao obter documento de origem")
)

// Evidencia é um anexo de imagem (URL pública ou data URI base64).
type Evidencia struct {
	URL string `json:"url"`
}

// DocumentoTratativa é a entrada do pipeline de tratativa, já desserializada
// pela camada de rotas. Os nomes JSON seguem o contrato do frontend.
type DocumentoTratativa struct {
	NumeroDocumento    string      `json:"numero_documento"`
	NomeFuncionario    string      `json:"nome_funcionario"`
	Funcao             string      `json:"funcao"`
	Setor              string      `json:"setor"`
	Cpf                string      `json:"cpf"`
	DataInfracao       string      `json:"data_infracao"` // ISO ou dd/mm/yyyy
	HoraInfracao       string      `json:"hora_infracao"`
	DataOcorrencia     string      `json:"data_ocorrencia"` // timestamp combinado opcional
	CodigoInfracao     string      `json:"codigo_infracao"`
	InfracaoCometida   string      `json:"infracao_cometida"`
	PenalidadeAplicada string      `json:"penalidade_aplicada"`
	Penalidade         string      `json:"penalidade"` // alias aceito do frontend
	NomeLider          string      `json:"nome_lider"`
	TextoInfracao      string      `json:"texto_infracao"`
	TextoLimite        string      `json:"texto_limite"`
	Metrica            string      `json:"metrica"`
	ValorPraticado     string      `json:"valor_praticado"`
	ValorLimite        string      `json:"valor_limite"`
	Evidencias         []Evidencia `json:"evidencias"`
	Mock               bool        `json:"mock"`
}

// Validar confere os campos obrigatórios antes de qualquer I/O.
func (d *DocumentoTratativa) Validar() error {
	if d.NumeroDocumento == "" || d.NomeFuncionario == "" || d.DataInfracao == "" ||
		d.CodigoInfracao == "" || d.InfracaoCometida == "" ||
		(d.PenalidadeAplicada == "" && d.Penalidade == "") || d.NomeLider == "" {
		return ErrDadosIncompletos
	}
	return nil
}

// dadosTemplateTratativa é o registro enriquecido entregue ao template.
// Construído por requisição e descartado após o render.
type dadosTemplateTratativa struct {
	DocumentoTratativa
	// template.URL impede o html/template de filtrar os data URIs.
	LogoSrc              template.URL
	EvidenciasSrc        []template.URL
	DataFormatada        string
	DataFormatadaExtenso string
	PenalidadeCodigo     string
	PenalidadeDescricao  string
}

// ClinicaInfo é o par nome/endereço extraído do campo livre de clínica.
type ClinicaInfo struct {
	Nome     string
	Endereco string
}

// dadosTemplateASO é o registro enriquecido do certificado de exame.
type dadosTemplateASO struct {
	LogoSrc         template.URL
	NaturezaExame   string
	Cpf             string
	Nome            string
	DataNascimento  string
	Funcao          string
	Setor           string
	Empresa         string
	Exames          []string
	CustoTotal      float64
	RiscoFisico     string
	RiscoQuimico    string
	RiscoErgonomico string
	RiscoAcidente   string
	RiscoBiologico  string
	Clinica         ClinicaInfo
	DataExame       string
}

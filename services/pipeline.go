package services

import (
	"context"
	"fmt"
	"html/template"
	"log"
)

// Margem padrão dos documentos, equivalente aos 25px usados no layout.
const margemPadraoMm = 6.6

// TratativaPipeline executa a geração completa de um documento de
// tratativa: enriquecimento, render, rasterização, nomeação e upload.
type TratativaPipeline struct {
	Renderer     *TemplateRenderer
	Rasterizador *Rasterizer
	Uploader     *Uploader
}

// Gerar roda o pipeline e devolve a URL pública do PDF. O doc é mutado
// com os campos normalizados (data ISO, penalidade composta, narrativas),
// prontos para persistência pelo chamador.
func (p *TratativaPipeline) Gerar(ctx context.Context, doc *DocumentoTratativa) (string, error) {
	if err := doc.Validar(); err != nil {
		return "", err
	}

	dados := p.prepararDados(doc)

	log.Printf("[Tratativa] Renderizando template do documento %s", doc.NumeroDocumento)
	html, err := p.Renderer.Renderizar("tratativa.html", "tratativa-styles.css", dados)
	if err != nil {
		return "", err
	}

	log.Printf("[Tratativa] Gerando PDF do documento %s", doc.NumeroDocumento)
	pdf, err := p.Rasterizador.GerarPDF(ctx, html, OpcoesPagina{MargemMm: margemPadraoMm})
	if err != nil {
		return "", err
	}

	chave := NomeArquivoDocumento(doc.NumeroDocumento, doc.NomeFuncionario, doc.Setor, doc.DataInfracao)
	log.Printf("[Tratativa] Enviando PDF para o storage: %s", chave)
	return p.Uploader.Enviar(pdf, chave)
}

// prepararDados normaliza o documento e monta o registro do template.
func (p *TratativaPipeline) prepararDados(doc *DocumentoTratativa) *dadosTemplateTratativa {
	pen := ResolverPenalidade(primeiroNaoVazio(doc.PenalidadeAplicada, doc.Penalidade))
	if pen.Codigo != "" {
		doc.PenalidadeAplicada = fmt.Sprintf("%s - %s", pen.Codigo, pen.Descricao)
	}

	datas := ProcessarDataOcorrencia(primeiroNaoVazio(doc.DataOcorrencia, doc.DataInfracao), doc.HoraInfracao)
	if datas.ISO != "" {
		doc.DataInfracao = datas.ISO
	}
	if datas.Hora != "" {
		doc.HoraInfracao = datas.Hora
	}

	// Narrativas de excedência de limite
	if doc.ValorLimite != "" || doc.ValorPraticado != "" {
		if doc.Metrica == "" {
			doc.Metrica = "unidade"
			log.Printf("[Alerta] Métrica não fornecida, usando %q como padrão", doc.Metrica)
		}
		if doc.ValorLimite != "" {
			doc.TextoLimite = fmt.Sprintf("Limite estabelecido: %s%s", doc.ValorLimite, doc.Metrica)
		}
		if doc.ValorLimite != "" && doc.ValorPraticado != "" {
			if doc.TextoInfracao == "" {
				doc.TextoInfracao = "Excedeu o limite estabelecido"
			}
			doc.TextoInfracao = fmt.Sprintf(
				"%s. Valor praticado de %s%s, excedendo o limite estabelecido de %s%s.",
				doc.TextoInfracao, doc.ValorPraticado, doc.Metrica, doc.ValorLimite, doc.Metrica)
		}
	}

	evidencias := make([]template.URL, 0, len(doc.Evidencias))
	for _, ev := range doc.Evidencias {
		if ev.URL != "" {
			evidencias = append(evidencias, template.URL(ev.URL))
		}
	}

	return &dadosTemplateTratativa{
		DocumentoTratativa:   *doc,
		LogoSrc:              p.Renderer.logoDataURI(),
		EvidenciasSrc:        evidencias,
		DataFormatada:        datas.Exibe,
		DataFormatadaExtenso: datas.Extenso,
		PenalidadeCodigo:     pen.Codigo,
		PenalidadeDescricao:  pen.Descricao,
	}
}

func primeiroNaoVazio(valores ...string) string {
	for _, v := range valores {
		if v != "" {
			return v
		}
	}
	return ""
}

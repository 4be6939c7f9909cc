package services

import (
	"fmt"
	"strings"
	"time"
)

const (
	PrefixoEnviadas   = "enviadas"
	PrefixoUnificadas = "unified"
)

// dataParaArquivo devolve a data no formato DD-MM-YYYY. Aceita ISO ou
// dd/mm/yyyy; entradas não reconhecidas caem para a data atual, igual ao
// comportamento de geração avulsa.
func dataParaArquivo(data string) string {
	for _, layout := range []string{"2006-01-02", "02/01/2006"} {
		if t, err := time.Parse(layout, data); err == nil {
			return t.Format("02-01-2006")
		}
	}
	return time.Now().Format("02-01-2006")
}

// NomeArquivoDocumento deriva a chave de storage determinística de um
// documento individual:
//
//	enviadas/{numero}_{DD-MM-YYYY}_{NOME}_{CONTEXTO}.pdf
//
// Colisões entre triplas distintas são tratadas pela política de
// substituição do uploader, não evitadas aqui.
func NomeArquivoDocumento(numeroDocumento, nome, contexto, data string) string {
	partes := make([]string, 0, 4)
	for _, p := range []string{
		SegmentoArquivo(numeroDocumento),
		dataParaArquivo(data),
		SegmentoArquivo(nome),
		SegmentoArquivo(contexto),
	} {
		if p != "" {
			partes = append(partes, p)
		}
	}
	return fmt.Sprintf("%s/%s.pdf", PrefixoEnviadas, strings.Join(partes, "_"))
}

// NomeArquivoUnificado deriva a chave do documento unificado de uma
// clínica/data:
//
//	unified/{DD-MM-YYYY}_{CLINICA}_AGENDADOS.pdf
func NomeArquivoUnificado(clinica, data string) string {
	return fmt.Sprintf("%s/%s_%s_AGENDADOS.pdf",
		PrefixoUnificadas, dataParaArquivo(data), SegmentoArquivo(clinica))
}

package services

import (
	"regexp"
	"strings"

	"github.com/gosimple/unidecode"
)

var (
	reEspacos       = regexp.MustCompile(`\s+`)
	reCharsInvalido = regexp.MustCompile(`[^a-zA-Z0-9_.-]`)
)

// NormalizarTexto remove acentos e troca '/' por '_'. Usado somente para
// segmentos de nome de arquivo; nunca aplicar em conteúdo HTML.
func NormalizarTexto(texto string) string {
	return strings.ReplaceAll(unidecode.Unidecode(texto), "/", "_")
}

// SegmentoArquivo produz um segmento seguro para chave de storage:
// sem acentos, maiúsculas, espaços viram underscore e qualquer caractere
// fora de [A-Za-z0-9_.-] é descartado.
func SegmentoArquivo(texto string) string {
	s := NormalizarTexto(strings.TrimSpace(texto))
	s = reEspacos.ReplaceAllString(s, "_")
	s = reCharsInvalido.ReplaceAllString(s, "")
	return strings.ToUpper(s)
}

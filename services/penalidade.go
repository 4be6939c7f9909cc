package services

import "regexp"

// Penalidade é o par código/descrição de uma medida disciplinar.
type Penalidade struct {
	Codigo    string
	Descricao string
}

var descricoesPenalidade = map[string]string{
	"P1": "Advertência Verbal",
	"P2": "Advertência Escrita",
	"P3": "Suspensão",
	"P4": "Demissão",
}

var rePenalidadeComposta = regexp.MustCompile(`^(P\d+)\s*-\s*(.+)$`)

// ResolverPenalidade aceita o código puro ("P2"), o formato composto
// ("P2 - Descrição") ou qualquer outro texto, que passa adiante sem
// transformação. Nunca falha.
func ResolverPenalidade(codigo string) Penalidade {
	if codigo == "" {
		return Penalidade{}
	}

	if m := rePenalidadeComposta.FindStringSubmatch(codigo); m != nil {
		return Penalidade{Codigo: m[1], Descricao: m[2]}
	}

	if desc, ok := descricoesPenalidade[codigo]; ok {
		return Penalidade{Codigo: codigo, Descricao: desc}
	}

	return Penalidade{Codigo: codigo, Descricao: codigo}
}

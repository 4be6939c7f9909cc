package services

import "testing"

func TestNormalizarTexto(t *testing.T) {
	casos := []struct {
		entrada string
		quer    string
	}{
		{"João Gonçalves", "Joao Goncalves"},
		{"Produção/Noturno", "Producao_Noturno"},
		{"ASO 2024", "ASO 2024"},
		{"", ""},
	}

	for _, c := range casos {
		if got := NormalizarTexto(c.entrada); got != c.quer {
			t.Fatalf("NormalizarTexto(%q): expected %q got %q", c.entrada, c.quer, got)
		}
	}
}

func TestNormalizarTextoIdempotente(t *testing.T) {
	entrada := "Operação/Máquinas Pesadas"
	uma := NormalizarTexto(entrada)
	duas := NormalizarTexto(uma)
	if uma != duas {
		t.Fatalf("expected idempotent normalization, got %q then %q", uma, duas)
	}
}

func TestSegmentoArquivo(t *testing.T) {
	casos := []struct {
		entrada string
		quer    string
	}{
		{"João da Silva", "JOAO_DA_SILVA"},
		{"  Produção  ", "PRODUCAO"},
		{"Exame Periódico", "EXAME_PERIODICO"},
		{"a@b#c", "ABC"},
		{"ja_normalizado-1.2", "JA_NORMALIZADO-1.2"},
	}

	for _, c := range casos {
		if got := SegmentoArquivo(c.entrada); got != c.quer {
			t.Fatalf("SegmentoArquivo(%q): expected %q got %q", c.entrada, c.quer, got)
		}
	}
}

package services

import (
	"fmt"
	"log"
	"strings"
	"time"
)

var mesesPorExtenso = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// DatasFormatadas reúne as três representações usadas nos documentos.
// Campos vazios indicam que a data original não pôde ser interpretada.
type DatasFormatadas struct {
	ISO     string // yyyy-mm-dd
	Exibe   string // dd/mm/yyyy
	Extenso string // "23 de fevereiro de 2024"
	Hora    string // HH:MM, quando a entrada trazia horário
}

// DataParaISO converte dd/mm/yyyy para yyyy-mm-dd.
func DataParaISO(ddmmyyyy string) (string, error) {
	t, err := time.Parse("02/01/2006", ddmmyyyy)
	if err != nil {
		return "", fmt.Errorf("data inválida %q: %w", ddmmyyyy, err)
	}
	return t.Format("2006-01-02"), nil
}

// DataParaExibicao converte yyyy-mm-dd para dd/mm/yyyy.
func DataParaExibicao(iso string) (string, error) {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return "", fmt.Errorf("data inválida %q: %w", iso, err)
	}
	return t.Format("02/01/2006"), nil
}

// DataPorExtenso converte yyyy-mm-dd para "D de MÊS de YYYY" (pt-BR).
func DataPorExtenso(iso string) (string, error) {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return "", fmt.Errorf("data inválida %q: %w", iso, err)
	}
	return fmt.Sprintf("%d de %s de %d", t.Day(), mesesPorExtenso[t.Month()-1], t.Year()), nil
}

// ProcessarDataOcorrencia aceita a data em ISO ou dd/mm/yyyy, com horário
// opcional (campo separado ou timestamp combinado "data T hora"), e devolve
// as três representações. Data inválida não é erro fatal: o documento segue
// sem ela, só registramos o alerta.
func ProcessarDataOcorrencia(data, hora string) DatasFormatadas {
	if data == "" {
		return DatasFormatadas{Hora: hora}
	}

	// Timestamp combinado vindo do frontend ("2024-02-23T09:40:00")
	if i := strings.IndexByte(data, 'T'); i >= 0 {
		resto := data[i+1:]
		if len(resto) >= 5 && hora == "" {
			hora = resto[:5]
		}
		data = data[:i]
	}

	iso := data
	if strings.Contains(data, "/") {
		conv, err := DataParaISO(data)
		if err != nil {
			log.Printf("[Alerta] Data de ocorrência inválida: %s", data)
			return DatasFormatadas{Hora: hora}
		}
		iso = conv
	}

	exibe, err := DataParaExibicao(iso)
	if err != nil {
		log.Printf("[Alerta] Data de ocorrência inválida: %s", data)
		return DatasFormatadas{Hora: hora}
	}
	extenso, _ := DataPorExtenso(iso)

	return DatasFormatadas{ISO: iso, Exibe: exibe, Extenso: extenso, Hora: hora}
}

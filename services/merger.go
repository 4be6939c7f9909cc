package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Merger baixa PDFs já gerados e concatena suas páginas num único
// documento, na ordem das URLs de entrada. Os arquivos intermediários
// vivem num diretório de rascunho apagado ao final, inclusive com erro.
type Merger struct {
	Cliente *http.Client
	// Dir é o diretório-pai do rascunho; vazio usa o temp do sistema.
	Dir string
}

func NewMerger() *Merger {
	return &Merger{Cliente: &http.Client{}}
}

// Unificar produz os bytes do PDF combinado. Uma única origem inválida
// aborta a unificação inteira: documento lógico é tudo ou nada.
func (m *Merger) Unificar(ctx context.Context, urls []string) ([]byte, error) {
	if len(urls) == 0 {
		return nil, ErrNenhumDocumentoUnir
	}

	rascunho, err := os.MkdirTemp(m.Dir, "pdf-merge-*")
	if err != nil {
		return nil, fmt.Errorf("erro ao criar diretório de rascunho: %w", err)
	}
	defer os.RemoveAll(rascunho)

	entradas := make([]string, 0, len(urls))
	for i, url := range urls {
		caminho := filepath.Join(rascunho, fmt.Sprintf("%03d_%s.pdf", i, uuid.New().String()))
		if err := m.baixar(ctx, url, caminho); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDocumentoOrigemFalhou, url, err)
		}
		entradas = append(entradas, caminho)
	}

	saida := filepath.Join(rascunho, "unificado.pdf")
	if err := api.MergeCreateFile(entradas, saida, false, nil); err != nil {
		return nil, fmt.Errorf("erro ao unificar PDFs: %w", err)
	}

	if paginas, err := api.PageCountFile(saida); err == nil {
		log.Printf("[Unificado] Documento final com %d página(s)", paginas)
	}
	return os.ReadFile(saida)
}

func (m *Merger) baixar(ctx context.Context, url, destino string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	cliente := m.Cliente
	if cliente == nil {
		cliente = http.DefaultClient
	}
	resp, err := cliente.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download retornou status %d", resp.StatusCode)
	}

	arquivo, err := os.Create(destino)
	if err != nil {
		return err
	}
	defer arquivo.Close()

	if _, err := io.Copy(arquivo, resp.Body); err != nil {
		return err
	}
	return arquivo.Sync()
}

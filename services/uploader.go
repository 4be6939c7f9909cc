package services

import (
	"fmt"
	"log"
	"path"
	"slices"
	"strings"
)

// ObjectStore é o contrato mínimo com o bucket de documentos. A
// implementação Supabase vive em utils.
type ObjectStore interface {
	Listar(prefixo string) ([]string, error)
	Enviar(chave string, dados []byte, contentType string, upsert bool) error
	Remover(chaves []string) error
	URLPublica(chave string) string
}

// Uploader grava um PDF no bucket com semântica de substituição: nunca
// existem dois objetos sob a mesma chave. Na colisão, os registros que
// apontavam para a URL antiga são revinculados à nova.
type Uploader struct {
	Store  ObjectStore
	Linker RecordLinker
}

func NewUploader(store ObjectStore, linker RecordLinker) *Uploader {
	return &Uploader{Store: store, Linker: linker}
}

// Enviar segue a ordem estrita: capturar os registros vinculados à URL
// antiga, deletar o objeto existente, subir o novo e só então revincular.
// A revinculação nunca roda antes do novo objeto estar gravado, e o objeto
// antigo nunca é removido antes da lista de referências ser capturada.
func (u *Uploader) Enviar(pdf []byte, chave string) (string, error) {
	dir, nome := path.Split(chave)
	prefixo := strings.TrimSuffix(dir, "/")

	existentes, err := u.Store.Listar(prefixo)
	if err != nil {
		return "", fmt.Errorf("erro ao listar objetos em %q: %w", prefixo, err)
	}

	if slices.Contains(existentes, nome) {
		log.Printf("[Upload] Arquivo com mesmo nome encontrado: %s", nome)
		urlAntiga := u.Store.URLPublica(chave)

		ids, err := u.Linker.VinculadosA(urlAntiga)
		if err != nil {
			return "", fmt.Errorf("erro ao buscar registros vinculados: %w", err)
		}

		if err := u.Store.Remover([]string{chave}); err != nil {
			return "", fmt.Errorf("erro ao deletar objeto existente: %w", err)
		}
		if err := u.Store.Enviar(chave, pdf, "application/pdf", true); err != nil {
			return "", fmt.Errorf("erro no upload de substituição: %w", err)
		}

		urlNova := u.Store.URLPublica(chave)
		if len(ids) > 0 {
			log.Printf("[Upload] Revinculando %d registro(s) à nova URL", len(ids))
			if _, err := u.Linker.RevincularIDs(ids, urlNova); err != nil {
				return "", fmt.Errorf("erro ao revincular registros: %w", err)
			}
		}
		return urlNova, nil
	}

	// Sem colisão: upsert desligado para falhar alto se uma corrida criar
	// o objeto nesse meio tempo, em vez de sobrescrever em silêncio.
	if err := u.Store.Enviar(chave, pdf, "application/pdf", false); err != nil {
		return "", fmt.Errorf("erro no upload: %w", err)
	}
	return u.Store.URLPublica(chave), nil
}

package utils

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	storage "github.com/supabase-community/storage-go"
)

// SupabaseStore implementa o contrato de object storage do pipeline sobre
// o Supabase Storage. Bucket e credenciais vêm do ambiente.
type SupabaseStore struct {
	client *storage.Client
	url    string
	bucket string
}

// NewSupabaseStore monta o cliente a partir de SUPABASE_URL e SUPABASE_KEY
// para o bucket informado.
func NewSupabaseStore(bucket string) *SupabaseStore {
	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseKey := os.Getenv("SUPABASE_KEY")

	return &SupabaseStore{
		client: storage.NewClient(supabaseURL+"/storage/v1", supabaseKey, nil),
		url:    strings.TrimRight(supabaseURL, "/"),
		bucket: bucket,
	}
}

// Listar devolve os nomes (segmento final) dos objetos sob o prefixo.
func (s *SupabaseStore) Listar(prefixo string) ([]string, error) {
	objetos, err := s.client.ListFiles(s.bucket, prefixo, storage.FileSearchOptions{})
	if err != nil {
		return nil, err
	}
	nomes := make([]string, 0, len(objetos))
	for _, o := range objetos {
		nomes = append(nomes, o.Name)
	}
	return nomes, nil
}

// Enviar sobe os bytes sob a chave dada dentro do bucket.
func (s *SupabaseStore) Enviar(chave string, dados []byte, contentType string, upsert bool) error {
	opcoes := storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	}
	_, err := s.client.UploadFile(s.bucket, chave, bytes.NewReader(dados), opcoes)
	return err
}

// Remover apaga os objetos indicados.
func (s *SupabaseStore) Remover(chaves []string) error {
	_, err := s.client.RemoveFile(s.bucket, chaves)
	return err
}

// URLPublica monta a URL pública de um objeto do bucket.
func (s *SupabaseStore) URLPublica(chave string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.url, s.bucket, chave)
}

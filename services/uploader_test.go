package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

type fakeStore struct {
	objetos map[string][]byte

	listarErr  error
	enviarErr  error
	removerErr error

	enviosUpsert []bool
	removidos    []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{objetos: map[string][]byte{}}
}

func (f *fakeStore) Listar(prefixo string) ([]string, error) {
	if f.listarErr != nil {
		return nil, f.listarErr
	}
	var nomes []string
	for chave := range f.objetos {
		dir := prefixo + "/"
		if len(chave) > len(dir) && chave[:len(dir)] == dir {
			nomes = append(nomes, chave[len(dir):])
		}
	}
	return nomes, nil
}

func (f *fakeStore) Enviar(chave string, dados []byte, contentType string, upsert bool) error {
	f.enviosUpsert = append(f.enviosUpsert, upsert)
	if f.enviarErr != nil {
		return f.enviarErr
	}
	f.objetos[chave] = dados
	return nil
}

func (f *fakeStore) Remover(chaves []string) error {
	if f.removerErr != nil {
		return f.removerErr
	}
	for _, c := range chaves {
		delete(f.objetos, c)
		f.removidos = append(f.removidos, c)
	}
	return nil
}

func (f *fakeStore) URLPublica(chave string) string {
	return "https://cdn.example.com/" + chave
}

type fakeLinker struct {
	vinculados   map[string][]uuid.UUID
	revinculados map[uuid.UUID]string
	anexados     map[uuid.UUID]string

	vinculadosErr error
	revincularErr error
}

func newFakeLinker() *fakeLinker {
	return &fakeLinker{
		vinculados:   map[string][]uuid.UUID{},
		revinculados: map[uuid.UUID]string{},
		anexados:     map[uuid.UUID]string{},
	}
}

func (f *fakeLinker) VinculadosA(url string) ([]uuid.UUID, error) {
	if f.vinculadosErr != nil {
		return nil, f.vinculadosErr
	}
	return f.vinculados[url], nil
}

func (f *fakeLinker) RevincularIDs(ids []uuid.UUID, novaURL string) (int64, error) {
	if f.revincularErr != nil {
		return 0, f.revincularErr
	}
	for _, id := range ids {
		f.revinculados[id] = novaURL
	}
	return int64(len(ids)), nil
}

func (f *fakeLinker) Anexar(id uuid.UUID, url string) error {
	f.anexados[id] = url
	return nil
}

func TestUploaderEnviarSemColisao(t *testing.T) {
	store := newFakeStore()
	up := NewUploader(store, newFakeLinker())

	url, err := up.Enviar([]byte("%PDF-"), "enviadas/DOC.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://cdn.example.com/enviadas/DOC.pdf" {
		t.Fatalf("unexpected public url %q", url)
	}
	if len(store.enviosUpsert) != 1 || store.enviosUpsert[0] {
		t.Fatalf("expected single upload with upsert off, got %v", store.enviosUpsert)
	}
	if len(store.removidos) != 0 {
		t.Fatalf("expected no deletions without collision, got %v", store.removidos)
	}
}

func TestUploaderEnviarComColisaoSubstituiERevincula(t *testing.T) {
	store := newFakeStore()
	store.objetos["enviadas/DOC.pdf"] = []byte("conteudo antigo")

	linker := newFakeLinker()
	id := uuid.New()
	urlAntiga := store.URLPublica("enviadas/DOC.pdf")
	linker.vinculados[urlAntiga] = []uuid.UUID{id}

	up := NewUploader(store, linker)
	url, err := up.Enviar([]byte("conteudo novo"), "enviadas/DOC.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Nunca dois objetos sob a mesma chave: o antigo foi removido e o
	// novo conteúdo está no lugar.
	if len(store.objetos) != 1 {
		t.Fatalf("expected exactly one object after replace, got %d", len(store.objetos))
	}
	if string(store.objetos["enviadas/DOC.pdf"]) != "conteudo novo" {
		t.Fatalf("expected replaced content, got %q", store.objetos["enviadas/DOC.pdf"])
	}
	if len(store.removidos) != 1 || store.removidos[0] != "enviadas/DOC.pdf" {
		t.Fatalf("expected old object removed, got %v", store.removidos)
	}
	if len(store.enviosUpsert) != 1 || !store.enviosUpsert[0] {
		t.Fatalf("expected replacement upload with upsert on, got %v", store.enviosUpsert)
	}
	if linker.revinculados[id] != url {
		t.Fatalf("expected record relinked to %q, got %q", url, linker.revinculados[id])
	}
}

func TestUploaderEnviarColisaoSemVinculos(t *testing.T) {
	store := newFakeStore()
	store.objetos["enviadas/DOC.pdf"] = []byte("antigo")

	linker := newFakeLinker()
	up := NewUploader(store, linker)

	if _, err := up.Enviar([]byte("novo"), "enviadas/DOC.pdf"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(linker.revinculados) != 0 {
		t.Fatalf("expected no relinks without referencing records, got %v", linker.revinculados)
	}
}

func TestUploaderEnviarFalhaDeStorageAborta(t *testing.T) {
	store := newFakeStore()
	store.listarErr = errors.New("storage fora do ar")

	up := NewUploader(store, newFakeLinker())
	if _, err := up.Enviar([]byte("pdf"), "enviadas/DOC.pdf"); err == nil {
		t.Fatal("expected error when listing fails")
	}
	if len(store.enviosUpsert) != 0 {
		t.Fatalf("expected no upload attempt after listing failure, got %v", store.enviosUpsert)
	}
}

func TestUploaderEnviarFalhaDeRemocaoNaoSobe(t *testing.T) {
	store := newFakeStore()
	store.objetos["enviadas/DOC.pdf"] = []byte("antigo")
	store.removerErr = errors.New("sem permissão")

	up := NewUploader(store, newFakeLinker())
	if _, err := up.Enviar([]byte("novo"), "enviadas/DOC.pdf"); err == nil {
		t.Fatal("expected error when delete fails")
	}
	if string(store.objetos["enviadas/DOC.pdf"]) != "antigo" {
		t.Fatal("expected old object untouched after failed delete")
	}
}

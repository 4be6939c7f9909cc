package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/agroregistros/tratativas-backend/models"
)

type fakeBookingRepo struct {
	bookings []models.Booking
	err      error
}

func (f *fakeBookingRepo) PorIDs(ids []uuid.UUID) ([]models.Booking, error) {
	return f.bookings, f.err
}

type fakeGerador struct {
	urls     map[uuid.UUID]string
	err      error
	chamadas []uuid.UUID
}

func (f *fakeGerador) GerarDeBooking(ctx context.Context, booking models.Booking) (string, error) {
	f.chamadas = append(f.chamadas, booking.ID)
	if f.err != nil {
		return "", f.err
	}
	return f.urls[booking.ID], nil
}

type fakeMerger struct {
	urls []string
	err  error
}

func (f *fakeMerger) Unificar(ctx context.Context, urls []string) ([]byte, error) {
	f.urls = urls
	if f.err != nil {
		return nil, f.err
	}
	return []byte("pdf unificado"), nil
}

type fakeEnviador struct {
	chave string
	err   error
}

func (f *fakeEnviador) Enviar(pdf []byte, chave string) (string, error) {
	f.chave = chave
	if f.err != nil {
		return "", f.err
	}
	return "https://cdn.example.com/" + chave, nil
}

func TestUnificadorGerarUnificado(t *testing.T) {
	idA, idB, idC := uuid.New(), uuid.New(), uuid.New()

	repo := &fakeBookingRepo{bookings: []models.Booking{
		// Ordem do banco propositalmente diferente da ordem de entrada.
		{ID: idC},
		{ID: idA, AsoURL: "https://cdn.example.com/a.pdf"},
		{ID: idB},
	}}
	gerador := &fakeGerador{urls: map[uuid.UUID]string{
		idB: "https://cdn.example.com/b.pdf",
		idC: "https://cdn.example.com/c.pdf",
	}}
	merger := &fakeMerger{}
	enviador := &fakeEnviador{}

	u := &Unificador{Bookings: repo, Gerador: gerador, Merger: merger, Uploader: enviador}
	res, err := u.GerarUnificado(context.Background(), []uuid.UUID{idA, idB, idC}, "Clínica São Lucas")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Total != 3 || res.Existentes != 1 || res.Gerados != 2 {
		t.Fatalf("unexpected counts: %+v", res)
	}
	if res.URL == "" {
		t.Fatal("expected public url in result")
	}

	// Existentes primeiro, depois os gerados, cada grupo na ordem de
	// entrada.
	quer := []string{
		"https://cdn.example.com/a.pdf",
		"https://cdn.example.com/b.pdf",
		"https://cdn.example.com/c.pdf",
	}
	if len(merger.urls) != len(quer) {
		t.Fatalf("expected %d urls got %d", len(quer), len(merger.urls))
	}
	for i := range quer {
		if merger.urls[i] != quer[i] {
			t.Fatalf("url %d: expected %q got %q", i, quer[i], merger.urls[i])
		}
	}

	if len(gerador.chamadas) != 2 || gerador.chamadas[0] != idB || gerador.chamadas[1] != idC {
		t.Fatalf("expected sequential generation for B then C, got %v", gerador.chamadas)
	}

	if !strings.HasPrefix(enviador.chave, PrefixoUnificadas+"/") {
		t.Fatalf("expected unified prefix in key, got %q", enviador.chave)
	}
	if !strings.Contains(enviador.chave, "CLINICA_SAO_LUCAS_AGENDADOS") {
		t.Fatalf("expected grouping in key, got %q", enviador.chave)
	}
}

func TestUnificadorSemIDs(t *testing.T) {
	u := &Unificador{}
	if _, err := u.GerarUnificado(context.Background(), nil, "X"); !errors.Is(err, ErrDadosIncompletos) {
		t.Fatalf("expected ErrDadosIncompletos, got %v", err)
	}
}

func TestUnificadorBookingInexistente(t *testing.T) {
	u := &Unificador{Bookings: &fakeBookingRepo{}}
	_, err := u.GerarUnificado(context.Background(), []uuid.UUID{uuid.New()}, "X")
	if !errors.Is(err, ErrBookingNaoEncontrado) {
		t.Fatalf("expected ErrBookingNaoEncontrado, got %v", err)
	}
}

func TestUnificadorFalhaDeGeracaoAbortaLote(t *testing.T) {
	id := uuid.New()
	repo := &fakeBookingRepo{bookings: []models.Booking{{ID: id}}}
	gerador := &fakeGerador{err: errors.New("navegador caiu")}
	merger := &fakeMerger{}

	u := &Unificador{Bookings: repo, Gerador: gerador, Merger: merger, Uploader: &fakeEnviador{}}
	if _, err := u.GerarUnificado(context.Background(), []uuid.UUID{id}, "X"); err == nil {
		t.Fatal("expected error when a member generation fails")
	}
	if merger.urls != nil {
		t.Fatal("expected no merge after member failure")
	}
}

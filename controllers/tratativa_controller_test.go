package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func routerDeValidacao() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// Sem middleware de banco: estes caminhos devem falhar na validação
	// antes de qualquer acesso a dados.
	r.POST("/api/tratativa/generate", GerarTratativa)
	r.POST("/api/tratativa/create", CriarTratativa)
	r.POST("/api/aso/generate-unified", GerarASOUnificado)
	r.POST("/api/aso/generate-from-booking/:id", GerarASODeBooking)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, rota, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, rota, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	return resp
}

func TestGerarTratativaBodyInvalido(t *testing.T) {
	r := routerDeValidacao()
	w := postJSON(t, r, "/api/tratativa/generate", "nao e json")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
	resp := decodeEnvelope(t, w)
	if resp["success"] != false {
		t.Fatalf("expected success false, got %v", resp["success"])
	}
}

func TestGerarTratativaDadosIncompletos(t *testing.T) {
	r := routerDeValidacao()
	w := postJSON(t, r, "/api/tratativa/generate", `{"numero_documento":"2024001"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
	resp := decodeEnvelope(t, w)
	msg, _ := resp["message"].(string)
	if !strings.Contains(msg, "Dados incompletos") {
		t.Fatalf("expected missing-fields message, got %q", msg)
	}
}

func TestCriarTratativaDadosIncompletos(t *testing.T) {
	r := routerDeValidacao()
	w := postJSON(t, r, "/api/tratativa/create", `{"nome_funcionario":"Maria"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestGerarASOUnificadoSemIDs(t *testing.T) {
	r := routerDeValidacao()
	w := postJSON(t, r, "/api/aso/generate-unified", `{"bookingIds":[]}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestGerarASODeBookingIDInvalido(t *testing.T) {
	r := routerDeValidacao()
	w := postJSON(t, r, "/api/aso/generate-from-booking/nao-e-uuid", "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestGerarASOUnificadoIDInvalido(t *testing.T) {
	r := routerDeValidacao()
	w := postJSON(t, r, "/api/aso/generate-unified", `{"bookingIds":["nao-e-uuid"]}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
	resp := decodeEnvelope(t, w)
	msg, _ := resp["message"].(string)
	if !strings.Contains(msg, "nao-e-uuid") {
		t.Fatalf("expected offending id in message, got %q", msg)
	}
}

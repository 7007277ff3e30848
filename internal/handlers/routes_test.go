package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	_ "body-echo-api/docs"
)

func TestSwaggerDoc_HTTP(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/swagger/doc.json", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"/echo"`) {
		t.Errorf("doc.json does not describe /echo: %s", w.Body.String())
	}
}

func TestNoRoute_HTTP(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/missing", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

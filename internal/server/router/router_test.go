package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yassirrachad97/DepotSmart/internal/server/handlers"
)

func newTestRouter() http.Handler {
	return New(Handlers{
		Catalog:    handlers.NewCatalogHandler(nil, nil),
		Auth:       handlers.NewAuthHandler(nil, nil),
		Statistics: handlers.NewStatisticsHandler(nil, nil),
	}, nil)
}

func TestHealthzCarriesRequestID(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status got %d", w.Code)
	}
	if w.Header().Get(requestIDHeader) == "" {
		t.Fatalf("expected a generated request id")
	}
}

func TestRequestIDIsPropagated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, req)

	if got := w.Header().Get(requestIDHeader); got != "abc-123" {
		t.Fatalf("request id got %q", got)
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/webhook", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status got %d", w.Code)
	}
}

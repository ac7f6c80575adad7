package search

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupSearchRouter(store Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(NewService(store))
	r.GET("/vendors/nearby", h.Nearby)
	return r
}

func TestNearby_MissingCoordinates(t *testing.T) {
	r := setupSearchRouter(NewInMemoryStore())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/vendors/nearby?lng=-122.4", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestNearby_OutOfRangeCoordinates(t *testing.T) {
	r := setupSearchRouter(NewInMemoryStore())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/vendors/nearby?lat=95&lng=0", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestNearby_EmptyAreaReturnsEmptyList(t *testing.T) {
	r := setupSearchRouter(NewInMemoryStore())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/vendors/nearby?lat=37.77&lng=-122.42", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Results []RankedResult `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Results == nil || len(body.Results) != 0 {
		t.Fatalf("expected empty results array, got %v", body.Results)
	}
}

func TestNearby_ReturnsRankedVendors(t *testing.T) {
	store := NewInMemoryStore()
	addVendor(store, "v_a", "Taco Cart", 0.01,
		Item{ID: "m_1", Name: "Carne Asada Taco", Price: 3.5},
	)
	r := setupSearchRouter(store)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/vendors/nearby?q=taco&lat=37.7749&lng=-122.4194", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Results []RankedResult `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body.Results) != 1 || body.Results[0].VendorID != "v_a" {
		t.Fatalf("unexpected results: %v", body.Results)
	}
}

func TestNearby_StoreFailureMapsToBadGateway(t *testing.T) {
	r := setupSearchRouter(failingStore{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/vendors/nearby?lat=37.77&lng=-122.42", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
}

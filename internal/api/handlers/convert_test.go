package handlers

import (
	"coordinate-converter-service/internal/adapters/transform"
	"coordinate-converter-service/internal/api/dto"
	"coordinate-converter-service/internal/domain"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestConvertEndpoint(t *testing.T) {
	provider := transform.NewMockTransformProvider([]transform.MockTransform{
		{SourceCRS: "EPSG:4326", TargetCRS: "EPSG:32648", X: 784818.17, Y: 9234443.18},
	})
	h := &ConvertHandler{Provider: provider}

	body := `{"x": "107.619044", "y": "-6.917464", "source_notation": "DD", "source_crs": "EPSG:4326", "target_notation": "UTM", "target_crs": "EPSG:32648"}`
	req := httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Convert(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.ConvertResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.XText != "784818.170000" || res.YText != "9234443.180000" {
		t.Fatalf("formatted pair = %q, %q", res.XText, res.YText)
	}
	if res.Notation != "UTM" {
		t.Fatalf("notation = %q", res.Notation)
	}
}

func TestConvertEndpointDefaultsSourceCRS(t *testing.T) {
	provider := transform.NewMockTransformProvider([]transform.MockTransform{
		{SourceCRS: "EPSG:4326", TargetCRS: "EPSG:32648", X: 784818.17, Y: 9234443.18},
	})
	h := &ConvertHandler{Provider: provider}

	body := `{"x": "107.619044", "y": "-6.917464", "source_notation": "DD", "target_notation": "UTM", "target_crs": "EPSG:32648"}`
	req := httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Convert(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var res dto.ConvertResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.SourceCRS != "EPSG:4326" {
		t.Fatalf("source crs = %q, want default", res.SourceCRS)
	}
}

func TestConvertEndpointRejectsBadNotation(t *testing.T) {
	h := &ConvertHandler{Provider: transform.NewMockTransformProvider(nil)}

	body := `{"x": "1", "y": "2", "source_notation": "radians", "target_notation": "DD", "target_crs": "EPSG:4326"}`
	req := httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Convert(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestConvertEndpointRejectsUnknownFields(t *testing.T) {
	h := &ConvertHandler{Provider: transform.NewMockTransformProvider(nil)}

	body := `{"x": "1", "y": "2", "surprise": true}`
	req := httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Convert(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestConvertEndpointUnknownCRS(t *testing.T) {
	h := &ConvertHandler{Provider: transform.NewMockTransformProvider(nil)}

	body := `{"x": "1", "y": "2", "source_notation": "DD", "source_crs": "EPSG:4326", "target_notation": "DD", "target_crs": "EPSG:0000"}`
	req := httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Convert(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestConvertEndpointMethodNotAllowed(t *testing.T) {
	h := &ConvertHandler{Provider: transform.NewMockTransformProvider(nil)}

	req := httptest.NewRequest(http.MethodGet, "/convert", nil)
	rec := httptest.NewRecorder()

	h.Convert(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	if rec.Header().Get("Allow") != http.MethodPost {
		t.Fatalf("allow header = %q", rec.Header().Get("Allow"))
	}
}

func TestSystemsEndpoint(t *testing.T) {
	h := &SystemsHandler{Catalogue: domain.NewCatalogue()}

	req := httptest.NewRequest(http.MethodGet, "/systems", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var res dto.ListSystemsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(res.Categories))
	}
	if res.Categories[0].Category != "Global" {
		t.Fatalf("first category = %q", res.Categories[0].Category)
	}
}

func TestSystemsEndpointCategoryFilter(t *testing.T) {
	h := &SystemsHandler{Catalogue: domain.NewCatalogue()}

	req := httptest.NewRequest(http.MethodGet, "/systems?category=global", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	var res dto.ListSystemsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Categories) != 1 || res.Categories[0].Category != "Global" {
		t.Fatalf("filtered categories = %+v", res.Categories)
	}
}

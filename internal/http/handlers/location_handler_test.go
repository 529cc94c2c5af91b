// README: Endpoint tests for service-area validation and geocoding.
package handlers_test

import (
	"net/http"
	"testing"
)

func TestValidateLocations_DropoffOutside(t *testing.T) {
	r := buildTestRouter()
	w := doJSON(r, http.MethodPost, "/api/locations/validate", map[string]any{
		"pickup": map[string]any{
			"display_name": "Chennai", "lat": 13.0827, "lon": 80.2707,
			"address": map[string]string{"state": "Tamil Nadu"},
		},
		"dropoff": map[string]any{
			"display_name": "Bengaluru", "lat": 12.9716, "lon": 77.5946,
			"address": map[string]string{"state": "Karnataka"},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["ok"] != false {
		t.Error("expected ok=false")
	}
	if body["invalidLocation"] != "dropoff" {
		t.Errorf("invalidLocation = %v, want dropoff", body["invalidLocation"])
	}
	if msg, _ := body["message"].(string); msg == "" {
		t.Error("expected a message")
	}
}

func TestValidateLocations_OKIncludesDistance(t *testing.T) {
	r := buildTestRouter()
	w := doJSON(r, http.MethodPost, "/api/locations/validate", map[string]any{
		"pickup": map[string]any{
			"display_name": "Chennai", "lat": 13.0827, "lon": 80.2707,
			"address": map[string]string{"state": "Tamil Nadu"},
		},
		"dropoff": map[string]any{
			"display_name": "Kochi", "lat": 9.9312, "lon": 76.2673,
			"address": map[string]string{"state": "Kerala"},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["ok"] != true {
		t.Fatalf("expected ok=true: %s", w.Body.String())
	}
	km, ok := body["straightLineKm"].(float64)
	if !ok || km < 500 || km > 600 {
		t.Errorf("straightLineKm = %v, want ~550", body["straightLineKm"])
	}
}

func TestValidateLocations_MissingLocation(t *testing.T) {
	r := buildTestRouter()
	w := doJSON(r, http.MethodPost, "/api/locations/validate", map[string]any{
		"pickup": map[string]any{
			"display_name": "Chennai",
			"address":      map[string]string{"state": "Tamil Nadu"},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["ok"] != false {
		t.Error("expected ok=false when dropoff is missing")
	}
}

func TestGeocode_UnavailableWithoutAPIKey(t *testing.T) {
	r := buildTestRouter()
	w := doJSON(r, http.MethodGet, "/api/geocode?q=chennai", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}

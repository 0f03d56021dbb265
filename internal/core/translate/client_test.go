package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
)

func testService(serverURL string) *Service {
	return &Service{
		client: resty.New().SetBaseURL(serverURL),
		apiKey: "test-key",
		target: "pt",
		cache:  nil,
	}
}

func TestTranslate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if body["q"] != "Rice" || body["target"] != "pt" {
			t.Errorf("unexpected request body: %+v", body)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"translations": [{"translatedText": "arroz"}]}}`))
	}))
	defer server.Close()

	got, err := testService(server.URL).Translate(context.Background(), "Rice")
	if err != nil {
		t.Fatalf("Translate error: %v", err)
	}
	if got != "arroz" {
		t.Fatalf("Translate = %q, want %q", got, "arroz")
	}
}

func TestTranslateBlankInput(t *testing.T) {
	// Must not call the API at all.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected API call for blank input")
	}))
	defer server.Close()

	got, err := testService(server.URL).Translate(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Translate error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
}

func TestTranslateHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	if _, err := testService(server.URL).Translate(context.Background(), "Rice"); err == nil {
		t.Fatalf("expected non-200 status to surface")
	}
}

func TestTranslateEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"translations": []}}`))
	}))
	defer server.Close()

	if _, err := testService(server.URL).Translate(context.Background(), "Rice"); err == nil {
		t.Fatalf("expected empty translations to surface as error")
	}
}

func TestNilCacheIsAMiss(t *testing.T) {
	var c *Cache

	if _, ok := c.Get(context.Background(), "pt", "Rice"); ok {
		t.Fatalf("nil cache must behave as a miss")
	}
	// Must not panic.
	c.Set(context.Background(), "pt", "Rice", "arroz")
	c.Close()
}

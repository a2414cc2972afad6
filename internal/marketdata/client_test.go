package marketdata

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		c := NewClient("https://quotes.example.com")

		if c.baseURL != "https://quotes.example.com" {
			t.Errorf("baseURL = %q, want %q", c.baseURL, "https://quotes.example.com")
		}
		if c.httpClient.Timeout != 10*time.Second {
			t.Errorf("Timeout = %v, want %v", c.httpClient.Timeout, 10*time.Second)
		}
		if c.logger == nil {
			t.Error("logger should not be nil")
		}
	})

	t.Run("with options", func(t *testing.T) {
		hc := &http.Client{Timeout: 3 * time.Second}
		c := NewClient("https://quotes.example.com",
			WithAPIKey("secret"),
			WithHTTPClient(hc),
		)
		if c.apiKey != "secret" {
			t.Errorf("apiKey = %q, want %q", c.apiKey, "secret")
		}
		if c.httpClient != hc {
			t.Error("custom HTTP client not set")
		}
	})
}

func TestGetDailyBars(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("interval"); got != "1d" {
			t.Errorf("interval = %q, want 1d", got)
		}
		if got := r.URL.Query().Get("range"); got != "6mo" {
			t.Errorf("range = %q, want 6mo", got)
		}
		fmt.Fprint(w, chartJSON([]float64{10, 11, 12}))
	}))
	defer srv.Close()

	bars, err := NewClient(srv.URL).GetDailyBars(context.Background(), "PETR4.SA", "6mo")
	if err != nil {
		t.Fatalf("GetDailyBars failed: %v", err)
	}
	if len(bars) != 3 {
		t.Fatalf("len(bars) = %d, want 3", len(bars))
	}
	if bars[2].Close != 12 {
		t.Errorf("bars[2].Close = %v, want 12", bars[2].Close)
	}
}

func TestGetDailyBarsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).GetDailyBars(context.Background(), "NOPE", "6mo")
	if err == nil {
		t.Fatal("expected error for 404 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", apiErr.StatusCode)
	}
}

func TestGetLatestQuote(t *testing.T) {
	t.Run("returns last bar", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, chartJSON([]float64{10.5, 10.75}))
		}))
		defer srv.Close()

		bar, ok, err := NewClient(srv.URL).GetLatestQuote(context.Background(), "BRLSELIC=B")
		if err != nil || !ok {
			t.Fatalf("GetLatestQuote = ok=%v err=%v", ok, err)
		}
		if bar.Close != 10.75 {
			t.Errorf("Close = %v, want 10.75", bar.Close)
		}
	})

	t.Run("empty result", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, chartJSON(nil))
		}))
		defer srv.Close()

		_, ok, err := NewClient(srv.URL).GetLatestQuote(context.Background(), "BRLSELIC=B")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Error("expected ok=false for empty quote list")
		}
	})
}

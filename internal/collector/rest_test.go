package collector

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRestFetcherFetchDailyBars(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.String()
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		// out of order on purpose; the fetcher must sort ascending
		w.Write([]byte(`[
			{"timestamp": 1720000000, "open": 101, "high": 102, "low": 100, "close": 101.5, "volume": 1200},
			{"timestamp": 1719900000, "open": 100, "high": 101, "low": 99, "close": 100.5, "volume": 1100}
		]`))
	}))
	defer srv.Close()

	f := NewRestFetcher(srv.URL, "secret", "")
	bars, err := f.FetchDailyBars("2330.TW", 30)
	if err != nil {
		t.Fatal(err)
	}

	if gotPath != "/api/v1/bars/daily?symbol=2330.TW&limit=30" {
		t.Errorf("path = %s", gotPath)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("auth = %s", gotAuth)
	}
	if len(bars) != 2 {
		t.Fatalf("got %d bars", len(bars))
	}
	if !bars[0].Time.Before(bars[1].Time) {
		t.Error("bars not sorted ascending")
	}
	if bars[0].Close != 100.5 || bars[1].Close != 101.5 {
		t.Errorf("bars = %+v", bars)
	}
}

func TestRestFetcherErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "symbol not found", http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewRestFetcher(srv.URL, "", "")
	if _, err := f.FetchDailyBars("GHOST", 30); err == nil {
		t.Error("expected error for non-200 status")
	}
}

func TestRestFetcherBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "an array"}`))
	}))
	defer srv.Close()

	f := NewRestFetcher(srv.URL, "", "")
	if _, err := f.FetchDailyBars("X", 30); err == nil {
		t.Error("expected decode error")
	}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchRawData(t *testing.T) {
	const payload = "\"\",\"2025-01-10\"\n\"\",\"09:00\"\n\"Alice\",\"Ja\"\n"

	var gotPath, gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("poll")
		w.Write([]byte(payload))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, 5*time.Second)
	raw, err := client.FetchRawData(context.Background(), "JLKKK3hXJ8w3GExz")
	if err != nil {
		t.Fatalf("FetchRawData failed: %v", err)
	}

	if raw != payload {
		t.Errorf("Payload = %q, want %q", raw, payload)
	}
	if gotPath != "/exportcsv.php" {
		t.Errorf("Path = %q, want /exportcsv.php", gotPath)
	}
	if gotQuery != "JLKKK3hXJ8w3GExz" {
		t.Errorf("Poll query = %q", gotQuery)
	}
}

func TestFetchRawDataRetriesServerErrors(t *testing.T) {
	attempts := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, 5*time.Second)
	raw, err := client.FetchRawData(context.Background(), "abc")
	if err != nil {
		t.Fatalf("FetchRawData failed after retries: %v", err)
	}
	if raw != "ok" {
		t.Errorf("Payload = %q, want ok", raw)
	}
	if attempts != 3 {
		t.Errorf("Server saw %d attempts, want 3", attempts)
	}
}

func TestFetchRawDataDoesNotRetryNotFound(t *testing.T) {
	attempts := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	client := NewClient(ts.URL, 5*time.Second)
	if _, err := client.FetchRawData(context.Background(), "missing"); err == nil {
		t.Fatal("Expected error for 404")
	}
	if attempts != 1 {
		t.Errorf("404 was retried: %d attempts", attempts)
	}
}

func TestFetchRawDataHonorsContext(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(ts.URL, 5*time.Second)
	if _, err := client.FetchRawData(ctx, "abc"); err == nil {
		t.Fatal("Expected error with cancelled context")
	}
}

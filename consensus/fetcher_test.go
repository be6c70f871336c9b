package consensus

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"aurum/blockchain"
	"aurum/chaintest"
)

func TestHTTPFetcherFetchChain(t *testing.T) {
	chain := chaintest.BuildChain(2, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chain" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(blockchain.ChainPayload{Chain: chain, Length: len(chain)})
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(time.Second)
	address := strings.TrimPrefix(server.URL, "http://")

	payload, err := fetcher.FetchChain(context.Background(), address)
	if err != nil {
		t.Fatalf("FetchChain() failed: %v", err)
	}
	if payload.Length != 2 {
		t.Errorf("payload Length = %d, want 2", payload.Length)
	}
	if len(payload.Chain) != 2 {
		t.Errorf("payload chain length = %d, want 2", len(payload.Chain))
	}
	if !blockchain.ValidChain(payload.Chain) {
		t.Error("fetched chain failed validation")
	}
}

func TestHTTPFetcherNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not today", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(time.Second)
	address := strings.TrimPrefix(server.URL, "http://")

	if _, err := fetcher.FetchChain(context.Background(), address); err == nil {
		t.Error("FetchChain() returned nil error for a non-200 response")
	}
}

func TestHTTPFetcherUnreachablePeer(t *testing.T) {
	// Grab an address nothing listens on.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	address := strings.TrimPrefix(server.URL, "http://")
	server.Close()

	fetcher := NewHTTPFetcher(200 * time.Millisecond)

	if _, err := fetcher.FetchChain(context.Background(), address); err == nil {
		t.Error("FetchChain() returned nil error for an unreachable peer")
	}
}

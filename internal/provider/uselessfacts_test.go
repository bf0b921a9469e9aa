package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestUselessFacts_Success(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "abc", "text": "Bananas are berries.", "source": "djtech.net"}`))
	}))
	defer upstream.Close()

	p := NewUselessFactsProvider(upstream.URL, 2*time.Second, zap.NewNop())

	fact, err := p.RandomFact(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fact != "Bananas are berries." {
		t.Errorf("unexpected fact: %q", fact)
	}
}

func TestUselessFacts_WrongSchema(t *testing.T) {
	// A valid JSON body without the "text" field must still be an error —
	// the caller needs a non-empty fact or nothing.
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"fact": "wrong field name"}`))
	}))
	defer upstream.Close()

	p := NewUselessFactsProvider(upstream.URL, 2*time.Second, zap.NewNop())

	if _, err := p.RandomFact(context.Background()); err == nil {
		t.Error("expected error for missing text field, got nil")
	}
}

func TestUselessFacts_ServerError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer upstream.Close()

	p := NewUselessFactsProvider(upstream.URL, 2*time.Second, zap.NewNop())

	if _, err := p.RandomFact(context.Background()); err == nil {
		t.Error("expected error for 502 response, got nil")
	}
}

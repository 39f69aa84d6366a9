package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saladbowl/saladbowl-backend/internal/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) AnthropicClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	t.Setenv("ANTHROPIC_BASE_URL", server.URL)
	t.Setenv("ANTHROPIC_MODEL", "test-model")

	client, err := NewAnthropicClient(logger.Nop())
	if err != nil {
		t.Fatalf("NewAnthropicClient: %v", err)
	}
	return client
}

func TestNewAnthropicClientRequiresAPIKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	if _, err := NewAnthropicClient(logger.Nop()); err == nil {
		t.Fatal("expected error without api key")
	}
}

func TestCompleteConcatenatesTextBlocks(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.Header.Get("x-api-key") != "test-key" {
			t.Errorf("x-api-key = %q", r.Header.Get("x-api-key"))
		}
		if r.Header.Get("anthropic-version") != "2023-06-01" {
			t.Errorf("anthropic-version = %q", r.Header.Get("anthropic-version"))
		}

		var req anthropicRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Model != "test-model" || req.System == "" {
			t.Errorf("request = %+v", req)
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
			t.Errorf("messages = %+v", req.Messages)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"content": []map[string]string{
				{"type": "text", "text": "Hello"},
				{"type": "text", "text": ", world"},
			},
		})
	})

	got, err := client.Complete(context.Background(), "be helpful", "hi")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != "Hello, world" {
		t.Fatalf("reply = %q", got)
	}
	if client.Model() != "test-model" {
		t.Fatalf("Model() = %q", client.Model())
	}
}

func TestCompleteNon2xxIsAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"type":"overloaded_error"}}`, http.StatusTooManyRequests)
	})

	if _, err := client.Complete(context.Background(), "sys", "user"); err == nil {
		t.Fatal("expected error for non-2xx status")
	}
}

func TestCompleteBadBodyIsAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	if _, err := client.Complete(context.Background(), "sys", "user"); err == nil {
		t.Fatal("expected decode error")
	}
}

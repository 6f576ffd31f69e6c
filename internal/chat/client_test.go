package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenAIClient_Send(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("path = %s, want /v1/chat/completions", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q, want bearer test-key", got)
		}

		var req completionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "gpt-4o-mini" {
			t.Errorf("model = %q, want gpt-4o-mini", req.Model)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Content != "Is Gokyo Ri safe in March?" {
			t.Errorf("messages = %+v, want fixed system prompt then the user message", req.Messages)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"Carry layers and check avalanche reports."}}]}`))
	}))
	defer server.Close()

	client := NewOpenAIClient("test-key", "gpt-4o-mini")
	client.baseURL = server.URL

	reply, err := client.Send(context.Background(), "Is Gokyo Ri safe in March?")
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if reply != "Carry layers and check avalanche reports." {
		t.Errorf("Send() = %q, want the first choice's content", reply)
	}
}

func TestOpenAIClient_Send_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewOpenAIClient("bad-key", "gpt-4o-mini")
	client.baseURL = server.URL

	_, err := client.Send(context.Background(), "hello")
	if !errors.Is(err, ErrRelayFailed) {
		t.Errorf("Send() error = %v, want ErrRelayFailed", err)
	}
}

func TestOpenAIClient_Send_MalformedPayload(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not json", "<html>oops</html>"},
		{"no choices", `{"choices":[]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := NewOpenAIClient("test-key", "gpt-4o-mini")
			client.baseURL = server.URL

			_, err := client.Send(context.Background(), "hello")
			if !errors.Is(err, ErrRelayFailed) {
				t.Errorf("Send() error = %v, want ErrRelayFailed", err)
			}
		})
	}
}

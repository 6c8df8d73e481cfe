package openai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"evalmatch-backend/internal/llm"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Setenv("OPENAI_BASE_URL", srv.URL)

	client, err := NewClient("test-key", "gpt-4")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func chatReply(content string) string {
	reply := map[string]any{
		"id":    "chatcmpl-1",
		"model": "gpt-4",
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
		"usage": map[string]int{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
	}
	data, _ := json.Marshal(reply)
	return string(data)
}

func TestAnalyzeParsesJSONReply(t *testing.T) {
	var gotReq chatRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("authorization = %q", auth)
		}
		io.WriteString(w, chatReply(`{"skills":["Python"]}`))
	})

	raw, err := client.Analyze(context.Background(), llm.KindResume, "Jane Doe, Python, 5 years at Acme")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if string(raw) != `{"skills":["Python"]}` {
		t.Fatalf("raw = %s", raw)
	}

	if len(gotReq.Messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(gotReq.Messages))
	}
	if gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Role != "user" {
		t.Fatalf("roles = %s,%s", gotReq.Messages[0].Role, gotReq.Messages[1].Role)
	}
	if gotReq.Temperature == nil || *gotReq.Temperature != 0.3 {
		t.Fatalf("temperature = %v, want 0.3", gotReq.Temperature)
	}
}

func TestAnalyzeQuestionsTemperature(t *testing.T) {
	var gotReq chatRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotReq)
		io.WriteString(w, chatReply(`{"technical":["What is a goroutine?"]}`))
	})

	if _, err := client.Analyze(context.Background(), llm.KindInterviewQuestions, "match analysis"); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if gotReq.Temperature == nil || *gotReq.Temperature != 0.5 {
		t.Fatalf("temperature = %v, want 0.5", gotReq.Temperature)
	}
}

func TestAnalyzeEmptyReply(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, chatReply("   "))
	})

	_, err := client.Analyze(context.Background(), llm.KindResume, "text")
	if !errors.Is(err, llm.ErrEmptyResponse) {
		t.Fatalf("err = %v, want ErrEmptyResponse", err)
	}
}

func TestAnalyzeMissingChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"id":"chatcmpl-1","choices":[]}`)
	})

	_, err := client.Analyze(context.Background(), llm.KindResume, "text")
	if !errors.Is(err, llm.ErrEmptyResponse) {
		t.Fatalf("err = %v, want ErrEmptyResponse", err)
	}
}

func TestAnalyzeNonJSONReply(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, chatReply("I'm sorry, I can't return JSON today."))
	})

	_, err := client.Analyze(context.Background(), llm.KindMatch, "text")
	if !errors.Is(err, llm.ErrMalformedResponse) {
		t.Fatalf("err = %v, want ErrMalformedResponse", err)
	}
}

func TestAnalyzeUpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"error":{"message":"rate limited","type":"rate_limit"}}`)
	})

	_, err := client.Analyze(context.Background(), llm.KindResume, "text")
	if err == nil {
		t.Fatal("expected upstream error")
	}
}

func TestBuildMessagesUnknownKind(t *testing.T) {
	if _, err := BuildMessages(llm.Kind("bogus"), "text"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

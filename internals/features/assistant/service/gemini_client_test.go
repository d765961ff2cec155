package service

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"helix_backend/internals/features/assistant/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(baseURL string) *GeminiClient {
	client := NewGeminiClient("test-key")
	client.BaseURL = baseURL
	client.HTTP.RetryMax = 0
	return client
}

func TestStreamChatCollectsChunks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.RawQuery, "alt=sse")
		w.Header().Set("Content-Type", "text/event-stream")
		w.Write([]byte(`data: {"candidates":[{"content":{"parts":[{"text":"We rebuild "}]}}]}` + "\n\n"))
		w.Write([]byte(`data: {"candidates":[{"content":{"parts":[{"text":"CB750 engines."}]}}]}` + "\n\n"))
		w.Write([]byte("data: [DONE]\n\n"))
	}))
	defer srv.Close()

	var got strings.Builder
	err := testClient(srv.URL).StreamChat("You are the workshop assistant.", nil, "Do you rebuild engines?", func(text string) error {
		got.WriteString(text)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "We rebuild CB750 engines.", got.String())
}

func TestStreamChatSendsHistory(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := make([]byte, r.ContentLength)
		r.Body.Read(raw)
		body = string(raw)
		w.Write([]byte(`data: {"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}` + "\n\n"))
	}))
	defer srv.Close()

	history := []dto.ChatTurn{
		{Role: "user", Text: "Hi"},
		{Role: "model", Text: "Hello, how can I help?"},
	}
	err := testClient(srv.URL).StreamChat("system", history, "What are your hours?", func(string) error { return nil })
	require.NoError(t, err)

	assert.Contains(t, body, `"Hello, how can I help?"`)
	assert.Contains(t, body, `"What are your hours?"`)
	assert.Contains(t, body, `"system_instruction"`)
}

func TestStreamChatUpstreamErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := testClient(srv.URL).StreamChat("system", nil, "hello", func(string) error { return nil })
	assert.Error(t, err)
}

func TestStreamChatRequiresAPIKey(t *testing.T) {
	client := NewGeminiClient("")
	err := client.StreamChat("system", nil, "hello", func(string) error { return nil })
	assert.Error(t, err)
}

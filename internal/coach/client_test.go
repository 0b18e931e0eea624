package coach

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatSuccessReturnsTrimmedReply(t *testing.T) {
	var gotBody chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  Start with one small step.  "}}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "llama3.1:8b", 5*time.Second)
	reply := client.Chat(context.Background(), "system prompt", "user prompt")

	assert.Equal(t, "Start with one small step.", reply)
	assert.Equal(t, "llama3.1:8b", gotBody.Model)
	assert.False(t, gotBody.Stream)
	require.Len(t, gotBody.Messages, 2)
	assert.Equal(t, "system", gotBody.Messages[0].Role)
	assert.Equal(t, "system prompt", gotBody.Messages[0].Content)
	assert.Equal(t, "user", gotBody.Messages[1].Role)
	assert.Equal(t, "user prompt", gotBody.Messages[1].Content)
}

func TestChatConnectionRefusedReturnsOfflineMarker(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing is listening anymore

	client := NewClient(server.URL, "llama3.1:8b", time.Second)
	reply := client.Chat(context.Background(), "sys", "usr")

	assert.Contains(t, reply, OfflineMarker)
}

func TestChatNon2xxReturnsOfflineMarker(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "llama3.1:8b", time.Second)
	reply := client.Chat(context.Background(), "sys", "usr")

	assert.Contains(t, reply, OfflineMarker)
	assert.Contains(t, reply, "404")
}

func TestChatMalformedResponseReturnsOfflineMarker(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "llama3.1:8b", time.Second)
	assert.Contains(t, client.Chat(context.Background(), "sys", "usr"), OfflineMarker)
}

func TestChatEmptyChoicesReturnsOfflineMarker(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "llama3.1:8b", time.Second)
	assert.Contains(t, client.Chat(context.Background(), "sys", "usr"), OfflineMarker)
}

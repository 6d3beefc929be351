package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance-dashboard/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(config.AIConfig{
		GeminiAPIKey: "test-key",
		Model:        "gemini-2.5-flash",
		BaseURL:      server.URL,
	})
	require.NoError(t, err)
	return client
}

func generateReply(t *testing.T, w http.ResponseWriter, text string) {
	t.Helper()
	resp := generateResponse{
		Candidates: []candidate{{Content: content{Parts: []part{{Text: text}}}}},
	}
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(resp))
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	client, err := NewClient(config.AIConfig{})

	assert.Nil(t, client)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestClient_Generate(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateRequest

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		generateReply(t, w, "Hello Alice!")
	})

	text, err := client.Generate(context.Background(), "How do I save?", "Be helpful.")

	require.NoError(t, err)
	assert.Equal(t, "Hello Alice!", text)
	assert.Equal(t, "/models/gemini-2.5-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)

	// System instruction is prepended, separated by a blank line.
	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	assert.Equal(t, "Be helpful.\n\nHow do I save?", gotBody.Contents[0].Parts[0].Text)
}

func TestClient_Generate_NoSystemInstruction(t *testing.T) {
	var gotBody generateRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		generateReply(t, w, "ok")
	})

	_, err := client.Generate(context.Background(), "raw question", "")

	require.NoError(t, err)
	assert.Equal(t, "raw question", gotBody.Contents[0].Parts[0].Text)
}

func TestClient_Generate_HTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"code": 429, "message": "quota exceeded"}}`, http.StatusTooManyRequests)
	})

	text, err := client.Generate(context.Background(), "q", "")

	assert.Empty(t, text)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate AI response")
	assert.Contains(t, err.Error(), "429")
}

func TestClient_Generate_EmptyCandidates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates": []}`))
	})

	_, err := client.Generate(context.Background(), "q", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}

func TestClient_Generate_MultiPartReply(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		resp := generateResponse{
			Candidates: []candidate{{Content: content{Parts: []part{{Text: "Hello"}, {Text: " world"}}}}},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	text, err := client.Generate(context.Background(), "q", "")

	require.NoError(t, err)
	assert.Equal(t, "Hello world", text)
}

func TestClient_TestConnection(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  bool
	}{
		{"replies hello", "Hello! I can read this.", true},
		{"case insensitive", "HELLO there", true},
		{"unrelated reply", "I cannot help with that.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPrompt string
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				var req generateRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				gotPrompt = req.Contents[0].Parts[0].Text
				generateReply(t, w, tt.reply)
			})

			assert.Equal(t, tt.want, client.TestConnection(context.Background()))
			assert.Equal(t, canaryPrompt, gotPrompt)
		})
	}
}

func TestClient_TestConnection_ServerDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client, err := NewClient(config.AIConfig{GeminiAPIKey: "k", BaseURL: server.URL})
	require.NoError(t, err)
	server.Close()

	// A dead endpoint is unhealthy, never an error.
	assert.False(t, client.TestConnection(context.Background()))
}

package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"notepad-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatSendsOptionsAndReturnsContent(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"model":"llama3","message":{"role":"assistant","content":"Hi there"},"done":true}`))
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "llama3")
	out, err := p.Chat(context.Background(), []llm.Message{
		{Role: llm.RoleSystem, Content: "be brief"},
		{Role: "model", Content: "earlier"},
		{Role: llm.RoleUser, Content: "Hello"},
	}, llm.WithTemperature(0), llm.WithMaxTokens(1000), llm.WithModel("mistral"))
	require.NoError(t, err)
	assert.Equal(t, "Hi there", out)

	assert.Equal(t, "mistral", got["model"])
	assert.Equal(t, false, got["stream"])

	opts := got["options"].(map[string]interface{})
	assert.Equal(t, float64(0), opts["temperature"])
	assert.Equal(t, float64(1000), opts["num_predict"])

	msgs := got["messages"].([]interface{})
	require.Len(t, msgs, 3)
	assert.Equal(t, "assistant", msgs[1].(map[string]interface{})["role"])
}

func TestChatNon200IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"model not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewOllamaProvider(srv.URL, "missing").Generate(context.Background(), "Hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGroqClient_Complete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer gsk-test", r.Header.Get("Authorization"))

		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, groqModel, req.Model)
		assert.Equal(t, 200, req.MaxTokens)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)

		fmt.Fprint(w, `{"choices": [{"message": {"role": "assistant", "content": "  God morgen! ☀️  "}}]}`)
	}))
	defer server.Close()

	c := NewGroqClient(server.URL, "gsk-test", testClientConfig(), zap.NewNop())

	reply, err := c.Complete(context.Background(), "Lag en hilsen")
	require.NoError(t, err)
	assert.Equal(t, "God morgen! ☀️", reply)
}

func TestGroqClient_Complete_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices": []}`)
	}))
	defer server.Close()

	c := NewGroqClient(server.URL, "gsk-test", testClientConfig(), zap.NewNop())

	_, err := c.Complete(context.Background(), "hei")
	assert.Error(t, err)
}

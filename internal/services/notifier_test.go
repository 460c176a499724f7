package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"morningbrief/internal/models"
	"morningbrief/pkg/client"
)

func notifierClientConfig() client.ClientConfig {
	return client.ClientConfig{
		Timeout:        2 * time.Second,
		UserAgent:      "morningbrief-test/1.0",
		MaxRetries:     2,
		RetryDelay:     time.Millisecond,
		Multiplier:     2,
		Threshold:      3,
		BreakerTimeout: time.Second,
	}
}

func TestNotifier_Send(t *testing.T) {
	var received models.WebhookMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	n := NewNotifier(server.URL, notifierClientConfig(), zap.NewNop())

	message := &models.WebhookMessage{
		Embeds: []models.Embed{{Title: "☀️ God morgen!", Color: 0x3498DB}},
	}

	require.NoError(t, n.Send(context.Background(), message))
	require.Len(t, received.Embeds, 1)
	assert.Equal(t, "☀️ God morgen!", received.Embeds[0].Title)
}

func TestNotifier_Send_ClampsBeforePosting(t *testing.T) {
	var received models.WebhookMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &received)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	n := NewNotifier(server.URL, notifierClientConfig(), zap.NewNop())

	message := &models.WebhookMessage{
		Embeds: []models.Embed{{Title: strings.Repeat("t", 500)}},
	}

	require.NoError(t, n.Send(context.Background(), message))
	require.Len(t, received.Embeds, 1)
	assert.Len(t, []rune(received.Embeds[0].Title), models.MaxTitleLen)
}

func TestNotifier_Send_RetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	n := NewNotifier(server.URL, notifierClientConfig(), zap.NewNop())

	err := n.Send(context.Background(), &models.WebhookMessage{Embeds: []models.Embed{{Title: "hei"}}})
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestNotifier_Send_FailsOnClientError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	n := NewNotifier(server.URL, notifierClientConfig(), zap.NewNop())

	err := n.Send(context.Background(), &models.WebhookMessage{Embeds: []models.Embed{{Title: "hei"}}})
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestNotifier_SendError(t *testing.T) {
	var received models.WebhookMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &received)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	n := NewNotifier(server.URL, notifierClientConfig(), zap.NewNop())

	require.NoError(t, n.SendError(context.Background(), fmt.Errorf("webhook exploded")))

	require.Len(t, received.Embeds, 1)
	assert.Equal(t, "⚠️ Morgenbrief feilet", received.Embeds[0].Title)
	assert.Equal(t, "webhook exploded", received.Embeds[0].Description)
	assert.Equal(t, 0xE74C3C, received.Embeds[0].Color)
}

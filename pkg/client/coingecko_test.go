package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCoinGeckoClient_GetPrices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/simple/price", r.URL.Path)
		assert.Equal(t, "nok,usd", r.URL.Query().Get("vs_currencies"))
		assert.Equal(t, "true", r.URL.Query().Get("include_24hr_change"))
		fmt.Fprint(w, `{
			"bitcoin": {"nok": 1034500.12, "usd": 97000.5, "nok_24h_change": 2.34},
			"ethereum": {"nok": 35600.0, "usd": 3340.0, "nok_24h_change": -1.2}
		}`)
	}))
	defer server.Close()

	c := NewCoinGeckoClient(server.URL, testClientConfig(), zap.NewNop())

	prices, err := c.GetPrices(context.Background())
	require.NoError(t, err)
	require.Len(t, prices, 2)

	// Tracked-coin order is preserved regardless of the response map.
	assert.Equal(t, "bitcoin", prices[0].ID)
	assert.Equal(t, "Bitcoin", prices[0].Name)
	assert.Equal(t, "₿", prices[0].Emoji)
	assert.Equal(t, 1034500.12, prices[0].PriceNOK)
	assert.Equal(t, 2.34, prices[0].Change24h)

	assert.Equal(t, "Ethereum", prices[1].Name)
	assert.Equal(t, "Ξ", prices[1].Emoji)
}

func TestCoinGeckoClient_GetPrices_NoTrackedCoins(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"somethingelse": {"nok": 1.0, "usd": 0.1, "nok_24h_change": 0}}`)
	}))
	defer server.Close()

	c := NewCoinGeckoClient(server.URL, testClientConfig(), zap.NewNop())

	_, err := c.GetPrices(context.Background())
	assert.Error(t, err)
}

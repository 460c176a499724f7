package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"morningbrief/internal/models"
)

func yahooChartBody(price, previousClose float64) string {
	return fmt.Sprintf(`{
		"chart": {
			"result": [
				{"meta": {"regularMarketPrice": %f, "previousClose": %f}}
			]
		}
	}`, price, previousClose)
}

func TestFinanceClient_GetFinanceData(t *testing.T) {
	yahoo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "EQNR.OL") {
			fmt.Fprint(w, yahooChartBody(270.0, 250.0))
			return
		}
		fmt.Fprint(w, yahooChartBody(100.0, 100.0))
	}))
	defer yahoo.Close()

	rates := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"rates": {"USD": 0.0955, "EUR": 0.0876, "SEK": 1.0, "GBP": 0.0752, "JPY": 14.2}}`)
	}))
	defer rates.Close()

	c := NewFinanceClient(yahoo.URL, rates.URL, testClientConfig(), zap.NewNop())

	data, err := c.GetFinanceData(context.Background())
	require.NoError(t, err)

	require.Len(t, data.Stocks, 7)
	var equinor *models.StockQuote
	for i := range data.Stocks {
		if data.Stocks[i].Symbol == "EQNR.OL" {
			equinor = &data.Stocks[i]
		}
	}
	require.NotNil(t, equinor)
	assert.Equal(t, 270.0, equinor.Price)
	assert.InDelta(t, 8.0, equinor.ChangePercent, 1e-9)

	// Only the tracked pairs come back, NOK-inverted and rounded.
	require.Len(t, data.Currencies, 4)
	assert.Equal(t, "USD", data.Currencies[0].From)
	assert.Equal(t, "NOK", data.Currencies[0].To)
	assert.InDelta(t, 10.4712, data.Currencies[0].Rate, 1e-9)
	assert.Equal(t, 1.0, data.Currencies[2].Rate)
}

func TestFinanceClient_GetFinanceData_StocksDownCurrenciesUp(t *testing.T) {
	yahoo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer yahoo.Close()

	rates := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"rates": {"USD": 0.1}}`)
	}))
	defer rates.Close()

	c := NewFinanceClient(yahoo.URL, rates.URL, testClientConfig(), zap.NewNop())

	data, err := c.GetFinanceData(context.Background())
	require.NoError(t, err)
	assert.Empty(t, data.Stocks)
	require.Len(t, data.Currencies, 1)
	assert.Equal(t, 10.0, data.Currencies[0].Rate)
}

func TestFinanceClient_GetFinanceData_AllDown(t *testing.T) {
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer down.Close()

	c := NewFinanceClient(down.URL, down.URL, testClientConfig(), zap.NewNop())

	_, err := c.GetFinanceData(context.Background())
	assert.Error(t, err)
}

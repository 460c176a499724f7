package client

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"morningbrief/internal/models"
)

type stockSymbol struct {
	Symbol string
	Name   string
}

// defaultStocks are the Oslo Børs tickers tracked in the finance section.
var defaultStocks = []stockSymbol{
	{"^OSEAX", "Oslo Børs"},
	{"EQNR.OL", "Equinor"},
	{"DNB.OL", "DNB"},
	{"TEL.OL", "Telenor"},
	{"MOWI.OL", "Mowi"},
	{"NHY.OL", "Norsk Hydro"},
	{"YAR.OL", "Yara"},
}

type currencyPair struct {
	Code  string
	Emoji string
}

var currencyPairs = []currencyPair{
	{"USD", "💵"},
	{"EUR", "💶"},
	{"SEK", "🇸🇪"},
	{"GBP", "💷"},
}

// FinanceClient combines Yahoo Finance stock quotes with exchangerate-api
// currency rates.
type FinanceClient struct {
	*BaseClient
	yahooBaseURL    string
	exchangeRateURL string
}

type yahooChartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				PreviousClose      float64 `json:"previousClose"`
			} `json:"meta"`
		} `json:"result"`
	} `json:"chart"`
}

type exchangeRateResponse struct {
	Rates map[string]float64 `json:"rates"`
}

func NewFinanceClient(yahooBaseURL, exchangeRateURL string, config ClientConfig, logger *zap.Logger) *FinanceClient {
	return &FinanceClient{
		BaseClient:      NewBaseClient("finance", config, logger),
		yahooBaseURL:    strings.TrimRight(yahooBaseURL, "/"),
		exchangeRateURL: exchangeRateURL,
	}
}

// GetFinanceData fetches all tracked stocks and currency rates. Individual
// symbol failures are logged and skipped; the call only fails when nothing
// could be fetched at all.
func (c *FinanceClient) GetFinanceData(ctx context.Context) (*models.FinanceData, error) {
	stocks := c.fetchStocks(ctx)
	currencies := c.fetchCurrencies(ctx)

	if len(stocks) == 0 && len(currencies) == 0 {
		return nil, fmt.Errorf("no finance data available")
	}

	return &models.FinanceData{
		Stocks:     stocks,
		Currencies: currencies,
		Timestamp:  time.Now(),
	}, nil
}

func (c *FinanceClient) fetchStocks(ctx context.Context) []models.StockQuote {
	var quotes []models.StockQuote

	for _, stock := range defaultStocks {
		url := fmt.Sprintf("%s/%s", c.yahooBaseURL, stock.Symbol)

		data, err := c.GetWithRetry(ctx, url, nil)
		if err != nil {
			c.logger.Warn("Failed to fetch stock quote",
				zap.String("symbol", stock.Symbol),
				zap.Error(err))
			continue
		}

		var response yahooChartResponse
		if err := json.Unmarshal(data, &response); err != nil {
			c.logger.Warn("Failed to parse stock response",
				zap.String("symbol", stock.Symbol),
				zap.Error(err))
			continue
		}

		if len(response.Chart.Result) == 0 {
			continue
		}

		meta := response.Chart.Result[0].Meta
		change := 0.0
		if meta.PreviousClose > 0 {
			change = (meta.RegularMarketPrice - meta.PreviousClose) / meta.PreviousClose * 100
		}

		quotes = append(quotes, models.StockQuote{
			Symbol:        stock.Symbol,
			Name:          stock.Name,
			Price:         meta.RegularMarketPrice,
			ChangePercent: change,
		})
	}

	return quotes
}

func (c *FinanceClient) fetchCurrencies(ctx context.Context) []models.CurrencyRate {
	data, err := c.GetWithRetry(ctx, c.exchangeRateURL, nil)
	if err != nil {
		c.logger.Warn("Failed to fetch currency rates", zap.Error(err))
		return nil
	}

	var response exchangeRateResponse
	if err := json.Unmarshal(data, &response); err != nil {
		c.logger.Warn("Failed to parse currency response", zap.Error(err))
		return nil
	}

	var rates []models.CurrencyRate
	for _, pair := range currencyPairs {
		rate, ok := response.Rates[pair.Code]
		if !ok || rate == 0 {
			continue
		}
		// The provider returns NOK->X rates; invert to X->NOK.
		rates = append(rates, models.CurrencyRate{
			From:  pair.Code,
			To:    "NOK",
			Rate:  math.Round(1/rate*10000) / 10000,
			Emoji: pair.Emoji,
		})
	}

	return rates
}

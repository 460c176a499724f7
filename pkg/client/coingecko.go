package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"morningbrief/internal/models"
)

var defaultCoins = []string{"bitcoin", "ethereum", "solana", "dogecoin", "cardano"}

var coinEmojis = map[string]string{
	"bitcoin":  "₿",
	"ethereum": "Ξ",
	"solana":   "◎",
	"dogecoin": "🐕",
	"cardano":  "₳",
}

// CoinGeckoClient fetches simple price quotes for the tracked coins.
type CoinGeckoClient struct {
	*BaseClient
	baseURL string
}

type coinGeckoQuote struct {
	NOK          float64 `json:"nok"`
	USD          float64 `json:"usd"`
	NOK24hChange float64 `json:"nok_24h_change"`
}

func NewCoinGeckoClient(baseURL string, config ClientConfig, logger *zap.Logger) *CoinGeckoClient {
	return &CoinGeckoClient{
		BaseClient: NewBaseClient("coingecko", config, logger),
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

func (c *CoinGeckoClient) GetPrices(ctx context.Context) ([]models.CryptoPrice, error) {
	url := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=nok,usd&include_24hr_change=true",
		c.baseURL, strings.Join(defaultCoins, ","))

	data, err := c.GetWithRetry(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch crypto prices: %w", err)
	}

	quotes := make(map[string]coinGeckoQuote)
	if err := json.Unmarshal(data, &quotes); err != nil {
		return nil, fmt.Errorf("failed to parse crypto response: %w", err)
	}

	var prices []models.CryptoPrice
	for _, coin := range defaultCoins {
		quote, ok := quotes[coin]
		if !ok {
			continue
		}

		emoji, ok := coinEmojis[coin]
		if !ok {
			emoji = "🪙"
		}

		prices = append(prices, models.CryptoPrice{
			ID:        coin,
			Name:      strings.ToUpper(coin[:1]) + coin[1:],
			Emoji:     emoji,
			PriceNOK:  quote.NOK,
			PriceUSD:  quote.USD,
			Change24h: quote.NOK24hChange,
		})
	}

	if len(prices) == 0 {
		return nil, fmt.Errorf("crypto response contained no tracked coins")
	}

	return prices, nil
}

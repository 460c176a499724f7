package models

import (
	"fmt"
	"time"
)

type TrendDirection string

const (
	TrendUp   TrendDirection = "up"
	TrendDown TrendDirection = "down"
	TrendFlat TrendDirection = "flat"
)

type StockQuote struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	ChangePercent float64 `json:"change_percent"`
}

func (q *StockQuote) Trend() TrendDirection {
	switch {
	case q.ChangePercent > 0.01:
		return TrendUp
	case q.ChangePercent < -0.01:
		return TrendDown
	default:
		return TrendFlat
	}
}

func (q *StockQuote) TrendEmoji() string {
	if q.ChangePercent >= 0 {
		return "📈"
	}
	return "📉"
}

func (q *StockQuote) ChangeFormatted() string {
	if q.ChangePercent >= 0 {
		return fmt.Sprintf("+%.2f%%", q.ChangePercent)
	}
	return fmt.Sprintf("%.2f%%", q.ChangePercent)
}

type CurrencyRate struct {
	From  string  `json:"from"`
	To    string  `json:"to"`
	Rate  float64 `json:"rate"`
	Emoji string  `json:"emoji"`
}

func (c *CurrencyRate) Pair() string {
	return c.From + "/" + c.To
}

type CryptoPrice struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Emoji     string  `json:"emoji"`
	PriceNOK  float64 `json:"price_nok"`
	PriceUSD  float64 `json:"price_usd"`
	Change24h float64 `json:"change_24h"`
}

func (c *CryptoPrice) Trend() TrendDirection {
	switch {
	case c.Change24h > 0.01:
		return TrendUp
	case c.Change24h < -0.01:
		return TrendDown
	default:
		return TrendFlat
	}
}

func (c *CryptoPrice) TrendEmoji() string {
	if c.Change24h >= 0 {
		return "📈"
	}
	return "📉"
}

func (c *CryptoPrice) ChangeFormatted() string {
	if c.Change24h >= 0 {
		return fmt.Sprintf("+%.1f%%", c.Change24h)
	}
	return fmt.Sprintf("%.1f%%", c.Change24h)
}

type FinanceData struct {
	Stocks     []StockQuote   `json:"stocks"`
	Currencies []CurrencyRate `json:"currencies"`
	Timestamp  time.Time      `json:"timestamp"`
}

// ElectricityPrices holds a day's spot prices for one zone, all values in
// øre/kWh. CurrentPrice is nil when the current hour is missing from the
// provider series.
type ElectricityPrices struct {
	Zone               string   `json:"zone"`
	CurrentPrice       *float64 `json:"current_price,omitempty"`
	AveragePrice       float64  `json:"average_price"`
	CheapestHour       string   `json:"cheapest_hour"`
	CheapestPrice      float64  `json:"cheapest_price"`
	MostExpensiveHour  string   `json:"most_expensive_hour"`
	MostExpensivePrice float64  `json:"most_expensive_price"`
}

// PriceLevelEmoji maps the current price to a traffic-light indicator using
// the 50/100 øre thresholds.
func (e *ElectricityPrices) PriceLevelEmoji() string {
	if e.CurrentPrice == nil {
		return "🟡"
	}
	switch {
	case *e.CurrentPrice < 50:
		return "🟢"
	case *e.CurrentPrice < 100:
		return "🟡"
	default:
		return "🔴"
	}
}

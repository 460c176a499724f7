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

// ElspotClient fetches day-ahead electricity spot prices from
// hvakosterstrommen.no, one JSON document per zone per day.
type ElspotClient struct {
	*BaseClient
	baseURL string
}

type elspotEntry struct {
	NOKPerKWh float64 `json:"NOK_per_kWh"`
	TimeStart string  `json:"time_start"`
}

func NewElspotClient(baseURL string, config ClientConfig, logger *zap.Logger) *ElspotClient {
	return &ElspotClient{
		BaseClient: NewBaseClient("elspot", config, logger),
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

func (c *ElspotClient) GetPrices(ctx context.Context, zone string, now time.Time) (*models.ElectricityPrices, error) {
	url := fmt.Sprintf("%s/%s_%s.json", c.baseURL, now.Format("2006/01-02"), zone)

	data, err := c.GetWithRetry(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch electricity prices: %w", err)
	}

	var entries []elspotEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse electricity response: %w", err)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("electricity response contained no entries")
	}

	return parseElspotSeries(entries, zone, now), nil
}

// parseElspotSeries derives current/average/cheapest/most-expensive prices
// from a day's series. Ties on min/max break to the first occurrence;
// NOK/kWh is converted to øre by ×100 rounded to one decimal.
func parseElspotSeries(entries []elspotEntry, zone string, now time.Time) *models.ElectricityPrices {
	currentMarker := fmt.Sprintf("T%02d", now.Hour())

	var currentPrice *float64
	cheapest := entries[0]
	expensive := entries[0]
	sum := 0.0

	for _, entry := range entries {
		sum += entry.NOKPerKWh
		if entry.NOKPerKWh < cheapest.NOKPerKWh {
			cheapest = entry
		}
		if entry.NOKPerKWh > expensive.NOKPerKWh {
			expensive = entry
		}
		if currentPrice == nil && strings.Contains(entry.TimeStart, currentMarker) {
			price := toOre(entry.NOKPerKWh)
			currentPrice = &price
		}
	}

	return &models.ElectricityPrices{
		Zone:               zone,
		CurrentPrice:       currentPrice,
		AveragePrice:       toOre(sum / float64(len(entries))),
		CheapestHour:       hourOf(cheapest.TimeStart),
		CheapestPrice:      toOre(cheapest.NOKPerKWh),
		MostExpensiveHour:  hourOf(expensive.TimeStart),
		MostExpensivePrice: toOre(expensive.NOKPerKWh),
	}
}

func toOre(nokPerKWh float64) float64 {
	return math.Round(nokPerKWh*100*10) / 10
}

func hourOf(timeStart string) string {
	if len(timeStart) >= 16 {
		return timeStart[11:16]
	}
	return timeStart
}

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"morningbrief/internal/models"
)

// MetClient talks to the Meteorologisk institutt APIs: locationforecast for
// current weather and sunrise for sun times.
type MetClient struct {
	*BaseClient
	baseURL string
}

type metForecastResponse struct {
	Properties struct {
		Timeseries []struct {
			Data struct {
				Instant struct {
					Details struct {
						AirTemperature   *float64 `json:"air_temperature"`
						WindSpeed        *float64 `json:"wind_speed"`
						RelativeHumidity *float64 `json:"relative_humidity"`
						AirPressure      *float64 `json:"air_pressure_at_sea_level"`
					} `json:"details"`
				} `json:"instant"`
				Next1Hours *struct {
					Summary struct {
						SymbolCode string `json:"symbol_code"`
					} `json:"summary"`
				} `json:"next_1_hours"`
				Next6Hours *struct {
					Summary struct {
						SymbolCode string `json:"symbol_code"`
					} `json:"summary"`
				} `json:"next_6_hours"`
			} `json:"data"`
		} `json:"timeseries"`
	} `json:"properties"`
}

type metSunResponse struct {
	Properties struct {
		Sunrise struct {
			Time string `json:"time"`
		} `json:"sunrise"`
		Sunset struct {
			Time string `json:"time"`
		} `json:"sunset"`
	} `json:"properties"`
}

// weatherSymbols maps the base of a Yr symbol code to a display string.
var weatherSymbols = map[string]string{
	"clearsky":         "☀️ Klar himmel",
	"fair":             "🌤️ Lettskyet",
	"partlycloudy":     "⛅ Delvis skyet",
	"cloudy":           "☁️ Overskyet",
	"rain":             "🌧️ Regn",
	"lightrain":        "🌦️ Lett regn",
	"heavyrain":        "🌧️ Kraftig regn",
	"lightrainshowers": "🌦️ Lette regnbyger",
	"rainshowers":      "🌧️ Regnbyger",
	"heavyrainshowers": "🌧️ Kraftige regnbyger",
	"snow":             "❄️ Snø",
	"lightsnow":        "🌨️ Lett snø",
	"heavysnow":        "❄️ Kraftig snø",
	"snowshowers":      "🌨️ Snøbyger",
	"sleet":            "🌨️ Sludd",
	"sleetshowers":     "🌨️ Sluddbyger",
	"fog":              "🌫️ Tåke",
	"thunder":          "⛈️ Torden",
	"rainandthunder":   "⛈️ Regn og torden",
	"snowandthunder":   "⛈️ Snø og torden",
	"sleetandthunder":  "⛈️ Sludd og torden",
}

func NewMetClient(baseURL string, config ClientConfig, logger *zap.Logger) *MetClient {
	return &MetClient{
		BaseClient: NewBaseClient("met", config, logger),
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

func (c *MetClient) GetCurrentWeather(ctx context.Context, city string, lat, lon float64) (*models.CurrentWeather, error) {
	url := fmt.Sprintf("%s/locationforecast/2.0/compact?lat=%.2f&lon=%.2f", c.baseURL, lat, lon)

	data, err := c.GetWithRetry(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weather: %w", err)
	}

	var response metForecastResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("failed to parse weather response: %w", err)
	}

	if len(response.Properties.Timeseries) == 0 {
		return nil, fmt.Errorf("weather response contained no timeseries")
	}

	entry := response.Properties.Timeseries[0].Data
	details := entry.Instant.Details
	if details.AirTemperature == nil || details.WindSpeed == nil {
		return nil, fmt.Errorf("weather response missing temperature or wind")
	}

	symbolCode := "cloudy"
	if entry.Next1Hours != nil {
		symbolCode = entry.Next1Hours.Summary.SymbolCode
	} else if entry.Next6Hours != nil {
		symbolCode = entry.Next6Hours.Summary.SymbolCode
	}

	symbolBase := strings.SplitN(symbolCode, "_", 2)[0]
	symbolText, ok := weatherSymbols[symbolBase]
	if !ok {
		symbolText = "❓ " + symbolCode
	}

	return &models.CurrentWeather{
		City:        city,
		Temperature: *details.AirTemperature,
		WindSpeed:   *details.WindSpeed,
		Humidity:    details.RelativeHumidity,
		Pressure:    details.AirPressure,
		SymbolCode:  symbolCode,
		SymbolText:  symbolText,
		Timestamp:   time.Now(),
	}, nil
}

func (c *MetClient) GetSunTimes(ctx context.Context, lat, lon float64, date time.Time) (*models.SunTimes, error) {
	url := fmt.Sprintf("%s/sunrise/3.0/sun?lat=%.2f&lon=%.2f&date=%s&offset=%%2B01%%3A00",
		c.baseURL, lat, lon, date.Format("2006-01-02"))

	data, err := c.GetWithRetry(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sun times: %w", err)
	}

	var response metSunResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("failed to parse sun response: %w", err)
	}

	sunrise, err := time.Parse(time.RFC3339, response.Properties.Sunrise.Time)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sunrise time: %w", err)
	}
	sunset, err := time.Parse(time.RFC3339, response.Properties.Sunset.Time)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sunset time: %w", err)
	}

	daylight := sunset.Sub(sunrise)
	if daylight < 0 {
		daylight += 24 * time.Hour
	}

	return &models.SunTimes{
		Sunrise:         sunrise.Format("15:04"),
		Sunset:          sunset.Format("15:04"),
		DaylightHours:   int(daylight.Hours()),
		DaylightMinutes: int(daylight.Minutes()) % 60,
	}, nil
}

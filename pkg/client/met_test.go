package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const metForecastBody = `{
	"properties": {
		"timeseries": [
			{
				"data": {
					"instant": {
						"details": {
							"air_temperature": -3.5,
							"wind_speed": 4.2,
							"relative_humidity": 87.0,
							"air_pressure_at_sea_level": 1013.2
						}
					},
					"next_1_hours": {
						"summary": {"symbol_code": "lightsnow"}
					}
				}
			}
		]
	}
}`

func TestMetClient_GetCurrentWeather(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/locationforecast/2.0/compact", r.URL.Path)
		assert.Equal(t, "59.43", r.URL.Query().Get("lat"))
		assert.Equal(t, "10.66", r.URL.Query().Get("lon"))
		fmt.Fprint(w, metForecastBody)
	}))
	defer server.Close()

	c := NewMetClient(server.URL, testClientConfig(), zap.NewNop())

	weather, err := c.GetCurrentWeather(context.Background(), "Moss", 59.43, 10.66)
	require.NoError(t, err)

	assert.Equal(t, "Moss", weather.City)
	assert.Equal(t, -3.5, weather.Temperature)
	assert.Equal(t, 4.2, weather.WindSpeed)
	require.NotNil(t, weather.Humidity)
	assert.Equal(t, 87.0, *weather.Humidity)
	assert.Equal(t, "lightsnow", weather.SymbolCode)
	assert.Equal(t, "🌨️ Lett snø", weather.SymbolText)
}

func TestMetClient_GetCurrentWeather_SymbolFallbacks(t *testing.T) {
	body := `{
		"properties": {
			"timeseries": [
				{
					"data": {
						"instant": {"details": {"air_temperature": 12.0, "wind_speed": 2.0}},
						"next_6_hours": {"summary": {"symbol_code": "clearsky_day"}}
					}
				}
			]
		}
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))
	defer server.Close()

	c := NewMetClient(server.URL, testClientConfig(), zap.NewNop())

	weather, err := c.GetCurrentWeather(context.Background(), "Oslo", 59.91, 10.75)
	require.NoError(t, err)

	// Day/night variants resolve through the symbol base.
	assert.Equal(t, "clearsky_day", weather.SymbolCode)
	assert.Equal(t, "☀️ Klar himmel", weather.SymbolText)
}

func TestMetClient_GetCurrentWeather_EmptyTimeseries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"properties": {"timeseries": []}}`)
	}))
	defer server.Close()

	c := NewMetClient(server.URL, testClientConfig(), zap.NewNop())

	_, err := c.GetCurrentWeather(context.Background(), "Moss", 59.43, 10.66)
	assert.Error(t, err)
}

func TestMetClient_GetSunTimes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sunrise/3.0/sun", r.URL.Path)
		assert.Equal(t, "2025-01-15", r.URL.Query().Get("date"))
		assert.Equal(t, "+01:00", r.URL.Query().Get("offset"))
		fmt.Fprint(w, `{
			"properties": {
				"sunrise": {"time": "2025-01-15T09:03:00+01:00"},
				"sunset": {"time": "2025-01-15T15:47:00+01:00"}
			}
		}`)
	}))
	defer server.Close()

	c := NewMetClient(server.URL, testClientConfig(), zap.NewNop())

	date := time.Date(2025, time.January, 15, 7, 0, 0, 0, time.UTC)
	sun, err := c.GetSunTimes(context.Background(), 59.43, 10.66, date)
	require.NoError(t, err)

	assert.Equal(t, "09:03", sun.Sunrise)
	assert.Equal(t, "15:47", sun.Sunset)
	assert.Equal(t, 6, sun.DaylightHours)
	assert.Equal(t, 44, sun.DaylightMinutes)
	assert.Equal(t, "6t 44min", sun.DaylightFormatted())
}

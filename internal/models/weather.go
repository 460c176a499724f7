package models

import (
	"fmt"
	"math"
	"strings"
	"time"
)

type CurrentWeather struct {
	City        string    `json:"city"`
	Temperature float64   `json:"temperature"`
	WindSpeed   float64   `json:"wind_speed"`
	Humidity    *float64  `json:"humidity,omitempty"`
	Pressure    *float64  `json:"pressure,omitempty"`
	SymbolCode  string    `json:"symbol_code"`
	SymbolText  string    `json:"symbol_text"`
	Timestamp   time.Time `json:"timestamp"`
}

// FeelsLike returns the wind-chill adjusted temperature rounded to one decimal.
func (w *CurrentWeather) FeelsLike() float64 {
	return WindChill(w.Temperature, w.WindSpeed)
}

func (w *CurrentWeather) ClothingAdvice() string {
	return ClothingAdvice(w.Temperature, w.SymbolCode)
}

type SunTimes struct {
	Sunrise         string `json:"sunrise"`
	Sunset          string `json:"sunset"`
	DaylightHours   int    `json:"daylight_hours"`
	DaylightMinutes int    `json:"daylight_minutes"`
}

func (s *SunTimes) DaylightFormatted() string {
	return fmt.Sprintf("%dt %dmin", s.DaylightHours, s.DaylightMinutes)
}

// WindChill computes the perceived temperature using the Canadian wind chill
// formula. It only applies when wind is present and the temperature is below
// 10°C; otherwise the raw temperature is returned unchanged.
func WindChill(temperature, windSpeed float64) float64 {
	if windSpeed <= 0 || temperature >= 10 {
		return temperature
	}

	windKmh := windSpeed * 3.6
	chill := 13.12 +
		0.6215*temperature -
		11.37*math.Pow(windKmh, 0.16) +
		0.3965*temperature*math.Pow(windKmh, 0.16)

	return math.Round(chill*10) / 10
}

type clothingBracket struct {
	Below  float64
	Advice string
}

// clothingBrackets is ordered coldest first; the first upper bound the
// temperature is strictly below wins.
var clothingBrackets = []clothingBracket{
	{-15.0, "🥶 EKSTREMT kaldt! Full vinterutrustning, begrens tid ute"},
	{-10.0, "🧥 Veldig kaldt! Boblejakke, lue, votter, skjerf og ullundertøy"},
	{0.0, "🧥 Kaldt! Varm jakke, lue og hansker anbefales"},
	{5.0, "🧥 Kjølig. Jakke og lag-på-lag"},
	{10.0, "🧥 Friskt. Lett jakke eller tykk genser"},
	{15.0, "👕 Behagelig. Genser eller lett jakke"},
	{20.0, "👕 Fint vær! T-skjorte og lett bukse"},
	{25.0, "☀️ Varmt! T-skjorte og shorts"},
}

const defaultClothingAdvice = "🥵 Veldig varmt! Lett, luftig klær. Husk solkrem!"

// ClothingAdvice picks the advice bracket for the temperature and appends
// weather-condition suffixes independently of the chosen bracket.
func ClothingAdvice(temperature float64, symbolCode string) string {
	advice := defaultClothingAdvice
	for _, bracket := range clothingBrackets {
		if temperature < bracket.Below {
			advice = bracket.Advice
			break
		}
	}

	code := strings.ToLower(symbolCode)
	if strings.Contains(code, "rain") || strings.Contains(code, "sleet") {
		advice += " 🌂 Ta med paraply!"
	}
	if strings.Contains(code, "snow") {
		advice += " ❄️ Vær obs på glatte veier!"
	}
	if strings.Contains(code, "thunder") {
		advice += " ⛈️ Vær forsiktig ute!"
	}

	return advice
}

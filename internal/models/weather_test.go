package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindChill_NotApplicable(t *testing.T) {
	// Warm or calm conditions return the raw temperature unchanged.
	assert.Equal(t, 12.0, WindChill(12.0, 5.0))
	assert.Equal(t, 10.0, WindChill(10.0, 8.0))
	assert.Equal(t, -5.0, WindChill(-5.0, 0))
	assert.Equal(t, 3.0, WindChill(3.0, -1.0))
}

func TestWindChill_Formula(t *testing.T) {
	// 0°C with 10 m/s wind: 13.12 - 11.37*36^0.16 = -7.0 to one decimal.
	assert.InDelta(t, -7.0, WindChill(0, 10), 0.05)

	// Chill is always below the raw temperature when it applies.
	chill := WindChill(-10, 5)
	assert.Less(t, chill, -10.0)
}

func TestWindChill_Rounding(t *testing.T) {
	chill := WindChill(2.3, 7.1)
	assert.InDelta(t, math.Round(chill*10)/10, chill, 1e-9)
}

func TestClothingAdvice_Brackets(t *testing.T) {
	tests := []struct {
		temp float64
		want string
	}{
		{-20, "🥶 EKSTREMT kaldt! Full vinterutrustning, begrens tid ute"},
		{-15, "🧥 Veldig kaldt! Boblejakke, lue, votter, skjerf og ullundertøy"},
		{-12, "🧥 Veldig kaldt! Boblejakke, lue, votter, skjerf og ullundertøy"},
		{-10, "🧥 Kaldt! Varm jakke, lue og hansker anbefales"},
		{-0.1, "🧥 Kaldt! Varm jakke, lue og hansker anbefales"},
		{0, "🧥 Kjølig. Jakke og lag-på-lag"},
		{5, "🧥 Friskt. Lett jakke eller tykk genser"},
		{10, "👕 Behagelig. Genser eller lett jakke"},
		{15, "👕 Fint vær! T-skjorte og lett bukse"},
		{20, "☀️ Varmt! T-skjorte og shorts"},
		{25, "🥵 Veldig varmt! Lett, luftig klær. Husk solkrem!"},
		{30, "🥵 Veldig varmt! Lett, luftig klær. Husk solkrem!"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, ClothingAdvice(tc.temp, "clearsky_day"), "temp %.1f", tc.temp)
	}
}

func TestClothingAdvice_ConditionSuffixes(t *testing.T) {
	assert.Contains(t, ClothingAdvice(8, "lightrain"), "🌂 Ta med paraply!")
	assert.Contains(t, ClothingAdvice(2, "sleet"), "🌂 Ta med paraply!")
	assert.Contains(t, ClothingAdvice(-3, "heavysnow"), "❄️ Vær obs på glatte veier!")
	assert.Contains(t, ClothingAdvice(15, "heavyrainandthunder"), "⛈️ Vær forsiktig ute!")

	// Rain with thunder gets both suffixes, in fixed order.
	advice := ClothingAdvice(15, "rainandthunder")
	assert.Contains(t, advice, "🌂 Ta med paraply!")
	assert.Contains(t, advice, "⛈️ Vær forsiktig ute!")

	assert.NotContains(t, ClothingAdvice(15, "clearsky_day"), "🌂")
}

func TestClothingAdvice_ColdSnow(t *testing.T) {
	advice := ClothingAdvice(-12, "snow")
	require.Contains(t, advice, "Boblejakke")
	require.Contains(t, advice, "❄️ Vær obs på glatte veier!")
}

func TestCurrentWeather_FeelsLike(t *testing.T) {
	w := &CurrentWeather{Temperature: 0, WindSpeed: 10}
	assert.Equal(t, WindChill(0, 10), w.FeelsLike())
}

func TestSunTimes_DaylightFormatted(t *testing.T) {
	s := &SunTimes{DaylightHours: 7, DaylightMinutes: 42}
	assert.Equal(t, "7t 42min", s.DaylightFormatted())
}

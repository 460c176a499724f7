package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"morningbrief/internal/config"
	"morningbrief/internal/models"
)

type stubWeather struct {
	weather    *models.CurrentWeather
	sun        *models.SunTimes
	weatherErr error
	sunErr     error
	calls      int
}

func (s *stubWeather) GetCurrentWeather(ctx context.Context, city string, lat, lon float64) (*models.CurrentWeather, error) {
	s.calls++
	return s.weather, s.weatherErr
}

func (s *stubWeather) GetSunTimes(ctx context.Context, lat, lon float64, date time.Time) (*models.SunTimes, error) {
	return s.sun, s.sunErr
}

type stubElectricity struct {
	prices *models.ElectricityPrices
	err    error
}

func (s *stubElectricity) GetPrices(ctx context.Context, zone string, now time.Time) (*models.ElectricityPrices, error) {
	return s.prices, s.err
}

type stubFinance struct {
	data *models.FinanceData
	err  error
}

func (s *stubFinance) GetFinanceData(ctx context.Context) (*models.FinanceData, error) {
	return s.data, s.err
}

type stubCrypto struct {
	prices []models.CryptoPrice
	err    error
}

func (s *stubCrypto) GetPrices(ctx context.Context) ([]models.CryptoPrice, error) {
	return s.prices, s.err
}

type stubNews struct {
	digest *models.NewsDigest
	err    error
}

func (s *stubNews) GetNews(ctx context.Context) (*models.NewsDigest, error) {
	return s.digest, s.err
}

type stubGreeter struct {
	reply  string
	err    error
	prompt string
}

func (s *stubGreeter) Complete(ctx context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.reply, s.err
}

func testConfig() *config.Config {
	cfg := &config.Config{City: "Moss"}
	cfg.Cities = map[string]config.City{
		"Moss": {Lat: 59.43, Lon: 10.66, PowerZone: "NO1"},
	}
	cfg.Cache.TTL = time.Minute
	return cfg
}

func testAggregator(cfg *config.Config) (*Aggregator, *stubWeather) {
	weather := &stubWeather{
		weather: &models.CurrentWeather{City: "Moss", Temperature: 4.2, WindSpeed: 2.0, SymbolText: "☁️ Overskyet"},
		sun:     &models.SunTimes{Sunrise: "08:51", Sunset: "16:02"},
	}

	agg := &Aggregator{
		cfg:     cfg,
		logger:  zap.NewNop(),
		cache:   NewCache(cfg.Cache.TTL, zap.NewNop()),
		clock:   func() time.Time { return time.Date(2025, time.December, 15, 7, 0, 0, 0, time.UTC) },
		weather: weather,
		electricity: &stubElectricity{prices: &models.ElectricityPrices{Zone: "NO1", AveragePrice: 74.2}},
		finance: &stubFinance{data: &models.FinanceData{
			Stocks: []models.StockQuote{{Symbol: "EQNR.OL", Name: "Equinor", Price: 270}},
		}},
		crypto: &stubCrypto{prices: []models.CryptoPrice{{ID: "bitcoin", Name: "Bitcoin"}}},
		news: &stubNews{digest: &models.NewsDigest{
			Top: []models.NewsItem{
				{Title: "Stor nyhet"},
				{Title: "Enda en"},
			},
		}},
	}
	return agg, weather
}

func TestCollect_AllSections(t *testing.T) {
	agg, _ := testAggregator(testConfig())
	defer agg.Stop()

	snapshot := agg.Collect(context.Background())

	require.NotNil(t, snapshot)
	assert.NotNil(t, snapshot.Weather)
	assert.NotNil(t, snapshot.Sun)
	assert.NotNil(t, snapshot.News)
	assert.NotNil(t, snapshot.Finance)
	assert.NotEmpty(t, snapshot.Crypto)
	assert.NotNil(t, snapshot.Electricity)
	assert.Equal(t, 6, snapshot.SectionCount())

	// Calendar facts come from the local tables, never the network.
	require.NotNil(t, snapshot.Calendar)
	assert.NotNil(t, snapshot.Calendar.NextHoliday)
	assert.NotEmpty(t, snapshot.Calendar.NameDays)
}

func TestCollect_FailuresAreContained(t *testing.T) {
	agg, weather := testAggregator(testConfig())
	defer agg.Stop()

	weather.weatherErr = fmt.Errorf("met.no is down")
	weather.weather = nil
	agg.finance = &stubFinance{err: fmt.Errorf("yahoo is down")}

	snapshot := agg.Collect(context.Background())

	require.NotNil(t, snapshot)
	assert.Nil(t, snapshot.Weather)
	assert.Nil(t, snapshot.Finance)

	// The healthy fetchers still land.
	assert.NotNil(t, snapshot.Sun)
	assert.NotNil(t, snapshot.News)
	assert.NotNil(t, snapshot.Electricity)
	assert.NotEmpty(t, snapshot.Crypto)
}

func TestCollect_SecondRunHitsCache(t *testing.T) {
	agg, weather := testAggregator(testConfig())
	defer agg.Stop()

	agg.Collect(context.Background())
	agg.Collect(context.Background())

	assert.Equal(t, 1, weather.calls)
}

func TestCollect_FailedFetchIsNotCached(t *testing.T) {
	agg, weather := testAggregator(testConfig())
	defer agg.Stop()

	weather.weatherErr = fmt.Errorf("transient")
	weather.weather = nil
	agg.Collect(context.Background())

	weather.weatherErr = nil
	weather.weather = &models.CurrentWeather{City: "Moss", Temperature: 1.0}
	snapshot := agg.Collect(context.Background())

	assert.NotNil(t, snapshot.Weather)
	assert.Equal(t, 2, weather.calls)
}

func TestCollect_GreetingUsesWeatherAndNews(t *testing.T) {
	agg, _ := testAggregator(testConfig())
	defer agg.Stop()

	greeter := &stubGreeter{reply: "God morgen! ☀️"}
	agg.greeter = greeter

	snapshot := agg.Collect(context.Background())

	assert.Equal(t, "God morgen! ☀️", snapshot.Greeting)
	assert.Contains(t, greeter.prompt, "mandag")
	assert.Contains(t, greeter.prompt, "Moss")
	assert.Contains(t, greeter.prompt, "Stor nyhet")
}

func TestCollect_GreetingSkippedWithoutWeather(t *testing.T) {
	agg, weather := testAggregator(testConfig())
	defer agg.Stop()

	weather.weatherErr = fmt.Errorf("down")
	weather.weather = nil
	greeter := &stubGreeter{reply: "skal ikke brukes"}
	agg.greeter = greeter

	snapshot := agg.Collect(context.Background())

	assert.Empty(t, snapshot.Greeting)
	assert.Empty(t, greeter.prompt)
}

func TestCollect_GreetingErrorIsContained(t *testing.T) {
	agg, _ := testAggregator(testConfig())
	defer agg.Stop()

	agg.greeter = &stubGreeter{err: fmt.Errorf("groq is down")}

	snapshot := agg.Collect(context.Background())

	assert.Empty(t, snapshot.Greeting)
	assert.NotNil(t, snapshot.Weather)
}

func TestCheckProviders(t *testing.T) {
	agg, weather := testAggregator(testConfig())
	defer agg.Stop()

	weather.weatherErr = fmt.Errorf("met.no is down")

	statuses := agg.CheckProviders(context.Background())
	require.Len(t, statuses, 6)

	byName := make(map[string]ProviderStatus, len(statuses))
	for _, status := range statuses {
		byName[status.Name] = status
	}

	assert.False(t, byName["weather"].OK)
	assert.Error(t, byName["weather"].Err)
	assert.True(t, byName["sun"].OK)
	assert.True(t, byName["news"].OK)
	assert.True(t, byName["finance"].OK)
	assert.True(t, byName["crypto"].OK)
	assert.True(t, byName["electricity"].OK)
}

package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"morningbrief/internal/calendar"
	"morningbrief/internal/config"
	"morningbrief/internal/models"
	"morningbrief/pkg/client"
)

// The fetcher interfaces mirror the pkg/client types so tests can swap in
// stubs without a network.
type WeatherFetcher interface {
	GetCurrentWeather(ctx context.Context, city string, lat, lon float64) (*models.CurrentWeather, error)
	GetSunTimes(ctx context.Context, lat, lon float64, date time.Time) (*models.SunTimes, error)
}

type ElectricityFetcher interface {
	GetPrices(ctx context.Context, zone string, now time.Time) (*models.ElectricityPrices, error)
}

type FinanceFetcher interface {
	GetFinanceData(ctx context.Context) (*models.FinanceData, error)
}

type CryptoFetcher interface {
	GetPrices(ctx context.Context) ([]models.CryptoPrice, error)
}

type NewsFetcher interface {
	GetNews(ctx context.Context) (*models.NewsDigest, error)
}

type GreetingProvider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Aggregator runs every fetcher for one brief. A failed fetcher costs its
// section and nothing else: Collect always returns a Snapshot.
type Aggregator struct {
	cfg    *config.Config
	logger *zap.Logger
	cache  *Cache
	clock  func() time.Time

	weather     WeatherFetcher
	electricity ElectricityFetcher
	finance     FinanceFetcher
	crypto      CryptoFetcher
	news        NewsFetcher
	greeter     GreetingProvider
}

// ProviderStatus is one line of the check command's report.
type ProviderStatus struct {
	Name     string
	OK       bool
	Err      error
	Duration time.Duration
}

func NewAggregator(cfg *config.Config, logger *zap.Logger) *Aggregator {
	clientConfig := client.ClientConfig{
		Timeout:        cfg.HTTP.Timeout,
		UserAgent:      cfg.UserAgent,
		MaxRetries:     cfg.Retry.MaxRetries,
		RetryDelay:     cfg.Retry.Delay,
		Multiplier:     cfg.Retry.Multiplier,
		Threshold:      cfg.CircuitBreaker.Threshold,
		BreakerTimeout: cfg.CircuitBreaker.Timeout,
	}

	agg := &Aggregator{
		cfg:         cfg,
		logger:      logger,
		cache:       NewCache(cfg.Cache.TTL, logger),
		clock:       time.Now,
		weather:     client.NewMetClient(cfg.API.MetBaseURL, clientConfig, logger),
		electricity: client.NewElspotClient(cfg.API.ElectricityBaseURL, clientConfig, logger),
		finance:     client.NewFinanceClient(cfg.API.YahooBaseURL, cfg.API.ExchangeRateURL, clientConfig, logger),
		crypto:      client.NewCoinGeckoClient(cfg.API.CoinGeckoBaseURL, clientConfig, logger),
		news:        client.NewNewsClient(cfg.UserAgent, cfg.HTTP.Timeout, logger),
	}

	if cfg.HasAI() {
		agg.greeter = client.NewGroqClient(cfg.API.GroqBaseURL, cfg.GroqAPIKey, clientConfig, logger)
		logger.Info("Groq client initialized")
	}

	return agg
}

// Collect gathers everything for one brief. The six network fetchers run
// concurrently and each failure is contained to its own Snapshot field; the
// greeting runs afterwards because its prompt depends on the results.
func (a *Aggregator) Collect(ctx context.Context) *models.Snapshot {
	now := a.clock()
	city, cityName := a.cfg.CityData(a.cfg.City)
	zone := city.PowerZone

	snapshot := &models.Snapshot{
		FetchedAt: now,
		Calendar:  calendar.FactsFor(now),
	}

	startTime := time.Now()

	var wg sync.WaitGroup
	wg.Add(6)

	go func() {
		defer wg.Done()
		snapshot.Weather = fetchCached(a, "weather:"+cityName, func() (*models.CurrentWeather, error) {
			return a.weather.GetCurrentWeather(ctx, cityName, city.Lat, city.Lon)
		})
	}()

	go func() {
		defer wg.Done()
		snapshot.Sun = fetchCached(a, "sun:"+cityName, func() (*models.SunTimes, error) {
			return a.weather.GetSunTimes(ctx, city.Lat, city.Lon, now)
		})
	}()

	go func() {
		defer wg.Done()
		snapshot.News = fetchCached(a, "news", func() (*models.NewsDigest, error) {
			return a.news.GetNews(ctx)
		})
	}()

	go func() {
		defer wg.Done()
		snapshot.Finance = fetchCached(a, "finance", func() (*models.FinanceData, error) {
			return a.finance.GetFinanceData(ctx)
		})
	}()

	go func() {
		defer wg.Done()
		prices := fetchCached(a, "crypto", func() (*[]models.CryptoPrice, error) {
			p, err := a.crypto.GetPrices(ctx)
			if err != nil {
				return nil, err
			}
			return &p, nil
		})
		if prices != nil {
			snapshot.Crypto = *prices
		}
	}()

	go func() {
		defer wg.Done()
		snapshot.Electricity = fetchCached(a, "electricity:"+zone, func() (*models.ElectricityPrices, error) {
			return a.electricity.GetPrices(ctx, zone, now)
		})
	}()

	wg.Wait()

	if a.greeter != nil && snapshot.Weather != nil {
		greeting, err := a.greeter.Complete(ctx, a.greetingPrompt(snapshot, now))
		if err != nil {
			a.logger.Warn("Greeting generation failed", zap.Error(err))
		} else {
			snapshot.Greeting = greeting
		}
	}

	a.logger.Info("Collect completed",
		zap.String("city", cityName),
		zap.Duration("duration", time.Since(startTime)),
		zap.Int("sections", snapshot.SectionCount()))

	return snapshot
}

// fetchCached memoizes one fetch under key. Errors are logged and mapped to
// nil so a dead provider only blanks its own section.
func fetchCached[T any](a *Aggregator, key string, fetch func() (*T, error)) *T {
	if cached, ok := a.cache.Get(key); ok {
		a.logger.Debug("Cache hit", zap.String("key", key))
		return cached.(*T)
	}

	start := time.Now()
	data, err := fetch()
	if err != nil {
		a.logger.Error("Fetch failed",
			zap.String("key", key),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return nil
	}

	a.logger.Info("Fetch completed",
		zap.String("key", key),
		zap.Duration("duration", time.Since(start)))

	a.cache.Set(key, data)
	return data
}

// CheckProviders probes every fetcher once and reports per-provider status.
// Nothing is cached and nothing is sent.
func (a *Aggregator) CheckProviders(ctx context.Context) []ProviderStatus {
	now := a.clock()
	city, cityName := a.cfg.CityData(a.cfg.City)
	zone := city.PowerZone

	probes := []struct {
		name string
		run  func() error
	}{
		{"weather", func() error {
			_, err := a.weather.GetCurrentWeather(ctx, cityName, city.Lat, city.Lon)
			return err
		}},
		{"sun", func() error {
			_, err := a.weather.GetSunTimes(ctx, city.Lat, city.Lon, now)
			return err
		}},
		{"news", func() error {
			_, err := a.news.GetNews(ctx)
			return err
		}},
		{"finance", func() error {
			_, err := a.finance.GetFinanceData(ctx)
			return err
		}},
		{"crypto", func() error {
			_, err := a.crypto.GetPrices(ctx)
			return err
		}},
		{"electricity", func() error {
			_, err := a.electricity.GetPrices(ctx, zone, now)
			return err
		}},
	}

	results := make([]ProviderStatus, len(probes))

	var wg sync.WaitGroup
	for i, probe := range probes {
		wg.Add(1)
		go func(i int, name string, run func() error) {
			defer wg.Done()
			start := time.Now()
			err := run()
			results[i] = ProviderStatus{
				Name:     name,
				OK:       err == nil,
				Err:      err,
				Duration: time.Since(start),
			}
		}(i, probe.name, probe.run)
	}
	wg.Wait()

	return results
}

func (a *Aggregator) Stop() {
	a.cache.Stop()
}

// greetingPrompt builds the Norwegian prompt for the morning greeting from
// whatever the fetch phase actually produced.
func (a *Aggregator) greetingPrompt(snapshot *models.Snapshot, now time.Time) string {
	var sb strings.Builder

	sb.WriteString("Lag en kort, hyggelig og litt humoristisk god morgen-hilsen på norsk, maks to setninger. ")
	sb.WriteString(fmt.Sprintf("I dag er det %s. ", norwegianWeekday(now.Weekday())))

	if snapshot.Weather != nil {
		sb.WriteString(fmt.Sprintf("Været i %s: %.1f°C og %s. ",
			snapshot.Weather.City, snapshot.Weather.Temperature, strings.ToLower(snapshot.Weather.SymbolText)))
	}

	if snapshot.News != nil && len(snapshot.News.Top) > 0 {
		headlines := make([]string, 0, 3)
		for i, item := range snapshot.News.Top {
			if i == 3 {
				break
			}
			headlines = append(headlines, item.Title)
		}
		sb.WriteString("Dagens overskrifter: " + strings.Join(headlines, "; ") + ". ")
	}

	if h := snapshot.Calendar.NextHoliday; h != nil {
		if days := h.DaysUntil(now); days <= 7 {
			sb.WriteString(fmt.Sprintf("Det er %d dager til %s. ", days, h.Name))
		}
	}

	sb.WriteString("Ikke list opp nyhetene, bare la hilsenen speile stemningen. Bruk gjerne en emoji.")

	return sb.String()
}

func norwegianWeekday(day time.Weekday) string {
	names := [...]string{"søndag", "mandag", "tirsdag", "onsdag", "torsdag", "fredag", "lørdag"}
	return names[day]
}

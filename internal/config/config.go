package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	WebhookURL string
	GroqAPIKey string
	City       string
	Debug      bool
	LogLevel   string
	UserAgent  string

	Server struct {
		Port         string
		ReadTimeout  time.Duration
		WriteTimeout time.Duration
	}

	Scheduler struct {
		CronSpec string
	}

	HTTP struct {
		Timeout time.Duration
	}

	Cache struct {
		TTL time.Duration
	}

	CircuitBreaker struct {
		Threshold int
		Timeout   time.Duration
	}

	Retry struct {
		MaxRetries int
		Delay      time.Duration
		Multiplier float64
	}

	API struct {
		MetBaseURL         string
		ElectricityBaseURL string
		CoinGeckoBaseURL   string
		YahooBaseURL       string
		ExchangeRateURL    string
		GroqBaseURL        string
	}

	Cities  map[string]City
	Content *ContentOverrides
}

// City holds the coordinates and electricity price zone used by the
// weather, sun and electricity fetchers.
type City struct {
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	PowerZone string  `json:"power_zone"`
}

// ContentOverrides lets users append entries to the built-in content pools.
type ContentOverrides struct {
	Jokes      []string `json:"jokes"`
	Proverbs   []string `json:"proverbs"`
	Quotes     []string `json:"quotes"`
	FunFacts   []string `json:"fun_facts"`
	Challenges []string `json:"challenges"`
}

func LoadConfig() (*Config, error) {
	// Load .env file if exists
	if err := godotenv.Load(); err != nil {
		zap.L().Info("No .env file found, using environment variables")
	}

	cfg := &Config{}

	cfg.WebhookURL = getEnv("DISCORD_WEBHOOK", "")
	cfg.GroqAPIKey = getEnv("GROQ_API_KEY", "")
	cfg.City = normalizeCity(getEnv("CITY", "Moss"))
	cfg.Debug = parseBool(getEnv("DEBUG", "false"))
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.UserAgent = getEnv("USER_AGENT", "morningbrief/1.0 (+https://github.com/morningbrief)")

	cfg.Server.Port = getEnv("FIBER_PORT", "8080")
	cfg.Server.ReadTimeout = parseDuration(getEnv("FIBER_READ_TIMEOUT", "10s"))
	cfg.Server.WriteTimeout = parseDuration(getEnv("FIBER_WRITE_TIMEOUT", "10s"))

	cfg.Scheduler.CronSpec = getEnv("SEND_CRON", "0 7 * * *")

	cfg.HTTP.Timeout = parseDuration(getEnv("REQUEST_TIMEOUT", "10s"))
	cfg.Cache.TTL = parseDuration(getEnv("CACHE_TTL", "5m"))

	cfg.CircuitBreaker.Threshold = parseInt(getEnv("CIRCUIT_BREAKER_THRESHOLD", "3"))
	cfg.CircuitBreaker.Timeout = parseDuration(getEnv("CIRCUIT_BREAKER_TIMEOUT", "30s"))

	cfg.Retry.MaxRetries = parseInt(getEnv("MAX_RETRIES", "3"))
	cfg.Retry.Delay = parseDuration(getEnv("RETRY_DELAY", "1s"))
	cfg.Retry.Multiplier = parseFloat(getEnv("RETRY_MULTIPLIER", "2"))

	cfg.API.MetBaseURL = getEnv("MET_API_BASE_URL", "https://api.met.no/weatherapi")
	cfg.API.ElectricityBaseURL = getEnv("ELECTRICITY_API_BASE_URL", "https://www.hvakosterstrommen.no/api/v1/prices")
	cfg.API.CoinGeckoBaseURL = getEnv("COINGECKO_API_BASE_URL", "https://api.coingecko.com/api/v3")
	cfg.API.YahooBaseURL = getEnv("YAHOO_API_BASE_URL", "https://query1.finance.yahoo.com/v8/finance/chart")
	cfg.API.ExchangeRateURL = getEnv("EXCHANGE_RATE_API_URL", "https://api.exchangerate-api.com/v4/latest/NOK")
	cfg.API.GroqBaseURL = getEnv("GROQ_API_BASE_URL", "https://api.groq.com/openai/v1")

	cfg.Cities = loadCityOverrides(getEnv("CITIES_FILE", ""))
	cfg.Content = loadContentOverrides(getEnv("CONTENT_FILE", ""))

	if cfg.WebhookURL == "" {
		return nil, fmt.Errorf("DISCORD_WEBHOOK is required")
	}

	return cfg, nil
}

// HasAI reports whether the AI greeting is enabled.
func (c *Config) HasAI() bool {
	return c.GroqAPIKey != ""
}

// CityData resolves a city name case-insensitively, falling back to the
// default city rather than failing on an unknown key.
func (c *Config) CityData(name string) (City, string) {
	lower := strings.ToLower(name)
	for cityName, data := range c.Cities {
		if strings.ToLower(cityName) == lower {
			return data, cityName
		}
	}

	zap.L().Warn("City not found, using fallback",
		zap.String("city", name),
		zap.String("fallback", defaultCityName))
	return c.Cities[defaultCityName], defaultCityName
}

// loadCityOverrides merges a user-supplied JSON city table over the built-in
// one. A malformed file is a startup warning, never a runtime surprise.
func loadCityOverrides(path string) map[string]City {
	cities := make(map[string]City, len(defaultCities))
	for name, data := range defaultCities {
		cities[name] = data
	}

	if path == "" {
		return cities
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		zap.L().Warn("Failed to read cities file", zap.String("path", path), zap.Error(err))
		return cities
	}

	overrides := make(map[string]City)
	if err := json.Unmarshal(raw, &overrides); err != nil {
		zap.L().Warn("Ignoring malformed cities file", zap.String("path", path), zap.Error(err))
		return cities
	}

	for name, data := range overrides {
		cities[normalizeCity(name)] = data
	}

	return cities
}

func loadContentOverrides(path string) *ContentOverrides {
	if path == "" {
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		zap.L().Warn("Failed to read content file", zap.String("path", path), zap.Error(err))
		return nil
	}

	overrides := &ContentOverrides{}
	if err := json.Unmarshal(raw, overrides); err != nil {
		zap.L().Warn("Ignoring malformed content file", zap.String("path", path), zap.Error(err))
		return nil
	}

	return overrides
}

func normalizeCity(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(value string) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		zap.L().Warn("Failed to parse duration", zap.String("value", value), zap.Error(err))
		return 0
	}
	return duration
}

func parseInt(value string) int {
	intValue, err := strconv.Atoi(value)
	if err != nil {
		zap.L().Warn("Failed to parse int", zap.String("value", value), zap.Error(err))
		return 0
	}
	return intValue
}

func parseFloat(value string) float64 {
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		zap.L().Warn("Failed to parse float", zap.String("value", value), zap.Error(err))
		return 0
	}
	return floatValue
}

func parseBool(value string) bool {
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return false
	}
	return boolValue
}

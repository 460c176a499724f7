package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// BaseClient wraps outbound HTTP calls with a bounded retry budget,
// exponential backoff and a per-provider circuit breaker.
type BaseClient struct {
	client         HTTPClient
	logger         *zap.Logger
	circuitBreaker *gobreaker.CircuitBreaker
	userAgent      string
	maxRetries     int
	retryDelay     time.Duration
	multiplier     float64
}

type ClientConfig struct {
	Timeout        time.Duration
	UserAgent      string
	MaxRetries     int
	RetryDelay     time.Duration
	Multiplier     float64
	Threshold      int
	BreakerTimeout time.Duration
}

func NewBaseClient(name string, config ClientConfig, logger *zap.Logger) *BaseClient {
	httpClient := &http.Client{
		Timeout: config.Timeout,
	}

	breakerSettings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    0,
		Timeout:     config.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("Circuit breaker state changed",
				zap.String("client", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	}

	return &BaseClient{
		client:         httpClient,
		logger:         logger,
		circuitBreaker: gobreaker.NewCircuitBreaker(breakerSettings),
		userAgent:      config.UserAgent,
		maxRetries:     config.MaxRetries,
		retryDelay:     config.RetryDelay,
		multiplier:     config.Multiplier,
	}
}

// GetWithRetry performs a GET through the circuit breaker and retry budget.
func (c *BaseClient) GetWithRetry(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	return c.execute(ctx, func() (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	}, headers)
}

// PostJSONWithRetry performs a JSON POST with the same retry policy as GETs.
func (c *BaseClient) PostJSONWithRetry(ctx context.Context, url string, body []byte, headers map[string]string) ([]byte, error) {
	merged := map[string]string{"Content-Type": "application/json"}
	for k, v := range headers {
		merged[k] = v
	}
	return c.execute(ctx, func() (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	}, merged)
}

func (c *BaseClient) execute(ctx context.Context, newReq func() (*http.Request, error), headers map[string]string) ([]byte, error) {
	var response []byte
	var err error

	_, execErr := c.circuitBreaker.Execute(func() (interface{}, error) {
		response, err = c.doWithRetry(ctx, newReq, headers)
		return response, err
	})

	if execErr != nil {
		return nil, execErr
	}

	return response, err
}

func (c *BaseClient) doWithRetry(ctx context.Context, newReq func() (*http.Request, error), headers map[string]string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := time.Duration(float64(c.retryDelay) * math.Pow(c.multiplier, float64(attempt-1)))
			c.logger.Debug("Retrying request",
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay))

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := newReq()
		if err != nil {
			return nil, fmt.Errorf("creating request failed: %w", err)
		}

		if c.userAgent != "" {
			req.Header.Set("User-Agent", c.userAgent)
		}
		for key, value := range headers {
			req.Header.Set(key, value)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = err
			c.logger.Warn("HTTP request failed",
				zap.String("url", req.URL.String()),
				zap.Int("attempt", attempt),
				zap.Error(err))
			continue
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			body, err := io.ReadAll(resp.Body)
			resp.Body.Close()

			if err != nil {
				lastErr = err
				continue
			}

			c.logger.Debug("Request successful",
				zap.String("url", req.URL.String()),
				zap.Int("status", resp.StatusCode),
				zap.Int("body_size", len(body)))

			return body, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("HTTP %d", resp.StatusCode)

		// Don't retry on client errors (4xx) except 429 (rate limiting)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != 429 {
			break
		}
	}

	return nil, fmt.Errorf("max retries exceeded, last error: %w", lastErr)
}

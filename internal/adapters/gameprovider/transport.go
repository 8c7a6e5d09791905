package gameprovider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/chesswrapped/chesswrapped/internal/domain"
	"github.com/chesswrapped/chesswrapped/internal/logging"
)

const userAgent = "chesswrapped/1.0 (+https://github.com/chesswrapped/chesswrapped)"

const (
	defaultRetryDelay    = 1000 * time.Millisecond
	maxRetries           = 3
	maxConcurrentFetches = 5
)

type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// transport applies the shared upstream policy to every outbound call:
// 404 and 401 fail immediately and permanently, everything else retries
// with exponential backoff (retryDelay * 2^attempt) up to maxRetries.
type transport struct {
	httpClient HttpClient
	retryDelay time.Duration
	sleep      func(ctx context.Context, d time.Duration) error
}

func newTransport(httpClient HttpClient, retryDelay time.Duration) *transport {
	if retryDelay <= 0 {
		retryDelay = defaultRetryDelay
	}
	return &transport{
		httpClient: httpClient,
		retryDelay: retryDelay,
		sleep:      sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

func (t *transport) get(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	logger := logging.FromContext(ctx)

	var lastErr error
	for attempt := 0; ; attempt++ {
		data, statusCode, err := t.doOnce(ctx, url, headers)

		switch {
		case err != nil:
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = fmt.Errorf("%w: GET %s: %w", domain.ErrFetchFailed, url, err)
		case statusCode >= 200 && statusCode < 300:
			return data, nil
		case statusCode == http.StatusNotFound:
			return nil, fmt.Errorf("%w: GET %s returned 404", domain.ErrPlayerNotFound, url)
		case statusCode == http.StatusUnauthorized:
			return nil, fmt.Errorf("%w: GET %s returned 401", domain.ErrUnauthorized, url)
		case statusCode == http.StatusTooManyRequests:
			// Surfaced as a generic fetch failure once retries exhaust
			lastErr = fmt.Errorf("%w: GET %s: upstream ratelimit persisted: %w", domain.ErrFetchFailed, url, domain.ErrRateLimited)
		default:
			lastErr = fmt.Errorf("%w: GET %s returned %d", domain.ErrFetchFailed, url, statusCode)
		}

		if attempt == maxRetries {
			return nil, lastErr
		}

		delay := t.retryDelay * (1 << attempt)
		logger.Warn("Retrying upstream request",
			"url", url,
			"attempt", attempt+1,
			"delay", delay.String(),
			"error", lastErr.Error(),
		)
		if err := t.sleep(ctx, delay); err != nil {
			return nil, err
		}
	}
}

func (t *transport) doOnce(ctx context.Context, url string, headers map[string]string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, -1, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	start := time.Now()
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, -1, fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, -1, fmt.Errorf("failed to read response body: %w", err)
	}
	logging.FromContext(ctx).Info("upstream request completed", "url", url, "status", resp.StatusCode, "duration", time.Since(start).String())

	return data, resp.StatusCode, nil
}

package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/edugen"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetry attempts to fetch a URL with exponential backoff.
// It retries up to 3 times (4 total attempts) with delays of 1s, 2s, 4s.
// Invalid-input errors are not retried; they will not succeed on a
// second attempt.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, logger *slog.Logger) (string, error) {
	return FetchWithRetryDelays(ctx, url, fetch, logger, DefaultRetryDelays())
}

// FetchWithRetryDelays is like FetchWithRetry but allows configurable
// delays. This is useful for testing without waiting for real delays.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logger *slog.Logger, delays []time.Duration) (string, error) {
	if logger == nil {
		logger = slog.Default()
	}
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if edugen.ErrorCode(err) == edugen.EINVALID {
			break
		}
		if attempt >= maxAttempts-1 {
			break
		}

		logger.Debug("retrying fetch", "url", url, "attempt", attempt+2, "err", err)

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}

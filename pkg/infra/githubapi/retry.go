package githubapi

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/ghfetch/pkg/domain/types"
	"github.com/m-mizutani/ghfetch/pkg/utils/logging"
)

// withRetry runs call and retries transient failures with exponential
// backoff. After the retry budget is spent the last failure is returned
// unchanged. The backoff sleep blocks only this goroutine and is abandoned
// when ctx is canceled.
func withRetry[T any](ctx context.Context, x *Client, call func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	result, err := call(ctx)
	for attempt := 1; attempt <= x.maxRetries && err != nil && isRetryable(err); attempt++ {
		delay := backoffDelay(x.initialBackoff, x.maxBackoff, attempt)

		logging.From(ctx).Debug("retrying request",
			slog.Int("attempt", attempt),
			slog.Duration("delay", delay),
			slog.Any("error", err),
		)

		select {
		case <-ctx.Done():
			return zero, goerr.Wrap(ctx.Err(), "canceled while waiting to retry")
		case <-time.After(delay):
		}

		result, err = call(ctx)
	}

	return result, err
}

// isRetryable keeps the narrow predicate: timeouts and 502 Bad Gateway
// only. Other 5xx codes (500, 503, ...) are NOT retried.
func isRetryable(err error) bool {
	return errors.Is(err, types.ErrTimeout) || errors.Is(err, types.ErrBadGateway)
}

// backoffDelay is min(max, initial * 2^(attempt-1)).
func backoffDelay(initial, max time.Duration, attempt int) time.Duration {
	d := initial << (attempt - 1)
	if d <= 0 || d > max {
		return max
	}
	return d
}

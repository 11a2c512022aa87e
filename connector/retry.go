package connector

import (
	"context"
	"time"
)

// RetryOptions controls connection-establishment retries. Retrying applies
// only to connecting; statement execution is always a single attempt.
type RetryOptions struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

func retryConnect(ctx context.Context, opts RetryOptions, connectFn func(context.Context) (Connection, error)) (Connection, error) {
	var err error
	var conn Connection
	delay := opts.BaseDelay
	if delay == 0 {
		delay = time.Second // default
	}

	attempts := opts.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	for i := 0; i < attempts; i++ {
		conn, err = connectFn(ctx)
		if err == nil {
			return conn, nil
		}
		if i == attempts-1 {
			break // no backoff after the final attempt
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
			delay *= 2
			if delay > opts.MaxDelay && opts.MaxDelay > 0 {
				delay = opts.MaxDelay
			}
		}
	}
	return nil, err
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/avast/retry-go"

	"github.com/tkhach/urban/internal/config"
	"github.com/tkhach/urban/internal/urbandict"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// NotFound and OutOfScope are definitive answers from the service
	var notFound *urbandict.NotFoundError
	var outOfScope *urbandict.OutOfScopeError
	if errors.As(err, &notFound) || errors.As(err, &outOfScope) {
		return false
	}

	// Retry server errors and rate limiting; 4xx answers will not change
	var transport *urbandict.TransportError
	if errors.As(err, &transport) {
		return transport.StatusCode >= http.StatusInternalServerError ||
			transport.StatusCode == http.StatusTooManyRequests
	}

	// Anything else is a network-level failure worth another attempt
	return true
}

// withRetries runs fn, retrying transient failures up to maxRetries extra
// times. With maxRetries 0 the call is attempted exactly once.
func withRetries(ctx context.Context, maxRetries uint, fn func() error) error {
	if maxRetries == 0 {
		return fn()
	}

	return retry.Do(
		func() error {
			err := fn()
			if err != nil && !isRetryableError(err) {
				return retry.Unrecoverable(err)
			}
			return err
		},
		retry.Context(ctx),
		retry.Attempts(maxRetries+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	)
}

// Package poll provides fixed-interval condition polling.
//
// Lifecycle operations wait on provider-side state (server ready, volume
// attached, server gone) by re-checking at a fixed interval. There is no
// backoff; cancellation happens through the context or the attempt cap.
// The sleep function is injectable so tests run without wall-clock delay.
package poll

import (
	"context"
	"errors"
	"time"
)

// ErrAttemptsExhausted is returned when the condition did not hold within
// the configured attempt cap.
var ErrAttemptsExhausted = errors.New("poll: attempts exhausted")

// Config holds polling configuration.
type Config struct {
	Interval    time.Duration
	MaxAttempts int // 0 means unlimited
	Sleep       func(time.Duration)
}

// Option is a functional option for polling configuration.
type Option func(*Config)

// WithInterval sets the fixed interval between checks.
func WithInterval(d time.Duration) Option {
	return func(c *Config) {
		c.Interval = d
	}
}

// WithMaxAttempts caps the number of checks.
func WithMaxAttempts(n int) Option {
	return func(c *Config) {
		c.MaxAttempts = n
	}
}

// WithSleep replaces the sleep function.
func WithSleep(sleep func(time.Duration)) Option {
	return func(c *Config) {
		c.Sleep = sleep
	}
}

// Until re-evaluates condition at a fixed interval until it returns true,
// returns an error, the context is done, or the attempt cap is reached.
func Until(ctx context.Context, condition func(context.Context) (bool, error), opts ...Option) error {
	cfg := &Config{
		Interval: time.Second,
		Sleep:    time.Sleep,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	for attempt := 0; ; attempt++ {
		if cfg.MaxAttempts > 0 && attempt >= cfg.MaxAttempts {
			return ErrAttemptsExhausted
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		done, err := condition(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}

		cfg.Sleep(cfg.Interval)
	}
}

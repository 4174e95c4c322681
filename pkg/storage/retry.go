package storage

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"
)

const defaultRetryBaseDelay = 10 * time.Millisecond

// RetryOptions configures WithRetry.
type RetryOptions struct {
	// MaxRetries is the number of attempts after the first one.
	MaxRetries uint64
	// BaseDelay is the first backoff delay; it doubles on every retry.
	BaseDelay time.Duration
	// OnConflict, when set, is called with every conflict before the next
	// attempt or before giving up.
	OnConflict func(ctx context.Context, err error)
}

// WithRetry runs cb and runs it again with exponential backoff while it fails
// with ErrVersionConflict. Any other error is returned at once. When retries
// run out the last conflict is returned.
func WithRetry(ctx context.Context, opts RetryOptions, cb func(ctx context.Context) error) error {
	base := opts.BaseDelay
	if base <= 0 {
		base = defaultRetryBaseDelay
	}

	backoff := retry.NewExponential(base)
	backoff = retry.WithMaxRetries(opts.MaxRetries, backoff)
	backoff = retry.WithJitterPercent(20, backoff)

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := cb(ctx)
		if errors.Is(err, ErrVersionConflict) {
			if opts.OnConflict != nil {
				opts.OnConflict(ctx, err)
			}

			return retry.RetryableError(err)
		}

		return err
	})
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/compozy/releaseresolver/internal/domain"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

// retryingReleaseRepository retries transient failures of another
// repository with exponential backoff.
type retryingReleaseRepository struct {
	inner   ReleaseRepository
	retries uint64
	delay   time.Duration
	logger  *zap.Logger
}

// NewRetryingReleaseRepository wraps inner so transport errors and 5xx/429
// statuses are retried up to retries times. With zero retries inner is
// returned unchanged.
func NewRetryingReleaseRepository(
	inner ReleaseRepository,
	retries uint64,
	delay time.Duration,
	logger *zap.Logger,
) ReleaseRepository {
	if retries == 0 {
		return inner
	}
	if delay <= 0 {
		delay = time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &retryingReleaseRepository{
		inner:   inner,
		retries: retries,
		delay:   delay,
		logger:  logger,
	}
}

func (r *retryingReleaseRepository) GetRelease(ctx context.Context, version string) (*domain.Release, error) {
	var release *domain.Release
	attempt := 0
	strategy := retry.WithMaxRetries(r.retries, retry.NewExponential(r.delay))
	err := retry.Do(ctx, strategy, func(retryCtx context.Context) error {
		attempt++
		found, err := r.inner.GetRelease(retryCtx, version)
		if err != nil {
			if !IsRetryable(err) {
				return err
			}
			r.logger.Warn("release lookup failed, retrying",
				zap.String("version", version),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			return retry.RetryableError(err)
		}
		release = found
		return nil
	})
	if err != nil {
		if ctx.Err() != nil && !errors.Is(err, ErrTransport) {
			return nil, fmt.Errorf("%w: %w", ErrTransport, err)
		}
		return nil, err
	}
	return release, nil
}

// IsRetryable reports whether err is a transient lookup failure.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrTransport) {
		return true
	}
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Temporary()
}

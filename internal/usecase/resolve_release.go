package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/compozy/releaseresolver/internal/domain"
	"github.com/compozy/releaseresolver/internal/repository"
	"go.uber.org/zap"
)

// ErrEmptyVersion is returned when no release token is given.
var ErrEmptyVersion = errors.New("release version cannot be empty")

// ResolveReleaseUseCase contains the logic for resolving a release token.

type ResolveReleaseUseCase struct {
	ReleaseRepo repository.ReleaseRepository
	Logger      *zap.Logger
}

// Execute runs the use case. A nil release with a nil error means no
// release matches version.
func (uc *ResolveReleaseUseCase) Execute(ctx context.Context, version string) (*domain.Release, error) {
	if version == "" {
		return nil, ErrEmptyVersion
	}
	logger := uc.logger().With(zap.String("version", version))
	logger.Debug("resolving release")
	release, err := uc.ReleaseRepo.GetRelease(ctx, version)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve release %q: %w", version, err)
	}
	if release == nil {
		logger.Debug("no matching release")
		return nil, nil
	}
	logger.Debug("resolved release", zap.Int64("id", release.ID), zap.String("tag", release.TagName))
	return release, nil
}

func (uc *ResolveReleaseUseCase) logger() *zap.Logger {
	if uc.Logger == nil {
		return zap.NewNop()
	}
	return uc.Logger
}

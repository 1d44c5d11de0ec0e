package repository

import (
	"context"

	"github.com/compozy/releaseresolver/internal/domain"
)

// ReleaseRepository resolves a release token into a release.
// A nil release with a nil error means no release matches the token.
type ReleaseRepository interface {
	GetRelease(ctx context.Context, version string) (*domain.Release, error)
}

package usecase

import (
	"context"
	"fmt"

	"github.com/compozy/releaseresolver/internal/domain"
)

// UpdateInfo describes how a current version relates to the latest release.
type UpdateInfo struct {
	Current   *domain.Version
	Latest    *domain.Release
	Available bool
}

// CheckUpdateUseCase contains the logic for checking whether a newer
// release than the running one exists.

type CheckUpdateUseCase struct {
	Resolver *ResolveReleaseUseCase
}

// Execute resolves the latest release and compares it with current.
func (uc *CheckUpdateUseCase) Execute(ctx context.Context, current string) (*UpdateInfo, error) {
	currentVer, err := domain.NewVersion(current)
	if err != nil {
		return nil, fmt.Errorf("invalid current version %q: %w", current, err)
	}
	latest, err := uc.Resolver.Execute(ctx, domain.LatestAlias)
	if err != nil {
		return nil, err
	}
	info := &UpdateInfo{Current: currentVer, Latest: latest}
	if latest == nil {
		return info, nil
	}
	latestVer, err := latest.Version()
	if err != nil {
		return nil, fmt.Errorf("latest release tag %q is not a version: %w", latest.TagName, err)
	}
	info.Available = latestVer.NewerThan(currentVer)
	return info, nil
}

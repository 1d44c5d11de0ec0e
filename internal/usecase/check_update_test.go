package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/compozy/releaseresolver/internal/domain"
	"github.com/compozy/releaseresolver/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckUpdateUseCase(releaseRepo *mockReleaseRepository) *CheckUpdateUseCase {
	return &CheckUpdateUseCase{Resolver: &ResolveReleaseUseCase{ReleaseRepo: releaseRepo}}
}

func TestCheckUpdateUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("Should report a newer latest release", func(t *testing.T) {
		releaseRepo := new(mockReleaseRepository)
		releaseRepo.On("GetRelease", ctx, "latest").Return(domain.NewRelease(2, "v0.12.1"), nil)
		info, err := newCheckUpdateUseCase(releaseRepo).Execute(ctx, "v0.9.1")
		require.NoError(t, err)
		assert.True(t, info.Available)
		assert.Equal(t, "v0.12.1", info.Latest.TagName)
		assert.Equal(t, "v0.9.1", info.Current.String())
		releaseRepo.AssertExpectations(t)
	})
	t.Run("Should not report an update when up to date", func(t *testing.T) {
		releaseRepo := new(mockReleaseRepository)
		releaseRepo.On("GetRelease", ctx, "latest").Return(domain.NewRelease(2, "v0.12.1"), nil)
		info, err := newCheckUpdateUseCase(releaseRepo).Execute(ctx, "0.12.1")
		require.NoError(t, err)
		assert.False(t, info.Available)
	})
	t.Run("Should report the final release as newer than its prerelease", func(t *testing.T) {
		releaseRepo := new(mockReleaseRepository)
		releaseRepo.On("GetRelease", ctx, "latest").Return(domain.NewRelease(2, "v0.12.1"), nil)
		info, err := newCheckUpdateUseCase(releaseRepo).Execute(ctx, "v0.12.1-rc2")
		require.NoError(t, err)
		assert.True(t, info.Available)
	})
	t.Run("Should not report an update without a latest release", func(t *testing.T) {
		releaseRepo := new(mockReleaseRepository)
		releaseRepo.On("GetRelease", ctx, "latest").Return(nil, nil)
		info, err := newCheckUpdateUseCase(releaseRepo).Execute(ctx, "v0.9.1")
		require.NoError(t, err)
		assert.False(t, info.Available)
		assert.Nil(t, info.Latest)
	})
	t.Run("Should reject an invalid current version", func(t *testing.T) {
		releaseRepo := new(mockReleaseRepository)
		_, err := newCheckUpdateUseCase(releaseRepo).Execute(ctx, "dev")
		require.Error(t, err)
		releaseRepo.AssertNotCalled(t, "GetRelease")
	})
	t.Run("Should fail on a latest tag that is not a version", func(t *testing.T) {
		releaseRepo := new(mockReleaseRepository)
		releaseRepo.On("GetRelease", ctx, "latest").Return(domain.NewRelease(3, "nightly"), nil)
		_, err := newCheckUpdateUseCase(releaseRepo).Execute(ctx, "v0.9.1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nightly")
	})
	t.Run("Should propagate lookup failures", func(t *testing.T) {
		releaseRepo := new(mockReleaseRepository)
		releaseRepo.On("GetRelease", ctx, "latest").Return(nil, errors.Join(repository.ErrTransport, errors.New("no route to host")))
		_, err := newCheckUpdateUseCase(releaseRepo).Execute(ctx, "v0.9.1")
		assert.ErrorIs(t, err, repository.ErrTransport)
	})
}

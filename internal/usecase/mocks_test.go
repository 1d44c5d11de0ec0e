package usecase

import (
	"context"

	"github.com/compozy/releaseresolver/internal/domain"
	"github.com/stretchr/testify/mock"
)

// Mock for ReleaseRepository
type mockReleaseRepository struct {
	mock.Mock
}

func (m *mockReleaseRepository) GetRelease(ctx context.Context, version string) (*domain.Release, error) {
	args := m.Called(ctx, version)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Release), args.Error(1)
}

package businessmock

import (
	"context"

	domain "peerlend-backend/internal/domain/business"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, b *domain.Business) error
	GetByBusinessIDFn func(ctx context.Context, businessID string) (*domain.Business, error)
	GetByUserIDFn     func(ctx context.Context, userID string) (*domain.Business, error)
}

func (m *Repo) Create(ctx context.Context, b *domain.Business) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}

func (m *Repo) GetByBusinessID(ctx context.Context, businessID string) (*domain.Business, error) {
	if m.GetByBusinessIDFn != nil {
		return m.GetByBusinessIDFn(ctx, businessID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.Business, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

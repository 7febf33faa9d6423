package activitymock

import (
	"context"

	domain "peerlend-backend/internal/domain/activity"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	AppendFn     func(ctx context.Context, a *domain.Activity) error
	ListRecentFn func(ctx context.Context, limit int) ([]domain.Activity, error)
}

func (m *Repo) Append(ctx context.Context, a *domain.Activity) error {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, a)
	}
	return nil
}

func (m *Repo) ListRecent(ctx context.Context, limit int) ([]domain.Activity, error) {
	if m.ListRecentFn != nil {
		return m.ListRecentFn(ctx, limit)
	}
	return nil, nil
}

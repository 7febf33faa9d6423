package opportunitymock

import (
	"context"

	domain "peerlend-backend/internal/domain/opportunity"

	"github.com/shopspring/decimal"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset getters return context.Canceled so a forgotten stub fails loudly.
type Repo struct {
	CreateFn                      func(ctx context.Context, o *domain.Opportunity) error
	GetByOpportunityIDFn          func(ctx context.Context, opportunityID string) (*domain.Opportunity, error)
	GetByOpportunityIDForUpdateFn func(ctx context.Context, opportunityID string) (*domain.Opportunity, error)
	ListFn                        func(ctx context.Context, f domain.Filter) ([]domain.Opportunity, error)
	ListByBusinessFn              func(ctx context.Context, businessID string) ([]domain.Opportunity, error)
	ApplyProgressFn               func(ctx context.Context, o *domain.Opportunity, delta decimal.Decimal) (domain.Status, error)
}

func (m *Repo) Create(ctx context.Context, o *domain.Opportunity) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, o)
	}
	return nil
}

func (m *Repo) GetByOpportunityID(ctx context.Context, opportunityID string) (*domain.Opportunity, error) {
	if m.GetByOpportunityIDFn != nil {
		return m.GetByOpportunityIDFn(ctx, opportunityID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByOpportunityIDForUpdate(ctx context.Context, opportunityID string) (*domain.Opportunity, error) {
	if m.GetByOpportunityIDForUpdateFn != nil {
		return m.GetByOpportunityIDForUpdateFn(ctx, opportunityID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, f domain.Filter) ([]domain.Opportunity, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, nil
}

func (m *Repo) ListByBusiness(ctx context.Context, businessID string) ([]domain.Opportunity, error) {
	if m.ListByBusinessFn != nil {
		return m.ListByBusinessFn(ctx, businessID)
	}
	return nil, nil
}

func (m *Repo) ApplyProgress(ctx context.Context, o *domain.Opportunity, delta decimal.Decimal) (domain.Status, error) {
	if m.ApplyProgressFn != nil {
		return m.ApplyProgressFn(ctx, o, delta)
	}
	return o.Status, context.Canceled
}

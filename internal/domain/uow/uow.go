package uow

import (
	"context"

	"peerlend-backend/internal/domain/activity"
	"peerlend-backend/internal/domain/business"
	"peerlend-backend/internal/domain/loan"
	"peerlend-backend/internal/domain/opportunity"
)

// Repos are bound to one transaction.
type Repos struct {
	Opportunities opportunity.Repository
	Loans         loan.Repository
	Activities    activity.Repository
	Businesses    business.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the opportunity first, then pass it in
	WithinOpportunityTx(ctx context.Context, opportunityID string, fn func(r Repos, o *opportunity.Opportunity) error) error
}

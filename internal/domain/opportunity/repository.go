package opportunity

import (
	"context"

	"github.com/shopspring/decimal"
)

type Filter struct {
	Status    Status
	MinAmount decimal.NullDecimal
	MaxAmount decimal.NullDecimal
	MaxTerm   int
	MinRate   decimal.NullDecimal
	Search    string
}

type Repository interface {
	// Create stores a new opportunity with progress 0.00 and status active.
	Create(ctx context.Context, o *Opportunity) error
	GetByOpportunityID(ctx context.Context, opportunityID string) (*Opportunity, error)
	// GetByOpportunityIDForUpdate locks the row for the rest of the transaction.
	GetByOpportunityIDForUpdate(ctx context.Context, opportunityID string) (*Opportunity, error)
	List(ctx context.Context, f Filter) ([]Opportunity, error)
	ListByBusiness(ctx context.Context, businessID string) ([]Opportunity, error)

	// ApplyProgress adds delta to o's progress, promotes the status when the
	// target is reached and bumps the version. Returns ErrConflict when o is stale.
	ApplyProgress(ctx context.Context, o *Opportunity, delta decimal.Decimal) (Status, error)
}

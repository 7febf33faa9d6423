package mysql

import (
	"context"

	"peerlend-backend/internal/domain/opportunity"
	"peerlend-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Opportunities: &OpportunityRepository{db: tx},
		Loans:         &LoanRepository{db: tx},
		Activities:    &ActivityRepository{db: tx},
		Businesses:    &BusinessRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinOpportunityTx(ctx context.Context, opportunityID string, fn func(r uow.Repos, o *opportunity.Opportunity) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the opportunity row up-front so concurrent contributions queue here
		o, err := r.Opportunities.GetByOpportunityIDForUpdate(ctx, opportunityID)
		if err != nil {
			return err
		}
		return fn(r, o)
	})
}

package mysql

import (
	"context"
	"errors"
	"strings"

	oppDomain "peerlend-backend/internal/domain/opportunity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OpportunityRepository struct{ db *gorm.DB }

func NewOpportunityRepository(db *gorm.DB) *OpportunityRepository {
	return &OpportunityRepository{db: db}
}

func (r *OpportunityRepository) Create(ctx context.Context, o *oppDomain.Opportunity) error {
	o.ProgressAmount = decimal.Zero
	o.Status = oppDomain.StatusActive
	o.Version = 0
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OpportunityRepository) GetByOpportunityID(ctx context.Context, opportunityID string) (*oppDomain.Opportunity, error) {
	var out oppDomain.Opportunity
	res := r.db.WithContext(ctx).Where("opportunity_id = ?", opportunityID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, oppDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *OpportunityRepository) GetByOpportunityIDForUpdate(ctx context.Context, opportunityID string) (*oppDomain.Opportunity, error) {
	var out oppDomain.Opportunity
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("opportunity_id = ?", opportunityID).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, oppDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *OpportunityRepository) List(ctx context.Context, f oppDomain.Filter) ([]oppDomain.Opportunity, error) {
	q := r.db.WithContext(ctx).Model(&oppDomain.Opportunity{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.MinAmount.Valid {
		q = q.Where("amount >= ?", f.MinAmount.Decimal)
	}
	if f.MaxAmount.Valid {
		q = q.Where("amount <= ?", f.MaxAmount.Decimal)
	}
	if f.MaxTerm > 0 {
		q = q.Where("term <= ?", f.MaxTerm)
	}
	if f.MinRate.Valid {
		q = q.Where("interest_rate >= ?", f.MinRate.Decimal)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var out []oppDomain.Opportunity
	res := q.Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *OpportunityRepository) ListByBusiness(ctx context.Context, businessID string) ([]oppDomain.Opportunity, error) {
	var out []oppDomain.Opportunity
	res := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

// ApplyProgress is a compare-and-swap on version: the write only lands if
// nobody else touched the row since o was read.
func (r *OpportunityRepository) ApplyProgress(ctx context.Context, o *oppDomain.Opportunity, delta decimal.Decimal) (oppDomain.Status, error) {
	progress := o.ProgressAmount.Add(delta)
	status := o.StatusFor(progress)

	res := r.db.WithContext(ctx).
		Model(&oppDomain.Opportunity{}).
		Where("id = ? AND version = ?", o.ID, o.Version).
		Updates(map[string]any{
			"progress_amount": progress,
			"status":          status,
			"version":         gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return o.Status, res.Error
	}
	if res.RowsAffected == 0 {
		return o.Status, oppDomain.ErrConflict
	}

	o.ProgressAmount = progress
	o.Status = status
	o.Version++
	return status, nil
}

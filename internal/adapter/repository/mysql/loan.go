package mysql

import (
	"context"
	"errors"

	loanDomain "peerlend-backend/internal/domain/loan"

	"gorm.io/gorm"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Append(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *LoanRepository) ListByLender(ctx context.Context, lenderID string) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("lender_id = ?", lenderID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListByOpportunity(ctx context.Context, opportunityID string) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("opportunity_id = ?", opportunityID).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) UpdateStatus(ctx context.Context, loanID string, s loanDomain.Status) error {
	if !s.Valid() {
		return loanDomain.ErrInvalidStatus
	}
	res := r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Where("loan_id = ?", loanID).
		Update("status", s)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return loanDomain.ErrNotFound
	}
	return nil
}

package loanmock

import (
	"context"

	domain "peerlend-backend/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	AppendFn            func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn       func(ctx context.Context, loanID string) (*domain.Loan, error)
	ListByLenderFn      func(ctx context.Context, lenderID string) ([]domain.Loan, error)
	ListByOpportunityFn func(ctx context.Context, opportunityID string) ([]domain.Loan, error)
	UpdateStatusFn      func(ctx context.Context, loanID string, s domain.Status) error
}

func (m *Repo) Append(ctx context.Context, l *domain.Loan) error {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByLender(ctx context.Context, lenderID string) ([]domain.Loan, error) {
	if m.ListByLenderFn != nil {
		return m.ListByLenderFn(ctx, lenderID)
	}
	return nil, nil
}

func (m *Repo) ListByOpportunity(ctx context.Context, opportunityID string) ([]domain.Loan, error) {
	if m.ListByOpportunityFn != nil {
		return m.ListByOpportunityFn(ctx, opportunityID)
	}
	return nil, nil
}

func (m *Repo) UpdateStatus(ctx context.Context, loanID string, s domain.Status) error {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, loanID, s)
	}
	return nil
}

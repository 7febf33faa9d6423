package loan

import "context"

type Repository interface {
	// Append writes a new contribution. The ledger is append-only.
	Append(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	ListByLender(ctx context.Context, lenderID string) ([]Loan, error)
	ListByOpportunity(ctx context.Context, opportunityID string) ([]Loan, error)
	// UpdateStatus touches only the status column.
	UpdateStatus(ctx context.Context, loanID string, s Status) error
}

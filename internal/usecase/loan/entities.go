package loan

import (
	"time"

	domainLoan "peerlend-backend/internal/domain/loan"
)

// Money fields are rendered with exactly two fractional digits.
type LoanDTO struct {
	LoanID        string    `json:"loan_id"`
	LenderID      string    `json:"lender_id"`
	OpportunityID string    `json:"opportunity_id"`
	Amount        string    `json:"amount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type PortfolioDTO struct {
	LenderID            string `json:"lender_id"`
	LoanCount           int    `json:"loan_count"`
	ActiveLoans         int    `json:"active_loans"`
	TotalInvested       string `json:"total_invested"`
	AverageInterestRate string `json:"average_interest_rate"`
}

func ToDTO(l *domainLoan.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:        l.LoanID,
		LenderID:      l.LenderID,
		OpportunityID: l.OpportunityID,
		Amount:        l.Amount.StringFixed(2),
		Status:        string(l.Status),
		CreatedAt:     l.CreatedAt,
	}
}

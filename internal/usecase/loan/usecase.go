package loan

import (
	"context"
	"errors"
	"fmt"

	domainLoan "peerlend-backend/internal/domain/loan"
	"peerlend-backend/internal/domain/opportunity"

	"github.com/shopspring/decimal"
)

type Usecase struct {
	loans domainLoan.Repository
	opps  opportunity.Repository
}

func NewUsecase(loans domainLoan.Repository, opps opportunity.Repository) *Usecase {
	return &Usecase{loans: loans, opps: opps}
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return ToDTO(l), nil
}

func (u *Usecase) ListByLender(ctx context.Context, lenderID string) ([]LoanDTO, error) {
	ls, err := u.loans.ListByLender(ctx, lenderID)
	if err != nil {
		return nil, fmt.Errorf("list loans for lender: %w", err)
	}
	return toDTOs(ls), nil
}

func (u *Usecase) ListByOpportunity(ctx context.Context, opportunityID string) ([]LoanDTO, error) {
	if _, err := u.opps.GetByOpportunityID(ctx, opportunityID); err != nil {
		return nil, err
	}
	ls, err := u.loans.ListByOpportunity(ctx, opportunityID)
	if err != nil {
		return nil, fmt.Errorf("list loans for opportunity: %w", err)
	}
	return toDTOs(ls), nil
}

// Portfolio summarises a lender's book: totals over every loan, the average
// rate over loans whose opportunity still resolves.
func (u *Usecase) Portfolio(ctx context.Context, lenderID string) (*PortfolioDTO, error) {
	ls, err := u.loans.ListByLender(ctx, lenderID)
	if err != nil {
		return nil, fmt.Errorf("list loans for lender: %w", err)
	}

	out := &PortfolioDTO{LenderID: lenderID, LoanCount: len(ls)}
	total := decimal.Zero
	rateSum := decimal.Zero
	rated := 0
	rates := map[string]decimal.Decimal{}

	for i := range ls {
		l := &ls[i]
		total = total.Add(l.Amount)
		if l.Status == domainLoan.StatusActive {
			out.ActiveLoans++
		}

		rate, ok := rates[l.OpportunityID]
		if !ok {
			o, err := u.opps.GetByOpportunityID(ctx, l.OpportunityID)
			switch {
			case errors.Is(err, opportunity.ErrNotFound):
				continue
			case err != nil:
				return nil, err
			}
			rate = o.InterestRate
			rates[l.OpportunityID] = rate
		}
		rateSum = rateSum.Add(rate)
		rated++
	}

	out.TotalInvested = total.StringFixed(2)
	avg := decimal.Zero
	if rated > 0 {
		avg = rateSum.Div(decimal.NewFromInt(int64(rated)))
	}
	out.AverageInterestRate = avg.StringFixed(2)
	return out, nil
}

func toDTOs(ls []domainLoan.Loan) []LoanDTO {
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, *ToDTO(&ls[i]))
	}
	return out
}

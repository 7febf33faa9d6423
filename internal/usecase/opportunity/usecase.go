package opportunity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"peerlend-backend/internal/domain/business"
	domain "peerlend-backend/internal/domain/opportunity"
	"peerlend-backend/pkg/id"

	"github.com/shopspring/decimal"
)

type Usecase struct {
	repo       domain.Repository
	businesses business.Repository
	now        func() time.Time
}

func NewUsecase(repo domain.Repository, businesses business.Repository) *Usecase {
	return &Usecase{repo: repo, businesses: businesses, now: time.Now}
}

// Create publishes an opportunity for the business owned by userID.
func (u *Usecase) Create(ctx context.Context, userID string, in CreateOpportunityInput) (*OpportunityDTO, error) {
	if err := u.validate(in); err != nil {
		return nil, err
	}
	b, err := u.businesses.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	o := &domain.Opportunity{
		OpportunityID: id.NewID32(),
		BusinessID:    b.BusinessID,
		Title:         strings.TrimSpace(in.Title),
		Description:   strings.TrimSpace(in.Description),
		Purpose:       strings.TrimSpace(in.Purpose),
		RiskLevel:     domain.RiskLevel(in.RiskLevel),
		Amount:        in.Amount,
		Term:          in.Term,
		InterestRate:  in.InterestRate,
	}
	if in.Deadline != nil {
		d := in.Deadline.UTC()
		o.Deadline = &d
	}
	if err := u.repo.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("create opportunity: %w", err)
	}
	dto := toDTO(o)
	return &dto, nil
}

func (u *Usecase) validate(in CreateOpportunityInput) error {
	switch {
	case strings.TrimSpace(in.Title) == "":
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	case !in.Amount.IsPositive() || !in.Amount.Equal(in.Amount.Truncate(2)):
		return fmt.Errorf("%w: amount must be positive with at most 2 decimal places", domain.ErrInvalidInput)
	case in.Term <= 0:
		return fmt.Errorf("%w: term must be a positive number of months", domain.ErrInvalidInput)
	case !in.InterestRate.IsPositive() || !in.InterestRate.Equal(in.InterestRate.Truncate(2)):
		return fmt.Errorf("%w: interest rate must be positive with at most 2 decimal places", domain.ErrInvalidInput)
	case in.Deadline != nil && !in.Deadline.After(u.now()):
		return fmt.Errorf("%w: deadline must be in the future", domain.ErrInvalidInput)
	}
	switch domain.RiskLevel(in.RiskLevel) {
	case domain.RiskLow, domain.RiskMedium, domain.RiskHigh:
	default:
		return fmt.Errorf("%w: risk level must be low, medium or high", domain.ErrInvalidInput)
	}
	return nil
}

func (u *Usecase) Get(ctx context.Context, opportunityID string) (*OpportunityDTO, error) {
	o, err := u.repo.GetByOpportunityID(ctx, opportunityID)
	if err != nil {
		return nil, err
	}
	dto := toDTO(o)
	return &dto, nil
}

func (u *Usecase) List(ctx context.Context, f domain.Filter) ([]OpportunityDTO, error) {
	os, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list opportunities: %w", err)
	}
	out := make([]OpportunityDTO, 0, len(os))
	for i := range os {
		out = append(out, toDTO(&os[i]))
	}
	return out, nil
}

// ListByBusiness returns a business's opportunities with dashboard totals.
func (u *Usecase) ListByBusiness(ctx context.Context, businessID string) (*BusinessOpportunitiesDTO, error) {
	if _, err := u.businesses.GetByBusinessID(ctx, businessID); err != nil {
		return nil, err
	}
	os, err := u.repo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("list opportunities for business: %w", err)
	}

	out := &BusinessOpportunitiesDTO{BusinessID: businessID, Opportunities: make([]OpportunityDTO, 0, len(os))}
	requested, raised, rates := decimal.Zero, decimal.Zero, decimal.Zero
	for i := range os {
		o := &os[i]
		out.Opportunities = append(out.Opportunities, toDTO(o))
		requested = requested.Add(o.Amount)
		raised = raised.Add(o.ProgressAmount)
		rates = rates.Add(o.InterestRate)
		switch o.Status {
		case domain.StatusActive:
			out.Summary.ActiveCount++
		case domain.StatusFunded:
			out.Summary.FundedCount++
		}
	}
	avg := decimal.Zero
	if len(os) > 0 {
		avg = rates.Div(decimal.NewFromInt(int64(len(os))))
	}
	out.Summary.TotalRequested = requested.StringFixed(2)
	out.Summary.TotalRaised = raised.StringFixed(2)
	out.Summary.AverageInterestRate = avg.StringFixed(2)
	return out, nil
}

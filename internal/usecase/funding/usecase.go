// Package funding applies lender contributions to opportunities. It is the
// only writer of an opportunity's progress amount and status.
package funding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"peerlend-backend/internal/domain/activity"
	domainLoan "peerlend-backend/internal/domain/loan"
	"peerlend-backend/internal/domain/opportunity"
	"peerlend-backend/internal/domain/uow"
	ucLoan "peerlend-backend/internal/usecase/loan"
	"peerlend-backend/pkg/id"

	"github.com/shopspring/decimal"
)

var errNoUoW = errors.New("funding: unit of work not configured")

// FeedInvalidator drops any cached copy of the activity feed.
type FeedInvalidator interface {
	Invalidate(ctx context.Context) error
}

type Usecase struct {
	uow    uow.UnitOfWork
	limits Limits
	feed   FeedInvalidator
	log    *slog.Logger
}

func NewUsecase(tx uow.UnitOfWork, limits Limits, feed FeedInvalidator, log *slog.Logger) *Usecase {
	if log == nil {
		log = slog.Default()
	}
	return &Usecase{uow: tx, limits: limits, feed: feed, log: log}
}

// CheckAmount rejects non-positive amounts, sub-cent precision and amounts
// outside the configured bounds.
func (u *Usecase) CheckAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: must be positive", domainLoan.ErrInvalidAmount)
	}
	if !amount.Equal(amount.Truncate(2)) {
		return fmt.Errorf("%w: at most 2 decimal places", domainLoan.ErrInvalidAmount)
	}
	if amount.LessThan(u.limits.Min) {
		return fmt.Errorf("%w: minimum contribution is %s", domainLoan.ErrInvalidAmount, u.limits.Min.StringFixed(2))
	}
	if amount.GreaterThan(u.limits.Max) {
		return fmt.Errorf("%w: maximum contribution is %s", domainLoan.ErrInvalidAmount, u.limits.Max.StringFixed(2))
	}
	return nil
}

// Contribute records one loan against an opportunity. The loan, the
// progress update and the feed entries commit together or not at all.
func (u *Usecase) Contribute(ctx context.Context, in ContributeInput) (*ucLoan.LoanDTO, error) {
	if u.uow == nil {
		return nil, errNoUoW
	}
	if err := u.CheckAmount(in.Amount); err != nil {
		return nil, err
	}

	var (
		l         *domainLoan.Loan
		completed bool
		progress  decimal.Decimal
	)
	err := u.uow.WithinOpportunityTx(ctx, in.OpportunityID, func(r uow.Repos, o *opportunity.Opportunity) error {
		if o.Status != opportunity.StatusActive {
			return opportunity.ErrInvalidState
		}
		if o.ProgressAmount.Add(in.Amount).GreaterThan(o.Amount) {
			return fmt.Errorf("%w: remaining %s", opportunity.ErrCapacityExceeded, o.Remaining().StringFixed(2))
		}

		l = &domainLoan.Loan{
			LoanID:        id.NewID32(),
			LenderID:      in.LenderID,
			OpportunityID: o.OpportunityID,
			Amount:        in.Amount,
			Status:        domainLoan.StatusActive,
		}
		if err := r.Loans.Append(ctx, l); err != nil {
			return fmt.Errorf("append loan: %w", err)
		}

		before := o.Status
		after, err := r.Opportunities.ApplyProgress(ctx, o, in.Amount)
		if err != nil {
			return err
		}
		progress = o.ProgressAmount

		lender, oppID := in.LenderID, o.OpportunityID
		if err := r.Activities.Append(ctx, &activity.Activity{
			ActivityID:    id.NewID32(),
			UserID:        &lender,
			OpportunityID: &oppID,
			Type:          activity.TypeFunded,
			Amount:        decimal.NewNullDecimal(in.Amount),
		}); err != nil {
			return fmt.Errorf("append funded activity: %w", err)
		}

		if before != opportunity.StatusFunded && after == opportunity.StatusFunded {
			completed = true
			if err := r.Activities.Append(ctx, &activity.Activity{
				ActivityID:    id.NewID32(),
				OpportunityID: &oppID,
				Type:          activity.TypeFundedComplete,
				Amount:        decimal.NewNullDecimal(o.Amount),
			}); err != nil {
				return fmt.Errorf("append funded_complete activity: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		u.log.Debug("contribution rejected",
			"opportunity_id", in.OpportunityID,
			"lender_id", in.LenderID,
			"amount", in.Amount.StringFixed(2),
			"error", err)
		return nil, err
	}

	if u.feed != nil {
		if ferr := u.feed.Invalidate(ctx); ferr != nil {
			u.log.Warn("feed cache invalidate failed", "error", ferr)
		}
	}
	u.log.Info("contribution accepted",
		"loan_id", l.LoanID,
		"opportunity_id", l.OpportunityID,
		"lender_id", l.LenderID,
		"amount", l.Amount.StringFixed(2),
		"progress", progress.StringFixed(2),
		"funded_complete", completed)

	return ucLoan.ToDTO(l), nil
}

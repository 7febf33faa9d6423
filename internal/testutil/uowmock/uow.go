package uowmock

import (
	"context"
	"errors"

	"peerlend-backend/internal/domain/opportunity"
	"peerlend-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn            func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinOpportunityTxFn func(ctx context.Context, opportunityID string, fn func(r uow.Repos, o *opportunity.Opportunity) error) error
}

// Passthrough returns a UoW that hands r straight to the callback, locking
// the opportunity through r.Opportunities.GetByOpportunityIDForUpdate.
func Passthrough(r uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(uow.Repos) error) error {
			return fn(r)
		},
		WithinOpportunityTxFn: func(ctx context.Context, opportunityID string, fn func(uow.Repos, *opportunity.Opportunity) error) error {
			o, err := r.Opportunities.GetByOpportunityIDForUpdate(ctx, opportunityID)
			if err != nil {
				return err
			}
			return fn(r, o)
		},
	}
}

// Convenience fluent setters
func New() *UoW { return &UoW{} }
func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}
func (m *UoW) WithWithinOpportunityTx(fn func(context.Context, string, func(uow.Repos, *opportunity.Opportunity) error) error) *UoW {
	m.WithinOpportunityTxFn = fn
	return m
}
func (m *UoW) Reset() { *m = UoW{} }

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinOpportunityTx(ctx context.Context, opportunityID string, fn func(r uow.Repos, o *opportunity.Opportunity) error) error {
	if m.WithinOpportunityTxFn != nil {
		return m.WithinOpportunityTxFn(ctx, opportunityID, fn)
	}
	return errUnimplemented
}

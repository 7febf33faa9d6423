package uowmock

import (
	"context"
	"errors"
	"testing"

	"peerlend-backend/internal/domain/opportunity"
	"peerlend-backend/internal/domain/uow"
	"peerlend-backend/internal/testutil/loanmock"
	"peerlend-backend/internal/testutil/opportunitymock"
)

func TestUoW_WithinTx_Happy(t *testing.T) {
	ctx := context.Background()

	loans := &loanmock.Repo{}
	opps := &opportunitymock.Repo{}
	repos := uow.Repos{Loans: loans, Opportunities: opps}

	innerCalled := false
	m := &UoW{
		WithinTxFn: func(gotCtx context.Context, fn func(r uow.Repos) error) error {
			if gotCtx != ctx {
				t.Fatalf("WithinTx: ctx mismatch")
			}
			return fn(repos)
		},
	}

	err := m.WithinTx(ctx, func(r uow.Repos) error {
		innerCalled = true
		if r.Loans != loans || r.Opportunities != opps {
			t.Fatalf("WithinTx: repos not forwarded correctly")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithinTx: unexpected err: %v", err)
	}
	if !innerCalled {
		t.Fatalf("WithinTx: inner fn not called")
	}
}

func TestUoW_Defaults_Unimplemented(t *testing.T) {
	ctx := context.Background()
	m := New()
	if err := m.WithinTx(ctx, func(uow.Repos) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinTx default: want errUnimplemented, got %v", err)
	}
	err := m.WithinOpportunityTx(ctx, "x", func(uow.Repos, *opportunity.Opportunity) error { return nil })
	if !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinOpportunityTx default: want errUnimplemented, got %v", err)
	}
}

func TestUoW_FluentSettersAndReset(t *testing.T) {
	ctx := context.Background()
	sentinel := errors.New("boom")

	m := New().
		WithWithinTx(func(context.Context, func(uow.Repos) error) error { return sentinel }).
		WithWithinOpportunityTx(func(context.Context, string, func(uow.Repos, *opportunity.Opportunity) error) error {
			return sentinel
		})
	if err := m.WithinTx(ctx, nil); !errors.Is(err, sentinel) {
		t.Fatalf("WithinTx: want sentinel, got %v", err)
	}
	if err := m.WithinOpportunityTx(ctx, "x", nil); !errors.Is(err, sentinel) {
		t.Fatalf("WithinOpportunityTx: want sentinel, got %v", err)
	}

	m.Reset()
	if m.WithinTxFn != nil || m.WithinOpportunityTxFn != nil {
		t.Fatalf("Reset should clear all funcs")
	}
}

func TestPassthrough_LocksThenCalls(t *testing.T) {
	ctx := context.Background()
	want := &opportunity.Opportunity{OpportunityID: "OPP-1"}
	var lockedID string
	opps := &opportunitymock.Repo{
		GetByOpportunityIDForUpdateFn: func(_ context.Context, id string) (*opportunity.Opportunity, error) {
			lockedID = id
			return want, nil
		},
	}
	m := Passthrough(uow.Repos{Opportunities: opps})

	var got *opportunity.Opportunity
	err := m.WithinOpportunityTx(ctx, "OPP-1", func(_ uow.Repos, o *opportunity.Opportunity) error {
		got = o
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if lockedID != "OPP-1" || got != want {
		t.Fatalf("Passthrough did not lock and forward: locked=%q got=%+v", lockedID, got)
	}
}

func TestPassthrough_LockErrorSkipsCallback(t *testing.T) {
	opps := &opportunitymock.Repo{
		GetByOpportunityIDForUpdateFn: func(context.Context, string) (*opportunity.Opportunity, error) {
			return nil, opportunity.ErrNotFound
		},
	}
	m := Passthrough(uow.Repos{Opportunities: opps})
	err := m.WithinOpportunityTx(context.Background(), "missing", func(uow.Repos, *opportunity.Opportunity) error {
		t.Fatalf("callback must not run")
		return nil
	})
	if !errors.Is(err, opportunity.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

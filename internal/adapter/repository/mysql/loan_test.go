package mysql

import (
	"context"
	"errors"
	"testing"

	loanDomain "peerlend-backend/internal/domain/loan"
)

const (
	lenderA = "11111111111111111111111111111111"
	lenderB = "22222222222222222222222222222222"
	oppX    = "cccccccccccccccccccccccccccccccc"
	oppY    = "dddddddddddddddddddddddddddddddd"
)

func TestLoan_AppendAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	l := makeLoan(lenderA, oppX, "250.50")
	if err := repo.Append(ctx, l); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if l.ID == 0 {
		t.Fatalf("Append did not set auto-increment ID")
	}

	got, err := repo.GetByLoanID(ctx, l.LoanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.LenderID != lenderA || got.OpportunityID != oppX || !got.Amount.Equal(dec("250.50")) {
		t.Errorf("unexpected loan: %+v", got)
	}
	if got.Status != loanDomain.StatusActive {
		t.Errorf("status = %s, want active", got.Status)
	}
}

func TestLoan_GetNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)

	_, err := repo.GetByLoanID(context.Background(), "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")
	if !errors.Is(err, loanDomain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoan_ListByLenderAndOpportunity(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	seed := []*loanDomain.Loan{
		makeLoan(lenderA, oppX, "100"),
		makeLoan(lenderA, oppY, "200"),
		makeLoan(lenderB, oppX, "300"),
	}
	for _, l := range seed {
		if err := repo.Append(ctx, l); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	mine, err := repo.ListByLender(ctx, lenderA)
	if err != nil {
		t.Fatalf("ListByLender: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("ListByLender len = %d, want 2", len(mine))
	}
	if mine[0].LoanID != seed[1].LoanID {
		t.Fatalf("ListByLender should be newest first")
	}

	onX, err := repo.ListByOpportunity(ctx, oppX)
	if err != nil {
		t.Fatalf("ListByOpportunity: %v", err)
	}
	if len(onX) != 2 || onX[0].LoanID != seed[0].LoanID {
		t.Fatalf("ListByOpportunity unexpected: %+v", onX)
	}
}

func TestLoan_UpdateStatus(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	l := makeLoan(lenderA, oppX, "100")
	if err := repo.Append(ctx, l); err != nil {
		t.Fatalf("Append: %v", err)
	}

	if err := repo.UpdateStatus(ctx, l.LoanID, loanDomain.StatusRepaid); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	got, _ := repo.GetByLoanID(ctx, l.LoanID)
	if got.Status != loanDomain.StatusRepaid {
		t.Fatalf("status = %s, want repaid", got.Status)
	}
	if !got.Amount.Equal(dec("100")) || got.OpportunityID != oppX {
		t.Fatalf("UpdateStatus must not touch amount or opportunity: %+v", got)
	}

	if err := repo.UpdateStatus(ctx, l.LoanID, "bogus"); !errors.Is(err, loanDomain.ErrInvalidStatus) {
		t.Fatalf("want ErrInvalidStatus, got %v", err)
	}
	if err := repo.UpdateStatus(ctx, "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee", loanDomain.StatusLate); !errors.Is(err, loanDomain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

package mysql

import (
	"testing"
	"time"

	loanDomain "peerlend-backend/internal/domain/loan"
	oppDomain "peerlend-backend/internal/domain/opportunity"
	"peerlend-backend/internal/testutil/testdb"
	"peerlend-backend/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return testdb.Open(t)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func makeOpportunity(businessID, target string) *oppDomain.Opportunity {
	deadline := time.Now().UTC().Add(30 * 24 * time.Hour)
	return &oppDomain.Opportunity{
		OpportunityID: id.NewID32(),
		BusinessID:    businessID,
		Title:         "Bakery expansion",
		Description:   "Second oven and a delivery van",
		Purpose:       "equipment",
		RiskLevel:     oppDomain.RiskMedium,
		Amount:        dec(target),
		Term:          12,
		InterestRate:  dec("7.50"),
		Deadline:      &deadline,
	}
}

func makeLoan(lenderID, opportunityID, amount string) *loanDomain.Loan {
	return &loanDomain.Loan{
		LoanID:        id.NewID32(),
		LenderID:      lenderID,
		OpportunityID: opportunityID,
		Amount:        dec(amount),
		Status:        loanDomain.StatusActive,
	}
}

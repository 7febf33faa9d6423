package loan

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound      = errors.New("loan not found")
	ErrInvalidAmount = errors.New("invalid loan amount")
	ErrInvalidStatus = errors.New("invalid loan status")
)

type Status string

const (
	StatusActive    Status = "active"
	StatusRepaid    Status = "repaid"
	StatusLate      Status = "late"
	StatusDefaulted Status = "defaulted"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusRepaid, StatusLate, StatusDefaulted:
		return true
	}
	return false
}

// Loan is one lender's contribution to an opportunity. Amount and
// OpportunityID never change after the row is written.
type Loan struct {
	ID            uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	LoanID        string          `gorm:"column:loan_id;type:char(32);not null;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	LenderID      string          `gorm:"column:lender_id;type:char(32);not null;index:idx_loans_lender" json:"lender_id"`
	OpportunityID string          `gorm:"column:opportunity_id;type:char(32);not null;index:idx_loans_opportunity" json:"opportunity_id"`
	Amount        decimal.Decimal `gorm:"column:amount;type:decimal(12,2);not null" json:"amount"`
	Status        Status          `gorm:"column:status;size:16;not null;default:'active'" json:"status"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }

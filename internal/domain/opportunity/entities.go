package opportunity

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound         = errors.New("opportunity not found")
	ErrInvalidInput     = errors.New("invalid opportunity data")
	ErrInvalidState     = errors.New("opportunity is no longer accepting loans")
	ErrCapacityExceeded = errors.New("loan amount exceeds remaining available amount")
	// ErrConflict means the opportunity changed between read and write. Safe to retry once.
	ErrConflict = errors.New("opportunity was modified concurrently")
)

type Status string

const (
	StatusActive Status = "active"
	StatusFunded Status = "funded"
	// StatusClosed is stored but nothing in this service produces it.
	StatusClosed Status = "closed"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Table: opportunities
type Opportunity struct {
	ID             uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	OpportunityID  string          `gorm:"column:opportunity_id;type:char(32);not null;uniqueIndex:ux_opportunities_opportunity_id" json:"opportunity_id"`
	BusinessID     string          `gorm:"column:business_id;type:char(32);not null;index:idx_opportunities_business" json:"business_id"`
	Title          string          `gorm:"column:title;size:200;not null" json:"title"`
	Description    string          `gorm:"column:description;type:text;not null" json:"description"`
	Purpose        string          `gorm:"column:purpose;size:200;not null" json:"purpose"`
	RiskLevel      RiskLevel       `gorm:"column:risk_level;size:16;not null" json:"risk_level"`
	Amount         decimal.Decimal `gorm:"column:amount;type:decimal(12,2);not null" json:"amount"`
	ProgressAmount decimal.Decimal `gorm:"column:progress_amount;type:decimal(12,2);not null;default:0" json:"progress_amount"`
	Status         Status          `gorm:"column:status;size:16;not null;default:'active';index:idx_opportunities_status" json:"status"`
	Term           int             `gorm:"column:term;not null" json:"term"`
	InterestRate   decimal.Decimal `gorm:"column:interest_rate;type:decimal(5,2);not null" json:"interest_rate"`
	Deadline       *time.Time      `gorm:"column:deadline" json:"deadline,omitempty"`
	Version        uint64          `gorm:"column:version;not null;default:0" json:"-"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Opportunity) TableName() string { return "opportunities" }

// Remaining is the capacity still open for contributions.
func (o *Opportunity) Remaining() decimal.Decimal {
	r := o.Amount.Sub(o.ProgressAmount)
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}

// StatusFor returns the status implied by a progress amount.
func (o *Opportunity) StatusFor(progress decimal.Decimal) Status {
	if progress.GreaterThanOrEqual(o.Amount) {
		return StatusFunded
	}
	return o.Status
}

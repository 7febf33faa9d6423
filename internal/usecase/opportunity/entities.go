package opportunity

import (
	"time"

	domain "peerlend-backend/internal/domain/opportunity"

	"github.com/shopspring/decimal"
)

type CreateOpportunityInput struct {
	Title        string
	Description  string
	Purpose      string
	RiskLevel    string
	Amount       decimal.Decimal
	Term         int
	InterestRate decimal.Decimal
	Deadline     *time.Time
}

type OpportunityDTO struct {
	OpportunityID  string     `json:"opportunity_id"`
	BusinessID     string     `json:"business_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Purpose        string     `json:"purpose"`
	RiskLevel      string     `json:"risk_level"`
	Amount         string     `json:"amount"`
	ProgressAmount string     `json:"progress_amount"`
	Remaining      string     `json:"remaining"`
	Status         string     `json:"status"`
	Term           int        `json:"term"`
	InterestRate   string     `json:"interest_rate"`
	Deadline       *time.Time `json:"deadline,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type BusinessSummaryDTO struct {
	TotalRequested      string `json:"total_requested"`
	TotalRaised         string `json:"total_raised"`
	ActiveCount         int    `json:"active_count"`
	FundedCount         int    `json:"funded_count"`
	AverageInterestRate string `json:"average_interest_rate"`
}

type BusinessOpportunitiesDTO struct {
	BusinessID    string             `json:"business_id"`
	Opportunities []OpportunityDTO   `json:"opportunities"`
	Summary       BusinessSummaryDTO `json:"summary"`
}

func toDTO(o *domain.Opportunity) OpportunityDTO {
	return OpportunityDTO{
		OpportunityID:  o.OpportunityID,
		BusinessID:     o.BusinessID,
		Title:          o.Title,
		Description:    o.Description,
		Purpose:        o.Purpose,
		RiskLevel:      string(o.RiskLevel),
		Amount:         o.Amount.StringFixed(2),
		ProgressAmount: o.ProgressAmount.StringFixed(2),
		Remaining:      o.Remaining().StringFixed(2),
		Status:         string(o.Status),
		Term:           o.Term,
		InterestRate:   o.InterestRate.StringFixed(2),
		Deadline:       o.Deadline,
		CreatedAt:      o.CreatedAt,
	}
}

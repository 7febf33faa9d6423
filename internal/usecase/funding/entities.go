package funding

import (
	"github.com/shopspring/decimal"
)

type ContributeInput struct {
	OpportunityID string
	LenderID      string
	Amount        decimal.Decimal
}

// Limits bound a single contribution, inclusive on both ends.
type Limits struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

func DefaultLimits() Limits {
	return Limits{
		Min: decimal.NewFromInt(50),
		Max: decimal.NewFromInt(5000),
	}
}

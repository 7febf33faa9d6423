package activity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeFunded         Type = "funded"
	TypeFundedComplete Type = "funded_complete"
	TypeRepaid         Type = "repaid"
)

// Table: community_activities
type Activity struct {
	ID            uint64              `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	ActivityID    string              `gorm:"column:activity_id;type:char(32);not null;uniqueIndex:ux_activities_activity_id" json:"activity_id"`
	UserID        *string             `gorm:"column:user_id;type:char(32)" json:"user_id,omitempty"`
	OpportunityID *string             `gorm:"column:opportunity_id;type:char(32);index:idx_activities_opportunity" json:"opportunity_id,omitempty"`
	Type          Type                `gorm:"column:activity_type;size:32;not null" json:"activity_type"`
	Amount        decimal.NullDecimal `gorm:"column:amount;type:decimal(12,2)" json:"amount"`
	CreatedAt     time.Time           `gorm:"column:created_at;autoCreateTime;index:idx_activities_created" json:"created_at"`
}

func (Activity) TableName() string { return "community_activities" }

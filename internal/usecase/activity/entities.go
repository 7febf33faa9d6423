package activity

import (
	"time"

	domain "peerlend-backend/internal/domain/activity"
)

type ActivityDTO struct {
	ActivityID    string    `json:"activity_id"`
	UserID        *string   `json:"user_id"`
	OpportunityID *string   `json:"opportunity_id"`
	ActivityType  string    `json:"activity_type"`
	Amount        *string   `json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
}

func toDTO(a *domain.Activity) ActivityDTO {
	dto := ActivityDTO{
		ActivityID:    a.ActivityID,
		UserID:        a.UserID,
		OpportunityID: a.OpportunityID,
		ActivityType:  string(a.Type),
		CreatedAt:     a.CreatedAt,
	}
	if a.Amount.Valid {
		s := a.Amount.Decimal.StringFixed(2)
		dto.Amount = &s
	}
	return dto
}

package business

import (
	"time"

	domain "peerlend-backend/internal/domain/business"
)

type CreateBusinessInput struct {
	Name          string
	Description   string
	Industry      string
	Location      string
	YearFounded   *int
	EmployeeCount *int
	OwnerName     *string
	OwnerRole     *string
}

type BusinessDTO struct {
	BusinessID    string    `json:"business_id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Industry      string    `json:"industry"`
	Location      string    `json:"location"`
	YearFounded   *int      `json:"year_founded,omitempty"`
	EmployeeCount *int      `json:"employee_count,omitempty"`
	OwnerName     *string   `json:"owner_name,omitempty"`
	OwnerRole     *string   `json:"owner_role,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func toDTO(b *domain.Business) *BusinessDTO {
	return &BusinessDTO{
		BusinessID:    b.BusinessID,
		UserID:        b.UserID,
		Name:          b.Name,
		Description:   b.Description,
		Industry:      b.Industry,
		Location:      b.Location,
		YearFounded:   b.YearFounded,
		EmployeeCount: b.EmployeeCount,
		OwnerName:     b.OwnerName,
		OwnerRole:     b.OwnerRole,
		CreatedAt:     b.CreatedAt,
	}
}

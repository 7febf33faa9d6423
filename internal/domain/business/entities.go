package business

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("business not found")
	ErrAlreadyExists = errors.New("business profile already exists")
)

// Table: businesses
type Business struct {
	ID            uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	BusinessID    string    `gorm:"column:business_id;type:char(32);not null;uniqueIndex:ux_businesses_business_id" json:"business_id"`
	UserID        string    `gorm:"column:user_id;type:char(32);not null;uniqueIndex:ux_businesses_user_id" json:"user_id"`
	Name          string    `gorm:"column:name;size:200;not null" json:"name"`
	Description   string    `gorm:"column:description;type:text;not null" json:"description"`
	Industry      string    `gorm:"column:industry;size:100;not null" json:"industry"`
	Location      string    `gorm:"column:location;size:200;not null" json:"location"`
	YearFounded   *int      `gorm:"column:year_founded" json:"year_founded,omitempty"`
	EmployeeCount *int      `gorm:"column:employee_count" json:"employee_count,omitempty"`
	OwnerName     *string   `gorm:"column:owner_name;size:200" json:"owner_name,omitempty"`
	OwnerRole     *string   `gorm:"column:owner_role;size:100" json:"owner_role,omitempty"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Business) TableName() string { return "businesses" }

package mysql

import (
	"context"
	"errors"

	businessDomain "peerlend-backend/internal/domain/business"

	"gorm.io/gorm"
)

type BusinessRepository struct{ db *gorm.DB }

func NewBusinessRepository(db *gorm.DB) *BusinessRepository { return &BusinessRepository{db: db} }

func (r *BusinessRepository) Create(ctx context.Context, b *businessDomain.Business) error {
	err := r.db.WithContext(ctx).Create(b).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return businessDomain.ErrAlreadyExists
	}
	return err
}

func (r *BusinessRepository) GetByBusinessID(ctx context.Context, businessID string) (*businessDomain.Business, error) {
	var out businessDomain.Business
	res := r.db.WithContext(ctx).Where("business_id = ?", businessID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, businessDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *BusinessRepository) GetByUserID(ctx context.Context, userID string) (*businessDomain.Business, error) {
	var out businessDomain.Business
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, businessDomain.ErrNotFound
	}
	return &out, res.Error
}

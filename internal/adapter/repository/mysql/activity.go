package mysql

import (
	"context"

	activityDomain "peerlend-backend/internal/domain/activity"

	"gorm.io/gorm"
)

type ActivityRepository struct{ db *gorm.DB }

func NewActivityRepository(db *gorm.DB) *ActivityRepository { return &ActivityRepository{db: db} }

func (r *ActivityRepository) Append(ctx context.Context, a *activityDomain.Activity) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ActivityRepository) ListRecent(ctx context.Context, limit int) ([]activityDomain.Activity, error) {
	if limit <= 0 {
		limit = activityDomain.DefaultLimit
	}
	if limit > activityDomain.MaxLimit {
		limit = activityDomain.MaxLimit
	}
	var out []activityDomain.Activity
	res := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&out)
	return out, res.Error
}

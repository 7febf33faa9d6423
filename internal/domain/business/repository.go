package business

import "context"

type Repository interface {
	// Create a new profile (DB uniqueness ensures at most one per user)
	Create(ctx context.Context, b *Business) error
	GetByBusinessID(ctx context.Context, businessID string) (*Business, error)
	GetByUserID(ctx context.Context, userID string) (*Business, error)
}

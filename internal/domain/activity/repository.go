package activity

import "context"

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type Repository interface {
	Append(ctx context.Context, a *Activity) error
	// ListRecent returns at most limit entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]Activity, error)
}

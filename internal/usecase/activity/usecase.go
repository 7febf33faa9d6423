package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	domain "peerlend-backend/internal/domain/activity"
)

// Cache stores the newest MaxLimit entries as one serialized page. Load
// reports the cache generation; Store must be given the generation seen
// before the store was read so a page older than the last invalidation is
// never served.
type Cache interface {
	Load(ctx context.Context) (payload []byte, gen int64, hit bool, err error)
	Store(ctx context.Context, gen int64, payload []byte) error
}

type Usecase struct {
	repo  domain.Repository
	cache Cache
	log   *slog.Logger
}

// NewUsecase: cache may be nil, in which case every read hits the store.
func NewUsecase(repo domain.Repository, cache Cache, log *slog.Logger) *Usecase {
	if log == nil {
		log = slog.Default()
	}
	return &Usecase{repo: repo, cache: cache, log: log}
}

// ListRecent returns up to limit entries, newest first. limit <= 0 means
// DefaultLimit; anything above MaxLimit is capped.
func (u *Usecase) ListRecent(ctx context.Context, limit int) ([]ActivityDTO, error) {
	if limit <= 0 {
		limit = domain.DefaultLimit
	}
	if limit > domain.MaxLimit {
		limit = domain.MaxLimit
	}

	page, err := u.page(ctx)
	if err != nil {
		return nil, err
	}
	if len(page) > limit {
		page = page[:limit]
	}
	return page, nil
}

func (u *Usecase) page(ctx context.Context) ([]ActivityDTO, error) {
	var (
		gen      int64
		storable bool
	)
	if u.cache != nil {
		b, g, ok, err := u.cache.Load(ctx)
		gen, storable = g, err == nil
		switch {
		case err != nil:
			u.log.Warn("feed cache load failed", "error", err)
		case ok:
			var out []ActivityDTO
			if jerr := json.Unmarshal(b, &out); jerr == nil {
				return out, nil
			}
			u.log.Warn("feed cache payload unreadable, reloading")
		}
	}

	as, err := u.repo.ListRecent(ctx, domain.MaxLimit)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	out := make([]ActivityDTO, 0, len(as))
	for i := range as {
		out = append(out, toDTO(&as[i]))
	}

	if storable {
		if b, jerr := json.Marshal(out); jerr == nil {
			if serr := u.cache.Store(ctx, gen, b); serr != nil {
				u.log.Warn("feed cache store failed", "error", serr)
			}
		}
	}
	return out, nil
}

package business

import (
	"context"
	"errors"
	"fmt"

	domain "peerlend-backend/internal/domain/business"
	"peerlend-backend/pkg/id"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

// Create registers the single business profile a user may own.
func (u *Usecase) Create(ctx context.Context, userID string, in CreateBusinessInput) (*BusinessDTO, error) {
	existing, err := u.repo.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: %s", domain.ErrAlreadyExists, existing.BusinessID)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	b := &domain.Business{
		BusinessID:    id.NewID32(),
		UserID:        userID,
		Name:          in.Name,
		Description:   in.Description,
		Industry:      in.Industry,
		Location:      in.Location,
		YearFounded:   in.YearFounded,
		EmployeeCount: in.EmployeeCount,
		OwnerName:     in.OwnerName,
		OwnerRole:     in.OwnerRole,
	}
	if err := u.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return toDTO(b), nil
}

func (u *Usecase) Get(ctx context.Context, businessID string) (*BusinessDTO, error) {
	b, err := u.repo.GetByBusinessID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return toDTO(b), nil
}

func (u *Usecase) GetByUser(ctx context.Context, userID string) (*BusinessDTO, error) {
	b, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toDTO(b), nil
}

package mysql

import (
	"context"
	"testing"
	"time"

	activityDomain "peerlend-backend/internal/domain/activity"
	"peerlend-backend/pkg/id"

	"github.com/shopspring/decimal"
)

func TestActivity_AppendAndListRecent(t *testing.T) {
	db := openTestDB(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()

	user := lenderA
	opp := oppX
	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		a := &activityDomain.Activity{
			ActivityID:    id.NewID32(),
			UserID:        &user,
			OpportunityID: &opp,
			Type:          activityDomain.TypeFunded,
			Amount:        decimal.NewNullDecimal(decimal.NewFromInt(int64(100 * (i + 1)))),
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Append(ctx, a); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	done := &activityDomain.Activity{
		ActivityID:    id.NewID32(),
		OpportunityID: &opp,
		Type:          activityDomain.TypeFundedComplete,
		Amount:        decimal.NewNullDecimal(dec("1500")),
		CreatedAt:     base.Add(10 * time.Minute),
	}
	if err := repo.Append(ctx, done); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := repo.ListRecent(ctx, 3)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Type != activityDomain.TypeFundedComplete || got[0].UserID != nil {
		t.Fatalf("newest entry should be funded_complete without user, got %+v", got[0])
	}
	if !got[1].Amount.Decimal.Equal(dec("500")) {
		t.Fatalf("second entry amount = %s, want 500", got[1].Amount.Decimal)
	}

	all, err := repo.ListRecent(ctx, 0)
	if err != nil {
		t.Fatalf("ListRecent default: %v", err)
	}
	if len(all) != 6 {
		t.Fatalf("default limit should return all 6, got %d", len(all))
	}
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stitchline/vestra/internal/promotion/domain"
	promotionrepo "github.com/stitchline/vestra/internal/promotion/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newPromotionService(t *testing.T) domain.Service {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&domain.Promotion{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    conn,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  promotionrepo.Provide(),
	})
}

func TestCreatePromotion(t *testing.T) {
	svc := newPromotionService(t)
	ctx := context.Background()
	now := time.Now().UTC()

	resp, err := svc.Create(ctx, domain.CreateRequest{
		Code:            "spring25",
		Name:            "Spring Sale",
		DiscountPercent: "25",
		StartsAt:        now,
		EndsAt:          now.Add(24 * time.Hour),
	})
	require.NoError(t, err)
	require.Equal(t, "SPRING25", resp.Code)
	require.Equal(t, "25", resp.DiscountPercent)
	require.True(t, resp.Active)

	_, err = svc.Create(ctx, domain.CreateRequest{
		Code:            "SPRING25",
		Name:            "Duplicate",
		DiscountPercent: "10",
		StartsAt:        now,
		EndsAt:          now.Add(time.Hour),
	})
	require.ErrorIs(t, err, domain.ErrCodeTaken)
}

func TestCreatePromotionValidation(t *testing.T) {
	svc := newPromotionService(t)
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := svc.Create(ctx, domain.CreateRequest{
		Code: "BAD", Name: "Zero", DiscountPercent: "0",
		StartsAt: now, EndsAt: now.Add(time.Hour),
	})
	require.ErrorIs(t, err, domain.ErrInvalidDiscount)

	_, err = svc.Create(ctx, domain.CreateRequest{
		Code: "BAD", Name: "Too Big", DiscountPercent: "150",
		StartsAt: now, EndsAt: now.Add(time.Hour),
	})
	require.ErrorIs(t, err, domain.ErrInvalidDiscount)

	_, err = svc.Create(ctx, domain.CreateRequest{
		Code: "BAD", Name: "Backwards", DiscountPercent: "10",
		StartsAt: now.Add(time.Hour), EndsAt: now,
	})
	require.ErrorIs(t, err, domain.ErrInvalidWindow)
}

func TestActiveAtReturnsLivePromotionsBestFirst(t *testing.T) {
	svc := newPromotionService(t)
	ctx := context.Background()
	now := time.Now().UTC()

	mk := func(code, percent string, start, end time.Time) *domain.Response {
		resp, err := svc.Create(ctx, domain.CreateRequest{
			Code: code, Name: code, DiscountPercent: percent,
			StartsAt: start, EndsAt: end,
		})
		require.NoError(t, err)
		return resp
	}

	mk("SMALL", "5", now.Add(-time.Hour), now.Add(time.Hour))
	mk("BIG", "20", now.Add(-time.Hour), now.Add(time.Hour))
	mk("ENDED", "50", now.Add(-2*time.Hour), now.Add(-time.Hour))
	mk("FUTURE", "50", now.Add(time.Hour), now.Add(2*time.Hour))
	paused := mk("PAUSED", "50", now.Add(-time.Hour), now.Add(time.Hour))

	off := false
	_, err := svc.Update(ctx, domain.UpdateRequest{ID: paused.ID, Active: &off})
	require.NoError(t, err)

	live, err := svc.ActiveAt(ctx, now)
	require.NoError(t, err)
	require.Len(t, live, 2)
	require.Equal(t, "BIG", live[0].Code)
	require.Equal(t, "SMALL", live[1].Code)
}

func TestUpdateAndDeletePromotion(t *testing.T) {
	svc := newPromotionService(t)
	ctx := context.Background()
	now := time.Now().UTC()

	resp, err := svc.Create(ctx, domain.CreateRequest{
		Code: "EDITME", Name: "Before", DiscountPercent: "10",
		StartsAt: now, EndsAt: now.Add(time.Hour),
	})
	require.NoError(t, err)

	name := "After"
	percent := "12.5"
	updated, err := svc.Update(ctx, domain.UpdateRequest{ID: resp.ID, Name: &name, DiscountPercent: &percent})
	require.NoError(t, err)
	require.Equal(t, "After", updated.Name)
	require.Equal(t, "12.5", updated.DiscountPercent)

	require.NoError(t, svc.Delete(ctx, resp.ID))

	_, err = svc.Get(ctx, resp.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

package usecase

import (
	"context"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func activePromo() model.Promotion {
	return model.Promotion{
		ID:       1,
		Code:     "SALE10",
		StartsAt: time.Now().Add(-24 * time.Hour),
		EndsAt:   time.Now().Add(24 * time.Hour),
		IsActive: true,
	}
}

func TestPromotionDiscount(t *testing.T) {
	now := time.Now()

	percent := activePromo()
	percent.DiscountPercent = 10
	d, reason := promotionDiscount(percent, 200000, now)
	assert.Empty(t, reason)
	assert.Equal(t, int64(20000), d)

	flat := activePromo()
	flat.DiscountAmount = 50000
	d, reason = promotionDiscount(flat, 200000, now)
	assert.Empty(t, reason)
	assert.Equal(t, int64(50000), d)

	//discount never exceeds the subtotal
	d, reason = promotionDiscount(flat, 30000, now)
	assert.Empty(t, reason)
	assert.Equal(t, int64(30000), d)

	//percent wins when both are set
	both := activePromo()
	both.DiscountPercent = 5
	both.DiscountAmount = 999999
	d, _ = promotionDiscount(both, 100000, now)
	assert.Equal(t, int64(5000), d)
}

func TestPromotionDiscount_NotApplicable(t *testing.T) {
	now := time.Now()

	inactive := activePromo()
	inactive.IsActive = false
	_, reason := promotionDiscount(inactive, 100000, now)
	assert.Equal(t, "inactive", reason)

	expired := activePromo()
	expired.EndsAt = now.Add(-time.Hour)
	_, reason = promotionDiscount(expired, 100000, now)
	assert.Equal(t, "expired", reason)

	notStarted := activePromo()
	notStarted.StartsAt = now.Add(time.Hour)
	_, reason = promotionDiscount(notStarted, 100000, now)
	assert.Equal(t, "expired", reason)

	minimum := activePromo()
	minimum.MinSubtotal = 500000
	_, reason = promotionDiscount(minimum, 100000, now)
	assert.Equal(t, "subtotal below minimum", reason)
}

func TestValidate_UnknownCodeIsInvalidNotError(t *testing.T) {
	promotions := new(PromotionRepoMock)
	promotions.On("FindByCode", mock.Anything, "NOPE").Return(model.Promotion{}, repo.ErrNotFound)

	uc := NewPromotionUsecase(promotions)

	out, err := uc.Validate(context.Background(), ValidatePromotionInput{Code: "NOPE", Subtotal: 100000})
	assert.NoError(t, err)
	assert.False(t, out.Valid)
	assert.Equal(t, "unknown code", out.Reason)
}

func TestValidate_AppliesDiscount(t *testing.T) {
	promo := activePromo()
	promo.DiscountPercent = 10

	promotions := new(PromotionRepoMock)
	promotions.On("FindByCode", mock.Anything, "SALE10").Return(promo, nil)

	uc := NewPromotionUsecase(promotions)

	out, err := uc.Validate(context.Background(), ValidatePromotionInput{Code: "SALE10", Subtotal: 200000})
	assert.NoError(t, err)
	assert.True(t, out.Valid)
	assert.Equal(t, int64(20000), out.DiscountAmount)
}

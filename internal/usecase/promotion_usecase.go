package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type PromotionUsecase struct {
	promotions repo.PromotionRepository
}

func NewPromotionUsecase(promotions repo.PromotionRepository) *PromotionUsecase {
	return &PromotionUsecase{promotions: promotions}
}

type ValidatePromotionInput struct {
	Code     string
	Subtotal int64
}

type PromotionValidationOutput struct {
	Valid          bool   `json:"valid"`
	Code           string `json:"code"`
	DiscountAmount int64  `json:"discount_amount"`
	Reason         string `json:"reason,omitempty"`
}

// Validate checks a coupon code against a cart subtotal. The storefront
// calls this instead of computing discounts client-side.
func (u *PromotionUsecase) Validate(ctx context.Context, in ValidatePromotionInput) (PromotionValidationOutput, error) {
	code := strings.TrimSpace(in.Code)
	if code == "" {
		return PromotionValidationOutput{}, NewHTTPError(http.StatusBadRequest, "invalid code")
	}
	if in.Subtotal < 0 {
		return PromotionValidationOutput{}, NewHTTPError(http.StatusBadRequest, "invalid subtotal")
	}

	promo, err := u.promotions.FindByCode(ctx, code)
	if err == repo.ErrNotFound {
		return PromotionValidationOutput{Valid: false, Code: code, Reason: "unknown code"}, nil
	}
	if err != nil {
		return PromotionValidationOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	discount, reason := promotionDiscount(promo, in.Subtotal, time.Now())
	if reason != "" {
		return PromotionValidationOutput{Valid: false, Code: code, Reason: reason}, nil
	}

	return PromotionValidationOutput{
		Valid:          true,
		Code:           code,
		DiscountAmount: discount,
	}, nil
}

// promotionDiscount computes the discount a promotion yields on a subtotal,
// or a non-empty reason when it does not apply. Percent wins over the flat
// amount when both are set; the discount never exceeds the subtotal.
func promotionDiscount(p model.Promotion, subtotal int64, now time.Time) (int64, string) {
	if !p.IsActive {
		return 0, "inactive"
	}
	if now.Before(p.StartsAt) || now.After(p.EndsAt) {
		return 0, "expired"
	}
	if subtotal < p.MinSubtotal {
		return 0, "subtotal below minimum"
	}

	var discount int64
	if p.DiscountPercent > 0 {
		discount = subtotal * p.DiscountPercent / 100
	} else {
		discount = p.DiscountAmount
	}
	if discount > subtotal {
		discount = subtotal
	}
	return discount, ""
}

package response

import "homestay-pricing/internal/domain/coupon"

type CouponValidationResponse struct {
	Valid          bool   `json:"valid"`
	Code           string `json:"code"`
	PromotionID    *int64 `json:"promotionId,omitempty"`
	DiscountAmount Amount `json:"discountAmount"`
	Message        string `json:"message,omitempty"`
}

func FromCouponValidation(v *coupon.Validation) *CouponValidationResponse {
	return &CouponValidationResponse{
		Valid:          v.Valid,
		Code:           v.Code.String(),
		PromotionID:    v.PromotionID,
		DiscountAmount: NewAmount(v.DiscountAmount),
		Message:        v.Message,
	}
}

type AppliedCouponResponse struct {
	Code           string `json:"code"`
	PromotionID    *int64 `json:"promotionId,omitempty"`
	DiscountAmount Amount `json:"discountAmount"`
	Message        string `json:"message,omitempty"`
}

func fromAppliedCoupon(a *coupon.Applied) *AppliedCouponResponse {
	if a == nil {
		return nil
	}
	return &AppliedCouponResponse{
		Code:           a.Code.String(),
		PromotionID:    a.PromotionID,
		DiscountAmount: NewAmount(a.DiscountAmount),
		Message:        a.Message,
	}
}

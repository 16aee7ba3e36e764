package upstream

import (
	"context"
	"net/http"

	"homestay-pricing/internal/domain/coupon"
	"homestay-pricing/internal/infra"

	"github.com/shopspring/decimal"
)

type validateCouponRequest struct {
	Code        string `json:"code"`
	TotalAmount int64  `json:"total_amount"`
	HomestayID  int64  `json:"homestay_id,omitempty"`
	UserID      *int64 `json:"user_id,omitempty"`
}

type validateCouponResponse struct {
	Valid          bool            `json:"valid"`
	PromotionID    *int64          `json:"promotion_id"`
	Code           string          `json:"code"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Message        string          `json:"message"`
}

// CouponService adapts the promotions endpoint to coupon.Service.
type CouponService struct {
	client *Client
}

func NewCouponService(client *Client) *CouponService {
	return &CouponService{client: client}
}

func (s *CouponService) Validate(ctx context.Context, req coupon.Request) (coupon.Validation, error) {
	var resp validateCouponResponse
	err := s.client.do(ctx, http.MethodPost, "/api/promotions/validate", "", validateCouponRequest{
		Code:        req.Code.String(),
		TotalAmount: req.Subtotal.Int64(),
		HomestayID:  req.HomestayID,
		UserID:      req.UserID,
	}, &resp)
	if err != nil {
		if infra.IsKind(err, infra.KindUpstreamRejected) || infra.IsKind(err, infra.KindNotFound) {
			if rejection, ok := Rejection(err); ok {
				return coupon.Validation{}, &coupon.RejectedError{Reason: rejection.Detail}
			}
		}
		return coupon.Validation{}, err
	}

	discount, err := s.client.amount(resp.DiscountAmount, "discount_amount")
	if err != nil {
		return coupon.Validation{}, err
	}

	code := req.Code
	if resp.Code != "" {
		code = coupon.Code(resp.Code)
	}
	return coupon.Validation{
		Valid:          resp.Valid,
		PromotionID:    resp.PromotionID,
		Code:           code,
		DiscountAmount: discount,
		Message:        resp.Message,
	}, nil
}

package request_models

import (
	"trendlens/internal/models/db_models"
)

type CreatePlanRequest struct {
	Name            string                  `json:"name" binding:"required"`
	BillingInterval string                  `json:"billing_interval" binding:"required,oneof=MONTHLY YEARLY"`
	PriceUsd        float64                 `json:"price_usd" binding:"required,gt=0"`
	PriceIdr        float64                 `json:"price_idr" binding:"required,gt=0"`
	PromoPriceUsd   *float64                `json:"promo_price_usd"`
	PromoPriceIdr   *float64                `json:"promo_price_idr"`
	Features        *db_models.PlanFeatures `json:"features"`
}

// UpdatePlanRequest is a partial delta; nil fields are left untouched.
type UpdatePlanRequest struct {
	Name          *string                 `json:"name"`
	PriceUsd      *float64                `json:"price_usd"`
	PriceIdr      *float64                `json:"price_idr"`
	PromoPriceUsd *float64                `json:"promo_price_usd"`
	PromoPriceIdr *float64                `json:"promo_price_idr"`
	Features      *db_models.PlanFeatures `json:"features"`
}

type DuplicatePlanRequest struct {
	NewName string `json:"new_name" binding:"required"`
}

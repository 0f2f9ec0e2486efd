package response_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SubscriptionPlan struct {
	ID              uuid.UUID      `json:"id"`
	Name            string         `json:"name"`
	BillingInterval string         `json:"billing_interval"` // "MONTHLY" | "YEARLY"
	PriceUsd        float64        `json:"price_usd"`
	PriceIdr        float64        `json:"price_idr"`
	PromoPriceUsd   *float64       `json:"promo_price_usd,omitempty"`
	PromoPriceIdr   *float64       `json:"promo_price_idr,omitempty"`
	ExternalPlanID  string         `json:"external_plan_id,omitempty"`
	Features        datatypes.JSON `json:"features,omitempty"`
	IsActive        bool           `json:"is_active"`
	CreatedAt       int64          `json:"created_at"`
	UpdatedAt       int64          `json:"updated_at"`
}

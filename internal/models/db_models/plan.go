package db_models

import (
	"gorm.io/datatypes"
)

type BillingInterval string

const (
	IntervalMonthly BillingInterval = "MONTHLY"
	IntervalYearly  BillingInterval = "YEARLY"
)

func (b BillingInterval) IsValid() bool {
	return b == IntervalMonthly || b == IntervalYearly
}

// Plan is a subscription plan row. The same plan name may exist once per
// billing interval. ExternalPlanID is empty until the billing provider has
// accepted the plan; deactivation is a soft delete so historical plans stay
// queryable for existing subscribers.
type Plan struct {
	BaseModel
	Name            string          `gorm:"index:idx_plans_name_interval,unique;not null"`
	BillingInterval BillingInterval `gorm:"index:idx_plans_name_interval,unique;size:10"`
	PriceUsd        float64         `gorm:"type:numeric(12,2)"`
	PriceIdr        float64         `gorm:"type:numeric(16,2)"`
	PromoPriceUsd   *float64        `gorm:"type:numeric(12,2)"`
	PromoPriceIdr   *float64        `gorm:"type:numeric(16,2)"`
	ExternalPlanID  string          `gorm:"index"`
	Features        datatypes.JSON  `gorm:"type:jsonb;default:'{}'"`
	IsActive        bool            `gorm:"default:true"`
}

// EffectivePriceIdr is the amount the provider actually charges: the promo
// price when one is set, the regular price otherwise.
func (p *Plan) EffectivePriceIdr() float64 {
	if p.PromoPriceIdr != nil {
		return *p.PromoPriceIdr
	}
	return p.PriceIdr
}

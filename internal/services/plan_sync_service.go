package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"trendlens/internal/models/db_models"
	"trendlens/internal/models/request_models"
	"trendlens/internal/models/response_models"
	"trendlens/internal/repositories"
	"trendlens/pkg/billing"
	mem "trendlens/pkg/memcache"
	"trendlens/pkg/utils"
)

// BillingClient is what the sync service needs from the recurring-billing
// provider.
type BillingClient interface {
	CreatePlan(ctx context.Context, req billing.CreatePlanRequest) (*billing.Plan, error)
	UpdatePlan(ctx context.Context, externalID string, req billing.UpdatePlanRequest) (*billing.Plan, error)
	DeactivatePlan(ctx context.Context, externalID string) error
	CreateCustomer(ctx context.Context, req billing.CreateCustomerRequest) (*billing.Customer, error)
}

type PlanSyncServiceInterface interface {
	Create(ctx context.Context, req request_models.CreatePlanRequest) (*response_models.SubscriptionPlan, error)
	Update(ctx context.Context, id string, req request_models.UpdatePlanRequest) (*response_models.SubscriptionPlan, error)
	Deactivate(ctx context.Context, id string) error
	Duplicate(ctx context.Context, id string, newName string) (*response_models.SubscriptionPlan, error)
	GetPlanById(ctx context.Context, id string) (*response_models.SubscriptionPlan, error)
	ListPlans(ctx context.Context, includeInactive bool) ([]response_models.SubscriptionPlan, error)
}

const (
	defaultCustomerKey = "default"
	defaultCustomerRef = "trendlens-billing"
)

// PlanSyncService keeps the local plan store and the billing provider
// consistent. The provider call always precedes local persistence on every
// mutation: a plan may lag behind the provider, but the local store never
// claims a plan is chargeable when the provider disagrees.
//
// No locking is done here; mutations on the same plan are serialized by the
// admin UI (one operator interaction at a time). Concurrent edits from two
// admin sessions are last-write-wins.
type PlanSyncService struct {
	planRepo  repositories.IPlanRepository
	billing   BillingClient
	customers mem.CustomerCache
}

func NewPlanSyncService(
	planRepo repositories.IPlanRepository,
	billingClient BillingClient,
	customers mem.CustomerCache) PlanSyncServiceInterface {
	return &PlanSyncService{
		planRepo:  planRepo,
		billing:   billingClient,
		customers: customers,
	}
}

func (s *PlanSyncService) Create(ctx context.Context, req request_models.CreatePlanRequest) (*response_models.SubscriptionPlan, error) {

	name := strings.TrimSpace(req.Name)
	interval := db_models.BillingInterval(req.BillingInterval)

	if err := validatePlanPricing(name, interval, req.PriceUsd, req.PriceIdr, req.PromoPriceUsd, req.PromoPriceIdr); err != nil {
		return nil, err
	}

	exists, err := s.planRepo.ExistsByNameAndInterval(ctx, name, interval, "")
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if exists {
		return nil, utils.ErrPlanAlreadyExists
	}

	features, err := marshalFeatures(req.Features)
	if err != nil {
		return nil, utils.NewValidationError("features", "malformed feature set")
	}

	plan := &db_models.Plan{
		Name:            name,
		BillingInterval: interval,
		PriceUsd:        req.PriceUsd,
		PriceIdr:        req.PriceIdr,
		PromoPriceUsd:   req.PromoPriceUsd,
		PromoPriceIdr:   req.PromoPriceIdr,
		Features:        features,
		IsActive:        true,
	}

	customerID, err := s.ensureDefaultCustomer(ctx)
	if err != nil {
		return nil, err
	}

	// Provider first. If this fails nothing is persisted locally, so a
	// rejected plan never exists as a local-only orphan.
	providerPlan, err := s.billing.CreatePlan(ctx, buildProviderPlan(plan, customerID))
	if err != nil {
		return nil, err
	}
	plan.ExternalPlanID = providerPlan.ID

	if err := s.planRepo.Insert(ctx, plan); err != nil {
		// The provider-side plan now leads the local store; an operator
		// retry converges. Logged because it needs eyes, not rollback.
		log.Printf("plan %q created at provider (%s) but local insert failed: %v", name, providerPlan.ID, err)
		return nil, utils.ErrDatabaseError
	}

	return toPlanResponse(plan), nil
}

func (s *PlanSyncService) Update(ctx context.Context, id string, req request_models.UpdatePlanRequest) (*response_models.SubscriptionPlan, error) {

	plan, err := s.planRepo.GetPlanById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	next := *plan
	if req.Name != nil {
		next.Name = strings.TrimSpace(*req.Name)
	}
	if req.PriceUsd != nil {
		next.PriceUsd = *req.PriceUsd
	}
	if req.PriceIdr != nil {
		next.PriceIdr = *req.PriceIdr
	}
	if req.PromoPriceUsd != nil {
		next.PromoPriceUsd = req.PromoPriceUsd
	}
	if req.PromoPriceIdr != nil {
		next.PromoPriceIdr = req.PromoPriceIdr
	}
	if req.Features != nil {
		features, err := marshalFeatures(req.Features)
		if err != nil {
			return nil, utils.NewValidationError("features", "malformed feature set")
		}
		next.Features = features
	}

	if err := validatePlanPricing(next.Name, next.BillingInterval, next.PriceUsd, next.PriceIdr, next.PromoPriceUsd, next.PromoPriceIdr); err != nil {
		return nil, err
	}

	if next.Name != plan.Name {
		exists, err := s.planRepo.ExistsByNameAndInterval(ctx, next.Name, next.BillingInterval, plan.ID.String())
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if exists {
			return nil, utils.ErrPlanAlreadyExists
		}
	}

	touchesProvider := (req.Name != nil && next.Name != plan.Name) ||
		req.PriceIdr != nil || req.PromoPriceIdr != nil

	if touchesProvider && plan.ExternalPlanID != "" {
		// Provider first; a failed call leaves the local row untouched.
		// The provider's PATCH only takes items and metadata, so the plan
		// name over there is best-effort (item name + metadata).
		_, err := s.billing.UpdatePlan(ctx, plan.ExternalPlanID, billing.UpdatePlanRequest{
			Items: []billing.RecurringItem{providerItem(&next)},
			Metadata: map[string]interface{}{
				"plan_name": next.Name,
			},
		})
		if err != nil {
			return nil, err
		}
	}

	if err := s.planRepo.Update(ctx, &next); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toPlanResponse(&next), nil
}

func (s *PlanSyncService) Deactivate(ctx context.Context, id string) error {

	plan, err := s.planRepo.GetPlanById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if plan == nil {
		return utils.ErrPlanNotFound
	}

	// A plan that never reached the provider has nothing to deactivate
	// there. Not expected in steady state, but possible after a failed
	// create was retried against an older row.
	if plan.ExternalPlanID != "" {
		if err := s.billing.DeactivatePlan(ctx, plan.ExternalPlanID); err != nil {
			return err
		}
	}

	plan.IsActive = false
	if err := s.planRepo.Update(ctx, plan); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

// Duplicate clones the source plan's full attribute set under a new name by
// re-running Create, so the copy always gets its own freshly minted external
// plan id.
func (s *PlanSyncService) Duplicate(ctx context.Context, id string, newName string) (*response_models.SubscriptionPlan, error) {

	source, err := s.planRepo.GetPlanById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if source == nil {
		return nil, utils.ErrPlanNotFound
	}

	var features *db_models.PlanFeatures
	if len(source.Features) > 0 {
		features = &db_models.PlanFeatures{}
		if err := json.Unmarshal(source.Features, features); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	return s.Create(ctx, request_models.CreatePlanRequest{
		Name:            newName,
		BillingInterval: string(source.BillingInterval),
		PriceUsd:        source.PriceUsd,
		PriceIdr:        source.PriceIdr,
		PromoPriceUsd:   source.PromoPriceUsd,
		PromoPriceIdr:   source.PromoPriceIdr,
		Features:        features,
	})
}

func (s *PlanSyncService) GetPlanById(ctx context.Context, id string) (*response_models.SubscriptionPlan, error) {

	plan, err := s.planRepo.GetPlanById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	return toPlanResponse(plan), nil
}

func (s *PlanSyncService) ListPlans(ctx context.Context, includeInactive bool) ([]response_models.SubscriptionPlan, error) {

	plans, err := s.planRepo.GetAllPlans(ctx, includeInactive)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.SubscriptionPlan, 0, len(plans))
	for i := range plans {
		result = append(result, *toPlanResponse(&plans[i]))
	}
	return result, nil
}

// ensureDefaultCustomer resolves the provider customer every plan hangs off,
// creating it lazily on first use and memoizing the id for the process
// lifetime.
func (s *PlanSyncService) ensureDefaultCustomer(ctx context.Context) (string, error) {
	if id, ok := s.customers.Get(defaultCustomerKey); ok {
		return id, nil
	}

	customer, err := s.billing.CreateCustomer(ctx, billing.CreateCustomerRequest{
		ReferenceID: defaultCustomerRef,
		GivenNames:  "Trendlens Billing",
	})
	if err != nil {
		return "", err
	}

	s.customers.Set(defaultCustomerKey, customer.ID)
	return customer.ID, nil
}

func validatePlanPricing(name string, interval db_models.BillingInterval, priceUsd, priceIdr float64, promoUsd, promoIdr *float64) error {
	if name == "" {
		return utils.NewValidationError("name", "must not be empty")
	}
	if !interval.IsValid() {
		return utils.NewValidationError("billing_interval", "must be MONTHLY or YEARLY")
	}
	if priceUsd <= 0 {
		return utils.NewValidationError("price_usd", "must be greater than zero")
	}
	if priceIdr <= 0 {
		return utils.NewValidationError("price_idr", "must be greater than zero")
	}
	if promoUsd != nil {
		if *promoUsd <= 0 {
			return utils.NewValidationError("promo_price_usd", "must be greater than zero")
		}
		if *promoUsd >= priceUsd {
			return utils.NewValidationError("promo_price_usd", "must be less than price_usd")
		}
	}
	if promoIdr != nil {
		if *promoIdr <= 0 {
			return utils.NewValidationError("promo_price_idr", "must be greater than zero")
		}
		if *promoIdr >= priceIdr {
			return utils.NewValidationError("promo_price_idr", "must be less than price_idr")
		}
	}
	return nil
}

func buildProviderPlan(plan *db_models.Plan, customerID string) billing.CreatePlanRequest {
	return billing.CreatePlanRequest{
		ReferenceID:     "plan-" + uuid.New().String(),
		CustomerID:      customerID,
		Amount:          plan.EffectivePriceIdr(),
		Currency:        "IDR",
		RecurringAction: "PAYMENT",
		Items:           []billing.RecurringItem{providerItem(plan)},
		Recurring:       providerSchedule(plan.BillingInterval),
	}
}

func providerItem(plan *db_models.Plan) billing.RecurringItem {
	return billing.RecurringItem{
		Type:          "DIGITAL_PRODUCT",
		ReferenceID:   "plan-item-" + string(plan.BillingInterval),
		Name:          plan.Name,
		NetUnitAmount: plan.EffectivePriceIdr(),
		Quantity:      1,
	}
}

func providerSchedule(interval db_models.BillingInterval) billing.RecurringSchedule {
	if interval == db_models.IntervalYearly {
		return billing.RecurringSchedule{Interval: "MONTH", IntervalCount: 12}
	}
	return billing.RecurringSchedule{Interval: "MONTH", IntervalCount: 1}
}

func marshalFeatures(features *db_models.PlanFeatures) (datatypes.JSON, error) {
	if features == nil {
		return datatypes.JSON([]byte("{}")), nil
	}
	raw, err := json.Marshal(features)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func toPlanResponse(plan *db_models.Plan) *response_models.SubscriptionPlan {
	return &response_models.SubscriptionPlan{
		ID:              plan.ID,
		Name:            plan.Name,
		BillingInterval: string(plan.BillingInterval),
		PriceUsd:        plan.PriceUsd,
		PriceIdr:        plan.PriceIdr,
		PromoPriceUsd:   plan.PromoPriceUsd,
		PromoPriceIdr:   plan.PromoPriceIdr,
		ExternalPlanID:  plan.ExternalPlanID,
		Features:        plan.Features,
		IsActive:        plan.IsActive,
		CreatedAt:       plan.CreatedAt,
		UpdatedAt:       plan.UpdatedAt,
	}
}

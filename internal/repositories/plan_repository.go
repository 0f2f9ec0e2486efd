package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"trendlens/internal/models/db_models"
)

type IPlanRepository interface {
	Insert(ctx context.Context, plan *db_models.Plan) error
	Update(ctx context.Context, plan *db_models.Plan) error
	GetPlanById(ctx context.Context, planID string) (*db_models.Plan, error)
	GetAllPlans(ctx context.Context, includeInactive bool) ([]db_models.Plan, error)
	ExistsByNameAndInterval(ctx context.Context, name string, interval db_models.BillingInterval, excludeID string) (bool, error)
}

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) IPlanRepository {
	return &PlanRepository{db: db}
}

func (p PlanRepository) Insert(ctx context.Context, plan *db_models.Plan) error {
	return p.db.WithContext(ctx).Create(plan).Error
}

// Update writes every column of the row, including zeroed ones; callers load
// the current row first and mutate it. Rows are never deleted, deactivation
// only flips is_active.
func (p PlanRepository) Update(ctx context.Context, plan *db_models.Plan) error {
	return p.db.WithContext(ctx).Save(plan).Error
}

func (p PlanRepository) GetPlanById(ctx context.Context, planID string) (*db_models.Plan, error) {

	var plan db_models.Plan
	err := p.db.WithContext(ctx).First(&plan, "id = ?", planID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}

func (p PlanRepository) GetAllPlans(ctx context.Context, includeInactive bool) ([]db_models.Plan, error) {

	query := p.db.WithContext(ctx).Order("created_at ASC")
	if !includeInactive {
		query = query.Where("is_active = TRUE")
	}

	var plans []db_models.Plan
	if err := query.Find(&plans).Error; err != nil {
		return nil, err
	}

	return plans, nil
}

func (p PlanRepository) ExistsByNameAndInterval(ctx context.Context, name string, interval db_models.BillingInterval, excludeID string) (bool, error) {

	query := p.db.WithContext(ctx).Model(&db_models.Plan{}).
		Where("name = ? AND billing_interval = ?", name, interval)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

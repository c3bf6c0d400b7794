package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pawcation/internal/models/db_models"
)

type PlanRepository interface {
	Create(ctx context.Context, plan *db_models.Plan) error
	GetByID(ctx context.Context, planID string) (*db_models.Plan, error)
	ListByUser(ctx context.Context, userID string) ([]db_models.Plan, error)
	ListPastByUser(ctx context.Context, userID, before string) ([]db_models.Plan, error)
	Update(ctx context.Context, plan *db_models.Plan) error
	Delete(ctx context.Context, planID string) error
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) Create(ctx context.Context, plan *db_models.Plan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *planRepository) GetByID(ctx context.Context, planID string) (*db_models.Plan, error) {
	var plan db_models.Plan
	err := r.db.WithContext(ctx).First(&plan, "id = ?", planID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) ListByUser(ctx context.Context, userID string) ([]db_models.Plan, error) {
	var plans []db_models.Plan
	err := r.db.WithContext(ctx).Find(&plans, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// ListPastByUser returns plans that ended before the given YYYY-MM-DD date,
// most recent first.
func (r *planRepository) ListPastByUser(ctx context.Context, userID, before string) ([]db_models.Plan, error) {
	var plans []db_models.Plan
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND end_date < ?", userID, before).
		Order("end_date DESC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *planRepository) Update(ctx context.Context, plan *db_models.Plan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

func (r *planRepository) Delete(ctx context.Context, planID string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Plan{}, "id = ?", planID).Error
}

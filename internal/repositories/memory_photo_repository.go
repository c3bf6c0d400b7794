package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pawcation/internal/models/db_models"
)

type MemoryPhotoRepository interface {
	Create(ctx context.Context, photo *db_models.MemoryPhoto) error
	GetByID(ctx context.Context, photoID string) (*db_models.MemoryPhoto, error)
	ListByPlan(ctx context.Context, planID string) ([]db_models.MemoryPhoto, error)
	Delete(ctx context.Context, photoID string) error
}

type memoryPhotoRepository struct {
	db *gorm.DB
}

func NewMemoryPhotoRepository(db *gorm.DB) MemoryPhotoRepository {
	return &memoryPhotoRepository{db: db}
}

func (r *memoryPhotoRepository) Create(ctx context.Context, photo *db_models.MemoryPhoto) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

func (r *memoryPhotoRepository) GetByID(ctx context.Context, photoID string) (*db_models.MemoryPhoto, error) {
	var photo db_models.MemoryPhoto
	err := r.db.WithContext(ctx).First(&photo, "id = ?", photoID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &photo, nil
}

func (r *memoryPhotoRepository) ListByPlan(ctx context.Context, planID string) ([]db_models.MemoryPhoto, error) {
	var photos []db_models.MemoryPhoto
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&photos, "plan_id = ?", planID).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *memoryPhotoRepository) Delete(ctx context.Context, photoID string) error {
	return r.db.WithContext(ctx).Delete(&db_models.MemoryPhoto{}, "id = ?", photoID).Error
}

package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pawcation/internal/models/db_models"
)

type PetRepository interface {
	Create(ctx context.Context, pet *db_models.Pet) error
	GetByID(ctx context.Context, petID string) (*db_models.Pet, error)
	ListByUser(ctx context.Context, userID string) ([]db_models.Pet, error)
	Update(ctx context.Context, pet *db_models.Pet) error
	Delete(ctx context.Context, petID string) error
}

type petRepository struct {
	db *gorm.DB
}

func NewPetRepository(db *gorm.DB) PetRepository {
	return &petRepository{db: db}
}

func (r *petRepository) Create(ctx context.Context, pet *db_models.Pet) error {
	return r.db.WithContext(ctx).Create(pet).Error
}

func (r *petRepository) GetByID(ctx context.Context, petID string) (*db_models.Pet, error) {
	var pet db_models.Pet
	err := r.db.WithContext(ctx).First(&pet, "id = ?", petID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pet, nil
}

func (r *petRepository) ListByUser(ctx context.Context, userID string) ([]db_models.Pet, error) {
	var pets []db_models.Pet
	err := r.db.WithContext(ctx).Find(&pets, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *petRepository) Update(ctx context.Context, pet *db_models.Pet) error {
	return r.db.WithContext(ctx).Save(pet).Error
}

func (r *petRepository) Delete(ctx context.Context, petID string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Pet{}, "id = ?", petID).Error
}

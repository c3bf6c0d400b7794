package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"pawcation/internal/models/db_models"
	"pawcation/internal/models/request_models"
	"pawcation/internal/repositories"
	"pawcation/pkg/utils"
)

type PetService interface {
	CreatePet(ctx context.Context, req request_models.PetCreateRequest) (*db_models.Pet, error)
	GetPet(ctx context.Context, petID string) (*db_models.Pet, error)
	ListPetsByUser(ctx context.Context, userID string) ([]db_models.Pet, error)
	UpdatePet(ctx context.Context, petID string, req request_models.PetUpdateRequest) (*db_models.Pet, error)
	DeletePet(ctx context.Context, petID string) error
}

type petService struct {
	petRepo  repositories.PetRepository
	userRepo repositories.UserRepository
}

func NewPetService(petRepo repositories.PetRepository, userRepo repositories.UserRepository) PetService {
	return &petService{
		petRepo:  petRepo,
		userRepo: userRepo,
	}
}

func (s *petService) CreatePet(ctx context.Context, req request_models.PetCreateRequest) (*db_models.Pet, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	owner, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		log.Printf("failed to load owner %s: %v", req.UserID, err)
		return nil, utils.ErrDatabaseError
	}
	if owner == nil {
		return nil, utils.ErrUserNotFound
	}

	pet := &db_models.Pet{
		UserID:           userID,
		Name:             req.Name,
		Breed:            req.Breed,
		Age:              req.Age,
		Size:             req.Size,
		Personality:      req.Personality,
		Health:           req.Health,
		Appearance:       req.Appearance,
		RabiesExpiration: req.RabiesExpiration,
		MicrochipID:      req.MicrochipID,
		ImageURL:         req.ImageURL,
		AvatarURL:        req.AvatarURL,
	}
	if err := s.petRepo.Create(ctx, pet); err != nil {
		log.Printf("failed to create pet: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return pet, nil
}

func (s *petService) GetPet(ctx context.Context, petID string) (*db_models.Pet, error) {
	pet, err := s.petRepo.GetByID(ctx, petID)
	if err != nil {
		log.Printf("failed to get pet %s: %v", petID, err)
		return nil, utils.ErrDatabaseError
	}
	if pet == nil {
		return nil, utils.ErrPetNotFound
	}
	return pet, nil
}

func (s *petService) ListPetsByUser(ctx context.Context, userID string) ([]db_models.Pet, error) {
	pets, err := s.petRepo.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("failed to list pets for user %s: %v", userID, err)
		return nil, utils.ErrDatabaseError
	}
	return pets, nil
}

func (s *petService) UpdatePet(ctx context.Context, petID string, req request_models.PetUpdateRequest) (*db_models.Pet, error) {
	pet, err := s.GetPet(ctx, petID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		pet.Name = *req.Name
	}
	if req.Breed != nil {
		pet.Breed = *req.Breed
	}
	if req.Age != nil {
		pet.Age = *req.Age
	}
	if req.Size != nil {
		pet.Size = *req.Size
	}
	if req.Personality != nil {
		pet.Personality = *req.Personality
	}
	if req.Health != nil {
		pet.Health = *req.Health
	}
	if req.Appearance != nil {
		pet.Appearance = *req.Appearance
	}
	if req.RabiesExpiration != nil {
		pet.RabiesExpiration = *req.RabiesExpiration
	}
	if req.MicrochipID != nil {
		pet.MicrochipID = *req.MicrochipID
	}
	if req.ImageURL != nil {
		pet.ImageURL = *req.ImageURL
	}
	if req.AvatarURL != nil {
		pet.AvatarURL = *req.AvatarURL
	}

	if err := s.petRepo.Update(ctx, pet); err != nil {
		log.Printf("failed to update pet %s: %v", petID, err)
		return nil, utils.ErrDatabaseError
	}
	return pet, nil
}

func (s *petService) DeletePet(ctx context.Context, petID string) error {
	if _, err := s.GetPet(ctx, petID); err != nil {
		return err
	}
	if err := s.petRepo.Delete(ctx, petID); err != nil {
		log.Printf("failed to delete pet %s: %v", petID, err)
		return utils.ErrDatabaseError
	}
	return nil
}

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

type MemoryService interface {
	CreateMemory(ctx context.Context, req request_models.MemoryCreateRequest) (*db_models.MemoryPhoto, error)
	ListMemoriesByPlan(ctx context.Context, planID string) ([]db_models.MemoryPhoto, error)
	DeleteMemory(ctx context.Context, memoryID string) error
}

type memoryService struct {
	memoryRepo repositories.MemoryPhotoRepository
	planRepo   repositories.PlanRepository
}

func NewMemoryService(memoryRepo repositories.MemoryPhotoRepository, planRepo repositories.PlanRepository) MemoryService {
	return &memoryService{
		memoryRepo: memoryRepo,
		planRepo:   planRepo,
	}
}

func (s *memoryService) CreateMemory(ctx context.Context, req request_models.MemoryCreateRequest) (*db_models.MemoryPhoto, error) {
	planID, err := uuid.Parse(req.PlanID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	plan, err := s.planRepo.GetByID(ctx, req.PlanID)
	if err != nil {
		log.Printf("failed to load plan %s: %v", req.PlanID, err)
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	photo := &db_models.MemoryPhoto{
		PlanID:  planID,
		UserID:  userID,
		URL:     req.URL,
		Caption: req.Caption,
	}
	if err := s.memoryRepo.Create(ctx, photo); err != nil {
		log.Printf("failed to create memory photo: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return photo, nil
}

func (s *memoryService) ListMemoriesByPlan(ctx context.Context, planID string) ([]db_models.MemoryPhoto, error) {
	photos, err := s.memoryRepo.ListByPlan(ctx, planID)
	if err != nil {
		log.Printf("failed to list memory photos for plan %s: %v", planID, err)
		return nil, utils.ErrDatabaseError
	}
	return photos, nil
}

func (s *memoryService) DeleteMemory(ctx context.Context, memoryID string) error {
	photo, err := s.memoryRepo.GetByID(ctx, memoryID)
	if err != nil {
		log.Printf("failed to get memory photo %s: %v", memoryID, err)
		return utils.ErrDatabaseError
	}
	if photo == nil {
		return utils.ErrMemoryNotFound
	}
	if err := s.memoryRepo.Delete(ctx, memoryID); err != nil {
		log.Printf("failed to delete memory photo %s: %v", memoryID, err)
		return utils.ErrDatabaseError
	}
	return nil
}

package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"pawcation/internal/models/db_models"
	"pawcation/internal/models/request_models"
	"pawcation/internal/models/response_models"
	"pawcation/internal/repositories"
	"pawcation/pkg/utils"
)

type PlanService interface {
	CreatePlan(ctx context.Context, req request_models.PlanCreateRequest) (*db_models.Plan, error)
	SavePlan(ctx context.Context, req request_models.PlanSaveRequest) (*db_models.Plan, error)
	GetPlan(ctx context.Context, planID string) (*db_models.Plan, error)
	ListPlansByUser(ctx context.Context, userID string) ([]db_models.Plan, error)
	ListPastTrips(ctx context.Context, userID string) ([]response_models.PastTrip, error)
	UpdatePlan(ctx context.Context, planID string, req request_models.PlanUpdateRequest) (*db_models.Plan, error)
	DeletePlan(ctx context.Context, planID string) error
}

type planService struct {
	planRepo   repositories.PlanRepository
	memoryRepo repositories.MemoryPhotoRepository
	userRepo   repositories.UserRepository
}

func NewPlanService(planRepo repositories.PlanRepository, memoryRepo repositories.MemoryPhotoRepository, userRepo repositories.UserRepository) PlanService {
	return &planService{
		planRepo:   planRepo,
		memoryRepo: memoryRepo,
		userRepo:   userRepo,
	}
}

func (s *planService) CreatePlan(ctx context.Context, req request_models.PlanCreateRequest) (*db_models.Plan, error) {
	userID, err := s.resolveUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if err := validateDateRange(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	numHumans := req.NumHumans
	if numHumans == 0 {
		numHumans = req.NumAdults + req.NumChildren
	}

	plan := &db_models.Plan{
		UserID:          userID,
		Origin:          req.Origin,
		Destination:     req.Destination,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		TripType:        req.TripType,
		IsRoundTrip:     req.IsRoundTrip,
		PlacesPassingBy: req.PlacesPassingBy,
		NumHumans:       numHumans,
		NumAdults:       req.NumAdults,
		NumChildren:     req.NumChildren,
		Budget:          req.Budget,
		PetIDs:          req.PetIDs,
	}
	if err := s.planRepo.Create(ctx, plan); err != nil {
		log.Printf("failed to create plan: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return plan, nil
}

// SavePlan persists a generated itinerary as a plan row. The itinerary JSON
// is stored verbatim and never re-normalized on the way in.
func (s *planService) SavePlan(ctx context.Context, req request_models.PlanSaveRequest) (*db_models.Plan, error) {
	userID, err := s.resolveUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if err := validateDateRange(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}
	if len(req.DetailedItinerary) > 0 && !json.Valid(req.DetailedItinerary) {
		return nil, utils.ErrInvalidInput
	}

	plan := &db_models.Plan{
		UserID:            userID,
		Origin:            req.Origin,
		Destination:       req.Destination,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		TripType:          req.TripType,
		IsRoundTrip:       req.IsRoundTrip,
		PetIDs:            req.PetIDs,
		NumHumans:         req.NumAdults + req.NumChildren,
		NumAdults:         req.NumAdults,
		NumChildren:       req.NumChildren,
		Budget:            req.Budget,
		DetailedItinerary: datatypes.JSON(req.DetailedItinerary),
	}
	if err := s.planRepo.Create(ctx, plan); err != nil {
		log.Printf("failed to save plan: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return plan, nil
}

func (s *planService) GetPlan(ctx context.Context, planID string) (*db_models.Plan, error) {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		log.Printf("failed to get plan %s: %v", planID, err)
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}
	return plan, nil
}

func (s *planService) ListPlansByUser(ctx context.Context, userID string) ([]db_models.Plan, error) {
	plans, err := s.planRepo.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("failed to list plans for user %s: %v", userID, err)
		return nil, utils.ErrDatabaseError
	}
	return plans, nil
}

// ListPastTrips returns plans that ended before today, each enriched with the
// memory photos attached to it.
func (s *planService) ListPastTrips(ctx context.Context, userID string) ([]response_models.PastTrip, error) {
	today := time.Now().Format("2006-01-02")
	plans, err := s.planRepo.ListPastByUser(ctx, userID, today)
	if err != nil {
		log.Printf("failed to list past plans for user %s: %v", userID, err)
		return nil, utils.ErrDatabaseError
	}

	trips := make([]response_models.PastTrip, 0, len(plans))
	for _, plan := range plans {
		photos, err := s.memoryRepo.ListByPlan(ctx, plan.ID.String())
		if err != nil {
			log.Printf("failed to list photos for plan %s: %v", plan.ID, err)
			return nil, utils.ErrDatabaseError
		}

		trip := response_models.PastTrip{
			Plan:          plan,
			PhotoCount:    len(photos),
			VisitedCities: visitedCities(plan),
		}
		if len(photos) > 0 {
			trip.CoverPhoto = photos[0].URL
		}
		trips = append(trips, trip)
	}
	return trips, nil
}

func (s *planService) UpdatePlan(ctx context.Context, planID string, req request_models.PlanUpdateRequest) (*db_models.Plan, error) {
	plan, err := s.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	if req.Origin != nil {
		plan.Origin = *req.Origin
	}
	if req.Destination != nil {
		plan.Destination = *req.Destination
	}
	if req.StartDate != nil {
		plan.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		plan.EndDate = *req.EndDate
	}
	if req.TripType != nil {
		plan.TripType = *req.TripType
	}
	if req.IsRoundTrip != nil {
		plan.IsRoundTrip = *req.IsRoundTrip
	}
	if req.PlacesPassingBy != nil {
		plan.PlacesPassingBy = *req.PlacesPassingBy
	}
	if req.DetailedItinerary != nil {
		if !json.Valid(req.DetailedItinerary) {
			return nil, utils.ErrInvalidInput
		}
		plan.DetailedItinerary = datatypes.JSON(req.DetailedItinerary)
	}
	if req.NumHumans != nil {
		plan.NumHumans = *req.NumHumans
	}
	if req.NumAdults != nil {
		plan.NumAdults = *req.NumAdults
	}
	if req.NumChildren != nil {
		plan.NumChildren = *req.NumChildren
	}
	if req.Budget != nil {
		plan.Budget = req.Budget
	}
	if req.PetIDs != nil {
		plan.PetIDs = *req.PetIDs
	}

	if err := validateDateRange(plan.StartDate, plan.EndDate); err != nil {
		return nil, err
	}

	if err := s.planRepo.Update(ctx, plan); err != nil {
		log.Printf("failed to update plan %s: %v", planID, err)
		return nil, utils.ErrDatabaseError
	}
	return plan, nil
}

func (s *planService) DeletePlan(ctx context.Context, planID string) error {
	if _, err := s.GetPlan(ctx, planID); err != nil {
		return err
	}
	if err := s.planRepo.Delete(ctx, planID); err != nil {
		log.Printf("failed to delete plan %s: %v", planID, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *planService) resolveUser(ctx context.Context, rawID string) (uuid.UUID, error) {
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, utils.ErrInvalidInput
	}
	owner, err := s.userRepo.GetByID(ctx, rawID)
	if err != nil {
		log.Printf("failed to load user %s: %v", rawID, err)
		return uuid.Nil, utils.ErrDatabaseError
	}
	if owner == nil {
		return uuid.Nil, utils.ErrUserNotFound
	}
	return userID, nil
}

// visitedCities combines the destination with any waypoints recorded on the
// plan. PlacesPassingBy may be a JSON array or a comma-separated string.
func visitedCities(plan db_models.Plan) []string {
	cities := []string{}
	if plan.Destination != "" {
		cities = append(cities, plan.Destination)
	}

	raw := strings.TrimSpace(plan.PlacesPassingBy)
	if raw == "" {
		return cities
	}

	var parsed []string
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		parsed = strings.Split(raw, ",")
	}
	for _, city := range parsed {
		city = strings.TrimSpace(city)
		if city != "" && city != plan.Destination {
			cities = append(cities, city)
		}
	}
	return cities
}

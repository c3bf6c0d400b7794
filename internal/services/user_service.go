package services

import (
	"context"
	"log"

	"pawcation/internal/models/db_models"
	"pawcation/internal/models/request_models"
	"pawcation/internal/repositories"
	"pawcation/pkg/utils"
)

type UserService interface {
	SignUp(ctx context.Context, req request_models.SignUpRequest) (*db_models.User, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*db_models.User, error)
	GetUser(ctx context.Context, userID string) (*db_models.User, error)
	GetUserFull(ctx context.Context, userID string) (*db_models.User, error)
	ListUsers(ctx context.Context, offset, limit int) ([]db_models.User, error)
	UpdateUser(ctx context.Context, userID string, req request_models.UserUpdateRequest) (*db_models.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) SignUp(ctx context.Context, req request_models.SignUpRequest) (*db_models.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		log.Printf("failed to check email %s: %v", req.Email, err)
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	user := &db_models.User{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		log.Printf("failed to create user: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return user, nil
}

// Login compares the stored credential directly. The same error is returned
// for an unknown email and a wrong password.
func (s *userService) Login(ctx context.Context, req request_models.LoginRequest) (*db_models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		log.Printf("failed to find user by email: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if user == nil || user.Password != req.Password {
		return nil, utils.ErrInvalidCredentials
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, userID string) (*db_models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		log.Printf("failed to get user %s: %v", userID, err)
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}

func (s *userService) GetUserFull(ctx context.Context, userID string) (*db_models.User, error) {
	user, err := s.userRepo.GetByIDFull(ctx, userID)
	if err != nil {
		log.Printf("failed to get user %s with relations: %v", userID, err)
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, offset, limit int) ([]db_models.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	users, err := s.userRepo.List(ctx, offset, limit)
	if err != nil {
		log.Printf("failed to list users: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return users, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req request_models.UserUpdateRequest) (*db_models.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if req.Password != nil {
		user.Password = *req.Password
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		log.Printf("failed to update user %s: %v", userID, err)
		return nil, utils.ErrDatabaseError
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	if _, err := s.GetUser(ctx, userID); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		log.Printf("failed to delete user %s: %v", userID, err)
		return utils.ErrDatabaseError
	}
	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"shop-service/internal/models"
	"shop-service/internal/store"
	"shop-service/internal/util"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles registration and login
type UserService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(st *store.Store) *UserService {
	return &UserService{
		store:  st,
		logger: util.GetLogger(),
	}
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new user with a bcrypt password hash.
func (s *UserService) Register(ctx context.Context, req *RegisterRequest) (models.User, error) {
	_, span := util.StartSpan(ctx, "UserService.Register")
	defer span.End()

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.store.CreateUser(req.Name, req.Email, string(hash))
	if err != nil {
		return models.User{}, err
	}

	util.UsersRegisteredTotal.Inc()
	s.logger.Info("User registered", zap.Int64("user_id", user.ID))
	return user, nil
}

// Login verifies credentials. Unknown emails and wrong passwords fail with
// the same error so callers cannot probe for registered addresses.
func (s *UserService) Login(ctx context.Context, req *LoginRequest) (models.User, error) {
	_, span := util.StartSpan(ctx, "UserService.Login")
	defer span.End()

	user, err := s.store.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.LoginFailuresTotal.Inc()
			return models.User{}, store.ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		util.LoginFailuresTotal.Inc()
		return models.User{}, store.ErrInvalidCredentials
	}

	return user, nil
}

// ListUsers returns all registered users
func (s *UserService) ListUsers(ctx context.Context) []models.User {
	_, span := util.StartSpan(ctx, "UserService.ListUsers")
	defer span.End()

	return s.store.ListUsers()
}

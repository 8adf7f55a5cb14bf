package store

import (
	"fmt"
	"time"

	"shop-service/internal/models"
)

// CreateUser registers a user. The email must not already be registered;
// passwordHash is stored as given.
func (s *Store) CreateUser(name, email, passwordHash string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.userByEmail[email]; ok {
		return models.User{}, fmt.Errorf("email %s: %w", email, ErrEmailTaken)
	}

	user := models.User{
		ID:           s.nextUserID,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}

	s.userByEmail[email] = len(s.users)
	s.users = append(s.users, user)
	s.nextUserID++

	return user, nil
}

// GetUserByEmail retrieves a user by email.
func (s *Store) GetUserByEmail(email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.userByEmail[email]
	if !ok {
		return models.User{}, fmt.Errorf("user %s: %w", email, ErrNotFound)
	}
	return s.users[idx], nil
}

// ListUsers returns all registered users in registration order.
func (s *Store) ListUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.User(nil), s.users...)
}

package store

import "errors"

// Core error taxonomy. Operations wrap these with context via fmt.Errorf
// and %w; callers match with errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrDuplicateReview    = errors.New("review already exists")
	ErrAlreadyExists      = errors.New("already in wishlist")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

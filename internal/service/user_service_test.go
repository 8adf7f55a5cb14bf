package service

import (
	"context"
	"testing"

	"shop-service/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	s := NewUserService(store.New())
	ctx := context.Background()

	user, err := s.Register(ctx, &RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.NotEqual(t, "hunter22", user.PasswordHash, "password must be stored hashed")

	logged, err := s.Login(ctx, &LoginRequest{
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	s := NewUserService(store.New())
	ctx := context.Background()

	_, err := s.Register(ctx, &RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = s.Login(ctx, &LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	s := NewUserService(store.New())

	// unknown email and wrong password are indistinguishable
	_, err := s.Login(context.Background(), &LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := NewUserService(store.New())
	ctx := context.Background()

	_, err := s.Register(ctx, &RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = s.Register(ctx, &RegisterRequest{
		Name: "Alice Again", Email: "alice@example.com", Password: "hunter23",
	})
	assert.ErrorIs(t, err, store.ErrEmailTaken)
}

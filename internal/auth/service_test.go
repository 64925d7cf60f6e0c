package auth

import (
	"context"
	"testing"
	"time"

	"cinebox/internal/shared/fault"
	"cinebox/internal/shared/middleware"
	"cinebox/internal/staff"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStaffRepo struct {
	mock.Mock
}

func (m *mockStaffRepo) FindByUsername(ctx context.Context, username string) (*staff.Staff, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Staff), args.Error(1)
}

func (m *mockStaffRepo) Create(ctx context.Context, s *staff.Staff) error {
	return m.Called(ctx, s).Error(0)
}

func TestLogin(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	account := &staff.Staff{
		ID:           uuid.New(),
		Username:     "cashier1",
		PasswordHash: hash,
		Name:         "Counter One",
		Role:         "CASHIER",
	}

	repo := new(mockStaffRepo)
	repo.On("FindByUsername", mock.Anything, "cashier1").Return(account, nil)
	svc := NewService(repo, "test-secret", time.Hour)

	result, err := svc.Login(context.Background(), LoginRequest{
		Username: "cashier1",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "CASHIER", result.Role)
	assert.Equal(t, "Counter One", result.Name)

	// Token round-trips with the role claim intact.
	claims := &middleware.Claims{}
	token, err := jwt.ParseWithClaims(result.Token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "CASHIER", claims.Role)
	assert.Equal(t, account.ID.String(), claims.UserID)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	repo := new(mockStaffRepo)
	repo.On("FindByUsername", mock.Anything, "cashier1").Return(&staff.Staff{
		ID:           uuid.New(),
		Username:     "cashier1",
		PasswordHash: hash,
		Role:         "CASHIER",
	}, nil)
	svc := NewService(repo, "test-secret", time.Hour)

	_, err = svc.Login(context.Background(), LoginRequest{
		Username: "cashier1",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, fault.ErrInvalidInput)
}

func TestLoginUnknownUser(t *testing.T) {
	repo := new(mockStaffRepo)
	repo.On("FindByUsername", mock.Anything, "nobody").Return(nil, fault.ErrNotFound)
	svc := NewService(repo, "test-secret", time.Hour)

	// Unknown user reads the same as a bad password.
	_, err := svc.Login(context.Background(), LoginRequest{
		Username: "nobody",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, fault.ErrInvalidInput)
}

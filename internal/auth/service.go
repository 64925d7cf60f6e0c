package auth

import (
	"context"
	"fmt"
	"time"

	"cinebox/internal/shared/fault"
	"cinebox/internal/shared/middleware"
	"cinebox/internal/staff"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// LoginRequest carries staff credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the staff profile
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
}

// Service authenticates staff and issues tokens
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
}

type service struct {
	staff     staff.Repository
	jwtSecret string
	expiresIn time.Duration
}

func NewService(staffRepo staff.Repository, jwtSecret string, expiresIn time.Duration) Service {
	return &service{staff: staffRepo, jwtSecret: jwtSecret, expiresIn: expiresIn}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	account, err := s.staff.FindByUsername(ctx, req.Username)
	if err != nil {
		if fault.IsNotFound(err) {
			return nil, fmt.Errorf("%w: invalid credentials", fault.ErrInvalidInput)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", fault.ErrInvalidInput)
	}

	expiresAt := time.Now().Add(s.expiresIn)
	claims := middleware.Claims{
		UserID:   account.ID.String(),
		Username: account.Username,
		Role:     account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   account.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &LoginResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
		Name:      account.Name,
		Role:      account.Role,
	}, nil
}

// HashPassword hashes a plaintext password for storage
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/Dosada05/tournament-league/models"
)

const passwordHashCost = 12

type AuthService interface {
	Login(ctx context.Context, input LoginInput) (*models.Organizer, error)
}

type LoginInput struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type authService struct {
	organizerName string
	passwordHash  []byte
}

// NewAuthService checks logins against a single organizer account whose password is
// stored as a bcrypt hash.
func NewAuthService(organizerName, passwordHash string) AuthService {
	return &authService{
		organizerName: organizerName,
		passwordHash:  []byte(passwordHash),
	}
}

func (s *authService) Login(_ context.Context, input LoginInput) (*models.Organizer, error) {
	if subtle.ConstantTimeCompare([]byte(input.Name), []byte(s.organizerName)) != 1 {
		return nil, ErrInvalidCredentials
	}

	err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(input.Password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to compare password hash: %w", err)
	}

	return &models.Organizer{Name: s.organizerName, Role: models.RoleOrganizer}, nil
}

// HashPassword produces the value expected in ORGANIZER_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("%w: password must not be empty", ErrValidationFailed)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

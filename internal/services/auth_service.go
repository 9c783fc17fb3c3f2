package services

import (
	"context"
	"errors"

	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/api/validate"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/auth"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/metrics"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/models"
	repo "github.com/KefouegFrank/zenithis-test-technique-backend/internal/repository"
)

const (
	minPasswordLen = 8
	maxPhoneLen    = 20
	maxAddressLen  = 500
)

type AuthService struct {
	users repo.Users
	tm    *auth.TokenManager
}

func NewAuthService(users repo.Users, tm *auth.TokenManager) *AuthService {
	return &AuthService{users: users, tm: tm}
}

// Register validates the registration, creates the account, and issues an
// initial token pair.
func (s *AuthService) Register(ctx context.Context, in models.Registration) (models.User, auth.TokenPair, error) {
	errs := validate.Collect(nil,
		validate.Required("name", in.Name),
		validate.MaxLen("name", in.Name, maxFieldLen),
		validate.Required("email", in.Email),
		validate.MaxLen("email", in.Email, maxFieldLen),
		validate.MaxLen("phone", in.Phone, maxPhoneLen),
		validate.MaxLen("address", in.Address, maxAddressLen),
	)
	if in.Email != "" {
		errs = validate.Collect(errs, validate.Email("email", in.Email))
	}
	errs = validate.Collect(errs, validate.MinLen("password", in.Password, minPasswordLen))
	if in.Password != in.PasswordConfirmation {
		errs = errs.Add("password", "confirmation does not match")
	}
	if len(errs) == 0 {
		taken, err := s.users.EmailTaken(ctx, in.Email, "")
		if err != nil {
			return models.User{}, auth.TokenPair{}, err
		}
		if taken {
			errs = errs.Add("email", "has already been taken")
		}
	}
	if len(errs) > 0 {
		return models.User{}, auth.TokenPair{}, errs
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, auth.TokenPair{}, err
	}

	u, err := s.users.Create(ctx, models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Phone:        in.Phone,
		Address:      in.Address,
	})
	if err != nil {
		return models.User{}, auth.TokenPair{}, err
	}

	pair, err := s.tm.GeneratePair(u.ID)
	if err != nil {
		return models.User{}, auth.TokenPair{}, err
	}
	return u, pair, nil
}

// Login checks the credentials and issues a token pair. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, auth.TokenPair, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			metrics.LoginsTotal.WithLabelValues("failed").Inc()
			return models.User{}, auth.TokenPair{}, models.ErrInvalidCredentials
		}
		return models.User{}, auth.TokenPair{}, err
	}
	if err := auth.VerifyPassword(password, u.PasswordHash); err != nil {
		metrics.LoginsTotal.WithLabelValues("failed").Inc()
		return models.User{}, auth.TokenPair{}, models.ErrInvalidCredentials
	}

	pair, err := s.tm.GeneratePair(u.ID)
	if err != nil {
		return models.User{}, auth.TokenPair{}, err
	}
	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return u, pair, nil
}

// Refresh exchanges a valid refresh token for a new pair. The subject must
// still exist.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error) {
	claims, err := s.tm.ParseRefresh(refreshToken)
	if err != nil {
		return auth.TokenPair{}, err
	}
	if _, err := s.users.GetByID(ctx, claims.UserID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return auth.TokenPair{}, auth.ErrTokenInvalid
		}
		return auth.TokenPair{}, err
	}
	return s.tm.GeneratePair(claims.UserID)
}

// Me returns the authenticated user's full record.
func (s *AuthService) Me(ctx context.Context, userID string) (models.User, error) {
	return s.users.GetByID(ctx, userID)
}

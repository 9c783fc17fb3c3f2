package services

import (
	"context"

	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/api/validate"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/auth"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/models"
	repo "github.com/KefouegFrank/zenithis-test-technique-backend/internal/repository"
)

type UserService struct {
	users repo.Users
	trips repo.Trips
}

func NewUserService(users repo.Users, trips repo.Trips) *UserService {
	return &UserService{users: users, trips: trips}
}

// List returns public profiles, 15 per page.
func (s *UserService) List(ctx context.Context, page int) (models.UserPage, error) {
	p := models.NewPageParams(page, models.DefaultPerPage)
	profiles, total, err := s.users.List(ctx, p)
	if err != nil {
		return models.UserPage{}, err
	}
	return models.UserPage{Data: profiles, Total: total, Page: p.Page, PerPage: p.PerPage}, nil
}

// Get returns one public profile with its trip count.
func (s *UserService) Get(ctx context.Context, id string) (models.PublicProfile, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return models.PublicProfile{}, err
	}
	count, err := s.trips.CountByOwner(ctx, id)
	if err != nil {
		return models.PublicProfile{}, err
	}
	return models.PublicProfile{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Phone:      u.Phone,
		Address:    u.Address,
		CreatedAt:  u.CreatedAt,
		TripsCount: &count,
	}, nil
}

// UpdateProfile applies a partial update to the caller's own account.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in models.ProfileUpdate) (models.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	var errs validate.Errs
	if in.Name != nil {
		errs = validate.Collect(errs,
			validate.Required("name", *in.Name),
			validate.MaxLen("name", *in.Name, maxFieldLen))
	}
	if in.Email != nil {
		errs = validate.Collect(errs,
			validate.Required("email", *in.Email),
			validate.Email("email", *in.Email),
			validate.MaxLen("email", *in.Email, maxFieldLen))
	}
	if in.Password != nil {
		errs = validate.Collect(errs, validate.MinLen("password", *in.Password, minPasswordLen))
		if in.PasswordConfirmation == nil || *in.Password != *in.PasswordConfirmation {
			errs = errs.Add("password", "confirmation does not match")
		}
	}
	if in.Phone != nil {
		errs = validate.Collect(errs, validate.MaxLen("phone", *in.Phone, maxPhoneLen))
	}
	if in.Address != nil {
		errs = validate.Collect(errs, validate.MaxLen("address", *in.Address, maxAddressLen))
	}

	// Uniqueness ignoring the caller's own row.
	if len(errs) == 0 && in.Email != nil && *in.Email != u.Email {
		taken, err := s.users.EmailTaken(ctx, *in.Email, userID)
		if err != nil {
			return models.User{}, err
		}
		if taken {
			errs = errs.Add("email", "has already been taken")
		}
	}
	if len(errs) > 0 {
		return models.User{}, errs
	}

	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return models.User{}, err
		}
		u.PasswordHash = hash
	}
	if in.Phone != nil {
		u.Phone = *in.Phone
	}
	if in.Address != nil {
		u.Address = *in.Address
	}

	return s.users.Update(ctx, u)
}

// DeleteAccount removes the caller's trips, then the account itself. The DB
// cascade would catch the trips anyway; the explicit delete keeps the order
// observable.
func (s *UserService) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.trips.DeleteByOwner(ctx, userID); err != nil {
		return err
	}
	return s.users.Delete(ctx, userID)
}

// Stats returns the caller's trip counts by status.
func (s *UserService) Stats(ctx context.Context, userID string) (models.UserStats, error) {
	return s.trips.StatsByOwner(ctx, userID, models.Today())
}

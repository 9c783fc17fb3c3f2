package repository

import (
	"context"

	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/models"
)

type Users interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	// EmailTaken reports whether another user (excluding excludeID) already
	// uses the given email.
	EmailTaken(ctx context.Context, email, excludeID string) (bool, error)
	List(ctx context.Context, p models.PageParams) ([]models.PublicProfile, int64, error)
	Update(ctx context.Context, u models.User) (models.User, error)
	Delete(ctx context.Context, id string) error
}

type Trips interface {
	Create(ctx context.Context, t models.Trip) (models.Trip, error)
	// GetByID returns the trip with its owner contact detail (incl. phone).
	GetByID(ctx context.Context, id string) (models.Trip, error)
	// List applies the filter predicates (AND), sort, and pagination, and
	// returns the page plus the total match count.
	List(ctx context.Context, f models.TripFilter, p models.PageParams) ([]models.Trip, int64, error)
	Update(ctx context.Context, t models.Trip) (models.Trip, error)
	UpdateStatus(ctx context.Context, id string, status models.TripStatus) (models.Trip, error)
	Delete(ctx context.Context, id string) error
	DeleteByOwner(ctx context.Context, ownerID string) error
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
	StatsByOwner(ctx context.Context, ownerID string, today models.Date) (models.UserStats, error)
}

// Package handlers implements the HTTP layer. Handlers decode requests, pull
// the acting user from the request context, call the matching service, and
// wrap every outcome in the response envelope.
//
// Service dependencies are interfaces defined here, in the consumer package,
// so handler tests can inject mocks without a database.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/api/httpx"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/auth"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/middleware"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/models"
)

type AuthService interface {
	Register(ctx context.Context, in models.Registration) (models.User, auth.TokenPair, error)
	Login(ctx context.Context, email, password string) (models.User, auth.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error)
	Me(ctx context.Context, userID string) (models.User, error)
}

type UserService interface {
	List(ctx context.Context, page int) (models.UserPage, error)
	Get(ctx context.Context, id string) (models.PublicProfile, error)
	UpdateProfile(ctx context.Context, userID string, in models.ProfileUpdate) (models.User, error)
	DeleteAccount(ctx context.Context, userID string) error
	Stats(ctx context.Context, userID string) (models.UserStats, error)
}

type TripService interface {
	Create(ctx context.Context, ownerID string, in models.TripCreate) (models.Trip, error)
	List(ctx context.Context, f models.TripFilter, p models.PageParams) (models.TripPage, error)
	MyTrips(ctx context.Context, ownerID string, f models.TripFilter, p models.PageParams) (models.TripPage, error)
	Get(ctx context.Context, id string) (models.Trip, error)
	Update(ctx context.Context, actorID, id string, in models.TripUpdate) (models.Trip, error)
	Delete(ctx context.Context, actorID, id string) error
	Cancel(ctx context.Context, actorID, id string) (models.Trip, error)
	Complete(ctx context.Context, actorID, id string) (models.Trip, error)
}

// decodeJSON decodes the request body, rejecting unknown fields so typos and
// unsupported mutations fail loudly at the boundary.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// actor returns the authenticated user ID set by the auth middleware.
// Reaching a protected handler without one is a wiring bug, answered as 401.
func actor(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := middleware.UserID(r.Context())
	if !ok {
		httpx.Fail(w, http.StatusUnauthorized, "Token absent", "")
	}
	return id, ok
}

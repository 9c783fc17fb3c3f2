package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/api/handlers"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/middleware"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/models"
)

type mockUserSvc struct {
	list          func(ctx context.Context, page int) (models.UserPage, error)
	get           func(ctx context.Context, id string) (models.PublicProfile, error)
	updateProfile func(ctx context.Context, userID string, in models.ProfileUpdate) (models.User, error)
	deleteAccount func(ctx context.Context, userID string) error
	stats         func(ctx context.Context, userID string) (models.UserStats, error)
}

func (m *mockUserSvc) List(ctx context.Context, page int) (models.UserPage, error) {
	return m.list(ctx, page)
}
func (m *mockUserSvc) Get(ctx context.Context, id string) (models.PublicProfile, error) {
	return m.get(ctx, id)
}
func (m *mockUserSvc) UpdateProfile(ctx context.Context, userID string, in models.ProfileUpdate) (models.User, error) {
	return m.updateProfile(ctx, userID, in)
}
func (m *mockUserSvc) DeleteAccount(ctx context.Context, userID string) error {
	return m.deleteAccount(ctx, userID)
}
func (m *mockUserSvc) Stats(ctx context.Context, userID string) (models.UserStats, error) {
	return m.stats(ctx, userID)
}

var _ handlers.UserService = (*mockUserSvc)(nil)

func userRouter(svc handlers.UserService, userID string) http.Handler {
	h := handlers.NewUserHandler(svc)
	r := chi.NewRouter()
	if userID != "" {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				next.ServeHTTP(w, req.WithContext(middleware.WithUserID(req.Context(), userID)))
			})
		})
	}
	r.Get("/users", h.List)
	r.Get("/users/stats", h.Stats)
	r.Get("/users/{id}", h.Get)
	r.Put("/users/profile", h.UpdateProfile)
	r.Delete("/users/account", h.DeleteAccount)
	return r
}

func TestUserHandler_List(t *testing.T) {
	svc := &mockUserSvc{list: func(_ context.Context, page int) (models.UserPage, error) {
		return models.UserPage{Data: []models.PublicProfile{{ID: "u1"}}, Total: 1, Page: page, PerPage: 15}, nil
	}}

	rec, env := do(t, userRouter(svc, "u1"), http.MethodGet, "/users?page=2", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Users retrieved successfully", env.Message)
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	svc := &mockUserSvc{get: func(context.Context, string) (models.PublicProfile, error) {
		return models.PublicProfile{}, models.ErrNotFound
	}}

	rec, env := do(t, userRouter(svc, "u1"), http.MethodGet, "/users/ghost", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", env.Message)
}

func TestUserHandler_Stats(t *testing.T) {
	svc := &mockUserSvc{stats: func(_ context.Context, userID string) (models.UserStats, error) {
		assert.Equal(t, "u1", userID)
		return models.UserStats{TotalTrips: 3, ActiveTrips: 2, UpcomingTrips: 1}, nil
	}}

	rec, env := do(t, userRouter(svc, "u1"), http.MethodGet, "/users/stats", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User statistics retrieved successfully", env.Message)

	var stats models.UserStats
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, int64(3), stats.TotalTrips)
}

func TestUserHandler_UpdateProfile(t *testing.T) {
	svc := &mockUserSvc{updateProfile: func(_ context.Context, userID string, in models.ProfileUpdate) (models.User, error) {
		u := models.User{ID: userID}
		if in.Name != nil {
			u.Name = *in.Name
		}
		return u, nil
	}}

	rec, env := do(t, userRouter(svc, "u1"), http.MethodPut, "/users/profile", `{"name":"Ada L."}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Profile updated successfully", env.Message)
}

func TestUserHandler_DeleteAccount(t *testing.T) {
	deleted := ""
	svc := &mockUserSvc{deleteAccount: func(_ context.Context, userID string) error {
		deleted = userID
		return nil
	}}

	rec, env := do(t, userRouter(svc, "u1"), http.MethodDelete, "/users/account", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Account deleted successfully", env.Message)
	assert.Equal(t, "u1", deleted)
}

func TestUserHandler_Stats_Unauthenticated(t *testing.T) {
	rec, env := do(t, userRouter(&mockUserSvc{}, ""), http.MethodGet, "/users/stats", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token absent", env.Message)
}

package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/auth"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/models"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/services"
)

func TestUserService_Get_IncludesTripCount(t *testing.T) {
	users := &mockUsers{getByID: func(_ context.Context, id string) (models.User, error) {
		return models.User{ID: id, Name: "Ada", Email: "ada@example.com"}, nil
	}}
	trips := &mockTrips{countByOwner: func(context.Context, string) (int64, error) { return 7, nil }}
	svc := services.NewUserService(users, trips)

	profile, err := svc.Get(context.Background(), "user-1")

	require.NoError(t, err)
	require.NotNil(t, profile.TripsCount)
	assert.Equal(t, int64(7), *profile.TripsCount)
	assert.Equal(t, "Ada", profile.Name)
}

func TestUserService_Get_Missing(t *testing.T) {
	users := &mockUsers{getByID: func(context.Context, string) (models.User, error) {
		return models.User{}, models.ErrNotFound
	}}
	svc := services.NewUserService(users, &mockTrips{})

	_, err := svc.Get(context.Background(), "nope")

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func selfUsers(current models.User) *mockUsers {
	return &mockUsers{
		getByID: func(context.Context, string) (models.User, error) { return current, nil },
		update:  func(_ context.Context, u models.User) (models.User, error) { return u, nil },
		emailTaken: func(_ context.Context, _, excludeID string) (bool, error) {
			return false, nil
		},
	}
}

func TestUserService_UpdateProfile_PartialUpdate(t *testing.T) {
	users := selfUsers(models.User{ID: "user-1", Name: "Ada", Email: "ada@example.com", Phone: "123"})
	svc := services.NewUserService(users, &mockTrips{})

	got, err := svc.UpdateProfile(context.Background(), "user-1", models.ProfileUpdate{
		Name: strptr("Ada L."),
	})

	require.NoError(t, err)
	assert.Equal(t, "Ada L.", got.Name)
	assert.Equal(t, "ada@example.com", got.Email)
	assert.Equal(t, "123", got.Phone)
}

func TestUserService_UpdateProfile_SameEmailSkipsUniqueness(t *testing.T) {
	called := false
	users := selfUsers(models.User{ID: "user-1", Email: "ada@example.com"})
	users.emailTaken = func(context.Context, string, string) (bool, error) {
		called = true
		return true, nil
	}
	svc := services.NewUserService(users, &mockTrips{})

	_, err := svc.UpdateProfile(context.Background(), "user-1", models.ProfileUpdate{
		Email: strptr("ada@example.com"),
	})

	require.NoError(t, err)
	assert.False(t, called, "keeping one's own email must not hit the uniqueness check")
}

func TestUserService_UpdateProfile_EmailTaken(t *testing.T) {
	users := selfUsers(models.User{ID: "user-1", Email: "ada@example.com"})
	users.emailTaken = func(context.Context, string, string) (bool, error) { return true, nil }
	svc := services.NewUserService(users, &mockTrips{})

	_, err := svc.UpdateProfile(context.Background(), "user-1", models.ProfileUpdate{
		Email: strptr("taken@example.com"),
	})

	assert.Contains(t, fieldErrs(t, err)["email"], "has already been taken")
}

func TestUserService_UpdateProfile_PasswordRehashed(t *testing.T) {
	users := selfUsers(models.User{ID: "user-1", Email: "ada@example.com", PasswordHash: "old-hash"})
	svc := services.NewUserService(users, &mockTrips{})

	got, err := svc.UpdateProfile(context.Background(), "user-1", models.ProfileUpdate{
		Password:             strptr("new password"),
		PasswordConfirmation: strptr("new password"),
	})

	require.NoError(t, err)
	assert.NotEqual(t, "old-hash", got.PasswordHash)
	assert.NoError(t, auth.VerifyPassword("new password", got.PasswordHash))
}

func TestUserService_UpdateProfile_PasswordConfirmationRequired(t *testing.T) {
	users := selfUsers(models.User{ID: "user-1", Email: "ada@example.com"})
	svc := services.NewUserService(users, &mockTrips{})

	_, err := svc.UpdateProfile(context.Background(), "user-1", models.ProfileUpdate{
		Password: strptr("new password"),
	})

	assert.Contains(t, fieldErrs(t, err)["password"], "confirmation does not match")
}

func TestUserService_DeleteAccount_TripsFirst(t *testing.T) {
	var order []string
	users := &mockUsers{delete: func(context.Context, string) error {
		order = append(order, "user")
		return nil
	}}
	trips := &mockTrips{deleteByOwner: func(context.Context, string) error {
		order = append(order, "trips")
		return nil
	}}
	svc := services.NewUserService(users, trips)

	err := svc.DeleteAccount(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, []string{"trips", "user"}, order)
}

func TestUserService_Stats(t *testing.T) {
	var gotToday models.Date
	trips := &mockTrips{statsByOwner: func(_ context.Context, _ string, today models.Date) (models.UserStats, error) {
		gotToday = today
		return models.UserStats{TotalTrips: 4, ActiveTrips: 2, UpcomingTrips: 1}, nil
	}}
	svc := services.NewUserService(&mockUsers{}, trips)

	stats, err := svc.Stats(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalTrips)
	assert.Equal(t, models.Today(), gotToday)
}

func TestUserService_List_PageSize(t *testing.T) {
	var gotParams models.PageParams
	users := &mockUsers{list: func(_ context.Context, p models.PageParams) ([]models.PublicProfile, int64, error) {
		gotParams = p
		return []models.PublicProfile{}, 0, nil
	}}
	svc := services.NewUserService(users, &mockTrips{})

	_, err := svc.List(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, 2, gotParams.Page)
	assert.Equal(t, 15, gotParams.PerPage)
}

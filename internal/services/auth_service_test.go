package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/auth"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/models"
	repo "github.com/KefouegFrank/zenithis-test-technique-backend/internal/repository"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/services"
)

type mockUsers struct {
	create     func(ctx context.Context, u models.User) (models.User, error)
	getByID    func(ctx context.Context, id string) (models.User, error)
	getByEmail func(ctx context.Context, email string) (models.User, error)
	emailTaken func(ctx context.Context, email, excludeID string) (bool, error)
	list       func(ctx context.Context, p models.PageParams) ([]models.PublicProfile, int64, error)
	update     func(ctx context.Context, u models.User) (models.User, error)
	delete     func(ctx context.Context, id string) error
}

func (m *mockUsers) Create(ctx context.Context, u models.User) (models.User, error) {
	return m.create(ctx, u)
}
func (m *mockUsers) GetByID(ctx context.Context, id string) (models.User, error) {
	return m.getByID(ctx, id)
}
func (m *mockUsers) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return m.getByEmail(ctx, email)
}
func (m *mockUsers) EmailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	return m.emailTaken(ctx, email, excludeID)
}
func (m *mockUsers) List(ctx context.Context, p models.PageParams) ([]models.PublicProfile, int64, error) {
	return m.list(ctx, p)
}
func (m *mockUsers) Update(ctx context.Context, u models.User) (models.User, error) {
	return m.update(ctx, u)
}
func (m *mockUsers) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}

var _ repo.Users = (*mockUsers)(nil)

func testTM() *auth.TokenManager {
	return auth.NewTokenManager("access", "refresh", "test", time.Hour, 24*time.Hour)
}

func validRegistration() models.Registration {
	return models.Registration{
		Name:                 "Ada",
		Email:                "ada@example.com",
		Password:             "correct horse",
		PasswordConfirmation: "correct horse",
	}
}

// freshUsers backs Register happy paths: no email collisions, IDs assigned
// on create.
func freshUsers() *mockUsers {
	return &mockUsers{
		emailTaken: func(context.Context, string, string) (bool, error) { return false, nil },
		create: func(_ context.Context, u models.User) (models.User, error) {
			u.ID = uuid.NewString()
			return u, nil
		},
	}
}

func TestAuthService_Register_Valid(t *testing.T) {
	svc := services.NewAuthService(freshUsers(), testTM())

	u, pair, err := svc.Register(context.Background(), validRegistration())

	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.NotEmpty(t, u.PasswordHash)
	assert.NotEqual(t, "correct horse", u.PasswordHash)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
}

func TestAuthService_Register_PasswordTooShort(t *testing.T) {
	svc := services.NewAuthService(freshUsers(), testTM())

	in := validRegistration()
	in.Password = "short"
	in.PasswordConfirmation = "short"

	_, _, err := svc.Register(context.Background(), in)

	assert.Contains(t, fieldErrs(t, err), "password")
}

func TestAuthService_Register_ConfirmationMismatch(t *testing.T) {
	svc := services.NewAuthService(freshUsers(), testTM())

	in := validRegistration()
	in.PasswordConfirmation = "something else"

	_, _, err := svc.Register(context.Background(), in)

	assert.Contains(t, fieldErrs(t, err)["password"], "confirmation does not match")
}

func TestAuthService_Register_BadEmail(t *testing.T) {
	svc := services.NewAuthService(freshUsers(), testTM())

	in := validRegistration()
	in.Email = "nope"

	_, _, err := svc.Register(context.Background(), in)

	assert.Contains(t, fieldErrs(t, err), "email")
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	users := freshUsers()
	users.emailTaken = func(context.Context, string, string) (bool, error) { return true, nil }
	svc := services.NewAuthService(users, testTM())

	_, _, err := svc.Register(context.Background(), validRegistration())

	assert.Contains(t, fieldErrs(t, err)["email"], "has already been taken")
}

func TestAuthService_Login_Valid(t *testing.T) {
	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)
	users := &mockUsers{getByEmail: func(_ context.Context, email string) (models.User, error) {
		return models.User{ID: "user-1", Email: email, PasswordHash: hash}, nil
	}}
	svc := services.NewAuthService(users, testTM())

	u, pair, err := svc.Login(context.Background(), "ada@example.com", "correct horse")

	require.NoError(t, err)
	assert.Equal(t, "user-1", u.ID)
	assert.NotEmpty(t, pair.AccessToken)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)
	users := &mockUsers{getByEmail: func(_ context.Context, email string) (models.User, error) {
		return models.User{ID: "user-1", Email: email, PasswordHash: hash}, nil
	}}
	svc := services.NewAuthService(users, testTM())

	_, _, err = svc.Login(context.Background(), "ada@example.com", "wrong")

	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	users := &mockUsers{getByEmail: func(context.Context, string) (models.User, error) {
		return models.User{}, models.ErrNotFound
	}}
	svc := services.NewAuthService(users, testTM())

	// Unknown email answers exactly like a wrong password.
	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")

	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestAuthService_Refresh_Valid(t *testing.T) {
	tm := testTM()
	users := &mockUsers{getByID: func(_ context.Context, id string) (models.User, error) {
		return models.User{ID: id}, nil
	}}
	svc := services.NewAuthService(users, tm)

	orig, err := tm.GeneratePair("user-1")
	require.NoError(t, err)

	pair, err := svc.Refresh(context.Background(), orig.RefreshToken)

	require.NoError(t, err)
	claims, err := tm.ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestAuthService_Refresh_AccessTokenRejected(t *testing.T) {
	tm := testTM()
	svc := services.NewAuthService(&mockUsers{}, tm)

	orig, err := tm.GeneratePair("user-1")
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), orig.AccessToken)

	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestAuthService_Refresh_DeletedUser(t *testing.T) {
	tm := testTM()
	users := &mockUsers{getByID: func(context.Context, string) (models.User, error) {
		return models.User{}, models.ErrNotFound
	}}
	svc := services.NewAuthService(users, tm)

	orig, err := tm.GeneratePair("user-1")
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), orig.RefreshToken)

	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}

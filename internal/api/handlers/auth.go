package handlers

import (
	"errors"
	"net/http"

	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/api/httpx"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/auth"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/models"
)

type AuthHandler struct {
	svc AuthService
}

func NewAuthHandler(svc AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// authPayload is the body returned by register and login: the user plus a
// fresh token pair, flattened alongside each other.
type authPayload struct {
	User models.User `json:"user"`
	auth.TokenPair
}

// Register handles POST /v1/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in models.Registration
	if err := decodeJSON(r, &in); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	user, pair, err := h.svc.Register(r.Context(), in)
	if err != nil {
		writeError(w, err, "User not found", "Failed to register user")
		return
	}
	httpx.OK(w, http.StatusCreated, authPayload{User: user, TokenPair: pair}, "User registered successfully")
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /v1/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decodeJSON(r, &in); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	user, pair, err := h.svc.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			httpx.Fail(w, http.StatusUnauthorized, "Invalid credentials", "")
			return
		}
		writeError(w, err, "User not found", "Failed to log in")
		return
	}
	httpx.OK(w, http.StatusOK, authPayload{User: user, TokenPair: pair}, "Login successful")
}

// Logout handles POST /v1/auth/logout. Tokens are stateless, so logout is a
// client-side discard; the endpoint exists so clients have a uniform flow.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	httpx.OK(w, http.StatusOK, nil, "Successfully logged out")
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Refresh handles POST /v1/auth/refresh, exchanging a refresh token for a
// new pair.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var in refreshRequest
	if err := decodeJSON(r, &in); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	pair, err := h.svc.Refresh(r.Context(), in.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrTokenExpired):
			httpx.Fail(w, http.StatusUnauthorized, "Token expired", "")
		case errors.Is(err, auth.ErrTokenInvalid):
			httpx.Fail(w, http.StatusUnauthorized, "Token invalid", "")
		default:
			writeError(w, err, "User not found", "Failed to refresh token")
		}
		return
	}
	httpx.OK(w, http.StatusOK, pair, "Token refreshed successfully")
}

// Me handles GET /v1/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	uid, ok := actor(w, r)
	if !ok {
		return
	}
	user, err := h.svc.Me(r.Context(), uid)
	if err != nil {
		writeError(w, err, "User not found", "Failed to retrieve user")
		return
	}
	httpx.OK(w, http.StatusOK, user, "User retrieved successfully")
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/api/httpx"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/models"
)

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// List handles GET /v1/users: public profiles, paginated.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pg, err := h.svc.List(r.Context(), page)
	if err != nil {
		writeError(w, err, "User not found", "Failed to retrieve users")
		return
	}
	httpx.OK(w, http.StatusOK, pg, "Users retrieved successfully")
}

// Get handles GET /v1/users/{id}: one public profile with its trip count.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err, "User not found", "Failed to retrieve user")
		return
	}
	httpx.OK(w, http.StatusOK, profile, "User retrieved successfully")
}

// Stats handles GET /v1/users/stats for the authenticated user.
func (h *UserHandler) Stats(w http.ResponseWriter, r *http.Request) {
	uid, ok := actor(w, r)
	if !ok {
		return
	}
	stats, err := h.svc.Stats(r.Context(), uid)
	if err != nil {
		writeError(w, err, "User not found", "Failed to retrieve statistics")
		return
	}
	httpx.OK(w, http.StatusOK, stats, "User statistics retrieved successfully")
}

// UpdateProfile handles PUT /v1/users/profile.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	uid, ok := actor(w, r)
	if !ok {
		return
	}
	var in models.ProfileUpdate
	if err := decodeJSON(r, &in); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	user, err := h.svc.UpdateProfile(r.Context(), uid, in)
	if err != nil {
		writeError(w, err, "User not found", "Failed to update profile")
		return
	}
	httpx.OK(w, http.StatusOK, user, "Profile updated successfully")
}

// DeleteAccount handles DELETE /v1/users/account. The user's trips go with
// the account.
func (h *UserHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	uid, ok := actor(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteAccount(r.Context(), uid); err != nil {
		writeError(w, err, "User not found", "Failed to delete account")
		return
	}
	httpx.OK(w, http.StatusOK, nil, "Account deleted successfully")
}

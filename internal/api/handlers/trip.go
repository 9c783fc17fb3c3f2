package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/api/httpx"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/models"
)

type TripHandler struct {
	svc TripService
}

func NewTripHandler(svc TripService) *TripHandler {
	return &TripHandler{svc: svc}
}

// List handles GET /v1/trips. Listings default to active trips when no
// status filter is given.
func (h *TripHandler) List(w http.ResponseWriter, r *http.Request) {
	f, errs := parseTripFilter(r)
	if len(errs) > 0 {
		httpx.FailValidation(w, errs.Map())
		return
	}
	pg, err := h.svc.List(r.Context(), f, parsePage(r))
	if err != nil {
		writeError(w, err, "Trip not found", "Failed to retrieve trips")
		return
	}
	httpx.OK(w, http.StatusOK, pg, "Trips retrieved successfully")
}

// MyTrips handles GET /v1/trips/my-trips: the caller's own trips in every
// status unless one is asked for.
func (h *TripHandler) MyTrips(w http.ResponseWriter, r *http.Request) {
	uid, ok := actor(w, r)
	if !ok {
		return
	}
	f, errs := parseTripFilter(r)
	if len(errs) > 0 {
		httpx.FailValidation(w, errs.Map())
		return
	}
	pg, err := h.svc.MyTrips(r.Context(), uid, f, parsePage(r))
	if err != nil {
		writeError(w, err, "Trip not found", "Failed to retrieve trips")
		return
	}
	httpx.OK(w, http.StatusOK, pg, "Your trips retrieved successfully")
}

// Create handles POST /v1/trips.
func (h *TripHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := actor(w, r)
	if !ok {
		return
	}
	var in models.TripCreate
	if err := decodeJSON(r, &in); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	trip, err := h.svc.Create(r.Context(), uid, in)
	if err != nil {
		writeError(w, err, "Trip not found", "Failed to create trip")
		return
	}
	httpx.OK(w, http.StatusCreated, trip, "Trip created successfully")
}

// Get handles GET /v1/trips/{id}.
func (h *TripHandler) Get(w http.ResponseWriter, r *http.Request) {
	trip, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err, "Trip not found", "Failed to retrieve trip")
		return
	}
	httpx.OK(w, http.StatusOK, trip, "Trip retrieved successfully")
}

// Update handles PUT /v1/trips/{id}. Only the owner may update.
func (h *TripHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, ok := actor(w, r)
	if !ok {
		return
	}
	var in models.TripUpdate
	if err := decodeJSON(r, &in); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	trip, err := h.svc.Update(r.Context(), uid, chi.URLParam(r, "id"), in)
	if err != nil {
		if errors.Is(err, models.ErrOwnership) {
			httpx.Fail(w, http.StatusForbidden, "Unauthorized. You can only modify your own trips.", "")
			return
		}
		writeError(w, err, "Trip not found", "Failed to update trip")
		return
	}
	httpx.OK(w, http.StatusOK, trip, "Trip updated successfully")
}

// Delete handles DELETE /v1/trips/{id}. Only the owner may delete.
func (h *TripHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := actor(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), uid, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, models.ErrOwnership) {
			httpx.Fail(w, http.StatusForbidden, "Unauthorized. You can only delete your own trips.", "")
			return
		}
		writeError(w, err, "Trip not found", "Failed to delete trip")
		return
	}
	httpx.OK(w, http.StatusOK, nil, "Trip deleted successfully")
}

// Cancel handles PATCH /v1/trips/{id}/cancel.
func (h *TripHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	uid, ok := actor(w, r)
	if !ok {
		return
	}
	trip, err := h.svc.Cancel(r.Context(), uid, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, models.ErrOwnership) {
			httpx.Fail(w, http.StatusForbidden, "Unauthorized. You can only cancel your own trips.", "")
			return
		}
		if errors.Is(err, models.ErrConflict) {
			httpx.Fail(w, http.StatusBadRequest, "Trip is already cancelled", "")
			return
		}
		writeError(w, err, "Trip not found", "Failed to cancel trip")
		return
	}
	httpx.OK(w, http.StatusOK, trip, "Trip cancelled successfully")
}

// Complete handles PATCH /v1/trips/{id}/complete.
func (h *TripHandler) Complete(w http.ResponseWriter, r *http.Request) {
	uid, ok := actor(w, r)
	if !ok {
		return
	}
	trip, err := h.svc.Complete(r.Context(), uid, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, models.ErrOwnership) {
			httpx.Fail(w, http.StatusForbidden, "Unauthorized. You can only complete your own trips.", "")
			return
		}
		if errors.Is(err, models.ErrConflict) {
			httpx.Fail(w, http.StatusBadRequest, "Trip is already completed", "")
			return
		}
		writeError(w, err, "Trip not found", "Failed to complete trip")
		return
	}
	httpx.OK(w, http.StatusOK, trip, "Trip marked as completed successfully")
}

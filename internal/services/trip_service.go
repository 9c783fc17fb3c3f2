// Package services contains the business logic. Services validate inputs,
// enforce ownership, and orchestrate repository calls; no SQL and no HTTP
// concerns live here. The acting user is always an explicit parameter.
package services

import (
	"context"
	"fmt"

	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/api/validate"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/metrics"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/models"
	repo "github.com/KefouegFrank/zenithis-test-technique-backend/internal/repository"
)

const (
	maxPrice    = 999999.99
	maxSeats    = 50
	minSeats    = 1
	maxDescLen  = 1000
	maxFieldLen = 255
)

type TripService struct {
	trips repo.Trips
}

func NewTripService(t repo.Trips) *TripService { return &TripService{trips: t} }

// Create validates and persists a new trip owned by ownerID.
// New trips always start active.
func (s *TripService) Create(ctx context.Context, ownerID string, in models.TripCreate) (models.Trip, error) {
	if errs := validateTripCreate(in); len(errs) > 0 {
		return models.Trip{}, errs
	}

	t := models.Trip{
		Title:          in.Title,
		Departure:      in.Departure,
		Destination:    in.Destination,
		DepartureDate:  *in.DepartureDate,
		DepartureTime:  in.DepartureTime,
		ReturnDate:     in.ReturnDate,
		ReturnTime:     in.ReturnTime,
		Price:          in.Price,
		AvailableSeats: *in.AvailableSeats,
		Status:         models.TripActive,
		UserID:         ownerID,
	}
	if in.Description != nil {
		t.Description = *in.Description
	}

	created, err := s.trips.Create(ctx, t)
	if err != nil {
		return models.Trip{}, err
	}
	metrics.TripsCreatedTotal.Inc()
	return created, nil
}

// List returns the public listing. When no status filter is given it defaults
// to active trips only.
func (s *TripService) List(ctx context.Context, f models.TripFilter, p models.PageParams) (models.TripPage, error) {
	if f.Status == "" {
		f.Status = models.TripActive
	}
	return s.page(ctx, f, p)
}

// MyTrips returns the owner-scoped listing. Unlike List, all statuses are
// included unless the caller filters explicitly.
func (s *TripService) MyTrips(ctx context.Context, ownerID string, f models.TripFilter, p models.PageParams) (models.TripPage, error) {
	f.OwnerID = ownerID
	return s.page(ctx, f, p)
}

func (s *TripService) page(ctx context.Context, f models.TripFilter, p models.PageParams) (models.TripPage, error) {
	trips, total, err := s.trips.List(ctx, f, p)
	if err != nil {
		return models.TripPage{}, err
	}
	return models.TripPage{Data: trips, Total: total, Page: p.Page, PerPage: p.PerPage}, nil
}

// Get returns a single trip with its owner contact detail.
func (s *TripService) Get(ctx context.Context, id string) (models.Trip, error) {
	return s.trips.GetByID(ctx, id)
}

// Update applies a partial update to the trip. Only the owner may update;
// ownership itself is immutable. Status may be set directly here.
func (s *TripService) Update(ctx context.Context, actorID, id string, in models.TripUpdate) (models.Trip, error) {
	t, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return models.Trip{}, err
	}
	if t.UserID != actorID {
		return models.Trip{}, models.ErrOwnership
	}
	if errs := validateTripUpdate(t, in); len(errs) > 0 {
		return models.Trip{}, errs
	}

	applyTripUpdate(&t, in)
	return s.trips.Update(ctx, t)
}

// Delete removes the trip. Only the owner may delete.
func (s *TripService) Delete(ctx context.Context, actorID, id string) error {
	t, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t.UserID != actorID {
		return models.ErrOwnership
	}
	return s.trips.Delete(ctx, id)
}

// Cancel transitions the trip to cancelled. Repeating the transition on an
// already-cancelled trip is a conflict; no reactivation path exists.
func (s *TripService) Cancel(ctx context.Context, actorID, id string) (models.Trip, error) {
	return s.transition(ctx, actorID, id, models.TripCancelled, "cancel")
}

// Complete transitions the trip to completed.
func (s *TripService) Complete(ctx context.Context, actorID, id string) (models.Trip, error) {
	return s.transition(ctx, actorID, id, models.TripCompleted, "complete")
}

func (s *TripService) transition(ctx context.Context, actorID, id string, target models.TripStatus, action string) (models.Trip, error) {
	t, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return models.Trip{}, err
	}
	if t.UserID != actorID {
		return models.Trip{}, models.ErrOwnership
	}
	if t.Status == target {
		return models.Trip{}, fmt.Errorf("trip is already %s: %w", target, models.ErrConflict)
	}

	updated, err := s.trips.UpdateStatus(ctx, id, target)
	if err != nil {
		return models.Trip{}, err
	}
	metrics.TripTransitionsTotal.WithLabelValues(action).Inc()
	return updated, nil
}

// --- validation -------------------------------------------------------------

func validateTripCreate(in models.TripCreate) validate.Errs {
	errs := validate.Collect(nil,
		validate.Required("title", in.Title),
		validate.MaxLen("title", in.Title, maxFieldLen),
		validate.Required("departure", in.Departure),
		validate.MaxLen("departure", in.Departure, maxFieldLen),
		validate.Required("destination", in.Destination),
		validate.MaxLen("destination", in.Destination, maxFieldLen),
		validate.Required("departure_time", in.DepartureTime),
	)
	if in.DepartureTime != "" {
		errs = validate.Collect(errs, validate.TimeHHMM("departure_time", in.DepartureTime))
	}
	if in.Description != nil {
		errs = validate.Collect(errs, validate.MaxLen("description", *in.Description, maxDescLen))
	}

	switch {
	case in.DepartureDate == nil:
		errs = errs.Add("departure_date", "required")
	case in.DepartureDate.Before(models.Today()):
		errs = errs.Add("departure_date", "The departure date must be today or later.")
	}

	if in.ReturnDate != nil && in.DepartureDate != nil && in.ReturnDate.Before(*in.DepartureDate) {
		errs = errs.Add("return_date", "The return date must be the same as or after the departure date.")
	}
	if in.ReturnTime != nil {
		errs = validate.Collect(errs, validate.TimeHHMM("return_time", *in.ReturnTime))
	}
	if in.Price != nil {
		errs = validate.Collect(errs, validate.FloatRange("price", *in.Price, 0, maxPrice))
	}
	if in.AvailableSeats == nil {
		errs = errs.Add("available_seats", "required")
	} else {
		errs = validate.Collect(errs, validate.IntRange("available_seats", *in.AvailableSeats, minSeats, maxSeats))
	}
	return errs
}

func validateTripUpdate(current models.Trip, in models.TripUpdate) validate.Errs {
	var errs validate.Errs

	if in.Title != nil {
		errs = validate.Collect(errs,
			validate.Required("title", *in.Title),
			validate.MaxLen("title", *in.Title, maxFieldLen))
	}
	if in.Description != nil {
		errs = validate.Collect(errs, validate.MaxLen("description", *in.Description, maxDescLen))
	}
	if in.Departure != nil {
		errs = validate.Collect(errs,
			validate.Required("departure", *in.Departure),
			validate.MaxLen("departure", *in.Departure, maxFieldLen))
	}
	if in.Destination != nil {
		errs = validate.Collect(errs,
			validate.Required("destination", *in.Destination),
			validate.MaxLen("destination", *in.Destination, maxFieldLen))
	}
	if in.DepartureDate != nil && in.DepartureDate.Before(models.Today()) {
		errs = errs.Add("departure_date", "The departure date must be today or later.")
	}
	if in.DepartureTime != nil {
		errs = validate.Collect(errs, validate.TimeHHMM("departure_time", *in.DepartureTime))
	}

	// Compare the return date against the departure date that will be in
	// effect after the update.
	if in.ReturnDate != nil {
		dep := current.DepartureDate
		if in.DepartureDate != nil {
			dep = *in.DepartureDate
		}
		if in.ReturnDate.Before(dep) {
			errs = errs.Add("return_date", "The return date must be the same as or after the departure date.")
		}
	}
	if in.ReturnTime != nil {
		errs = validate.Collect(errs, validate.TimeHHMM("return_time", *in.ReturnTime))
	}
	if in.Price != nil {
		errs = validate.Collect(errs, validate.FloatRange("price", *in.Price, 0, maxPrice))
	}
	if in.AvailableSeats != nil {
		errs = validate.Collect(errs, validate.IntRange("available_seats", *in.AvailableSeats, minSeats, maxSeats))
	}
	if in.Status != nil && !in.Status.Valid() {
		errs = errs.Add("status", "must be one of active, cancelled, completed")
	}
	return errs
}

func applyTripUpdate(t *models.Trip, in models.TripUpdate) {
	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Departure != nil {
		t.Departure = *in.Departure
	}
	if in.Destination != nil {
		t.Destination = *in.Destination
	}
	if in.DepartureDate != nil {
		t.DepartureDate = *in.DepartureDate
	}
	if in.DepartureTime != nil {
		t.DepartureTime = *in.DepartureTime
	}
	if in.ReturnDate != nil {
		t.ReturnDate = in.ReturnDate
	}
	if in.ReturnTime != nil {
		t.ReturnTime = in.ReturnTime
	}
	if in.Price != nil {
		t.Price = in.Price
	}
	if in.AvailableSeats != nil {
		t.AvailableSeats = *in.AvailableSeats
	}
	if in.Status != nil {
		t.Status = *in.Status
	}
}

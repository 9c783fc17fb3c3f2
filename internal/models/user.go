package models

import "time"

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicProfile is the reduced user view returned by the listing and profile
// endpoints. TripsCount is only populated on the single-profile endpoint.
type PublicProfile struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Address    string    `json:"address,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	TripsCount *int64    `json:"trips_count,omitempty"`
}

// Registration carries the fields of a POST /auth/register request.
type Registration struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	Phone                string `json:"phone"`
	Address              string `json:"address"`
}

// ProfileUpdate carries the fields of a PUT /users/profile request.
// Nil means "leave unchanged".
type ProfileUpdate struct {
	Name                 *string `json:"name"`
	Email                *string `json:"email"`
	Password             *string `json:"password"`
	PasswordConfirmation *string `json:"password_confirmation"`
	Phone                *string `json:"phone"`
	Address              *string `json:"address"`
}

// UserStats are the caller's trip counts by status. Upcoming counts active
// trips departing today or later.
type UserStats struct {
	TotalTrips     int64 `json:"total_trips"`
	ActiveTrips    int64 `json:"active_trips"`
	CompletedTrips int64 `json:"completed_trips"`
	CancelledTrips int64 `json:"cancelled_trips"`
	UpcomingTrips  int64 `json:"upcoming_trips"`
}

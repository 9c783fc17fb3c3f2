package models

import "time"

type TripStatus string

const (
	TripActive    TripStatus = "active"
	TripCancelled TripStatus = "cancelled"
	TripCompleted TripStatus = "completed"
)

// Valid reports whether s is one of the three known statuses.
func (s TripStatus) Valid() bool {
	switch s {
	case TripActive, TripCancelled, TripCompleted:
		return true
	}
	return false
}

// Trip is a travel listing owned by a single user. Ownership is immutable
// after creation; only the owner may mutate or delete the trip.
type Trip struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Departure      string     `json:"departure"`
	Destination    string     `json:"destination"`
	DepartureDate  Date       `json:"departure_date"`
	DepartureTime  string     `json:"departure_time"`
	ReturnDate     *Date      `json:"return_date,omitempty"`
	ReturnTime     *string    `json:"return_time,omitempty"`
	Price          *float64   `json:"price,omitempty"`
	AvailableSeats int        `json:"available_seats"`
	Status         TripStatus `json:"status"`
	UserID         string     `json:"user_id"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	Owner          *TripOwner `json:"user,omitempty"`
}

// TripOwner is the owner contact detail embedded in trip responses.
// Phone is only populated on the single-trip endpoint.
type TripOwner struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// TripCreate carries the fields of a POST /trips request. Pointer fields are
// optional; the rest are required and validated in the service layer.
// Status is deliberately absent — new trips always start active.
type TripCreate struct {
	Title          string   `json:"title"`
	Description    *string  `json:"description"`
	Departure      string   `json:"departure"`
	Destination    string   `json:"destination"`
	DepartureDate  *Date    `json:"departure_date"`
	DepartureTime  string   `json:"departure_time"`
	ReturnDate     *Date    `json:"return_date"`
	ReturnTime     *string  `json:"return_time"`
	Price          *float64 `json:"price"`
	AvailableSeats *int     `json:"available_seats"`
}

// TripUpdate carries the fields of a PUT /trips/{id} request.
// Nil means "leave unchanged". Unlike TripCreate, status may be set directly.
type TripUpdate struct {
	Title          *string     `json:"title"`
	Description    *string     `json:"description"`
	Departure      *string     `json:"departure"`
	Destination    *string     `json:"destination"`
	DepartureDate  *Date       `json:"departure_date"`
	DepartureTime  *string     `json:"departure_time"`
	ReturnDate     *Date       `json:"return_date"`
	ReturnTime     *string     `json:"return_time"`
	Price          *float64    `json:"price"`
	AvailableSeats *int        `json:"available_seats"`
	Status         *TripStatus `json:"status"`
}

// TripFilter is the set of optional predicates composed (AND) by the trip
// listing query. The exact-date and range predicates compound restrictively
// when both are supplied.
type TripFilter struct {
	OwnerID     string
	Search      string
	Departure   string
	Destination string
	Status      TripStatus
	Date        *Date
	StartDate   *Date
	EndDate     *Date
	SortBy      string
	SortDir     string
}

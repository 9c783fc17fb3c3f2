package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/models"
)

type tripsRepo struct{ db db }

// tripCols selects a trip row joined with its owner. Times are rendered as
// HH:MM strings and uuids as text so rows scan into plain Go types.
const tripCols = `
	t.id::text, t.title, t.description, t.departure, t.destination,
	t.departure_date, to_char(t.departure_time, 'HH24:MI'),
	t.return_date, to_char(t.return_time, 'HH24:MI'),
	t.price, t.available_seats, t.status, t.user_id::text,
	t.created_at, t.updated_at,
	u.name, u.email, u.phone`

const tripFrom = ` FROM trips t JOIN users u ON u.id = t.user_id`

// sortColumns is the whitelist for the sort_by parameter. Anything else
// falls back to departure_date.
var sortColumns = map[string]bool{
	"departure_date":  true,
	"return_date":     true,
	"created_at":      true,
	"updated_at":      true,
	"title":           true,
	"departure":       true,
	"destination":     true,
	"price":           true,
	"available_seats": true,
	"status":          true,
}

func (r *tripsRepo) Create(ctx context.Context, t models.Trip) (models.Trip, error) {
	const q = `
		INSERT INTO trips (id, title, description, departure, destination,
			departure_date, departure_time, return_date, return_time,
			price, available_seats, status, user_id)
		VALUES (@id, @title, @description, @departure, @destination,
			@departure_date, @departure_time, @return_date, @return_time,
			@price, @available_seats, @status, @user_id)
		RETURNING id::text`

	args := pgx.NamedArgs{
		"id":              uuid.NewString(),
		"title":           t.Title,
		"description":     t.Description,
		"departure":       t.Departure,
		"destination":     t.Destination,
		"departure_date":  t.DepartureDate.Time,
		"departure_time":  t.DepartureTime,
		"return_date":     dateArg(t.ReturnDate),
		"return_time":     t.ReturnTime,
		"price":           t.Price,
		"available_seats": t.AvailableSeats,
		"status":          string(t.Status),
		"user_id":         t.UserID,
	}

	var id string
	if err := r.db.QueryRow(ctx, q, args).Scan(&id); err != nil {
		return models.Trip{}, fmt.Errorf("postgres.Trips.Create: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *tripsRepo) GetByID(ctx context.Context, id string) (models.Trip, error) {
	// Text comparison so a malformed client-supplied ID reads as not found
	// instead of a uuid cast error.
	q := `SELECT` + tripCols + tripFrom + ` WHERE t.id::text = @id`

	t, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return models.Trip{}, fmt.Errorf("postgres.Trips.GetByID: %w", err)
	}
	return t, nil
}

func (r *tripsRepo) List(ctx context.Context, f models.TripFilter, p models.PageParams) ([]models.Trip, int64, error) {
	where, args := buildTripFilter(f)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*)`+tripFrom+where, args).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres.Trips.List: count: %w", err)
	}

	q := `SELECT` + tripCols + tripFrom + where + orderClause(f) + ` LIMIT @limit OFFSET @offset`
	args["limit"] = p.PerPage
	args["offset"] = p.Offset()

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres.Trips.List: %w", err)
	}
	defer rows.Close()

	trips := []models.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres.Trips.List: scan: %w", err)
		}
		// Owner phone stays private on listings.
		t.Owner.Phone = ""
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres.Trips.List: rows: %w", err)
	}
	return trips, total, nil
}

func (r *tripsRepo) Update(ctx context.Context, t models.Trip) (models.Trip, error) {
	const q = `
		UPDATE trips
		SET title = @title,
		    description = @description,
		    departure = @departure,
		    destination = @destination,
		    departure_date = @departure_date,
		    departure_time = @departure_time,
		    return_date = @return_date,
		    return_time = @return_time,
		    price = @price,
		    available_seats = @available_seats,
		    status = @status,
		    updated_at = now()
		WHERE id = @id`

	args := pgx.NamedArgs{
		"id":              t.ID,
		"title":           t.Title,
		"description":     t.Description,
		"departure":       t.Departure,
		"destination":     t.Destination,
		"departure_date":  t.DepartureDate.Time,
		"departure_time":  t.DepartureTime,
		"return_date":     dateArg(t.ReturnDate),
		"return_time":     t.ReturnTime,
		"price":           t.Price,
		"available_seats": t.AvailableSeats,
		"status":          string(t.Status),
	}

	tag, err := r.db.Exec(ctx, q, args)
	if err != nil {
		return models.Trip{}, fmt.Errorf("postgres.Trips.Update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.Trip{}, fmt.Errorf("postgres.Trips.Update: %w", models.ErrNotFound)
	}
	return r.GetByID(ctx, t.ID)
}

func (r *tripsRepo) UpdateStatus(ctx context.Context, id string, status models.TripStatus) (models.Trip, error) {
	const q = `UPDATE trips SET status = @status, updated_at = now() WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "status": string(status)})
	if err != nil {
		return models.Trip{}, fmt.Errorf("postgres.Trips.UpdateStatus: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.Trip{}, fmt.Errorf("postgres.Trips.UpdateStatus: %w", models.ErrNotFound)
	}
	return r.GetByID(ctx, id)
}

func (r *tripsRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM trips WHERE id::text = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("postgres.Trips.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("postgres.Trips.Delete: %w", models.ErrNotFound)
	}
	return nil
}

func (r *tripsRepo) DeleteByOwner(ctx context.Context, ownerID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM trips WHERE user_id = @user_id`, pgx.NamedArgs{"user_id": ownerID})
	if err != nil {
		return fmt.Errorf("postgres.Trips.DeleteByOwner: %w", err)
	}
	return nil
}

func (r *tripsRepo) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM trips WHERE user_id = @user_id`,
		pgx.NamedArgs{"user_id": ownerID}).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("postgres.Trips.CountByOwner: %w", err)
	}
	return n, nil
}

func (r *tripsRepo) StatsByOwner(ctx context.Context, ownerID string, today models.Date) (models.UserStats, error) {
	const q = `
		SELECT count(*),
		       count(*) FILTER (WHERE status = 'active'),
		       count(*) FILTER (WHERE status = 'completed'),
		       count(*) FILTER (WHERE status = 'cancelled'),
		       count(*) FILTER (WHERE status = 'active' AND departure_date >= @today)
		FROM trips
		WHERE user_id = @user_id`

	var s models.UserStats
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"user_id": ownerID, "today": today.Time}).
		Scan(&s.TotalTrips, &s.ActiveTrips, &s.CompletedTrips, &s.CancelledTrips, &s.UpcomingTrips)
	if err != nil {
		return models.UserStats{}, fmt.Errorf("postgres.Trips.StatsByOwner: %w", err)
	}
	return s, nil
}

// buildTripFilter turns the optional filter predicates into an ANDed WHERE
// clause. Exact-date and range predicates are appended independently, so when
// both are supplied they compound restrictively.
func buildTripFilter(f models.TripFilter) (string, pgx.NamedArgs) {
	var conds []string
	args := pgx.NamedArgs{}

	if f.OwnerID != "" {
		conds = append(conds, `t.user_id = @owner_id`)
		args["owner_id"] = f.OwnerID
	}
	if f.Search != "" {
		conds = append(conds, `(t.title ILIKE @search OR t.description ILIKE @search
			OR t.departure ILIKE @search OR t.destination ILIKE @search)`)
		args["search"] = "%" + f.Search + "%"
	}
	if f.Date != nil {
		conds = append(conds, `t.departure_date = @date`)
		args["date"] = f.Date.Time
	}
	if f.StartDate != nil {
		conds = append(conds, `t.departure_date >= @start_date`)
		args["start_date"] = f.StartDate.Time
	}
	if f.EndDate != nil {
		conds = append(conds, `t.departure_date <= @end_date`)
		args["end_date"] = f.EndDate.Time
	}
	if f.Status != "" {
		conds = append(conds, `t.status = @status`)
		args["status"] = string(f.Status)
	}
	if f.Departure != "" {
		conds = append(conds, `t.departure ILIKE @departure`)
		args["departure"] = "%" + f.Departure + "%"
	}
	if f.Destination != "" {
		conds = append(conds, `t.destination ILIKE @destination`)
		args["destination"] = "%" + f.Destination + "%"
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func orderClause(f models.TripFilter) string {
	col := f.SortBy
	if !sortColumns[col] {
		col = "departure_date"
	}
	dir := "ASC"
	if strings.EqualFold(f.SortDir, "desc") {
		dir = "DESC"
	}
	return fmt.Sprintf(" ORDER BY t.%s %s", col, dir)
}

func dateArg(d *models.Date) any {
	if d == nil {
		return nil
	}
	return d.Time
}

func scanTrip(s scanner) (models.Trip, error) {
	var (
		t       models.Trip
		depDate time.Time
		retDate *time.Time
		retTime *string
		owner   models.TripOwner
	)

	err := s.Scan(&t.ID, &t.Title, &t.Description, &t.Departure, &t.Destination,
		&depDate, &t.DepartureTime,
		&retDate, &retTime,
		&t.Price, &t.AvailableSeats, &t.Status, &t.UserID,
		&t.CreatedAt, &t.UpdatedAt,
		&owner.Name, &owner.Email, &owner.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Trip{}, models.ErrNotFound
		}
		return models.Trip{}, err
	}

	t.DepartureDate = models.Date{Time: depDate}
	if retDate != nil {
		t.ReturnDate = &models.Date{Time: *retDate}
	}
	t.ReturnTime = retTime
	owner.ID = t.UserID
	t.Owner = &owner
	return t, nil
}

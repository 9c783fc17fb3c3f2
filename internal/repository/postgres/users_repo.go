package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/models"
)

type usersRepo struct{ db db }

const userCols = `id::text, name, email, password_hash, phone, address, created_at, updated_at`

func (r *usersRepo) Create(ctx context.Context, u models.User) (models.User, error) {
	const q = `
		INSERT INTO users (id, name, email, password_hash, phone, address)
		VALUES (@id, @name, @email, @password_hash, @phone, @address)
		RETURNING ` + userCols

	args := pgx.NamedArgs{
		"id":            uuid.NewString(),
		"name":          u.Name,
		"email":         u.Email,
		"password_hash": u.PasswordHash,
		"phone":         u.Phone,
		"address":       u.Address,
	}

	created, err := scanUser(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return models.User{}, fmt.Errorf("postgres.Users.Create: %w", err)
	}
	return created, nil
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (models.User, error) {
	// Text comparison so a malformed client-supplied ID reads as "no such
	// row" instead of a uuid cast error.
	const q = `SELECT ` + userCols + ` FROM users WHERE id::text = @id`

	u, err := scanUser(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return models.User{}, fmt.Errorf("postgres.Users.GetByID: %w", err)
	}
	return u, nil
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	const q = `SELECT ` + userCols + ` FROM users WHERE email = @email`

	u, err := scanUser(r.db.QueryRow(ctx, q, pgx.NamedArgs{"email": email}))
	if err != nil {
		return models.User{}, fmt.Errorf("postgres.Users.GetByEmail: %w", err)
	}
	return u, nil
}

func (r *usersRepo) EmailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM users WHERE email = @email AND id::text <> @exclude_id)`

	var taken bool
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"email": email, "exclude_id": excludeID}).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("postgres.Users.EmailTaken: %w", err)
	}
	return taken, nil
}

func (r *usersRepo) List(ctx context.Context, p models.PageParams) ([]models.PublicProfile, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres.Users.List: count: %w", err)
	}

	const q = `
		SELECT id::text, name, email, phone, created_at
		FROM users
		ORDER BY created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.PerPage, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("postgres.Users.List: %w", err)
	}
	defer rows.Close()

	profiles := []models.PublicProfile{}
	for rows.Next() {
		var pr models.PublicProfile
		if err := rows.Scan(&pr.ID, &pr.Name, &pr.Email, &pr.Phone, &pr.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("postgres.Users.List: scan: %w", err)
		}
		profiles = append(profiles, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres.Users.List: rows: %w", err)
	}
	return profiles, total, nil
}

func (r *usersRepo) Update(ctx context.Context, u models.User) (models.User, error) {
	const q = `
		UPDATE users
		SET name = @name,
		    email = @email,
		    password_hash = @password_hash,
		    phone = @phone,
		    address = @address,
		    updated_at = now()
		WHERE id = @id
		RETURNING ` + userCols

	args := pgx.NamedArgs{
		"id":            u.ID,
		"name":          u.Name,
		"email":         u.Email,
		"password_hash": u.PasswordHash,
		"phone":         u.Phone,
		"address":       u.Address,
	}

	updated, err := scanUser(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return models.User{}, fmt.Errorf("postgres.Users.Update: %w", err)
	}
	return updated, nil
}

func (r *usersRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id::text = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("postgres.Users.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("postgres.Users.Delete: %w", models.ErrNotFound)
	}
	return nil
}

func scanUser(s scanner) (models.User, error) {
	var u models.User
	err := s.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.Address, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, models.ErrNotFound
		}
		return models.User{}, err
	}
	return u, nil
}

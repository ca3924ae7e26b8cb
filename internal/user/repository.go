package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/roomly/booking-backend/internal/db"
)

// Repository defines methods for accessing user data from storage.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, u *User) error
}

type pgxUserRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxUserRepository{
		pool: pool,
	}
}

func (r *pgxUserRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	const query = `
		SELECT id, first_name, last_name, email, password_hash, role, created_at
		FROM public.users
		WHERE email = $1
	`

	row := r.pool.QueryRow(ctx, query, email)

	var u User
	if err := row.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		if db.IsNotProvisioned(err) {
			return nil, db.ErrStoreNotProvisioned
		}
		return nil, fmt.Errorf("GetByEmail query failed: %w", err)
	}

	return &u, nil
}

func (r *pgxUserRepository) GetByID(ctx context.Context, id string) (*User, error) {
	const query = `
		SELECT id, first_name, last_name, email, password_hash, role, created_at
		FROM public.users
		WHERE id = $1
	`

	row := r.pool.QueryRow(ctx, query, id)

	var u User
	if err := row.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		if db.IsNotProvisioned(err) {
			return nil, db.ErrStoreNotProvisioned
		}
		return nil, fmt.Errorf("GetByID query failed: %w", err)
	}

	return &u, nil
}

func (r *pgxUserRepository) Create(ctx context.Context, u *User) error {
	const query = `
		INSERT INTO public.users (first_name, last_name, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	if err := r.pool.QueryRow(
		ctx,
		query,
		u.FirstName,
		u.LastName,
		u.Email,
		u.PasswordHash,
		u.Role,
	).Scan(&u.ID, &u.CreatedAt); err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrEmailAlreadyUsed
		}
		if db.IsNotProvisioned(err) {
			return db.ErrStoreNotProvisioned
		}
		return fmt.Errorf("Create user failed: %w", err)
	}

	return nil
}

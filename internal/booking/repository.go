package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/roomly/booking-backend/internal/db"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, opts ListOptions) ([]*Booking, error)
	Update(ctx context.Context, b *Booking) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	b.ID = uuid.NewString()

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.meetings").
		Columns(
			"id", "title", "description", "start_at", "end_at", "start_time", "end_time",
			"participants", "created_by", "status",
		).
		Values(
			b.ID, b.Title, b.Description, b.StartAt, b.EndAt, b.StartTime, b.EndTime,
			b.Participants, b.CreatedBy, b.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&b.CreatedAt, &b.UpdatedAt); err != nil {
		if db.IsNotProvisioned(err) {
			return db.ErrStoreNotProvisioned
		}
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(listColumns...).
		From("public.meetings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		if db.IsNotProvisioned(err) {
			return nil, db.ErrStoreNotProvisioned
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) List(ctx context.Context, opts ListOptions) ([]*Booking, error) {
	builder, err := BuildListQuery(opts)
	if err != nil {
		// Invalid filter input never reaches the database.
		return nil, err
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		if db.IsNotProvisioned(err) {
			return nil, db.ErrStoreNotProvisioned
		}
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}

	return bookings, nil
}

func (r *pgxRepository) Update(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.meetings").
		Set("title", b.Title).
		Set("description", b.Description).
		Set("start_at", b.StartAt).
		Set("end_at", b.EndAt).
		Set("start_time", b.StartTime).
		Set("end_time", b.EndTime).
		Set("participants", b.Participants).
		Set("status", b.Status).
		Set("last_edited_by_admin", b.LastEditedByAdmin).
		Set("last_modified_by_admin", b.LastModifiedByAdmin).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		if db.IsNotProvisioned(err) {
			return db.ErrStoreNotProvisioned
		}
		return fmt.Errorf("update booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	if err := row.Scan(
		&b.ID, &b.Title, &b.Description, &b.StartAt, &b.EndAt, &b.StartTime, &b.EndTime,
		&b.Participants, &b.CreatedBy, &b.Status, &b.CreatedAt, &b.UpdatedAt,
		&b.LastEditedByAdmin, &b.LastModifiedByAdmin,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

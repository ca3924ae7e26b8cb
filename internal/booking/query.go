package booking

import (
	"time"

	"github.com/Masterminds/squirrel"
)

// Sort options recognized by BuildListQuery. The date variants order by the
// meeting date with the wall-clock start time as tiebreaker; the createdAt
// variants order solely by creation time.
const (
	SortDateAsc       = "date_asc"
	SortDateDesc      = "date_desc"
	SortCreatedAtAsc  = "createdAt_asc"
	SortCreatedAtDesc = "createdAt_desc"
)

// Status filter value matching every status.
const StatusAll = "all"

// ListOptions configures the list query shared by the per-user and admin
// views. An empty OwnerID leaves the result unrestricted (admin view).
type ListOptions struct {
	OwnerID  string
	Status   string // "", "all", "scheduled" or "canceled"
	DateFrom string // inclusive lower bound on the meeting date, 2006-01-02
	DateTo   string // inclusive upper bound on the meeting date, 2006-01-02
	SortBy   string // defaults to date_asc
}

var listColumns = []string{
	"id", "title", "description", "start_at", "end_at", "start_time", "end_time",
	"participants", "created_by", "status", "created_at", "updated_at",
	"last_edited_by_admin", "last_modified_by_admin",
}

// BuildListQuery turns ListOptions into a fully-formed query description.
// It validates every option up front and never touches storage, so the
// filter/sort contract is testable without a live database. An unparseable
// date bound or unknown status/sort value fails with ErrInvalidFilter
// before any I/O happens.
func BuildListQuery(opts ListOptions) (squirrel.SelectBuilder, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(listColumns...).From("public.meetings")

	if opts.OwnerID != "" {
		query = query.Where(squirrel.Eq{"created_by": opts.OwnerID})
	}

	switch opts.Status {
	case "", StatusAll:
		// unrestricted
	case string(StatusScheduled), string(StatusCanceled):
		query = query.Where(squirrel.Eq{"status": opts.Status})
	default:
		return squirrel.SelectBuilder{}, ErrInvalidFilter
	}

	if opts.DateFrom != "" {
		from, err := time.ParseInLocation(dateLayout, opts.DateFrom, time.UTC)
		if err != nil {
			return squirrel.SelectBuilder{}, ErrInvalidFilter
		}
		query = query.Where(squirrel.GtOrEq{"start_at": from})
	}
	if opts.DateTo != "" {
		to, err := time.ParseInLocation(dateLayout, opts.DateTo, time.UTC)
		if err != nil {
			return squirrel.SelectBuilder{}, ErrInvalidFilter
		}
		// Inclusive upper bound covers the whole day.
		query = query.Where(squirrel.LtOrEq{"start_at": to.Add(24*time.Hour - time.Nanosecond)})
	}

	// A DateFrom later than DateTo is not rejected; the query simply
	// returns zero rows.

	switch opts.SortBy {
	case "", SortDateAsc:
		query = query.OrderBy("start_at ASC", "start_time ASC")
	case SortDateDesc:
		query = query.OrderBy("start_at DESC", "start_time DESC")
	case SortCreatedAtAsc:
		query = query.OrderBy("created_at ASC")
	case SortCreatedAtDesc:
		query = query.OrderBy("created_at DESC")
	default:
		return squirrel.SelectBuilder{}, ErrInvalidFilter
	}

	return query, nil
}

package booking

import (
	"context"
	"strings"
	"time"
)

// CreateRequest carries the booking form fields. Date is 2006-01-02,
// StartTime/EndTime are HH:MM wall-clock strings and Participants is the
// raw comma-separated email list as entered.
type CreateRequest struct {
	Title        string
	Description  string
	Date         string
	StartTime    string
	EndTime      string
	Participants string
}

// UpdateRequest carries the full edit form; edits replace the editable
// fields while status and ownership are preserved.
type UpdateRequest struct {
	Title        string
	Description  string
	Date         string
	StartTime    string
	EndTime      string
	Participants string
}

type Service interface {
	Create(ctx context.Context, actor Actor, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, actor Actor, id string) (*Booking, error)
	List(ctx context.Context, opts ListOptions) ([]*Booking, error)
	Calendar(ctx context.Context, actor Actor, dateFrom, dateTo string) ([]*Booking, error)
	Update(ctx context.Context, actor Actor, id string, req UpdateRequest) (*Booking, error)
	Cancel(ctx context.Context, actor Actor, id string) error
}

// Config tunes service behavior.
type Config struct {
	// RecheckPastOnEdit re-runs the past-date check on edits. Off by
	// default: historically only creation rejected past slots, and some
	// deployments rely on being able to correct old records.
	RecheckPastOnEdit bool

	// Now is the clock used for past-date checks. Defaults to time.Now.
	Now func() time.Time
}

type service struct {
	repo Repository
	cfg  Config
}

func NewService(repo Repository, cfg Config) Service {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &service{
		repo: repo,
		cfg:  cfg,
	}
}

func (s *service) Create(ctx context.Context, actor Actor, req CreateRequest) (*Booking, error) {
	if actor.ID == "" {
		return nil, ErrPermissionDenied
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTitleRequired
	}

	sched, err := ResolveSchedule(req.Date, req.StartTime, req.EndTime, s.cfg.Now().UTC(), true)
	if err != nil {
		return nil, err
	}

	b := &Booking{
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		StartAt:      sched.StartAt,
		EndAt:        sched.EndAt,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Participants: ParseParticipants(req.Participants),
		CreatedBy:    actor.ID,
		Status:       StatusScheduled,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) GetByID(ctx context.Context, actor Actor, id string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanView(b, actor) {
		return nil, ErrPermissionDenied
	}

	return b, nil
}

func (s *service) List(ctx context.Context, opts ListOptions) ([]*Booking, error) {
	return s.repo.List(ctx, opts)
}

func (s *service) Calendar(ctx context.Context, actor Actor, dateFrom, dateTo string) ([]*Booking, error) {
	if actor.ID == "" {
		return nil, ErrPermissionDenied
	}

	return s.repo.List(ctx, ListOptions{
		OwnerID:  actor.ID,
		Status:   string(StatusScheduled),
		DateFrom: dateFrom,
		DateTo:   dateTo,
		SortBy:   SortDateAsc,
	})
}

func (s *service) Update(ctx context.Context, actor Actor, id string, req UpdateRequest) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanMutate(b, actor) {
		return nil, ErrPermissionDenied
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTitleRequired
	}

	sched, err := ResolveSchedule(req.Date, req.StartTime, req.EndTime, s.cfg.Now().UTC(), s.cfg.RecheckPastOnEdit)
	if err != nil {
		return nil, err
	}

	// Status and ownership survive edits untouched.
	b.Title = strings.TrimSpace(req.Title)
	b.Description = req.Description
	b.StartAt = sched.StartAt
	b.EndAt = sched.EndAt
	b.StartTime = req.StartTime
	b.EndTime = req.EndTime
	b.Participants = ParseParticipants(req.Participants)

	if actor.IsAdmin() && actor.ID != b.CreatedBy {
		admin := actor.ID
		b.LastEditedByAdmin = &admin
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) Cancel(ctx context.Context, actor Actor, id string) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !CanMutate(b, actor) {
		return ErrPermissionDenied
	}

	// One-way transition: canceled bookings stay canceled.
	if b.Status == StatusCanceled {
		return ErrAlreadyCanceled
	}

	b.Status = StatusCanceled
	if actor.IsAdmin() && actor.ID != b.CreatedBy {
		admin := actor.ID
		b.LastModifiedByAdmin = &admin
	}

	return s.repo.Update(ctx, b)
}

// ParseParticipants splits a comma-separated email list, trimming
// whitespace and dropping empty entries.
func ParseParticipants(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

package service_test

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/planner-app/planner/internal/domain"
	"github.com/planner-app/planner/internal/repo"
	"github.com/planner-app/planner/internal/service"
)

// Hand-written test doubles. Each method is a function field; set only the
// ones your test needs. Calling an unset field panics, which flags an
// unexpected repo call.

type mockTripRepo struct {
	createWithParticipants func(ctx context.Context, trip domain.Trip, ps []domain.Participant) (domain.Trip, []domain.Participant, error)
	getByID                func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	update                 func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	confirm                func(ctx context.Context, id uuid.UUID) (domain.Trip, bool, error)
}

func (m *mockTripRepo) CreateWithParticipants(ctx context.Context, trip domain.Trip, ps []domain.Participant) (domain.Trip, []domain.Participant, error) {
	return m.createWithParticipants(ctx, trip, ps)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Confirm(ctx context.Context, id uuid.UUID) (domain.Trip, bool, error) {
	return m.confirm(ctx, id)
}

type mockParticipantRepo struct {
	create       func(ctx context.Context, p domain.Participant) (domain.Participant, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Participant, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
	listInvitees func(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
	confirm      func(ctx context.Context, id uuid.UUID) (domain.Participant, error)
}

func (m *mockParticipantRepo) Create(ctx context.Context, p domain.Participant) (domain.Participant, error) {
	return m.create(ctx, p)
}
func (m *mockParticipantRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	return m.getByID(ctx, id)
}
func (m *mockParticipantRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockParticipantRepo) ListInvitees(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	return m.listInvitees(ctx, tripID)
}
func (m *mockParticipantRepo) Confirm(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	return m.confirm(ctx, id)
}

type mockActivityRepo struct {
	create       func(ctx context.Context, a domain.Activity) (domain.Activity, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
}

func (m *mockActivityRepo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	return m.create(ctx, a)
}
func (m *mockActivityRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	return m.listByTripID(ctx, tripID)
}

type mockLinkRepo struct {
	create            func(ctx context.Context, l domain.Link) (domain.Link, error)
	listByTripIDPaged func(ctx context.Context, tripID uuid.UUID, p domain.PaginationParams) ([]domain.Link, int64, error)
}

func (m *mockLinkRepo) Create(ctx context.Context, l domain.Link) (domain.Link, error) {
	return m.create(ctx, l)
}
func (m *mockLinkRepo) ListByTripIDPaged(ctx context.Context, tripID uuid.UUID, p domain.PaginationParams) ([]domain.Link, int64, error) {
	return m.listByTripIDPaged(ctx, tripID, p)
}

// compile-time checks: the mocks must satisfy the interfaces they stand in for.
var (
	_ repo.TripRepo        = (*mockTripRepo)(nil)
	_ repo.ParticipantRepo = (*mockParticipantRepo)(nil)
	_ repo.ActivityRepo    = (*mockActivityRepo)(nil)
	_ repo.LinkRepo        = (*mockLinkRepo)(nil)
	_ service.Notifier     = (*recordingNotifier)(nil)
)

// recordingNotifier captures every notification it is asked to send.
// It is safe for the concurrent fan-out in TripService.Confirm.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []domain.Notification
	// fail, when set, decides per notification whether Send returns an error.
	fail func(n domain.Notification) error
}

func (r *recordingNotifier) Send(_ context.Context, n domain.Notification) error {
	r.mu.Lock()
	r.sent = append(r.sent, n)
	r.mu.Unlock()
	if r.fail != nil {
		return r.fail(n)
	}
	return nil
}

func (r *recordingNotifier) recipients() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.sent))
	for _, n := range r.sent {
		out = append(out, n.To.Email)
	}
	return out
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var testURLs = domain.URLs{APIBaseURL: "http://api.test", WebBaseURL: "http://web.test"}

package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/planner-app/planner/internal/domain"
	"github.com/planner-app/planner/internal/handler"
	"github.com/planner-app/planner/internal/handler/gen"
	"github.com/planner-app/planner/internal/service"
)

// Test doubles for the servicer interfaces. Set only the method fields your
// test needs.

type mockTripServicer struct {
	create  func(ctx context.Context, in service.CreateTripInput) (domain.Trip, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	update  func(ctx context.Context, in service.UpdateTripInput) (domain.Trip, error)
	confirm func(ctx context.Context, id uuid.UUID) (service.ConfirmResult, error)
}

func (m *mockTripServicer) Create(ctx context.Context, in service.CreateTripInput) (domain.Trip, error) {
	return m.create(ctx, in)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) Update(ctx context.Context, in service.UpdateTripInput) (domain.Trip, error) {
	return m.update(ctx, in)
}
func (m *mockTripServicer) Confirm(ctx context.Context, id uuid.UUID) (service.ConfirmResult, error) {
	return m.confirm(ctx, id)
}

type mockParticipantServicer struct {
	invite       func(ctx context.Context, tripID uuid.UUID, email string) (domain.Participant, error)
	confirm      func(ctx context.Context, id uuid.UUID) (domain.Participant, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Participant, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
}

func (m *mockParticipantServicer) Invite(ctx context.Context, tripID uuid.UUID, email string) (domain.Participant, error) {
	return m.invite(ctx, tripID, email)
}
func (m *mockParticipantServicer) Confirm(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	return m.confirm(ctx, id)
}
func (m *mockParticipantServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	return m.getByID(ctx, id)
}
func (m *mockParticipantServicer) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	return m.listByTripID(ctx, tripID)
}

type mockActivityServicer struct {
	create    func(ctx context.Context, in service.CreateActivityInput) (domain.Activity, error)
	itinerary func(ctx context.Context, tripID uuid.UUID) ([]domain.DayBucket, error)
	calendar  func(ctx context.Context, tripID uuid.UUID) ([]byte, error)
}

func (m *mockActivityServicer) Create(ctx context.Context, in service.CreateActivityInput) (domain.Activity, error) {
	return m.create(ctx, in)
}
func (m *mockActivityServicer) Itinerary(ctx context.Context, tripID uuid.UUID) ([]domain.DayBucket, error) {
	return m.itinerary(ctx, tripID)
}
func (m *mockActivityServicer) Calendar(ctx context.Context, tripID uuid.UUID) ([]byte, error) {
	return m.calendar(ctx, tripID)
}

type mockLinkServicer struct {
	create       func(ctx context.Context, in service.CreateLinkInput) (domain.Link, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID, p domain.PaginationParams) (domain.Page[domain.Link], error)
}

func (m *mockLinkServicer) Create(ctx context.Context, in service.CreateLinkInput) (domain.Link, error) {
	return m.create(ctx, in)
}
func (m *mockLinkServicer) ListByTripID(ctx context.Context, tripID uuid.UUID, p domain.PaginationParams) (domain.Page[domain.Link], error) {
	return m.listByTripID(ctx, tripID, p)
}

// compile-time checks: the mocks must satisfy the handler interfaces.
var (
	_ handler.TripServicer        = (*mockTripServicer)(nil)
	_ handler.ParticipantServicer = (*mockParticipantServicer)(nil)
	_ handler.ActivityServicer    = (*mockActivityServicer)(nil)
	_ handler.LinkServicer        = (*mockLinkServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

var testURLs = domain.URLs{APIBaseURL: "http://api.test", WebBaseURL: "http://web.test"}

// services bundles the mocks; nil fields become empty mocks.
type services struct {
	trips        *mockTripServicer
	participants *mockParticipantServicer
	activities   *mockActivityServicer
	links        *mockLinkServicer
}

// newHTTPHandler wires a Server with the given mocks into the generated chi
// router, exactly as main.go does in production.
func newHTTPHandler(s services) http.Handler {
	if s.trips == nil {
		s.trips = &mockTripServicer{}
	}
	if s.participants == nil {
		s.participants = &mockParticipantServicer{}
	}
	if s.activities == nil {
		s.activities = &mockActivityServicer{}
	}
	if s.links == nil {
		s.links = &mockLinkServicer{}
	}
	srv := handler.NewServer(s.trips, s.participants, s.activities, s.links, testURLs)
	return handler.Routes(srv, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// do sends a request through h and returns the recorder.
func do(h http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) gen.ErrorDetail {
	t.Helper()
	var resp gen.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error
}

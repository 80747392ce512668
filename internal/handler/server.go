// Package handler implements the HTTP handlers for the trip planner API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into domain-specific files (health.go, trip.go, etc.) but
// all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/planner-app/planner/internal/domain"
	"github.com/planner-app/planner/internal/handler/gen"
	"github.com/planner-app/planner/internal/service"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, in service.CreateTripInput) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	Update(ctx context.Context, in service.UpdateTripInput) (domain.Trip, error)
	Confirm(ctx context.Context, id uuid.UUID) (service.ConfirmResult, error)
}

// ParticipantServicer defines the operations the participant handlers depend on.
type ParticipantServicer interface {
	Invite(ctx context.Context, tripID uuid.UUID, email string) (domain.Participant, error)
	Confirm(ctx context.Context, id uuid.UUID) (domain.Participant, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
}

// ActivityServicer defines the operations the activity handlers depend on.
type ActivityServicer interface {
	Create(ctx context.Context, in service.CreateActivityInput) (domain.Activity, error)
	Itinerary(ctx context.Context, tripID uuid.UUID) ([]domain.DayBucket, error)
	Calendar(ctx context.Context, tripID uuid.UUID) ([]byte, error)
}

// LinkServicer defines the operations the link handlers depend on.
type LinkServicer interface {
	Create(ctx context.Context, in service.CreateLinkInput) (domain.Link, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID, p domain.PaginationParams) (domain.Page[domain.Link], error)
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via Routes.
type Server struct {
	trips        TripServicer
	participants ParticipantServicer
	activities   ActivityServicer
	links        LinkServicer
	urls         domain.URLs
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, participants ParticipantServicer, activities ActivityServicer, links LinkServicer, urls domain.URLs) *Server {
	return &Server{
		trips:        trips,
		participants: participants,
		activities:   activities,
		links:        links,
		urls:         urls,
	}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil, domain.URLs{})
}

// Routes adapts srv to the generated chi router. Malformed parameters and
// bodies become 400 responses and unexpected errors become logged 500s, all
// rendered as gen.ErrorResponse.
func Routes(srv *Server, log *slog.Logger) http.Handler {
	strict := gen.NewStrictHandlerWithOptions(srv, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  badRequest,
		ResponseErrorHandlerFunc: internalError(log),
	})
	return gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		ErrorHandlerFunc: badRequest,
	})
}

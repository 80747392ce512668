package handler

import (
	"context"
	"errors"

	"github.com/planner-app/planner/internal/domain"
	"github.com/planner-app/planner/internal/handler/gen"
	"github.com/planner-app/planner/internal/service"
)

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(ctx context.Context, req gen.CreateTripRequestObject) (gen.CreateTripResponseObject, error) {
	if req.Body == nil {
		return gen.CreateTrip422JSONResponse(requestBody("request body is required")), nil
	}

	created, err := s.trips.Create(ctx, service.CreateTripInput{
		Destination:    req.Body.Destination,
		StartsAt:       req.Body.StartsAt,
		EndsAt:         req.Body.EndsAt,
		OwnerName:      req.Body.OwnerName,
		OwnerEmail:     req.Body.OwnerEmail,
		EmailsToInvite: req.Body.EmailsToInvite,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateTrip422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.CreateTrip201JSONResponse{TripId: created.ID}, nil
}

// GetTrip handles GET /trips/{tripId}.
func (s *Server) GetTrip(ctx context.Context, req gen.GetTripRequestObject) (gen.GetTripResponseObject, error) {
	trip, err := s.trips.GetByID(ctx, req.TripId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetTrip404JSONResponse(notFoundBody("trip not found")), nil
		}
		return nil, err
	}

	return gen.GetTrip200JSONResponse(tripToResponse(trip)), nil
}

// UpdateTrip handles PUT /trips/{tripId}.
func (s *Server) UpdateTrip(ctx context.Context, req gen.UpdateTripRequestObject) (gen.UpdateTripResponseObject, error) {
	if req.Body == nil {
		return gen.UpdateTrip422JSONResponse(requestBody("request body is required")), nil
	}

	updated, err := s.trips.Update(ctx, service.UpdateTripInput{
		ID:          req.TripId,
		Destination: req.Body.Destination,
		StartsAt:    req.Body.StartsAt,
		EndsAt:      req.Body.EndsAt,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.UpdateTrip404JSONResponse(notFoundBody("trip not found")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.UpdateTrip422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.UpdateTrip200JSONResponse{TripId: updated.ID}, nil
}

// ConfirmTrip handles GET /trips/{tripId}/confirm. It is reached from the
// link in the owner's email, so success always redirects to the web app,
// whether or not this request performed the confirmation.
func (s *Server) ConfirmTrip(ctx context.Context, req gen.ConfirmTripRequestObject) (gen.ConfirmTripResponseObject, error) {
	if _, err := s.trips.Confirm(ctx, req.TripId); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.ConfirmTrip404JSONResponse(notFoundBody("trip not found")), nil
		}
		return nil, err
	}

	return gen.ConfirmTrip302Response{
		Headers: gen.ConfirmTrip302ResponseHeaders{Location: s.urls.TripPage(req.TripId)},
	}, nil
}

// --- mapping helpers --------------------------------------------------------

// tripToResponse converts a domain.Trip into the generated gen.Trip type.
func tripToResponse(t domain.Trip) gen.Trip {
	return gen.Trip{
		Id:          t.ID,
		Destination: t.Destination,
		StartsAt:    t.StartsAt,
		EndsAt:      t.EndsAt,
		IsConfirmed: t.IsConfirmed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

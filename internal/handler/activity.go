package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/planner-app/planner/internal/domain"
	"github.com/planner-app/planner/internal/handler/gen"
	"github.com/planner-app/planner/internal/service"
)

// CreateActivity handles POST /trips/{tripId}/activities.
func (s *Server) CreateActivity(ctx context.Context, req gen.CreateActivityRequestObject) (gen.CreateActivityResponseObject, error) {
	if req.Body == nil {
		return gen.CreateActivity422JSONResponse(requestBody("request body is required")), nil
	}

	a, err := s.activities.Create(ctx, service.CreateActivityInput{
		TripID:   req.TripId,
		Title:    req.Body.Title,
		OccursAt: req.Body.OccursAt,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.CreateActivity404JSONResponse(notFoundBody("trip not found")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateActivity422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.CreateActivity201JSONResponse{ActivityId: a.ID}, nil
}

// GetItinerary handles GET /trips/{tripId}/activities.
// Every calendar day of the trip is listed, including days with no activities.
func (s *Server) GetItinerary(ctx context.Context, req gen.GetItineraryRequestObject) (gen.GetItineraryResponseObject, error) {
	days, err := s.activities.Itinerary(ctx, req.TripId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetItinerary404JSONResponse(notFoundBody("trip not found")), nil
		}
		return nil, err
	}

	out := make([]gen.ItineraryDay, len(days))
	for i, d := range days {
		acts := make([]gen.Activity, len(d.Activities))
		for j, a := range d.Activities {
			acts[j] = gen.Activity{Id: a.ID, Title: a.Title, OccursAt: a.OccursAt}
		}
		out[i] = gen.ItineraryDay{Date: openapi_types.Date{Time: d.Date}, Activities: acts}
	}
	return gen.GetItinerary200JSONResponse{Activities: out}, nil
}

// GetTripCalendar handles GET /trips/{tripId}/calendar.ics.
func (s *Server) GetTripCalendar(ctx context.Context, req gen.GetTripCalendarRequestObject) (gen.GetTripCalendarResponseObject, error) {
	doc, err := s.activities.Calendar(ctx, req.TripId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetTripCalendar404JSONResponse(notFoundBody("trip not found")), nil
		}
		return nil, err
	}

	return gen.GetTripCalendar200TextcalendarResponse{
		Body:          bytes.NewReader(doc),
		ContentLength: int64(len(doc)),
		Headers: gen.GetTripCalendar200ResponseHeaders{
			ContentDisposition: fmt.Sprintf(`attachment; filename="trip-%s.ics"`, req.TripId),
		},
	}, nil
}

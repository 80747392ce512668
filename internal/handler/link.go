package handler

import (
	"context"
	"errors"

	"github.com/planner-app/planner/internal/domain"
	"github.com/planner-app/planner/internal/handler/gen"
	"github.com/planner-app/planner/internal/service"
)

// CreateLink handles POST /trips/{tripId}/links.
func (s *Server) CreateLink(ctx context.Context, req gen.CreateLinkRequestObject) (gen.CreateLinkResponseObject, error) {
	if req.Body == nil {
		return gen.CreateLink422JSONResponse(requestBody("request body is required")), nil
	}

	l, err := s.links.Create(ctx, service.CreateLinkInput{
		TripID: req.TripId,
		Title:  req.Body.Title,
		URL:    req.Body.Url,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.CreateLink404JSONResponse(notFoundBody("trip not found")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateLink422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.CreateLink201JSONResponse{LinkId: l.ID}, nil
}

// ListLinks handles GET /trips/{tripId}/links.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListLinks(ctx context.Context, req gen.ListLinksRequestObject) (gen.ListLinksResponseObject, error) {
	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	page, err := s.links.ListByTripID(ctx, req.TripId, params)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.ListLinks404JSONResponse(notFoundBody("trip not found")), nil
		}
		return nil, err
	}

	data := make([]gen.Link, len(page.Items))
	for i, l := range page.Items {
		data[i] = gen.Link{Id: l.ID, Title: l.Title, Url: l.URL, CreatedAt: l.CreatedAt}
	}
	return gen.ListLinks200JSONResponse{
		Data: data,
		Pagination: gen.Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(page.Total),
		},
	}, nil
}

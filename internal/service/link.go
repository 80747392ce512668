package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/planner-app/planner/internal/domain"
	"github.com/planner-app/planner/internal/repo"
)

// LinkService manages the reference links shared on a trip.
type LinkService struct {
	trips repo.TripRepo
	links repo.LinkRepo
}

// NewLinkService constructs a LinkService backed by the provided repos.
func NewLinkService(trips repo.TripRepo, links repo.LinkRepo) *LinkService {
	return &LinkService{trips: trips, links: links}
}

// CreateLinkInput carries a new link.
type CreateLinkInput struct {
	TripID uuid.UUID
	Title  string
	URL    string
}

// Create validates and persists a link.
func (s *LinkService) Create(ctx context.Context, in CreateLinkInput) (domain.Link, error) {
	if _, err := s.trips.GetByID(ctx, in.TripID); err != nil {
		return domain.Link{}, tripNotFound("service.LinkService.Create", err)
	}
	if err := validateTitle("title", in.Title, domain.MinLinkTitleLength); err != nil {
		return domain.Link{}, err
	}
	url := strings.TrimSpace(in.URL)
	if err := validateLinkURL(url); err != nil {
		return domain.Link{}, err
	}

	l, err := s.links.Create(ctx, domain.Link{TripID: in.TripID, Title: strings.TrimSpace(in.Title), URL: url})
	if err != nil {
		return domain.Link{}, fmt.Errorf("service.LinkService.Create: %w", err)
	}
	return l, nil
}

// ListByTripID returns one page of a trip's links. Items is never nil.
func (s *LinkService) ListByTripID(ctx context.Context, tripID uuid.UUID, p domain.PaginationParams) (domain.Page[domain.Link], error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return domain.Page[domain.Link]{}, tripNotFound("service.LinkService.ListByTripID", err)
	}
	links, total, err := s.links.ListByTripIDPaged(ctx, tripID, p)
	if err != nil {
		return domain.Page[domain.Link]{}, fmt.Errorf("service.LinkService.ListByTripID: %w", err)
	}
	if links == nil {
		links = []domain.Link{}
	}
	return domain.Page[domain.Link]{Items: links, Total: total, Params: p}, nil
}

package handler

import (
	"context"
	"errors"

	"github.com/planner-app/planner/internal/domain"
	"github.com/planner-app/planner/internal/handler/gen"
)

// InviteParticipant handles POST /trips/{tripId}/invites.
func (s *Server) InviteParticipant(ctx context.Context, req gen.InviteParticipantRequestObject) (gen.InviteParticipantResponseObject, error) {
	if req.Body == nil {
		return gen.InviteParticipant422JSONResponse(requestBody("request body is required")), nil
	}

	p, err := s.participants.Invite(ctx, req.TripId, req.Body.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.InviteParticipant404JSONResponse(notFoundBody("trip not found")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.InviteParticipant422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.InviteParticipant201JSONResponse{ParticipantId: p.ID}, nil
}

// ListParticipants handles GET /trips/{tripId}/participants.
func (s *Server) ListParticipants(ctx context.Context, req gen.ListParticipantsRequestObject) (gen.ListParticipantsResponseObject, error) {
	ps, err := s.participants.ListByTripID(ctx, req.TripId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.ListParticipants404JSONResponse(notFoundBody("trip not found")), nil
		}
		return nil, err
	}

	out := make([]gen.Participant, len(ps))
	for i, p := range ps {
		out[i] = participantToResponse(p)
	}
	return gen.ListParticipants200JSONResponse{Participants: out}, nil
}

// GetParticipant handles GET /participants/{participantId}.
func (s *Server) GetParticipant(ctx context.Context, req gen.GetParticipantRequestObject) (gen.GetParticipantResponseObject, error) {
	p, err := s.participants.GetByID(ctx, req.ParticipantId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetParticipant404JSONResponse(notFoundBody("participant not found")), nil
		}
		return nil, err
	}

	return gen.GetParticipant200JSONResponse(participantToResponse(p)), nil
}

// ConfirmParticipant handles GET /participants/{participantId}/confirm and
// redirects to the participant's trip page.
func (s *Server) ConfirmParticipant(ctx context.Context, req gen.ConfirmParticipantRequestObject) (gen.ConfirmParticipantResponseObject, error) {
	p, err := s.participants.Confirm(ctx, req.ParticipantId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.ConfirmParticipant404JSONResponse(notFoundBody("participant not found")), nil
		}
		return nil, err
	}

	return gen.ConfirmParticipant302Response{
		Headers: gen.ConfirmParticipant302ResponseHeaders{Location: s.urls.TripPage(p.TripID)},
	}, nil
}

func participantToResponse(p domain.Participant) gen.Participant {
	return gen.Participant{
		Id:          p.ID,
		Name:        p.Name,
		Email:       p.Email,
		IsConfirmed: p.IsConfirmed,
	}
}

package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/mentormatch-backend/api/middleware"
	"github.com/angelmondragon/mentormatch-backend/api/responses"
	"github.com/angelmondragon/mentormatch-backend/api/validators"
	"github.com/angelmondragon/mentormatch-backend/internal/matching"
	pkgerrors "github.com/angelmondragon/mentormatch-backend/pkg/errors"
	"github.com/angelmondragon/mentormatch-backend/pkg/logger"
)

type createMatchRequestBody struct {
	MentorID int64  `json:"mentorId" validate:"required"`
	MenteeID int64  `json:"menteeId" validate:"required"`
	Message  string `json:"message" validate:"max=1000"`
}

type transitionFunc func(ctx context.Context, actor matching.Actor, id int64) (*matching.MatchRequestDTO, error)

func actorFrom(r *http.Request) matching.Actor {
	return matching.Actor{
		UserID: middleware.UserIDFromContext(r.Context()),
		Role:   middleware.RoleFromContext(r.Context()),
	}
}

// CreateMatchRequest lets a mentee open a pending request to a mentor.
// @Summary      Send a match request
// @Tags         match-requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key header string false "replay key"
// @Param        body body createMatchRequestBody true "request"
// @Success      200 {object} types.SuccessEnvelope{data=matching.MatchRequestDTO}
// @Failure      400 {object} types.ErrorEnvelope
// @Failure      401 {object} types.ErrorEnvelope
// @Failure      409 {object} types.ErrorEnvelope
// @Router       /api/match-requests [post]
func CreateMatchRequest(svc matching.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "match request service unavailable"))
			return
		}

		var body createMatchRequestBody
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.Create(r.Context(), matching.CreateInput{
			Actor:    actorFrom(r),
			MentorID: body.MentorID,
			MenteeID: body.MenteeID,
			Message:  body.Message,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, created)
	}
}

// ListIncomingMatchRequests returns every request addressed to the calling mentor.
// @Summary      Incoming match requests
// @Tags         match-requests
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} types.SuccessEnvelope{data=[]matching.MatchRequestDTO}
// @Failure      401 {object} types.ErrorEnvelope
// @Router       /api/match-requests/incoming [get]
func ListIncomingMatchRequests(svc matching.Service, logg *logger.Logger) http.HandlerFunc {
	return listMatchRequests(svc, logg, func(s matching.Service) func(context.Context, matching.Actor) ([]matching.MatchRequestDTO, error) {
		return s.ListIncoming
	})
}

// ListOutgoingMatchRequests returns every request sent by the calling mentee.
// @Summary      Outgoing match requests
// @Tags         match-requests
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} types.SuccessEnvelope{data=[]matching.MatchRequestDTO}
// @Failure      401 {object} types.ErrorEnvelope
// @Router       /api/match-requests/outgoing [get]
func ListOutgoingMatchRequests(svc matching.Service, logg *logger.Logger) http.HandlerFunc {
	return listMatchRequests(svc, logg, func(s matching.Service) func(context.Context, matching.Actor) ([]matching.MatchRequestDTO, error) {
		return s.ListOutgoing
	})
}

func listMatchRequests(svc matching.Service, logg *logger.Logger, pick func(matching.Service) func(context.Context, matching.Actor) ([]matching.MatchRequestDTO, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "match request service unavailable"))
			return
		}

		list, err := pick(svc)(r.Context(), actorFrom(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// AcceptMatchRequest moves a pending request to accepted.
// @Summary      Accept a match request
// @Tags         match-requests
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "match request id"
// @Success      200 {object} types.SuccessEnvelope{data=resultResponse}
// @Failure      400 {object} types.ErrorEnvelope
// @Failure      401 {object} types.ErrorEnvelope
// @Failure      404 {object} types.ErrorEnvelope
// @Router       /api/match-requests/{id}/accept [put]
func AcceptMatchRequest(svc matching.Service, logg *logger.Logger) http.HandlerFunc {
	return transitionMatchRequest(svc, logg, func(s matching.Service) transitionFunc { return s.Accept })
}

// RejectMatchRequest moves a pending request to rejected.
// @Summary      Reject a match request
// @Tags         match-requests
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "match request id"
// @Success      200 {object} types.SuccessEnvelope{data=resultResponse}
// @Failure      400 {object} types.ErrorEnvelope
// @Failure      401 {object} types.ErrorEnvelope
// @Failure      404 {object} types.ErrorEnvelope
// @Router       /api/match-requests/{id}/reject [put]
func RejectMatchRequest(svc matching.Service, logg *logger.Logger) http.HandlerFunc {
	return transitionMatchRequest(svc, logg, func(s matching.Service) transitionFunc { return s.Reject })
}

// CancelMatchRequest moves a pending request to cancelled.
// @Summary      Cancel a match request
// @Tags         match-requests
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "match request id"
// @Success      200 {object} types.SuccessEnvelope{data=resultResponse}
// @Failure      400 {object} types.ErrorEnvelope
// @Failure      401 {object} types.ErrorEnvelope
// @Failure      404 {object} types.ErrorEnvelope
// @Router       /api/match-requests/{id} [delete]
func CancelMatchRequest(svc matching.Service, logg *logger.Logger) http.HandlerFunc {
	return transitionMatchRequest(svc, logg, func(s matching.Service) transitionFunc { return s.Cancel })
}

func transitionMatchRequest(svc matching.Service, logg *logger.Logger, pick func(matching.Service) transitionFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "match request service unavailable"))
			return
		}

		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithMatchRequestID(ctx, id)
		}

		updated, err := pick(svc)(ctx, actorFrom(r), id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, resultBody(updated.Status.String()))
	}
}

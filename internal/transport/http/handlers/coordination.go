package http_handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/helpbridge/coord-service/internal/application/coordination"
	"github.com/helpbridge/coord-service/internal/domain"
	"github.com/helpbridge/coord-service/internal/logger"
	"github.com/helpbridge/coord-service/internal/transport/http/dto"
	"github.com/helpbridge/coord-service/internal/transport/http/middleware"
	"github.com/helpbridge/coord-service/internal/transport/http/response"
)

type CoordinationHandler struct {
	svc *coordination.Service
}

func NewCoordinationHandler(svc *coordination.Service) *CoordinationHandler {
	return &CoordinationHandler{svc: svc}
}

func (h *CoordinationHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}

	var req dto.CreateRequestRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	created, err := h.svc.CreateRequest(r.Context(), uid, coordination.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("request_id", created.ID).
		Str("user_id", uid).
		Msg("request_created")

	response.Created(w, dto.NewRequestView(created))
}

func (h *CoordinationHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.svc.ListActiveRequests(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.ListRequestsResponse{Requests: dto.NewRequestViews(reqs)})
}

func (h *CoordinationHandler) DeactivateRequest(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}
	role, _ := middleware.RoleFromContext(r.Context())

	id := chi.URLParam(r, "id")
	if err := h.svc.DeactivateRequest(r.Context(), uid, role, id); err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.MessageResponse{Message: "request deactivated"})
}

func (h *CoordinationHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Analytics(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.NewAnalyticsResponse(summary))
}

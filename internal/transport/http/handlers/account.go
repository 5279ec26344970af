package http_handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/helpbridge/coord-service/internal/application/account"
	"github.com/helpbridge/coord-service/internal/domain"
	"github.com/helpbridge/coord-service/internal/logger"
	"github.com/helpbridge/coord-service/internal/transport/http/dto"
	"github.com/helpbridge/coord-service/internal/transport/http/middleware"
	"github.com/helpbridge/coord-service/internal/transport/http/response"
)

type AccountHandler struct {
	svc              *account.Service
	frontendLoginURL string
}

func NewAccountHandler(svc *account.Service, frontendLoginURL string) *AccountHandler {
	return &AccountHandler{
		svc:              svc,
		frontendLoginURL: frontendLoginURL,
	}
}

func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		middleware.RegistrationsTotal.WithLabelValues("invalid").Inc()
		response.WriteError(w, r, err)
		return
	}

	u, err := h.svc.Register(r.Context(), account.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Location: req.Location,
		Bio:      req.Bio,
	})
	if err != nil {
		status := "error"
		if domain.Is(err, "email_already_registered") {
			status = "duplicate_email"
		}
		middleware.RegistrationsTotal.WithLabelValues(status).Inc()
		response.WriteError(w, r, err)
		return
	}

	middleware.RegistrationsTotal.WithLabelValues("success").Inc()
	logger.WithCtx(r.Context()).Info().
		Str("user_id", u.ID).
		Str("email", u.Email).
		Msg("user_registered")

	response.Created(w, dto.MessageResponse{
		Message: "registration successful, please verify your email",
	})
}

func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		status := "error"
		switch {
		case domain.Is(err, "user_not_found"):
			status = "unknown_email"
		case domain.Is(err, "email_not_verified"):
			status = "unverified"
		case domain.Is(err, "incorrect_password"):
			status = "bad_password"
		}
		middleware.LoginAttemptsTotal.WithLabelValues(status).Inc()
		response.WriteError(w, r, err)
		return
	}

	middleware.LoginAttemptsTotal.WithLabelValues("success").Inc()
	logger.WithCtx(r.Context()).Info().
		Str("user_id", res.User.ID).
		Msg("user_logged_in")

	response.OK(w, dto.LoginResponse{
		Token:     res.Token,
		TokenType: res.TokenType,
		ExpiresIn: res.ExpiresIn,
		User:      dto.NewUserView(res.User),
	})
}

// VerifyEmail handles the link from the verification mail. Success is a
// redirect to the frontend login page, not JSON; browsers follow it.
func (h *AccountHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")

	if err := h.svc.VerifyEmail(r.Context(), token); err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().Msg("email_verified")
	http.Redirect(w, r, h.frontendLoginURL, http.StatusFound)
}

func (h *AccountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}

	var req dto.UpdateProfileRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), uid, req.ToDomain())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.UpdateProfileResponse{
		Message: "profile updated",
		User:    dto.NewUserView(u),
	})
}

func (h *AccountHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	u, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.GetUserResponse{User: dto.NewUserView(u)})
}

package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	mw "github.com/helpbridge/coord-service/internal/transport/http/middleware"
)

type HealthHandler interface {
	Healthz(w http.ResponseWriter, r *http.Request)
	Readyz(w http.ResponseWriter, r *http.Request)
}

type AccountHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	VerifyEmail(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	GetUser(w http.ResponseWriter, r *http.Request)
}

type CoordinationHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
	DeactivateRequest(w http.ResponseWriter, r *http.Request)
	Analytics(w http.ResponseWriter, r *http.Request)
}

type Deps struct {
	Health       HealthHandler
	Account      AccountHandler
	Coordination CoordinationHandler

	AuthMW  func(http.Handler) http.Handler
	AdminMW func(http.Handler) http.Handler

	// Per-route rate limits; nil means unlimited.
	RegisterLimitMW func(http.Handler) http.Handler
	LoginLimitMW    func(http.Handler) http.Handler
}

func New(deps Deps) (http.Handler, error) {
	if deps.Health == nil {
		return nil, fmt.Errorf("nil Health handler")
	}
	if deps.Account == nil {
		return nil, fmt.Errorf("nil Account handler")
	}
	if deps.Coordination == nil {
		return nil, fmt.Errorf("nil Coordination handler")
	}
	if deps.AuthMW == nil {
		return nil, fmt.Errorf("nil Auth middleware")
	}
	if deps.AdminMW == nil {
		return nil, fmt.Errorf("nil Admin middleware")
	}

	passthrough := func(next http.Handler) http.Handler { return next }
	if deps.RegisterLimitMW == nil {
		deps.RegisterLimitMW = passthrough
	}
	if deps.LoginLimitMW == nil {
		deps.LoginLimitMW = passthrough
	}

	r := chi.NewRouter()
	r.Use(mw.RequestID)
	r.Use(mw.Metrics)

	r.Get("/healthz", deps.Health.Healthz)
	r.Get("/readyz", deps.Health.Readyz)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(deps.RegisterLimitMW).Post("/register", deps.Account.Register)
			r.With(deps.LoginLimitMW).Post("/login", deps.Account.Login)
			r.Get("/verify-email", deps.Account.VerifyEmail) // ?token=...

			r.With(deps.AuthMW).Patch("/update-profile", deps.Account.UpdateProfile)
			r.With(deps.AuthMW).Get("/user/{id}", deps.Account.GetUser)
		})

		r.Route("/requests", func(r chi.Router) {
			r.Use(deps.AuthMW)
			r.Post("/", deps.Coordination.CreateRequest)
			r.Get("/", deps.Coordination.ListRequests)
			r.Post("/{id}/deactivate", deps.Coordination.DeactivateRequest)
		})

		r.With(deps.AuthMW, deps.AdminMW).Get("/analytics", deps.Coordination.Analytics)
	})

	return r, nil
}

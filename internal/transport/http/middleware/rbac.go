package middleware

import (
	"net/http"

	"github.com/helpbridge/coord-service/internal/domain"
)

// RequireAdmin gates a route to admin tokens.
// Assumes Auth() has already injected the role into context.
func RequireAdmin(writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := RoleFromContext(r.Context())
			if !ok {
				// Middleware ordering issue (Auth not applied) or context missing
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}

			if role != string(domain.RoleAdmin) {
				writeErr(w, r, domain.ErrAdminsOnly())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

package middleware

import (
	"net/http"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/user"
	"github.com/hrms-suite/hrms-backend-go/internal/handler/http/response"
)

// RequireRole rejects principals whose role is not in roles.
func RequireRole(roles ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := user.PrincipalFromContext(r.Context())
			if err != nil {
				response.HandleError(w, err)
				return
			}

			if !principal.HasRole(roles...) {
				response.HandleError(w, user.ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequirePermission rejects principals whose role lacks permission.
func RequirePermission(permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := user.PrincipalFromContext(r.Context())
			if err != nil {
				response.HandleError(w, err)
				return
			}

			if !principal.Can(permission) {
				response.HandleError(w, user.ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

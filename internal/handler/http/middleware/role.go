package middleware

import (
	"net/http"

	"github.com/autotrack-hq/payroll-backend-go/internal/domain/auth"
	"github.com/autotrack-hq/payroll-backend-go/internal/domain/user"
	"github.com/autotrack-hq/payroll-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// ManagerOnly restricts the route to users with the manager role.
func ManagerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrForbidden)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, auth.ErrForbidden)
			return
		}

		if user.Role(roleStr) != user.RoleManager {
			response.HandleError(w, auth.ErrForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

package middleware

import (
	"net/http"
	"slices"

	"github.com/go-chi/jwtauth/v5"
	"github.com/labourhub/labour-backend-go/internal/domain/user"
	"github.com/labourhub/labour-backend-go/internal/handler/http/response"
)

// RequireRole rejects requests whose token carries none of the given roles.
func RequireRole(roles ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, user.ErrAdminAccessRequired)
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok {
				response.HandleError(w, user.ErrAdminAccessRequired)
				return
			}

			if !slices.Contains(roles, user.Role(roleStr)) {
				response.Forbidden(w, "Insufficient permissions for role '"+roleStr+"'")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin requires the admin role
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(user.RoleAdmin)(next)
}

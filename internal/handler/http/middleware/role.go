package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/bntng-project/esensi-backend/internal/domain/employee"
	"github.com/bntng-project/esensi-backend/internal/handler/http/response"
)

// RequireAdmin requires admin role
func RequireAdmin(next http.Handler) http.Handler {
	return requireRoles(next, employee.RoleAdmin)
}

// RequireStaff requires admin or hr role
func RequireStaff(next http.Handler) http.Handler {
	return requireRoles(next, employee.RoleAdmin, employee.RoleHR)
}

func requireRoles(next http.Handler, allowed ...employee.Role) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Insufficient permissions")
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.Forbidden(w, "Insufficient permissions")
			return
		}

		role := employee.Role(roleStr)
		for _, a := range allowed {
			if role == a {
				next.ServeHTTP(w, r)
				return
			}
		}

		response.Forbidden(w, "Insufficient permissions")
	})
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bntng-project/esensi-backend/internal/domain/employee"
	"github.com/bntng-project/esensi-backend/internal/pkg/jwt"
)

func newAuthedRouter(t *testing.T) (*chi.Mux, jwt.Service) {
	t.Helper()

	jwtService := jwt.NewJWTService("test-secret-key", "12h")

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(AuthRequired(jwtService.JWTAuth()))

		r.Get("/me", func(w http.ResponseWriter, req *http.Request) {
			id, ok := EmployeeID(req)
			require.True(t, ok)
			w.Write([]byte(id))
		})

		r.Group(func(r chi.Router) {
			r.Use(RequireAdmin)
			r.Get("/admin-only", func(w http.ResponseWriter, req *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
		})
	})

	return r, jwtService
}

func authedRequest(t *testing.T, jwtService jwt.Service, target, employeeID string, role employee.Role) *http.Request {
	t.Helper()

	token, expiresAt, err := jwtService.GenerateAccessToken(employeeID, role)
	require.NoError(t, err)
	require.NotZero(t, expiresAt)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestAuthRequired(t *testing.T) {
	r, jwtService := newAuthedRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, authedRequest(t, jwtService, "/me", "emp-1", employee.RoleEmployee))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "emp-1", rec.Body.String())
}

func TestAuthRequired_MissingToken(t *testing.T) {
	r, _ := newAuthedRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_WrongSecret(t *testing.T) {
	r, _ := newAuthedRouter(t)
	other := jwt.NewJWTService("another-secret", "12h")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, authedRequest(t, other, "/me", "emp-1", employee.RoleEmployee))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	r, jwtService := newAuthedRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, authedRequest(t, jwtService, "/admin-only", "emp-admin", employee.RoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, authedRequest(t, jwtService, "/admin-only", "emp-1", employee.RoleEmployee))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

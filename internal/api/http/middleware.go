package http

import (
	"context"
	"net/http"
	"strings"

	"firedept-backoffice/internal/domain"
	"firedept-backoffice/internal/security"
)

type contextKey string

const principalKey contextKey = "principal"

// supplierSessionCookie carries the supplier token; staff users send bearer
// headers instead. Both resolve to the same Principal shape.
const supplierSessionCookie = "supplier_session"

// PrincipalFromContext returns the authenticated principal set by the auth
// middleware.
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey).(domain.Principal)
	return p, ok
}

type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate resolves the caller once at the boundary: bearer token first,
// supplier session cookie second. Handlers past this point only ever see a
// domain.Principal.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := bearerToken(r)
		if tokenString == "" {
			if cookie, err := r.Cookie(supplierSessionCookie); err == nil {
				tokenString = cookie.Value
			}
		}
		if tokenString == "" {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
			return
		}

		claims, err := m.tokens.ValidateToken(tokenString)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid or expired token"})
			return
		}

		ctx := context.WithValue(r.Context(), principalKey, claims.Principal())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// requireRole wraps a handler with a role gate. The check is a precondition
// only; business rules stay in the services.
func requireRole(role string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := PrincipalFromContext(r.Context())
		if !ok {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
			return
		}
		if !principal.HasRole(role) {
			writeError(w, domain.ErrUnauthorized)
			return
		}
		handler(w, r)
	}
}

package middlewares

import (
	"context"
	"errors"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"strings"
)

// Authenticate verifies the bearer token and stores the caller session in the
// request context. Token issuance lives in the external credential service,
// this side only validates the signature and claims.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		session, err := utils.ParseSessionToken(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole guards an endpoint so only callers holding the given role reach
// the handler. It must run after Authenticate.
func (m *Middlewares) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
			if !ok {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
				return
			}
			if session.Role != role {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotMatchRoleType(
					errors.New("caller role "+session.Role+" is not allowed on this resource"),
				))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

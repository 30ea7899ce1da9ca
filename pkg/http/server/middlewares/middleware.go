package middlewares

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/segmentio/ksuid"
	"projetos/pkg/constants/headers"
	"projetos/pkg/models"
	"projetos/pkg/service/identity"
	"projetos/pkg/utils"
)

type contextKey int

const (
	RequestID contextKey = iota + 1
	PrincipalKey
)

const MissingCredentialsMessage = "Authentication credentials were not provided."

// middlewareHandler middleware type
type middlewareHandler struct {
	logger hclog.Logger
}

type MiddlewareHandler interface {
	ContextMiddleware(next http.Handler) http.Handler
	TimeoutMiddleware(timeout time.Duration) func(next http.Handler) http.Handler
	OptionalAuth(provider identity.Provider) func(next http.Handler) http.Handler
	RequireAuth(provider identity.Provider) func(next http.Handler) http.Handler
}

func NewMiddlewareHandler(logger hclog.Logger) MiddlewareHandler {
	return &middlewareHandler{
		logger: logger.Named("middleware"),
	}
}

// ContextMiddleware tags every request with a ksuid, in the context and the X-Request-Id header
func (m *middlewareHandler) ContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headers.RequestIDHeader)
		if id == "" {
			id = ksuid.New().String()
		}
		w.Header().Set(headers.RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), RequestID, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TimeoutMiddleware puts a deadline on the request context. Repositories stop at the deadline.
func (m *middlewareHandler) TimeoutMiddleware(timeout time.Duration) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if timeout <= 0 {
				next.ServeHTTP(w, r)
				return
			}
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth lets anonymous requests through but rejects a bearer token that does not verify
func (m *middlewareHandler) OptionalAuth(provider identity.Provider) func(next http.Handler) http.Handler {
	return m.authMiddleware(provider, false)
}

// RequireAuth rejects requests without a valid bearer token
func (m *middlewareHandler) RequireAuth(provider identity.Provider) func(next http.Handler) http.Handler {
	return m.authMiddleware(provider, true)
}

func (m *middlewareHandler) authMiddleware(provider identity.Provider, required bool) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				if required {
					utils.SendError(w, utils.HTTPGenericError(http.StatusUnauthorized, MissingCredentialsMessage))
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			principal, err := provider.Verify(r.Context(), token)
			if err != nil {
				m.logger.Debug("unauthorized request", "path", r.URL.Path, "request-id", GetRequestID(r.Context()))
				utils.SendError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), PrincipalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	authorization := r.Header.Get(headers.AuthorizationHeader)
	if authorization == "" {
		return "", false
	}
	if !strings.HasPrefix(authorization, headers.BearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(authorization, headers.BearerPrefix))
	return token, token != ""
}

func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestID).(string)
	return id
}

// GetPrincipal returns the caller resolved by the auth middleware, if any
func GetPrincipal(ctx context.Context) (*models.Principal, bool) {
	principal, ok := ctx.Value(PrincipalKey).(*models.Principal)
	return principal, ok
}

package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"projetos/pkg/constants/headers"
	"projetos/pkg/models"
	"projetos/pkg/utils"
)

type stubProvider struct {
	verified string
}

func (s *stubProvider) Register(ctx context.Context, input models.CadastroInput) (*models.Usuario, *utils.GenericError) {
	return nil, nil
}

func (s *stubProvider) IssueTokens(ctx context.Context, username, password string) (*models.TokenPair, *utils.GenericError) {
	return nil, nil
}

func (s *stubProvider) Refresh(ctx context.Context, refreshToken string) (*models.AccessToken, *utils.GenericError) {
	return nil, nil
}

func (s *stubProvider) Verify(ctx context.Context, accessToken string) (*models.Principal, *utils.GenericError) {
	s.verified = accessToken
	if accessToken != "good" {
		return nil, &utils.GenericError{Message: "bad token", Type: http.StatusUnauthorized, Code: "token_not_valid"}
	}
	return &models.Principal{UserID: 7, TokenID: "jti"}, nil
}

func principalEcho(t *testing.T, expectPrincipal bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := GetPrincipal(r.Context())
		assert.Equal(t, expectPrincipal, ok)
		if ok {
			assert.Equal(t, int64(7), principal.UserID)
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func request(handler http.Handler, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if authorization != "" {
		req.Header.Set(headers.AuthorizationHeader, authorization)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func Test_ContextMiddleware_SetsRequestID(t *testing.T) {
	m := NewMiddlewareHandler(hclog.NewNullLogger())

	var seen string
	handler := m.ContextMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	w := request(handler, "")
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(headers.RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(headers.RequestIDHeader, "from-client")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "from-client", seen)
}

func Test_TimeoutMiddleware_SetsDeadline(t *testing.T) {
	m := NewMiddlewareHandler(hclog.NewNullLogger())

	var hasDeadline bool
	handler := m.TimeoutMiddleware(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
	}))
	request(handler, "")
	assert.True(t, hasDeadline)

	handler = m.TimeoutMiddleware(0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
	}))
	request(handler, "")
	assert.False(t, hasDeadline)
}

func Test_RequireAuth(t *testing.T) {
	m := NewMiddlewareHandler(hclog.NewNullLogger())
	provider := &stubProvider{}

	w := request(m.RequireAuth(provider)(principalEcho(t, true)), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"detail":"Authentication credentials were not provided."}`, w.Body.String())

	w = request(m.RequireAuth(provider)(principalEcho(t, true)), "Basic abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = request(m.RequireAuth(provider)(principalEcho(t, true)), "Bearer nope")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"detail":"bad token","code":"token_not_valid"}`, w.Body.String())

	w = request(m.RequireAuth(provider)(principalEcho(t, true)), "Bearer good")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "good", provider.verified)
}

func Test_OptionalAuth(t *testing.T) {
	m := NewMiddlewareHandler(hclog.NewNullLogger())
	provider := &stubProvider{}

	w := request(m.OptionalAuth(provider)(principalEcho(t, false)), "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "", provider.verified)

	w = request(m.OptionalAuth(provider)(principalEcho(t, true)), "Bearer nope")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = request(m.OptionalAuth(provider)(principalEcho(t, true)), "Bearer good")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luanova/internal/pkg/middleware"
	"luanova/internal/pkg/token"
)

// issue executa IssueCSRFToken e devolve o token e o cookie emitidos.
func issue(t *testing.T, svc *token.Service) (string, *http.Cookie) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	tok, err := middleware.IssueCSRFToken(rec, req, svc, false, time.Hour)
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.CSRFCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	return tok, cookies[0]
}

func postForm(tok string, cookie *http.Cookie) *http.Request {
	form := url.Values{}
	if tok != "" {
		form.Set(middleware.CSRFFormField, tok)
	}
	req := httptest.NewRequest(http.MethodPost, "/produtos", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return req
}

func TestCSRF_AcceptsMatchingTokenAndCookie(t *testing.T) {
	svc := token.NewService("segredo", time.Hour)
	tok, cookie := issue(t, svc)

	var sawClaims bool
	h := middleware.NewCSRFMiddleware(svc, newTestLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawClaims = middleware.CSRFClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, postForm(tok, cookie))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, sawClaims)
}

func TestCSRF_Rejections(t *testing.T) {
	svc := token.NewService("segredo", time.Hour)
	tok, cookie := issue(t, svc)
	_, otherCookie := issue(t, svc)
	forged, err := token.NewService("outro", time.Hour).GenerateToken(cookie.Value)
	require.NoError(t, err)

	tests := []struct {
		name string
		req  *http.Request
	}{
		{"sem cookie", postForm(tok, nil)},
		{"sem token", postForm("", cookie)},
		{"nonce diferente", postForm(tok, otherCookie)},
		{"assinatura falsa", postForm(forged, cookie)},
	}

	h := middleware.NewCSRFMiddleware(svc, newTestLogger())(okHandler())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, tt.req)
			assert.Equal(t, http.StatusForbidden, rec.Code)
		})
	}
}

func TestCSRF_SafeMethodsPass(t *testing.T) {
	svc := token.NewService("segredo", time.Hour)
	h := middleware.NewCSRFMiddleware(svc, newTestLogger())(okHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIssueCSRFToken_ReusesExistingNonce(t *testing.T) {
	svc := token.NewService("segredo", time.Hour)
	_, cookie := issue(t, svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	tok, err := middleware.IssueCSRFToken(rec, req, svc, false, time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, cookie.Value, claims.Nonce)
}

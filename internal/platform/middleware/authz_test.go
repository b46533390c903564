// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/yomira-docs/internal/platform/ctxutil"
	"github.com/taibuivan/yomira-docs/internal/platform/middleware"
	"github.com/taibuivan/yomira-docs/internal/platform/sec"
)

// fakeVerifier accepts exactly one token.
type fakeVerifier struct {
	token string
}

func (verifier fakeVerifier) VerifyToken(_ context.Context, token string) (*sec.AuthClaims, error) {
	if token != verifier.token {
		return nil, errors.New("unknown token")
	}
	return &sec.AuthClaims{UserID: "user-1"}, nil
}

// whoAmI echoes the principal's user id, or "anonymous".
var whoAmI = http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
	if principal := ctxutil.GetPrincipal(request.Context()); principal != nil {
		_, _ = writer.Write([]byte(principal.UserID))
		return
	}
	_, _ = writer.Write([]byte("anonymous"))
})

/*
TestAuthenticate covers header, cookie, anonymous and rejected credentials.
*/
func TestAuthenticate(t *testing.T) {
	handler := middleware.Authenticate(fakeVerifier{token: "good"})(whoAmI)

	tests := []struct {
		name       string
		prepare    func(request *http.Request)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "anonymous",
			prepare:    func(*http.Request) {},
			wantStatus: http.StatusOK,
			wantBody:   "anonymous",
		},
		{
			name:       "bearer_header",
			prepare:    func(r *http.Request) { r.Header.Set("Authorization", "Bearer good") },
			wantStatus: http.StatusOK,
			wantBody:   "user-1",
		},
		{
			name:       "session_cookie",
			prepare:    func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "auth_token", Value: "good"}) },
			wantStatus: http.StatusOK,
			wantBody:   "user-1",
		},
		{
			name:       "bad_token",
			prepare:    func(r *http.Request) { r.Header.Set("Authorization", "Bearer bad") },
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "bad_scheme",
			prepare:    func(r *http.Request) { r.Header.Set("Authorization", "Basic Zm9vOmJhcg==") },
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.prepare(request)
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, recorder.Body.String())
			}
		})
	}
}

/*
TestRequireAuth verifies the guard answers 403 for anonymous callers.
*/
func TestRequireAuth(t *testing.T) {
	handler := middleware.Authenticate(fakeVerifier{token: "good"})(middleware.RequireAuth(whoAmI))

	anonymous := httptest.NewRecorder()
	handler.ServeHTTP(anonymous, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusForbidden, anonymous.Code)
	assert.Contains(t, anonymous.Body.String(), "FORBIDDEN")

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "Bearer good")
	authenticated := httptest.NewRecorder()
	handler.ServeHTTP(authenticated, request)
	assert.Equal(t, http.StatusOK, authenticated.Code)
	assert.Equal(t, "user-1", authenticated.Body.String())
}

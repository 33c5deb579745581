package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-catalog-api/internal/router"
	"github.com/MKhiriev/go-catalog-api/internal/service"
	"github.com/MKhiriev/go-catalog-api/internal/utils"
	"github.com/MKhiriev/go-catalog-api/models"
)

// authRouter mounts RequireAuth in front of a handler that echoes the user id
// found in the context.
func authRouter(h *Handler) *router.Router {
	rt := router.New(h.logger)
	rt.Get("/private", h.RequireAuth, func(c *router.Context) (*router.Response, error) {
		userID, ok := utils.GetUserIDFromContext(c.Context())
		if !ok {
			return router.JSON(http.StatusInternalServerError, "no user"), nil
		}
		return router.JSON(http.StatusOK, userID), nil
	})
	return rt
}

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		parse      bool
		parseErr   error
		wantStatus int
		wantError  string
	}{
		{name: "valid token", header: "Bearer " + testToken, parse: true, wantStatus: http.StatusOK},
		{name: "lower case scheme", header: "bearer " + testToken, parse: true, wantStatus: http.StatusOK},
		{name: "no header", wantStatus: http.StatusUnauthorized, wantError: ErrEmptyAuthorizationHeader.Error()},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantStatus: http.StatusUnauthorized, wantError: utils.ErrInvalidAuthorizationHead.Error()},
		{name: "scheme only", header: "Bearer", wantStatus: http.StatusUnauthorized, wantError: utils.ErrInvalidAuthorizationHead.Error()},
		{name: "expired token", header: "Bearer " + testToken, parse: true, parseErr: service.ErrTokenIsExpiredOrInvalid, wantStatus: http.StatusUnauthorized, wantError: ErrUnauthenticated.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s := newTestHandler(t)
			if tt.parse {
				s.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{UserID: 42}, tt.parseErr)
			}

			var headers []string
			if tt.header != "" {
				headers = []string{"Authorization", tt.header}
			}
			rr, env := serve(t, authRouter(h), http.MethodGet, "/private", "", headers...)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantError, env.Error)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `42`, string(env.Message))
			} else {
				assert.JSONEq(t, `"Unauthorized"`, string(env.Message))
			}
		})
	}
}

func TestRequireAuth_DoesNotLeakUserBetweenRequests(t *testing.T) {
	h, s := newTestHandler(t)
	s.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{UserID: 42}, nil)
	rt := authRouter(h)

	rr, _ := serve(t, rt, http.MethodGet, "/private", "", bearer()...)
	require.Equal(t, http.StatusOK, rr.Code)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	rr = httptest.NewRecorder()
	rt.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

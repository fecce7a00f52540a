package mwauth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafeBooker/internal/auth"
)

type stubParser struct {
	claims auth.Claims
	err    error
}

func (p stubParser) ParseToken(raw string) (auth.Claims, error) {
	return p.claims, p.err
}

func TestNewStoresClaims(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		header       string
		parser       stubParser
		wantAdmin    bool
		wantUsername string
	}{
		{
			name:         "Valid bearer token",
			header:       "Bearer good.token",
			parser:       stubParser{claims: auth.Claims{Username: "admin", Admin: true}},
			wantAdmin:    true,
			wantUsername: "admin",
		},
		{
			name:   "Invalid token passes through unauthenticated",
			header: "Bearer bad.token",
			parser: stubParser{err: auth.ErrInvalidToken},
		},
		{
			name:   "No authorization header",
			header: "",
			parser: stubParser{claims: auth.Claims{Username: "admin", Admin: true}},
		},
		{
			name:   "Non-bearer scheme is ignored",
			header: "Basic YWRtaW46czNjcmV0",
			parser: stubParser{claims: auth.Claims{Username: "admin", Admin: true}},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var gotAdmin bool
			var gotUsername string

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAdmin = IsAdmin(r.Context())
				gotUsername = Username(r.Context())
			})

			handler := New(tc.parser)(next)

			req, err := http.NewRequest("GET", "/bookings", nil)
			require.NoError(t, err)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tc.wantAdmin, gotAdmin)
			assert.Equal(t, tc.wantUsername, gotUsername)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		claims         *auth.Claims
		expectedStatus int
		wantNext       bool
	}{
		{
			name:           "Admin claims pass",
			claims:         &auth.Claims{Username: "admin", Admin: true},
			expectedStatus: http.StatusOK,
			wantNext:       true,
		},
		{
			name:           "Non-admin claims rejected",
			claims:         &auth.Claims{Username: "guest", Admin: false},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "No claims rejected",
			claims:         nil,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var nextCalled bool

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			handler := RequireAdmin()(next)

			req, err := http.NewRequest("DELETE", "/bookings/7", nil)
			require.NoError(t, err)
			if tc.claims != nil {
				req = req.WithContext(WithClaims(req.Context(), *tc.claims))
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Equal(t, tc.wantNext, nextCalled)

			if !tc.wantNext {
				assert.JSONEq(t, `{"status":"Error","error":"admin authorization required"}`, rr.Body.String())
			}
		})
	}
}

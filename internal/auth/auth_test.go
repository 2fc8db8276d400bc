package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lsantos-dev/moneta/internal/auth"
	"github.com/lsantos-dev/moneta/internal/user"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	return token
}

func TestMiddleware(t *testing.T) {
	type testCase struct {
		name       string
		authHeader string
		setupMock  func(m *user.MockRepository)
		wantStatus int
		wantUser   bool
	}

	userID := uuid.New()
	validToken := signToken(t, jwt.MapClaims{"sub": "auth0|abc", "email": "ana@example.com"})

	tests := []testCase{
		{
			name:       "ValidTokenResolvesUser",
			authHeader: "Bearer " + validToken,
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().
					Upsert(gomock.Any(), "auth0|abc", "ana@example.com").
					Return(&user.User{ID: userID, ExternalID: "auth0|abc", Email: "ana@example.com"}, nil)
			},
			wantStatus: http.StatusOK,
			wantUser:   true,
		},
		{
			name:       "MissingHeader",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "MalformedToken",
			authHeader: "Bearer not-a-token",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := user.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			var gotUser *user.User

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser = auth.CurrentUser(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			mw := auth.Middleware(user.NewService(repo), testSecret)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/reports", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			rec := httptest.NewRecorder()
			mw(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantUser {
				require.NotNil(t, gotUser)
				assert.Equal(t, userID, gotUser.ID)
			} else {
				assert.Nil(t, gotUser)
			}
		})
	}
}

func TestMiddleware_WrongSigningKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := user.NewMockRepository(ctrl)
	mw := auth.Middleware(user.NewService(repo), testSecret)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "auth0|abc"}).
		SignedString([]byte("another-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_MissingSubject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := user.NewMockRepository(ctrl)
	mw := auth.Middleware(user.NewService(repo), testSecret)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{"email": "ana@example.com"}))

	rec := httptest.NewRecorder()
	mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

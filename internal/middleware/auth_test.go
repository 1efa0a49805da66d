package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finpulse-api/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret"

func testAuthConfig() *config.AuthConfig {
	return &config.AuthConfig{
		JWTSecret: testJWTSecret,
		Issuer:    "finpulse-api",
	}
}

func signTestToken(t *testing.T, claims AuthClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return token
}

func validTestClaims(userID uuid.UUID) AuthClaims {
	return AuthClaims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "finpulse-api",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func runAuthMiddleware(t *testing.T, authHeader string) (*httptest.ResponseRecorder, uuid.UUID, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var contextUserID uuid.UUID
	reached := false
	handler := RequireAuth(testAuthConfig())(func(c echo.Context) error {
		reached = true
		contextUserID = c.Get("user_id").(uuid.UUID)
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	return rec, contextUserID, reached
}

func TestRequireAuth_ValidToken(t *testing.T) {
	userID := uuid.New()
	token := signTestToken(t, validTestClaims(userID))

	rec, contextUserID, reached := runAuthMiddleware(t, "Bearer "+token)

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, contextUserID)
}

func TestRequireAuth_SubjectFallback(t *testing.T) {
	userID := uuid.New()
	claims := validTestClaims(userID)
	claims.UserID = ""
	claims.Subject = userID.String()
	token := signTestToken(t, claims)

	rec, contextUserID, reached := runAuthMiddleware(t, "Bearer "+token)

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, contextUserID)
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	rec, _, reached := runAuthMiddleware(t, "")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "AUTH_001")
}

func TestRequireAuth_NotBearer(t *testing.T) {
	rec, _, reached := runAuthMiddleware(t, "Basic dXNlcjpwYXNz")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "AUTH_003")
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	userID := uuid.New()
	claims := validTestClaims(userID)
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	token := signTestToken(t, claims)

	rec, _, reached := runAuthMiddleware(t, "Bearer "+token)

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "AUTH_002")
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	userID := uuid.New()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, validTestClaims(userID)).
		SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	rec, _, reached := runAuthMiddleware(t, "Bearer "+token)

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "AUTH_003")
}

func TestRequireAuth_WrongIssuer(t *testing.T) {
	userID := uuid.New()
	claims := validTestClaims(userID)
	claims.Issuer = "someone-else"
	token := signTestToken(t, claims)

	rec, _, reached := runAuthMiddleware(t, "Bearer "+token)

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_NonUUIDUser(t *testing.T) {
	claims := validTestClaims(uuid.New())
	claims.UserID = "user-42"
	token := signTestToken(t, claims)

	rec, _, reached := runAuthMiddleware(t, "Bearer "+token)

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"standard bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase scheme", "bearer abc.def.ghi", "abc.def.ghi", false},
		{"missing token", "Bearer ", "", true},
		{"wrong scheme", "Token abc", "", true},
		{"no space", "Bearerabc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractTokenFromHeader(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

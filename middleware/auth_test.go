package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Raj-Aarav/FinWise/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, subject, issuer string) string {
	t.Helper()
	claims := &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newAuthRouter(issuer string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthRequired(testSecret, issuer), func(c *gin.Context) {
		claims := c.MustGet(ContextUserKey).(*models.Claims)
		c.JSON(http.StatusOK, gin.H{"userId": claims.UserID()})
	})
	return router
}

func TestAuthRequiredMissingToken(t *testing.T) {
	router := newAuthRouter("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredMalformedHeader(t *testing.T) {
	router := newAuthRouter("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredWrongSecret(t *testing.T) {
	router := newAuthRouter("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", "user-1", ""))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredWrongIssuer(t *testing.T) {
	router := newAuthRouter("https://auth.example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "user-1", "https://evil.example.com"))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredValidToken(t *testing.T) {
	router := newAuthRouter("https://auth.example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "user-1", "https://auth.example.com"))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestVerifyTokenExpired(t *testing.T) {
	claims := &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = VerifyToken(token, testSecret, "")
	assert.Error(t, err)
}

func TestVerifyTokenNoSubject(t *testing.T) {
	token := signToken(t, testSecret, "", "")

	_, err := VerifyToken(token, testSecret, "")
	assert.Error(t, err)
}

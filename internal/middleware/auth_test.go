package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/habitquest/habit-tree-api/internal/utils"
)

const testSecret = "middleware-test-secret"

func setupProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(testSecret), func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		email, _ := GetUserEmail(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "email": email})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_ValidToken(t *testing.T) {
	r := setupProtectedRouter()

	token, err := utils.GenerateToken(42, "user@example.com", time.Hour, testSecret)
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"user_id":42`)
	require.Contains(t, w.Body.String(), `"email":"user@example.com"`)
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	r := setupProtectedRouter()

	w := doRequest(r, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Missing or invalid token")
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	r := setupProtectedRouter()

	for _, header := range []string{"Bearer", "Basic abc", "justatoken"} {
		w := doRequest(r, header)
		require.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	r := setupProtectedRouter()

	token, err := utils.GenerateToken(42, "user@example.com", -time.Minute, testSecret)
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	r := setupProtectedRouter()

	token, err := utils.GenerateToken(42, "user@example.com", time.Hour, "another-secret")
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

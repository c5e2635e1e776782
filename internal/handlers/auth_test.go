package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/habitquest/habit-tree-api/internal/database"
	"github.com/habitquest/habit-tree-api/internal/dto"
	apierrors "github.com/habitquest/habit-tree-api/internal/errors"
	"github.com/habitquest/habit-tree-api/internal/models"
	"github.com/habitquest/habit-tree-api/internal/repository"
	"github.com/habitquest/habit-tree-api/internal/services"
	"github.com/habitquest/habit-tree-api/internal/utils"
)

const testJWTSecret = "test-secret"

type authTestEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	authService *services.AuthService
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{})
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo, testJWTSecret, time.Hour)
	handler := NewAuthHandler(authService)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/register", handler.Register)
	r.POST("/api/login", handler.Login)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{
		db:          db,
		router:      r,
		authService: authService,
	}
}

func (env authTestEnv) postJSON(t *testing.T, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	env.router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.postJSON(t, "/api/register", map[string]string{
		"username": "newuser",
		"email":    "new@example.com",
		"password": "supersecret",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "newuser", response.User.Username)
	require.Equal(t, "new@example.com", response.User.Email)
	require.NotZero(t, response.User.ID)
	require.NotEmpty(t, response.Token)

	// The issued token decodes back to the registered identity.
	userID, email, err := utils.ParseToken(response.Token, testJWTSecret)
	require.NoError(t, err)
	require.Equal(t, response.User.ID, userID)
	require.Equal(t, "new@example.com", email)

	// Plaintext password never reaches storage.
	var stored models.User
	require.NoError(t, env.db.First(&stored, response.User.ID).Error)
	require.NotEqual(t, "supersecret", stored.PasswordHash)
	require.NotEmpty(t, stored.PasswordHash)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	env := setupAuthTestEnv(t)

	payload := map[string]string{
		"username": "first",
		"email":    "taken@example.com",
		"password": "supersecret",
	}
	w := env.postJSON(t, "/api/register", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	payload["username"] = "second"
	w = env.postJSON(t, "/api/register", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var response apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "user already exists", response.Message)
}

func TestAuthHandler_Register_InvalidBody(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.postJSON(t, "/api/register", map[string]string{
		"username": "nouser",
		"email":    "not-an-email",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupAuthTestEnv(t)

	user, _, err := env.authService.Register(services.RegisterInput{
		Username: "existing",
		Email:    "existing@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	w := env.postJSON(t, "/api/login", map[string]string{
		"email":    "existing@example.com",
		"password": "supersecret",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Login successful", response.Message)
	require.Equal(t, user.ID, response.User.ID)

	userID, email, err := utils.ParseToken(response.Token, testJWTSecret)
	require.NoError(t, err)
	require.Equal(t, user.ID, userID)
	require.Equal(t, user.Email, email)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, _, err := env.authService.Register(services.RegisterInput{
		Username: "existing",
		Email:    "existing@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	// Wrong password and unknown email must be indistinguishable.
	wrongPassword := env.postJSON(t, "/api/login", map[string]string{
		"email":    "existing@example.com",
		"password": "wrongpassword",
	})
	unknownEmail := env.postJSON(t, "/api/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "supersecret",
	})

	require.Equal(t, http.StatusBadRequest, wrongPassword.Code)
	require.Equal(t, http.StatusBadRequest, unknownEmail.Code)
	require.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

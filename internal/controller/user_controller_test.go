package controller

import (
	"lms_backend/internal/config"
	"lms_backend/internal/middleware"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/service"
	"lms_backend/internal/util"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userTestSecret = "unit-test-secret"

// The denial paths never reach the store, so a repository over a nil DB
// is enough to exercise the authorization layer end to end.
func userTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.JWT.Secret = userTestSecret

	users := service.NewUserService(repository.NewUserRepository(nil))
	ctrl := NewUserController(users, nil)

	router := gin.New()
	router.GET("/api/users/:id", middleware.AuthMiddleware(cfg), ctrl.GetUser)
	return router
}

func issueUserToken(t *testing.T, id uint, role model.UserRole) string {
	t.Helper()
	user := &model.User{Role: role}
	user.ID = id
	token, err := util.GenerateJWT(user, userTestSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func TestGetUserForeignRecordForbidden(t *testing.T) {
	router := userTestRouter()

	for name, role := range map[string]model.UserRole{
		"student": model.Student,
		"teacher": model.Teacher,
	} {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/users/7", nil)
			req.Header.Set("Authorization", "Bearer "+issueUserToken(t, 42, role))
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusForbidden, w.Code)
			assert.Contains(t, w.Body.String(), "self_only")
		})
	}
}

func TestGetUserAnonymousUnauthorized(t *testing.T) {
	router := userTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

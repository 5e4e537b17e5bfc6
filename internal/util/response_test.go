package util

import (
	"encoding/json"
	"errors"
	"lms_backend/pkg/logger"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
}

func serve(err error) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	FailFromError(c, err)
	return w
}

func TestFailFromErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not found", ErrNotFound, http.StatusNotFound},
		{"unauthenticated", ErrUnauthenticated, http.StatusUnauthorized},
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid reset token", ErrInvalidResetToken, http.StatusBadRequest},
		{"already enrolled", ErrAlreadyEnrolled, http.StatusConflict},
		{"email registered", ErrEmailRegistered, http.StatusConflict},
		{"forbidden", Forbidden("not_enrolled"), http.StatusForbidden},
		{"validation", ValidationErrors{"title": "required"}, http.StatusBadRequest},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(tt.err)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestFailFromErrorForbiddenBody(t *testing.T) {
	w := serve(Forbidden("course_owner_only"))

	var body Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Forbidden: course_owner_only", body.Message)
}

func TestFailFromErrorValidationBody(t *testing.T) {
	w := serve(ValidationErrors{"title": "this field is required"})

	var body struct {
		Message string            `json:"message"`
		Data    map[string]string `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "validation failed", body.Message)
	assert.Equal(t, "this field is required", body.Data["title"])
}

func TestFailFromErrorUnexpectedHidesDetail(t *testing.T) {
	w := serve(errors.New("dsn=root:hunter2@tcp(db)/lms"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "hunter2")
}

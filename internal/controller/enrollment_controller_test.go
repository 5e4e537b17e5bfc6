package controller

import (
	"lms_backend/internal/repository"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodGet, "/api/enrollments?"+rawQuery, nil)
	return ctx
}

func TestEnrollmentFilterFromQuery(t *testing.T) {
	tests := []struct {
		name     string
		rawQuery string
		want     repository.EnrollmentFilter
	}{
		{"both filters", "courseId=3&studentId=42", repository.EnrollmentFilter{CourseID: 3, StudentID: 42}},
		{"student only", "studentId=42", repository.EnrollmentFilter{StudentID: 42}},
		{"course only", "courseId=3", repository.EnrollmentFilter{CourseID: 3}},
		{"no filters", "", repository.EnrollmentFilter{}},
		{"garbage ignored", "courseId=abc&studentId=-1", repository.EnrollmentFilter{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, enrollmentFilterFromQuery(queryContext(t, tt.rawQuery)))
		})
	}
}

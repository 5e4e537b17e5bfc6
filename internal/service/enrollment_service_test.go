package service

import (
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/policy"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The denial paths never reach the store, so a zero-value service is enough.

func TestEnrollOnlyStudentsAllowedIn(t *testing.T) {
	s := &EnrollmentService{}

	tests := []struct {
		name  string
		actor *policy.Actor
	}{
		{"anonymous", nil},
		{"teacher", &policy.Actor{ID: 1, Role: model.Teacher}},
		{"admin", &policy.Actor{ID: 2, Role: model.Admin}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Enroll(tt.actor, 5)

			var forbidden *util.ForbiddenError
			assert.True(t, errors.As(err, &forbidden))
			assert.Equal(t, policy.ReasonStudentOnly, forbidden.Reason)
		})
	}
}

func TestListAnonymousUnauthenticated(t *testing.T) {
	s := &EnrollmentService{}

	_, err := s.List(nil, repository.EnrollmentFilter{})
	assert.ErrorIs(t, err, util.ErrUnauthenticated)
}

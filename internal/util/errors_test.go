package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForbiddenErrorCarriesReason(t *testing.T) {
	err := Forbidden("course_owner_only")

	var forbidden *ForbiddenError
	assert.True(t, errors.As(err, &forbidden))
	assert.Equal(t, "course_owner_only", forbidden.Reason)
	assert.Equal(t, "forbidden: course_owner_only", err.Error())
}

func TestValidationErrorsMessageIsStable(t *testing.T) {
	errs := ValidationErrors{
		"title":      "this field is required",
		"categoryId": "category does not exist",
	}

	// Fields come out sorted regardless of map order.
	assert.Equal(t,
		"validation failed: categoryId: category does not exist; title: this field is required",
		errs.Error())
}

func TestValidationErrorsMatchViaAs(t *testing.T) {
	var err error = ValidationErrors{"email": "invalid"}

	var validation ValidationErrors
	assert.True(t, errors.As(err, &validation))
	assert.Equal(t, "invalid", validation["email"])
}

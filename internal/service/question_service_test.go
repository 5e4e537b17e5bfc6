package service

import (
	"errors"
	"lms_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAskRejectsEmptyQuestion(t *testing.T) {
	s := &QuestionService{}

	_, err := s.Ask(nil, 1, "")

	var validation util.ValidationErrors
	assert.True(t, errors.As(err, &validation))
	assert.Contains(t, validation, "question")
}

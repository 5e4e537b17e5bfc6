package service

import (
	"encoding/json"
	"lms_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicViewOmitsSensitiveFields(t *testing.T) {
	course := &model.Course{
		Title:        "Intro to Go",
		Description:  "basics",
		Banner:       "/uploads/banners/x.png",
		Price:        49.99,
		Duration:     12,
		IsActive:     true,
		CategoryID:   3,
		Category:     model.Category{Title: "Programming"},
		InstructorID: 7,
	}
	course.ID = 11

	view := publicView(course)

	assert.Equal(t, course.ID, view.ID)
	assert.Equal(t, course.Title, view.Title)
	assert.Equal(t, course.Banner, view.Banner)
	assert.Equal(t, course.CategoryID, view.CategoryID)
	assert.Equal(t, "Programming", view.CategoryDetails.Title)

	// The serialized projection must not leak price or instructor data.
	raw, err := json.Marshal(view)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))

	assert.NotContains(t, fields, "price")
	assert.NotContains(t, fields, "duration")
	assert.NotContains(t, fields, "instructorId")
	assert.NotContains(t, fields, "instructorDetails")
}

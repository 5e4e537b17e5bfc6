package policy

import (
	"lms_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func student(id uint) *Actor { return &Actor{ID: id, Role: model.Student} }
func teacher(id uint) *Actor { return &Actor{ID: id, Role: model.Teacher} }
func admin(id uint) *Actor   { return &Actor{ID: id, Role: model.Admin} }

func courseOf(instructorID uint) *model.Course {
	c := &model.Course{InstructorID: instructorID}
	c.ID = 10
	return c
}

func questionBy(userID uint) *model.QuestionAnswer {
	q := &model.QuestionAnswer{UserID: userID, LessonID: 5}
	q.ID = 7
	return q
}

func TestCanViewUser(t *testing.T) {
	assert.True(t, CanViewUser(admin(1), 7).Allowed)
	assert.True(t, CanViewUser(student(7), 7).Allowed)
	assert.True(t, CanViewUser(teacher(7), 7).Allowed)

	tests := []struct {
		name  string
		actor *Actor
	}{
		{"anonymous", nil},
		{"other student", student(42)},
		{"other teacher", teacher(42)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := CanViewUser(tt.actor, 7)
			assert.False(t, d.Allowed)
			assert.Equal(t, ReasonSelfOnly, d.Reason)
		})
	}
}

func TestCanCreateCategory(t *testing.T) {
	assert.True(t, CanCreateCategory(admin(1)).Allowed)

	for name, actor := range map[string]*Actor{
		"anonymous": nil,
		"student":   student(2),
		"teacher":   teacher(3),
	} {
		t.Run(name, func(t *testing.T) {
			d := CanCreateCategory(actor)
			assert.False(t, d.Allowed)
			assert.Equal(t, ReasonAdminOnly, d.Reason)
		})
	}
}

func TestCanCreateCourse(t *testing.T) {
	assert.True(t, CanCreateCourse(teacher(1)).Allowed)

	tests := []struct {
		name   string
		actor  *Actor
		reason string
	}{
		{"anonymous", nil, ReasonTeacherOnly},
		{"student", student(2), ReasonTeacherOnly},
		{"admin", admin(3), ReasonTeacherOnly},
		{"unknown role", &Actor{ID: 4, Role: model.UserRole("bot")}, ReasonUnknownRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := CanCreateCourse(tt.actor)
			assert.False(t, d.Allowed)
			assert.Equal(t, tt.reason, d.Reason)
		})
	}
}

func TestCanModifyCourse(t *testing.T) {
	course := courseOf(1)

	assert.True(t, CanModifyCourse(teacher(1), course).Allowed)

	tests := []struct {
		name  string
		actor *Actor
	}{
		{"anonymous", nil},
		{"other teacher", teacher(2)},
		{"student", student(1)}, // same id, wrong role
		{"admin", admin(3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := CanModifyCourse(tt.actor, course)
			assert.False(t, d.Allowed)
			assert.Equal(t, ReasonCourseOwnerOnly, d.Reason)
		})
	}
}

func TestCourseDetailProjection(t *testing.T) {
	course := courseOf(1)

	tests := []struct {
		name     string
		actor    *Actor
		enrolled bool
		want     CourseProjection
	}{
		{"owner", teacher(1), false, ProjectionFull},
		{"admin", admin(2), false, ProjectionFull},
		{"enrolled student", student(3), true, ProjectionFull},
		{"unenrolled student", student(3), false, ProjectionPublic},
		{"other teacher", teacher(4), false, ProjectionPublic},
		{"anonymous", nil, false, ProjectionPublic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CourseDetailProjection(tt.actor, course, tt.enrolled))
		})
	}
}

func TestCanViewCourseContent(t *testing.T) {
	course := courseOf(1)

	assert.True(t, CanViewCourseContent(teacher(1), course, false).Allowed)
	assert.True(t, CanViewCourseContent(admin(2), course, false).Allowed)
	assert.True(t, CanViewCourseContent(student(3), course, true).Allowed)

	d := CanViewCourseContent(student(3), course, false)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonNoCourseAccess, d.Reason)

	d = CanViewCourseContent(nil, course, false)
	assert.False(t, d.Allowed)

	d = CanViewCourseContent(teacher(4), course, false)
	assert.False(t, d.Allowed)
}

func TestCanEnroll(t *testing.T) {
	assert.True(t, CanEnroll(student(1)).Allowed)

	tests := []struct {
		name   string
		actor  *Actor
		reason string
	}{
		{"anonymous", nil, ReasonStudentOnly},
		{"teacher", teacher(2), ReasonStudentOnly},
		{"admin", admin(3), ReasonStudentOnly},
		{"unknown role", &Actor{ID: 4, Role: model.UserRole("bot")}, ReasonUnknownRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := CanEnroll(tt.actor)
			assert.False(t, d.Allowed)
			assert.Equal(t, tt.reason, d.Reason)
		})
	}
}

func TestEnrollmentListScope(t *testing.T) {
	assert.Equal(t, ScopeAll, EnrollmentListScope(admin(1)))
	assert.Equal(t, ScopeOwnCourses, EnrollmentListScope(teacher(2)))
	assert.Equal(t, ScopeSelf, EnrollmentListScope(student(3)))
	assert.Equal(t, ScopeNone, EnrollmentListScope(nil))
	assert.Equal(t, ScopeNone, EnrollmentListScope(&Actor{ID: 4, Role: model.UserRole("bot")}))
}

func TestCanAskQuestion(t *testing.T) {
	assert.True(t, CanAskQuestion(student(1), true).Allowed)

	d := CanAskQuestion(student(1), false)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonNotEnrolled, d.Reason)

	// Even enrolled-looking facts never open the door for other roles.
	for name, actor := range map[string]*Actor{
		"teacher": teacher(2),
		"admin":   admin(3),
	} {
		t.Run(name, func(t *testing.T) {
			d := CanAskQuestion(actor, true)
			assert.False(t, d.Allowed)
			assert.Equal(t, ReasonStudentOnly, d.Reason)
		})
	}

	d = CanAskQuestion(nil, true)
	assert.False(t, d.Allowed)
}

func TestCanViewQuestion(t *testing.T) {
	course := courseOf(1)
	q := questionBy(3)

	assert.True(t, CanViewQuestion(teacher(1), course, q, false).Allowed)
	assert.True(t, CanViewQuestion(admin(2), course, q, false).Allowed)
	assert.True(t, CanViewQuestion(student(5), course, q, true).Allowed)

	// The asker keeps read access even after the enrollment lapses.
	assert.True(t, CanViewQuestion(student(3), course, q, false).Allowed)

	d := CanViewQuestion(student(6), course, q, false)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonNoCourseAccess, d.Reason)
}

func TestQuestionUpdateScope(t *testing.T) {
	course := courseOf(1)
	q := questionBy(3)

	t.Run("asker edits question only", func(t *testing.T) {
		scope, d := QuestionUpdateScope(student(3), course, q)
		assert.True(t, d.Allowed)
		assert.True(t, scope.Question)
		assert.False(t, scope.Answer)
	})

	t.Run("owner edits answer only", func(t *testing.T) {
		scope, d := QuestionUpdateScope(teacher(1), course, q)
		assert.True(t, d.Allowed)
		assert.False(t, scope.Question)
		assert.True(t, scope.Answer)
	})

	t.Run("admin has no field rights", func(t *testing.T) {
		_, d := QuestionUpdateScope(admin(2), course, q)
		assert.False(t, d.Allowed)
		assert.Equal(t, ReasonNoQuestionRight, d.Reason)
	})

	t.Run("unrelated student denied", func(t *testing.T) {
		_, d := QuestionUpdateScope(student(9), course, q)
		assert.False(t, d.Allowed)
	})

	t.Run("anonymous denied", func(t *testing.T) {
		_, d := QuestionUpdateScope(nil, course, q)
		assert.False(t, d.Allowed)
	})
}

func TestCanDeleteQuestion(t *testing.T) {
	course := courseOf(1)
	q := questionBy(3)

	assert.True(t, CanDeleteQuestion(student(3), course, q).Allowed)
	assert.True(t, CanDeleteQuestion(teacher(1), course, q).Allowed)
	assert.True(t, CanDeleteQuestion(admin(2), course, q).Allowed)

	d := CanDeleteQuestion(student(9), course, q)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonNoQuestionRight, d.Reason)

	d = CanDeleteQuestion(teacher(8), course, q)
	assert.False(t, d.Allowed)
}

func TestDenialsAlwaysCarryAReason(t *testing.T) {
	course := courseOf(1)
	q := questionBy(3)

	decisions := []Decision{
		CanViewUser(student(2), 7),
		CanCreateCategory(nil),
		CanCreateCourse(student(2)),
		CanModifyCourse(teacher(2), course),
		CanViewCourseContent(nil, course, false),
		CanEnroll(teacher(2)),
		CanAskQuestion(student(2), false),
		CanViewQuestion(student(6), course, q, false),
		CanDeleteQuestion(student(6), course, q),
	}
	for _, d := range decisions {
		assert.False(t, d.Allowed)
		assert.NotEmpty(t, d.Reason)
	}
}

// Package policy holds the access decisions for course content. Every
// function is a pure computation over the actor, the target resource and
// precomputed relation facts; callers look up enrollment state and pass it
// in, so nothing here ever touches the store.
package policy

import (
	"lms_backend/internal/model"
)

// Actor is the authenticated identity behind a request. A nil *Actor is an
// anonymous visitor.
type Actor struct {
	ID   uint
	Role model.UserRole
}

// Decision is the outcome of a policy check. A denial always carries a
// reason code; it is never an error.
type Decision struct {
	Allowed bool
	Reason  string
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Denial reason codes surfaced to handlers as "Forbidden:<reason>".
const (
	ReasonAdminOnly       = "admin_only"
	ReasonTeacherOnly     = "teacher_only"
	ReasonStudentOnly     = "student_only"
	ReasonCourseOwnerOnly = "course_owner_only"
	ReasonNotEnrolled     = "not_enrolled"
	ReasonNoCourseAccess  = "no_course_access"
	ReasonNotAsker        = "not_asker"
	ReasonNoQuestionRight = "no_question_right"
	ReasonSelfOnly        = "self_only"
	ReasonUnknownRole     = "unknown_role"
)

// IsAdmin reports whether the actor holds the admin role.
func IsAdmin(a *Actor) bool {
	return a != nil && a.Role == model.Admin
}

// IsOwner reports whether the actor is the teacher who owns the course.
func IsOwner(a *Actor, course *model.Course) bool {
	return a != nil && a.Role == model.Teacher && a.ID == course.InstructorID
}

// IsAsker reports whether the actor authored the question.
func IsAsker(a *Actor, q *model.QuestionAnswer) bool {
	return a != nil && a.ID == q.UserID
}

// CanViewUser allows admins to read any user record and everyone else
// only their own.
func CanViewUser(a *Actor, userID uint) Decision {
	if IsAdmin(a) || (a != nil && a.ID == userID) {
		return Allow()
	}
	return Deny(ReasonSelfOnly)
}

// CanCreateCategory allows admins only.
func CanCreateCategory(a *Actor) Decision {
	if IsAdmin(a) {
		return Allow()
	}
	return Deny(ReasonAdminOnly)
}

// CanCreateCourse allows teachers only. Admins provision categories and
// users but never own courses.
func CanCreateCourse(a *Actor) Decision {
	if a == nil {
		return Deny(ReasonTeacherOnly)
	}
	switch a.Role {
	case model.Teacher:
		return Allow()
	case model.Admin, model.Student:
		return Deny(ReasonTeacherOnly)
	default:
		return Deny(ReasonUnknownRole)
	}
}

// CanModifyCourse allows the owning teacher to update or delete the course.
func CanModifyCourse(a *Actor, course *model.Course) Decision {
	if IsOwner(a, course) {
		return Allow()
	}
	return Deny(ReasonCourseOwnerOnly)
}

// CourseProjection selects which field set a course detail read returns.
type CourseProjection int

const (
	// ProjectionPublic is the reduced marketing view returned instead of a
	// hard denial.
	ProjectionPublic CourseProjection = iota
	ProjectionFull
)

// CourseDetailProjection degrades to the public projection for viewers who
// are neither the owner, an admin, nor an enrolled student.
func CourseDetailProjection(a *Actor, course *model.Course, enrolled bool) CourseProjection {
	if IsOwner(a, course) || IsAdmin(a) || enrolled {
		return ProjectionFull
	}
	return ProjectionPublic
}

// CanViewCourseContent gates lessons, materials and question listings of a
// course: owner, admin or actively enrolled student.
func CanViewCourseContent(a *Actor, course *model.Course, enrolled bool) Decision {
	if IsOwner(a, course) || IsAdmin(a) || enrolled {
		return Allow()
	}
	return Deny(ReasonNoCourseAccess)
}

// CanEnroll allows students only. Duplicate-enrollment protection lives in
// the store's unique index, not here.
func CanEnroll(a *Actor) Decision {
	if a == nil {
		return Deny(ReasonStudentOnly)
	}
	switch a.Role {
	case model.Student:
		return Allow()
	case model.Teacher, model.Admin:
		return Deny(ReasonStudentOnly)
	default:
		return Deny(ReasonUnknownRole)
	}
}

// ListScope narrows an enrollment listing to what the actor may see.
type ListScope int

const (
	ScopeNone ListScope = iota
	ScopeAll             // admin: everything, optionally filtered
	ScopeOwnCourses      // teacher: enrollments of own courses only
	ScopeSelf            // student: own enrollments only
)

// EnrollmentListScope maps the actor's role to its listing scope.
func EnrollmentListScope(a *Actor) ListScope {
	if a == nil {
		return ScopeNone
	}
	switch a.Role {
	case model.Admin:
		return ScopeAll
	case model.Teacher:
		return ScopeOwnCourses
	case model.Student:
		return ScopeSelf
	default:
		return ScopeNone
	}
}

// CanAskQuestion allows enrolled students only.
func CanAskQuestion(a *Actor, enrolled bool) Decision {
	if a == nil {
		return Deny(ReasonStudentOnly)
	}
	switch a.Role {
	case model.Student:
		if !enrolled {
			return Deny(ReasonNotEnrolled)
		}
		return Allow()
	case model.Teacher, model.Admin:
		return Deny(ReasonStudentOnly)
	default:
		return Deny(ReasonUnknownRole)
	}
}

// CanViewQuestion adds the asker to the usual course-content audience.
func CanViewQuestion(a *Actor, course *model.Course, q *model.QuestionAnswer, enrolled bool) Decision {
	if IsOwner(a, course) || IsAdmin(a) || enrolled || IsAsker(a, q) {
		return Allow()
	}
	return Deny(ReasonNoCourseAccess)
}

// UpdateScope says which question fields the actor may change.
type UpdateScope struct {
	Question bool
	Answer   bool
}

// QuestionUpdateScope gates updates field by field: the asker may change
// only the question text, the owning teacher only the answer text, and both
// only when both relations hold.
func QuestionUpdateScope(a *Actor, course *model.Course, q *model.QuestionAnswer) (UpdateScope, Decision) {
	asker := IsAsker(a, q)
	owner := IsOwner(a, course)

	if !asker && !owner {
		return UpdateScope{}, Deny(ReasonNoQuestionRight)
	}
	return UpdateScope{Question: asker, Answer: owner}, Allow()
}

// CanDeleteQuestion allows the asker, the owning teacher or an admin.
func CanDeleteQuestion(a *Actor, course *model.Course, q *model.QuestionAnswer) Decision {
	if IsAsker(a, q) || IsOwner(a, course) || IsAdmin(a) {
		return Allow()
	}
	return Deny(ReasonNoQuestionRight)
}

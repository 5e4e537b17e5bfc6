package service

import (
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/policy"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"gorm.io/gorm"
)

type EnrollmentService struct {
	EnrollmentRepo *repository.EnrollmentRepository
	CourseRepo     *repository.CourseRepository
}

func NewEnrollmentService(enrollmentRepo *repository.EnrollmentRepository, courseRepo *repository.CourseRepository) *EnrollmentService {
	return &EnrollmentService{
		EnrollmentRepo: enrollmentRepo,
		CourseRepo:     courseRepo,
	}
}

// Enroll registers the acting student in a course. Uniqueness is enforced
// by the store's composite index, so concurrent requests for the same pair
// end with exactly one success; the loser gets ErrAlreadyEnrolled.
func (s *EnrollmentService) Enroll(actor *policy.Actor, courseID uint) (*model.Enrollment, error) {
	if decision := policy.CanEnroll(actor); !decision.Allowed {
		return nil, util.Forbidden(decision.Reason)
	}

	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	enrollment := &model.Enrollment{
		StudentID: actor.ID,
		CourseID:  course.ID,
		Status:    model.EnrollmentActive,
		Price:     course.Price,
	}

	if err := s.EnrollmentRepo.Create(enrollment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrAlreadyEnrolled
		}
		return nil, err
	}

	return s.EnrollmentRepo.FindByID(enrollment.ID)
}

// List applies the role scope: admins see everything (optionally
// filtered), teachers only enrollments of their own courses, students only
// their own.
func (s *EnrollmentService) List(actor *policy.Actor, filter repository.EnrollmentFilter) ([]model.Enrollment, error) {
	switch policy.EnrollmentListScope(actor) {
	case policy.ScopeAll:
		return s.EnrollmentRepo.List(filter)

	case policy.ScopeOwnCourses:
		if filter.CourseID != 0 {
			course, err := s.CourseRepo.FindByID(filter.CourseID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, util.ErrNotFound
				}
				return nil, err
			}
			if decision := policy.CanModifyCourse(actor, course); !decision.Allowed {
				return nil, util.Forbidden(decision.Reason)
			}
			return s.EnrollmentRepo.List(repository.EnrollmentFilter{CourseID: course.ID})
		}
		return s.EnrollmentRepo.ListByInstructor(actor.ID)

	case policy.ScopeSelf:
		return s.EnrollmentRepo.List(repository.EnrollmentFilter{StudentID: actor.ID})

	default:
		return nil, util.ErrUnauthenticated
	}
}

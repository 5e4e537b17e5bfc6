package service

import (
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/policy"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"gorm.io/gorm"
)

// LessonInput carries the writable lesson fields.
type LessonInput struct {
	Title       string
	Description string
	Position    int
	IsActive    bool
	CourseID    uint
}

type LessonService struct {
	LessonRepo     *repository.LessonRepository
	CourseRepo     *repository.CourseRepository
	EnrollmentRepo *repository.EnrollmentRepository
}

func NewLessonService(lessonRepo *repository.LessonRepository, courseRepo *repository.CourseRepository, enrollmentRepo *repository.EnrollmentRepository) *LessonService {
	return &LessonService{
		LessonRepo:     lessonRepo,
		CourseRepo:     courseRepo,
		EnrollmentRepo: enrollmentRepo,
	}
}

func (s *LessonService) isEnrolled(actor *policy.Actor, courseID uint) (bool, error) {
	if actor == nil || actor.Role != model.Student {
		return false, nil
	}
	return s.EnrollmentRepo.ExistsActive(actor.ID, courseID)
}

func (s *LessonService) findCourse(id uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}
	return course, nil
}

func (s *LessonService) findLesson(id uint) (*model.Lesson, error) {
	lesson, err := s.LessonRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}
	return lesson, nil
}

// ListByCourse is restricted to the course owner, admins and enrolled
// students; lessons come back in position order.
func (s *LessonService) ListByCourse(actor *policy.Actor, courseID uint) ([]model.Lesson, error) {
	course, err := s.findCourse(courseID)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.isEnrolled(actor, course.ID)
	if err != nil {
		return nil, err
	}
	if decision := policy.CanViewCourseContent(actor, course, enrolled); !decision.Allowed {
		return nil, util.Forbidden(decision.Reason)
	}

	return s.LessonRepo.ListByCourse(course.ID)
}

func (s *LessonService) Get(actor *policy.Actor, id uint) (*model.Lesson, error) {
	lesson, err := s.findLesson(id)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.isEnrolled(actor, lesson.CourseID)
	if err != nil {
		return nil, err
	}
	if decision := policy.CanViewCourseContent(actor, &lesson.Course, enrolled); !decision.Allowed {
		return nil, util.Forbidden(decision.Reason)
	}

	return lesson, nil
}

func validateLessonInput(input LessonInput) error {
	errs := util.ValidationErrors{}
	if input.Title == "" {
		errs["title"] = "this field is required"
	}
	if input.CourseID == 0 {
		errs["courseId"] = "this field is required"
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (s *LessonService) Create(actor *policy.Actor, input LessonInput) (*model.Lesson, error) {
	if err := validateLessonInput(input); err != nil {
		return nil, err
	}

	course, err := s.findCourse(input.CourseID)
	if err != nil {
		return nil, err
	}

	if decision := policy.CanModifyCourse(actor, course); !decision.Allowed {
		return nil, util.Forbidden(decision.Reason)
	}

	lesson := &model.Lesson{
		Title:       input.Title,
		Description: input.Description,
		Position:    input.Position,
		IsActive:    input.IsActive,
		CourseID:    course.ID,
	}
	if err := s.LessonRepo.Create(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *LessonService) Update(actor *policy.Actor, id uint, input LessonInput) (*model.Lesson, error) {
	lesson, err := s.findLesson(id)
	if err != nil {
		return nil, err
	}

	if decision := policy.CanModifyCourse(actor, &lesson.Course); !decision.Allowed {
		return nil, util.Forbidden(decision.Reason)
	}

	if input.Title == "" {
		return nil, util.ValidationErrors{"title": "this field is required"}
	}

	lesson.Title = input.Title
	lesson.Description = input.Description
	lesson.Position = input.Position
	lesson.IsActive = input.IsActive

	if err := s.LessonRepo.Update(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

// SetVideo records the uploaded video URL and its probed duration.
func (s *LessonService) SetVideo(actor *policy.Actor, id uint, videoURL string, duration float64) (*model.Lesson, error) {
	lesson, err := s.findLesson(id)
	if err != nil {
		return nil, err
	}

	if decision := policy.CanModifyCourse(actor, &lesson.Course); !decision.Allowed {
		return nil, util.Forbidden(decision.Reason)
	}

	lesson.Video = videoURL
	lesson.VideoDuration = duration

	if err := s.LessonRepo.Update(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

// Delete removes the lesson and cascades to its materials and questions.
func (s *LessonService) Delete(actor *policy.Actor, id uint) error {
	lesson, err := s.findLesson(id)
	if err != nil {
		return err
	}

	if decision := policy.CanModifyCourse(actor, &lesson.Course); !decision.Allowed {
		return util.Forbidden(decision.Reason)
	}

	return s.LessonRepo.DeleteCascade(lesson.ID)
}

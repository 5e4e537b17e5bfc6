package service

import (
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/policy"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"gorm.io/gorm"
)

// MaterialInput carries the writable material fields.
type MaterialInput struct {
	Title       string
	Description string
	FileType    string
	IsActive    bool
	LessonID    uint
}

type MaterialService struct {
	MaterialRepo   *repository.MaterialRepository
	LessonRepo     *repository.LessonRepository
	EnrollmentRepo *repository.EnrollmentRepository
}

func NewMaterialService(materialRepo *repository.MaterialRepository, lessonRepo *repository.LessonRepository, enrollmentRepo *repository.EnrollmentRepository) *MaterialService {
	return &MaterialService{
		MaterialRepo:   materialRepo,
		LessonRepo:     lessonRepo,
		EnrollmentRepo: enrollmentRepo,
	}
}

func (s *MaterialService) isEnrolled(actor *policy.Actor, courseID uint) (bool, error) {
	if actor == nil || actor.Role != model.Student {
		return false, nil
	}
	return s.EnrollmentRepo.ExistsActive(actor.ID, courseID)
}

func (s *MaterialService) findLesson(id uint) (*model.Lesson, error) {
	lesson, err := s.LessonRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}
	return lesson, nil
}

func (s *MaterialService) findMaterial(id uint) (*model.Material, error) {
	material, err := s.MaterialRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}
	return material, nil
}

// ListByLesson gates access through the lesson's course: owner, admin or
// enrolled student.
func (s *MaterialService) ListByLesson(actor *policy.Actor, lessonID uint) ([]model.Material, error) {
	lesson, err := s.findLesson(lessonID)
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

	return s.MaterialRepo.ListByLesson(lesson.ID)
}

func (s *MaterialService) Get(actor *policy.Actor, id uint) (*model.Material, error) {
	material, err := s.findMaterial(id)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.isEnrolled(actor, material.Lesson.CourseID)
	if err != nil {
		return nil, err
	}
	if decision := policy.CanViewCourseContent(actor, &material.Lesson.Course, enrolled); !decision.Allowed {
		return nil, util.Forbidden(decision.Reason)
	}

	return material, nil
}

func (s *MaterialService) Create(actor *policy.Actor, input MaterialInput, fileURL string) (*model.Material, error) {
	errs := util.ValidationErrors{}
	if input.Title == "" {
		errs["title"] = "this field is required"
	}
	if input.LessonID == 0 {
		errs["lessonId"] = "this field is required"
	}
	if len(errs) > 0 {
		return nil, errs
	}

	lesson, err := s.findLesson(input.LessonID)
	if err != nil {
		return nil, err
	}

	if decision := policy.CanModifyCourse(actor, &lesson.Course); !decision.Allowed {
		return nil, util.Forbidden(decision.Reason)
	}

	material := &model.Material{
		Title:       input.Title,
		Description: input.Description,
		FileType:    input.FileType,
		File:        fileURL,
		IsActive:    input.IsActive,
		LessonID:    lesson.ID,
	}
	if err := s.MaterialRepo.Create(material); err != nil {
		return nil, err
	}
	return material, nil
}

func (s *MaterialService) Update(actor *policy.Actor, id uint, input MaterialInput) (*model.Material, error) {
	material, err := s.findMaterial(id)
	if err != nil {
		return nil, err
	}

	if decision := policy.CanModifyCourse(actor, &material.Lesson.Course); !decision.Allowed {
		return nil, util.Forbidden(decision.Reason)
	}

	if input.Title == "" {
		return nil, util.ValidationErrors{"title": "this field is required"}
	}

	material.Title = input.Title
	material.Description = input.Description
	material.FileType = input.FileType
	material.IsActive = input.IsActive

	if err := s.MaterialRepo.Update(material); err != nil {
		return nil, err
	}
	return material, nil
}

func (s *MaterialService) Delete(actor *policy.Actor, id uint) error {
	material, err := s.findMaterial(id)
	if err != nil {
		return err
	}

	if decision := policy.CanModifyCourse(actor, &material.Lesson.Course); !decision.Allowed {
		return util.Forbidden(decision.Reason)
	}

	return s.MaterialRepo.Delete(material.ID)
}

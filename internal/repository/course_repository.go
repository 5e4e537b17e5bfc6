package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

// CourseFilter holds the data-layer filters for course listings. These are
// plain query narrowing, not access policy.
type CourseFilter struct {
	CategoryID   uint
	InstructorID uint
	Search       string
	Page         int
	Limit        int
}

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.Preload("Category").Preload("Instructor").First(&course, id).Error
	return &course, err
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Save(course).Error
}

func (r *CourseRepository) List(filter CourseFilter) ([]model.Course, int64, error) {
	var courses []model.Course
	var total int64

	query := r.DB.Model(&model.Course{})
	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.InstructorID != 0 {
		query = query.Where("instructor_id = ?", filter.InstructorID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Category").Preload("Instructor").
		Offset((filter.Page - 1) * filter.Limit).Limit(filter.Limit).
		Order("created_at DESC").
		Find(&courses).Error
	return courses, total, err
}

// DeleteCascade removes the course and all its dependents in one
// transaction: questions and materials of its lessons, the lessons
// themselves, and its enrollments. The schema declares no ON DELETE
// CASCADE, so the steps are explicit.
func (r *CourseRepository) DeleteCascade(courseID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		lessonIDs := tx.Model(&model.Lesson{}).Select("id").Where("course_id = ?", courseID)
		if err := tx.Where("lesson_id IN (?)", lessonIDs).Delete(&model.QuestionAnswer{}).Error; err != nil {
			return err
		}

		lessonIDs = tx.Model(&model.Lesson{}).Select("id").Where("course_id = ?", courseID)
		if err := tx.Where("lesson_id IN (?)", lessonIDs).Delete(&model.Material{}).Error; err != nil {
			return err
		}

		if err := tx.Where("course_id = ?", courseID).Delete(&model.Lesson{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", courseID).Delete(&model.Enrollment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Course{}, courseID).Error
	})
}

package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

// EnrollmentFilter narrows admin enrollment listings.
type EnrollmentFilter struct {
	CourseID  uint
	StudentID uint
}

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

// Create relies on the (student_id, course_id) unique index: under
// concurrent requests for the same pair exactly one insert succeeds and
// the rest fail with gorm.ErrDuplicatedKey.
func (r *EnrollmentRepository) Create(enrollment *model.Enrollment) error {
	return r.DB.Create(enrollment).Error
}

func (r *EnrollmentRepository) FindByID(id uint) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.DB.Preload("Student").Preload("Course").First(&enrollment, id).Error
	return &enrollment, err
}

// ExistsActive reports whether the student holds an active enrollment in
// the course. This is the relation fact the policy evaluator consumes.
func (r *EnrollmentRepository) ExistsActive(studentID, courseID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Enrollment{}).
		Where("student_id = ? AND course_id = ? AND status = ?", studentID, courseID, model.EnrollmentActive).
		Count(&count).Error
	return count > 0, err
}

func (r *EnrollmentRepository) List(filter EnrollmentFilter) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment

	query := r.DB.Preload("Student").Preload("Course")
	if filter.CourseID != 0 {
		query = query.Where("course_id = ?", filter.CourseID)
	}
	if filter.StudentID != 0 {
		query = query.Where("student_id = ?", filter.StudentID)
	}

	err := query.Find(&enrollments).Error
	return enrollments, err
}

// ListByInstructor returns enrollments in any course owned by the teacher.
func (r *EnrollmentRepository) ListByInstructor(instructorID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	courseIDs := r.DB.Model(&model.Course{}).Select("id").Where("instructor_id = ?", instructorID)
	err := r.DB.Preload("Student").Preload("Course").
		Where("course_id IN (?)", courseIDs).
		Find(&enrollments).Error
	return enrollments, err
}

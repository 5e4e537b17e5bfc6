package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(question *model.QuestionAnswer) error {
	return r.DB.Create(question).Error
}

func (r *QuestionRepository) FindByID(id uint) (*model.QuestionAnswer, error) {
	var question model.QuestionAnswer
	err := r.DB.Preload("User").Preload("Lesson").Preload("Lesson.Course").
		First(&question, id).Error
	return &question, err
}

func (r *QuestionRepository) Update(question *model.QuestionAnswer) error {
	return r.DB.Save(question).Error
}

func (r *QuestionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.QuestionAnswer{}, id).Error
}

func (r *QuestionRepository) ListByLesson(lessonID uint) ([]model.QuestionAnswer, error) {
	var questions []model.QuestionAnswer
	err := r.DB.Preload("User").
		Where("lesson_id = ?", lessonID).
		Order("created_at DESC").
		Find(&questions).Error
	return questions, err
}

package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type MaterialRepository struct {
	DB *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) *MaterialRepository {
	return &MaterialRepository{DB: db}
}

func (r *MaterialRepository) Create(material *model.Material) error {
	return r.DB.Create(material).Error
}

func (r *MaterialRepository) FindByID(id uint) (*model.Material, error) {
	var material model.Material
	err := r.DB.Preload("Lesson").Preload("Lesson.Course").First(&material, id).Error
	return &material, err
}

func (r *MaterialRepository) Update(material *model.Material) error {
	return r.DB.Save(material).Error
}

func (r *MaterialRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Material{}, id).Error
}

func (r *MaterialRepository) ListByLesson(lessonID uint) ([]model.Material, error) {
	var materials []model.Material
	err := r.DB.Where("lesson_id = ?", lessonID).Find(&materials).Error
	return materials, err
}

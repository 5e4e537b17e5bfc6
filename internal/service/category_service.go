package service

import (
	"lms_backend/internal/model"
	"lms_backend/internal/policy"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"
)

type CategoryService struct {
	CategoryRepo *repository.CategoryRepository
}

func NewCategoryService(categoryRepo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{CategoryRepo: categoryRepo}
}

// List is public: categories are browsable by anyone.
func (s *CategoryService) List() ([]model.Category, error) {
	return s.CategoryRepo.List()
}

func (s *CategoryService) Create(actor *policy.Actor, title string, isActive bool) (*model.Category, error) {
	if decision := policy.CanCreateCategory(actor); !decision.Allowed {
		return nil, util.Forbidden(decision.Reason)
	}

	if title == "" {
		return nil, util.ValidationErrors{"title": "this field is required"}
	}

	category := &model.Category{
		Title:    title,
		IsActive: isActive,
	}
	if err := s.CategoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

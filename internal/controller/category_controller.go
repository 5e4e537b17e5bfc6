package controller

import (
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	CategoryService *service.CategoryService
}

func NewCategoryController(categoryService *service.CategoryService) *CategoryController {
	return &CategoryController{CategoryService: categoryService}
}

// List godoc
// @Summary List categories
// @Description Public, ordered by title
// @Tags categories
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Category}
// @Router /api/categories [get]
func (c *CategoryController) List(ctx *gin.Context) {
	categories, err := c.CategoryService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, categories)
}

type CreateCategoryRequest struct {
	Title    string `json:"title" binding:"required"`
	IsActive bool   `json:"isActive"`
}

// Create godoc
// @Summary Create a category
// @Description Admin only
// @Tags categories
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body CreateCategoryRequest true "category fields"
// @Success 201 {object} util.Response{data=model.Category}
// @Failure 403 {object} util.Response
// @Router /api/categories [post]
func (c *CategoryController) Create(ctx *gin.Context) {
	var req CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	category, err := c.CategoryService.Create(util.ActorFromContext(ctx), req.Title, req.IsActive)
	if err != nil {
		util.FailFromError(ctx, err)
		return
	}
	util.Created(ctx, category)
}

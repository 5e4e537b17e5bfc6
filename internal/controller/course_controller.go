package controller

import (
	"fmt"
	"lms_backend/internal/repository"
	"lms_backend/internal/service"
	"lms_backend/internal/util"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CourseController struct {
	CourseService  *service.CourseService
	StorageService *service.StorageService
}

func NewCourseController(courseService *service.CourseService, storageService *service.StorageService) *CourseController {
	return &CourseController{
		CourseService:  courseService,
		StorageService: storageService,
	}
}

// List godoc
// @Summary List courses
// @Description Public; teachers see only their own courses
// @Tags courses
// @Produce  json
// @Param   categoryId query int false "filter by category"
// @Param   search query string false "title search"
// @Param   page query int false "page number"
// @Param   limit query int false "page size"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/courses [get]
func (c *CourseController) List(ctx *gin.Context) {
	page, limit := pagination(ctx)
	filter := repository.CourseFilter{
		CategoryID: queryUint(ctx, "categoryId"),
		Search:     ctx.Query("search"),
		Page:       page,
		Limit:      limit,
	}

	courses, total, err := c.CourseService.List(ctx.Request.Context(), util.ActorFromContext(ctx), filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  courses,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// Detail godoc
// @Summary Course detail
// @Description Full record for the owner, admins and enrolled students; a limited public view for everyone else
// @Tags courses
// @Produce  json
// @Param   id path int true "course id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) Detail(ctx *gin.Context) {
	id, ok := paramUint(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	detail, err := c.CourseService.GetDetail(util.ActorFromContext(ctx), id)
	if err != nil {
		util.FailFromError(ctx, err)
		return
	}
	util.Success(ctx, detail)
}

type CourseRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    float64 `json:"duration"`
	IsActive    bool    `json:"isActive"`
	CategoryID  uint    `json:"categoryId" binding:"required"`
}

func (r CourseRequest) toInput() service.CourseInput {
	return service.CourseInput{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Duration:    r.Duration,
		IsActive:    r.IsActive,
		CategoryID:  r.CategoryID,
	}
}

// Create godoc
// @Summary Create a course
// @Description Teacher only; the caller becomes the instructor
// @Tags courses
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body CourseRequest true "course fields"
// @Success 201 {object} util.Response{data=model.Course}
// @Failure 403 {object} util.Response
// @Router /api/courses [post]
func (c *CourseController) Create(ctx *gin.Context) {
	var req CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.Create(ctx.Request.Context(), util.ActorFromContext(ctx), req.toInput())
	if err != nil {
		util.FailFromError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

// Update godoc
// @Summary Update a course
// @Description Restricted to the owning teacher
// @Tags courses
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "course id"
// @Param   body body CourseRequest true "course fields"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [put]
func (c *CourseController) Update(ctx *gin.Context) {
	id, ok := paramUint(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	var req CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.Update(ctx.Request.Context(), util.ActorFromContext(ctx), id, req.toInput())
	if err != nil {
		util.FailFromError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// UploadBanner godoc
// @Summary Upload the course banner image
// @Tags courses
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "course id"
// @Param   banner formData file true "banner image"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 400 {object} util.Response "not an image"
// @Failure 403 {object} util.Response
// @Router /api/courses/{id}/banner [post]
func (c *CourseController) UploadBanner(ctx *gin.Context) {
	id, ok := paramUint(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	fileHeader, err := ctx.FormFile("banner")
	if err != nil {
		util.BadRequest(ctx, "banner file is required")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	mimeType, err := util.ValidateMimeType(src, []string{util.MimeImage})
	src.Close()
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	src, err = fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	filename := fmt.Sprintf("banners/%s%s", uuid.New().String(), filepath.Ext(fileHeader.Filename))
	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, src, fileHeader.Size, mimeType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	course, err := c.CourseService.UpdateBanner(ctx.Request.Context(), util.ActorFromContext(ctx), id, url)
	if err != nil {
		util.FailFromError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// Delete godoc
// @Summary Delete a course
// @Description Removes the course together with its lessons, materials, enrollments and questions
// @Tags courses
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "course id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [delete]
func (c *CourseController) Delete(ctx *gin.Context) {
	id, ok := paramUint(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	if err := c.CourseService.Delete(ctx.Request.Context(), util.ActorFromContext(ctx), id); err != nil {
		util.FailFromError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "course deleted"})
}

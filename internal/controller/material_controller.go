package controller

import (
	"fmt"
	"lms_backend/internal/service"
	"lms_backend/internal/util"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MaterialController struct {
	MaterialService *service.MaterialService
	StorageService  *service.StorageService
}

func NewMaterialController(materialService *service.MaterialService, storageService *service.StorageService) *MaterialController {
	return &MaterialController{
		MaterialService: materialService,
		StorageService:  storageService,
	}
}

// ListByLesson godoc
// @Summary List materials of a lesson
// @Description Owner, admins and enrolled students only
// @Tags materials
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "lesson id"
// @Success 200 {object} util.Response{data=[]model.Material}
// @Failure 403 {object} util.Response
// @Router /api/lessons/{id}/materials [get]
func (c *MaterialController) ListByLesson(ctx *gin.Context) {
	lessonID, ok := paramUint(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid lesson id")
		return
	}

	materials, err := c.MaterialService.ListByLesson(util.ActorFromContext(ctx), lessonID)
	if err != nil {
		util.FailFromError(ctx, err)
		return
	}
	util.Success(ctx, materials)
}

// Get godoc
// @Summary Material detail
// @Tags materials
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "material id"
// @Success 200 {object} util.Response{data=model.Material}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/materials/{id} [get]
func (c *MaterialController) Get(ctx *gin.Context) {
	id, ok := paramUint(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid material id")
		return
	}

	material, err := c.MaterialService.Get(util.ActorFromContext(ctx), id)
	if err != nil {
		util.FailFromError(ctx, err)
		return
	}
	util.Success(ctx, material)
}

// Create godoc
// @Summary Upload a material
// @Description Multipart form with the file plus its metadata fields; restricted to the owning teacher
// @Tags materials
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   file formData file true "material file"
// @Param   title formData string true "title"
// @Param   description formData string false "description"
// @Param   lessonId formData int true "lesson id"
// @Success 201 {object} util.Response{data=model.Material}
// @Failure 403 {object} util.Response
// @Router /api/materials [post]
func (c *MaterialController) Create(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "material file is required")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	mimeType, err := util.ValidateMimeType(src, []string{
		util.MimePDF, util.MimeZip, util.MimeImage, util.MimeText, util.MimeOctetStream,
	})
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

	filename := fmt.Sprintf("materials/%s%s", uuid.New().String(), filepath.Ext(fileHeader.Filename))
	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, src, fileHeader.Size, mimeType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	input := service.MaterialInput{
		Title:       ctx.PostForm("title"),
		Description: ctx.PostForm("description"),
		FileType:    mimeType,
		IsActive:    ctx.DefaultPostForm("isActive", "true") == "true",
		LessonID:    postFormUint(ctx, "lessonId"),
	}

	material, err := c.MaterialService.Create(util.ActorFromContext(ctx), input, url)
	if err != nil {
		util.FailFromError(ctx, err)
		return
	}
	util.Created(ctx, material)
}

type MaterialUpdateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	FileType    string `json:"fileType"`
	IsActive    bool   `json:"isActive"`
}

// Update godoc
// @Summary Update material metadata
// @Tags materials
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "material id"
// @Param   body body MaterialUpdateRequest true "material fields"
// @Success 200 {object} util.Response{data=model.Material}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/materials/{id} [put]
func (c *MaterialController) Update(ctx *gin.Context) {
	id, ok := paramUint(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid material id")
		return
	}

	var req MaterialUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	material, err := c.MaterialService.Update(util.ActorFromContext(ctx), id, service.MaterialInput{
		Title:       req.Title,
		Description: req.Description,
		FileType:    req.FileType,
		IsActive:    req.IsActive,
	})
	if err != nil {
		util.FailFromError(ctx, err)
		return
	}
	util.Success(ctx, material)
}

// Delete godoc
// @Summary Delete a material
// @Tags materials
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "material id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/materials/{id} [delete]
func (c *MaterialController) Delete(ctx *gin.Context) {
	id, ok := paramUint(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid material id")
		return
	}

	if err := c.MaterialService.Delete(util.ActorFromContext(ctx), id); err != nil {
		util.FailFromError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "material deleted"})
}

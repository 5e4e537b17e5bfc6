package controller

import (
	"fmt"
	"lms_backend/internal/service"
	"lms_backend/internal/util"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LessonController struct {
	LessonService  *service.LessonService
	StorageService *service.StorageService
}

func NewLessonController(lessonService *service.LessonService, storageService *service.StorageService) *LessonController {
	return &LessonController{
		LessonService:  lessonService,
		StorageService: storageService,
	}
}

// ListByCourse godoc
// @Summary List lessons of a course
// @Description Owner, admins and enrolled students only; ordered by position
// @Tags lessons
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "course id"
// @Success 200 {object} util.Response{data=[]model.Lesson}
// @Failure 403 {object} util.Response
// @Router /api/courses/{id}/lessons [get]
func (c *LessonController) ListByCourse(ctx *gin.Context) {
	courseID, ok := paramUint(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	lessons, err := c.LessonService.ListByCourse(util.ActorFromContext(ctx), courseID)
	if err != nil {
		util.FailFromError(ctx, err)
		return
	}
	util.Success(ctx, lessons)
}

// Get godoc
// @Summary Lesson detail
// @Tags lessons
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "lesson id"
// @Success 200 {object} util.Response{data=model.Lesson}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/lessons/{id} [get]
func (c *LessonController) Get(ctx *gin.Context) {
	id, ok := paramUint(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid lesson id")
		return
	}

	lesson, err := c.LessonService.Get(util.ActorFromContext(ctx), id)
	if err != nil {
		util.FailFromError(ctx, err)
		return
	}
	util.Success(ctx, lesson)
}

type LessonRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Position    int    `json:"position"`
	IsActive    bool   `json:"isActive"`
	CourseID    uint   `json:"courseId" binding:"required"`
}

func (r LessonRequest) toInput() service.LessonInput {
	return service.LessonInput{
		Title:       r.Title,
		Description: r.Description,
		Position:    r.Position,
		IsActive:    r.IsActive,
		CourseID:    r.CourseID,
	}
}

// Create godoc
// @Summary Create a lesson
// @Description Restricted to the owning teacher of the course
// @Tags lessons
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body LessonRequest true "lesson fields"
// @Success 201 {object} util.Response{data=model.Lesson}
// @Failure 403 {object} util.Response
// @Router /api/lessons [post]
func (c *LessonController) Create(ctx *gin.Context) {
	var req LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.LessonService.Create(util.ActorFromContext(ctx), req.toInput())
	if err != nil {
		util.FailFromError(ctx, err)
		return
	}
	util.Created(ctx, lesson)
}

// Update godoc
// @Summary Update a lesson
// @Tags lessons
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "lesson id"
// @Param   body body LessonRequest true "lesson fields"
// @Success 200 {object} util.Response{data=model.Lesson}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/lessons/{id} [put]
func (c *LessonController) Update(ctx *gin.Context) {
	id, ok := paramUint(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid lesson id")
		return
	}

	var req LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.LessonService.Update(util.ActorFromContext(ctx), id, req.toInput())
	if err != nil {
		util.FailFromError(ctx, err)
		return
	}
	util.Success(ctx, lesson)
}

// UploadVideo godoc
// @Summary Upload the lesson video
// @Description Stores the video and records its probed duration
// @Tags lessons
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "lesson id"
// @Param   video formData file true "video file"
// @Success 200 {object} util.Response{data=model.Lesson}
// @Failure 400 {object} util.Response "not a video"
// @Failure 403 {object} util.Response
// @Router /api/lessons/{id}/video [post]
func (c *LessonController) UploadVideo(ctx *gin.Context) {
	id, ok := paramUint(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid lesson id")
		return
	}

	fileHeader, err := ctx.FormFile("video")
	if err != nil {
		util.BadRequest(ctx, "video file is required")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	mimeType, err := util.ValidateMimeType(src, []string{util.MimeVideo, util.MimeHLS})
	src.Close()
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	// ffprobe needs a file on disk, so the upload lands in a temp file
	// first and only then moves to the storage backend.
	tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(fileHeader.Filename))
	if err := ctx.SaveUploadedFile(fileHeader, tmpPath); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer os.Remove(tmpPath)

	info, err := util.GetVideoInfo(tmpPath)
	if err != nil {
		util.BadRequest(ctx, "unreadable video file")
		return
	}

	filename := fmt.Sprintf("videos/%s%s", uuid.New().String(), filepath.Ext(fileHeader.Filename))
	url, err := c.StorageService.UploadFile(ctx.Request.Context(), filename, tmpPath, mimeType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	lesson, err := c.LessonService.SetVideo(util.ActorFromContext(ctx), id, url, info.Duration)
	if err != nil {
		util.FailFromError(ctx, err)
		return
	}
	util.Success(ctx, lesson)
}

// Delete godoc
// @Summary Delete a lesson
// @Description Removes the lesson together with its materials and questions
// @Tags lessons
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "lesson id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/lessons/{id} [delete]
func (c *LessonController) Delete(ctx *gin.Context) {
	id, ok := paramUint(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid lesson id")
		return
	}

	if err := c.LessonService.Delete(util.ActorFromContext(ctx), id); err != nil {
		util.FailFromError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "lesson deleted"})
}

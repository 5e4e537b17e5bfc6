package controller

import (
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

// ListByLesson godoc
// @Summary List questions of a lesson
// @Description Owner, admins and enrolled students only
// @Tags questions
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "lesson id"
// @Success 200 {object} util.Response{data=[]model.QuestionAnswer}
// @Failure 403 {object} util.Response
// @Router /api/lessons/{id}/questions [get]
func (c *QuestionController) ListByLesson(ctx *gin.Context) {
	lessonID, ok := paramUint(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid lesson id")
		return
	}

	questions, err := c.QuestionService.ListByLesson(util.ActorFromContext(ctx), lessonID)
	if err != nil {
		util.FailFromError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

type AskQuestionRequest struct {
	LessonID uint   `json:"lessonId" binding:"required"`
	Question string `json:"question" binding:"required"`
}

// Ask godoc
// @Summary Ask a question on a lesson
// @Description Restricted to students enrolled in the lesson's course
// @Tags questions
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body AskQuestionRequest true "question"
// @Success 201 {object} util.Response{data=model.QuestionAnswer}
// @Failure 403 {object} util.Response
// @Router /api/questions [post]
func (c *QuestionController) Ask(ctx *gin.Context) {
	var req AskQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuestionService.Ask(util.ActorFromContext(ctx), req.LessonID, req.Question)
	if err != nil {
		util.FailFromError(ctx, err)
		return
	}
	util.Created(ctx, question)
}

// Get godoc
// @Summary Question detail
// @Tags questions
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "question id"
// @Success 200 {object} util.Response{data=model.QuestionAnswer}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/questions/{id} [get]
func (c *QuestionController) Get(ctx *gin.Context) {
	id, ok := paramUint(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid question id")
		return
	}

	question, err := c.QuestionService.Get(util.ActorFromContext(ctx), id)
	if err != nil {
		util.FailFromError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

type UpdateQuestionRequest struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
}

// Update godoc
// @Summary Update a question or its answer
// @Description The asker may edit the question text, the owning teacher the answer; fields outside the caller's scope are ignored
// @Tags questions
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "question id"
// @Param   body body UpdateQuestionRequest true "fields to update"
// @Success 200 {object} util.Response{data=model.QuestionAnswer}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/questions/{id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	id, ok := paramUint(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid question id")
		return
	}

	var req UpdateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuestionService.Update(util.ActorFromContext(ctx), id, service.QuestionUpdateInput{
		Question: req.Question,
		Answer:   req.Answer,
	})
	if err != nil {
		util.FailFromError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

// Delete godoc
// @Summary Delete a question
// @Description Allowed for the asker, the owning teacher and admins
// @Tags questions
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "question id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/questions/{id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	id, ok := paramUint(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid question id")
		return
	}

	if err := c.QuestionService.Delete(util.ActorFromContext(ctx), id); err != nil {
		util.FailFromError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "question deleted"})
}

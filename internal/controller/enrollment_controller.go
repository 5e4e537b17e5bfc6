package controller

import (
	"lms_backend/internal/repository"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	EnrollmentService *service.EnrollmentService
}

func NewEnrollmentController(enrollmentService *service.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{EnrollmentService: enrollmentService}
}

type EnrollRequest struct {
	CourseID uint `json:"courseId" binding:"required"`
}

// Enroll godoc
// @Summary Enroll in a course
// @Description Student only; a second enrollment in the same course answers 409
// @Tags enrollments
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body EnrollRequest true "course to enroll in"
// @Success 201 {object} util.Response{data=model.Enrollment}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response "already enrolled"
// @Router /api/enrollments [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	var req EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	enrollment, err := c.EnrollmentService.Enroll(util.ActorFromContext(ctx), req.CourseID)
	if err != nil {
		util.FailFromError(ctx, err)
		return
	}
	util.Created(ctx, enrollment)
}

// enrollmentFilterFromQuery binds the optional listing filters. The
// student filter only matters for admin listings; narrower scopes pin the
// student id themselves.
func enrollmentFilterFromQuery(ctx *gin.Context) repository.EnrollmentFilter {
	return repository.EnrollmentFilter{
		CourseID:  queryUint(ctx, "courseId"),
		StudentID: queryUint(ctx, "studentId"),
	}
}

// List godoc
// @Summary List enrollments
// @Description Admins see all, teachers those of their own courses, students their own
// @Tags enrollments
// @Produce  json
// @Security BearerAuth
// @Param   courseId query int false "filter by course"
// @Param   studentId query int false "filter by student (admin listings)"
// @Success 200 {object} util.Response{data=[]model.Enrollment}
// @Failure 401 {object} util.Response
// @Router /api/enrollments [get]
func (c *EnrollmentController) List(ctx *gin.Context) {
	enrollments, err := c.EnrollmentService.List(util.ActorFromContext(ctx), enrollmentFilterFromQuery(ctx))
	if err != nil {
		util.FailFromError(ctx, err)
		return
	}
	util.Success(ctx, enrollments)
}

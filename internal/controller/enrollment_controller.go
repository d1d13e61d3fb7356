package controller

import (
	"academy_backend/internal/service"
	"academy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	Service *service.EnrollmentService
}

func NewEnrollmentController(svc *service.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{Service: svc}
}

type enrollReq struct {
	CourseID uint `json:"courseId" binding:"required"`
}

// @Summary Enroll in a course
// @Description Free courses enroll immediately; paid courses create a pending
// @Description participation awaiting payment confirmation.
// @Tags enrollment
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body enrollReq true "course to enroll in"
// @Success 201 {object} util.Response
// @Router /api/enroll [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req enrollReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	participation, err := c.Service.Enroll(ctx.Request.Context(), claims.UserID, req.CourseID)
	if err != nil {
		switch err {
		case util.ErrCourseNotFound:
			util.NotFound(ctx)
		case util.ErrAlreadyEnrolled:
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, participation)
}

// @Summary Enrollment status for a course
// @Tags enrollment
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body enrollReq true "course to check"
// @Success 200 {object} util.Response
// @Router /api/enroll/status [post]
func (c *EnrollmentController) Status(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req enrollReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	courseID := req.CourseID

	status, err := c.Service.Status(ctx.Request.Context(), claims.UserID, courseID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"status": status})
}

// @Summary The caller's enrollments
// @Tags enrollment
// @Security ApiKeyAuth
// @Router /api/enrollments [get]
func (c *EnrollmentController) ListMine(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	participations, err := c.Service.ListByUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, participations)
}

// @Summary Confirm payment for a pending enrollment
// @Tags admin
// @Security ApiKeyAuth
// @Router /api/admin/participations/{id}/paid [post]
func (c *EnrollmentController) MarkPaid(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	participation, err := c.Service.MarkPaid(ctx.Request.Context(), id)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, participation)
}

// @Summary Enrollments for a course
// @Tags instructor
// @Security ApiKeyAuth
// @Router /api/instructor/courses/{id}/enrollments [get]
func (c *EnrollmentController) ListForCourse(ctx *gin.Context) {
	page, limit := pageParams(ctx)
	courseID := util.MustParseUint(ctx.Param("id"))
	participations, total, err := c.Service.ListByCourse(courseID, page, limit, ctx.Query("status"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: participations, Total: total, Page: page, Limit: limit})
}

package controller

import (
	"academy_backend/internal/service"
	"academy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SubmissionController struct {
	Service *service.SubmissionService
}

func NewSubmissionController(svc *service.SubmissionService) *SubmissionController {
	return &SubmissionController{Service: svc}
}

// @Summary Submit exam answers
// @Description Creates a pending submission and queues it for grading. The
// @Description returned record carries status "pending"; poll the submission
// @Description endpoint for the graded result.
// @Tags exams
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.SubmitExamRequest true "answers payload"
// @Success 201 {object} util.Response
// @Router /api/exams/submit [post]
func (c *SubmissionController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SubmitExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	submission, err := c.Service.Submit(claims.UserID, req)
	if err != nil {
		switch err {
		case util.ErrExamNotFound, util.ErrExamNotPublished:
			util.NotFound(ctx)
		case util.ErrRetakesNotAllowed, util.ErrMaxAttemptsReached:
			util.BadRequest(ctx, err.Error())
		default:
			util.BadRequest(ctx, err.Error())
		}
		return
	}
	util.Created(ctx, submission)
}

// @Summary Fetch a single submission
// @Tags exams
// @Security ApiKeyAuth
// @Router /api/submissions/{id} [get]
func (c *SubmissionController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	submission, err := c.Service.GetSubmission(ctx.Param("id"))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	// Students can only read their own results.
	if submission.UserID != claims.UserID && claims.Role == "student" {
		util.Forbidden(ctx)
		return
	}
	util.Success(ctx, submission)
}

// @Summary The caller's submissions, optionally scoped to a course
// @Tags exams
// @Security ApiKeyAuth
// @Router /api/submissions [get]
func (c *SubmissionController) ListMine(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var courseID uint
	if raw := ctx.Query("courseId"); raw != "" {
		courseID = util.MustParseUint(raw)
	}

	submissions, err := c.Service.ListForUser(claims.UserID, courseID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, submissions)
}

// @Summary All submissions for an exam
// @Tags instructor
// @Security ApiKeyAuth
// @Router /api/instructor/exams/{id}/submissions [get]
func (c *SubmissionController) ListForExam(ctx *gin.Context) {
	page, limit := pageParams(ctx)
	submissions, total, err := c.Service.ListForExam(ctx.Param("id"), page, limit, ctx.Query("status"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: submissions, Total: total, Page: page, Limit: limit})
}

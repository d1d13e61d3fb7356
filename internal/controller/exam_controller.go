package controller

import (
	"academy_backend/internal/service"
	"academy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ExamController struct {
	Service *service.ExamService
}

func NewExamController(svc *service.ExamService) *ExamController {
	return &ExamController{Service: svc}
}

// @Summary Create an exam bound to a course
// @Tags instructor
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.ExamReq true "exam payload"
// @Success 201 {object} util.Response
// @Router /api/instructor/exams [post]
func (c *ExamController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ExamReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	exam, err := c.Service.CreateExam(claims.UserID, req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, exam)
}

// @Summary Update an exam and its question set
// @Tags instructor
// @Security ApiKeyAuth
// @Router /api/instructor/exams/{id} [put]
func (c *ExamController) Update(ctx *gin.Context) {
	var req service.ExamReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	exam, err := c.Service.UpdateExam(ctx.Param("id"), req)
	if err != nil {
		if err == util.ErrExamNotFound {
			util.NotFound(ctx)
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, exam)
}

// @Summary Delete an exam
// @Tags instructor
// @Security ApiKeyAuth
// @Router /api/instructor/exams/{id} [delete]
func (c *ExamController) Delete(ctx *gin.Context) {
	if err := c.Service.DeleteExam(ctx.Param("id")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Exam detail with answer keys
// @Tags instructor
// @Security ApiKeyAuth
// @Router /api/instructor/exams/{id} [get]
func (c *ExamController) Get(ctx *gin.Context) {
	exam, err := c.Service.GetExam(ctx.Param("id"))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, exam)
}

// @Summary Instructor's own exams
// @Tags instructor
// @Security ApiKeyAuth
// @Router /api/instructor/exams [get]
func (c *ExamController) ListMine(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	page, limit := pageParams(ctx)
	exams, total, err := c.Service.ListByCreator(claims.UserID, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: exams, Total: total, Page: page, Limit: limit})
}

// @Summary Publish a draft exam
// @Tags instructor
// @Security ApiKeyAuth
// @Router /api/instructor/exams/{id}/publish [post]
func (c *ExamController) Publish(ctx *gin.Context) {
	exam, err := c.Service.Publish(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, exam)
}

// @Summary Archive a published exam
// @Tags instructor
// @Security ApiKeyAuth
// @Router /api/instructor/exams/{id}/archive [post]
func (c *ExamController) Archive(ctx *gin.Context) {
	exam, err := c.Service.Archive(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, exam)
}

// @Summary Student view of a published exam, answer keys stripped
// @Tags exams
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "exam uuid"
// @Success 200 {object} util.Response
// @Router /api/exams/{id} [get]
func (c *ExamController) GetStudentView(ctx *gin.Context) {
	view, err := c.Service.GetStudentView(ctx.Param("id"))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, view)
}

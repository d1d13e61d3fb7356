package controller

import (
	"academy_backend/internal/model"
	"academy_backend/internal/service"
	"academy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CommentController struct {
	Service *service.CommentService
}

func NewCommentController(svc *service.CommentService) *CommentController {
	return &CommentController{Service: svc}
}

// @Summary Post a comment on a lesson
// @Description The comment is stored immediately and its ID is back-filled
// @Description onto the lesson row for legacy readers; failure to back-fill
// @Description never fails the creation.
// @Tags comments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateCommentRequest true "comment payload"
// @Success 201 {object} util.Response
// @Router /api/comments [post]
func (c *CommentController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	comment, err := c.Service.Create(claims.UserID, req)
	if err != nil {
		if err == util.ErrCourseNotFound {
			util.NotFound(ctx)
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, comment)
}

// @Summary Approved comments for a lesson
// @Tags comments
// @Produce json
// @Param courseId query int true "course id"
// @Param lessonId query string true "lesson public id"
// @Success 200 {object} util.Response
// @Router /api/comments [get]
func (c *CommentController) ListForLesson(ctx *gin.Context) {
	courseID := util.MustParseUint(ctx.Query("courseId"))
	lessonRef := ctx.Query("lessonId")
	if courseID == 0 || lessonRef == "" {
		util.BadRequest(ctx, "courseId and lessonId are required")
		return
	}

	comments, err := c.Service.ListForLesson(courseID, lessonRef)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, comments)
}

// @Summary All comments for a course, any status
// @Tags instructor
// @Security ApiKeyAuth
// @Router /api/instructor/courses/{id}/comments [get]
func (c *CommentController) ListForCourse(ctx *gin.Context) {
	page, limit := pageParams(ctx)
	courseID := util.MustParseUint(ctx.Param("id"))
	comments, total, err := c.Service.ListForCourse(courseID, page, limit, ctx.Query("status"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: comments, Total: total, Page: page, Limit: limit})
}

type moderateReq struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

// @Summary Approve or reject a comment
// @Tags instructor
// @Accept json
// @Security ApiKeyAuth
// @Param id path string true "comment uuid"
// @Param body body moderateReq true "new status"
// @Router /api/instructor/comments/{id}/moderate [post]
func (c *CommentController) Moderate(ctx *gin.Context) {
	var req moderateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	comment, err := c.Service.Moderate(ctx.Param("id"), model.CommentStatus(req.Status))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, comment)
}

// @Summary Delete a comment
// @Tags admin
// @Security ApiKeyAuth
// @Router /api/admin/comments/{id} [delete]
func (c *CommentController) Delete(ctx *gin.Context) {
	if err := c.Service.Delete(ctx.Param("id")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

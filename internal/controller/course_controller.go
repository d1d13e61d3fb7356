package controller

import (
	"academy_backend/internal/service"
	"academy_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	Service *service.CourseService
}

func NewCourseController(svc *service.CourseService) *CourseController {
	return &CourseController{Service: svc}
}

func pageParams(ctx *gin.Context) (int, int) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

// @Summary Public course catalog
// @Tags courses
// @Produce json
// @Param page query int false "page"
// @Param limit query int false "page size"
// @Success 200 {object} util.Response
// @Router /api/courses [get]
func (c *CourseController) ListPublic(ctx *gin.Context) {
	page, limit := pageParams(ctx)
	courses, total, err := c.Service.List(page, limit, true)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: courses, Total: total, Page: page, Limit: limit})
}

// @Summary Course detail with sections and lessons
// @Tags courses
// @Produce json
// @Param courseId path int true "course id"
// @Success 200 {object} util.Response
// @Router /api/courses/{courseId} [get]
func (c *CourseController) GetPublic(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("courseId"))
	course, err := c.Service.GetPublished(id)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, course)
}

// @Summary Create a course
// @Tags instructor
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CourseReq true "course payload"
// @Success 201 {object} util.Response
// @Router /api/instructor/courses [post]
func (c *CourseController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CourseReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.Service.Create(claims.UserID, req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, course)
}

// @Summary Update a course
// @Tags instructor
// @Security ApiKeyAuth
// @Router /api/instructor/courses/{id} [put]
func (c *CourseController) Update(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req service.CourseReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.Service.Update(id, req)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, course)
}

// @Summary Delete a course
// @Tags instructor
// @Security ApiKeyAuth
// @Router /api/instructor/courses/{id} [delete]
func (c *CourseController) Delete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if err := c.Service.Delete(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Instructor's own courses
// @Tags instructor
// @Security ApiKeyAuth
// @Router /api/instructor/courses [get]
func (c *CourseController) ListMine(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	courses, err := c.Service.ListByInstructor(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// @Summary Add a section to a course
// @Tags instructor
// @Security ApiKeyAuth
// @Router /api/instructor/courses/{id}/sections [post]
func (c *CourseController) AddSection(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req service.SectionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	section, err := c.Service.AddSection(id, req)
	if err != nil {
		if err == util.ErrCourseNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, section)
}

// @Summary Delete a section
// @Tags instructor
// @Security ApiKeyAuth
// @Router /api/instructor/sections/{id} [delete]
func (c *CourseController) DeleteSection(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if err := c.Service.DeleteSection(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Add a lesson to a section
// @Tags instructor
// @Security ApiKeyAuth
// @Router /api/instructor/sections/{id}/lessons [post]
func (c *CourseController) AddLesson(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req service.LessonReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.Service.AddLesson(id, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, lesson)
}

// @Summary Update a lesson
// @Tags instructor
// @Security ApiKeyAuth
// @Router /api/instructor/lessons/{id} [put]
func (c *CourseController) UpdateLesson(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req service.LessonReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.Service.UpdateLesson(id, req)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, lesson)
}

// @Summary Delete a lesson
// @Tags instructor
// @Security ApiKeyAuth
// @Router /api/instructor/lessons/{id} [delete]
func (c *CourseController) DeleteLesson(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if err := c.Service.DeleteLesson(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

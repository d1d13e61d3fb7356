package controller

import (
	"academy_backend/internal/service"
	"academy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	Service *service.ContentService
}

func NewContentController(svc *service.ContentService) *ContentController {
	return &ContentController{Service: svc}
}

// @Summary Serve a file from a course's interactive package
// @Description Resolves the requested path inside the course's package root
// @Description and streams the file. Paths escaping the package root are
// @Description rejected.
// @Tags courses
// @Security ApiKeyAuth
// @Param courseId path int true "course id"
// @Param filepath path string true "file path inside the package"
// @Success 200 {file} binary
// @Router /api/courses/{courseId}/package/{filepath} [get]
func (c *ContentController) ServePackageFile(ctx *gin.Context) {
	courseID := util.MustParseUint(ctx.Param("courseId"))
	requested := ctx.Param("filepath")

	path, err := c.Service.PackageFilePath(courseID, requested)
	if err != nil {
		switch err {
		case util.ErrPathTraversal:
			util.Forbidden(ctx)
		case util.ErrCourseNotFound, util.ErrPackageNotFound:
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.File(path)
}

// @Summary Upload a course attachment
// @Description Stores a document (pdf, word, excel) and returns its URL.
// @Tags instructor
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "document file"
// @Success 201 {object} util.Response
// @Router /api/instructor/attachments [post]
func (c *ContentController) UploadAttachment(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	url, err := c.Service.UploadAttachment(ctx.Request.Context(), claims.UserID, fileHeader)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, gin.H{"url": url})
}

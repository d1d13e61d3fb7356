package controller

import (
	"academy_backend/internal/service"
	"academy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type VideoController struct {
	Service *service.VideoService
}

func NewVideoController(svc *service.VideoService) *VideoController {
	return &VideoController{Service: svc}
}

type secureURLReq struct {
	VideoID uint   `json:"videoId" binding:"required"`
	Bucket  string `json:"bucketName"`
	Quality string `json:"quality"`
}

// @Summary Short-lived presigned playback URL
// @Description Returns a presigned URL valid for a limited window. Repeated
// @Description requests inside the window reuse the cached URL.
// @Tags videos
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body secureURLReq true "video and optional quality"
// @Success 200 {object} util.Response
// @Router /api/videos/secure-url [post]
func (c *VideoController) SecureURL(ctx *gin.Context) {
	var req secureURLReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.GetSecureURL(ctx.Request.Context(), req.VideoID, req.Bucket, req.Quality)
	if err != nil {
		switch err {
		case util.ErrVideoNotFound:
			util.NotFound(ctx)
		case util.ErrVideoNotReady:
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}

// @Summary Upload a video
// @Description Stores the source object, probes its metadata, and kicks off
// @Description transcoding of the lower renditions.
// @Tags instructor
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param title formData string true "video title"
// @Param file formData file true "video file"
// @Success 201 {object} util.Response
// @Router /api/instructor/videos [post]
func (c *VideoController) Upload(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	title := ctx.PostForm("title")
	if title == "" {
		util.BadRequest(ctx, "title is required")
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	video, err := c.Service.Upload(ctx.Request.Context(), claims.UserID, title, fileHeader)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, video)
}

// @Summary Video metadata
// @Tags videos
// @Security ApiKeyAuth
// @Router /api/videos/{id} [get]
func (c *VideoController) Get(ctx *gin.Context) {
	video, err := c.Service.Get(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, video)
}

// @Summary Instructor's own videos
// @Tags instructor
// @Security ApiKeyAuth
// @Router /api/instructor/videos [get]
func (c *VideoController) ListMine(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	page, limit := pageParams(ctx)
	videos, total, err := c.Service.ListByOwner(claims.UserID, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: videos, Total: total, Page: page, Limit: limit})
}

// @Summary Delete a video and its stored objects
// @Tags instructor
// @Security ApiKeyAuth
// @Router /api/instructor/videos/{id} [delete]
func (c *VideoController) Delete(ctx *gin.Context) {
	if err := c.Service.Delete(ctx.Request.Context(), util.MustParseUint(ctx.Param("id"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

package controller

import (
	"academy_backend/internal/service"
	"academy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Service *service.UserService
}

func NewUserController(svc *service.UserService) *UserController {
	return &UserController{Service: svc}
}

// @Summary List platform users
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param role query string false "filter by role"
// @Success 200 {object} util.Response
// @Router /api/admin/users [get]
func (c *UserController) List(ctx *gin.Context) {
	page, limit := pageParams(ctx)
	users, total, err := c.Service.List(page, limit, ctx.Query("role"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: users, Total: total, Page: page, Limit: limit})
}

type disableReq struct {
	Disabled *bool `json:"disabled" binding:"required"`
}

// @Summary Enable or disable a user account
// @Tags admin
// @Accept json
// @Security ApiKeyAuth
// @Router /api/admin/users/{id}/disable [post]
func (c *UserController) SetDisabled(ctx *gin.Context) {
	var req disableReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.Service.SetDisabled(util.MustParseUint(ctx.Param("id")), *req.Disabled)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, user)
}

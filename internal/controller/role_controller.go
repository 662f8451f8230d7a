package controller

import (
	"ai_interviewer_backend/internal/service"
	"ai_interviewer_backend/internal/util"
	"strings"

	"github.com/gin-gonic/gin"
)

type RoleController struct {
	RoleService *service.RoleService
}

func NewRoleController(roleService *service.RoleService) *RoleController {
	return &RoleController{RoleService: roleService}
}

// CreateRole godoc
// @Summary 新增面试岗位
// @Tags 岗位
// @Accept  json
// @Produce  json
// @Param   body body service.CreateRoleRequest true "岗位信息"
// @Success 201 {object} util.Response "创建成功"
// @Router /api/roles [post]
func (c *RoleController) CreateRole(ctx *gin.Context) {
	var req service.CreateRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		util.BadRequest(ctx, "岗位名称不能为空")
		return
	}

	role, err := c.RoleService.CreateRole(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, role)
}

// ListRoles godoc
// @Summary 岗位列表
// @Tags 岗位
// @Produce  json
// @Success 200 {object} util.Response "查询成功"
// @Router /api/roles [get]
func (c *RoleController) ListRoles(ctx *gin.Context) {
	roles, err := c.RoleService.ListRoles()
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, roles)
}

// GetRole godoc
// @Summary 岗位详情
// @Tags 岗位
// @Produce  json
// @Param   id path string true "岗位ID"
// @Success 200 {object} util.Response "查询成功"
// @Failure 404 {object} util.Response "岗位不存在"
// @Router /api/roles/{id} [get]
func (c *RoleController) GetRole(ctx *gin.Context) {
	role, err := c.RoleService.GetRole(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, role)
}

// DeleteRole godoc
// @Summary 删除岗位
// @Tags 岗位
// @Produce  json
// @Param   id path string true "岗位ID"
// @Success 200 {object} util.Response "删除成功"
// @Router /api/roles/{id} [delete]
func (c *RoleController) DeleteRole(ctx *gin.Context) {
	if err := c.RoleService.DeleteRole(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// CreateConfig godoc
// @Summary 新增出题配置
// @Tags 岗位
// @Accept  json
// @Produce  json
// @Param   body body service.CreateConfigRequest true "配置信息"
// @Success 201 {object} util.Response "创建成功"
// @Failure 404 {object} util.Response "岗位不存在"
// @Router /api/configs [post]
func (c *RoleController) CreateConfig(ctx *gin.Context) {
	var req service.CreateConfigRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	cfg, err := c.RoleService.CreateConfig(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, cfg)
}

// ListConfigs godoc
// @Summary 出题配置列表
// @Tags 岗位
// @Produce  json
// @Success 200 {object} util.Response "查询成功"
// @Router /api/configs [get]
func (c *RoleController) ListConfigs(ctx *gin.Context) {
	cfgs, err := c.RoleService.ListConfigs()
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, cfgs)
}

// GetConfig godoc
// @Summary 出题配置详情
// @Tags 岗位
// @Produce  json
// @Param   id path string true "配置ID"
// @Success 200 {object} util.Response "查询成功"
// @Failure 404 {object} util.Response "配置不存在"
// @Router /api/configs/{id} [get]
func (c *RoleController) GetConfig(ctx *gin.Context) {
	cfg, err := c.RoleService.GetConfig(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, cfg)
}

// DeleteConfig godoc
// @Summary 删除出题配置
// @Tags 岗位
// @Produce  json
// @Param   id path string true "配置ID"
// @Success 200 {object} util.Response "删除成功"
// @Router /api/configs/{id} [delete]
func (c *RoleController) DeleteConfig(ctx *gin.Context) {
	if err := c.RoleService.DeleteConfig(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

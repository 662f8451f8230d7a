package controller

import (
	"ai_interviewer_backend/internal/service"
	"ai_interviewer_backend/internal/util"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// StreamController D-ID 数字人信令代理。上游应答原样透传，
// 状态码和 Content-Type 都不改写，不套统一响应结构。
type StreamController struct {
	StreamService *service.StreamService
}

func NewStreamController(streamService *service.StreamService) *StreamController {
	return &StreamController{StreamService: streamService}
}

func (c *StreamController) ready(ctx *gin.Context) bool {
	if !c.StreamService.Configured() {
		util.Error(ctx, http.StatusServiceUnavailable, "d-id streaming is not configured")
		return false
	}
	return true
}

func (c *StreamController) proxy(ctx *gin.Context, call func(body []byte) (*service.ProxyResult, error)) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := call(body)
	if err != nil {
		util.BadGateway(ctx, err.Error())
		return
	}

	ctx.Data(result.Status, result.ContentType, result.Body)
}

// Create godoc
// @Summary 创建数字人流
// @Description 缺省 presenter_id / driver_id 时注入配置默认值后转发
// @Tags 数字人
// @Accept  json
// @Produce  json
// @Success 200 {object} object "D-ID 原始应答"
// @Failure 502 {object} util.Response "上游不可达"
// @Router /api/stream/create [post]
func (c *StreamController) Create(ctx *gin.Context) {
	if !c.ready(ctx) {
		return
	}
	c.proxy(ctx, func(body []byte) (*service.ProxyResult, error) {
		return c.StreamService.CreateStream(ctx.Request.Context(), body)
	})
}

// SDP godoc
// @Summary 上报 WebRTC answer
// @Tags 数字人
// @Accept  json
// @Param   id path string true "流ID"
// @Router /api/stream/{id}/sdp [post]
func (c *StreamController) SDP(ctx *gin.Context) {
	if !c.ready(ctx) {
		return
	}
	c.proxy(ctx, func(body []byte) (*service.ProxyResult, error) {
		return c.StreamService.SubmitSDP(ctx.Request.Context(), ctx.Param("id"), body)
	})
}

// ICE godoc
// @Summary 上报 ICE candidate
// @Tags 数字人
// @Accept  json
// @Param   id path string true "流ID"
// @Router /api/stream/{id}/ice [post]
func (c *StreamController) ICE(ctx *gin.Context) {
	if !c.ready(ctx) {
		return
	}
	c.proxy(ctx, func(body []byte) (*service.ProxyResult, error) {
		return c.StreamService.SubmitICE(ctx.Request.Context(), ctx.Param("id"), body)
	})
}

// Send godoc
// @Summary 推送播报内容
// @Tags 数字人
// @Accept  json
// @Param   id path string true "流ID"
// @Router /api/stream/{id} [post]
func (c *StreamController) Send(ctx *gin.Context) {
	if !c.ready(ctx) {
		return
	}
	c.proxy(ctx, func(body []byte) (*service.ProxyResult, error) {
		return c.StreamService.SendPayload(ctx.Request.Context(), ctx.Param("id"), body)
	})
}

// Delete godoc
// @Summary 关闭数字人流
// @Tags 数字人
// @Accept  json
// @Param   id path string true "流ID"
// @Router /api/stream/{id} [delete]
func (c *StreamController) Delete(ctx *gin.Context) {
	if !c.ready(ctx) {
		return
	}
	c.proxy(ctx, func(body []byte) (*service.ProxyResult, error) {
		return c.StreamService.DeleteStream(ctx.Request.Context(), ctx.Param("id"), body)
	})
}

// Presenters godoc
// @Summary 可用数字人列表
// @Tags 数字人
// @Produce  json
// @Router /api/presenters [get]
func (c *StreamController) Presenters(ctx *gin.Context) {
	if !c.ready(ctx) {
		return
	}
	result, err := c.StreamService.Presenters(ctx.Request.Context())
	if err != nil {
		util.BadGateway(ctx, err.Error())
		return
	}
	ctx.Data(result.Status, result.ContentType, result.Body)
}

package controller

import (
	"ai_interviewer_backend/internal/service"
	"ai_interviewer_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SpeechController struct {
	SpeechService *service.SpeechService
}

func NewSpeechController(speechService *service.SpeechService) *SpeechController {
	return &SpeechController{SpeechService: speechService}
}

// Token godoc
// @Summary 获取语音识别令牌
// @Description 向 Azure STS 换取短期令牌，命中缓存时不回源
// @Tags 语音
// @Produce  json
// @Success 200 {object} util.Response{data=service.SpeechToken} "签发成功"
// @Failure 503 {object} util.Response "语音服务未配置"
// @Failure 502 {object} util.Response "Azure 签发失败"
// @Router /api/speech/token [get]
func (c *SpeechController) Token(ctx *gin.Context) {
	if !c.SpeechService.Configured() {
		util.Error(ctx, http.StatusServiceUnavailable, "speech service is not configured")
		return
	}

	token, err := c.SpeechService.IssueToken(ctx.Request.Context())
	if err != nil {
		util.BadGateway(ctx, err.Error())
		return
	}
	util.Success(ctx, token)
}

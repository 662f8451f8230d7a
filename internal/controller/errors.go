package controller

import (
	"ai_interviewer_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

// respondError 业务错误到 HTTP 响应的统一映射。
// 解析失败连同 LLM 原文一起返回，方便前端与排障。
func respondError(ctx *gin.Context, err error) {
	var precondition *util.PreconditionError
	var validation *util.ValidationError
	var reconcile *util.ReconcileError
	var gateway *util.GatewayError

	switch {
	case errors.Is(err, util.ErrSessionNotFound),
		errors.Is(err, util.ErrQuestionNotFound),
		errors.Is(err, util.ErrRoleNotFound),
		errors.Is(err, util.ErrConfigNotFound),
		errors.Is(err, util.ErrReportNotFound),
		errors.Is(err, util.ErrNoSessionQuestion):
		util.NotFound(ctx, err.Error())
	case errors.As(err, &precondition):
		util.BadRequest(ctx, precondition.Error())
	case errors.As(err, &validation):
		util.BadRequest(ctx, validation.Error())
	case errors.As(err, &reconcile):
		util.ErrorData(ctx, 400, reconcile.Error(), gin.H{"rawResponse": reconcile.Raw})
	case errors.As(err, &gateway):
		util.BadGateway(ctx, gateway.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

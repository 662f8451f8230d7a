package controller

import (
	"ai_interviewer_backend/internal/service"
	"ai_interviewer_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ReportService *service.ReportService
}

func NewReportController(reportService *service.ReportService) *ReportController {
	return &ReportController{ReportService: reportService}
}

// Get godoc
// @Summary 报告详情
// @Tags 报告
// @Produce  json
// @Param   id path string true "报告ID"
// @Success 200 {object} util.Response "查询成功"
// @Failure 404 {object} util.Response "报告不存在"
// @Router /api/reports/{id} [get]
func (c *ReportController) Get(ctx *gin.Context) {
	report, err := c.ReportService.GetReport(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	decoded, err := c.ReportService.DecodeReport(report)
	if err != nil {
		// 历史数据损坏时退回原文
		util.Success(ctx, report)
		return
	}

	util.Success(ctx, gin.H{
		"id":        report.ID,
		"sessionId": report.SessionID,
		"createdAt": report.CreatedAt,
		"report":    decoded,
	})
}

// Export godoc
// @Summary 导出报告
// @Description 把报告 JSON 写入对象存储并返回访问地址
// @Tags 报告
// @Produce  json
// @Param   id path string true "报告ID"
// @Success 200 {object} util.Response{data=object} "导出成功"
// @Failure 404 {object} util.Response "报告不存在"
// @Router /api/reports/{id}/export [post]
func (c *ReportController) Export(ctx *gin.Context) {
	url, err := c.ReportService.ExportReport(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"url": url})
}

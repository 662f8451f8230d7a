package controller

import (
	"ai_interviewer_backend/internal/service"
	"ai_interviewer_backend/internal/util"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	SessionService *service.SessionService
}

func NewSessionController(sessionService *service.SessionService) *SessionController {
	return &SessionController{SessionService: sessionService}
}

// Create godoc
// @Summary 创建面试会话
// @Description 给定题目列表或出题配置 configId 创建新会话，初始状态 Created
// @Tags 会话
// @Accept  json
// @Produce  json
// @Param   body body service.CreateSessionRequest true "会话参数"
// @Success 201 {object} util.Response{data=object} "创建成功"
// @Failure 400 {object} util.Response "参数错误"
// @Router /api/session/create [post]
func (c *SessionController) Create(ctx *gin.Context) {
	var req service.CreateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sessionID, err := c.SessionService.CreateSession(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"sessionId": sessionID})
}

// Get godoc
// @Summary 会话详情
// @Description 返回会话状态与按 orderNo 升序的全部题目快照
// @Tags 会话
// @Produce  json
// @Param   id path string true "会话ID"
// @Success 200 {object} util.Response "查询成功"
// @Failure 404 {object} util.Response "会话不存在"
// @Router /api/session/{id} [get]
func (c *SessionController) Get(ctx *gin.Context) {
	session, err := c.SessionService.GetSession(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, session)
}

// Delete godoc
// @Summary 删除会话
// @Tags 会话
// @Produce  json
// @Param   id path string true "会话ID"
// @Success 200 {object} util.Response "删除成功"
// @Failure 404 {object} util.Response "会话不存在"
// @Router /api/session/{id} [delete]
func (c *SessionController) Delete(ctx *gin.Context) {
	if err := c.SessionService.DeleteSession(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Randomize godoc
// @Summary 打乱题目顺序
// @Description 对会话题目做洗牌，只交换既有序号
// @Tags 会话
// @Produce  json
// @Param   id path string true "会话ID"
// @Success 200 {object} util.Response "已打乱"
// @Failure 404 {object} util.Response "会话不存在或无题目"
// @Router /api/session/{id}/randomize [post]
func (c *SessionController) Randomize(ctx *gin.Context) {
	if err := c.SessionService.RandomizeOrder(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Start godoc
// @Summary 开始面试
// @Description Created -> Started，其余状态拒绝
// @Tags 会话
// @Produce  json
// @Param   id path string true "会话ID"
// @Success 200 {object} util.Response "已开始"
// @Failure 400 {object} util.Response "状态不允许"
// @Router /api/session/{id}/start [post]
func (c *SessionController) Start(ctx *gin.Context) {
	if err := c.SessionService.Start(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// AnswerRequest 提交答案
type AnswerRequest struct {
	OrderNo    int    `json:"orderNo" binding:"required,min=1"`
	AnswerText string `json:"answerText"`
}

// Answer godoc
// @Summary 提交答案
// @Description 写入答案并尽力评价，评价失败不影响答案落库
// @Tags 会话
// @Accept  json
// @Produce  json
// @Param   id path string true "会话ID"
// @Param   body body AnswerRequest true "答案"
// @Success 200 {object} util.Response{data=object} "评价结果，失败时为 {}"
// @Failure 404 {object} util.Response "题目不存在"
// @Router /api/session/{id}/answer [post]
func (c *SessionController) Answer(ctx *gin.Context) {
	var req AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	evaluationJSON, err := c.SessionService.SubmitAnswer(ctx.Request.Context(), ctx.Param("id"), req.OrderNo, req.AnswerText)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"evaluationJson": json.RawMessage(evaluationJSON)})
}

// Next godoc
// @Summary 下一道未作答题目
// @Description 返回 orderNo 最小的未作答题；全部答完返回 done=true
// @Tags 会话
// @Produce  json
// @Param   id path string true "会话ID"
// @Success 200 {object} util.Response "查询成功"
// @Failure 404 {object} util.Response "会话不存在"
// @Router /api/session/{id}/next [get]
func (c *SessionController) Next(ctx *gin.Context) {
	question, err := c.SessionService.NextQuestion(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	if question == nil {
		util.Success(ctx, gin.H{"done": true})
		return
	}
	util.Success(ctx, gin.H{"done": false, "question": question})
}

// Finish godoc
// @Summary 结束面试
// @Description Started -> Finished，其余状态拒绝
// @Tags 会话
// @Produce  json
// @Param   id path string true "会话ID"
// @Success 200 {object} util.Response "已结束"
// @Failure 400 {object} util.Response "状态不允许"
// @Router /api/session/{id}/finish [post]
func (c *SessionController) Finish(ctx *gin.Context) {
	if err := c.SessionService.Finish(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Report godoc
// @Summary 生成评分报告
// @Description 仅 Finished 会话可生成；LLM 输出解析失败时连同原文返回 400
// @Tags 会话
// @Produce  json
// @Param   id path string true "会话ID"
// @Success 200 {object} util.Response{data=model.ReportJson} "报告"
// @Failure 400 {object} util.Response "状态不允许或输出无法解析"
// @Failure 502 {object} util.Response "LLM 网关错误"
// @Router /api/session/{id}/report [post]
func (c *SessionController) Report(ctx *gin.Context) {
	report, err := c.SessionService.GenerateReport(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, report)
}

// Reports godoc
// @Summary 会话的历史报告
// @Tags 会话
// @Produce  json
// @Param   id path string true "会话ID"
// @Success 200 {object} util.Response "查询成功"
// @Failure 404 {object} util.Response "会话不存在"
// @Router /api/session/{id}/reports [get]
func (c *SessionController) Reports(ctx *gin.Context) {
	reports, err := c.SessionService.ListReports(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, reports)
}

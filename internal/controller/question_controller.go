package controller

import (
	"ai_interviewer_backend/internal/service"
	"ai_interviewer_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

// Generate godoc
// @Summary 生成面试题
// @Description 按岗位、题量和技术题占比调用 LLM 生成结构化面试题
// @Tags 题目
// @Accept  json
// @Produce  json
// @Param   body body service.GenerateRequest true "出题参数"
// @Success 200 {object} util.Response{data=[]service.QuestionPayload} "生成成功"
// @Failure 400 {object} util.Response "参数错误或 LLM 输出无法解析"
// @Failure 502 {object} util.Response "LLM 网关错误"
// @Router /api/questions/generate [post]
func (c *QuestionController) Generate(ctx *gin.Context) {
	var req service.GenerateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	questions, err := c.QuestionService.Generate(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, questions)
}

// Create godoc
// @Summary 新增题库题目
// @Tags 题目
// @Accept  json
// @Produce  json
// @Param   body body service.QuestionPayload true "题目内容"
// @Success 201 {object} util.Response "创建成功"
// @Failure 400 {object} util.Response "题目不合法"
// @Router /api/questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	var payload service.QuestionPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuestionService.Create(payload)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, question)
}

// List godoc
// @Summary 题库列表
// @Tags 题目
// @Produce  json
// @Param   type query string false "题目类型 technical/background"
// @Param   page query int false "页码"
// @Param   limit query int false "每页条数"
// @Success 200 {object} util.Response "查询成功"
// @Router /api/questions [get]
func (c *QuestionController) List(ctx *gin.Context) {
	qType := ctx.Query("type")
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	questions, total, err := c.QuestionService.List(qType, page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"items": questions,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// Delete godoc
// @Summary 删除题库题目
// @Tags 题目
// @Produce  json
// @Param   id path string true "题目ID"
// @Success 200 {object} util.Response "删除成功"
// @Router /api/questions/{id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	if err := c.QuestionService.Delete(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

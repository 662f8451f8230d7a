package service

import (
	"ai_interviewer_backend/internal/model"
	"ai_interviewer_backend/internal/repository"
	"ai_interviewer_backend/pkg/logger"
	"ai_interviewer_backend/pkg/monitoring"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type QuestionService struct {
	questionRepo *repository.QuestionRepository

	// llm 会被配置热更新协程替换，读写都要过锁
	llmMu sync.RWMutex
	llm   LLMClient
}

func NewQuestionService(questionRepo *repository.QuestionRepository, llm LLMClient) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		llm:          llm,
	}
}

// SetLLMClient 配置热更新时替换 LLM 后端
func (s *QuestionService) SetLLMClient(llm LLMClient) {
	s.llmMu.Lock()
	defer s.llmMu.Unlock()
	s.llm = llm
}

func (s *QuestionService) llmClient() LLMClient {
	s.llmMu.RLock()
	defer s.llmMu.RUnlock()
	return s.llm
}

type GenerateRequest struct {
	Role      string `json:"role" binding:"required"`
	Total     int    `json:"total" binding:"required,min=1,max=50"`
	TechRatio int    `json:"techRatio" binding:"min=0,max=100"`
	Save      bool   `json:"save"` // 生成后是否顺手入题库
}

// Generate 出题主链路：提示词 -> 网关 -> 结构恢复。
// 网关失败与恢复失败都原样上抛，由控制器决定响应形态。
func (s *QuestionService) Generate(ctx context.Context, req GenerateRequest) ([]QuestionPayload, error) {
	prompt := BuildQuestionGenPrompt(req.Role, req.Total, req.TechRatio)

	messages := []ChatMessage{
		{Role: "system", Content: "You are a professional interviewer. Generate structured interview questions in valid JSON format only."},
		{Role: "user", Content: prompt},
	}

	llm := s.llmClient()
	start := time.Now()
	response, err := llm.Chat(ctx, messages, DefaultTemperature, GenMaxTokens)
	monitoring.ObserveLLMRequest(llm.Provider(), "generate", err, time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}

	logger.Log.Debug("LLM raw generation response", zap.String("response", response))

	questions, err := ReconcileQuestionList(response)
	if err != nil {
		logger.Log.Warn("Failed to reconcile question list",
			zap.String("role", req.Role), zap.Error(err))
		return nil, err
	}

	if req.Save {
		if err := s.SaveToBank(questions); err != nil {
			// 入库失败不影响出题结果，记下来即可
			logger.Log.Error("Failed to save generated questions", zap.Error(err))
		}
	}

	return questions, nil
}

// SaveToBank 把一批生成结果落进题库
func (s *QuestionService) SaveToBank(payloads []QuestionPayload) error {
	questions := make([]model.Question, len(payloads))
	for i, p := range payloads {
		questions[i] = model.Question{
			Type:           p.Type,
			Difficulty:     p.Difficulty,
			Text:           p.Text,
			Tags:           p.Tags,
			ExpectedPoints: p.ExpectedPoints,
		}
	}
	return s.questionRepo.CreateBatch(questions)
}

func (s *QuestionService) Create(p QuestionPayload) (*model.Question, error) {
	if err := validateQuestions([]QuestionPayload{p}); err != nil {
		return nil, err
	}
	q := &model.Question{
		Type:           p.Type,
		Difficulty:     p.Difficulty,
		Text:           p.Text,
		Tags:           p.Tags,
		ExpectedPoints: p.ExpectedPoints,
	}
	if err := s.questionRepo.Create(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) List(qType string, page, limit int) ([]model.Question, int64, error) {
	return s.questionRepo.List(qType, page, limit)
}

func (s *QuestionService) Delete(id string) error {
	return s.questionRepo.Delete(id)
}

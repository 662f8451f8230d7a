package service

import (
	"ai_interviewer_backend/internal/model"
	"ai_interviewer_backend/internal/repository"
	"ai_interviewer_backend/internal/util"
	"ai_interviewer_backend/pkg/logger"
	"ai_interviewer_backend/pkg/monitoring"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// emptyScoreSentinel 未评价/评价失败时写入的哨兵值，具体来源看 ScoreStatus
const emptyScoreSentinel = "{}"

// SessionService 驱动一场面试的完整生命周期：
// Created -> Started -> (逐题作答/评价) -> Finished -> 报告。
// 状态只进不退，违反前置条件的操作直接拒绝且不产生任何写入。
type SessionService struct {
	sessionRepo *repository.SessionRepository
	reportRepo  *repository.ReportRepository
	roleRepo    *repository.RoleRepository
	questionSvc *QuestionService

	// llm 会被配置热更新协程替换，读写都要过锁
	llmMu sync.RWMutex
	llm   LLMClient

	// 同一会话的操作要串行化，不同会话互不影响
	locks sync.Map // session id -> *sync.Mutex
}

func NewSessionService(
	sessionRepo *repository.SessionRepository,
	reportRepo *repository.ReportRepository,
	roleRepo *repository.RoleRepository,
	questionSvc *QuestionService,
	llm LLMClient,
) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		reportRepo:  reportRepo,
		roleRepo:    roleRepo,
		questionSvc: questionSvc,
		llm:         llm,
	}
}

// SetLLMClient 配置热更新时替换 LLM 后端
func (s *SessionService) SetLLMClient(llm LLMClient) {
	s.llmMu.Lock()
	defer s.llmMu.Unlock()
	s.llm = llm
}

func (s *SessionService) llmClient() LLMClient {
	s.llmMu.RLock()
	defer s.llmMu.RUnlock()
	return s.llm
}

func (s *SessionService) lock(sessionID string) func() {
	v, _ := s.locks.LoadOrStore(sessionID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

type CreateSessionRequest struct {
	Questions []QuestionPayload `json:"questions"`
	ConfigID  string            `json:"configId"`
}

// CreateSession 新会话始于 Created。给了题目就按给定顺序快照成
// 1 开始的连续 order_no；给了 configId 则先按配置出一批题。
func (s *SessionService) CreateSession(ctx context.Context, req CreateSessionRequest) (string, error) {
	questions := req.Questions

	if len(questions) == 0 && req.ConfigID != "" {
		cfg, err := s.roleRepo.FindConfigByID(req.ConfigID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", util.ErrConfigNotFound
			}
			return "", err
		}
		roleName := cfg.Name
		if cfg.Role != nil {
			roleName = cfg.Role.Name
		}
		questions, err = s.questionSvc.Generate(ctx, GenerateRequest{
			Role:      roleName,
			Total:     cfg.TotalQuestions,
			TechRatio: cfg.TechRatio,
		})
		if err != nil {
			return "", err
		}
	}

	session := &model.InterviewSession{Status: model.SessionStatusCreated}

	snapshots := make([]model.SessionQuestion, len(questions))
	for i, q := range questions {
		snapshots[i] = model.SessionQuestion{
			OrderNo:      i + 1,
			QuestionText: q.Text,
			Type:         q.Type,
			Difficulty:   q.Difficulty,
			AnswerText:   "",
			ScoreJson:    emptyScoreSentinel,
			ScoreStatus:  model.ScoreStatusPending,
		}
	}

	if err := s.sessionRepo.CreateWithQuestions(session, snapshots); err != nil {
		return "", err
	}

	logger.Log.Info("Interview session created",
		zap.String("sessionId", session.ID), zap.Int("questions", len(snapshots)))

	return session.ID, nil
}

func (s *SessionService) GetSession(sessionID string) (*model.InterviewSession, error) {
	session, err := s.sessionRepo.FindByIDWithQuestions(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

func (s *SessionService) DeleteSession(sessionID string) error {
	if _, err := s.sessionRepo.FindByID(sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrSessionNotFound
		}
		return err
	}
	return s.sessionRepo.Delete(sessionID)
}

// RandomizeOrder 对会话题目的 order_no 做 Fisher-Yates 洗牌。
// 只交换既有序号，洗完仍是同一组 {1..N}，题面内容原地不动。
func (s *SessionService) RandomizeOrder(sessionID string) error {
	unlock := s.lock(sessionID)
	defer unlock()

	if _, err := s.sessionRepo.FindByID(sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrSessionNotFound
		}
		return err
	}

	questions, err := s.sessionRepo.QuestionsBySession(sessionID)
	if err != nil {
		return err
	}
	if len(questions) == 0 {
		return util.ErrNoSessionQuestion
	}

	for i := len(questions) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		questions[i].OrderNo, questions[j].OrderNo = questions[j].OrderNo, questions[i].OrderNo
	}

	return s.sessionRepo.UpdateOrderNos(questions)
}

// Start Created -> Started
func (s *SessionService) Start(sessionID string) error {
	unlock := s.lock(sessionID)
	defer unlock()

	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrSessionNotFound
		}
		return err
	}

	if session.Status != model.SessionStatusCreated {
		return &util.PreconditionError{Op: "start", Expected: model.SessionStatusCreated, Actual: session.Status}
	}

	now := time.Now()
	session.Status = model.SessionStatusStarted
	session.StartedAt = &now
	return s.sessionRepo.Update(session)
}

// Finish Started -> Finished
func (s *SessionService) Finish(sessionID string) error {
	unlock := s.lock(sessionID)
	defer unlock()

	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrSessionNotFound
		}
		return err
	}

	if session.Status != model.SessionStatusStarted {
		return &util.PreconditionError{Op: "finish", Expected: model.SessionStatusStarted, Actual: session.Status}
	}

	now := time.Now()
	session.Status = model.SessionStatusFinished
	session.EndedAt = &now
	return s.sessionRepo.Update(session)
}

// SubmitAnswer 写入答案并尽力评价。答案写入不受会话状态限制；
// 评价是 best-effort：网关挂了、被取消、输出解析不了，都不影响
// 答案落库，只把 score_json 置成哨兵。同序号并发提交为后写覆盖。
func (s *SessionService) SubmitAnswer(ctx context.Context, sessionID string, orderNo int, answerText string) (string, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	question, err := s.sessionRepo.FindQuestion(sessionID, orderNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", util.ErrQuestionNotFound
		}
		return "", err
	}

	question.AnswerText = answerText

	evaluationJSON := emptyScoreSentinel
	if strings.TrimSpace(answerText) == "" {
		question.ScoreStatus = model.ScoreStatusSkipped
	} else {
		evaluationJSON, question.ScoreStatus = s.evaluateAnswer(ctx, question, answerText)
	}
	question.ScoreJson = evaluationJSON

	if err := s.sessionRepo.SaveQuestion(question); err != nil {
		return "", err
	}

	return evaluationJSON, nil
}

// evaluateAnswer 单题评价子调用，任何失败都吞掉并返回哨兵
func (s *SessionService) evaluateAnswer(ctx context.Context, question *model.SessionQuestion, answerText string) (string, string) {
	prompt := BuildQuestionEvaluationPrompt(question.QuestionText, answerText, question.Type, question.Difficulty)
	messages := []ChatMessage{
		{Role: "system", Content: "You are a professional AI interviewer, skilled at providing detailed evaluation of candidate answers."},
		{Role: "user", Content: prompt},
	}

	llm := s.llmClient()
	start := time.Now()
	response, err := llm.Chat(ctx, messages, DefaultTemperature, DefaultMaxTokens)
	monitoring.ObserveLLMRequest(llm.Provider(), "evaluate", err, time.Since(start).Seconds())
	if err != nil {
		logger.Log.Warn("Answer evaluation failed, storing sentinel",
			zap.String("sessionId", question.SessionID), zap.Int("orderNo", question.OrderNo), zap.Error(err))
		return emptyScoreSentinel, model.ScoreStatusFailed
	}

	if _, err := ReconcileObject[model.AnswerEvaluation](response); err != nil {
		logger.Log.Warn("Answer evaluation unparsable, storing sentinel",
			zap.String("sessionId", question.SessionID), zap.Int("orderNo", question.OrderNo), zap.Error(err))
		return emptyScoreSentinel, model.ScoreStatusFailed
	}

	return strings.TrimSpace(response), model.ScoreStatusEvaluated
}

// NextQuestion 返回 order_no 最小的未作答题目；全部答完返回 nil，这不是错误
func (s *SessionService) NextQuestion(sessionID string) (*model.SessionQuestion, error) {
	if _, err := s.sessionRepo.FindByID(sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSessionNotFound
		}
		return nil, err
	}
	return s.sessionRepo.NextUnanswered(sessionID)
}

// GenerateReport 只允许 Finished 会话出报告。transcript 按 order_no
// 升序渲染全部题目（未作答的也占一行空答案），报告解析失败如实上抛
// 并带上原文，这是用户显式触发的终态操作，允许失败可见。
// 失败路径不落任何报告行。
func (s *SessionService) GenerateReport(ctx context.Context, sessionID string) (*model.ReportJson, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	session, err := s.sessionRepo.FindByIDWithQuestions(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSessionNotFound
		}
		return nil, err
	}

	if session.Status != model.SessionStatusFinished {
		return nil, &util.PreconditionError{Op: "report", Expected: model.SessionStatusFinished, Actual: session.Status}
	}

	transcript := buildTranscript(session.SessionQuestions)

	prompt := BuildReportPrompt(transcript)
	messages := []ChatMessage{
		{Role: "system", Content: "You are a professional AI interviewer, skilled at generating structured interview scoring reports."},
		{Role: "user", Content: prompt},
	}

	llm := s.llmClient()
	start := time.Now()
	response, err := llm.Chat(ctx, messages, DefaultTemperature, GenMaxTokens)
	monitoring.ObserveLLMRequest(llm.Provider(), "report", err, time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}

	report, err := ReconcileObject[model.ReportJson](response)
	if err != nil {
		logger.Log.Warn("Report response unparsable",
			zap.String("sessionId", sessionID), zap.Error(err))
		return nil, err
	}

	row := &model.InterviewReport{
		SessionID:  sessionID,
		ReportJson: strings.TrimSpace(response),
	}
	if err := s.reportRepo.Create(row); err != nil {
		return nil, err
	}

	logger.Log.Info("Interview report generated",
		zap.String("sessionId", sessionID), zap.String("verdict", report.Verdict))

	return report, nil
}

func (s *SessionService) ListReports(sessionID string) ([]model.InterviewReport, error) {
	if _, err := s.sessionRepo.FindByID(sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSessionNotFound
		}
		return nil, err
	}
	return s.reportRepo.ListBySession(sessionID)
}

// buildTranscript 每道题渲染成 "Q{n}: 题面\nA{n}: 答案\n\n"，
// 未作答的题也必须出现，保证报告覆盖完整题序
func buildTranscript(questions []model.SessionQuestion) string {
	var sb strings.Builder
	for _, q := range questions {
		fmt.Fprintf(&sb, "Q%d: %s\n", q.OrderNo, q.QuestionText)
		fmt.Fprintf(&sb, "A%d: %s\n", q.OrderNo, q.AnswerText)
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), " \t\r\n")
}

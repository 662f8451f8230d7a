package model

import "time"

// 会话状态，严格单向：Created -> Started -> Finished
const (
	SessionStatusCreated  = "Created"
	SessionStatusStarted  = "Started"
	SessionStatusFinished = "Finished"
)

// 评分状态，区分 "{}" 哨兵的三种来源
const (
	ScoreStatusPending   = "pending"   // 尚未作答
	ScoreStatusEvaluated = "evaluated" // LLM 评价成功
	ScoreStatusSkipped   = "skipped"   // 空答案，跳过评价
	ScoreStatusFailed    = "failed"    // 评价失败，写入哨兵
)

// InterviewSession 一次完整的模拟面试，持有有序的题目快照
type InterviewSession struct {
	UUIDBase
	Status    string     `gorm:"size:20;not null;default:'Created'" json:"status"`
	StartedAt *time.Time `json:"startedAt,omitempty"`
	EndedAt   *time.Time `json:"endedAt,omitempty"`

	SessionQuestions []SessionQuestion `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"sessionQuestions,omitempty"`
}

func (InterviewSession) TableName() string {
	return "interview_sessions"
}

// SessionQuestion 会话内的题目快照。题面在创建时拷贝自题库，
// 之后题库变动不影响已有会话。AnswerText 为空串表示未作答。
type SessionQuestion struct {
	UUIDBase
	SessionID    string `gorm:"index;type:varchar(36);not null" json:"sessionId"`
	OrderNo      int    `gorm:"not null" json:"orderNo"` // 1 开始，会话内唯一且连续
	QuestionText string `gorm:"type:text;not null" json:"questionText"`
	Type         string `gorm:"size:20;not null" json:"type"`
	Difficulty   int    `gorm:"not null" json:"difficulty"`
	AnswerText   string `gorm:"type:text" json:"answerText"`
	ScoreJson    string `gorm:"type:json;default:'{}'" json:"scoreJson"`
	ScoreStatus  string `gorm:"size:20;default:'pending'" json:"scoreStatus"`
}

func (SessionQuestion) TableName() string {
	return "session_questions"
}

// Answered 空白答案视为未作答
func (q *SessionQuestion) Answered() bool {
	return q.AnswerText != ""
}

// InterviewReport 会话的评分报告，只追加，一个会话可以有多份
type InterviewReport struct {
	UUIDBase
	SessionID  string `gorm:"index;type:varchar(36);not null" json:"sessionId"`
	ReportJson string `gorm:"type:json;default:'{}'" json:"reportJson"`

	Session *InterviewSession `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"-"`
}

func (InterviewReport) TableName() string {
	return "interview_reports"
}

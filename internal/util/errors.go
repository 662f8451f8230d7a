package util

import (
	"errors"
	"fmt"
)

var (
	ErrSessionNotFound   = errors.New("interview session not found")
	ErrQuestionNotFound  = errors.New("session question not found")
	ErrRoleNotFound      = errors.New("role not found")
	ErrConfigNotFound    = errors.New("interview config not found")
	ErrReportNotFound    = errors.New("interview report not found")
	ErrNoSessionQuestion = errors.New("no interview questions found")
)

// GatewayError LLM 后端的网络/超时/非 2xx 失败。网关内部不做重试，
// 由调用方决定当前操作如何收场。
type GatewayError struct {
	Provider string
	Status   int // 0 表示请求根本没有到达后端
	Err      error
}

func (e *GatewayError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("llm gateway %s: status %d: %v", e.Provider, e.Status, e.Err)
	}
	return fmt.Sprintf("llm gateway %s: %v", e.Provider, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// ReconcileError 所有回退阶段之后仍无法从 LLM 输出恢复出结构化数据。
// Raw 携带原始文本，便于排查提示词或模型漂移。
type ReconcileError struct {
	Raw    string
	Reason string
}

func (e *ReconcileError) Error() string {
	return "unable to parse LLM response: " + e.Reason
}

// ValidationError 结构上解析成功但语义非法的元素（如 type 超出枚举）
type ValidationError struct {
	Index int
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid question at index %d: %s=%q", e.Index, e.Field, e.Value)
}

// PreconditionError 在错误的会话状态下调用操作，不产生任何写入
type PreconditionError struct {
	Op       string
	Expected string
	Actual   string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s requires session status %q, current status is %q", e.Op, e.Expected, e.Actual)
}

package service

import (
	"ai_interviewer_backend/internal/model"
	"ai_interviewer_backend/internal/util"
	"encoding/json"
	"fmt"
	"strings"
)

// LLM 按约定应当只输出 JSON，实际经常夹带客套话、前言或代码围栏。
// 这里把"从一段自由文本里尽力恢复出结构化数据"收敛成一条显式的
// 策略链：按序尝试，首个产出 ≥1 个元素的策略生效，全部失败才报错。
// 空数组一律视为失败，零道题的面试没有意义。

// QuestionPayload LLM 出题响应里单个元素的线格式，
// 同时也是 generate 接口与 session/create 的请求/响应形状
type QuestionPayload struct {
	Type           string   `json:"type"`
	Difficulty     int      `json:"difficulty"`
	Text           string   `json:"text"`
	Tags           []string `json:"tags"`
	ExpectedPoints []string `json:"expectedPoints"`
}

// wrappedQuestionsKey 对象包装时唯一认可的键名，与提示词 schema 约定一致。
// 其他键名不做鸭子类型探测，能否救回交给后面的括号截取兜底。
const wrappedQuestionsKey = "questions"

type questionListStrategy struct {
	name  string
	parse func(raw string) ([]QuestionPayload, error)
}

var questionListStrategies = []questionListStrategy{
	{name: "array", parse: parseQuestionArray},
	{name: "wrapped-object", parse: parseWrappedQuestions},
	{name: "bracket-span", parse: parseBracketSpan},
}

// ReconcileQuestionList 把 LLM 的自由文本恢复成题目列表。
// 元素顺序保持模型输出原样，不排序、不去重。
// 结构恢复之后逐元素做语义校验，任何一个元素非法都拒绝整批。
func ReconcileQuestionList(raw string) ([]QuestionPayload, error) {
	var lastReason string

	for _, strategy := range questionListStrategies {
		questions, err := strategy.parse(raw)
		if err != nil {
			lastReason = fmt.Sprintf("%s: %v", strategy.name, err)
			continue
		}
		if len(questions) == 0 {
			lastReason = strategy.name + ": empty array"
			continue
		}

		if err := validateQuestions(questions); err != nil {
			return nil, err
		}
		return questions, nil
	}

	return nil, &util.ReconcileError{Raw: raw, Reason: lastReason}
}

func parseQuestionArray(raw string) ([]QuestionPayload, error) {
	var questions []QuestionPayload
	if err := json.Unmarshal([]byte(raw), &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func parseWrappedQuestions(raw string) ([]QuestionPayload, error) {
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &wrapper); err != nil {
		return nil, err
	}
	arr, ok := wrapper[wrappedQuestionsKey]
	if !ok {
		return nil, fmt.Errorf("object has no %q property", wrappedQuestionsKey)
	}
	return parseQuestionArray(string(arr))
}

// parseBracketSpan 兜底：截取首个 '[' 到最后一个 ']' 的片段再当数组解析，
// 用来剥掉模型包在 JSON 外面的说明文字
func parseBracketSpan(raw string) ([]QuestionPayload, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no bracketed array found")
	}
	return parseQuestionArray(raw[start : end+1])
}

// validateQuestions 语义校验：type 枚举、difficulty 区间、非空题面。
// 策略是拒绝而不是纠正（见 DESIGN.md 的取舍记录）。
func validateQuestions(questions []QuestionPayload) error {
	for i, q := range questions {
		if !model.ValidType(q.Type) {
			return &util.ValidationError{Index: i, Field: "type", Value: q.Type}
		}
		if !model.ValidDifficulty(q.Difficulty) {
			return &util.ValidationError{Index: i, Field: "difficulty", Value: fmt.Sprintf("%d", q.Difficulty)}
		}
		if strings.TrimSpace(q.Text) == "" {
			return &util.ValidationError{Index: i, Field: "text", Value: q.Text}
		}
	}
	return nil
}

// ReconcileObject 单对象恢复：只做直接解析，不做任何兜底截取。
// 单题评价与总评报告走这里；评价失败由调用方用空对象顶上，报告失败则如实上抛。
func ReconcileObject[T any](raw string) (*T, error) {
	trimmed := strings.TrimSpace(raw)
	var v T
	if err := json.Unmarshal([]byte(trimmed), &v); err != nil {
		return nil, &util.ReconcileError{Raw: raw, Reason: err.Error()}
	}
	return &v, nil
}

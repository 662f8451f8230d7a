package model

// QuestionEvaluation 单题评价的解码结构，对应 score_json / 报告条目。
// 字段名与提示词中的 schema 保持一致，改名会破坏 LLM 输出的解析。
type QuestionEvaluation struct {
	QuestionText string   `json:"QuestionText"`
	UserAnswer   string   `json:"UserAnswer"`
	Feedback     string   `json:"Feedback"`
	Strengths    []string `json:"Strengths"`
	Weaknesses   []string `json:"Weaknesses"`
	Suggestions  []string `json:"Suggestions"`
	Score        int      `json:"Score"`
}

// AnswerEvaluation 提交答案时即时评价的解码结构（小写 schema）
type AnswerEvaluation struct {
	Score       int      `json:"score"`
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Feedback    string   `json:"feedback"`
	Suggestions []string `json:"suggestions"`
}

// ReportJson 完整报告的解码结构。Overall 是字符串编码的分数（如 "7.6"），
// Verdict 观测值为 Pass/Improve/Reject，模型层不做枚举约束。
type ReportJson struct {
	Overall             string               `json:"Overall"`
	Verdict             string               `json:"Verdict"`
	QuestionEvaluations []QuestionEvaluation `json:"QuestionEvaluations"`
}

package service

import (
	"ai_interviewer_backend/internal/util"
	"context"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// MockClient 离线桩实现：靠关键字识别最后一条消息属于哪类提示词，
// 返回 schema 正确的合成 JSON。完全确定，专供本地联调与测试。
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (s *MockClient) Provider() string { return "mock" }

var mockQuestionTexts = []string{
	"Please introduce your technical background and experience.",
	"What is the biggest challenge you have encountered in projects?",
	"How do you resolve conflicts in team collaboration?",
	"What is your learning method for new technologies?",
	"Please describe a project you are proud of.",
	"How do you ensure code quality and maintainability?",
	"What is your view on technical debt?",
	"How do you balance development speed and code quality?",
}

var countPattern = regexp.MustCompile(`\d+`)

func (s *MockClient) Chat(ctx context.Context, messages []ChatMessage, temperature float32, maxTokens int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &util.GatewayError{Provider: s.Provider(), Err: err}
	}

	var last string
	if len(messages) > 0 {
		last = messages[len(messages)-1].Content
	}
	lower := strings.ToLower(last)

	switch {
	case strings.Contains(lower, "generate") || strings.Contains(lower, "interview questions"):
		tech, bg := parseRequestedCounts(last)
		return s.questionsJSON(tech, bg), nil
	case strings.Contains(lower, "evaluate this answer"):
		return s.evaluationJSON(), nil
	case strings.Contains(lower, "scoring report") || strings.Contains(lower, "report"):
		return s.reportJSON(), nil
	}

	return "This is a mock response. Please switch to a real LLM provider.", nil
}

// parseRequestedCounts 从 `Generate exactly X "technical" ... Y "background"` 里
// 抠出两个数字，抠不到就用默认 5/5
func parseRequestedCounts(content string) (tech, bg int) {
	tech, bg = 5, 5

	idx := strings.Index(strings.ToLower(content), "generate exactly ")
	if idx < 0 {
		return
	}

	numbers := countPattern.FindAllString(content[idx:], 2)
	if len(numbers) >= 2 {
		if t, err := strconv.Atoi(numbers[0]); err == nil {
			tech = t
		}
		if b, err := strconv.Atoi(numbers[1]); err == nil {
			bg = b
		}
	}
	return
}

func (s *MockClient) questionsJSON(techCount, bgCount int) string {
	type mockQuestion struct {
		Type           string   `json:"type"`
		Difficulty     int      `json:"difficulty"`
		Text           string   `json:"text"`
		Tags           []string `json:"tags"`
		ExpectedPoints []string `json:"expectedPoints"`
	}

	questions := make([]mockQuestion, 0, techCount+bgCount)
	for i := 0; i < techCount; i++ {
		questions = append(questions, mockQuestion{
			Type:           "technical",
			Difficulty:     2 + (i % 3),
			Text:           mockQuestionTexts[i%len(mockQuestionTexts)],
			Tags:           []string{"tech", "mock"},
			ExpectedPoints: []string{"point a", "point b", "point c"},
		})
	}
	for i := 0; i < bgCount; i++ {
		questions = append(questions, mockQuestion{
			Type:           "background",
			Difficulty:     2 + (i % 2),
			Text:           mockQuestionTexts[(i+2)%len(mockQuestionTexts)],
			Tags:           []string{"background", "mock"},
			ExpectedPoints: []string{"example", "communication", "impact"},
		})
	}

	data, _ := json.Marshal(questions)
	return string(data)
}

func (s *MockClient) evaluationJSON() string {
	return `{
  "score": 7,
  "strengths": ["Clear explanation", "Structured thinking"],
  "weaknesses": ["Could provide more concrete examples"],
  "feedback": "Solid answer with a reasonable structure. Adding measurable outcomes would make it stronger.",
  "suggestions": ["Quantify the impact of your work", "Mention trade-offs you considered"]
}`
}

func (s *MockClient) reportJSON() string {
	return `{
  "Overall": "7.6",
  "Verdict": "Pass",
  "QuestionEvaluations": [
    {
      "QuestionText": "What is TypeScript and how does it differ from JavaScript?",
      "UserAnswer": "TypeScript is a superset of JavaScript that adds static typing.",
      "Feedback": "Good understanding of the core concept and tooling benefits.",
      "Strengths": ["Clear explanation", "Understanding of benefits"],
      "Weaknesses": ["Could provide more examples"],
      "Suggestions": ["Add practical examples of type annotations"],
      "Score": 8
    },
    {
      "QuestionText": "Describe a challenging project you worked on.",
      "UserAnswer": "I worked on a large-scale e-commerce platform with performance issues.",
      "Feedback": "Good problem identification and solution approach.",
      "Strengths": ["Problem identification", "Technical solution"],
      "Weaknesses": ["Missing metrics or results"],
      "Suggestions": ["Provide specific performance metrics"],
      "Score": 7
    }
  ]
}`
}

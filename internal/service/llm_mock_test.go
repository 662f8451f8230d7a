package service

import (
	"ai_interviewer_backend/internal/model"
	"ai_interviewer_backend/internal/util"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockHonorsRequestedCounts(t *testing.T) {
	client := NewMockClient()
	prompt := BuildQuestionGenPromptByCounts("Backend Engineer", 2, 3)

	raw, err := client.Chat(context.Background(), []ChatMessage{{Role: "user", Content: prompt}}, DefaultTemperature, GenMaxTokens)
	require.NoError(t, err)

	questions, err := ReconcileQuestionList(raw)
	require.NoError(t, err)
	require.Len(t, questions, 5)

	tech, bg := 0, 0
	for _, q := range questions {
		switch q.Type {
		case model.QuestionTypeTechnical:
			tech++
		case model.QuestionTypeBackground:
			bg++
		}
	}
	assert.Equal(t, 2, tech)
	assert.Equal(t, 3, bg)
}

func TestMockEvaluationParses(t *testing.T) {
	client := NewMockClient()
	prompt := BuildQuestionEvaluationPrompt("What is Go?", "A language.", "technical", 2)

	raw, err := client.Chat(context.Background(), []ChatMessage{{Role: "user", Content: prompt}}, DefaultTemperature, DefaultMaxTokens)
	require.NoError(t, err)

	eval, err := ReconcileObject[model.AnswerEvaluation](raw)
	require.NoError(t, err)
	assert.Equal(t, 7, eval.Score)
	assert.NotEmpty(t, eval.Feedback)
}

func TestMockReportParses(t *testing.T) {
	client := NewMockClient()
	prompt := BuildReportPrompt("Q1: q\nA1: a")

	raw, err := client.Chat(context.Background(), []ChatMessage{{Role: "user", Content: prompt}}, DefaultTemperature, GenMaxTokens)
	require.NoError(t, err)

	report, err := ReconcileObject[model.ReportJson](raw)
	require.NoError(t, err)
	assert.Equal(t, "Pass", report.Verdict)
	assert.Equal(t, "7.6", report.Overall)
	assert.Len(t, report.QuestionEvaluations, 2)
}

func TestMockDefaultResponse(t *testing.T) {
	client := NewMockClient()
	raw, err := client.Chat(context.Background(), []ChatMessage{{Role: "user", Content: "hello"}}, DefaultTemperature, DefaultMaxTokens)
	require.NoError(t, err)
	assert.Contains(t, raw, "mock response")
}

func TestMockRespectsCancelledContext(t *testing.T) {
	client := NewMockClient()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Chat(ctx, []ChatMessage{{Role: "user", Content: "hello"}}, DefaultTemperature, DefaultMaxTokens)
	assert.ErrorIs(t, err, context.Canceled)

	var gateway *util.GatewayError
	require.ErrorAs(t, err, &gateway)
	assert.Equal(t, "mock", gateway.Provider)
}

func TestNewLLMClientFactory(t *testing.T) {
	mock := NewLLMClient(configForProvider("mock"))
	assert.Equal(t, "mock", mock.Provider())

	fallback := NewLLMClient(configForProvider(""))
	assert.Equal(t, "mock", fallback.Provider())

	openai := NewLLMClient(configForProvider("openai"))
	assert.Equal(t, "openai", openai.Provider())

	azure := NewLLMClient(configForProvider("azure"))
	assert.Equal(t, "azure", azure.Provider())
}

package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildQuestionGenPromptSplitsCounts(t *testing.T) {
	prompt := BuildQuestionGenPrompt("Backend Engineer", 10, 30)

	assert.Contains(t, prompt, `Generate exactly 3 "technical" questions and 7 "background" questions.`)
	assert.Contains(t, prompt, "Role: Backend Engineer")
	assert.Contains(t, prompt, "Now produce exactly 10 items")
}

func TestBuildQuestionGenPromptRoundsRatio(t *testing.T) {
	// 5 * 0.5 = 2.5，四舍五入到 3
	prompt := BuildQuestionGenPrompt("QA", 5, 50)
	assert.Contains(t, prompt, `Generate exactly 3 "technical" questions and 2 "background" questions.`)
}

func TestBuildQuestionGenPromptClampsRatio(t *testing.T) {
	prompt := BuildQuestionGenPrompt("QA", 4, 100)
	assert.Contains(t, prompt, `Generate exactly 4 "technical" questions and 0 "background" questions.`)

	prompt = BuildQuestionGenPrompt("QA", 4, 0)
	assert.Contains(t, prompt, `Generate exactly 0 "technical" questions and 4 "background" questions.`)
}

func TestBuildQuestionGenPromptByCountsHardConstraints(t *testing.T) {
	onlyTech := BuildQuestionGenPromptByCounts("Dev", 5, 0)
	assert.Contains(t, onlyTech, `Generating any "background" item is forbidden.`)
	assert.NotContains(t, onlyTech, `Generating any "technical" item is forbidden.`)

	onlyBg := BuildQuestionGenPromptByCounts("Dev", 0, 5)
	assert.Contains(t, onlyBg, `Generating any "technical" item is forbidden.`)

	mixed := BuildQuestionGenPromptByCounts("Dev", 3, 2)
	assert.NotContains(t, mixed, "forbidden")
}

func TestBuildQuestionEvaluationPromptEmbedsContext(t *testing.T) {
	prompt := BuildQuestionEvaluationPrompt("What is a goroutine?", "A lightweight thread.", "technical", 4)

	assert.Contains(t, prompt, "Question: What is a goroutine?")
	assert.Contains(t, prompt, "Candidate's Answer: A lightweight thread.")
	assert.Contains(t, prompt, "Question Type: technical")
	assert.Contains(t, prompt, "Difficulty Level: Intermediate-Advanced")
}

func TestDifficultyLabelOutOfRangeFallsBack(t *testing.T) {
	prompt := BuildQuestionEvaluationPrompt("q", "a", "technical", 9)
	assert.Contains(t, prompt, "Difficulty Level: Intermediate")
}

func TestBuildReportPromptEmbedsTranscript(t *testing.T) {
	transcript := "Q1: first question\nA1: first answer"
	prompt := BuildReportPrompt(transcript)

	assert.Contains(t, prompt, transcript)
	assert.Contains(t, prompt, `"Verdict": "Pass" | "Improve" | "Reject"`)
}

func TestPromptsAreDeterministic(t *testing.T) {
	a := BuildQuestionGenPrompt("Dev", 6, 50)
	b := BuildQuestionGenPrompt("Dev", 6, 50)
	if !strings.EqualFold(a, b) {
		t.Fatal("prompt output is not deterministic")
	}
}

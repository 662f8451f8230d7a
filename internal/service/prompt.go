package service

import (
	"fmt"
	"math"
	"strings"
)

// 提示词构造，纯函数：同样的输入永远产出同样的文本，方便做断言。
// schema 文案与解析侧约定一致，动这里必须同步动 reconcile。

// BuildQuestionGenPrompt 按比例出题的旧入口：total + techRatio(0-100)
// 换算成确切数量后走 BuildQuestionGenPromptByCounts。
func BuildQuestionGenPrompt(role string, total, techRatio int) string {
	tech := int(math.Round(float64(total) * float64(techRatio) / 100.0))
	if tech < 0 {
		tech = 0
	}
	if tech > total {
		tech = total
	}
	bg := total - tech
	return BuildQuestionGenPromptByCounts(role, tech, bg)
}

// BuildQuestionGenPromptByCounts 明确指定技术题/背景题数量，输出更稳定
func BuildQuestionGenPromptByCounts(role string, techCount, bgCount int) string {
	var hardConstraints strings.Builder
	if techCount == 0 {
		hardConstraints.WriteString(`- All items MUST have type "background" only. Generating any "technical" item is forbidden.` + "\n")
	}
	if bgCount == 0 {
		hardConstraints.WriteString(`- All items MUST have type "technical" only. Generating any "background" item is forbidden.` + "\n")
	}

	return fmt.Sprintf(`
You are a JSON generator. Output ONLY a valid JSON array.
DO NOT include explanations, prefixes, code fences, or any extra text.

Role: %s
Generate exactly %d "technical" questions and %d "background" questions.
Each item must follow this schema:
{
  "type": "technical" | "background",
  "difficulty": 1..5,                // integer
  "text": "one clear question, no numbering or quotes around terms unnecessarily",
  "tags": ["short-tag-1", "short-tag-2"],
  "expectedPoints": ["key point 1", "key point 2", "key point 3"]
}

Rules:
- type must be exactly "technical" or "background".
- difficulty must be an integer from 1 to 5.
- text should be one sentence, no leading numbering like "1." or "Q:".
- tags: 1-3 short tokens.
- expectedPoints: 2-4 concise bullet points, each a short phrase.
- Return ONLY the JSON array. No prose, no backticks, no trailing commas.
%s
Now produce exactly %d items in a single JSON array with the required mix:
- %d items where "type": "technical"
- %d items where "type": "background"

Output ONLY the JSON array:`,
		role, techCount, bgCount, hardConstraints.String(), techCount+bgCount, techCount, bgCount)
}

// difficultyLabel 1..5 映射为五档文字描述，越界取中间档
func difficultyLabel(difficulty int) string {
	switch difficulty {
	case 1:
		return "Beginner"
	case 2:
		return "Beginner-Intermediate"
	case 3:
		return "Intermediate"
	case 4:
		return "Intermediate-Advanced"
	case 5:
		return "Advanced"
	default:
		return "Intermediate"
	}
}

// BuildQuestionEvaluationPrompt 单题评价：题面与答案原样嵌入
func BuildQuestionEvaluationPrompt(questionText, answerText, questionType string, difficulty int) string {
	return fmt.Sprintf(`
You are an expert technical interviewer evaluating a candidate's response.

Question: %s
Question Type: %s
Difficulty Level: %s

Candidate's Answer: %s

Please evaluate this answer and provide feedback in JSON format:

Rules:
- Output ONLY a JSON object, no prose, no code fences, no trailing commas.
- Use this exact schema:
{
  "score": 1-10,                    // Overall score for this specific question
  "strengths": ["key strength 1", "key strength 2"],
  "weaknesses": ["area for improvement 1", "area for improvement 2"],
  "feedback": "2-3 sentence constructive feedback",
  "suggestions": ["specific improvement suggestion 1", "suggestion 2"]
}

Evaluation Criteria:
- Consider the question difficulty and type
- Evaluate technical accuracy, completeness, and clarity
- Assess problem-solving approach and reasoning
- Consider communication effectiveness
- Be constructive and specific in feedback

Output ONLY the JSON object.`,
		questionText, questionType, difficultyLabel(difficulty), answerText)
}

// BuildReportPrompt 总评报告：transcript 为 "Q{n}: ...\nA{n}: ..." 的拼接
func BuildReportPrompt(transcript string) string {
	return fmt.Sprintf(`
You are a hiring committee summarizer. Produce a comprehensive scoring report in JSON.

Interview Record (Q/A transcript):
%s

Rules:
- Output ONLY a JSON object, no prose, no code fences, no trailing commas.
- Use this exact schema:
{
  "Overall": "0-10",  // Overall score as a string (e.g., "7.5")
  "Verdict": "Pass" | "Improve" | "Reject",
  "QuestionEvaluations": [
    {
      "QuestionText": "The question that was asked",
      "UserAnswer": "The candidate's answer",
      "Feedback": "2-3 sentence constructive feedback on the answer",
      "Strengths": ["key strength 1", "key strength 2"],
      "Weaknesses": ["area for improvement 1", "area for improvement 2"],
      "Suggestions": ["specific improvement suggestion 1", "suggestion 2"],
      "Score": 1-10  // Individual question score
    }
  ]
}

Constraints:
- The overall score should reflect the candidate's performance across all questions
- Consider technical accuracy, communication clarity, and problem-solving ability
- Each question evaluation should be based on the Q/A pairs in the transcript
- Strengths, weaknesses, and suggestions should be specific and actionable
- Individual question scores should contribute to the overall score
- Output ONLY the JSON object.`, transcript)
}

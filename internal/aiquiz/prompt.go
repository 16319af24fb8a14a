package aiquiz

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// contextBudget caps how much uploaded-document text is embedded in the
// prompt. Longer extracts are truncated, not rejected.
const contextBudget = 3000

const systemPrompt = `You are a quiz question generator for an educational platform.

Your role is to create clear, challenging questions aimed at real learning.

General rules:
1. Only generate questions about educational subjects.
2. Every choice-based question must have exactly one correct answer.
3. Never reveal the answer or the explanation inside the question text.
4. Distractors must be plausible: similar length and structure to the
   correct choice, never obviously wrong.
5. Always return pure, valid JSON with no text outside the JSON array.`

const assistantPrompt = `You are an educational assistant for a quiz platform.

Help students understand concepts, explain topics, provide study tips and
answer academic questions. Keep responses concise, clear and educational.
Focus on helping students learn effectively.`

// BuildPrompt assembles the user prompt for one generation call. The
// response format block depends on the question type so the parser can rely
// on a fixed shape per type.
func BuildPrompt(req GenerateRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d %s questions about \"%s\" at %s difficulty.\n\n",
		req.Count, questionTypeLabel(req.QuestionType), req.Topic, strings.ToLower(req.Difficulty))

	if ctx := strings.TrimSpace(req.Context); ctx != "" {
		fmt.Fprintf(&b, "Base the questions on the following source material:\n%s\n\n", Truncate(ctx, contextBudget))
	}

	b.WriteString("Return a JSON array in exactly this format:\n")
	b.WriteString(responseFormat(req.QuestionType))

	return b.String()
}

// Truncate caps s at limit bytes without splitting a multi-byte rune.
func Truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}

func questionTypeLabel(questionType string) string {
	switch questionType {
	case "TRUE_FALSE":
		return "true/false"
	case "FILL_BLANK":
		return "fill-in-the-blank"
	default:
		return "multiple-choice"
	}
}

func responseFormat(questionType string) string {
	switch questionType {
	case "TRUE_FALSE":
		return `[
  {
    "question_text": "<statement to evaluate>",
    "choices": [
      {"text": "True", "is_correct": true},
      {"text": "False", "is_correct": false}
    ],
    "explanation": "<why the statement is true or false>",
    "confidence": 0.9
  }
]`
	case "FILL_BLANK":
		return `[
  {
    "question_text": "<sentence with _____ marking the blank>",
    "correct_answer": "<the word or phrase that fills the blank>",
    "explanation": "<brief explanation>",
    "confidence": 0.9
  }
]`
	default:
		return `[
  {
    "question_text": "<the question>",
    "choices": [
      {"text": "<option>", "is_correct": true},
      {"text": "<option>", "is_correct": false},
      {"text": "<option>", "is_correct": false},
      {"text": "<option>", "is_correct": false}
    ],
    "explanation": "<why the correct option is right>",
    "confidence": 0.9
  }
]`
	}
}

package quiz

import (
	"math/rand"

	"github.com/quizforge/quizforge/internal/question"
)

// Present renders a quiz for attempt-taking. Shuffles are applied fresh on
// every call and never persisted; correct-answer flags are stripped.
func Present(q *Quiz) *PresentedQuiz {
	questions := make([]PresentedQuestion, 0, len(q.Questions))
	for _, mapping := range q.Questions {
		questions = append(questions, presentQuestion(&mapping.Question, q.ShuffleChoices))
	}

	if q.ShuffleQuestions {
		rand.Shuffle(len(questions), func(i, j int) {
			questions[i], questions[j] = questions[j], questions[i]
		})
	}

	return &PresentedQuiz{
		ID:               q.ID,
		Title:            q.Title,
		Description:      q.Description,
		TotalMarks:       q.TotalMarks,
		PassingMarks:     q.PassingMarks,
		TimeLimitMinutes: q.TimeLimitMinutes,
		Difficulty:       string(q.Difficulty),
		TimerOption:      q.TimerOption,
		PerQuestionTime:  q.PerQuestionTime,
		Instructions:     q.Instructions,
		Questions:        questions,
	}
}

func presentQuestion(q *question.Question, shuffleChoices bool) PresentedQuestion {
	choices := make([]PresentedChoice, 0, len(q.Choices))
	for _, c := range q.Choices {
		choices = append(choices, PresentedChoice{ID: c.ID, Text: c.Text})
	}

	if shuffleChoices {
		rand.Shuffle(len(choices), func(i, j int) {
			choices[i], choices[j] = choices[j], choices[i]
		})
	}

	return PresentedQuestion{
		ID:         q.ID,
		Text:       q.Text,
		Type:       string(q.Type),
		Difficulty: string(q.Difficulty),
		Points:     q.Points,
		Choices:    choices,
	}
}

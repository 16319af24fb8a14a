package question

import "github.com/google/uuid"

type ChoiceDTO struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

type CreateQuestionDTO struct {
	TopicID       uuid.UUID    `json:"topic_id"`
	Text          string       `json:"text"`
	Type          QuestionType `json:"type"`
	Difficulty    Difficulty   `json:"difficulty"`
	Points        int          `json:"points"`
	Explanation   string       `json:"explanation"`
	Choices       []ChoiceDTO  `json:"choices"`
	CorrectAnswer string       `json:"correct_answer"`
}

type UpdateQuestionDTO struct {
	Text        *string     `json:"text"`
	Difficulty  *Difficulty `json:"difficulty"`
	Points      *int        `json:"points"`
	Explanation *string     `json:"explanation"`
	Choices     []ChoiceDTO `json:"choices"`
}

type GenerateQuestionsDTO struct {
	TopicID      uuid.UUID    `json:"topic_id"`
	Count        int          `json:"count"`
	Difficulty   string       `json:"difficulty"`
	QuestionType QuestionType `json:"question_type"`
	Context      string       `json:"context"`
}

// ListFilter narrows question listings; zero values mean "no filter".
type ListFilter struct {
	TopicID    uuid.UUID
	Type       QuestionType
	Difficulty Difficulty
	Source     Source
	Verified   *bool
	Page       int
	PageSize   int
}

type ListResponse struct {
	Questions []Question `json:"questions"`
	Total     int64      `json:"total"`
	Page      int        `json:"page"`
	PageSize  int        `json:"page_size"`
}

package aiquiz

// CandidateChoice is one answer option proposed by the model.
type CandidateChoice struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// Candidate is a single model-proposed question before it is persisted to
// the question bank. Choice-based types carry Choices; fill-in-the-blank
// carries CorrectAnswer instead.
type Candidate struct {
	QuestionText  string            `json:"question_text"`
	Choices       []CandidateChoice `json:"choices,omitempty"`
	CorrectAnswer string            `json:"correct_answer,omitempty"`
	Explanation   string            `json:"explanation,omitempty"`
	Confidence    *float64          `json:"confidence,omitempty"`
}

type GenerateRequest struct {
	Topic        string `json:"topic"`
	Count        int    `json:"count"`
	Difficulty   string `json:"difficulty"`
	QuestionType string `json:"question_type"`
	Context      string `json:"context,omitempty"`
}

type GenerateResponse struct {
	Questions  []Candidate `json:"questions"`
	Confidence float64     `json:"confidence"`
}

package question

import "strings"

type QuestionType string

const (
	TypeMultipleChoice QuestionType = "MULTIPLE_CHOICE"
	TypeTrueFalse      QuestionType = "TRUE_FALSE"
	TypeFillBlank      QuestionType = "FILL_BLANK"
)

func (t QuestionType) IsValid() bool {
	switch t {
	case TypeMultipleChoice, TypeTrueFalse, TypeFillBlank:
		return true
	}
	return false
}

// HasChoices reports whether the type carries an explicit choice list with
// exactly one correct option.
func (t QuestionType) HasChoices() bool {
	return t == TypeMultipleChoice || t == TypeTrueFalse
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
	DifficultyMixed  Difficulty = "MIXED"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyMixed:
		return true
	}
	return false
}

// difficultySynonyms maps legacy client spellings onto the modeled levels.
var difficultySynonyms = map[string]Difficulty{
	"EASY":     DifficultyEasy,
	"MEDIUM":   DifficultyMedium,
	"HARD":     DifficultyHard,
	"MIXED":    DifficultyMixed,
	"ADVANCE":  DifficultyHard,
	"ADVANCED": DifficultyHard,
}

// ParseDifficulty normalizes client input through the synonym table.
// Unknown or empty input falls back to Medium.
func ParseDifficulty(input string) Difficulty {
	if d, ok := difficultySynonyms[strings.ToUpper(strings.TrimSpace(input))]; ok {
		return d
	}
	return DifficultyMedium
}

type Source string

const (
	SourceManual      Source = "MANUAL"
	SourceAIGenerated Source = "AI_GENERATED"
	SourceFileUpload  Source = "FILE_UPLOAD"
)

func (s Source) IsValid() bool {
	switch s {
	case SourceManual, SourceAIGenerated, SourceFileUpload:
		return true
	}
	return false
}
